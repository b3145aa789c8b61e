package middleware

import (
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorLogger logs errors recorded with c.Error and recovers from panics.
// A panic is answered with the 500 envelope.
func ErrorLogger(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		defer func() {
			if recovered := recover(); recovered != nil {
				err := fmt.Errorf("%v", recovered)
				requestEvent(log.Error(), c, start).
					Str("type", "panic").
					Err(err).
					Bytes("stack", debug.Stack()).
					Msg("request_error")

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"msg": "Internal server error"})
				return
			}

			for _, e := range c.Errors {
				ev := requestEvent(log.Error(), c, start).
					Str("type", fmt.Sprintf("%v", e.Type)).
					Err(e.Err)
				if e.Meta != nil {
					ev = ev.Interface("meta", e.Meta)
				}
				ev.Msg("request_error")
			}
		}()

		c.Next()
	}
}

// AccessLog writes one line per request. 5xx responses log at error level,
// 4xx at warn and the rest at info.
func AccessLog(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		status := c.Writer.Status()
		ev := log.Info()
		switch {
		case status >= http.StatusInternalServerError:
			ev = log.Error()
		case status >= http.StatusBadRequest:
			ev = log.Warn()
		}
		requestEvent(ev, c, start).
			Int("size", c.Writer.Size()).
			Msg("request")
	}
}

func requestEvent(ev *zerolog.Event, c *gin.Context, start time.Time) *zerolog.Event {
	return ev.
		Int("status", c.Writer.Status()).
		Str("method", c.Request.Method).
		Str("path", c.Request.URL.Path).
		Str("query", c.Request.URL.RawQuery).
		Str("client_ip", c.ClientIP()).
		Str("request_id", GetRequestID(c)).
		Dur("latency", time.Since(start))
}
