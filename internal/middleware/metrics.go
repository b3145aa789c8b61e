package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"swapi/internal/metrics"
)

// Metrics records request count and latency per route template, so
// /starships/1 and /starships/2 share one series.
func Metrics(m *metrics.HTTP) gin.HandlerFunc {
	return func(c *gin.Context) {
		m.InFlight.Inc()
		defer m.InFlight.Dec()

		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.Observe(c.Request.Method, route, c.Writer.Status(), time.Since(start))
	}
}
