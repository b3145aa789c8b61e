package response

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swapi/internal/pkg/apierr"
)

const internalErrorMessage = "Internal server error"

// JSON writes data as the bare response body.
func JSON(c *gin.Context, statusCode int, data any) {
	c.JSON(statusCode, data)
}

// Message writes the {"msg": ...} envelope.
func Message(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{"msg": message})
}

// Error maps err onto the response. Request rejections become 400 with their
// message; anything else is recorded on the context for the error logger and
// answered with 500.
func Error(c *gin.Context, err error) {
	if apierr.IsRejection(err) {
		Message(c, http.StatusBadRequest, err.Error())
		return
	}
	_ = c.Error(err)
	Message(c, http.StatusInternalServerError, internalErrorMessage)
}

// Abort writes the envelope and stops the handler chain.
func Abort(c *gin.Context, statusCode int, message string) {
	c.AbortWithStatusJSON(statusCode, gin.H{"msg": message})
}
