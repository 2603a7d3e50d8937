// Package handlers contains the HTTP request handlers for the refdata service.
package handlers

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// internalErrorMessage is the only detail clients get for unexpected
// failures; the real error goes to the log.
const internalErrorMessage = "An internal error occurred."

// RespondError writes a JSON error body with the given status.
func RespondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

// LogAndRespondError logs the underlying error with request context and
// responds with a client-safe message.
func LogAndRespondError(c *gin.Context, log *zap.Logger, status int, err error, message string) {
	log.Error(message,
		zap.Error(err),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
	)
	RespondError(c, status, message)
}
