package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MessageResponse is the body every endpoint uses for non-payload replies.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger := GetLogger()
				logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, MessageResponse{
					Message: "Something went wrong",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONMessage sends a standardized JSON message response. Internal detail is
// logged, never returned to the caller.
func JSONMessage(c *gin.Context, status int, message string, err error) {
	if err != nil {
		GetLogger().Warn(message, zap.Int("status", status), zap.Error(err))
	}
	c.JSON(status, MessageResponse{Message: message})
}
