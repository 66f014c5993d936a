package middleware

import (
	"property-lookup/internal/errors"
	"property-lookup/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler turns the last error attached to the context into a JSON
// response. Only the user message reaches the client; the technical details
// go to the log.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		appErr := errors.MapError(c.Errors.Last().Err)

		logger.GlobalLogger.Errorf("Request failed: path=%s, method=%s, client_ip=%s, request_id=%s, code=%s, error=%s",
			c.Request.URL.Path,
			c.Request.Method,
			c.ClientIP(),
			GetRequestID(c),
			appErr.Code,
			appErr.Error())

		if c.Writer.Written() {
			return
		}
		c.AbortWithStatusJSON(appErr.HTTPStatus, gin.H{"error": appErr.UserMessage})
	}
}

// NotFound handles unmapped routes.
func NotFound() gin.HandlerFunc {
	return func(c *gin.Context) {
		_ = c.Error(errors.NewNotFoundError(c.Request.Method + " " + c.Request.URL.Path))
	}
}
