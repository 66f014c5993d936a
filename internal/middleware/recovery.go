package middleware

import (
	"fmt"
	"net/http"

	"property-lookup/internal/errors"
	"property-lookup/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery converts a panic into the generic internal error response.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		appErr := errors.NewInternalError(fmt.Sprintf("panic: %v", recovered), nil)
		logger.GlobalLogger.Errorf("Recovered from panic: path=%s, method=%s, request_id=%s, panic=%v",
			c.Request.URL.Path, c.Request.Method, GetRequestID(c), recovered)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"error": appErr.UserMessage})
	})
}
