package middleware

import (
	"net/http"
	"runtime/debug"

	"studybuddy-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic into a 500 with the standard error body
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				logger.WithContext(c).WithFields(map[string]interface{}{
					"panic": rec,
					"stack": string(debug.Stack()),
				}).Error("panic recovered")
				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Internal server error",
					"code":  "INTERNAL",
				})
			}
		}()
		c.Next()
	}
}
