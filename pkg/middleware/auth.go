package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"
)

// APIKeyMiddleware returns a Gin middleware gating requests on a shared API
// key carried in the X-API-Key header. Health and metrics endpoints are
// registered outside the gated group and stay public.
func APIKeyMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		got := c.GetHeader("X-API-Key")
		if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"error":   "Unauthorized",
				"message": "Valid API key required in X-API-Key header",
			})
			return
		}
		c.Set("apiKey", got)
		c.Next()
	}
}
