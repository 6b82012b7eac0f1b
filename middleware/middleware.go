package middleware

import (
	"log/slog"
	"os"

	"github.com/MdRakibHossen917/life-nest-company-server/services"
	"github.com/gin-gonic/gin"
)

// GetAPIMiddleware picks the authentication middleware for API routes.
func GetAPIMiddleware(verifier services.TokenVerifier) gin.HandlerFunc {
	if _, ok := os.LookupEnv("NOOP_AUTH"); ok {
		slog.Warn("Using noop auth for API routes")
		return NoopAuth()
	}
	slog.Info("Using JWT bearer middleware for API routes")
	return BearerTokenAuth(verifier)
}

func CORSMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
