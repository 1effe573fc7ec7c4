package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
)

// Logger logs method, path, client IP, status, latency and the acting user.
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		actor := "anonymous"
		if a := ActorFromContext(c); a.Authenticated {
			actor = a.ID.String()
		}
		log.Printf(
			"[%s] %s %s %d %s actor=%s",
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.Writer.Status(),
			time.Since(start),
			actor,
		)
	}
}
