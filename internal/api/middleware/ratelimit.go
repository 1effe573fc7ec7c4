package middleware

import (
	"log"
	"math"
	"net/http"
	"strconv"
	"time"

	"jobboard-api/internal/storage"

	"github.com/gin-gonic/gin"
)

// RateLimit allows limit requests per client IP per window for one scope.
// A limiter failure lets the request through.
func RateLimit(limiter storage.RateLimiter, scope string, limit int, window time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limiter == nil || limit <= 0 {
			c.Next()
			return
		}
		key := scope + ":" + c.ClientIP()
		allowed, retryAfter, err := limiter.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			log.Printf("RateLimit: limiter error for %s: %v", key, err)
			c.Next()
			return
		}
		if !allowed {
			if retryAfter <= 0 {
				retryAfter = window
			}
			c.Header("Retry-After", strconv.Itoa(int(math.Ceil(retryAfter.Seconds()))))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "Too many requests, try again later"})
			return
		}
		c.Next()
	}
}
