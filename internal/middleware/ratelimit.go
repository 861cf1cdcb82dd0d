package middleware

import (
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/danfath312/cv-karya-perikanan/internal/ratelimit"

	"github.com/gin-gonic/gin"
)

// RateLimit rejects clients that exceed the quota enforced by the injected
// limiter, keyed by client IP. Limiter failures fail open.
func RateLimit(limiter ratelimit.Limiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		result, err := limiter.Allow(c.Request.Context(), c.ClientIP())
		if err != nil {
			log.Printf("Rate limiter error for %s: %v", c.ClientIP(), err)
			c.Next()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(result.Remaining))
		c.Header("X-RateLimit-Reset", result.ResetAt.UTC().Format(time.RFC3339))

		if !result.Allowed {
			retryAfter := int(time.Until(result.ResetAt).Seconds()) + 1
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":      "Too many requests. Please try again later.",
				"retryAfter": retryAfter,
			})
			return
		}

		c.Next()
	}
}
