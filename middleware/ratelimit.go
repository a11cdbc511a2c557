package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
)

// RateLimiter is a per-IP token bucket.
type RateLimiter struct {
	tokens     map[string]float64
	lastRefill map[string]time.Time
	mu         sync.Mutex
	rate       float64 // tokens per second
	bucketSize float64 // maximum tokens
}

// NewRateLimiter creates a limiter that refills rate tokens per second
// up to bucketSize.
func NewRateLimiter(rate, bucketSize float64) *RateLimiter {
	return &RateLimiter{
		tokens:     make(map[string]float64),
		lastRefill: make(map[string]time.Time),
		rate:       rate,
		bucketSize: bucketSize,
	}
}

// RateLimit rejects requests with 429 once a client's bucket is empty.
func (rl *RateLimiter) RateLimit() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()

		rl.mu.Lock()
		now := time.Now()

		if _, exists := rl.lastRefill[ip]; !exists {
			rl.tokens[ip] = rl.bucketSize
			rl.lastRefill[ip] = now
		}

		elapsed := now.Sub(rl.lastRefill[ip])
		rl.tokens[ip] = min(rl.bucketSize, rl.tokens[ip]+elapsed.Seconds()*rl.rate)
		rl.lastRefill[ip] = now

		if rl.tokens[ip] < 1 {
			rl.mu.Unlock()
			c.JSON(http.StatusTooManyRequests, gin.H{
				"error": "Rate limit exceeded. Please try again later.",
			})
			c.Abort()
			return
		}

		rl.tokens[ip]--
		rl.mu.Unlock()

		c.Next()
	}
}
