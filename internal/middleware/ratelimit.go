package middleware

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// Per-client limiter settings: one request per second sustained, with a
// burst of 60. Entries unseen for staleAfter are evicted lazily.
const (
	perClientRate  = rate.Limit(1)
	perClientBurst = 60
	staleAfter     = 3 * time.Minute
)

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// In-memory limiter store, keyed by client IP.
// NOTE: for multi-instance deployments move this to a shared store.
var (
	limiters     = make(map[string]*clientLimiter)
	limitersLock sync.Mutex
)

// RateLimiter is a middleware that limits requests per client IP using
// a token bucket (golang.org/x/time/rate).
//
// Behavior:
//   - Each IP gets its own limiter: 1 req/s refill, burst of 60.
//   - When the bucket is empty, returns HTTP 429 Too Many Requests.
//   - Stale entries are evicted on access to bound memory.
//
// Usage:
//
//	router := gin.New()
//	router.Use(middleware.RateLimiter())
func RateLimiter() gin.HandlerFunc {
	return func(c *gin.Context) {
		ip := c.ClientIP()
		now := time.Now()

		limitersLock.Lock()
		cl, ok := limiters[ip]
		if !ok {
			cl = &clientLimiter{limiter: rate.NewLimiter(perClientRate, perClientBurst)}
			limiters[ip] = cl
		}
		cl.lastSeen = now

		// Opportunistic eviction of idle clients.
		for key, other := range limiters {
			if now.Sub(other.lastSeen) > staleAfter {
				delete(limiters, key)
			}
		}
		allowed := cl.limiter.Allow()
		limitersLock.Unlock()

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			return
		}

		c.Next()
	}
}
