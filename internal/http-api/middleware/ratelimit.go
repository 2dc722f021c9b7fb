package middleware

import (
	"net/http"
	"strconv"
	"sync"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// PostRateLimit applies a per-client token bucket to write endpoints.
// Clients are keyed by their resolved user id; trusted services and
// unresolved callers fall back to the remote address. The limiter auto
// depletes tokens when Allow is called and refills over time.
func PostRateLimit(perSec float64, burst int) gin.HandlerFunc {
	var (
		mu       sync.Mutex
		limiters = make(map[string]*rate.Limiter)
	)

	limiterFor := func(key string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()
		limiter, ok := limiters[key]
		if !ok {
			limiter = rate.NewLimiter(rate.Limit(perSec), burst)
			limiters[key] = limiter
		}
		return limiter
	}

	return func(c *gin.Context) {
		key := c.ClientIP()
		if ident, ok := GetIdentity(c); ok && !ident.Service {
			key = "user:" + strconv.FormatInt(ident.UserID, 10)
		}

		if !limiterFor(key).Allow() {
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "rate limit exceeded"})
			c.Abort()
			return
		}

		c.Next()
	}
}
