package api

import (
	"crypto/subtle"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/time/rate"
)

// authMiddleware validates the X-API-Key header against the configured key
func authMiddleware(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		provided := c.GetHeader("X-API-Key")
		if provided == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "API Key required in X-API-Key header"})
			return
		}
		if subtle.ConstantTimeCompare([]byte(provided), []byte(apiKey)) != 1 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorResponse{Error: "Invalid API Key"})
			return
		}
		c.Next()
	}
}

// rateLimitMiddleware applies a per-client token bucket, keyed by client IP.
// Limiters for idle clients are dropped after an hour.
func rateLimitMiddleware(perMinute float64) gin.HandlerFunc {
	type client struct {
		limiter  *rate.Limiter
		lastSeen time.Time
	}

	var (
		mu      sync.Mutex
		clients = make(map[string]*client)
	)

	limiterFor := func(ip string) *rate.Limiter {
		mu.Lock()
		defer mu.Unlock()

		if cl, ok := clients[ip]; ok {
			cl.lastSeen = time.Now()
			return cl.limiter
		}

		for ip, cl := range clients {
			if time.Since(cl.lastSeen) > time.Hour {
				delete(clients, ip)
			}
		}

		cl := &client{
			limiter:  rate.NewLimiter(rate.Limit(perMinute/60.0), int(perMinute)),
			lastSeen: time.Now(),
		}
		clients[ip] = cl
		return cl.limiter
	}

	return func(c *gin.Context) {
		if !limiterFor(c.ClientIP()).Allow() {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, errorResponse{Error: "Rate limit exceeded"})
			return
		}
		c.Next()
	}
}
