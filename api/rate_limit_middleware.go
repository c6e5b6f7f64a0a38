package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"golang.org/x/time/rate"
)

// RateLimit allows perMinute requests per client IP with the given burst. Limiters of idle
// clients expire from the cache.
func RateLimit(perMinute, burst int) gin.HandlerFunc {
	logger := slog.Default().With("component", "rate-limit")
	limiters := cache.New(10*time.Minute, 20*time.Minute)
	every := rate.Every(time.Minute / time.Duration(perMinute))

	return func(c *gin.Context) {
		ip := c.ClientIP()

		// only the first request of an IP creates its limiter
		_ = limiters.Add(ip, rate.NewLimiter(every, burst), cache.DefaultExpiration)

		cached, found := limiters.Get(ip)

		if !found {
			c.Next()
			return
		}

		limiter := cached.(*rate.Limiter)
		limiters.SetDefault(ip, limiter)

		if !limiter.Allow() {
			logger.Warn("rate limit exceeded", "ip", ip, "path", c.FullPath())
			c.Header("Retry-After", "60")
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "too many requests, try again later",
				"code":  "RATE_LIMITED",
			})
			return
		}

		c.Next()
	}
}
