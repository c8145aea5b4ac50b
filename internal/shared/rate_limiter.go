package shared

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog"
)

// RateLimitConfig is a fixed-window limit for one route.
type RateLimitConfig struct {
	Requests int
	Window   time.Duration
}

// RateLimiter applies per-route, per-client fixed windows backed by an
// expiring in-memory cache.
type RateLimiter struct {
	cache   *cache.Cache
	configs map[string]RateLimitConfig
	metrics *AppMetrics
	logger  zerolog.Logger
}

type rateLimitEntry struct {
	Count     int
	ResetTime time.Time
}

func NewRateLimiter(logger zerolog.Logger, metrics *AppMetrics) *RateLimiter {
	return &RateLimiter{
		cache: cache.New(5*time.Minute, 10*time.Minute),
		configs: map[string]RateLimitConfig{
			"POST /auth/local/register": {Requests: 5, Window: time.Minute},
			"POST /auth/local":          {Requests: 10, Window: time.Minute},
			"default":                   {Requests: 100, Window: time.Minute},
		},
		metrics: metrics,
		logger:  logger.With().Str("component", "rate_limiter").Logger(),
	}
}

func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		route := c.Request.Method + " " + c.FullPath()

		config, exists := rl.configs[route]

		if !exists {
			config = rl.configs["default"]
		}

		key := fmt.Sprintf("%s|%s", route, c.ClientIP())
		now := time.Now()

		entry := &rateLimitEntry{Count: 0, ResetTime: now.Add(config.Window)}

		if cached, found := rl.cache.Get(key); found {
			entry = cached.(*rateLimitEntry)

			if now.After(entry.ResetTime) {
				entry = &rateLimitEntry{Count: 0, ResetTime: now.Add(config.Window)}
			}
		}

		entry.Count++
		rl.cache.Set(key, entry, config.Window)

		if entry.Count > config.Requests {
			rl.metrics.RecordRateLimitHit(c.FullPath())

			rl.logger.Warn().
				Str("route", route).
				Str("ip", c.ClientIP()).
				Int("count", entry.Count).
				Msg("rate limit exceeded")

			retryAfter := int(time.Until(entry.ResetTime).Seconds()) + 1

			c.Header("Retry-After", strconv.Itoa(retryAfter))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
			return
		}

		c.Next()
	}
}
