package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"sync"
	"time"

	"talent-hub-backend/internal/delivery/http/response"
	"talent-hub-backend/pkg/logger"

	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
)

// RateLimitConfig holds configuration for rate limiting
type RateLimitConfig struct {
	// Requests per window
	Limit int
	// Time window duration
	Window time.Duration
	// Custom key extractor (default: IP-based)
	KeyFunc func(*gin.Context) string
	// Key prefix for Redis (default: "rl:ip:")
	KeyPrefix string
	// Whether to fail closed (reject) when Redis is unavailable
	FailClosed bool
}

// DefaultRateLimitConfig returns the global API limit.
func DefaultRateLimitConfig(limit int, window time.Duration) RateLimitConfig {
	return RateLimitConfig{
		Limit:      limit,
		Window:     window,
		KeyPrefix:  "rl:ip:",
		FailClosed: false, // Fail open by default for availability
		KeyFunc: func(c *gin.Context) string {
			return c.ClientIP()
		},
	}
}

// rateLimitEntry tracks request count for a key (in-memory fallback)
type rateLimitEntry struct {
	count   int
	resetAt time.Time
	mu      sync.Mutex
}

// Lua script for atomic increment with TTL on first set
// KEYS[1] = counter key
// ARGV[1] = TTL in seconds
// Returns: [current_count, ttl_remaining]
const rateLimitLuaScript = `
local count = redis.call('INCR', KEYS[1])
if count == 1 then
    redis.call('EXPIRE', KEYS[1], ARGV[1])
end
local ttl = redis.call('TTL', KEYS[1])
return {count, ttl}
`

// RateLimiter counts requests per key in Redis when a client is available
// and in process memory otherwise.
type RateLimiter struct {
	config  RateLimitConfig
	redis   *goredis.Client
	entries sync.Map // key -> *rateLimitEntry
	now     func() time.Time
}

// NewRateLimiter creates a limiter; client may be nil.
func NewRateLimiter(config RateLimitConfig, client *goredis.Client) *RateLimiter {
	if config.KeyFunc == nil {
		config.KeyFunc = func(c *gin.Context) string { return c.ClientIP() }
	}
	return &RateLimiter{
		config: config,
		redis:  client,
		now:    time.Now,
	}
}

// Backend names the counter store in use.
func (l *RateLimiter) Backend() string {
	if l.redis != nil {
		return "redis"
	}
	return "memory"
}

// StartCleanup sweeps expired in-memory entries until ctx is done.
func (l *RateLimiter) StartCleanup(ctx context.Context, every time.Duration) {
	go func() {
		ticker := time.NewTicker(every)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.sweep(l.now())
			}
		}
	}()
}

func (l *RateLimiter) sweep(now time.Time) {
	l.entries.Range(func(key, value any) bool {
		entry := value.(*rateLimitEntry)
		entry.mu.Lock()
		if now.After(entry.resetAt) {
			l.entries.Delete(key)
		}
		entry.mu.Unlock()
		return true
	})
}

// Middleware enforces the limit on every request it wraps.
func (l *RateLimiter) Middleware() gin.HandlerFunc {
	config := l.config

	return func(c *gin.Context) {
		fullKey := config.KeyPrefix + config.KeyFunc(c)
		now := l.now()

		var count int
		var resetAt time.Time

		if l.redis != nil {
			var err error
			count, resetAt, err = l.checkRedis(c.Request.Context(), fullKey)
			if err != nil {
				logger.Log.Warn("Rate limit backend error", "error", err, "fail_closed", config.FailClosed)
				if config.FailClosed {
					response.Error(c, http.StatusServiceUnavailable, "Service temporarily unavailable. Please try again.", nil)
					c.Abort()
					return
				}
				count, resetAt = l.checkInMemory(fullKey, now)
			}
		} else {
			count, resetAt = l.checkInMemory(fullKey, now)
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(config.Limit))
		c.Header("X-RateLimit-Reset", resetAt.Format(time.RFC3339))

		if count > config.Limit {
			retryAfter := int(resetAt.Sub(now).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("X-RateLimit-Remaining", "0")
			c.Header("Retry-After", strconv.Itoa(retryAfter))

			logger.Log.Info("Rate limit exceeded", "ip", c.ClientIP(), "path", c.FullPath(), "request_id", c.GetString("RequestID"))

			response.Error(c, http.StatusTooManyRequests, "Rate limit exceeded. Please try again later.", nil)
			c.Abort()
			return
		}

		c.Header("X-RateLimit-Remaining", strconv.Itoa(config.Limit-count))
		c.Next()
	}
}

// checkRedis checks rate limit using Redis with atomic Lua script
func (l *RateLimiter) checkRedis(ctx context.Context, key string) (int, time.Time, error) {
	ttlSeconds := int(l.config.Window.Seconds())

	result, err := l.redis.Eval(ctx, rateLimitLuaScript, []string{key}, ttlSeconds).Result()
	if err != nil {
		return 0, time.Time{}, fmt.Errorf("redis rate limit eval failed: %w", err)
	}

	// Parse result [count, ttl]
	arr, ok := result.([]interface{})
	if !ok || len(arr) < 2 {
		return 0, time.Time{}, fmt.Errorf("unexpected redis result format")
	}

	count, _ := arr[0].(int64)
	ttl, _ := arr[1].(int64)

	return int(count), l.now().Add(time.Duration(ttl) * time.Second), nil
}

// checkInMemory checks rate limit using in-memory store (fallback)
func (l *RateLimiter) checkInMemory(key string, now time.Time) (int, time.Time) {
	entryI, _ := l.entries.LoadOrStore(key, &rateLimitEntry{
		resetAt: now.Add(l.config.Window),
	})
	entry := entryI.(*rateLimitEntry)

	entry.mu.Lock()
	defer entry.mu.Unlock()

	// Reset if window expired
	if now.After(entry.resetAt) {
		entry.count = 0
		entry.resetAt = now.Add(l.config.Window)
	}

	entry.count++

	return entry.count, entry.resetAt
}
