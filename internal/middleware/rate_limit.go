package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"golang.org/x/time/rate"

	apperrors "github.com/pageza/repas/backend/internal/errors"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the time window for rate limiting
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
	// Key prefix for Redis keys
	KeyPrefix string
}

// RateLimiter is a fixed-window limiter shared by every replica through Redis
type RateLimiter struct {
	redis  *redis.Client
	config RateLimitConfig
	now    func() time.Time
}

// NewRateLimiter creates a new rate limiter instance
func NewRateLimiter(redisClient *redis.Client, config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		redis:  redisClient,
		config: config,
		now:    time.Now,
	}
}

// NewRecipeRateLimiter limits recipe generation to limit requests per client per hour
func NewRecipeRateLimiter(redisClient *redis.Client, limit int) *RateLimiter {
	return NewRateLimiter(redisClient, RateLimitConfig{
		Window:    time.Hour,
		Limit:     limit,
		KeyPrefix: "rate_limit:recipe_generation",
	})
}

// Middleware returns a Gin middleware that enforces the limit per client IP.
// When Redis cannot be reached the request goes through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, resetTime, err := rl.IsAllowed(c.Request.Context(), c.ClientIP())
		if err != nil {
			slog.Warn("rate limit check failed", "requestID", GetRequestID(c), "error", err)
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			rateLimitRejects.WithLabelValues("shared").Inc()
			retryAfter := int(resetTime.Sub(rl.now()).Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			c.Header("Retry-After", strconv.Itoa(retryAfter))
			WriteError(c, apperrors.WrapWithContext(apperrors.ErrCodeRateLimitExceeded,
				fmt.Sprintf("You have exceeded the rate limit of %d requests per %v", rl.config.Limit, rl.config.Window),
				nil, map[string]any{"remaining": remaining, "reset": resetTime.Unix()}))
			return
		}

		c.Next()
	}
}

// IsAllowed counts a request from client in the current window.
// Returns: allowed, remaining requests, reset time, error
func (rl *RateLimiter) IsAllowed(ctx context.Context, client string) (bool, int, time.Time, error) {
	windowStart := rl.now().Truncate(rl.config.Window)
	key := fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, client, windowStart.Unix())

	pipe := rl.redis.Pipeline()
	incrCmd := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rl.config.Window)

	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := int(incrCmd.Val())
	remaining := rl.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}

	return count <= rl.config.Limit, remaining, windowStart.Add(rl.config.Window), nil
}

// Headers set by LocalRateLimit. The X-RateLimit-* headers belong to the
// shared hourly window.
const (
	LocalLimitHeader     = "X-Local-RateLimit-Limit"
	LocalBurstHeader     = "X-Local-RateLimit-Burst"
	LocalRemainingHeader = "X-Local-RateLimit-Remaining"
)

// LocalRateLimit is a per-process token bucket refilled at limit requests
// per second. A non-positive limit disables it.
func LocalRateLimit(limit float64, burst int) gin.HandlerFunc {
	if limit <= 0 {
		return func(c *gin.Context) { c.Next() }
	}

	limiter := rate.NewLimiter(rate.Limit(limit), burst)
	return func(c *gin.Context) {
		if !limiter.Allow() {
			rateLimitRejects.WithLabelValues("local").Inc()
			c.Header("Retry-After", "1")
			WriteError(c, apperrors.WrapWithContext(apperrors.ErrCodeRateLimitExceeded,
				"Rate limit exceeded", nil, map[string]any{"limit": limit, "burst": burst}))
			return
		}

		c.Header(LocalLimitHeader, strconv.FormatFloat(limit, 'f', -1, 64))
		c.Header(LocalBurstHeader, strconv.Itoa(burst))
		c.Header(LocalRemainingHeader, strconv.Itoa(int(limiter.Tokens())))
		c.Next()
	}
}
