package fakeapi

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimitConfig defines a fixed-window limit
type RateLimitConfig struct {
	Window    time.Duration
	Limit     int
	KeyPrefix string
}

// RateLimiter counts requests per user in Redis
type RateLimiter struct {
	redis  *redis.Client
	config RateLimitConfig
	now    func() time.Time
}

// NewRateLimiter creates a limiter backed by redisClient
func NewRateLimiter(redisClient *redis.Client, config RateLimitConfig) *RateLimiter {
	return &RateLimiter{
		redis:  redisClient,
		config: config,
		now:    time.Now,
	}
}

// NewRecipeCreationRateLimiter limits recipe creation to limit per window
func NewRecipeCreationRateLimiter(redisClient *redis.Client, limit int, window time.Duration) *RateLimiter {
	return NewRateLimiter(redisClient, RateLimitConfig{
		Window:    window,
		Limit:     limit,
		KeyPrefix: "fridgechef:rate_limit:recipe_creation",
	})
}

// Allow records one request for userID.
// Returns: allowed, remaining requests, reset time, error
func (rl *RateLimiter) Allow(ctx context.Context, userID string) (bool, int, time.Time, error) {
	windowStart := rl.now().Truncate(rl.config.Window)
	key := fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, userID, windowStart.Unix())

	pipe := rl.redis.Pipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, rl.config.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := int(incr.Val())
	remaining := max(rl.config.Limit-count, 0)
	return count <= rl.config.Limit, remaining, windowStart.Add(rl.config.Window), nil
}

// middleware must run after requireAuth. Redis failures let the request
// through.
func (rl *RateLimiter) middleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString(userIDKey)

		allowed, remaining, reset, err := rl.Allow(c.Request.Context(), userID)
		if err != nil {
			logger.Warn("Rate limit check failed", zap.Error(err))
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(reset.Unix(), 10))

		if !allowed {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":       "rate limit exceeded",
				"message":     fmt.Sprintf("You have exceeded the rate limit of %d requests per %v", rl.config.Limit, rl.config.Window),
				"retry_after": int(reset.Sub(rl.now()).Seconds()),
			})
			return
		}
		c.Next()
	}
}
