package middleware

import (
	"net/http"
	"strconv"
	"time"

	"studybuddy-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

const rateLimitWindow = time.Minute

// RateLimiter allows limit requests per client IP and minute, counted in Redis.
// Requests pass when Redis is unavailable.
func RateLimiter(rdb *redis.Client, limit int) gin.HandlerFunc {
	return func(c *gin.Context) {
		if rdb == nil || limit <= 0 {
			c.Next()
			return
		}

		key := "rate_limit:api:" + c.ClientIP()
		count, err := hit(c, rdb, key)
		if err != nil {
			logger.WithContext(c).WithError(err).Warn("rate limiter unavailable")
			c.Next()
			return
		}

		remaining := limit - int(count)
		if remaining < 0 {
			remaining = 0
		}
		c.Header("X-RateLimit-Limit", strconv.Itoa(limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))

		if int(count) > limit {
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error": "Too many requests, please try again later",
				"code":  "RATE_LIMITED",
			})
			return
		}

		c.Next()
	}
}

// hit increments the window counter and starts the window on the first request
func hit(c *gin.Context, rdb *redis.Client, key string) (int64, error) {
	ctx := c.Request.Context()

	count, err := rdb.Incr(ctx, key).Result()
	if err != nil {
		return 0, err
	}
	if count == 1 {
		if err := rdb.Expire(ctx, key, rateLimitWindow).Err(); err != nil {
			return 0, err
		}
	}
	return count, nil
}
