package middlewares

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

type Limiter interface {
	Allow(ctx context.Context, key string) (bool, error)
}

// scripter is the part of *redis.Client the limiter needs.
type scripter interface {
	Eval(ctx context.Context, script string, keys []string, args ...interface{}) *redis.Cmd
}

// Fixed window counter: the first hit in a window starts its expiry.
const fixedWindowScript = `
local current = redis.call('INCR', KEYS[1])
if current == 1 then
	redis.call('PEXPIRE', KEYS[1], ARGV[1])
end
return current
`

type RedisLimiter struct {
	client scripter
	limit  int64
	window time.Duration
}

func NewRedisLimiter(client scripter, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{client: client, limit: int64(limit), window: window}
}

func (l *RedisLimiter) Allow(ctx context.Context, key string) (bool, error) {
	count, err := l.client.Eval(ctx, fixedWindowScript, []string{"ratelimit:" + key}, l.window.Milliseconds()).Int64()
	if err != nil {
		return false, err
	}
	return count <= l.limit, nil
}

// RateLimit limits requests per client IP and route. A nil limiter disables
// it, and a limiter error lets the request through.
func RateLimit(limiter Limiter, logger zerolog.Logger) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		if limiter == nil {
			ctx.Next()
			return
		}

		allowed, err := limiter.Allow(ctx.Request.Context(), ctx.FullPath()+":"+ctx.ClientIP())
		if err != nil {
			logger.Warn().Err(err).Str("path", ctx.FullPath()).Msg("rate limiter unavailable")
			ctx.Next()
			return
		}
		if !allowed {
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{"message": "Too many requests, try again later"})
			return
		}
		ctx.Next()
	}
}
