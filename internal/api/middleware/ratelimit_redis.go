package middleware

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/redis/go-redis/v9"
)

// incrExpireScript atomically counts a request and starts the window's TTL
// on first increment.
var incrExpireScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
	redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RedisRateLimiter is a fixed-window rate limiter backed by Redis, shared
// across replicas.
type RedisRateLimiter struct {
	client *redis.Client
	limit  int
	window time.Duration
	prefix string
	logger *slog.Logger
}

// NewRedisRateLimiter creates a limiter allowing limit requests per window
// per client, with counters stored under prefix.
func NewRedisRateLimiter(client *redis.Client, limit int, window time.Duration, prefix string, logger *slog.Logger) *RedisRateLimiter {
	if prefix == "" {
		prefix = "ratelimit"
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &RedisRateLimiter{
		client: client,
		limit:  limit,
		window: window,
		prefix: prefix,
		logger: logger.With(slog.String("component", "redis_rate_limiter")),
	}
}

// Allow counts the request and reports whether it fits within the window.
// Fails open: a Redis error never blocks the request.
func (l *RedisRateLimiter) Allow(r *http.Request, key string) bool {
	redisKey := l.prefix + ":" + key
	count, err := incrExpireScript.Run(r.Context(), l.client,
		[]string{redisKey}, l.window.Milliseconds()).Int64()
	if err != nil {
		l.logger.Warn("rate limit check failed, allowing request",
			slog.String("error", err.Error()))
		return true
	}
	return count <= int64(l.limit)
}
