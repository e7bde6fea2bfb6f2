package ratelimit

import (
	"context"
	"fmt"
	"time"

	redisClient "github.com/dajor/bewirtungsbeleg-sub002/pkg/redis"

	"github.com/redis/go-redis/v9"
)

// counter increment and expiry must be one atomic step, otherwise two
// concurrent requests could both pass the check
var fixedWindowScript = redis.NewScript(`
	local current = redis.call("GET", KEYS[1])
	if current == false then
		redis.call("SET", KEYS[1], 1, "EX", ARGV[2])
		return 1
	end
	local count = tonumber(current)
	if count >= tonumber(ARGV[1]) then
		return 0
	end
	redis.call("INCR", KEYS[1])
	return 1
`)

// RedisLimiter implements Limiter on a shared Redis backend so the limit
// holds across server instances.
type RedisLimiter struct {
	client    *redisClient.Client
	keyPrefix string
}

// NewRedisLimiter creates a Redis-backed rate limiter
func NewRedisLimiter(client *redisClient.Client, keyPrefix string) *RedisLimiter {
	if keyPrefix == "" {
		keyPrefix = "rate:"
	}
	return &RedisLimiter{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

func (r *RedisLimiter) key(id string) string {
	return fmt.Sprintf("%s%s", r.keyPrefix, id)
}

// CheckAndIncrement counts the request and fails once the limit is reached
func (r *RedisLimiter) CheckAndIncrement(ctx context.Context, key string, limit int, window time.Duration) error {
	result, err := r.client.EvalScript(ctx, fixedWindowScript, []string{r.key(key)}, limit, int(window.Seconds()))
	if err != nil {
		return err
	}

	if result == 0 {
		return ErrRateLimitExceeded
	}

	return nil
}
