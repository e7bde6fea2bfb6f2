package ratelimit

import (
	"context"
	"errors"
	"time"
)

// ErrRateLimitExceeded is returned when a caller has exhausted its window.
var ErrRateLimitExceeded = errors.New("rate limit exceeded")

// Limiter counts requests per key within a fixed window.
type Limiter interface {
	CheckAndIncrement(ctx context.Context, key string, limit int, window time.Duration) error
}
