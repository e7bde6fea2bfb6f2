package ratelimit

import (
	"context"
	"sync"
	"time"
)

// MemoryLimiter implements Limiter in process memory. Only suitable for
// single-instance deployments; used when Redis is not configured.
type MemoryLimiter struct {
	mu   sync.Mutex
	keys map[string]*windowCount
}

type windowCount struct {
	count     int
	windowEnd time.Time
}

// NewMemoryLimiter creates an in-memory rate limiter
func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{
		keys: make(map[string]*windowCount),
	}
}

// CheckAndIncrement counts the request and fails once the limit is reached
func (m *MemoryLimiter) CheckAndIncrement(ctx context.Context, key string, limit int, window time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	wc, exists := m.keys[key]

	if !exists || now.After(wc.windowEnd) {
		m.keys[key] = &windowCount{
			count:     1,
			windowEnd: now.Add(window),
		}
		return nil
	}

	if wc.count >= limit {
		return ErrRateLimitExceeded
	}

	wc.count++
	return nil
}
