package ratelimit

import (
	"context"
	"sync"
	"time"
)

// Limiter answers whether a client may issue another request in the current
// window. The returned duration is the time until the window resets and is
// only meaningful when the request is denied.
type Limiter interface {
	Allow(ctx context.Context, key string) (bool, time.Duration, error)
}

// MemoryLimiter is a fixed-window per-key counter. Good enough for a single
// process; use the Redis-backed limiter when running more than one replica.
type MemoryLimiter struct {
	mu       sync.Mutex
	limit    int
	window   time.Duration
	counters map[string]*windowCounter
	now      func() time.Time
}

type windowCounter struct {
	count   int
	resetAt time.Time
}

func NewMemoryLimiter(limit int, window time.Duration) *MemoryLimiter {
	return &MemoryLimiter{
		limit:    limit,
		window:   window,
		counters: map[string]*windowCounter{},
		now:      time.Now,
	}
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (bool, time.Duration, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()

	counter, ok := l.counters[key]
	if !ok || now.After(counter.resetAt) {
		l.counters[key] = &windowCounter{count: 1, resetAt: now.Add(l.window)}
		return true, 0, nil
	}

	counter.count++
	if counter.count > l.limit {
		return false, counter.resetAt.Sub(now), nil
	}
	return true, 0, nil
}
