package ratelimit

import (
	"context"
	"sync"
	"time"
)

type tracker struct {
	count   int
	resetAt time.Time
}

// MemoryLimiter is a fixed-window counter per key. State is process-local
// and lost on restart, so limits are per-instance under multi-instance
// deployment; use RedisLimiter for shared limits.
type MemoryLimiter struct {
	mu       sync.Mutex
	visitors map[string]*tracker
	max      int
	window   time.Duration
	now      func() time.Time
	stop     chan struct{}
}

func NewMemoryLimiter(max int, window time.Duration) *MemoryLimiter {
	l := &MemoryLimiter{
		visitors: make(map[string]*tracker),
		max:      max,
		window:   window,
		now:      time.Now,
		stop:     make(chan struct{}),
	}
	go l.cleanup()
	return l
}

func (l *MemoryLimiter) Allow(_ context.Context, key string) (Result, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	t, ok := l.visitors[key]
	if !ok || now.After(t.resetAt) {
		t = &tracker{resetAt: now.Add(l.window)}
		l.visitors[key] = t
	}

	t.count++
	remaining := l.max - t.count
	if remaining < 0 {
		remaining = 0
	}

	return Result{
		Allowed:   t.count <= l.max,
		Remaining: remaining,
		ResetAt:   t.resetAt,
	}, nil
}

// cleanup drops expired trackers so the map stays bounded by the set of
// IPs seen within one window.
func (l *MemoryLimiter) cleanup() {
	ticker := time.NewTicker(time.Minute)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.mu.Lock()
			now := l.now()
			for key, t := range l.visitors {
				if now.After(t.resetAt) {
					delete(l.visitors, key)
				}
			}
			l.mu.Unlock()
		}
	}
}

func (l *MemoryLimiter) Close() {
	close(l.stop)
}
