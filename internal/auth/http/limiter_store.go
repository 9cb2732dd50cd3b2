package http

import (
	"context"
	"sync"
	"time"

	"golang.org/x/time/rate"
)

// limiterStore holds one token-bucket limiter per key with automatic cleanup.
type limiterStore[K comparable] struct {
	limiters sync.Map // map[K]*limiterEntry
	rps      float64
	burst    int
}

// limiterEntry holds a rate limiter and last access time for cleanup.
type limiterEntry struct {
	limiter    *rate.Limiter
	lastAccess time.Time
	mu         sync.Mutex
}

// newLimiterStore creates a store and starts a cleanup goroutine that runs
// every interval until ctx is cancelled.
func newLimiterStore[K comparable](ctx context.Context, rps float64, burst int, interval time.Duration) *limiterStore[K] {
	s := &limiterStore[K]{rps: rps, burst: burst}
	go s.cleanupStale(ctx, interval, time.Hour)
	return s
}

// getLimiter retrieves or creates the rate limiter for key.
func (s *limiterStore[K]) getLimiter(key K) *rate.Limiter {
	now := time.Now()

	if val, ok := s.limiters.Load(key); ok {
		entry := val.(*limiterEntry)
		entry.mu.Lock()
		entry.lastAccess = now
		entry.mu.Unlock()
		return entry.limiter
	}

	entry := &limiterEntry{
		limiter:    rate.NewLimiter(rate.Limit(s.rps), s.burst),
		lastAccess: now,
	}
	actual, _ := s.limiters.LoadOrStore(key, entry)
	return actual.(*limiterEntry).limiter
}

// retryAfter reports how many whole seconds until limiter admits another request.
func retryAfter(limiter *rate.Limiter) int {
	reservation := limiter.Reserve()
	delay := reservation.Delay()
	reservation.Cancel()

	seconds := int(delay / time.Second)
	if delay%time.Second != 0 {
		seconds++
	}
	return seconds
}

// cleanupStale removes limiters not accessed within maxIdle.
func (s *limiterStore[K]) cleanupStale(ctx context.Context, interval, maxIdle time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.removeIdle(time.Now().Add(-maxIdle))
		}
	}
}

func (s *limiterStore[K]) removeIdle(threshold time.Time) {
	s.limiters.Range(func(key, value any) bool {
		entry := value.(*limiterEntry)
		entry.mu.Lock()
		shouldDelete := entry.lastAccess.Before(threshold)
		entry.mu.Unlock()

		if shouldDelete {
			s.limiters.Delete(key)
		}
		return true
	})
}
