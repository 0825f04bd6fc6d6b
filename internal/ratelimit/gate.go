package ratelimit

import (
	"fmt"
	"sync"
	"time"
)

const DefaultInterval = 60 * time.Second

// Operation names, one independent gate each.
const (
	OpUploadSingle   = "upload-single"
	OpGenerateSingle = "generate-single"
	OpUploadDaily    = "upload-daily"
	OpGenerateDaily  = "generate-daily"
)

// RateLimitedError is returned by Gate when the interval has not elapsed.
type RateLimitedError struct {
	Operation        string
	SecondsRemaining int
}

func (e *RateLimitedError) Error() string {
	return fmt.Sprintf("operation %q rate limited, retry in %d seconds", e.Operation, e.SecondsRemaining)
}

// Limiter enforces a minimum interval between accepted calls per operation.
// Check and update happen under one lock, so two concurrent callers can never
// both pass the same gate.
type Limiter struct {
	interval time.Duration
	now      func() time.Time

	mu   sync.Mutex
	last map[string]time.Time
}

type Option func(*Limiter)

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(l *Limiter) {
		l.now = now
	}
}

func New(interval time.Duration, opts ...Option) *Limiter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	l := &Limiter{
		interval: interval,
		now:      time.Now,
		last:     make(map[string]time.Time),
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

func (l *Limiter) Interval() time.Duration {
	return l.interval
}

// Gate returns the accepted timestamp, or a *RateLimitedError without
// touching state.
func (l *Limiter) Gate(op string) (time.Time, error) {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	if last, ok := l.last[op]; ok {
		elapsed := now.Sub(last)
		if elapsed < l.interval {
			remaining := int(l.interval/time.Second) - int(elapsed/time.Second)
			if remaining < 1 {
				remaining = 1
			}
			return time.Time{}, &RateLimitedError{Operation: op, SecondsRemaining: remaining}
		}
	}
	l.last[op] = now
	return now, nil
}
