// Package ratelimit implements a per-subject sliding-window rate limiter.
//
// Subject keys are composed by the caller from the client's network
// identity and the logical operation name, so limits are independent per
// operation per caller. This is an in-process, single-node limiter — it
// does not coordinate across service instances.
package ratelimit

import (
	"sync"
	"time"
)

// Result describes the outcome of a rate-limit check. Reset is the
// advisory time at which the oldest recorded event falls out of the
// window.
type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	Reset     time.Time
}

// Limiter tracks recent event timestamps per subject key. The
// prune-test-append sequence runs under one mutex so two concurrent
// requests can never both observe stale counts and slip past the limit.
type Limiter struct {
	mu     sync.Mutex
	events map[string][]time.Time

	now func() time.Time
}

func New() *Limiter {
	return &Limiter{
		events: make(map[string][]time.Time),
		now:    time.Now,
	}
}

// Check prunes events older than the trailing window, then either rejects
// (without recording the attempt) or records the event and allows.
// After a check, no timestamp older than now-window remains for the key.
func (l *Limiter) Check(key string, limit int, window time.Duration) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	windowStart := now.Add(-window)

	recent := l.events[key][:0]
	for _, t := range l.events[key] {
		if t.After(windowStart) {
			recent = append(recent, t)
		}
	}

	if len(recent) >= limit {
		l.events[key] = recent
		reset := now.Add(window)
		if len(recent) > 0 {
			reset = recent[0].Add(window)
		}
		return Result{
			Allowed:   false,
			Limit:     limit,
			Remaining: 0,
			Reset:     reset,
		}
	}

	recent = append(recent, now)
	l.events[key] = recent
	return Result{
		Allowed:   true,
		Limit:     limit,
		Remaining: limit - len(recent),
		Reset:     recent[0].Add(window),
	}
}
