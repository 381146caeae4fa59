// Package ratelimit implements a fixed-window per-key request counter. It is
// process-local and best-effort: state lives in one in-memory map and expired
// windows are reaped lazily, so no background goroutine is needed.
package ratelimit

import (
	"sync"
	"time"
)

// cleanupInterval throttles the opportunistic sweep of expired entries folded
// into Check. The sweep is amortized: full-map scans happen at most once per
// interval, not per request.
const cleanupInterval = 60 * time.Second

// Config describes one fixed window. Limit and Window must both be positive;
// non-positive values are out of contract and not clamped.
type Config struct {
	Limit  int
	Window time.Duration
}

// Result reports the outcome of one Check call. Reset is the epoch second
// (rounded up) at which the window ends. RetryAfter is set only when the
// request was denied.
type Result struct {
	Allowed    bool
	Limit      int
	Remaining  int
	Reset      int64
	RetryAfter int64
}

type entry struct {
	count     int
	resetTime time.Time
}

// Limiter is safe for concurrent use. At most one entry exists per key; an
// entry past its reset time is replaced whole, never merged.
type Limiter struct {
	mu          sync.Mutex
	entries     map[string]*entry
	lastCleanup time.Time
	now         func() time.Time
}

func New() *Limiter {
	return NewWithClock(time.Now)
}

// NewWithClock injects the time source, so tests can cross window and sweep
// boundaries without waiting on the wall clock.
func NewWithClock(now func() time.Time) *Limiter {
	return &Limiter{
		entries:     make(map[string]*entry),
		lastCleanup: now(),
		now:         now,
	}
}

// Check records one request against key and reports whether it is within the
// configured window. A denied request does not mutate the entry.
func (l *Limiter) Check(key string, cfg Config) Result {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	if now.Sub(l.lastCleanup) > cleanupInterval {
		l.sweep(now)
	}

	e, ok := l.entries[key]
	if !ok || e.resetTime.Before(now) {
		resetTime := now.Add(cfg.Window)
		l.entries[key] = &entry{count: 1, resetTime: resetTime}
		return Result{
			Allowed:   true,
			Limit:     cfg.Limit,
			Remaining: cfg.Limit - 1,
			Reset:     ceilUnix(resetTime),
		}
	}

	if e.count >= cfg.Limit {
		return Result{
			Allowed:    false,
			Limit:      cfg.Limit,
			Remaining:  0,
			Reset:      ceilUnix(e.resetTime),
			RetryAfter: ceilSeconds(e.resetTime.Sub(now)),
		}
	}

	e.count++
	return Result{
		Allowed:   true,
		Limit:     cfg.Limit,
		Remaining: cfg.Limit - e.count,
		Reset:     ceilUnix(e.resetTime),
	}
}

// Sweep removes every expired entry immediately, regardless of the throttle
// interval.
func (l *Limiter) Sweep() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.sweep(l.now())
}

// Size reports the number of live entries, expired or not.
func (l *Limiter) Size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// sweep must be called with the mutex held.
func (l *Limiter) sweep(now time.Time) {
	for key, e := range l.entries {
		if e.resetTime.Before(now) {
			delete(l.entries, key)
		}
	}
	l.lastCleanup = now
}

func ceilUnix(t time.Time) int64 {
	return (t.UnixMilli() + 999) / 1000
}

func ceilSeconds(d time.Duration) int64 {
	return int64((d + time.Second - 1) / time.Second)
}
