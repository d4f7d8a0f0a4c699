// Package ratelimit implements a sliding-window request limiter with
// per-user and global budgets over multiple window sizes. It protects the
// answer-validation and generation endpoints from runaway clients without
// any external dependency; state lives in process memory.
package ratelimit

import (
	"sync"
	"time"

	"github.com/google/uuid"
)

// Window is one sliding-window budget: within any span of Duration, a single
// user may make at most PerUser requests and all users together at most
// Global.
type Window struct {
	Duration time.Duration
	PerUser  int
	Global   int
}

// DefaultWindows are the standard budgets: burst control over a minute,
// sustained-use control over an hour and a day.
func DefaultWindows() []Window {
	return []Window{
		{Duration: time.Minute, PerUser: 40, Global: 200},
		{Duration: time.Hour, PerUser: 300, Global: 1200},
		{Duration: 24 * time.Hour, PerUser: 1200, Global: 5000},
	}
}

// Limiter tracks request timestamps and answers whether the next request
// fits every window's budget.
type Limiter struct {
	mu      sync.Mutex
	windows []Window
	user    map[uuid.UUID][]time.Time
	global  []time.Time
	now     func() time.Time // injectable for testing
	horizon time.Duration    // largest window; older events are dropped
}

// New creates a Limiter with the given windows. Passing no windows yields a
// limiter that allows everything.
func New(windows []Window) *Limiter {
	var horizon time.Duration
	for _, w := range windows {
		if w.Duration > horizon {
			horizon = w.Duration
		}
	}

	return &Limiter{
		windows: windows,
		user:    make(map[uuid.UUID][]time.Time),
		now:     time.Now,
		horizon: horizon,
	}
}

// Allow reports whether the user may make a request now. When allowed, the
// request is recorded against every window; a denied request is not recorded,
// so being throttled never extends the throttle.
func (l *Limiter) Allow(userID uuid.UUID) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evict(userID, now)

	for _, w := range l.windows {
		cutoff := now.Add(-w.Duration)
		if countSince(l.user[userID], cutoff) >= w.PerUser {
			return false
		}
		if countSince(l.global, cutoff) >= w.Global {
			return false
		}
	}

	l.user[userID] = append(l.user[userID], now)
	l.global = append(l.global, now)
	return true
}

// RetryAfter estimates how long the user must wait before the next request
// can pass. Returns zero when a request would be allowed right now.
func (l *Limiter) RetryAfter(userID uuid.UUID) time.Duration {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	l.evict(userID, now)

	var wait time.Duration
	for _, w := range l.windows {
		cutoff := now.Add(-w.Duration)
		if d := retryDelay(l.user[userID], cutoff, w.PerUser, w.Duration, now); d > wait {
			wait = d
		}
		if d := retryDelay(l.global, cutoff, w.Global, w.Duration, now); d > wait {
			wait = d
		}
	}
	return wait
}

// evict drops events older than the largest window. Empty user buckets are
// removed so the map does not grow with every user ever seen.
func (l *Limiter) evict(userID uuid.UUID, now time.Time) {
	cutoff := now.Add(-l.horizon)

	l.global = dropBefore(l.global, cutoff)

	if events, ok := l.user[userID]; ok {
		events = dropBefore(events, cutoff)
		if len(events) == 0 {
			delete(l.user, userID)
		} else {
			l.user[userID] = events
		}
	}
}

func dropBefore(events []time.Time, cutoff time.Time) []time.Time {
	i := 0
	for i < len(events) && !events[i].After(cutoff) {
		i++
	}
	if i == 0 {
		return events
	}
	return append(events[:0:0], events[i:]...)
}

func countSince(events []time.Time, cutoff time.Time) int {
	n := 0
	for _, e := range events {
		if e.After(cutoff) {
			n++
		}
	}
	return n
}

// retryDelay computes how long until the oldest event blocking the budget
// slides out of the window.
func retryDelay(events []time.Time, cutoff time.Time, limit int, window time.Duration, now time.Time) time.Duration {
	// A non-positive budget never admits a request, so no event aging out
	// changes that; the window itself is the only wait estimate to give.
	if limit <= 0 {
		return window
	}

	inWindow := make([]time.Time, 0, len(events))
	for _, e := range events {
		if e.After(cutoff) {
			inWindow = append(inWindow, e)
		}
	}
	if len(inWindow) < limit {
		return 0
	}

	// The request becomes admissible once enough events age out that the
	// count drops below the limit.
	blocking := inWindow[len(inWindow)-limit]
	return blocking.Add(window).Sub(now)
}
