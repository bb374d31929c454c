package security

import (
	"sync"
	"time"
)

// Limiter is a sliding-window submission limiter keyed by caller identity.
type Limiter struct {
	max    int
	window time.Duration

	mu       sync.Mutex
	attempts map[string][]time.Time
}

func NewLimiter(max int, window time.Duration) *Limiter {
	return &Limiter{
		max:      max,
		window:   window,
		attempts: make(map[string][]time.Time),
	}
}

// Allow reports whether the caller identified by key may submit at the
// given moment and records the attempt when it may. On denial it returns
// how long the caller must wait until the oldest attempt leaves the window.
func (l *Limiter) Allow(key string, at time.Time) (bool, time.Duration) {
	l.mu.Lock()
	defer l.mu.Unlock()

	recent := make([]time.Time, 0, l.max)
	for _, attempt := range l.attempts[key] {
		if at.Sub(attempt) < l.window {
			recent = append(recent, attempt)
		}
	}

	if len(recent) >= l.max {
		l.attempts[key] = recent
		return false, l.window - at.Sub(recent[0])
	}

	l.attempts[key] = append(recent, at)
	return true, 0
}

// Remaining tells how many submissions the caller has left in the
// current window without recording anything.
func (l *Limiter) Remaining(key string, at time.Time) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	active := 0
	for _, attempt := range l.attempts[key] {
		if at.Sub(attempt) < l.window {
			active++
		}
	}

	if active >= l.max {
		return 0
	}
	return l.max - active
}
