package scheduler

import (
	"sync"
	"time"
)

// ActivityTracker records the last observed user interaction. The
// scheduler defers background processing while a user was recently
// active so interactive requests never compete with batch work for the
// LLM backend.
type ActivityTracker struct {
	mu   sync.Mutex
	last time.Time
}

// NewActivityTracker creates a tracker with no recorded activity.
func NewActivityTracker() *ActivityTracker {
	return &ActivityTracker{}
}

// Touch records a user interaction now.
func (t *ActivityTracker) Touch() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.last = time.Now()
}

// ActiveWithin reports whether a user interaction happened inside the
// given window.
func (t *ActivityTracker) ActiveWithin(window time.Duration) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.last.IsZero() {
		return false
	}
	return time.Since(t.last) < window
}

// LastActivity returns the most recent interaction time, zero if none.
func (t *ActivityTracker) LastActivity() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.last
}
