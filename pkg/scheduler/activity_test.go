package scheduler

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestActivityTracker(t *testing.T) {
	tracker := NewActivityTracker()

	// No activity recorded yet.
	assert.False(t, tracker.ActiveWithin(time.Hour))
	assert.True(t, tracker.LastActivity().IsZero())

	tracker.Touch()
	assert.True(t, tracker.ActiveWithin(time.Hour))
	assert.False(t, tracker.LastActivity().IsZero())

	// A touch outside the window does not count as active.
	assert.False(t, tracker.ActiveWithin(-time.Second))
}
