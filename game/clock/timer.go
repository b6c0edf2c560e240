// Package clock holds the frame-driven repeating timers that pace the
// simulation.
package clock

import "time"

// Timer accumulates frame deltas and fires at most once per Tick when its
// period is crossed. The remainder modulo the period is carried over.
type Timer struct {
	period   time.Duration
	elapsed  time.Duration
	finished bool
}

// NewTimer creates a repeating timer. A non-positive period never fires.
func NewTimer(period time.Duration) *Timer {
	return &Timer{period: period}
}

// Tick advances the timer by dt and returns it so callers can chain
// JustFinished.
func (t *Timer) Tick(dt time.Duration) *Timer {
	t.finished = false
	if t.period <= 0 || dt <= 0 {
		return t
	}
	t.elapsed += dt
	if t.elapsed >= t.period {
		t.elapsed %= t.period
		t.finished = true
	}
	return t
}

// JustFinished reports whether the last Tick crossed the period.
func (t *Timer) JustFinished() bool {
	return t.finished
}

// Reset clears accumulated time.
func (t *Timer) Reset() {
	t.elapsed = 0
	t.finished = false
}
