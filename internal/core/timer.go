package core

import "time"

// FixedInterval paces simulation steps on a wall-clock interval. At most one
// step is ever pending: a slow frame does not cause a burst of catch-up steps.
type FixedInterval struct {
	interval time.Duration
	last     time.Time
	now      func() time.Time
}

// DefaultInterval is used when a non-positive interval is requested.
const DefaultInterval = 400 * time.Millisecond

// NewFixedInterval constructs a FixedInterval firing every d.
func NewFixedInterval(d time.Duration) *FixedInterval {
	if d <= 0 {
		d = DefaultInterval
	}
	return &FixedInterval{interval: d, now: time.Now}
}

// Restart makes the next step due one full interval from now.
func (f *FixedInterval) Restart() { f.last = f.now() }

// Due reports whether a step should run now. The first call only starts the
// clock.
func (f *FixedInterval) Due() bool {
	now := f.now()
	if f.last.IsZero() {
		f.last = now
		return false
	}
	if now.Sub(f.last) < f.interval {
		return false
	}
	f.last = now
	return true
}
