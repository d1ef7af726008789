package counter

import "time"

// Clock provides the current time. Use RealClock in production and
// ManualClock in tests.
type Clock interface {
	Now() time.Time
}

// RealClock returns the actual local time.
type RealClock struct{}

// Now returns LocalNow.
func (RealClock) Now() time.Time { return LocalNow() }

// LocalNow returns the current local time truncated to whole seconds, the
// resolution every breakdown is reported in.
func LocalNow() time.Time {
	return time.Now().Truncate(time.Second)
}

// ManualClock is a Clock that only moves when told to.
type ManualClock struct {
	now time.Time
}

// NewManualClock returns a clock frozen at now.
func NewManualClock(now time.Time) *ManualClock {
	return &ManualClock{now: now}
}

// Now returns the frozen time.
func (c *ManualClock) Now() time.Time { return c.now }

// Set moves the clock to now.
func (c *ManualClock) Set(now time.Time) { c.now = now }

// Advance moves the clock forward by d.
func (c *ManualClock) Advance(d time.Duration) { c.now = c.now.Add(d) }
