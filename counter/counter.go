// Package counter computes the days/hours/minutes/seconds between a picked
// calendar date and the current time.
package counter

import (
	"fmt"
	"time"
)

// Mode selects the direction of the computation.
type Mode int

const (
	// Countdown measures the time left until the reference date.
	Countdown Mode = iota
	// Elapsed measures the time since the reference date.
	Elapsed
)

func (m Mode) String() string {
	switch m {
	case Countdown:
		return "countdown"
	case Elapsed:
		return "elapsed"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

const secondsPerDay = 24 * 60 * 60

// Breakdown is a non-negative duration split into whole units.
// Hours, Minutes and Seconds are always below their next unit.
type Breakdown struct {
	Days    int64
	Hours   int
	Minutes int
	Seconds int
}

// TotalSeconds returns the breakdown folded back into seconds.
func (b Breakdown) TotalSeconds() int64 {
	return b.Days*secondsPerDay + int64(b.Hours)*3600 + int64(b.Minutes)*60 + int64(b.Seconds)
}

// Split decomposes d into days, hours, minutes and seconds, truncating
// sub-second precision. d must not be negative.
func Split(d time.Duration) Breakdown {
	total := int64(d / time.Second)
	rem := total % secondsPerDay
	return Breakdown{
		Days:    total / secondsPerDay,
		Hours:   int(rem / 3600),
		Minutes: int((rem % 3600) / 60),
		Seconds: int(rem % 60),
	}
}

// Delta returns the signed duration the mode measures: reference-now for a
// countdown, now-reference for elapsed time.
func Delta(mode Mode, reference, now time.Time) time.Duration {
	if mode == Countdown {
		return reference.Sub(now)
	}
	return now.Sub(reference)
}

// Compute returns the breakdown for the reference date at local midnight of
// now's location. ok is false when the reference is on the wrong side of now
// for the mode (already passed for a countdown, in the future for elapsed).
func Compute(mode Mode, reference Date, now time.Time) (b Breakdown, ok bool) {
	delta := Delta(mode, reference.Midnight(now.Location()), now)
	if delta < 0 {
		return Breakdown{}, false
	}
	return Split(delta), true
}
