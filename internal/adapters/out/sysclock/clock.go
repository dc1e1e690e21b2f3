package sysclock

import "time"

// Clock implements the clock port over the system wall clock.
type Clock struct{}

// NewClock creates a system clock.
func NewClock() Clock {
	return Clock{}
}

// Now returns the current wall-clock time.
func (Clock) Now() time.Time {
	return time.Now()
}
