package samples

import "time"

// FrameClock measures the time between consecutive redraws.
//
// The delta is not clamped. A long stall (window drag, debugger pause)
// produces a long delta; samples that integrate motion should clamp it
// themselves if that matters.
type FrameClock struct {
	last time.Time
}

// NewFrameClock returns a clock whose first Tick measures from start.
func NewFrameClock(start time.Time) *FrameClock {
	return &FrameClock{last: start}
}

// Tick returns the time elapsed since the previous Tick (or since start)
// and resets the reference point to now.
func (c *FrameClock) Tick(now time.Time) time.Duration {
	dt := now.Sub(c.last)
	c.last = now
	return dt
}

// Last returns the time of the previous Tick.
func (c *FrameClock) Last() time.Time { return c.last }
