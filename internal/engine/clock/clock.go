// Package clock provides the frame clock that drives the run loop.
package clock

import "time"

// Clock reports the time elapsed between frames.
type Clock interface {
	// Tick returns seconds since the previous Tick. The first call returns 0.
	Tick() float64
}

// System is a Clock backed by the monotonic wall clock.
type System struct {
	now  func() time.Time
	last time.Time
}

// NewSystem creates a clock reading time.Now.
func NewSystem() *System {
	return &System{now: time.Now}
}

// Tick implements Clock.
func (c *System) Tick() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return dt
}

// Manual is a Clock that returns preset steps, for tests and offline runs.
type Manual struct {
	Step    float64
	Elapsed float64
}

// Tick implements Clock.
func (c *Manual) Tick() float64 {
	c.Elapsed += c.Step
	return c.Step
}
