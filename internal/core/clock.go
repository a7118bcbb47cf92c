package core

import "log"

// Clock is the single authoritative simulation time. It never moves past
// its horizon.
type Clock struct {
	now     int
	horizon int
}

// NewClock creates a clock at time 0 bounded by horizon.
func NewClock(horizon int) *Clock {
	return &Clock{horizon: horizon}
}

// Now returns the current time.
func (c *Clock) Now() int {
	return c.now
}

// Horizon returns the time limit of the run.
func (c *Clock) Horizon() int {
	return c.horizon
}

// Remaining returns the number of units left before the horizon.
func (c *Clock) Remaining() int {
	return c.horizon - c.now
}

// Expired reports whether the clock reached the horizon.
func (c *Clock) Expired() bool {
	return c.now >= c.horizon
}

// Advance moves the clock forward.
func (c *Clock) Advance(units int) {
	if units <= 0 {
		log.Panicf("clock cannot advance by %d", units)
	}

	if c.now+units > c.horizon {
		log.Panicf("clock cannot advance from %d by %d past horizon %d",
			c.now, units, c.horizon)
	}

	c.now += units
}
