package sim

import "time"

// Clock measures frame-to-frame time. time.Time carries a monotonic
// reading, so wall-clock jumps do not leak into the step.
type Clock struct {
	last time.Time
}

// Elapsed returns the time since the previous call. The first call
// returns zero.
func (c *Clock) Elapsed(now time.Time) time.Duration {
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	d := now.Sub(c.last)
	c.last = now
	if d < 0 {
		return 0
	}
	return d
}
