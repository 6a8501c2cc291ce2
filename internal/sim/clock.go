package sim

// Clock accumulates frame deltas into a monotonic elapsed time.
type Clock struct {
	elapsed float64
}

// Advance adds delta seconds and returns the new elapsed time.
// Negative deltas are treated as zero.
func (c *Clock) Advance(delta float64) float64 {
	if delta > 0 {
		c.elapsed += delta
	}
	return c.elapsed
}

// Elapsed returns seconds since the clock started.
func (c *Clock) Elapsed() float64 {
	return c.elapsed
}

// Frame builds the step input for a frame of length delta, advancing the
// clock first.
func (c *Clock) Frame(delta float64, jump, restart bool) Frame {
	if delta < 0 {
		delta = 0
	}
	return Frame{
		Delta:   delta,
		Elapsed: c.Advance(delta),
		Jump:    jump,
		Restart: restart,
	}
}
