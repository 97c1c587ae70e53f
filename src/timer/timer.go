package timer

// Countdown counts remaining ticks of an activity, such as an elevator
// travelling between floors or a passenger resting after a ride.
type Countdown struct {
	Remaining int
}

// Set replaces the remaining ticks. Negative values are treated as zero.
func (c *Countdown) Set(ticks int) {
	c.Remaining = max(ticks, 0)
}

// Add extends the countdown by ticks.
func (c *Countdown) Add(ticks int) {
	c.Set(c.Remaining + ticks)
}

func (c *Countdown) Busy() bool {
	return c.Remaining > 0
}

// Tick consumes one tick if the countdown is running and reports whether it was.
func (c *Countdown) Tick() bool {
	if c.Remaining <= 0 {
		return false
	}
	c.Remaining--
	return true
}
