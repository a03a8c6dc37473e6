// Package clock is the logical time source of a drill run. One sample is
// taken per frame and every consumer of the frame reads that sample.
package clock

import "time"

type Clock struct {
	startTime time.Time
	now       time.Duration
	frame     uint64
	running   bool
}

// Start begins a new run at ts, discarding any previous reading.
func (c *Clock) Start(ts time.Time) {
	c.startTime = ts
	c.now = 0
	c.frame = 0
	c.running = true
}

// Advance samples the clock for a new frame and returns the elapsed run
// time. A frame timestamp older than the previous sample does not move the
// clock backwards. Advance is a no-op on a stopped clock.
func (c *Clock) Advance(frameTime time.Time) time.Duration {
	if !c.running {
		return 0
	}
	c.frame++
	if elapsed := frameTime.Sub(c.startTime); elapsed > c.now {
		c.now = elapsed
	}
	return c.now
}

func (c *Clock) Now() time.Duration {
	return c.now
}

// Frame returns how many times the clock was advanced in this run.
func (c *Clock) Frame() uint64 {
	return c.frame
}

func (c *Clock) Running() bool {
	return c.running
}

// Stop halts the clock and resets it to zero.
func (c *Clock) Stop() {
	*c = Clock{}
}
