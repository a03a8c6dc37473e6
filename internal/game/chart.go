package game

import "time"

// Chart is the time ordered target list of one lane. The active window
// marks the targets that still matter to judgment and rendering; targets
// before it have been pruned from view.
type Chart struct {
	Lane    Lane
	Targets []*Target

	startTargetIndex int
}

func (c *Chart) Add(ts ...*Target) {
	c.Targets = append(c.Targets, ts...)
}

func (c *Chart) Active() ([]*Target, int) {
	return c.Targets[c.startTargetIndex:], c.startTargetIndex
}

func (c *Chart) SetActive(start int) {
	if start > len(c.Targets) {
		start = len(c.Targets)
	}
	c.startTargetIndex = start
}

// Prune drops resolved targets that ended before horizon from the front of
// the chart, so unbounded runs keep a bounded list. It returns how many
// targets were dropped.
func (c *Chart) Prune(horizon time.Duration) int {
	n := 0
	for n < len(c.Targets) {
		t := c.Targets[n]
		if t.Pending() || t.End() >= horizon {
			break
		}
		n++
	}
	if n == 0 {
		return 0
	}
	c.Targets = append(c.Targets[:0:0], c.Targets[n:]...)
	c.startTargetIndex -= n
	if c.startTargetIndex < 0 {
		c.startTargetIndex = 0
	}
	return n
}

func (c *Chart) Pending() int {
	n := 0
	for _, t := range c.Targets {
		if t.Pending() {
			n++
		}
	}
	return n
}
