package engine

import (
	"time"

	"git.lost.host/meutraa/pedaldrill/internal/game"
)

// Renderable is the per frame view of one visible target.
type Renderable struct {
	ID       uint64
	Lane     game.Lane
	Percent  float64
	Offset   float64
	Width    float64
	Time     time.Duration
	Duration time.Duration
	State    game.TargetState
	Hold     float64 // hold confirmation progress, 0-1
}

// Frame returns the visible targets of every lane at the current time.
func (c *core) Frame() []Renderable {
	now := c.clock.Now()
	out := []Renderable{}
	for _, chart := range c.charts {
		for _, t := range chart.Targets {
			if !c.scroll.Visible(t.Time, t.End(), now) {
				continue
			}
			r := Renderable{
				ID:       t.ID,
				Lane:     t.Lane,
				Percent:  t.Percent,
				Offset:   c.scroll.Offset(t.Time, now),
				Width:    c.scroll.Width(t.Duration),
				Time:     t.Time,
				Duration: t.Duration,
				State:    t.State,
			}
			if c.progress != nil && t.Pending() {
				r.Hold = c.progress(t, now)
			}
			out = append(out, r)
		}
	}
	return out
}
