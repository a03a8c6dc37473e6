package engine

import (
	"time"

	"git.lost.host/meutraa/pedaldrill/internal/game"
	"git.lost.host/meutraa/pedaldrill/internal/input"
	"git.lost.host/meutraa/pedaldrill/internal/score"
)

// Dual runs the accelerator and brake streams against the one run clock.
// Both lanes are judged every frame from the same clock sample, so targets
// sharing an instant resolve on the same frame when fed the same input.
type Dual struct {
	*core
	sc *score.DualLaneScorer
}

func NewDual(cfg Config, source input.Source, opts ...Option) (*Dual, error) {
	scorer, err := score.NewDualLaneScorer(cfg.Tolerance)
	if nil != err {
		return nil, err
	}
	c, err := newCore(game.DualLane, cfg, source, scorer, opts)
	if nil != err {
		return nil, err
	}
	d := &Dual{core: c, sc: scorer}
	c.judge = d.judge
	return d, nil
}

type sample struct {
	value float64
	ok    bool
}

func (d *Dual) judge(now time.Duration) []Event {
	// read every lane before judging any, all at the same now
	samples := make([]sample, len(d.charts))
	for i, chart := range d.charts {
		samples[i].value, samples[i].ok = d.source.Sample(chart.Lane, now)
	}

	events := []Event{}
	for i, chart := range d.charts {
		events = append(events, d.evaluate(chart, samples[i].value, samples[i].ok, now)...)
	}
	return inTargetOrder(events)
}

// Lane returns the live target list of one lane.
func (d *Dual) Lane(lane game.Lane) []*game.Target {
	return d.Targets(lane)
}

func (d *Dual) Tolerance() float64 {
	return d.sc.Tolerance
}
