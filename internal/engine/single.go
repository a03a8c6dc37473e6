package engine

import (
	"time"

	"git.lost.host/meutraa/pedaldrill/internal/game"
	"git.lost.host/meutraa/pedaldrill/internal/input"
	"git.lost.host/meutraa/pedaldrill/internal/score"
)

// Single runs one input stream against hold-confirmed targets.
type Single struct {
	*core
	sc *score.SingleLaneScorer
}

func NewSingle(cfg Config, source input.Source, opts ...Option) (*Single, error) {
	scorer, err := score.NewSingleLaneScorer(cfg.Tolerance)
	if nil != err {
		return nil, err
	}
	c, err := newCore(game.SingleLane, cfg, source, scorer, opts)
	if nil != err {
		return nil, err
	}
	c.minHold = scorer.HoldDuration
	s := &Single{core: c, sc: scorer}
	c.judge = s.judge
	c.progress = s.holdProgress
	return s, nil
}

func (s *Single) judge(now time.Duration) []Event {
	chart := s.charts[0]
	live, ok := s.source.Sample(chart.Lane, now)
	return s.evaluate(chart, live, ok, now)
}

// Hold returns the confirmation state of a pending target.
func (s *Single) Hold(t *game.Target) (*score.Hold, bool) {
	return s.sc.Hold(t)
}

func (s *Single) holdProgress(t *game.Target, now time.Duration) float64 {
	if h, ok := s.sc.Hold(t); ok {
		return h.Progress(now)
	}
	return 0
}

// Tolerance is the configured deviation, in percent points, of a GOOD hold.
func (s *Single) Tolerance() float64 {
	return s.sc.Tolerance
}
