package score

import (
	"time"

	"git.lost.host/meutraa/pedaldrill/internal/game"
)

const (
	DualWindow  = 150 * time.Millisecond
	DualTimeout = 200 * time.Millisecond
)

// DualLaneScorer judges a target the first frame the input matches within
// Window of the target instant. Targets still pending Timeout after their
// instant are missed whatever the input.
type DualLaneScorer struct {
	Tolerance float64
	Window    time.Duration
	Timeout   time.Duration
}

func NewDualLaneScorer(tolerance float64) (*DualLaneScorer, error) {
	if err := validateTolerance(tolerance); nil != err {
		return nil, err
	}
	return &DualLaneScorer{
		Tolerance: tolerance,
		Window:    DualWindow,
		Timeout:   DualTimeout,
	}, nil
}

func (s *DualLaneScorer) Span(t *game.Target) (time.Duration, time.Duration) {
	return t.Time - s.Window, t.Time + s.Timeout
}

func (s *DualLaneScorer) Evaluate(t *game.Target, live float64, ok bool, now time.Duration) game.Judgement {
	if t.State.Resolved() {
		return game.None
	}
	delta := now - t.Time
	if delta > s.Timeout {
		if t.Resolve(game.Miss, now) {
			return game.Miss
		}
		return game.None
	}
	if !ok || abs(delta) > s.Window {
		return game.None
	}
	grade := JudgeDual(Deviation(live, t.Percent), s.Tolerance)
	if !t.Resolve(grade, now) {
		return game.None
	}
	return grade
}

func (s *DualLaneScorer) Reset() {}

func abs(x time.Duration) time.Duration {
	if x < 0 {
		return -x
	}
	return x
}
