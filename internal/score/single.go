package score

import (
	"time"

	"git.lost.host/meutraa/pedaldrill/internal/game"
)

// SingleLaneScorer requires the input to stay in tolerance for HoldDuration
// inside [Time, Time+Duration] before the target is hit. A target whose
// window closes without a confirmed hold is missed.
//
// The hold counts as in tolerance anywhere inside Band, the edge of the OK
// tier, so a steady OK input can still confirm. The grade is taken from the
// deviation on the confirming frame.
type SingleLaneScorer struct {
	Tolerance    float64
	HoldDuration time.Duration

	holds map[uint64]*Hold
}

func NewSingleLaneScorer(tolerance float64) (*SingleLaneScorer, error) {
	if err := validateTolerance(tolerance); nil != err {
		return nil, err
	}
	return &SingleLaneScorer{
		Tolerance:    tolerance,
		HoldDuration: HoldDuration,
		holds:        map[uint64]*Hold{},
	}, nil
}

// Band is the widest deviation that still counts as in tolerance for the
// hold, the edge of the OK tier.
func (s *SingleLaneScorer) Band() float64 {
	return s.Tolerance * 1.5
}

func (s *SingleLaneScorer) Span(t *game.Target) (time.Duration, time.Duration) {
	return t.Time, t.End()
}

func (s *SingleLaneScorer) Evaluate(t *game.Target, live float64, ok bool, now time.Duration) game.Judgement {
	if t.State.Resolved() {
		delete(s.holds, t.ID)
		return game.None
	}
	if now < t.Time {
		return game.None
	}
	if now > t.End() {
		return s.resolve(t, game.Miss, now)
	}

	h := s.hold(t)
	d := Deviation(live, t.Percent)
	// an outage breaks the hold the same way leaving tolerance does
	if !h.Update(ok && d <= s.Band(), now) {
		return game.None
	}
	return s.resolve(t, JudgeSingle(d, s.Tolerance), now)
}

// Hold returns the confirmation state of a pending target, if any.
func (s *SingleLaneScorer) Hold(t *game.Target) (*Hold, bool) {
	h, ok := s.holds[t.ID]
	return h, ok
}

func (s *SingleLaneScorer) Reset() {
	s.holds = map[uint64]*Hold{}
}

func (s *SingleLaneScorer) hold(t *game.Target) *Hold {
	h, ok := s.holds[t.ID]
	if !ok {
		h = &Hold{Duration: s.HoldDuration}
		s.holds[t.ID] = h
	}
	return h
}

func (s *SingleLaneScorer) resolve(t *game.Target, grade game.Judgement, now time.Duration) game.Judgement {
	delete(s.holds, t.ID)
	if !t.Resolve(grade, now) {
		return game.None
	}
	return grade
}
