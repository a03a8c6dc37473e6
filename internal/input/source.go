package input

import (
	"time"

	"git.lost.host/meutraa/pedaldrill/internal/game"
)

// Source is the live input feed. Values are normalized to 0-1; ok is false
// when no sample is available for the lane this frame.
type Source interface {
	Sample(lane game.Lane, now time.Duration) (value float64, ok bool)
}

// Recorder is implemented by sources that want to see every judgement the
// engine emits.
type Recorder interface {
	Record(entry Entry)
}

type Entry struct {
	Lane      game.Lane
	Judgement game.Judgement
	Time      time.Duration
	Percent   float64
	TargetID  uint64
}

// SourceFunc adapts a function to a Source.
type SourceFunc func(lane game.Lane, now time.Duration) (float64, bool)

func (f SourceFunc) Sample(lane game.Lane, now time.Duration) (float64, bool) {
	return f(lane, now)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
