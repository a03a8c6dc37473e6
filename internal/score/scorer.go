package score

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/pedaldrill/internal/game"
)

// Scorer judges one target against the live input value sampled this frame.
// Evaluate returns a grade other than None only on the call that resolved
// the target; evaluating a resolved target is a no-op.
type Scorer interface {
	Evaluate(target *game.Target, live float64, ok bool, now time.Duration) game.Judgement

	// Span reports the span of run time in which a target can still be
	// resolved by Evaluate, timeout included.
	Span(target *game.Target) (from, to time.Duration)

	// Reset discards all per-target state.
	Reset()
}

func validateTolerance(tolerance float64) error {
	if tolerance <= 0 {
		return fmt.Errorf("%w: tolerance must be positive, got %v", game.ErrInvalidConfig, tolerance)
	}
	return nil
}
