package score

import (
	"math"

	"git.lost.host/meutraa/pedaldrill/internal/game"
)

// Deviation is the distance in percent points between a normalized live
// value and a target percent.
func Deviation(live, percent float64) float64 {
	return math.Abs(live*100 - percent)
}

// JudgeSingle grades a confirmed single lane hold. The tiers scale with the
// tolerance.
func JudgeSingle(d, tolerance float64) game.Judgement {
	switch {
	case d <= tolerance*0.3:
		return game.Perfect
	case d <= tolerance*0.6:
		return game.Great
	case d <= tolerance:
		return game.Good
	case d <= tolerance*1.5:
		return game.OK
	}
	return game.Miss
}

// JudgeDual grades an instantaneous dual lane match. Anything outside the
// tiers is not a hit yet; misses only come from the timeout.
func JudgeDual(d, tolerance float64) game.Judgement {
	switch {
	case d <= 1:
		return game.Perfect
	case d <= 2:
		return game.Great
	case d <= 3.5:
		return game.Good
	case d <= tolerance:
		return game.OK
	}
	return game.None
}
