package input

import (
	"fmt"
	"time"

	"git.lost.host/meutraa/pedaldrill/internal/game"
)

// Wheel maps a steering angle source, in degrees, onto 0-1 across
// [MinDeg, MaxDeg]. Angles outside the range are clamped.
type Wheel struct {
	Degrees Source
	MinDeg  float64
	MaxDeg  float64
}

func NewWheel(degrees Source, minDeg, maxDeg float64) (*Wheel, error) {
	if maxDeg <= minDeg {
		return nil, fmt.Errorf("%w: wheel range [%v, %v] is empty", game.ErrInvalidConfig, minDeg, maxDeg)
	}
	return &Wheel{Degrees: degrees, MinDeg: minDeg, MaxDeg: maxDeg}, nil
}

func (w *Wheel) Sample(lane game.Lane, now time.Duration) (float64, bool) {
	deg, ok := w.Degrees.Sample(lane, now)
	if !ok {
		return 0, false
	}
	return w.Normalize(deg), true
}

func (w *Wheel) Normalize(deg float64) float64 {
	return clamp01((deg - w.MinDeg) / (w.MaxDeg - w.MinDeg))
}

// Angle is the inverse of Normalize.
func (w *Wheel) Angle(v float64) float64 {
	return w.MinDeg + clamp01(v)*(w.MaxDeg-w.MinDeg)
}
