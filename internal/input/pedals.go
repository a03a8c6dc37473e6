package input

import (
	"time"

	"git.lost.host/meutraa/pedaldrill/internal/game"
)

// Pedals holds the last value set per lane. A lane that was never set has
// no sample.
type Pedals struct {
	values map[game.Lane]float64
}

func NewPedals() *Pedals {
	return &Pedals{values: map[game.Lane]float64{}}
}

func (p *Pedals) Set(lane game.Lane, value float64) {
	p.values[lane] = clamp01(value)
}

func (p *Pedals) Unset(lane game.Lane) {
	delete(p.values, lane)
}

func (p *Pedals) Sample(lane game.Lane, _ time.Duration) (float64, bool) {
	v, ok := p.values[lane]
	return v, ok
}
