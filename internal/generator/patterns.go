package generator

import (
	"sort"
	"time"

	"git.lost.host/meutraa/pedaldrill/internal/game"
)

type Pattern uint8

const (
	Simultaneous Pattern = iota
	Classic
	Alternating
)

func (p Pattern) String() string {
	switch p {
	case Simultaneous:
		return "simultaneous"
	case Classic:
		return "classic"
	}
	return "alternating"
}

// Pattern weights out of 100.
const (
	simultaneousWeight = 25
	classicWeight      = 45
)

func (g *Generator) pickPattern() Pattern {
	r := g.rng.Intn(100)
	switch {
	case r < simultaneousWeight:
		return Simultaneous
	case r < simultaneousWeight+classicWeight:
		return Classic
	}
	return Alternating
}

// dualPattern lays one pattern out from the cursor. Every step moves the
// cursor by its duration plus a drawn spacing, so two targets of the same
// lane are never closer than MinSpacing.
func (g *Generator) dualPattern() ([]*game.Target, time.Duration) {
	cursor := g.cursor
	out := []*game.Target{}
	step := func(lane game.Lane, percent float64, d time.Duration) {
		out = append(out, &game.Target{Lane: lane, Time: cursor, Percent: percent, Duration: d})
		cursor += d + g.spacing()
	}

	switch g.pickPattern() {
	case Simultaneous:
		d := g.duration()
		ps := g.percents(2)
		out = append(out,
			&game.Target{Lane: game.Accelerator, Time: cursor, Percent: ps[0], Duration: d},
			&game.Target{Lane: game.Brake, Time: cursor, Percent: ps[1], Duration: d},
		)
		cursor += d + g.spacing()
	case Classic:
		// trail braking: bleed the brake off, then squeeze the throttle
		brake := g.percents(3)
		sort.Sort(sort.Reverse(sort.Float64Slice(brake)))
		for _, p := range brake {
			step(game.Brake, p, g.duration())
		}
		accel := g.percents(4)
		sort.Float64s(accel)
		for _, p := range accel {
			step(game.Accelerator, p, g.duration())
		}
		cursor += g.spacing()
	case Alternating:
		lane := game.Brake
		if g.rng.Intn(2) == 1 {
			lane = game.Accelerator
		}
		for n := 3 + g.rng.Intn(3); n > 0; n-- {
			step(lane, g.percent(), g.blip())
			lane = other(lane)
		}
		cursor += g.spacing()
	}
	return out, cursor
}

func other(l game.Lane) game.Lane {
	if l == game.Brake {
		return game.Accelerator
	}
	return game.Brake
}
