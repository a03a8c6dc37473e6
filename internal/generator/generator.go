// Package generator produces the time ordered targets of a drill, either by
// a difficulty driven random walk through time or by replaying scripted
// keyframes. Given the same options and seed the output is identical.
package generator

import (
	"fmt"
	"math/rand"
	"sort"
	"time"

	"github.com/samber/lo"

	"git.lost.host/meutraa/pedaldrill/internal/game"
)

// LeadIn is where the first random target is placed.
const LeadIn = 2 * time.Second

type Options struct {
	Mode       game.Mode
	Layout     game.Layout
	Difficulty game.Difficulty

	// Profile overrides the difficulty table entry when set.
	Profile *game.Profile

	// Total caps generation; zero generates without end.
	Total time.Duration
	// LeadIn moves the first random target; zero uses the package LeadIn.
	LeadIn time.Duration
	Seed   int64

	Keyframes []game.Keyframe
	// MinHold is the shortest single lane keyframe that can still be held
	// to confirmation. Shorter ones, and zero length ones, are dropped.
	MinHold time.Duration
}

type Generator struct {
	mode    game.Mode
	layout  game.Layout
	profile game.Profile
	total   time.Duration
	rng     *rand.Rand

	cursor    time.Duration
	nextID    uint64
	exhausted bool

	minHold  time.Duration
	scripted []*game.Target
	dropped  int
}

func New(opts Options) (*Generator, error) {
	if opts.Total < 0 {
		return nil, fmt.Errorf("%w: negative total duration %v", game.ErrInvalidConfig, opts.Total)
	}
	if opts.LeadIn < 0 {
		return nil, fmt.Errorf("%w: negative lead-in %v", game.ErrInvalidConfig, opts.LeadIn)
	}

	g := &Generator{
		mode:    opts.Mode,
		layout:  opts.Layout,
		total:   opts.Total,
		cursor:  opts.LeadIn,
		nextID:  1,
		minHold: opts.MinHold,
	}

	if opts.Mode == game.Scripted {
		g.scripted, g.dropped = g.fromKeyframes(opts.Keyframes)
		return g, nil
	}

	if opts.Profile != nil {
		g.profile = *opts.Profile
	} else {
		p, ok := game.ProfileMap[opts.Difficulty]
		if !ok {
			return nil, fmt.Errorf("%w: unknown difficulty %q", game.ErrInvalidConfig, opts.Difficulty)
		}
		g.profile = p
	}
	if err := g.profile.Validate(); nil != err {
		return nil, err
	}
	if g.cursor == 0 {
		g.cursor = LeadIn
	}
	g.rng = rand.New(rand.NewSource(opts.Seed))
	return g, nil
}

// Fill returns the next targets whose start lies before until. Scripted
// targets are all returned by the first call.
func (g *Generator) Fill(until time.Duration) []*game.Target {
	if g.exhausted {
		return nil
	}
	if g.mode == game.Scripted {
		g.exhausted = true
		return g.scripted
	}

	out := []*game.Target{}
	for g.cursor < until {
		var pattern []*game.Target
		var next time.Duration
		if g.layout == game.DualLane {
			pattern, next = g.dualPattern()
		} else {
			pattern, next = g.single()
		}
		if g.total > 0 && lastEnd(pattern) > g.total {
			g.exhausted = true
			break
		}
		for _, t := range pattern {
			t.ID = g.nextID
			g.nextID++
		}
		out = append(out, pattern...)
		g.cursor = next
	}
	return out
}

// Exhausted reports that Fill will never return more targets.
func (g *Generator) Exhausted() bool {
	return g.exhausted
}

// Cursor is the time the next random pattern would start at.
func (g *Generator) Cursor() time.Duration {
	return g.cursor
}

// Dropped is the number of scripted keyframes rejected as malformed.
func (g *Generator) Dropped() int {
	return g.dropped
}

func (g *Generator) single() ([]*game.Target, time.Duration) {
	d := g.duration()
	t := &game.Target{Lane: game.Single, Time: g.cursor, Percent: g.percent(), Duration: d}
	return []*game.Target{t}, g.cursor + d + g.spacing()
}

func (g *Generator) fromKeyframes(kfs []game.Keyframe) ([]*game.Target, int) {
	valid := lo.Filter(kfs, func(k game.Keyframe, _ int) bool {
		return g.layout.Has(k.Lane) && ValidKeyframe(k) && g.holdable(k)
	})
	sort.SliceStable(valid, func(i, j int) bool { return valid[i].Time < valid[j].Time })

	targets := make([]*game.Target, len(valid))
	for i, k := range valid {
		targets[i] = &game.Target{
			ID:       g.nextID,
			Lane:     k.Lane,
			Time:     k.Time,
			Percent:  k.Percent,
			Duration: k.Duration,
		}
		g.nextID++
	}
	return targets, len(kfs) - len(valid)
}

// ValidKeyframe rejects keyframes no drill can judge.
func ValidKeyframe(k game.Keyframe) bool {
	return k.Time >= 0 && k.Duration >= 0 && k.Percent >= 0 && k.Percent <= 100
}

// holdable rejects single lane keyframes too short to confirm a hold. Dual
// lane durations are only a drawn width and may be zero.
func (g *Generator) holdable(k game.Keyframe) bool {
	if g.layout != game.SingleLane {
		return true
	}
	return k.Duration > 0 && k.Duration >= g.minHold
}

func (g *Generator) percent() float64 {
	ps := g.profile.Percents
	return ps[g.rng.Intn(len(ps))]
}

// percents draws n magnitudes, distinct while the profile has enough of them.
func (g *Generator) percents(n int) []float64 {
	ps := g.profile.Percents
	if len(ps) < n {
		out := make([]float64, n)
		for i := range out {
			out[i] = g.percent()
		}
		return out
	}
	out := make([]float64, 0, n)
	for _, i := range g.rng.Perm(len(ps))[:n] {
		out = append(out, ps[i])
	}
	return out
}

func (g *Generator) duration() time.Duration {
	return g.profile.ClampDuration(g.between(g.profile.MinDuration, g.profile.MaxDuration))
}

// blip is a short duration from the lowest quarter of the duration range.
func (g *Generator) blip() time.Duration {
	p := g.profile
	return p.ClampDuration(g.between(p.MinDuration, p.MinDuration+(p.MaxDuration-p.MinDuration)/4))
}

func (g *Generator) spacing() time.Duration {
	return g.profile.ClampSpacing(g.between(g.profile.MinSpacing, g.profile.MaxSpacing))
}

func (g *Generator) between(from, to time.Duration) time.Duration {
	if to <= from {
		return from
	}
	return from + time.Duration(g.rng.Int63n(int64(to-from)+1))
}

func lastEnd(ts []*game.Target) time.Duration {
	end := time.Duration(0)
	for _, t := range ts {
		if t.End() > end {
			end = t.End()
		}
	}
	return end
}
