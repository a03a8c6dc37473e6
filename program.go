package main

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/samber/lo"

	"git.lost.host/meutraa/pedaldrill/internal/engine"
	"git.lost.host/meutraa/pedaldrill/internal/game"
	"git.lost.host/meutraa/pedaldrill/internal/input"
	"git.lost.host/meutraa/pedaldrill/internal/render"
	"git.lost.host/meutraa/pedaldrill/internal/theme"
)

// Program keeps the running score of a drill and draws it. It listens to
// the engine; Renderer may be nil for headless runs.
type Program struct {
	Engine   engine.Engine
	Source   input.Source
	Renderer render.Renderer
	Theme    theme.Theme

	width, height int
	hitColumn     uint16
	sideCol       uint16

	counts          map[game.Judgement]int
	combo, maxCombo int
	last            *engine.Event
	finished        bool
	run             game.Run
}

func NewProgram() *Program {
	return &Program{
		Theme:  &theme.DefaultTheme{},
		counts: map[game.Judgement]int{},
	}
}

func (p *Program) Resize(width, height int, hitColumn uint16) {
	p.width, p.height = width, height
	p.hitColumn = hitColumn
	p.sideCol = 2
}

func (p *Program) RunStarted(run game.Run) {
	p.counts = map[game.Judgement]int{}
	p.combo, p.maxCombo = 0, 0
	p.last = nil
	p.finished = false
	p.run = run
}

func (p *Program) Judged(ev engine.Event) {
	p.flash(ev)
	p.counts[ev.Judgement]++
	if ev.Judgement.IsHit() {
		p.combo++
		p.maxCombo = max(p.maxCombo, p.combo)
	} else {
		p.combo = 0
	}
	p.last = &ev
}

func (p *Program) RunCompleted(run game.Run) {
	p.finished = true
	p.run = run
}

func (p *Program) Count(j game.Judgement) int {
	return p.counts[j]
}

func (p *Program) Finished() bool {
	return p.finished
}

func (p *Program) Total() int {
	return lo.Sum(lo.Values(p.counts))
}

// Accuracy is the share of resolved targets that were hit, 0-100.
func (p *Program) Accuracy() float64 {
	total := p.Total()
	if total == 0 {
		return 0
	}
	hits := lo.SumBy(lo.Filter(game.Judgements, func(j game.Judgement, _ int) bool {
		return j.IsHit()
	}), p.Count)
	return 100 * float64(hits) / float64(total)
}

func (p *Program) Summary() string {
	var b strings.Builder
	for _, j := range game.Judgements {
		fmt.Fprintf(&b, "%8v:  %6v\n", j, p.Count(j))
	}
	fmt.Fprintf(&b, "%8v:  %6v\n", "Combo", p.maxCombo)
	fmt.Fprintf(&b, "%8v:  %5.1f%%\n", "Accuracy", p.Accuracy())
	return b.String()
}

// flashFrames is how long the hit bar stays bracketed after a judgement.
const flashFrames = 12

// flash brackets the hit bar of the judged lane for a few frames.
func (p *Program) flash(ev engine.Event) {
	if p.Renderer == nil || p.Engine == nil || p.hitColumn < 2 {
		return
	}
	i := lo.IndexOf(p.Engine.Layout().Lanes(), ev.Lane)
	if i < 0 {
		return
	}
	left, right := p.Theme.RenderFlash(ev.Judgement)
	row := p.laneRow(i)
	p.Renderer.AddDecoration(p.hitColumn-1, row, left, flashFrames)
	p.Renderer.AddDecoration(p.hitColumn+1, row, right, flashFrames)
}

// laneRow is the console row of a lane track.
func (p *Program) laneRow(i int) uint16 {
	return uint16(6 + 4*i)
}

func (p *Program) Render() {
	r, th, e := p.Renderer, p.Theme, p.Engine
	run := e.Run()
	lanes := e.Layout().Lanes()

	for i, lane := range lanes {
		row := p.laneRow(i)
		r.ClearRow(row - 1)
		r.ClearRow(row)
		r.Fill(row, p.sideCol, th.LaneName(lane))
		r.Fill(row, p.hitColumn, th.RenderHitField(lane))
	}

	frame := e.Frame()
	for _, t := range frame {
		i := lo.IndexOf(lanes, t.Lane)
		if i < 0 {
			continue
		}
		row := p.laneRow(i)
		from := int(math.Round(t.Offset))
		to := from + max(1, int(math.Round(t.Width)))
		from = max(from, int(p.sideCol)+4)
		to = min(to, p.width)
		if from >= to {
			continue
		}
		r.Fill(row, uint16(from), strings.Repeat(th.RenderTarget(t.Lane, t.State, t.Hold), to-from))
		r.Fill(row-1, uint16(from), fmt.Sprintf("%.0f", t.Percent))
	}

	side := uint16(p.laneRow(len(lanes)) + 1)
	for i, lane := range lanes {
		v, ok := p.Source.Sample(lane, run.CurrentTime)
		r.ClearRow(side + uint16(i))
		if !ok {
			r.Fill(side+uint16(i), p.sideCol, fmt.Sprintf("%v  ---", th.LaneName(lane)))
			continue
		}
		r.Fill(side+uint16(i), p.sideCol, fmt.Sprintf("%v %5.1f%% %v", th.LaneName(lane), v*100, th.RenderLevel(lane, v, 20)))
	}

	stats := side + uint16(len(lanes)) + 1
	r.Fill(stats, p.sideCol, fmt.Sprintf("    Time:  %8v", run.CurrentTime.Truncate(100*time.Millisecond)))
	if run.Bounded() {
		r.Fill(stats, p.sideCol+24, fmt.Sprintf("/ %v", run.TotalDuration))
	}
	r.Fill(stats+1, p.sideCol, fmt.Sprintf("   Combo:  %6v", p.combo))
	for i, j := range game.Judgements {
		r.FillColor(stats+3+uint16(i), p.sideCol, th.JudgementColor(j), fmt.Sprintf("%8v:  %6v", j, p.Count(j)))
	}
	if p.last != nil {
		r.ClearRow(2)
		r.FillColor(2, p.hitColumn, th.JudgementColor(p.last.Judgement), p.last.Judgement.String())
	}
	if p.finished {
		r.Fill(stats+uint16(len(game.Judgements))+4, p.sideCol, "Drill complete, press any key")
	}
}
