package theme

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"git.lost.host/meutraa/pedaldrill/internal/game"
)

type DefaultTheme struct {
}

func (t *DefaultTheme) RenderTarget(lane game.Lane, state game.TargetState, hold float64) string {
	c := getLaneColor(lane)
	sym := targetSym
	switch state.Status {
	case game.Hit:
		c = t.JudgementColor(state.Grade)
		sym = hitSym
	case game.Missed:
		c = t.JudgementColor(game.Miss)
		sym = missSym
	default:
		if hold > 0 {
			// brighten towards white while the hold confirms
			c = blend(c, color.RGBA{255, 255, 255, 255}, hold)
			sym = holdSym
		}
	}
	return colored(c, sym)
}

func (t *DefaultTheme) RenderHitField(lane game.Lane) string {
	return colored(getLaneColor(lane), barSym)
}

// RenderLevel draws a horizontal gauge of the live value.
func (t *DefaultTheme) RenderLevel(lane game.Lane, value float64, width int) string {
	if width <= 0 {
		return ""
	}
	value = math.Max(0, math.Min(1, value))
	n := int(math.Round(value * float64(width)))
	return colored(getLaneColor(lane), strings.Repeat(levelSym, n)) + strings.Repeat(emptySym, width-n)
}

// RenderFlash brackets the hit bar in the grade colour.
func (t *DefaultTheme) RenderFlash(j game.Judgement) (string, string) {
	c := t.JudgementColor(j)
	if j == game.Miss {
		return colored(c, missSym), colored(c, missSym)
	}
	return colored(c, "["), colored(c, "]")
}

func (t *DefaultTheme) LaneName(lane game.Lane) string {
	switch lane {
	case game.Accelerator:
		return "THR"
	case game.Brake:
		return "BRK"
	}
	return "PED"
}

func (t *DefaultTheme) JudgementColor(j game.Judgement) color.RGBA {
	c, ok := judgementColors[j]
	if !ok {
		return judgementColors[game.None]
	}
	return c
}

const (
	targetSym = "█"
	holdSym   = "▓"
	hitSym    = "░"
	missSym   = "⨯"
	barSym    = "┃"
	levelSym  = "▮"
	emptySym  = "·"
)

var (
	laneColors = map[game.Lane]color.RGBA{
		game.Single:      {0, 118, 236, 255}, // blue
		game.Accelerator: {0, 236, 128, 255}, // green
		game.Brake:       {236, 30, 0, 255},  // red
	}
	judgementColors = map[game.Judgement]color.RGBA{
		game.Perfect: {173, 236, 236, 255}, // light blue
		game.Great:   {0, 236, 128, 255},   // green
		game.Good:    {236, 195, 0, 255},   // yellow
		game.OK:      {236, 128, 0, 255},   // orange
		game.Miss:    {236, 30, 0, 255},    // red
		game.None:    {106, 106, 106, 255}, // grey
	}
)

func getLaneColor(l game.Lane) color.RGBA {
	col, ok := laneColors[l]
	if !ok {
		return color.RGBA{255, 255, 255, 255}
	}
	return col
}

func blend(a, b color.RGBA, f float64) color.RGBA {
	f = math.Max(0, math.Min(1, f))
	mix := func(x, y uint8) uint8 {
		return uint8(math.Round(float64(x) + (float64(y)-float64(x))*f))
	}
	return color.RGBA{mix(a.R, b.R), mix(a.G, b.G), mix(a.B, b.B), 255}
}

func colored(c color.RGBA, s string) string {
	return fmt.Sprintf("\033[38;2;%v;%v;%vm%v\033[0m", c.R, c.G, c.B, s)
}
