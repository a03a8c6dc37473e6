package theme

import (
	"image/color"

	"git.lost.host/meutraa/pedaldrill/internal/game"
)

type Theme interface {
	RenderTarget(lane game.Lane, state game.TargetState, hold float64) string
	RenderHitField(lane game.Lane) string
	RenderLevel(lane game.Lane, value float64, width int) string
	RenderFlash(j game.Judgement) (left, right string)
	LaneName(lane game.Lane) string
	JudgementColor(j game.Judgement) color.RGBA
}
