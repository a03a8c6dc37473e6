package theme

import (
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"git.lost.host/meutraa/pedaldrill/internal/game"
)

func TestRenderTarget(t *testing.T) {
	th := &DefaultTheme{}

	pending := th.RenderTarget(game.Brake, game.TargetState{}, 0)
	assert.Equal(t, "\033[38;2;236;30;0m█\033[0m", pending)

	holding := th.RenderTarget(game.Brake, game.TargetState{}, 1)
	assert.Equal(t, "\033[38;2;255;255;255m▓\033[0m", holding)

	hit := th.RenderTarget(game.Brake, game.TargetState{Status: game.Hit, Grade: game.Great}, 0)
	assert.Equal(t, "\033[38;2;0;236;128m░\033[0m", hit)

	missed := th.RenderTarget(game.Accelerator, game.TargetState{Status: game.Missed, Grade: game.Miss}, 0)
	assert.True(t, strings.HasSuffix(missed, "⨯\033[0m"))
}

func TestRenderLevel(t *testing.T) {
	th := &DefaultTheme{}
	assert.Equal(t, "", th.RenderLevel(game.Single, 0.5, 0))
	assert.Equal(t, "\033[38;2;0;118;236m\033[0m····", th.RenderLevel(game.Single, 0, 4))
	assert.Equal(t, "\033[38;2;0;118;236m▮▮\033[0m··", th.RenderLevel(game.Single, 0.5, 4))
	assert.Equal(t, "\033[38;2;0;118;236m▮▮▮▮\033[0m", th.RenderLevel(game.Single, 1.7, 4))
}

func TestColors(t *testing.T) {
	th := &DefaultTheme{}
	for _, j := range game.Judgements {
		assert.NotEqual(t, th.JudgementColor(game.None), th.JudgementColor(j), j.String())
	}
	assert.Equal(t, color.RGBA{128, 128, 128, 255}, blend(color.RGBA{0, 0, 0, 255}, color.RGBA{255, 255, 255, 255}, 0.5))
	assert.Equal(t, "THR", th.LaneName(game.Accelerator))
	assert.Equal(t, "BRK", th.LaneName(game.Brake))
	assert.Equal(t, "PED", th.LaneName(game.Single))
}

func TestRenderFlash(t *testing.T) {
	th := &DefaultTheme{}
	l, r := th.RenderFlash(game.Perfect)
	assert.Equal(t, "\033[38;2;173;236;236m[\033[0m", l)
	assert.Equal(t, "\033[38;2;173;236;236m]\033[0m", r)
	l, r = th.RenderFlash(game.Miss)
	assert.Equal(t, l, r)
	assert.Contains(t, l, "⨯")
}
