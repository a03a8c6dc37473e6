package main

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lost.host/meutraa/pedaldrill/internal/config"
	"git.lost.host/meutraa/pedaldrill/internal/engine"
	"git.lost.host/meutraa/pedaldrill/internal/game"
	"git.lost.host/meutraa/pedaldrill/internal/input"
	"git.lost.host/meutraa/pedaldrill/internal/render"
)

const (
	drillFile    = "internal/parser/testdata/trail-brake.yaml"
	scenarioFile = "internal/parser/testdata/trail-brake-scenario.yaml"
)

func TestReplayScriptedDual(t *testing.T) {
	cfg, err := config.Parse([]string{"replay", "--lanes=dual", "--drill", drillFile,
		"--tolerance", "2", "--frame-period", "10ms", scenarioFile})
	require.NoError(t, err)
	drill, err := loadDrill(cfg)
	require.NoError(t, err)
	require.Len(t, drill.Keyframes, 5)

	var out bytes.Buffer
	p, err := replay(cfg, drill, &out)
	require.NoError(t, err)

	assert.True(t, p.Finished())
	assert.Equal(t, 5, p.Count(game.Perfect))
	assert.Equal(t, 5, p.Total())
	assert.Equal(t, 100.0, p.Accuracy())

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Greater(t, len(lines), 5)
	for _, l := range lines[:5] {
		assert.Contains(t, l, "PERFECT")
	}
	assert.Contains(t, lines[0], "brake")
	assert.Contains(t, lines[3], "accelerator")
}

func TestReplayRandomIsDeterministic(t *testing.T) {
	args := []string{"replay", "--seed", "42", "--duration", "6s", "--difficulty", "easy", scenarioFile}
	cfg, err := config.Parse(args)
	require.NoError(t, err)

	var first, second bytes.Buffer
	p, err := replay(cfg, nil, &first)
	require.NoError(t, err)
	_, err = replay(cfg, nil, &second)
	require.NoError(t, err)

	assert.True(t, p.Finished())
	assert.Positive(t, p.Total())
	assert.Equal(t, first.String(), second.String())
}

func TestNewEngineLayout(t *testing.T) {
	cfg, err := config.Parse([]string{"--lanes", "dual"})
	require.NoError(t, err)
	e, err := newEngine(cfg, nil, input.NewPedals())
	require.NoError(t, err)
	assert.Equal(t, game.DualLane, e.Layout())

	cfg, err = config.Parse([]string{})
	require.NoError(t, err)
	cfg.Tolerance = 0
	_, err = newEngine(cfg, nil, input.NewPedals())
	assert.ErrorIs(t, err, game.ErrInvalidConfig)
}

func TestProgramScore(t *testing.T) {
	p := NewProgram()
	p.RunStarted(game.Run{})
	for _, j := range []game.Judgement{game.Perfect, game.Great, game.Miss, game.OK, game.Good, game.Perfect} {
		p.Judged(engine.Event{Judgement: j, Time: time.Second})
	}
	p.RunCompleted(game.Run{})

	assert.Equal(t, 6, p.Total())
	assert.Equal(t, 2, p.Count(game.Perfect))
	assert.Equal(t, 3, p.maxCombo)
	assert.Equal(t, 3, p.combo)
	assert.InDelta(t, 83.33, p.Accuracy(), 0.01)
	assert.Contains(t, p.Summary(), "   Combo:       3")
	assert.True(t, p.Finished())
}

func TestProgramRender(t *testing.T) {
	cfg, err := config.Parse([]string{"--seed", "3", "--duration", "10s"})
	require.NoError(t, err)

	var out bytes.Buffer
	pedals := input.NewPedals()
	pedals.Set(game.Single, 0.5)
	p := NewProgram()
	p.Source = pedals
	p.Renderer = render.New(&out, -1)
	p.Resize(80, 24, 10)
	e, err := newEngine(cfg, nil, pedals, engine.WithListener(p), engine.WithScroll(engine.Scroll{
		Speed: 10, HitOffset: 10, Ahead: 5 * time.Second,
	}))
	require.NoError(t, err)
	p.Engine = e

	start := time.Unix(0, 0)
	require.NoError(t, e.Start(start))
	e.Tick(start.Add(time.Second))
	p.Renderer.RenderLoop(0, time.Millisecond, func(time.Time) bool {
		p.Render()
		return false
	})

	frame := out.String()
	assert.Contains(t, frame, "PED")
	assert.Contains(t, frame, " 50.0%")
	assert.Contains(t, frame, "█", "the first target is in view")
	assert.Contains(t, frame, "   Combo:       0")
}

func TestProgramFlashesJudgement(t *testing.T) {
	cfg, err := config.Parse([]string{"--lanes", "dual"})
	require.NoError(t, err)

	var out bytes.Buffer
	p := NewProgram()
	p.Renderer = render.New(&out, -1)
	p.Resize(80, 24, 10)
	e, err := newEngine(cfg, nil, input.NewPedals(), engine.WithListener(p))
	require.NoError(t, err)
	p.Engine = e

	p.Judged(engine.Event{Lane: game.Brake, Judgement: game.Great})
	p.Renderer.RenderLoop(0, time.Millisecond, func(time.Time) bool { return false })

	// the brake track is the second lane row
	assert.Contains(t, out.String(), "\033[10;9H\033[38;2;0;236;128m[\033[0m")
	assert.Contains(t, out.String(), "\033[10;11H\033[38;2;0;236;128m]\033[0m")
}
