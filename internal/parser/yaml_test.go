package parser

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lost.host/meutraa/pedaldrill/internal/game"
)

func TestParseDrill(t *testing.T) {
	p := &YAMLParser{}
	drill, err := p.Parse("testdata/trail-brake.yaml")
	require.NoError(t, err)

	assert.Equal(t, "T1 trail brake", drill.Name)
	// four invalid values, one badly typed field and one entry that is not a mapping
	assert.Equal(t, 6, drill.Dropped)
	require.Len(t, drill.Keyframes, 5)
	assert.Equal(t, game.Keyframe{Time: 2 * time.Second, Lane: game.Brake, Percent: 90, Duration: 400 * time.Millisecond}, drill.Keyframes[0])
	assert.Equal(t, game.Accelerator, drill.Keyframes[3].Lane, "throttle is an accelerator alias")
	assert.Equal(t, 4800*time.Millisecond, drill.Keyframes[4].Time)
}

func TestParseEmptyDrill(t *testing.T) {
	p := &YAMLParser{}
	drill, err := p.Parse("testdata/empty.yaml")
	require.NoError(t, err)
	assert.Empty(t, drill.Keyframes)
	assert.Zero(t, drill.Dropped)

	drill, err = p.Decode(strings.NewReader(""))
	require.NoError(t, err)
	assert.Empty(t, drill.Keyframes)
}

func TestParseJSONDrill(t *testing.T) {
	p := &YAMLParser{}
	drill, err := p.Decode(strings.NewReader(`{"keyframes": [{"time": 1.5, "lane": "single", "percent": 60, "duration": 1}]}`))
	require.NoError(t, err)
	require.Len(t, drill.Keyframes, 1)
	assert.Equal(t, game.Keyframe{Time: 1500 * time.Millisecond, Lane: game.Single, Percent: 60, Duration: time.Second}, drill.Keyframes[0])
}

func TestParseRejectsGarbage(t *testing.T) {
	p := &YAMLParser{}
	_, err := p.Decode(strings.NewReader("keyframes: {oops"))
	assert.Error(t, err)
	_, err = p.Parse("testdata/missing.yaml")
	assert.Error(t, err)
}

func TestParseScenario(t *testing.T) {
	p := &YAMLParser{}
	steps, err := p.ParseScenario("testdata/trail-brake-scenario.yaml")
	require.NoError(t, err)
	require.Len(t, steps, 7)
	assert.Equal(t, time.Duration(0), steps[0].T)
	assert.Equal(t, map[game.Lane]float64{game.Accelerator: 0, game.Brake: 0}, steps[0].Values)
	assert.Equal(t, 1950*time.Millisecond, steps[1].T)
	assert.Equal(t, map[game.Lane]float64{game.Brake: 0.9}, steps[1].Values)
}

func TestParseScenarioDropsBadSteps(t *testing.T) {
	p := &YAMLParser{}
	steps, err := p.DecodeScenario(strings.NewReader(`
scenario:
  - {accelerator: 0.5}
  - {t: 1, clutch: 1, single: 0.25}
`))
	require.NoError(t, err)
	require.Len(t, steps, 1)
	assert.Equal(t, map[game.Lane]float64{game.Single: 0.25}, steps[0].Values)
}

func TestParseDrillDropsBadlyTypedEntries(t *testing.T) {
	p := &YAMLParser{}
	drill, err := p.Decode(strings.NewReader(`
keyframes:
  - {time: 1, lane: single, percent: 20, duration: 1}
  - {time: soon, lane: single, percent: 40, duration: 1}
  - 5
  - [1, 2]
  - {time: 3, lane: single, percent: 60, duration: 1}
`))
	require.NoError(t, err)
	assert.Equal(t, 3, drill.Dropped)
	require.Len(t, drill.Keyframes, 2)
	assert.Equal(t, 20.0, drill.Keyframes[0].Percent)
	assert.Equal(t, 60.0, drill.Keyframes[1].Percent)
}

func TestParseScenarioDropsBadlyTypedSteps(t *testing.T) {
	p := &YAMLParser{}
	steps, err := p.DecodeScenario(strings.NewReader(`
scenario:
  - {t: 0, brake: 0}
  - {t: soon, brake: 1}
  - 5
  - {t: 2, brake: lots, accelerator: 0.5}
`))
	require.NoError(t, err)
	require.Len(t, steps, 2)
	assert.Equal(t, map[game.Lane]float64{game.Brake: 0}, steps[0].Values)
	assert.Equal(t, 2*time.Second, steps[1].T)
	assert.Equal(t, map[game.Lane]float64{game.Accelerator: 0.5}, steps[1].Values)
}
