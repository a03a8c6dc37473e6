package audio

import (
	"math"
	"testing"
	"time"

	"github.com/faiface/beep"
	"github.com/stretchr/testify/assert"

	"git.lost.host/meutraa/pedaldrill/internal/engine"
	"git.lost.host/meutraa/pedaldrill/internal/game"
)

func drain(s beep.Streamer) [][2]float64 {
	var out [][2]float64
	buf := make([][2]float64, 64)
	for {
		n, ok := s.Stream(buf)
		out = append(out, buf[:n]...)
		if !ok {
			return out
		}
	}
}

func TestTone(t *testing.T) {
	samples := drain(Tone(SampleRate, 440, 10*time.Millisecond))
	assert.Len(t, samples, 441)
	assert.Equal(t, 0.0, samples[0][0])
	for _, s := range samples {
		assert.LessOrEqual(t, math.Abs(s[0]), 1.0)
		assert.Equal(t, s[0], s[1])
	}
}

func TestPitch(t *testing.T) {
	assert.Zero(t, Pitch(game.Miss))
	assert.Zero(t, Pitch(game.None))
	last := math.Inf(1)
	for _, j := range []game.Judgement{game.Perfect, game.Great, game.Good, game.OK} {
		assert.Less(t, Pitch(j), last, "better grades sound higher")
		last = Pitch(j)
	}
}

func TestCueJudged(t *testing.T) {
	var played []beep.Streamer
	c := &Cue{
		SampleRate: SampleRate,
		Length:     CueLength,
		play:       func(s beep.Streamer) { played = append(played, s) },
	}

	c.RunStarted(game.Run{})
	c.Judged(engine.Event{Judgement: game.Miss})
	assert.Empty(t, played)

	c.Judged(engine.Event{Judgement: game.Great})
	c.Judged(engine.Event{Judgement: game.OK})
	c.RunCompleted(game.Run{})
	if assert.Len(t, played, 2) {
		assert.Len(t, drain(played[0]), SampleRate.N(CueLength))
	}
}
