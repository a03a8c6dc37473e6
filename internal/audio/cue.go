// Package audio plays a short tone for every judgement.
package audio

import (
	"fmt"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"git.lost.host/meutraa/pedaldrill/internal/engine"
	"git.lost.host/meutraa/pedaldrill/internal/game"
)

const (
	SampleRate = beep.SampleRate(44100)
	CueLength  = 80 * time.Millisecond
)

var pitches = map[game.Judgement]float64{
	game.Perfect: 1046.5, // C6
	game.Great:   880,
	game.Good:    659.25,
	game.OK:      523.25,
}

// Cue is an engine.Listener that plays one tone per hit. Misses are silent.
type Cue struct {
	SampleRate beep.SampleRate
	Length     time.Duration
	Volume     float64 // in halvings, 0 is full scale

	play func(s beep.Streamer)
}

// NewCue initializes the speaker. The speaker is process wide, so only one
// Cue should be created.
func NewCue() (*Cue, error) {
	sr := SampleRate
	if err := speaker.Init(sr, sr.N(time.Second/30)); nil != err {
		return nil, fmt.Errorf("unable to open speaker: %w", err)
	}
	return &Cue{
		SampleRate: sr,
		Length:     CueLength,
		Volume:     -2,
		play:       func(s beep.Streamer) { speaker.Play(s) },
	}, nil
}

// Pitch is the tone frequency of a grade, zero for silence.
func Pitch(j game.Judgement) float64 {
	return pitches[j]
}

func (c *Cue) RunStarted(run game.Run) {}

func (c *Cue) Judged(ev engine.Event) {
	freq := Pitch(ev.Judgement)
	if freq == 0 {
		return
	}
	c.play(&effects.Volume{
		Streamer: Tone(c.SampleRate, freq, c.Length),
		Base:     2,
		Volume:   c.Volume,
	})
}

func (c *Cue) RunCompleted(run game.Run) {}

// Tone is a sine of freq Hz lasting d, fading out linearly.
func Tone(sr beep.SampleRate, freq float64, d time.Duration) beep.Streamer {
	n := sr.N(d)
	i := 0
	sine := beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		for k := range samples {
			v := math.Sin(2 * math.Pi * freq * float64(i) / float64(sr))
			if n > 0 {
				v *= 1 - float64(i)/float64(n)
			}
			samples[k][0], samples[k][1] = v, v
			i++
		}
		return len(samples), true
	})
	return beep.Take(n, sine)
}
