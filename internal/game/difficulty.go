package game

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrInvalidConfig marks configuration that can never produce a playable
// run. It is returned at construction and never during play.
var ErrInvalidConfig = errors.New("invalid drill configuration")

type Difficulty string

const (
	Easy   Difficulty = "easy"
	Medium Difficulty = "medium"
	Hard   Difficulty = "hard"
	Expert Difficulty = "expert"
)

var Difficulties = []Difficulty{Easy, Medium, Hard, Expert}

// Profile holds the generation parameters of one difficulty tier.
type Profile struct {
	MinDuration time.Duration
	MaxDuration time.Duration
	MinSpacing  time.Duration
	MaxSpacing  time.Duration
	Percents    []float64
}

var ProfileMap = map[Difficulty]Profile{
	Easy: {
		MinDuration: 1500 * time.Millisecond,
		MaxDuration: 2500 * time.Millisecond,
		MinSpacing:  1000 * time.Millisecond,
		MaxSpacing:  1500 * time.Millisecond,
		Percents:    []float64{25, 50, 75, 100},
	},
	Medium: {
		MinDuration: 1000 * time.Millisecond,
		MaxDuration: 2000 * time.Millisecond,
		MinSpacing:  600 * time.Millisecond,
		MaxSpacing:  1000 * time.Millisecond,
		Percents:    []float64{20, 30, 40, 50, 60, 70, 80, 90, 100},
	},
	Hard: {
		MinDuration: 600 * time.Millisecond,
		MaxDuration: 1200 * time.Millisecond,
		MinSpacing:  400 * time.Millisecond,
		MaxSpacing:  700 * time.Millisecond,
		Percents:    stepPercents(10, 100, 5),
	},
	Expert: {
		MinDuration: 400 * time.Millisecond,
		MaxDuration: 800 * time.Millisecond,
		MinSpacing:  250 * time.Millisecond,
		MaxSpacing:  500 * time.Millisecond,
		Percents:    stepPercents(5, 100, 5),
	},
}

func stepPercents(from, to, step float64) []float64 {
	ps := []float64{}
	for p := from; p <= to; p += step {
		ps = append(ps, p)
	}
	return ps
}

func ParseDifficulty(s string) (Difficulty, error) {
	d := Difficulty(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := ProfileMap[d]; !ok {
		return "", fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, s)
	}
	return d, nil
}

func ProfileFor(d Difficulty) (Profile, error) {
	p, ok := ProfileMap[d]
	if !ok {
		return Profile{}, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidConfig, d)
	}
	return p, p.Validate()
}

func (p Profile) Validate() error {
	switch {
	case p.MinDuration <= 0 || p.MaxDuration <= 0:
		return fmt.Errorf("%w: durations must be positive (%v-%v)", ErrInvalidConfig, p.MinDuration, p.MaxDuration)
	case p.MinDuration > p.MaxDuration:
		return fmt.Errorf("%w: min duration %v above max %v", ErrInvalidConfig, p.MinDuration, p.MaxDuration)
	case p.MinSpacing < 0 || p.MaxSpacing < 0:
		return fmt.Errorf("%w: spacings must not be negative (%v-%v)", ErrInvalidConfig, p.MinSpacing, p.MaxSpacing)
	case p.MinSpacing > p.MaxSpacing:
		return fmt.Errorf("%w: min spacing %v above max %v", ErrInvalidConfig, p.MinSpacing, p.MaxSpacing)
	case len(p.Percents) == 0:
		return fmt.Errorf("%w: empty percent set", ErrInvalidConfig)
	}
	for _, pc := range p.Percents {
		if pc < 0 || pc > 100 {
			return fmt.Errorf("%w: percent %v outside 0-100", ErrInvalidConfig, pc)
		}
	}
	return nil
}

// ClampDuration keeps d inside the profile's duration bounds.
func (p Profile) ClampDuration(d time.Duration) time.Duration {
	return clamp(d, p.MinDuration, p.MaxDuration)
}

func (p Profile) ClampSpacing(d time.Duration) time.Duration {
	return clamp(d, p.MinSpacing, p.MaxSpacing)
}

func clamp(d, lo, hi time.Duration) time.Duration {
	if d < lo {
		return lo
	}
	if d > hi {
		return hi
	}
	return d
}
