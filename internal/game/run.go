package game

import (
	"fmt"
	"strings"
	"time"
)

type Mode uint8

const (
	Random Mode = iota
	Scripted
)

func (m Mode) String() string {
	if m == Scripted {
		return "scripted"
	}
	return "random"
}

func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "random":
		return Random, nil
	case "scripted":
		return Scripted, nil
	}
	return Random, fmt.Errorf("%w: unknown mode %q", ErrInvalidConfig, s)
}

// Keyframe is one entry of a scripted drill.
type Keyframe struct {
	Time     time.Duration
	Lane     Lane
	Percent  float64
	Duration time.Duration
}

// Run describes one drill execution. TotalDuration of zero means the run
// is unbounded.
type Run struct {
	Mode          Mode
	Layout        Layout
	Difficulty    Difficulty
	TotalDuration time.Duration
	CurrentTime   time.Duration
	Complete      bool
}

func (r Run) Bounded() bool {
	return r.TotalDuration > 0
}
