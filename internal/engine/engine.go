// Package engine drives a drill run: it owns the clock, the generated
// targets and the per frame judgement. Hosts call Tick once per rendered
// frame; the engine never blocks and never runs between ticks.
package engine

import (
	"time"

	"go.uber.org/zap"

	"git.lost.host/meutraa/pedaldrill/internal/game"
)

const (
	DefaultLookahead = 8 * time.Second
	DefaultRetention = 4 * time.Second
)

type Engine interface {
	Start(ts time.Time) error
	Tick(frameTime time.Time)
	Stop()

	Run() game.Run
	Complete() bool
	Active() bool
	Layout() game.Layout
	Targets(lane game.Lane) []*game.Target
	Frame() []Renderable
}

// Config selects what a run plays. Total of zero is an unbounded run.
type Config struct {
	Mode       game.Mode
	Difficulty game.Difficulty
	Profile    *game.Profile
	Total      time.Duration
	Tolerance  float64
	Keyframes  []game.Keyframe
}

// Event is emitted once per resolved target.
type Event struct {
	TargetID   uint64
	Lane       game.Lane
	Judgement  game.Judgement
	Percent    float64
	TargetTime time.Duration
	Time       time.Duration // run time the target resolved at
}

type Listener interface {
	RunStarted(run game.Run)
	Judged(ev Event)
	RunCompleted(run game.Run)
}

// Hooks is a Listener made of optional functions.
type Hooks struct {
	OnStart    func(run game.Run)
	OnJudged   func(ev Event)
	OnComplete func(run game.Run)
}

func (h Hooks) RunStarted(run game.Run) {
	if h.OnStart != nil {
		h.OnStart(run)
	}
}

func (h Hooks) Judged(ev Event) {
	if h.OnJudged != nil {
		h.OnJudged(ev)
	}
}

func (h Hooks) RunCompleted(run game.Run) {
	if h.OnComplete != nil {
		h.OnComplete(run)
	}
}

type Option func(*core)

func WithListener(ls ...Listener) Option {
	return func(c *core) {
		c.listeners = append(c.listeners, ls...)
	}
}

func WithScroll(s Scroll) Option {
	return func(c *core) {
		c.scroll = s
	}
}

// WithSeed fixes the random seed of the first run; later runs use the
// following seeds.
func WithSeed(seed int64) Option {
	return func(c *core) {
		c.seed = seed
	}
}

func WithLogger(l *zap.Logger) Option {
	return func(c *core) {
		c.logger = l
	}
}

// WithLookahead sets how far ahead unbounded runs keep targets generated
// and how long resolved targets are kept behind the clock.
func WithLookahead(lookahead, retention time.Duration) Option {
	return func(c *core) {
		c.lookahead = lookahead
		c.retention = retention
	}
}
