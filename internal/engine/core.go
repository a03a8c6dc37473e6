package engine

import (
	"fmt"
	"sort"
	"time"

	"go.uber.org/zap"

	"git.lost.host/meutraa/pedaldrill/internal/clock"
	"git.lost.host/meutraa/pedaldrill/internal/game"
	"git.lost.host/meutraa/pedaldrill/internal/generator"
	"git.lost.host/meutraa/pedaldrill/internal/input"
	"git.lost.host/meutraa/pedaldrill/internal/log"
	"git.lost.host/meutraa/pedaldrill/internal/score"
)

// core is the run plumbing shared by the single and dual lane engines.
type core struct {
	cfg       Config
	layout    game.Layout
	source    input.Source
	recorder  input.Recorder
	scorer    score.Scorer
	listeners []Listener
	logger    *zap.Logger
	scroll    Scroll
	lookahead time.Duration
	retention time.Duration
	seed      int64
	runs      int64
	minHold   time.Duration

	// judge evaluates every lane for one clock sample and returns the
	// events in the order they must be emitted.
	judge    func(now time.Duration) []Event
	progress func(t *game.Target, now time.Duration) float64

	clock  clock.Clock
	gen    *generator.Generator
	charts []*game.Chart
	run    game.Run
	active bool
}

func newCore(layout game.Layout, cfg Config, source input.Source, scorer score.Scorer, opts []Option) (*core, error) {
	if source == nil {
		return nil, fmt.Errorf("%w: no input source", game.ErrInvalidConfig)
	}
	c := &core{
		cfg:       cfg,
		layout:    layout,
		source:    source,
		scorer:    scorer,
		logger:    log.Logger,
		scroll:    DefaultScroll,
		lookahead: DefaultLookahead,
		retention: DefaultRetention,
		seed:      time.Now().UnixNano(),
	}
	if r, ok := source.(input.Recorder); ok {
		c.recorder = r
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.lookahead <= 0 || c.retention < 0 {
		return nil, fmt.Errorf("%w: lookahead %v retention %v", game.ErrInvalidConfig, c.lookahead, c.retention)
	}
	// reject bad generation parameters now rather than at Start
	if _, err := generator.New(c.generatorOptions()); nil != err {
		return nil, err
	}
	return c, nil
}

func (c *core) generatorOptions() generator.Options {
	return generator.Options{
		Mode:       c.cfg.Mode,
		Layout:     c.layout,
		Difficulty: c.cfg.Difficulty,
		Profile:    c.cfg.Profile,
		Total:      c.cfg.Total,
		Seed:       c.seed + c.runs,
		Keyframes:  c.cfg.Keyframes,
		MinHold:    c.minHold,
	}
}

// Start discards any current run and begins a fresh one at ts.
func (c *core) Start(ts time.Time) error {
	c.Stop()

	gen, err := generator.New(c.generatorOptions())
	if nil != err {
		return err
	}
	c.runs++
	c.gen = gen
	c.charts = make([]*game.Chart, 0, len(c.layout.Lanes()))
	for _, lane := range c.layout.Lanes() {
		c.charts = append(c.charts, &game.Chart{Lane: lane})
	}

	horizon := c.lookahead
	if c.cfg.Total > 0 {
		horizon = c.cfg.Total
	}
	c.add(gen.Fill(horizon))
	if n := gen.Dropped(); n > 0 {
		c.logger.Warn("dropped malformed keyframes", zap.Int("dropped", n))
	}

	c.clock.Start(ts)
	c.active = true
	c.run = game.Run{
		Mode:          c.cfg.Mode,
		Layout:        c.layout,
		Difficulty:    c.cfg.Difficulty,
		TotalDuration: c.cfg.Total,
	}
	c.logger.Debug("run started",
		zap.Stringer("mode", c.cfg.Mode),
		zap.Stringer("layout", c.layout),
		zap.String("difficulty", string(c.cfg.Difficulty)),
		zap.Duration("total", c.cfg.Total),
		zap.Int("targets", c.count()))
	for _, l := range c.listeners {
		l.RunStarted(c.run)
	}

	if c.cfg.Mode == game.Scripted && c.count() == 0 {
		c.finish(0)
	}
	return nil
}

// Tick advances the run by one frame. The order is fixed: clock, bounded
// completion, generator top up, judgement, content completion.
func (c *core) Tick(frameTime time.Time) {
	if !c.active || c.run.Complete {
		return
	}
	now := c.clock.Advance(frameTime)
	c.run.CurrentTime = now

	if c.cfg.Total > 0 && now >= c.cfg.Total {
		c.finish(now)
		return
	}
	if c.cfg.Total == 0 && c.cfg.Mode == game.Random {
		c.topUp(now)
	}

	for _, ev := range c.judge(now) {
		c.emit(ev)
	}
	for _, chart := range c.charts {
		advance(chart)
	}

	if c.cfg.Mode == game.Scripted && c.pending() == 0 {
		c.finish(now)
	}
}

// Stop discards the clock, the targets and every hold in one step.
func (c *core) Stop() {
	if c.active {
		c.logger.Debug("run stopped", zap.Duration("at", c.clock.Now()))
	}
	c.active = false
	c.clock.Stop()
	c.gen = nil
	c.charts = nil
	c.scorer.Reset()
	c.run = game.Run{}
}

func (c *core) Run() game.Run {
	return c.run
}

func (c *core) Complete() bool {
	return c.run.Complete
}

func (c *core) Active() bool {
	return c.active
}

func (c *core) Layout() game.Layout {
	return c.layout
}

func (c *core) Now() time.Duration {
	return c.clock.Now()
}

// Targets returns the live target list of a lane.
func (c *core) Targets(lane game.Lane) []*game.Target {
	if chart := c.chart(lane); chart != nil {
		return chart.Targets
	}
	return nil
}

func (c *core) chart(lane game.Lane) *game.Chart {
	for _, chart := range c.charts {
		if chart.Lane == lane {
			return chart
		}
	}
	return nil
}

func (c *core) add(ts []*game.Target) {
	for _, t := range ts {
		if chart := c.chart(t.Lane); chart != nil {
			chart.Add(t)
		}
	}
}

func (c *core) topUp(now time.Duration) {
	if !c.gen.Exhausted() {
		c.add(c.gen.Fill(now + c.lookahead))
	}
	for _, chart := range c.charts {
		if n := chart.Prune(now - c.retention); n > 0 {
			c.logger.Debug("pruned targets", zap.Stringer("lane", chart.Lane), zap.Int("count", n))
		}
	}
}

// evaluate judges the active targets of one chart against one sample.
func (c *core) evaluate(chart *game.Chart, live float64, ok bool, now time.Duration) []Event {
	events := []Event{}
	active, _ := chart.Active()
	for _, t := range active {
		if from, _ := c.scorer.Span(t); from > now {
			break
		}
		if j := c.scorer.Evaluate(t, live, ok, now); j != game.None {
			events = append(events, event(t, j, now))
		}
	}
	return events
}

func (c *core) emit(ev Event) {
	c.logger.Debug("judged",
		zap.Uint64("target", ev.TargetID),
		zap.Stringer("lane", ev.Lane),
		zap.Stringer("judgement", ev.Judgement),
		zap.Float64("percent", ev.Percent),
		zap.Duration("at", ev.Time))
	if c.recorder != nil {
		c.recorder.Record(input.Entry{
			Lane:      ev.Lane,
			Judgement: ev.Judgement,
			Time:      ev.Time,
			Percent:   ev.Percent,
			TargetID:  ev.TargetID,
		})
	}
	for _, l := range c.listeners {
		l.Judged(ev)
	}
}

// finish misses whatever is still pending and marks the run complete.
func (c *core) finish(now time.Duration) {
	swept := []Event{}
	for _, chart := range c.charts {
		for _, t := range chart.Targets {
			if t.Resolve(game.Miss, now) {
				swept = append(swept, event(t, game.Miss, now))
			}
		}
	}
	for _, ev := range inTargetOrder(swept) {
		c.emit(ev)
	}

	c.run.CurrentTime = now
	c.run.Complete = true
	c.logger.Debug("run completed", zap.Duration("at", now), zap.Int("swept", len(swept)))
	for _, l := range c.listeners {
		l.RunCompleted(c.run)
	}
}

func (c *core) count() int {
	n := 0
	for _, chart := range c.charts {
		n += len(chart.Targets)
	}
	return n
}

func (c *core) pending() int {
	n := 0
	for _, chart := range c.charts {
		n += chart.Pending()
	}
	return n
}

func event(t *game.Target, j game.Judgement, now time.Duration) Event {
	return Event{
		TargetID:   t.ID,
		Lane:       t.Lane,
		Judgement:  j,
		Percent:    t.Percent,
		TargetTime: t.Time,
		Time:       now,
	}
}

// inTargetOrder sorts events by target time, keeping lane order for ties.
func inTargetOrder(evs []Event) []Event {
	sort.SliceStable(evs, func(i, j int) bool { return evs[i].TargetTime < evs[j].TargetTime })
	return evs
}

// advance slides the active window past the resolved head of the chart.
func advance(chart *game.Chart) {
	active, start := chart.Active()
	n := 0
	for n < len(active) && !active[n].Pending() {
		n++
	}
	chart.SetActive(start + n)
}
