package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"go.uber.org/zap"

	"git.lost.host/meutraa/pedaldrill/internal/audio"
	"git.lost.host/meutraa/pedaldrill/internal/config"
	"git.lost.host/meutraa/pedaldrill/internal/engine"
	"git.lost.host/meutraa/pedaldrill/internal/game"
	"git.lost.host/meutraa/pedaldrill/internal/input"
	"git.lost.host/meutraa/pedaldrill/internal/log"
	"git.lost.host/meutraa/pedaldrill/internal/parser"
	"git.lost.host/meutraa/pedaldrill/internal/render"
)

// replayTail is how long an endless replay keeps running after the last
// scenario step.
const replayTail = 2 * time.Second

func main() {
	if err := run(os.Args[1:]); nil != err {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.Parse(args)
	if nil != err {
		return err
	}
	if err := log.Init(cfg.LogLevel, cfg.LogFormat); nil != err {
		return err
	}
	defer log.Sync()

	drill, err := loadDrill(cfg)
	if nil != err {
		return err
	}

	switch cfg.Command {
	case config.CommandReplay:
		_, err := replay(cfg, drill, os.Stdout)
		return err
	default:
		return play(cfg, drill)
	}
}

func loadDrill(cfg *config.Config) (*parser.Drill, error) {
	if cfg.Mode != game.Scripted {
		return nil, nil
	}
	var psr parser.Parser = &parser.YAMLParser{Logger: log.Logger}
	drill, err := psr.Parse(cfg.DrillFile)
	if nil != err {
		return nil, err
	}
	log.Logger.Info("loaded drill",
		zap.String("name", drill.Name),
		zap.Int("keyframes", len(drill.Keyframes)),
		zap.Int("dropped", drill.Dropped))
	return drill, nil
}

func newEngine(cfg *config.Config, drill *parser.Drill, source input.Source, opts ...engine.Option) (engine.Engine, error) {
	ec := engine.Config{
		Mode:       cfg.Mode,
		Difficulty: cfg.Difficulty,
		Total:      cfg.Duration,
		Tolerance:  cfg.Tolerance,
	}
	if drill != nil {
		ec.Keyframes = drill.Keyframes
	}
	opts = append([]engine.Option{
		engine.WithSeed(cfg.Seed),
		engine.WithLogger(log.Logger),
	}, opts...)

	if cfg.Layout == game.DualLane {
		e, err := engine.NewDual(ec, source, opts...)
		if nil != err {
			return nil, err
		}
		return e, nil
	}
	e, err := engine.NewSingle(ec, source, opts...)
	if nil != err {
		return nil, err
	}
	return e, nil
}

func play(cfg *config.Config, drill *parser.Drill) error {
	r := render.New(os.Stdout, int(os.Stdout.Fd()))
	columns, rows, err := r.Size()
	if nil != err {
		return err
	}

	kb := input.NewKeyboard(cfg.Layout, cfg.KeysAccelerator, cfg.KeysBrake)
	var source input.Source = kb
	if cfg.Wheel {
		wheel, err := input.NewWheel(kb, cfg.MinDeg, cfg.MaxDeg)
		if nil != err {
			return err
		}
		kb.Transform = wheel.Angle
		kb.Apply(0, kb.Release)
		source = wheel
	}

	p := NewProgram()
	p.Source = source
	p.Renderer = r
	p.Resize(columns, rows, uint16(cfg.HitColumn))
	listeners := []engine.Listener{p}
	if cfg.Audio {
		cue, err := audio.NewCue()
		if nil != err {
			return err
		}
		listeners = append(listeners, cue)
	}

	scroll := engine.Scroll{
		Speed:     cfg.ScrollSpeed,
		HitOffset: float64(cfg.HitColumn),
		Behind:    engine.DefaultScroll.Behind,
		Ahead:     time.Duration(float64(columns) / cfg.ScrollSpeed * float64(time.Second)),
	}
	e, err := newEngine(cfg, drill, source, engine.WithListener(listeners...), engine.WithScroll(scroll))
	if nil != err {
		return err
	}
	p.Engine = e

	if err := kb.Open(); nil != err {
		return err
	}
	defer func() {
		if err := kb.Close(); nil != err {
			log.Logger.Warn("unable to close keyboard", zap.Error(err))
		}
	}()

	if err := r.Init(); nil != err {
		return err
	}
	if err := e.Start(time.Now().Add(cfg.Delay)); nil != err {
		_ = r.Deinit()
		return err
	}
	r.RenderLoop(0, cfg.FramePeriod, func(now time.Time) bool {
		if kb.Poll() {
			return false
		}
		e.Tick(now)
		p.Render()
		return !e.Complete()
	})
	if e.Complete() {
		// keep the final frame up until a key is pressed
		kb.Wait()
	}
	e.Stop()
	if err := r.Deinit(); nil != err {
		return err
	}
	fmt.Print(p.Summary())
	return nil
}

// replay runs a scenario through the debug override as fast as possible,
// one tick per frame period of logical time, and prints every judgement.
func replay(cfg *config.Config, drill *parser.Drill, w io.Writer) (*Program, error) {
	psr := &parser.YAMLParser{Logger: log.Logger}
	steps, err := psr.ParseScenario(cfg.Scenario)
	if nil != err {
		return nil, err
	}
	override := input.NewOverride(steps)

	p := NewProgram()
	p.Source = override
	done := engine.Hooks{OnComplete: func(run game.Run) {
		log.Logger.Info("replay complete",
			zap.Duration("at", run.CurrentTime),
			zap.Int("judged", p.Total()))
	}}
	e, err := newEngine(cfg, drill, override, engine.WithListener(p, done))
	if nil != err {
		return nil, err
	}
	p.Engine = e

	limit := cfg.Duration
	if limit == 0 && cfg.Mode == game.Random {
		limit = override.End() + replayTail
	}

	start := time.Unix(0, 0)
	if err := e.Start(start); nil != err {
		return nil, err
	}
	for ts := start; !e.Complete(); ts = ts.Add(cfg.FramePeriod) {
		if limit > 0 && ts.Sub(start) > limit {
			break
		}
		e.Tick(ts)
	}

	for _, entry := range override.Log() {
		fmt.Fprintf(w, "%9.3fs  %-11v  %-7v  %5.1f%%  #%v\n",
			entry.Time.Seconds(), entry.Lane, entry.Judgement, entry.Percent, entry.TargetID)
	}
	fmt.Fprint(w, p.Summary())
	return p, nil
}
