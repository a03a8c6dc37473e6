package config

import (
	"fmt"
	"time"

	"gopkg.in/alecthomas/kingpin.v2"

	"git.lost.host/meutraa/pedaldrill/internal/game"
)

const Version = "0.3.0"

const DefaultDuration = 60 * time.Second

const (
	CommandPlay   = "play"
	CommandReplay = "replay"
)

type Config struct {
	Command string

	Layout     game.Layout
	Mode       game.Mode
	Difficulty game.Difficulty
	DrillFile  string
	Scenario   string
	Duration   time.Duration // zero plays forever
	Tolerance  float64
	Seed       int64

	Wheel  bool
	MinDeg float64
	MaxDeg float64

	KeysAccelerator string
	KeysBrake       string

	Delay       time.Duration
	FramePeriod time.Duration
	ScrollSpeed float64 // columns per second
	HitColumn   uint
	Audio       bool

	LogLevel  string
	LogFormat string
}

// Parse reads the command line. It has no side effects beyond the returned
// configuration, so it can be called more than once.
func Parse(args []string) (*Config, error) {
	cfg := &Config{}
	var lanes, mode, difficulty, duration string

	app := kingpin.New("pedaldrill", "Pedal and wheel training drills")
	app.Version(Version)
	app.HelpFlag.Short('h')

	app.Flag("lanes", "single (one pedal or the wheel) or dual (accelerator and brake)").Default("single").Short('l').EnumVar(&lanes, "single", "dual")
	app.Flag("mode", "random or scripted").Default("random").Short('m').EnumVar(&mode, "random", "scripted")
	app.Flag("drill", "Scripted drill file (implies --mode=scripted)").Short('f').ExistingFileVar(&cfg.DrillFile)
	app.Flag("difficulty", "easy, medium, hard or expert").Default("medium").Short('d').StringVar(&difficulty)
	app.Flag("duration", "Drill length, 0 for endless (default 60s, scripted drills end with their content)").Short('t').StringVar(&duration)
	app.Flag("tolerance", "Allowed deviation in percent points").Default("5").Float64Var(&cfg.Tolerance)
	app.Flag("seed", "Random seed, 0 picks one").Default("0").Int64Var(&cfg.Seed)
	app.Flag("wheel", "Drill the wheel angle instead of a pedal").BoolVar(&cfg.Wheel)
	app.Flag("min-deg", "Wheel angle mapped to 0%").Default("-450").Float64Var(&cfg.MinDeg)
	app.Flag("max-deg", "Wheel angle mapped to 100%").Default("450").Float64Var(&cfg.MaxDeg)
	app.Flag("keys-accelerator", "Keys for accelerator levels, lowest first").Default("1234567890").StringVar(&cfg.KeysAccelerator)
	app.Flag("keys-brake", "Keys for brake levels, lowest first").Default("qwertyuiop").StringVar(&cfg.KeysBrake)
	app.Flag("delay", "Start delay").Default("1.5s").DurationVar(&cfg.Delay)
	app.Flag("frame-period", "Frame period").Default("16ms").Short('p').DurationVar(&cfg.FramePeriod)
	app.Flag("scroll-speed", "Columns scrolled per second").Default("12").Short('s').Float64Var(&cfg.ScrollSpeed)
	app.Flag("hit-column", "Console column of the hit bar").Default("10").UintVar(&cfg.HitColumn)
	app.Flag("audio", "Play a cue for every judgement").BoolVar(&cfg.Audio)
	app.Flag("log-level", "zap log level").Default("warn").StringVar(&cfg.LogLevel)
	app.Flag("log-format", "text or json").Default("text").EnumVar(&cfg.LogFormat, "text", "json")

	app.Command(CommandPlay, "Play a drill in the terminal").Default()
	replay := app.Command(CommandReplay, "Replay a scripted input scenario and print every judgement")
	replay.Arg("scenario", "Scenario file").Required().ExistingFileVar(&cfg.Scenario)

	cmd, err := app.Parse(args)
	if nil != err {
		return nil, err
	}
	cfg.Command = cmd

	if lanes == "dual" {
		cfg.Layout = game.DualLane
	}
	if cfg.Mode, err = game.ParseMode(mode); nil != err {
		return nil, err
	}
	if cfg.DrillFile != "" {
		cfg.Mode = game.Scripted
	}
	if cfg.Mode == game.Scripted && cfg.DrillFile == "" {
		return nil, fmt.Errorf("%w: scripted mode needs --drill", game.ErrInvalidConfig)
	}
	switch {
	case duration != "":
		if cfg.Duration, err = time.ParseDuration(duration); nil != err {
			return nil, fmt.Errorf("%w: duration: %v", game.ErrInvalidConfig, err)
		}
	case cfg.Mode == game.Random:
		cfg.Duration = DefaultDuration
	}
	if cfg.Difficulty, err = game.ParseDifficulty(difficulty); nil != err {
		return nil, err
	}
	if cfg.Duration < 0 {
		return nil, fmt.Errorf("%w: negative duration %v", game.ErrInvalidConfig, cfg.Duration)
	}
	if cfg.FramePeriod <= 0 {
		return nil, fmt.Errorf("%w: frame period must be positive", game.ErrInvalidConfig)
	}
	if cfg.ScrollSpeed <= 0 {
		return nil, fmt.Errorf("%w: scroll speed must be positive", game.ErrInvalidConfig)
	}
	if cfg.Wheel && cfg.Layout == game.DualLane {
		return nil, fmt.Errorf("%w: the wheel drill is single lane", game.ErrInvalidConfig)
	}
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}
