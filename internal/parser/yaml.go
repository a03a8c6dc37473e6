package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"time"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"git.lost.host/meutraa/pedaldrill/internal/game"
	"git.lost.host/meutraa/pedaldrill/internal/input"
)

// YAMLParser reads drills and scenarios written in YAML (or JSON). Times and
// durations are in seconds.
//
//	name: T1 trail brake
//	keyframes:
//	  - {time: 2.0, lane: brake, percent: 80, duration: 0.5}
type YAMLParser struct {
	Logger *zap.Logger
}

type rawKeyframe struct {
	Time     *float64 `yaml:"time"`
	Lane     *string  `yaml:"lane"`
	Percent  *float64 `yaml:"percent"`
	Duration *float64 `yaml:"duration"`
}

// Entries are kept as nodes and decoded one at a time, so a single badly
// typed entry only costs that entry.
type rawDrill struct {
	Name      string      `yaml:"name"`
	Keyframes []yaml.Node `yaml:"keyframes"`
}

type rawScenario struct {
	Scenario []yaml.Node `yaml:"scenario"`
}

func (p *YAMLParser) Parse(file string) (*Drill, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, err
	}
	return p.Decode(bytes.NewReader(data))
}

// Decode reads a drill. Malformed keyframes are dropped; only a document
// that is not YAML at all is an error.
func (p *YAMLParser) Decode(r io.Reader) (*Drill, error) {
	var raw rawDrill
	if err := yaml.NewDecoder(r).Decode(&raw); nil != err && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to decode drill: %w", err)
	}

	drill := &Drill{Name: raw.Name, Keyframes: []game.Keyframe{}}
	for i, node := range raw.Keyframes {
		k, err := decodeKeyframe(&node)
		if nil != err {
			p.logger().Warn("dropping keyframe", zap.Int("index", i), zap.Error(err))
			drill.Dropped++
			continue
		}
		drill.Keyframes = append(drill.Keyframes, k)
	}
	return drill, nil
}

func decodeKeyframe(node *yaml.Node) (game.Keyframe, error) {
	var rk rawKeyframe
	if err := node.Decode(&rk); nil != err {
		return game.Keyframe{}, err
	}
	return rk.keyframe()
}

func (rk rawKeyframe) keyframe() (game.Keyframe, error) {
	if rk.Time == nil || rk.Lane == nil || rk.Percent == nil {
		return game.Keyframe{}, errors.New("missing time, lane or percent")
	}
	lane, err := game.ParseLane(*rk.Lane)
	if nil != err {
		return game.Keyframe{}, err
	}
	if *rk.Time < 0 || math.IsNaN(*rk.Time) {
		return game.Keyframe{}, fmt.Errorf("invalid time %v", *rk.Time)
	}
	if *rk.Percent < 0 || *rk.Percent > 100 || math.IsNaN(*rk.Percent) {
		return game.Keyframe{}, fmt.Errorf("percent %v outside 0-100", *rk.Percent)
	}
	d := 0.0
	if rk.Duration != nil {
		d = *rk.Duration
	}
	if d < 0 || math.IsNaN(d) {
		return game.Keyframe{}, fmt.Errorf("invalid duration %v", d)
	}
	return game.Keyframe{
		Time:     seconds(*rk.Time),
		Lane:     lane,
		Percent:  *rk.Percent,
		Duration: seconds(d),
	}, nil
}

// ParseScenario reads a debug override scenario:
//
//	scenario:
//	  - {t: 0, accelerator: 0, brake: 0}
//	  - {t: 5.05, accelerator: 0.7, brake: 0.5}
func (p *YAMLParser) ParseScenario(file string) ([]input.Step, error) {
	data, err := os.ReadFile(file)
	if nil != err {
		return nil, err
	}
	return p.DecodeScenario(bytes.NewReader(data))
}

func (p *YAMLParser) DecodeScenario(r io.Reader) ([]input.Step, error) {
	var raw rawScenario
	if err := yaml.NewDecoder(r).Decode(&raw); nil != err && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("unable to decode scenario: %w", err)
	}

	steps := []input.Step{}
	for i, node := range raw.Scenario {
		var entry map[string]yaml.Node
		if err := node.Decode(&entry); nil != err {
			p.logger().Warn("dropping scenario step", zap.Int("index", i), zap.Error(err))
			continue
		}
		tn, ok := entry["t"]
		var t float64
		if !ok || nil != tn.Decode(&t) || t < 0 || math.IsNaN(t) {
			p.logger().Warn("dropping scenario step without time", zap.Int("index", i))
			continue
		}
		step := input.Step{T: seconds(t), Values: map[game.Lane]float64{}}
		for key, vn := range entry {
			if key == "t" {
				continue
			}
			lane, err := game.ParseLane(key)
			if nil != err {
				p.logger().Warn("ignoring scenario value", zap.Int("index", i), zap.Error(err))
				continue
			}
			var v float64
			if err := vn.Decode(&v); nil != err {
				p.logger().Warn("ignoring scenario value", zap.Int("index", i), zap.Error(err))
				continue
			}
			step.Values[lane] = v
		}
		steps = append(steps, step)
	}
	return steps, nil
}

func (p *YAMLParser) logger() *zap.Logger {
	if p.Logger == nil {
		return zap.NewNop()
	}
	return p.Logger
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
