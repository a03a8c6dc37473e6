package input

import (
	"sort"
	"time"

	"git.lost.host/meutraa/pedaldrill/internal/game"
)

// Step is one scenario keyframe: from T on, each listed lane reads its
// value until a later step changes it.
type Step struct {
	T      time.Duration
	Values map[game.Lane]float64
}

// Override replaces the live feed with a scripted scenario and keeps a log
// of every judgement, for deterministic replays.
type Override struct {
	steps []Step
	log   []Entry
}

func NewOverride(steps []Step) *Override {
	sorted := append([]Step(nil), steps...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].T < sorted[j].T })
	return &Override{steps: sorted}
}

// Sample returns the lane value of the last step at or before now.
func (o *Override) Sample(lane game.Lane, now time.Duration) (float64, bool) {
	i := sort.Search(len(o.steps), func(i int) bool { return o.steps[i].T > now })
	for i--; i >= 0; i-- {
		if v, ok := o.steps[i].Values[lane]; ok {
			return v, true
		}
	}
	return 0, false
}

func (o *Override) Record(e Entry) {
	o.log = append(o.log, e)
}

func (o *Override) Log() []Entry {
	return o.log
}

// End is the time of the last step.
func (o *Override) End() time.Duration {
	if len(o.steps) == 0 {
		return 0
	}
	return o.steps[len(o.steps)-1].T
}

func (o *Override) ClearLog() {
	o.log = nil
}
