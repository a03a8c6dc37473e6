package game

import (
	"fmt"
	"strings"
)

type Lane uint8

const (
	Single Lane = iota
	Accelerator
	Brake
)

var laneNames = map[Lane]string{
	Single:      "single",
	Accelerator: "accelerator",
	Brake:       "brake",
}

func (l Lane) String() string {
	if name, ok := laneNames[l]; ok {
		return name
	}
	return fmt.Sprintf("lane(%d)", uint8(l))
}

// ParseLane accepts the lane names used in drill and scenario files.
// "throttle" and "gas" are aliases for the accelerator.
func ParseLane(s string) (Lane, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "single", "wheel", "pedal":
		return Single, nil
	case "accelerator", "throttle", "gas", "accel":
		return Accelerator, nil
	case "brake":
		return Brake, nil
	}
	return Single, fmt.Errorf("unknown lane %q", s)
}

func (l Lane) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}

func (l *Lane) UnmarshalText(b []byte) error {
	lane, err := ParseLane(string(b))
	if nil != err {
		return err
	}
	*l = lane
	return nil
}

// Layout is the set of lanes an engine judges.
type Layout uint8

const (
	SingleLane Layout = iota
	DualLane
)

func (l Layout) Lanes() []Lane {
	if l == DualLane {
		return []Lane{Accelerator, Brake}
	}
	return []Lane{Single}
}

func (l Layout) Has(lane Lane) bool {
	for _, c := range l.Lanes() {
		if c == lane {
			return true
		}
	}
	return false
}

func (l Layout) String() string {
	if l == DualLane {
		return "dual"
	}
	return "single"
}
