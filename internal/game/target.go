package game

import (
	"fmt"
	"time"
)

type Status uint8

const (
	Pending Status = iota
	Hit
	Missed
)

func (s Status) String() string {
	switch s {
	case Hit:
		return "hit"
	case Missed:
		return "missed"
	}
	return "pending"
}

// TargetState is Pending, Hit{Grade} or Missed. Grade is only meaningful
// for Hit.
type TargetState struct {
	Status Status
	Grade  Judgement
}

func (s TargetState) Resolved() bool {
	return s.Status != Pending
}

func (s TargetState) String() string {
	if s.Status == Hit {
		return fmt.Sprintf("hit(%v)", s.Grade)
	}
	return s.Status.String()
}

type Target struct {
	ID       uint64
	Lane     Lane
	Time     time.Duration // Start of the hold window, or the instant for dual lane targets
	Percent  float64       // 0-100
	Duration time.Duration // Hold length, or the rendered width for dual lane targets

	// This is state
	State      TargetState
	ResolvedAt time.Duration
}

func (t *Target) End() time.Duration {
	return t.Time + t.Duration
}

func (t *Target) Pending() bool {
	return !t.State.Resolved()
}

// Resolve moves a pending target to Hit or Missed. It returns false and
// leaves the target untouched when the target was already resolved or the
// grade is None.
func (t *Target) Resolve(grade Judgement, now time.Duration) bool {
	if t.State.Resolved() || grade == None {
		return false
	}
	if grade == Miss {
		t.State = TargetState{Status: Missed, Grade: Miss}
	} else {
		t.State = TargetState{Status: Hit, Grade: grade}
	}
	t.ResolvedAt = now
	return true
}

func (t *Target) String() string {
	return fmt.Sprintf("#%d %v %.0f%% @%v+%v %v", t.ID, t.Lane, t.Percent, t.Time, t.Duration, t.State)
}
