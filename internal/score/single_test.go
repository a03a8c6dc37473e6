package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"git.lost.host/meutraa/pedaldrill/internal/game"
)

func singleTarget() *game.Target {
	return &game.Target{ID: 1, Lane: game.Single, Time: 2 * time.Second, Percent: 60, Duration: time.Second}
}

// frames feeds live(now) at 10ms steps over [from, to] and returns the first
// non-None judgement with its time.
func frames(s Scorer, target *game.Target, from, to int, live func(now int) (float64, bool)) (game.Judgement, time.Duration) {
	for now := from; now <= to; now += 10 {
		v, ok := live(now)
		if j := s.Evaluate(target, v, ok, ms(now)); j != game.None {
			return j, ms(now)
		}
	}
	return game.None, 0
}

func TestSingleLaneHeldTarget(t *testing.T) {
	s, err := NewSingleLaneScorer(2)
	require.NoError(t, err)
	target := singleTarget()

	j, at := frames(s, target, 1900, 2300, func(now int) (float64, bool) {
		if now >= 2000 {
			return 0.6, true
		}
		return 0, true
	})
	assert.Equal(t, game.Perfect, j)
	assert.Equal(t, ms(2250), at)
	assert.Equal(t, game.TargetState{Status: game.Hit, Grade: game.Perfect}, target.State)
	_, tracked := s.Hold(target)
	assert.False(t, tracked, "hold state is discarded once resolved")
}

func TestSingleLaneDroppedHoldMisses(t *testing.T) {
	s, err := NewSingleLaneScorer(2)
	require.NoError(t, err)
	target := singleTarget()

	j, at := frames(s, target, 2000, 3100, func(now int) (float64, bool) {
		if now < 2100 {
			return 0.6, true
		}
		return 0, true
	})
	assert.Equal(t, game.Miss, j)
	assert.Equal(t, ms(3010), at, "missed the first frame after the window closed")
	assert.Equal(t, game.Missed, target.State.Status)
}

func TestSingleLaneHoldContinuity(t *testing.T) {
	s, err := NewSingleLaneScorer(2)
	require.NoError(t, err)
	target := singleTarget()

	// 200ms in, 10ms out, 240ms in, then gone
	j, _ := frames(s, target, 2000, 3100, func(now int) (float64, bool) {
		switch {
		case now < 2200:
			return 0.6, true
		case now < 2210:
			return 0.2, true
		case now < 2460:
			return 0.6, true
		}
		return 0, true
	})
	assert.Equal(t, game.Miss, j)
}

func TestSingleLaneOutageBreaksHold(t *testing.T) {
	s, err := NewSingleLaneScorer(2)
	require.NoError(t, err)
	target := singleTarget()

	j, at := frames(s, target, 2000, 3100, func(now int) (float64, bool) {
		if now == 2100 {
			return 0, false
		}
		return 0.6, true
	})
	assert.Equal(t, game.Perfect, j)
	assert.Equal(t, ms(2360), at, "hold restarts at 2110 after the missing sample")
}

func TestSingleLaneGrades(t *testing.T) {
	tests := []struct {
		live float64
		want game.Judgement
	}{
		{0.605, game.Perfect},
		{0.611, game.Great},
		{0.619, game.Good},
		{0.628, game.OK},
		{0.64, game.Miss},
	}
	for _, tt := range tests {
		s, err := NewSingleLaneScorer(2)
		require.NoError(t, err)
		target := singleTarget()
		j, _ := frames(s, target, 2000, 3100, func(int) (float64, bool) { return tt.live, true })
		assert.Equal(t, tt.want, j, "live %v", tt.live)
	}
}

func TestSingleLaneResolvedIsImmutable(t *testing.T) {
	s, err := NewSingleLaneScorer(2)
	require.NoError(t, err)
	target := singleTarget()
	require.Equal(t, game.Miss, s.Evaluate(target, 0, true, ms(3500)))

	for now := 2000; now <= 3500; now += 10 {
		assert.Equal(t, game.None, s.Evaluate(target, 0.6, true, ms(now)))
	}
	assert.Equal(t, game.Missed, target.State.Status)
	assert.Equal(t, ms(3500), target.ResolvedAt)
}
