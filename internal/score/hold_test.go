package score

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}

func TestHoldConfirmsAfterContinuousDuration(t *testing.T) {
	h := Hold{Duration: HoldDuration}
	assert.False(t, h.Update(true, ms(2000)))
	assert.True(t, h.Armed())
	assert.False(t, h.Update(true, ms(2240)))
	assert.InDelta(t, 0.96, h.Progress(ms(2240)), 1e-9)
	assert.True(t, h.Update(true, ms(2250)))
	// confirmation sticks
	assert.True(t, h.Update(false, ms(2260)))
}

func TestHoldResetsOnExit(t *testing.T) {
	h := Hold{Duration: HoldDuration}
	for now := 2000; now < 2200; now += 10 {
		assert.False(t, h.Update(true, ms(now)))
	}
	assert.False(t, h.Update(false, ms(2200)))
	assert.False(t, h.Armed())
	assert.Equal(t, 0.0, h.Progress(ms(2200)))

	h.Update(true, ms(2210))
	assert.True(t, h.Armed())
	assert.InDelta(t, 0.5, h.Progress(ms(2335)), 1e-9, "progress restarts at the new entry")
	// 450ms since the first entry but only 240ms continuous
	assert.False(t, h.Update(true, ms(2450)))
	assert.True(t, h.Update(true, ms(2460)))
}
