package clock

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClockAdvance(t *testing.T) {
	var c Clock
	base := time.Unix(1000, 0)

	assert.Equal(t, time.Duration(0), c.Advance(base.Add(time.Second)), "stopped clock must not run")
	assert.False(t, c.Running())

	c.Start(base)
	assert.Equal(t, 100*time.Millisecond, c.Advance(base.Add(100*time.Millisecond)))
	assert.Equal(t, 100*time.Millisecond, c.Now())
	assert.Equal(t, uint64(1), c.Frame())

	// a late frame timestamp never moves time backwards
	assert.Equal(t, 100*time.Millisecond, c.Advance(base.Add(50*time.Millisecond)))
	assert.Equal(t, uint64(2), c.Frame())

	assert.Equal(t, 2*time.Second, c.Advance(base.Add(2*time.Second)))
}

func TestClockStopResets(t *testing.T) {
	var c Clock
	base := time.Unix(1000, 0)
	c.Start(base)
	c.Advance(base.Add(3 * time.Second))

	c.Stop()
	assert.False(t, c.Running())
	assert.Equal(t, time.Duration(0), c.Now())
	assert.Equal(t, uint64(0), c.Frame())

	restart := base.Add(10 * time.Second)
	c.Start(restart)
	assert.Equal(t, 20*time.Millisecond, c.Advance(restart.Add(20*time.Millisecond)))
}
