package level

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestWallClockClampsFrames(t *testing.T) {
	now := time.Unix(1000, 0)
	c := NewWallClock(0.05)
	c.now = func() time.Time { return now }

	assert.Zero(t, c.FrameTime())

	now = now.Add(20 * time.Millisecond)
	assert.InDelta(t, 0.02, c.FrameTime(), 1e-9)

	now = now.Add(2 * time.Second)
	assert.Equal(t, 0.05, c.FrameTime())

	now = now.Add(-time.Second)
	assert.Zero(t, c.FrameTime())

	c.Reset()
	now = now.Add(time.Hour)
	assert.Zero(t, c.FrameTime())
}

func TestWallClockDefaultMax(t *testing.T) {
	assert.Greater(t, NewWallClock(0).Max, 0.0)
}

func TestManualClock(t *testing.T) {
	var c ManualClock
	assert.Zero(t, c.FrameTime())
	c.Set(0.016)
	assert.Equal(t, 0.016, c.FrameTime())
	assert.Equal(t, 0.016, c.FrameTime())
}

func TestFixedClock(t *testing.T) {
	assert.Equal(t, 0.25, FixedClock(0.25).FrameTime())
}
