package level

import (
	"time"

	"go-waypoint-defense/internal/config"
)

// Clock supplies the duration of the frame being simulated, in seconds.
// FrameTime is called exactly once per Level.Advance.
type Clock interface {
	FrameTime() float64
}

// FixedClock reports the same frame time every call.
type FixedClock float64

func (c FixedClock) FrameTime() float64 { return float64(c) }

// ManualClock reports whatever frame time was last set. It lets a caller
// that already measures frames, like an ebiten loop, drive the level.
type ManualClock struct {
	dt float64
}

func (c *ManualClock) Set(dt float64) { c.dt = dt }

func (c *ManualClock) FrameTime() float64 { return c.dt }

// WallClock measures real time between calls, clamped to Max so that a
// stalled window does not teleport everything on the next frame.
type WallClock struct {
	Max  float64
	last time.Time
	now  func() time.Time
}

func NewWallClock(max float64) *WallClock {
	if max <= 0 {
		max = config.MaxDeltaTime
	}
	return &WallClock{Max: max, now: time.Now}
}

func (c *WallClock) FrameTime() float64 {
	now := c.now()
	if c.last.IsZero() {
		c.last = now
		return 0
	}
	dt := now.Sub(c.last).Seconds()
	c.last = now
	if dt > c.Max {
		dt = c.Max
	}
	if dt < 0 {
		dt = 0
	}
	return dt
}

// Reset forgets the previous timestamp, e.g. after the game was paused.
func (c *WallClock) Reset() {
	c.last = time.Time{}
}
