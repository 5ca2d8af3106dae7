package engine

import (
	"sync/atomic"
	"time"
)

// FrameClock is game time derived from the tick count
// Now() = epoch + frames*interval, so it freezes while paused and never drifts with wall clock
type FrameClock struct {
	epoch    time.Time
	interval time.Duration
	frames   atomic.Uint64
}

// NewFrameClock creates a clock starting at epoch advancing interval per frame
func NewFrameClock(epoch time.Time, interval time.Duration) *FrameClock {
	return &FrameClock{
		epoch:    epoch,
		interval: interval,
	}
}

// Advance moves the clock forward one frame and returns the new frame number
func (c *FrameClock) Advance() uint64 {
	return c.frames.Add(1)
}

// Frame returns the number of elapsed frames
func (c *FrameClock) Frame() uint64 {
	return c.frames.Load()
}

// Interval returns the per-frame duration
func (c *FrameClock) Interval() time.Duration {
	return c.interval
}

// Elapsed returns game time since epoch
func (c *FrameClock) Elapsed() time.Duration {
	return time.Duration(c.frames.Load()) * c.interval
}

// Now returns the current game time
func (c *FrameClock) Now() time.Time {
	return c.epoch.Add(c.Elapsed())
}
