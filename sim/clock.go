package sim

import "time"

// MaxFrameDelta caps a single frame step so a stalled window does not fling bodies
const MaxFrameDelta = 0.1

// Frame is one tick of the frame clock
type Frame struct {
	Delta   float64 // seconds since the previous frame, clamped to MaxFrameDelta
	Elapsed float64 // total seconds since the clock started
	Count   uint64
}

// FrameClock produces monotonically increasing elapsed time and per-frame deltas
type FrameClock struct {
	last    time.Time
	elapsed float64
	count   uint64
}

// NewFrameClock starts a clock at the given instant
func NewFrameClock(start time.Time) *FrameClock {
	return &FrameClock{last: start}
}

// Tick advances the clock to now. Time going backwards yields a zero delta.
func (c *FrameClock) Tick(now time.Time) Frame {
	dt := now.Sub(c.last).Seconds()
	c.last = now
	return c.Advance(dt)
}

// Advance steps the clock by dt seconds without consulting wall time
func (c *FrameClock) Advance(dt float64) Frame {
	if dt < 0 {
		dt = 0
	}
	if dt > MaxFrameDelta {
		dt = MaxFrameDelta
	}
	c.elapsed += dt
	c.count++
	return Frame{Delta: dt, Elapsed: c.elapsed, Count: c.count}
}

// Elapsed returns the total seconds accumulated so far
func (c *FrameClock) Elapsed() float64 {
	return c.elapsed
}
