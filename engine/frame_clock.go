package engine

import (
	"sync"
	"time"
)

// FrameClock turns time source readings into per-frame deltaTime in seconds
// Pausing freezes the animation: paused ticks report 0 and the pause span is never replayed
type FrameClock struct {
	mu sync.Mutex

	provider TimeProvider
	last     time.Time
	maxDelta float64 // seconds, 0 disables the cap
	paused   bool

	frames  uint64
	elapsed float64 // sum of reported deltas
}

// NewFrameClock starts measuring from the provider's current time
func NewFrameClock(provider TimeProvider, maxDelta float64) *FrameClock {
	return &FrameClock{
		provider: provider,
		last:     provider.Now(),
		maxDelta: maxDelta,
	}
}

// Tick returns seconds since the previous Tick, capped at maxDelta, 0 while paused
func (c *FrameClock) Tick() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.provider.Now()
	dt := now.Sub(c.last).Seconds()
	c.last = now
	c.frames++

	if c.paused || dt < 0 {
		return 0
	}
	if c.maxDelta > 0 && dt > c.maxDelta {
		dt = c.maxDelta
	}
	c.elapsed += dt
	return dt
}

// Pause stops delta accumulation
func (c *FrameClock) Pause() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.paused = true
}

// Resume restarts measurement from now so the paused span is skipped
func (c *FrameClock) Resume() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.paused {
		c.paused = false
		c.last = c.provider.Now()
	}
}

// Toggle flips the pause state and returns the new state
func (c *FrameClock) Toggle() bool {
	if c.IsPaused() {
		c.Resume()
		return false
	}
	c.Pause()
	return true
}

func (c *FrameClock) IsPaused() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paused
}

// Frames is the number of Tick calls
func (c *FrameClock) Frames() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.frames
}

// Elapsed is the sum of all reported deltas in seconds
func (c *FrameClock) Elapsed() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.elapsed
}
