package game

import "time"

// DefaultGravityInterval is how long a piece rests before gravity
// pulls it one row down.
const DefaultGravityInterval = 1500 * time.Millisecond

// GravityClock accumulates simulated time and fires once each time the
// accumulator reaches the interval. Firing resets the accumulator to
// zero: time accumulated past the threshold is discarded, so a long
// frame never produces catch-up multi-row drops.
type GravityClock struct {
	interval time.Duration
	elapsed  time.Duration
}

// NewGravityClock creates a clock with the given fire interval.
// Non-positive intervals fall back to the default.
func NewGravityClock(interval time.Duration) *GravityClock {
	if interval <= 0 {
		interval = DefaultGravityInterval
	}
	return &GravityClock{interval: interval}
}

// Advance adds elapsed time and reports whether the clock fired.
// Fires at most once per call.
func (c *GravityClock) Advance(dt time.Duration) bool {
	c.elapsed += dt
	if c.elapsed < c.interval {
		return false
	}
	c.elapsed = 0
	return true
}

// Reset clears the accumulator without firing.
func (c *GravityClock) Reset() {
	c.elapsed = 0
}

// Interval returns the configured fire interval.
func (c *GravityClock) Interval() time.Duration {
	return c.interval
}
