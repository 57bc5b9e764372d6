package game

import (
	"testing"
	"time"
)

func TestGravityClockFiresAtThreshold(t *testing.T) {
	c := NewGravityClock(1500 * time.Millisecond)

	if c.Advance(1400 * time.Millisecond) {
		t.Error("clock fired before reaching the threshold")
	}
	if !c.Advance(100 * time.Millisecond) {
		t.Error("clock should fire when the accumulator reaches the threshold")
	}
}

func TestGravityClockDiscardsDrift(t *testing.T) {
	c := NewGravityClock(1500 * time.Millisecond)

	// Fire with 400ms of overshoot; the overshoot must not carry over.
	if !c.Advance(1900 * time.Millisecond) {
		t.Fatal("clock should fire past the threshold")
	}
	if c.Advance(1400 * time.Millisecond) {
		t.Error("overshoot carried into the next cycle")
	}
	if !c.Advance(100 * time.Millisecond) {
		t.Error("clock should fire after a full fresh interval")
	}
}

func TestGravityClockSingleFirePerAdvance(t *testing.T) {
	c := NewGravityClock(100 * time.Millisecond)

	// A frame spanning many intervals still fires exactly once.
	if !c.Advance(10 * time.Second) {
		t.Fatal("clock should fire")
	}
	if c.Advance(50 * time.Millisecond) {
		t.Error("clock fired again without a full interval elapsing")
	}
}

func TestGravityClockReset(t *testing.T) {
	c := NewGravityClock(200 * time.Millisecond)

	c.Advance(150 * time.Millisecond)
	c.Reset()

	if c.Advance(150 * time.Millisecond) {
		t.Error("Reset should clear the accumulator")
	}
	if !c.Advance(50 * time.Millisecond) {
		t.Error("clock should fire once a fresh interval has accumulated")
	}
}

func TestGravityClockDefaultInterval(t *testing.T) {
	c := NewGravityClock(0)
	if c.Interval() != DefaultGravityInterval {
		t.Errorf("Interval() = %v, expected default %v", c.Interval(), DefaultGravityInterval)
	}
}
