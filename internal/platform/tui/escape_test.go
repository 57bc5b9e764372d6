package tui

import (
	"testing"
	"time"
)

func TestEscapeTripleFires(t *testing.T) {
	tr := NewEscapeTracker()

	if tr.Press() {
		t.Fatal("first press should not fire")
	}
	tr.Advance(50 * time.Millisecond)
	if tr.Press() {
		t.Fatal("second press should not fire")
	}
	tr.Advance(50 * time.Millisecond)
	if !tr.Press() {
		t.Fatal("third rapid press should fire")
	}

	if tr.Count() != 0 {
		t.Errorf("Count() = %d after firing, expected 0", tr.Count())
	}
}

func TestEscapeSlowPressStartsNewChain(t *testing.T) {
	tr := NewEscapeTracker()

	tr.Press()
	tr.Advance(50 * time.Millisecond)
	tr.Press()

	// Outside the 150ms chain window: this press is a fresh anchor,
	// not the third link.
	tr.Advance(300 * time.Millisecond)
	if tr.Press() {
		t.Fatal("slow press should not complete the gesture")
	}
	if tr.Count() != 1 {
		t.Errorf("Count() = %d, expected a fresh chain of 1", tr.Count())
	}

	tr.Advance(50 * time.Millisecond)
	tr.Press()
	tr.Advance(50 * time.Millisecond)
	if !tr.Press() {
		t.Error("completing the fresh chain should fire")
	}
}

func TestEscapeChainExpires(t *testing.T) {
	tr := NewEscapeTracker()

	tr.Press()
	tr.Advance(50 * time.Millisecond)
	tr.Press()

	// More than a second of silence kills the chain outright.
	tr.Advance(1100 * time.Millisecond)

	if tr.Count() != 0 {
		t.Fatalf("Count() = %d after expiry, expected 0", tr.Count())
	}
}

func TestEscapeResetChain(t *testing.T) {
	tr := NewEscapeTracker()

	tr.Press()
	tr.Advance(50 * time.Millisecond)
	tr.Press()
	tr.ResetChain()

	tr.Advance(50 * time.Millisecond)
	tr.Press()
	tr.Advance(50 * time.Millisecond)
	if tr.Press() {
		t.Error("two presses after ResetChain should not fire")
	}
	if tr.Count() != 2 {
		t.Errorf("Count() = %d, expected 2", tr.Count())
	}
}
