package tui

import "time"

const (
	// A press chains onto the previous one only when it arrives within
	// this window.
	escapeChainWindow = 150 * time.Millisecond

	// A chain dies after this much time passes without a press.
	escapeExpiry = time.Second

	escapePressesToFire = 3
)

// EscapeTracker implements the triple-press exit gesture: three escape
// presses in rapid succession end the program. Time advances via
// Advance on the tick loop; presses arrive via Press.
type EscapeTracker struct {
	count          int
	sinceLastPress time.Duration
	active         bool
}

// NewEscapeTracker returns a tracker with no chain in progress.
func NewEscapeTracker() *EscapeTracker {
	return &EscapeTracker{}
}

// Advance moves the tracker's clock forward and expires a stale chain.
func (t *EscapeTracker) Advance(dt time.Duration) {
	if !t.active {
		return
	}
	t.sinceLastPress += dt
	if t.sinceLastPress >= escapeExpiry {
		t.ResetChain()
	}
}

// Press records one escape press and reports whether the exit gesture
// completed. A press outside the chain window starts a new chain; a
// completed gesture resets the tracker.
func (t *EscapeTracker) Press() bool {
	if t.active && t.sinceLastPress < escapeChainWindow {
		t.count++
	} else {
		t.count = 1
	}
	t.sinceLastPress = 0
	t.active = true

	if t.count >= escapePressesToFire {
		t.ResetChain()
		return true
	}
	return false
}

// ResetChain clears any chain in progress.
func (t *EscapeTracker) ResetChain() {
	t.count = 0
	t.sinceLastPress = 0
	t.active = false
}

// Count returns how many presses the current chain has.
func (t *EscapeTracker) Count() int {
	return t.count
}
