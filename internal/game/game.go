package game

import (
	"errors"
	"math/rand"
	"time"

	"github.com/voskhod/minofall/internal/core"
	"github.com/voskhod/minofall/internal/registry"
)

// SpawnOrigin is the fixed pivot coordinate for freshly spawned
// pieces: top-center column, one row above the visible board.
var SpawnOrigin = Coord{Col: 5, Row: BoardHeight}

// Package-level tuning applied on the next Reset, set by the CLI
// before the game is created (same pattern the platform uses for all
// pre-creation configuration).
var configuredGravityInterval = DefaultGravityInterval

// SetGravityInterval overrides the gravity interval used by new
// sessions. Non-positive durations restore the default.
func SetGravityInterval(d time.Duration) {
	if d <= 0 {
		d = DefaultGravityInterval
	}
	configuredGravityInterval = d
}

// Game is one falling-block session: the grid, the single active
// piece, and the gravity clock. It implements registry.Game. All
// mutation happens synchronously inside Step on the platform's tick
// goroutine; there is no locking and no partial application. Every
// command either fully commits or is rejected by CanPlace.
type Game struct {
	rng     *rand.Rand
	grid    *Grid
	piece   *Piece
	gravity *GravityClock

	tick    uint64
	tickDt  time.Duration // simulated time per Step call
	score   int
	done    bool
	started bool

	landings      int // pieces merged into the grid this session
	overlapFaults int // landings that reported an OverlapError

	screenW  int
	screenH  int
	tooSmall bool
}

// New creates an unstarted game session. Reset must be called before
// the first Step.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("minofall", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "minofall"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Minofall"
}

// Reset starts a session: clears the grid, re-seeds the RNG, resets
// the gravity clock and score, and spawns the first piece at the
// spawn origin.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))

	tickRate := cfg.TickRate
	if tickRate <= 0 {
		tickRate = core.DefaultConfig().TickRate
	}
	g.tickDt = time.Second / time.Duration(tickRate)

	g.grid = NewGrid()
	g.gravity = NewGravityClock(configuredGravityInterval)
	g.tick = 0
	g.score = 0
	g.done = false
	g.started = true
	g.landings = 0
	g.overlapFaults = 0

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = cfg.ScreenW < minScreenW || cfg.ScreenH < minScreenH

	g.spawn()
}

// EndSession tears the session down: the landed set is cleared and the
// simulation stops stepping. The shell calls this when leaving the
// game stage.
func (g *Game) EndSession() {
	if g.grid != nil {
		g.grid.Clear()
	}
	g.piece = nil
	g.done = true
}

// Step advances the simulation by one tick. Player commands drain
// first, in a fixed order, then the gravity clock gets its descent
// check; each command is applied at most once per tick and resolves
// fully before the next is considered.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if !g.started || g.done || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionMoveLeft) {
		g.moveHorizontal(-1)
	}
	if in.Has(core.ActionMoveRight) {
		g.moveHorizontal(1)
	}
	if in.Has(core.ActionRotateCW) {
		g.piece.Rotate(1)
	}
	if in.Has(core.ActionRotateCCW) {
		g.piece.Rotate(-1)
	}
	if in.Has(core.ActionHardDrop) {
		g.hardDrop()
	}

	if g.gravity.Advance(g.tickDt) {
		g.descend()
	}

	return core.StepResult{State: g.State()}
}

// moveHorizontal shifts the piece's origin by delta columns if the
// shifted placement is legal; otherwise the command is a no-op.
func (g *Game) moveHorizontal(delta int) {
	origin := g.piece.Origin()
	candidate := g.piece.occupiedAt(Coord{Col: origin.Col + delta, Row: origin.Row})
	if !g.grid.CanPlace(candidate[:]) {
		return
	}
	g.piece.origin.Col += delta
}

// descend moves the piece one row down if possible; a rejected
// descent is the landing trigger.
func (g *Game) descend() {
	if g.tryDescend() {
		return
	}
	g.landCurrentPiece()
}

// tryDescend commits a one-row drop when the lower placement is
// legal, reporting whether it moved.
func (g *Game) tryDescend() bool {
	origin := g.piece.Origin()
	candidate := g.piece.occupiedAt(Coord{Col: origin.Col, Row: origin.Row - 1})
	if !g.grid.CanPlace(candidate[:]) {
		return false
	}
	g.piece.origin.Row--
	return true
}

// hardDrop drops the piece to the lowest row where it still fits,
// then lands it immediately. The loop is bounded by the board height;
// if even the first step fails the piece lands where it stands.
func (g *Game) hardDrop() {
	for g.tryDescend() {
	}
	g.landCurrentPiece()
}

// landCurrentPiece merges the piece's occupied cells into the grid
// with its shape's color and spawns the next piece. An OverlapError
// here means an unchecked rotation left the piece inside the stack;
// the duplicate cells stay single-owner and the session continues,
// with the fault counted for the snapshot. No check is made that the
// spawn cell itself is free: a full column produces a new piece
// already overlapping the stack, and play goes on.
func (g *Game) landCurrentPiece() {
	cells := g.piece.Occupied()
	err := g.grid.Land(cells[:], g.piece.Shape().Color)

	var overlap *OverlapError
	if errors.As(err, &overlap) {
		g.overlapFaults++
	}

	g.landings++
	g.spawn()
}

// spawn replaces the falling piece with a fresh random shape at the
// spawn origin, rotation 0.
func (g *Game) spawn() {
	g.piece = NewPiece(randomShape(g.rng), SpawnOrigin)
}

// State returns the current session state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score: g.score,
		Done:  g.done,
	}
}

// FallingCells exposes the active piece's absolute cells and color
// for external renderers. ok is false when no session is running.
func (g *Game) FallingCells() (cells [4]Coord, color core.Color, ok bool) {
	if g.piece == nil {
		return cells, core.ColorDefault, false
	}
	return g.piece.Occupied(), g.piece.Shape().Color, true
}

// LandedCells exposes a copy of the landed cell set for external
// renderers.
func (g *Game) LandedCells() map[Coord]core.Color {
	if g.grid == nil {
		return map[Coord]core.Color{}
	}
	return g.grid.Landed()
}
