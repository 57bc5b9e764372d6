package game

// Snapshot captures the observable session state for determinism
// testing and replay comparison.
type Snapshot struct {
	Tick          uint64
	Score         int
	PieceName     string
	OriginCol     int
	OriginRow     int
	Rotation      int
	LandedCount   int
	Landings      int
	OverlapFaults int
	Done          bool
}

// Snapshot returns the current session snapshot.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		Tick:          g.tick,
		Score:         g.score,
		Landings:      g.landings,
		OverlapFaults: g.overlapFaults,
		Done:          g.done,
	}
	if g.grid != nil {
		s.LandedCount = g.grid.LandedCount()
	}
	if g.piece != nil {
		s.PieceName = g.piece.Shape().Name
		s.OriginCol = g.piece.Origin().Col
		s.OriginRow = g.piece.Origin().Row
		s.Rotation = g.piece.Rotation()
	}
	return s
}
