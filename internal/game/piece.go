package game

// Piece is the single active falling piece: a shape reference, the
// pivot's board coordinate, and a quarter-turn rotation count. Its
// absolute occupied cells are always derived, never stored.
type Piece struct {
	shape    *Shape
	origin   Coord
	rotation int // quarter turns, always in {0,1,2,3}
}

// NewPiece creates a piece at the given origin with rotation 0.
func NewPiece(shape *Shape, origin Coord) *Piece {
	return &Piece{shape: shape, origin: origin}
}

// Shape returns the piece's catalog shape.
func (p *Piece) Shape() *Shape {
	return p.shape
}

// Origin returns the pivot's board coordinate.
func (p *Piece) Origin() Coord {
	return p.origin
}

// Rotation returns the quarter-turn rotation count in {0,1,2,3}.
func (p *Piece) Rotation() int {
	return p.rotation
}

// SetRotation sets the rotation to quarterTurns modulo 4. Rotation is
// unconditional: it is never checked against landed cells or board
// bounds, so the resulting occupied set may overlap the stack or the
// walls. That contract is part of the game's observable behavior.
func (p *Piece) SetRotation(quarterTurns int) {
	p.rotation = ((quarterTurns % 4) + 4) % 4
}

// Rotate adjusts the rotation by delta quarter turns (+1 for 90° CW
// in board space, -1 for CCW). Always succeeds.
func (p *Piece) Rotate(delta int) {
	p.SetRotation(p.rotation + delta)
}

// rotateOffset rotates a pivot-relative offset by 90° x quarterTurns.
// Integer rotation is exact: (x, y) -> (-y, x) per quarter turn, so
// the simulation never touches floating point.
func rotateOffset(o Offset, quarterTurns int) Offset {
	q := ((quarterTurns % 4) + 4) % 4
	for i := 0; i < q; i++ {
		o = Offset{X: -o.Y, Y: o.X}
	}
	return o
}

// Occupied returns the four absolute board coordinates the piece
// covers in its current position and rotation.
func (p *Piece) Occupied() [4]Coord {
	return p.occupiedAt(p.origin)
}

// occupiedAt computes the occupied cells for a candidate origin with
// the current rotation. Used to build move candidates for CanPlace
// before anything is committed.
func (p *Piece) occupiedAt(origin Coord) [4]Coord {
	var cells [4]Coord
	for i, off := range p.shape.Offsets {
		r := rotateOffset(off, p.rotation)
		cells[i] = Coord{Col: origin.Col + r.X, Row: origin.Row + r.Y}
	}
	return cells
}
