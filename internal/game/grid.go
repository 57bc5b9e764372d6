// Package game implements the minofall falling-block simulation.
// It contains pure game logic with no external dependencies
// (especially no Bubble Tea); the platform handles input mapping,
// timing, and terminal rendering.
package game

import (
	"fmt"
	"sort"

	"github.com/voskhod/minofall/internal/core"
)

// Board dimensions in cells. Col 0 is the left edge, Row 0 the bottom
// row. Rows at or above BoardHeight form the spawn buffer: pieces may
// occupy them while entering the board, but they are never drawn.
const (
	BoardWidth  = 10
	BoardHeight = 16
)

// Coord is an integer board coordinate.
type Coord struct {
	Col, Row int
}

// OverlapError reports an attempt to land cells on coordinates that
// are already occupied. Landing only ever receives validated cells,
// except after an unchecked rotation left the piece overlapping the
// stack, so this surfacing as a real error is an invariant fault.
type OverlapError struct {
	Cells []Coord
}

func (e *OverlapError) Error() string {
	return fmt.Sprintf("grid: %d cell(s) already landed: %v", len(e.Cells), e.Cells)
}

// Grid owns the landed cell set: every coordinate permanently occupied
// by a stopped piece, with the color it should be drawn in. Cells are
// only added by landing and only removed by Clear at session teardown.
type Grid struct {
	landed map[Coord]core.Color
}

// NewGrid creates an empty grid.
func NewGrid() *Grid {
	return &Grid{
		landed: make(map[Coord]core.Color),
	}
}

// IsLanded reports whether the coordinate is occupied by a landed cell.
func (g *Grid) IsLanded(c Coord) bool {
	_, ok := g.landed[c]
	return ok
}

// Land inserts the given coordinates into the landed set with the
// given display color. If any coordinate is already landed it is left
// untouched (a coordinate appears at most once) and an OverlapError
// naming the duplicates is returned after the remaining cells have
// been inserted.
func (g *Grid) Land(cells []Coord, color core.Color) error {
	var dup []Coord
	for _, c := range cells {
		if _, ok := g.landed[c]; ok {
			dup = append(dup, c)
			continue
		}
		g.landed[c] = color
	}

	if len(dup) > 0 {
		sort.Slice(dup, func(i, j int) bool {
			if dup[i].Row != dup[j].Row {
				return dup[i].Row < dup[j].Row
			}
			return dup[i].Col < dup[j].Col
		})
		return &OverlapError{Cells: dup}
	}
	return nil
}

// Clear empties the landed set. Called on session teardown and
// restart, never during normal play.
func (g *Grid) Clear() {
	g.landed = make(map[Coord]core.Color)
}

// LandedCount returns the number of landed cells.
func (g *Grid) LandedCount() int {
	return len(g.landed)
}

// Landed returns a copy of the landed cell set for external renderers.
func (g *Grid) Landed() map[Coord]core.Color {
	out := make(map[Coord]core.Color, len(g.landed))
	for c, col := range g.landed {
		out[c] = col
	}
	return out
}

// CanPlace reports whether a candidate piece placement is legal:
// every cell must be inside the side walls, at or above the floor,
// and free of landed cells. There is no upper bound check; pieces may
// sit arbitrarily high in the spawn buffer. This predicate is the
// single gate for lateral movement, gravity descent, and hard-drop
// stepping. Rotation is deliberately not checked against it.
func (g *Grid) CanPlace(cells []Coord) bool {
	for _, c := range cells {
		if c.Col < 0 || c.Col >= BoardWidth || c.Row < 0 {
			return false
		}
		if _, ok := g.landed[c]; ok {
			return false
		}
	}
	return true
}
