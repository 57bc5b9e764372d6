package game

import (
	"errors"
	"testing"

	"github.com/voskhod/minofall/internal/core"
)

func TestCanPlaceBounds(t *testing.T) {
	g := NewGrid()

	tests := []struct {
		name     string
		cell     Coord
		expected bool
	}{
		{"inside", Coord{Col: 4, Row: 7}, true},
		{"bottom-left corner", Coord{Col: 0, Row: 0}, true},
		{"bottom-right corner", Coord{Col: 9, Row: 0}, true},
		{"left of wall", Coord{Col: -1, Row: 5}, false},
		{"right of wall", Coord{Col: 10, Row: 5}, false},
		{"below floor", Coord{Col: 5, Row: -1}, false},
		{"top visible row", Coord{Col: 5, Row: 15}, true},
		{"spawn buffer has no ceiling", Coord{Col: 5, Row: 40}, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := g.CanPlace([]Coord{tc.cell})
			if result != tc.expected {
				t.Errorf("CanPlace(%+v) = %v, expected %v", tc.cell, result, tc.expected)
			}
		})
	}
}

func TestCanPlaceRejectsLanded(t *testing.T) {
	g := NewGrid()

	if err := g.Land([]Coord{{Col: 3, Row: 0}}, core.ColorRed); err != nil {
		t.Fatalf("Land() failed: %v", err)
	}

	if g.CanPlace([]Coord{{Col: 3, Row: 0}}) {
		t.Error("CanPlace should reject a landed coordinate")
	}
	if !g.CanPlace([]Coord{{Col: 3, Row: 1}}) {
		t.Error("CanPlace should accept the free cell above a landed one")
	}

	// One bad cell poisons the whole candidate set
	if g.CanPlace([]Coord{{Col: 2, Row: 0}, {Col: 3, Row: 0}}) {
		t.Error("CanPlace should reject a set containing a landed coordinate")
	}
}

func TestLandAndIsLanded(t *testing.T) {
	g := NewGrid()
	cells := []Coord{{Col: 0, Row: 0}, {Col: 1, Row: 0}, {Col: 0, Row: 1}, {Col: 1, Row: 1}}

	if err := g.Land(cells, core.ColorYellow); err != nil {
		t.Fatalf("Land() failed: %v", err)
	}

	if g.LandedCount() != 4 {
		t.Errorf("LandedCount() = %d, expected 4", g.LandedCount())
	}
	for _, c := range cells {
		if !g.IsLanded(c) {
			t.Errorf("IsLanded(%+v) = false after Land", c)
		}
	}

	landed := g.Landed()
	for _, c := range cells {
		if landed[c] != core.ColorYellow {
			t.Errorf("Landed()[%+v] = %d, expected ColorYellow", c, landed[c])
		}
	}
}

func TestLandOverlapError(t *testing.T) {
	g := NewGrid()

	if err := g.Land([]Coord{{Col: 5, Row: 0}}, core.ColorRed); err != nil {
		t.Fatalf("first Land() failed: %v", err)
	}

	err := g.Land([]Coord{{Col: 5, Row: 0}, {Col: 5, Row: 1}}, core.ColorGreen)
	if err == nil {
		t.Fatal("Land() on an occupied coordinate should return an error")
	}

	var overlap *OverlapError
	if !errors.As(err, &overlap) {
		t.Fatalf("error should be *OverlapError, got %T", err)
	}
	if len(overlap.Cells) != 1 || overlap.Cells[0] != (Coord{Col: 5, Row: 0}) {
		t.Errorf("OverlapError cells = %v, expected [{5 0}]", overlap.Cells)
	}

	// The duplicate keeps its original color; the free cell still landed.
	if g.Landed()[Coord{Col: 5, Row: 0}] != core.ColorRed {
		t.Error("overlapping Land must not overwrite the existing cell")
	}
	if !g.IsLanded(Coord{Col: 5, Row: 1}) {
		t.Error("non-duplicate cells should still land")
	}
	if g.LandedCount() != 2 {
		t.Errorf("LandedCount() = %d, expected 2", g.LandedCount())
	}
}

func TestClear(t *testing.T) {
	g := NewGrid()

	if err := g.Land([]Coord{{Col: 2, Row: 3}, {Col: 7, Row: 11}}, core.ColorCyan); err != nil {
		t.Fatalf("Land() failed: %v", err)
	}
	g.Clear()

	if g.LandedCount() != 0 {
		t.Errorf("LandedCount() after Clear = %d, expected 0", g.LandedCount())
	}
	if g.IsLanded(Coord{Col: 2, Row: 3}) {
		t.Error("cells should be gone after Clear")
	}
	if !g.CanPlace([]Coord{{Col: 2, Row: 3}}) {
		t.Error("CanPlace should accept previously landed cells after Clear")
	}
}
