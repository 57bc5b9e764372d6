package game

import (
	"math/rand"

	"github.com/voskhod/minofall/internal/core"
)

// Offset is a cell position relative to a piece's pivot.
type Offset struct {
	X, Y int
}

// Shape is one of the seven tetrominoes: four pivot-relative offsets
// plus the color its cells are drawn in. Shapes are static data,
// defined once and never mutated.
type Shape struct {
	Name    string
	Offsets [4]Offset
	Color   core.Color
}

// Shapes is the full catalog. Offsets are chosen so the pivot sits on
// the bottom row of each shape; rotation pivots around it.
var Shapes = [7]Shape{
	{Name: "I", Offsets: [4]Offset{{-1, 0}, {0, 0}, {1, 0}, {2, 0}}, Color: core.ColorCyan},
	{Name: "J", Offsets: [4]Offset{{-1, 1}, {-1, 0}, {0, 0}, {1, 0}}, Color: core.ColorBlue},
	{Name: "L", Offsets: [4]Offset{{1, 1}, {-1, 0}, {0, 0}, {1, 0}}, Color: core.ColorOrange},
	{Name: "O", Offsets: [4]Offset{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, Color: core.ColorYellow},
	{Name: "S", Offsets: [4]Offset{{0, 1}, {1, 1}, {-1, 0}, {0, 0}}, Color: core.ColorGreen},
	{Name: "Z", Offsets: [4]Offset{{-1, 1}, {0, 1}, {0, 0}, {1, 0}}, Color: core.ColorRed},
	{Name: "T", Offsets: [4]Offset{{0, 1}, {-1, 0}, {0, 0}, {1, 0}}, Color: core.ColorMagenta},
}

// ShapeByName returns the catalog entry with the given name, or nil.
func ShapeByName(name string) *Shape {
	for i := range Shapes {
		if Shapes[i].Name == name {
			return &Shapes[i]
		}
	}
	return nil
}

// randomShape selects a shape by drawing one byte from the source and
// reducing it modulo 7. 256 is not divisible by 7, so the first five
// shapes are selected with probability 37/256 and the last two with
// 36/256; this sampling scheme is kept on purpose.
func randomShape(rng *rand.Rand) *Shape {
	b := byte(rng.Intn(256))
	return &Shapes[int(b)%7]
}
