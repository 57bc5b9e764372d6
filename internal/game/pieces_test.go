package game

import (
	"math/rand"
	"testing"
)

func TestCatalogHasSevenShapes(t *testing.T) {
	if len(Shapes) != 7 {
		t.Fatalf("catalog has %d shapes, expected 7", len(Shapes))
	}

	seen := make(map[string]bool)
	for i := range Shapes {
		s := &Shapes[i]
		if s.Name == "" {
			t.Errorf("shape %d has no name", i)
		}
		if seen[s.Name] {
			t.Errorf("duplicate shape name %q", s.Name)
		}
		seen[s.Name] = true
	}

	for _, name := range []string{"I", "J", "L", "O", "S", "Z", "T"} {
		if !seen[name] {
			t.Errorf("catalog is missing shape %q", name)
		}
	}
}

func TestShapeOffsetsDistinct(t *testing.T) {
	for i := range Shapes {
		s := &Shapes[i]
		seen := make(map[Offset]bool)
		for _, off := range s.Offsets {
			if seen[off] {
				t.Errorf("shape %s has duplicate offset %+v", s.Name, off)
			}
			seen[off] = true
		}
	}
}

func TestShapeByName(t *testing.T) {
	o := ShapeByName("O")
	if o == nil {
		t.Fatal("ShapeByName(\"O\") returned nil")
	}
	if o.Name != "O" {
		t.Errorf("ShapeByName(\"O\").Name = %q", o.Name)
	}

	if ShapeByName("X") != nil {
		t.Error("ShapeByName(\"X\") should return nil")
	}
}

func TestRandomShapeDeterministic(t *testing.T) {
	r1 := rand.New(rand.NewSource(42))
	r2 := rand.New(rand.NewSource(42))

	for i := 0; i < 50; i++ {
		s1 := randomShape(r1)
		s2 := randomShape(r2)
		if s1 != s2 {
			t.Fatalf("draw %d differs for identical seeds: %s vs %s", i, s1.Name, s2.Name)
		}
	}
}

func TestRandomShapeCoversCatalog(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	seen := make(map[string]bool)

	for i := 0; i < 1000; i++ {
		seen[randomShape(rng).Name] = true
	}

	if len(seen) != 7 {
		t.Errorf("1000 draws hit %d shapes, expected all 7", len(seen))
	}
}
