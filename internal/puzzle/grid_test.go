package puzzle

import (
	"slices"
	"testing"
)

func TestNewGridSolved(t *testing.T) {
	g := NewGrid(3, nil)

	if err := g.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if !g.Solved() {
		t.Error("new grid should be solved")
	}
	if g.Empty().Coord() != C(2, 0) {
		t.Errorf("empty tile at %v, want (2,0)", g.Empty().Coord())
	}
	if len(g.AllTiles()) != 9 {
		t.Errorf("AllTiles() len = %d, want 9", len(g.AllTiles()))
	}
}

func TestGridWorldPositionCentred(t *testing.T) {
	g := NewGrid(3, nil)

	if got := g.WorldPosition(C(0, 0)); got != (Vec2{X: -1, Y: -1}) {
		t.Errorf("WorldPosition(0,0) = %v, want (-1,-1)", got)
	}
	if got := g.WorldPosition(C(1, 1)); got != (Vec2{}) {
		t.Errorf("WorldPosition(1,1) = %v, want origin", got)
	}
	if got := g.At(C(2, 2)).Position(); got != (Vec2{X: 1, Y: 1}) {
		t.Errorf("tile (2,2) placed at %v, want (1,1)", got)
	}
}

func TestGridSwapAdjacency(t *testing.T) {
	tests := []struct {
		name    string
		a, b    Coord
		swapped bool
	}{
		{"horizontal neighbour", C(0, 0), C(1, 0), true},
		{"vertical neighbour", C(1, 1), C(1, 2), true},
		{"diagonal", C(0, 0), C(1, 1), false},
		{"two apart", C(0, 0), C(2, 0), false},
		{"same tile", C(1, 1), C(1, 1), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGrid(3, nil)
			a, b := g.At(tc.a), g.At(tc.b)
			before := g.Layout()

			got := g.Swap(a, b)
			if got != tc.swapped {
				t.Fatalf("Swap() = %v, want %v", got, tc.swapped)
			}
			if err := g.Validate(); err != nil {
				t.Fatalf("Validate() after swap = %v", err)
			}
			if !tc.swapped {
				if !slices.Equal(before, g.Layout()) {
					t.Error("rejected swap changed the grid")
				}
				return
			}
			if a.Coord() != tc.b || b.Coord() != tc.a {
				t.Errorf("coords not exchanged: a=%v b=%v", a.Coord(), b.Coord())
			}
			if g.At(tc.a) != b || g.At(tc.b) != a {
				t.Error("mapping not exchanged")
			}
		})
	}
}

func TestGridSwapRoundTrip(t *testing.T) {
	g := NewGrid(4, nil)
	before := g.Layout()

	a, b := g.At(C(2, 2)), g.At(C(2, 3))
	if !g.Swap(a, b) {
		t.Fatal("first swap rejected")
	}
	if g.Solved() {
		t.Error("grid should not be solved after a swap")
	}
	if !g.Swap(a, b) {
		t.Fatal("inverse swap rejected")
	}

	if !slices.Equal(before, g.Layout()) {
		t.Errorf("layout after round trip = %v, want %v", g.Layout(), before)
	}
	if !g.Solved() {
		t.Error("grid should be solved after round trip")
	}
}

func TestGridAtOutOfBounds(t *testing.T) {
	g := NewGrid(2, nil)

	for _, c := range []Coord{C(-1, 0), C(0, -1), C(2, 0), C(0, 2)} {
		if g.At(c) != nil {
			t.Errorf("At(%v) should be nil", c)
		}
		if g.InBounds(c) {
			t.Errorf("InBounds(%v) should be false", c)
		}
	}
}

func TestGridValidateDetectsCorruption(t *testing.T) {
	g := NewGrid(2, nil)
	g.cells[1] = g.cells[0]

	if err := g.Validate(); err == nil {
		t.Error("Validate() should report a duplicated tile")
	}
}
