package puzzle

import "fmt"

// Grid maps every cell of an NxN board to exactly one tile.
// Cells are stored row-major: index = y*size + x.
type Grid struct {
	size  int
	cells []*Tile
	empty *Tile
}

// NewGrid creates a solved grid: one tile per cell, each initialised at its cell.
// The empty tile sits at the bottom-right cell (size-1, 0).
// newBody supplies the presentation body for each tile and may be nil.
func NewGrid(size int, newBody func(id int, c Coord) Body) *Grid {
	g := &Grid{
		size:  size,
		cells: make([]*Tile, size*size),
	}

	for y := range size {
		for x := range size {
			c := C(x, y)
			id := y*size + x

			var body Body
			if newBody != nil {
				body = newBody(id, c)
			}

			tile := NewTile(id, body)
			tile.Init(c)
			tile.SetPosition(g.WorldPosition(c))
			g.cells[id] = tile

			if c == g.EmptyHome() {
				g.empty = tile
			}
		}
	}

	return g
}

// Size returns the board dimension N.
func (g *Grid) Size() int { return g.size }

// EmptyHome returns the home cell of the empty tile.
func (g *Grid) EmptyHome() Coord { return C(g.size-1, 0) }

// Empty returns the empty placeholder tile.
func (g *Grid) Empty() *Tile { return g.empty }

// InBounds reports whether c lies within [0, size) on both axes.
func (g *Grid) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < g.size && c.Y >= 0 && c.Y < g.size
}

// At returns the tile at c, or nil if c is out of bounds.
func (g *Grid) At(c Coord) *Tile {
	if !g.InBounds(c) {
		return nil
	}
	return g.cells[c.Y*g.size+c.X]
}

// WorldPosition returns the visual centre of cell c, with the board centred on the origin.
func (g *Grid) WorldPosition(c Coord) Vec2 {
	half := float64(g.size-1) * 0.5
	return Vec2{X: float64(c.X) - half, Y: float64(c.Y) - half}
}

// AllTiles returns every tile on the board in row-major cell order.
func (g *Grid) AllTiles() []*Tile {
	out := make([]*Tile, len(g.cells))
	copy(out, g.cells)
	return out
}

// Swap exchanges two adjacent tiles' cells and coordinates.
// Tiles that are not edge-adjacent are left untouched and Swap returns false.
func (g *Grid) Swap(a, b *Tile) bool {
	if a == nil || b == nil || !a.coord.Adjacent(b.coord) {
		return false
	}

	ca, cb := a.coord, b.coord
	g.cells[ca.Y*g.size+ca.X] = b
	g.cells[cb.Y*g.size+cb.X] = a
	a.coord, b.coord = cb, ca
	return true
}

// Solved reports whether every tile is on its home cell.
func (g *Grid) Solved() bool {
	for _, t := range g.cells {
		if !t.IsAtStartingCoordinate() {
			return false
		}
	}
	return true
}

// Validate checks that the grid is a bijection between cells and tiles
// and that every tile's coordinate matches the cell indexing it.
func (g *Grid) Validate() error {
	seen := make(map[*Tile]Coord, len(g.cells))
	for i, t := range g.cells {
		c := C(i%g.size, i/g.size)
		if t == nil {
			return fmt.Errorf("puzzle: cell %v is unmapped", c)
		}
		if prev, dup := seen[t]; dup {
			return fmt.Errorf("puzzle: tile %d mapped at both %v and %v", t.id, prev, c)
		}
		seen[t] = c
		if t.coord != c {
			return fmt.Errorf("puzzle: tile %d at cell %v believes it is at %v", t.id, c, t.coord)
		}
	}
	return nil
}

// Layout returns the tile ID at every cell, row-major.
func (g *Grid) Layout() []int {
	out := make([]int, len(g.cells))
	for i, t := range g.cells {
		out[i] = t.id
	}
	return out
}
