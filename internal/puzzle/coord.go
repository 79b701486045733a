package puzzle

import "fmt"

// Coord is a cell on the puzzle grid.
// X increases to the right, Y increases upward (world coordinates, row 0 is the bottom row).
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// C is a convenience constructor for Coord.
func C(x, y int) Coord {
	return Coord{X: x, Y: y}
}

// String returns a string representation of the coordinate.
func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Add returns the sum of two coordinates.
func (c Coord) Add(other Coord) Coord {
	return Coord{X: c.X + other.X, Y: c.Y + other.Y}
}

// Sub returns c - other.
func (c Coord) Sub(other Coord) Coord {
	return Coord{X: c.X - other.X, Y: c.Y - other.Y}
}

// Neg returns the coordinate pointing the opposite way.
func (c Coord) Neg() Coord {
	return Coord{X: -c.X, Y: -c.Y}
}

// IsZero reports whether c is (0,0).
func (c Coord) IsZero() bool {
	return c.X == 0 && c.Y == 0
}

// SqrDist returns the squared euclidean distance to another coordinate.
func (c Coord) SqrDist(other Coord) int {
	d := c.Sub(other)
	return d.X*d.X + d.Y*d.Y
}

// Adjacent reports whether two cells share an edge (squared distance exactly 1).
func (c Coord) Adjacent(other Coord) bool {
	return c.SqrDist(other) == 1
}

// Offsets are the four unit cardinal directions in the fixed cyclic order
// the shuffle scan rotates through.
var Offsets = [4]Coord{
	{X: 1, Y: 0},
	{X: -1, Y: 0},
	{X: 0, Y: 1},
	{X: 0, Y: -1},
}
