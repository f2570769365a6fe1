// Package grid defines points, connectivity and sentinel errors for
// rectangular puzzle grids.
package grid

import (
	"errors"

	"golang.org/x/exp/constraints"
)

// Sentinel errors for grid construction.
var (
	// ErrEmptyGrid indicates input with no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
)

// Connectivity selects neighbor connectivity: orthogonal (Conn4) or including diagonals (Conn8).
type Connectivity int

const (
	// Conn4 uses 4-directional connectivity: N, E, S, W.
	Conn4 Connectivity = iota
	// Conn8 uses 8-directional connectivity: N, NE, E, SE, S, SW, W, NW.
	Conn8
)

var (
	offsets4 = []Point{{0, -1}, {1, 0}, {0, 1}, {-1, 0}}
	offsets8 = []Point{{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1}}
)

// Offsets returns the unit steps for conn, clockwise from north.
// The slice is shared; do not modify it.
func (conn Connectivity) Offsets() []Point {
	if conn == Conn8 {
		return offsets8
	}
	return offsets4
}

// Point is a cell coordinate; X grows east, Y grows south.
type Point struct {
	X, Y int
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

// Manhattan returns the taxicab distance between p and q.
func (p Point) Manhattan(q Point) int {
	return Abs(p.X-q.X) + Abs(p.Y-q.Y)
}

// Neighbors returns p's adjacent points under conn, without bounds checks.
func (p Point) Neighbors(conn Connectivity) []Point {
	offs := conn.Offsets()
	out := make([]Point, len(offs))
	for i, d := range offs {
		out[i] = p.Add(d)
	}
	return out
}

// Abs returns |x|.
func Abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}
