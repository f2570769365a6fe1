package grid

import (
	"fmt"

	"github.com/katalvlaran/advent/input"
)

// Grid is a rectangular 2D grid of cells, immutable once built.
// Cells are addressed as At(Point{X: column, Y: row}).
type Grid[T any] struct {
	Width, Height int
	Conn          Connectivity
	cells         [][]T
}

// New constructs a Grid from a non-empty, rectangular 2D slice indexed
// [row][column]. It deep-copies the input.
// Returns ErrEmptyGrid if values has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New[T any](values [][]T, conn Connectivity) (*Grid[T], error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(values), len(values[0])
	cells := make([][]T, h)
	for y, row := range values {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrNonRectangular, y, len(row), w)
		}
		cells[y] = make([]T, w)
		copy(cells[y], row)
	}

	return &Grid[T]{Width: w, Height: h, Conn: conn, cells: cells}, nil
}

// ParseRunes builds a rune grid from text lines.
func ParseRunes(lines []string) (*Grid[rune], error) {
	rows := make([][]rune, len(lines))
	for i, l := range lines {
		rows[i] = []rune(l)
	}
	return New(rows, Conn4)
}

// ParseDigits builds an int grid from lines of decimal digits.
func ParseDigits(lines []string) (*Grid[int], error) {
	rows := make([][]int, len(lines))
	for i, l := range lines {
		d, err := input.Digits(l)
		if err != nil {
			return nil, fmt.Errorf("grid: line %d: %w", i+1, err)
		}
		rows[i] = d
	}
	return New(rows, Conn4)
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (g *Grid[T]) InBounds(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// At returns the value at p. It panics if p is out of bounds.
func (g *Grid[T]) At(p Point) T {
	return g.cells[p.Y][p.X]
}

// Neighbors returns p's in-bounds neighbors under the grid's connectivity,
// clockwise from north.
func (g *Grid[T]) Neighbors(p Point) []Point {
	offs := g.Conn.Offsets()
	out := make([]Point, 0, len(offs))
	for _, d := range offs {
		if q := p.Add(d); g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Find returns the first point, in row-major order, whose value satisfies match.
func (g *Grid[T]) Find(match func(T) bool) (Point, bool) {
	for y, row := range g.cells {
		for x, v := range row {
			if match(v) {
				return Point{x, y}, true
			}
		}
	}
	return Point{}, false
}

// Map returns a new grid of the same shape holding fn applied to every cell.
func Map[T, U any](g *Grid[T], fn func(Point, T) U) *Grid[U] {
	cells := make([][]U, g.Height)
	for y, row := range g.cells {
		cells[y] = make([]U, g.Width)
		for x, v := range row {
			cells[y][x] = fn(Point{x, y}, v)
		}
	}
	return &Grid[U]{Width: g.Width, Height: g.Height, Conn: g.Conn, cells: cells}
}
