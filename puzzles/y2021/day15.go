package y2021

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/runner"
	"github.com/katalvlaran/advent/search"
)

// Day15 is Chiton: the lowest total risk of a path from the top-left to the
// bottom-right of a risk map, first on the map itself and then on the map
// tiled 5×5 with risk increasing by one per tile step (wrapping 9 → 1).
type Day15 struct {
	risk *grid.Grid[int]
}

func (*Day15) Name() (int, int) { return 2021, 15 }

func (d *Day15) Parse(in string) error {
	g, err := grid.ParseDigits(input.Lines(in))
	if err != nil {
		return err
	}
	d.risk = g
	return nil
}

func (d *Day15) Part1() (string, error) { return d.lowestRisk(1) }

func (d *Day15) Part2() (string, error) { return d.lowestRisk(5) }

func (d *Day15) lowestRisk(tiles int) (string, error) {
	c := &cavern{risk: d.risk, tiles: tiles}
	c.exit = grid.Point{X: c.width() - 1, Y: c.height() - 1}

	_, cost, ok := search.Cheapest(chiton{grid.Point{}, c})
	if !ok {
		return "", fmt.Errorf("%w: exit unreachable", runner.ErrNoAnswer)
	}
	return strconv.Itoa(cost), nil
}

// cavern is the risk map repeated tiles×tiles times.
type cavern struct {
	risk  *grid.Grid[int]
	tiles int
	exit  grid.Point
}

func (c *cavern) width() int  { return c.risk.Width * c.tiles }
func (c *cavern) height() int { return c.risk.Height * c.tiles }

func (c *cavern) at(p grid.Point) int {
	w, h := c.risk.Width, c.risk.Height
	base := c.risk.At(grid.Point{X: p.X % w, Y: p.Y % h})
	return (base-1+p.X/w+p.Y/h)%9 + 1
}

// chiton is a position in a cavern; entering a square costs its risk.
type chiton struct {
	p grid.Point
	c *cavern
}

func (s chiton) WeightedMoves() []search.Edge[chiton] {
	out := make([]search.Edge[chiton], 0, 4)
	for _, n := range s.p.Neighbors(grid.Conn4) {
		if n.X < 0 || n.Y < 0 || n.X >= s.c.width() || n.Y >= s.c.height() {
			continue
		}
		out = append(out, search.Edge[chiton]{Next: chiton{n, s.c}, Cost: s.c.at(n)})
	}
	return out
}

func (s chiton) IsDone() bool { return s.p == s.c.exit }
