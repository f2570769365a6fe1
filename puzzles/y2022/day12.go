package y2022

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/advent/grid"
	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/runner"
	"github.com/katalvlaran/advent/search"
)

// Day12 is Hill Climbing Algorithm: fewest steps over a height map where
// each step may climb at most one level.
type Day12 struct {
	heights    *grid.Grid[int]
	start, end grid.Point
}

func (*Day12) Name() (int, int) { return 2022, 12 }

func (d *Day12) Parse(in string) error {
	runes, err := grid.ParseRunes(input.Lines(in))
	if err != nil {
		return err
	}
	var okS, okE bool
	if d.start, okS = runes.Find(func(r rune) bool { return r == 'S' }); !okS {
		return fmt.Errorf("%w: no start marker S", ErrMalformed)
	}
	if d.end, okE = runes.Find(func(r rune) bool { return r == 'E' }); !okE {
		return fmt.Errorf("%w: no end marker E", ErrMalformed)
	}

	var bad error
	d.heights = grid.Map(runes, func(p grid.Point, r rune) int {
		switch {
		case r == 'S':
			return 0
		case r == 'E':
			return 'z' - 'a'
		case r >= 'a' && r <= 'z':
			return int(r - 'a')
		}
		if bad == nil {
			bad = fmt.Errorf("%w: bad height %q at %v", ErrMalformed, r, p)
		}
		return 0
	})
	return bad
}

// climber walks up from S: a step may rise at most one level.
type climber struct {
	p grid.Point
	d *Day12
}

func (c climber) Moves() []climber {
	h := c.d.heights
	var out []climber
	for _, n := range h.Neighbors(c.p) {
		if h.At(n) <= h.At(c.p)+1 {
			out = append(out, climber{n, c.d})
		}
	}
	return out
}

func (c climber) IsDone() bool { return c.p == c.d.end }

// descender walks the same edges backwards from E, so a step may drop at
// most one level; it stops at the first lowest square.
type descender struct {
	p grid.Point
	d *Day12
}

func (c descender) Moves() []descender {
	h := c.d.heights
	var out []descender
	for _, n := range h.Neighbors(c.p) {
		if h.At(n) >= h.At(c.p)-1 {
			out = append(out, descender{n, c.d})
		}
	}
	return out
}

func (c descender) IsDone() bool { return c.d.heights.At(c.p) == 0 }

func (d *Day12) Part1() (string, error) {
	path, ok := search.BFS(climber{d.start, d})
	if !ok {
		return "", fmt.Errorf("%w: E unreachable from S", runner.ErrNoAnswer)
	}
	return strconv.Itoa(search.PathLen(path)), nil
}

func (d *Day12) Part2() (string, error) {
	path, ok := search.BFS(descender{d.end, d})
	if !ok {
		return "", fmt.Errorf("%w: no square of height a reaches E", runner.ErrNoAnswer)
	}
	return strconv.Itoa(search.PathLen(path)), nil
}
