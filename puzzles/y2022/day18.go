package y2022

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/search"
)

// Day18 is Boiling Boulders: surface area of a droplet made of unit cubes,
// first counting every exposed face, then only faces reachable from outside.
type Day18 struct {
	lava     map[cube]bool
	min, max cube // bounding box grown by one on every side
}

type cube struct{ x, y, z int }

var faces = []cube{{1, 0, 0}, {-1, 0, 0}, {0, 1, 0}, {0, -1, 0}, {0, 0, 1}, {0, 0, -1}}

func (c cube) add(o cube) cube { return cube{c.x + o.x, c.y + o.y, c.z + o.z} }

func (*Day18) Name() (int, int) { return 2022, 18 }

func (d *Day18) Parse(in string) error {
	d.lava = make(map[cube]bool)
	for i, line := range input.Lines(in) {
		v, err := input.Ints[int](line)
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		if len(v) != 3 {
			return fmt.Errorf("%w: line %d: want x,y,z, got %q", ErrMalformed, i+1, line)
		}
		c := cube{v[0], v[1], v[2]}
		if len(d.lava) == 0 {
			d.min, d.max = c, c
		}
		d.min = cube{min(d.min.x, c.x), min(d.min.y, c.y), min(d.min.z, c.z)}
		d.max = cube{max(d.max.x, c.x), max(d.max.y, c.y), max(d.max.z, c.z)}
		d.lava[c] = true
	}
	d.min = d.min.add(cube{-1, -1, -1})
	d.max = d.max.add(cube{1, 1, 1})
	return nil
}

func (d *Day18) Part1() (string, error) {
	return strconv.Itoa(d.surface(func(c cube) bool { return !d.lava[c] })), nil
}

func (d *Day18) Part2() (string, error) {
	if len(d.lava) == 0 {
		return "0", nil
	}
	outside := search.Reachable(steam{d.min, d})
	return strconv.Itoa(d.surface(func(c cube) bool {
		_, ok := outside[steam{c, d}]
		return ok
	})), nil
}

// surface counts lava faces whose neighbor satisfies open.
func (d *Day18) surface(open func(cube) bool) int {
	n := 0
	for c := range d.lava {
		for _, f := range faces {
			if open(c.add(f)) {
				n++
			}
		}
	}
	return n
}

// steam floods the air inside the bounding box from one of its corners.
type steam struct {
	c cube
	d *Day18
}

func (s steam) Moves() []steam {
	var out []steam
	for _, f := range faces {
		n := s.c.add(f)
		if s.d.inBox(n) && !s.d.lava[n] {
			out = append(out, steam{n, s.d})
		}
	}
	return out
}

func (d *Day18) inBox(c cube) bool {
	return c.x >= d.min.x && c.x <= d.max.x &&
		c.y >= d.min.y && c.y <= d.max.y &&
		c.z >= d.min.z && c.z <= d.max.z
}
