// Package y2022 holds the 2022 puzzles.
package y2022

import (
	"errors"

	"github.com/katalvlaran/advent/runner"
)

// ErrMalformed marks puzzle text a 2022 puzzle cannot interpret. Errors from
// the input and grid helpers are passed through with their own sentinels.
var ErrMalformed = errors.New("y2022: malformed input")

// Registry lists the 2022 puzzles in day order.
func Registry() runner.Registry {
	return runner.Registry{
		func() runner.Runner { return &Day01{} },
		func() runner.Runner { return &Day06{} },
		func() runner.Runner { return &Day12{} },
		func() runner.Runner { return &Day18{} },
		func() runner.Runner { return &Day25{} },
	}
}
