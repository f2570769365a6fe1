// Package y2021 holds the 2021 puzzles.
package y2021

import "github.com/katalvlaran/advent/runner"

// Registry lists the 2021 puzzles in day order.
func Registry() runner.Registry {
	return runner.Registry{
		func() runner.Runner { return &Day15{} },
	}
}
