// Package puzzles assembles every year's puzzles into one registry.
package puzzles

import (
	"github.com/katalvlaran/advent/puzzles/y2021"
	"github.com/katalvlaran/advent/puzzles/y2022"
	"github.com/katalvlaran/advent/runner"
)

// Registry returns all puzzles, oldest first; the last entry is the newest.
func Registry() runner.Registry {
	var reg runner.Registry
	reg = append(reg, y2021.Registry()...)
	reg = append(reg, y2022.Registry()...)
	return reg
}
