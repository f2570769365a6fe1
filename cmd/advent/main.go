// Command advent runs registered puzzles and reports their answers and timings.
//
//	advent            # the most recently added puzzle
//	advent 3          # the third registered puzzle
//	advent 2022/12    # a puzzle by year and day
//	advent all        # every puzzle, with a total
//	advent list       # registered puzzles and their indices
package main

import (
	"os"

	"github.com/katalvlaran/advent/puzzles"
)

func main() {
	if err := newRootCmd(puzzles.Registry()).Execute(); err != nil {
		os.Exit(1)
	}
}
