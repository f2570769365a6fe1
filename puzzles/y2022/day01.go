package y2022

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/katalvlaran/advent/input"
	"github.com/katalvlaran/advent/runner"
)

// Day01 is Calorie Counting: each blank-line separated block is one elf's
// food; answers are the largest total and the sum of the three largest.
type Day01 struct {
	totals []int // descending
}

func (*Day01) Name() (int, int) { return 2022, 1 }

func (d *Day01) Parse(in string) error {
	d.totals = nil
	for i, block := range input.Blocks(in) {
		sum := 0
		for _, line := range block {
			n, err := input.Atoi[int](line)
			if err != nil {
				return fmt.Errorf("elf %d: %w", i+1, err)
			}
			sum += n
		}
		d.totals = append(d.totals, sum)
	}
	slices.Sort(d.totals)
	slices.Reverse(d.totals)
	return nil
}

func (d *Day01) Part1() (string, error) {
	return d.top(1)
}

func (d *Day01) Part2() (string, error) {
	return d.top(3)
}

func (d *Day01) top(n int) (string, error) {
	if len(d.totals) < n {
		return "", fmt.Errorf("%w: %d elves, need %d", runner.ErrNoAnswer, len(d.totals), n)
	}
	sum := 0
	for _, t := range d.totals[:n] {
		sum += t
	}
	return strconv.Itoa(sum), nil
}
