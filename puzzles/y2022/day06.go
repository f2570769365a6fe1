package y2022

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/advent/runner"
)

// Day06 is Tuning Trouble: find where the first window of n distinct
// characters ends in the datastream (n = 4 for packets, 14 for messages).
type Day06 struct {
	stream string
}

func (*Day06) Name() (int, int) { return 2022, 6 }

func (d *Day06) Parse(in string) error {
	d.stream = strings.TrimSpace(in)
	if d.stream == "" {
		return fmt.Errorf("%w: empty datastream", ErrMalformed)
	}
	return nil
}

func (d *Day06) Part1() (string, error) { return d.marker(4) }

func (d *Day06) Part2() (string, error) { return d.marker(14) }

// marker returns the number of characters read when the last n were all
// distinct for the first time.
func (d *Day06) marker(n int) (string, error) {
	var counts [256]int
	dup := 0 // distinct byte values occurring more than once in the window
	s := d.stream
	for i := 0; i < len(s); i++ {
		counts[s[i]]++
		if counts[s[i]] == 2 {
			dup++
		}
		if i >= n {
			out := s[i-n]
			counts[out]--
			if counts[out] == 1 {
				dup--
			}
		}
		if i >= n-1 && dup == 0 {
			return strconv.Itoa(i + 1), nil
		}
	}
	return "", fmt.Errorf("%w: no %d-character marker", runner.ErrNoAnswer, n)
}
