package y2022

import (
	"fmt"
	"strings"

	"github.com/katalvlaran/advent/input"
)

// Day25 is Full of Hot Air: sum numbers written in SNAFU, balanced base 5
// with digits = (-2), - (-1), 0, 1 and 2. There is no second part.
type Day25 struct {
	nums []int
}

func (*Day25) Name() (int, int) { return 2022, 25 }

func (d *Day25) Parse(in string) error {
	d.nums = nil
	for i, line := range input.Lines(in) {
		n, err := FromSNAFU(strings.TrimSpace(line))
		if err != nil {
			return fmt.Errorf("line %d: %w", i+1, err)
		}
		d.nums = append(d.nums, n)
	}
	return nil
}

func (d *Day25) Part1() (string, error) {
	sum := 0
	for _, n := range d.nums {
		sum += n
	}
	return ToSNAFU(sum), nil
}

func (d *Day25) Part2() (string, error) {
	return "n/a", nil
}

// FromSNAFU decodes a SNAFU number.
func FromSNAFU(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty SNAFU number", ErrMalformed)
	}
	n := 0
	for _, r := range s {
		var v int
		switch r {
		case '=':
			v = -2
		case '-':
			v = -1
		case '0', '1', '2':
			v = int(r - '0')
		default:
			return 0, fmt.Errorf("%w: bad SNAFU digit %q in %q", ErrMalformed, r, s)
		}
		n = n*5 + v
	}
	return n, nil
}

// ToSNAFU encodes n, which may be negative, as SNAFU.
func ToSNAFU(n int) string {
	if n == 0 {
		return "0"
	}
	var out []byte
	for n != 0 {
		// shift the remainder from 0..4 to -2..2
		r := ((n+2)%5+5)%5 - 2
		out = append(out, "=-012"[r+2])
		n = (n - r) / 5
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}
