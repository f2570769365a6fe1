// Package input reads puzzle inputs and splits them into the shapes puzzles
// parse most often: lines, blank-line separated blocks, integers and digits.
package input

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/constraints"
)

// ErrNotDigit is returned by Digits for a rune outside '0'..'9'.
var ErrNotDigit = errors.New("input: not a decimal digit")

// Path returns the input file location for a puzzle: <dir>/<year>/day<DD>.txt.
func Path(dir string, year, day int) string {
	return filepath.Join(dir, strconv.Itoa(year), fmt.Sprintf("day%02d.txt", day))
}

// Load reads the whole input file for a puzzle into memory.
func Load(dir string, year, day int) (string, error) {
	b, err := os.ReadFile(Path(dir, year, day))
	if err != nil {
		return "", fmt.Errorf("input: %w", err)
	}
	return string(b), nil
}

// Lines splits s into lines, dropping one trailing newline and any '\r'.
// Empty input yields no lines.
func Lines(s string) []string {
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.TrimSuffix(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

// Blocks splits s into groups of lines separated by one or more blank lines.
func Blocks(s string) [][]string {
	var (
		out [][]string
		cur []string
	)
	for _, line := range Lines(s) {
		if strings.TrimSpace(line) == "" {
			if len(cur) > 0 {
				out = append(out, cur)
				cur = nil
			}
			continue
		}
		cur = append(cur, line)
	}
	if len(cur) > 0 {
		out = append(out, cur)
	}
	return out
}

var intRx = regexp.MustCompile(`-?\d+`)

// Ints returns every (optionally negative) integer appearing in s, in order.
func Ints[T constraints.Signed](s string) ([]T, error) {
	matches := intRx.FindAllString(s, -1)
	out := make([]T, 0, len(matches))
	for _, m := range matches {
		n, err := Atoi[T](m)
		if err != nil {
			return nil, err
		}
		out = append(out, n)
	}
	return out, nil
}

// Atoi parses s as a base-10 integer that must fit in T. A value outside
// T's range fails with an error wrapping strconv.ErrRange.
func Atoi[T constraints.Integer](s string) (T, error) {
	var zero T
	s = strings.TrimSpace(s)
	if isSigned(zero) {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return zero, fmt.Errorf("input: %w", err)
		}
		if int64(T(n)) != n {
			return zero, fmt.Errorf("input: %q: %w", s, strconv.ErrRange)
		}
		return T(n), nil
	}
	n, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return zero, fmt.Errorf("input: %w", err)
	}
	if uint64(T(n)) != n {
		return zero, fmt.Errorf("input: %q: %w", s, strconv.ErrRange)
	}
	return T(n), nil
}

// Digits converts each rune of line to its decimal value.
func Digits(line string) ([]int, error) {
	out := make([]int, 0, len(line))
	for i, r := range line {
		if r < '0' || r > '9' {
			return nil, fmt.Errorf("%w: %q at column %d", ErrNotDigit, r, i)
		}
		out = append(out, int(r-'0'))
	}
	return out, nil
}

func isSigned[T constraints.Integer](T) bool {
	var minusOne T
	minusOne--
	return minusOne < 0
}
