package runner

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Registry is an ordered list of puzzle factories. Order defines selection
// indices; the last entry is the most recently added puzzle.
type Registry []Factory

// Entry names one registered puzzle.
type Entry struct {
	Index     int // 1-based position in the registry
	Year, Day int
}

// Entries lists the registry in order. Each factory is invoked once to read
// its name.
func (reg Registry) Entries() []Entry {
	out := make([]Entry, 0, len(reg))
	for i, f := range reg {
		y, d := f().Name()
		out = append(out, Entry{Index: i + 1, Year: y, Day: d})
	}
	return out
}

type selectionKind int

const (
	selectLast selectionKind = iota
	selectAll
	selectIndex
	selectName
)

// Selection chooses which registry entries a batch runs.
type Selection struct {
	kind      selectionKind
	index     int // 1-based, for selectIndex
	year, day int // for selectName
}

// Last selects the most recently registered puzzle.
func Last() Selection { return Selection{kind: selectLast} }

// All selects every registered puzzle, in registry order.
func All() Selection { return Selection{kind: selectAll} }

// Index selects the i-th registered puzzle (1-based).
func Index(i int) Selection { return Selection{kind: selectIndex, index: i} }

// Named selects the puzzle registered for year and day.
func Named(year, day int) Selection { return Selection{kind: selectName, year: year, day: day} }

var nameRx = regexp.MustCompile(`^(\d{4})[/-](\d{1,2})$`)

// ParseSelection turns a command-line argument into a Selection:
//
//	""          → Last()
//	"all", "0"  → All()
//	"N"         → Index(N), N ≥ 1
//	"YYYY/DD"   → Named(YYYY, DD) (also "YYYY-DD")
//
// Anything else is ErrBadSelection.
func ParseSelection(arg string) (Selection, error) {
	arg = strings.TrimSpace(arg)
	switch strings.ToLower(arg) {
	case "":
		return Last(), nil
	case "all", "0":
		return All(), nil
	}
	if m := nameRx.FindStringSubmatch(arg); m != nil {
		y, _ := strconv.Atoi(m[1])
		d, _ := strconv.Atoi(m[2])
		if d < 1 || d > 25 {
			return Selection{}, fmt.Errorf("%w: day %d in %q", ErrBadSelection, d, arg)
		}
		return Named(y, d), nil
	}
	n, err := strconv.Atoi(arg)
	if err != nil || n < 0 {
		return Selection{}, fmt.Errorf("%w: %q is not an index, \"all\", or year/day", ErrBadSelection, arg)
	}
	return Index(n), nil
}

// String renders the selection the way ParseSelection accepts it.
func (s Selection) String() string {
	switch s.kind {
	case selectAll:
		return "all"
	case selectIndex:
		return strconv.Itoa(s.index)
	case selectName:
		return fmt.Sprintf("%d/%02d", s.year, s.day)
	default:
		return ""
	}
}

// Resolve returns the 0-based registry positions the selection picks.
func (reg Registry) Resolve(s Selection) ([]int, error) {
	if len(reg) == 0 {
		return nil, ErrEmptyRegistry
	}
	switch s.kind {
	case selectAll:
		idx := make([]int, len(reg))
		for i := range reg {
			idx[i] = i
		}
		return idx, nil
	case selectIndex:
		if s.index < 1 || s.index > len(reg) {
			return nil, fmt.Errorf("%w: %d not in 1..%d", ErrIndexOutOfRange, s.index, len(reg))
		}
		return []int{s.index - 1}, nil
	case selectName:
		for _, e := range reg.Entries() {
			if e.Year == s.year && e.Day == s.day {
				return []int{e.Index - 1}, nil
			}
		}
		return nil, fmt.Errorf("%w: %s", ErrNotRegistered, Label(s.year, s.day))
	default:
		return []int{len(reg) - 1}, nil
	}
}
