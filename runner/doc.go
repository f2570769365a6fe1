// Package runner defines the contract every puzzle implements and the driver
// that times and reports it.
//
// What
//
//   - Runner: Name reports (year, day); Parse stores the puzzle input once;
//     Part1 and Part2 compute the two answers from the parsed state.
//   - Run drives one Runner through parse, part 1 and part 2, timing each
//     phase and writing one line per phase.
//   - Registry is the ordered, explicitly built list of puzzle factories.
//   - Batch runs a Selection (last, one, or all) of a Registry and reports
//     the total elapsed time.
//
// Output
//
//	2022 day 12
//	  parse   0.001s
//	  part 1  0.014s  423
//	  part 2  0.012s  416
//
// Multi-line results print the first line inline and indent the remaining
// lines under the result column.
//
// Errors
//
//   - A Parse error aborts that puzzle; part 1 and part 2 are not run.
//   - ErrNoAnswer is wrapped by puzzles whose answer does not exist under
//     their input assumptions.
//   - ErrBadSelection for selection strings that are not "", "all",
//     an index, or year/day.
//   - ErrNotRegistered and ErrIndexOutOfRange when a selection matches nothing.
package runner
