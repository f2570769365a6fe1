package runner

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
)

// Sentinel errors for runner operations.
var (
	// ErrNoAnswer is wrapped by a part that finds no valid answer for its input.
	ErrNoAnswer = errors.New("runner: no answer")

	// ErrBadSelection indicates a selection string that cannot be parsed.
	ErrBadSelection = errors.New("runner: bad selection")

	// ErrIndexOutOfRange indicates a selection index outside the registry.
	ErrIndexOutOfRange = errors.New("runner: selection index out of range")

	// ErrNotRegistered indicates a year/day selection with no matching puzzle.
	ErrNotRegistered = errors.New("runner: puzzle not registered")

	// ErrEmptyRegistry is returned when selecting from an empty registry.
	ErrEmptyRegistry = errors.New("runner: registry is empty")
)

// Runner is one puzzle. Parse is called exactly once, before Part1 or Part2.
type Runner interface {
	// Name returns the puzzle's year and day.
	Name() (year, day int)

	// Parse stores whatever the parts need from the raw input.
	Parse(input string) error

	// Part1 computes the first answer.
	Part1() (string, error)

	// Part2 computes the second answer.
	Part2() (string, error)
}

// Factory builds a fresh Runner for one run.
type Factory func() Runner

// Timing holds the elapsed time of each phase of one run.
type Timing struct {
	Parse time.Duration
	Part1 time.Duration
	Part2 time.Duration
}

// Total returns the sum of the phase durations.
func (t Timing) Total() time.Duration {
	return t.Parse + t.Part1 + t.Part2
}

// Option configures Run and Batch via functional arguments.
type Option func(*Options)

// Options holds the clock and logger used by Run and Batch.
type Options struct {
	// Now returns the current time; phases are timed as Now() differences.
	Now func() time.Time

	// Logger receives debug phase timings and error reports.
	Logger *zap.Logger
}

// DefaultOptions returns Options using time.Now and a no-op logger.
func DefaultOptions() Options {
	return Options{
		Now:    time.Now,
		Logger: zap.NewNop(),
	}
}

// WithClock replaces the clock used to time phases.
func WithClock(now func() time.Time) Option {
	return func(o *Options) {
		if now != nil {
			o.Now = now
		}
	}
}

// WithLogger sets the logger; a nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// Label formats a puzzle name as "YYYY day DD".
func Label(year, day int) string {
	return fmt.Sprintf("%d day %02d", year, day)
}
