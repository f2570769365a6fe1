package runner

import (
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"
)

// InputFunc loads the raw input for a puzzle.
type InputFunc func(year, day int) (string, error)

// Result is the outcome of one puzzle in a batch.
type Result struct {
	Year, Day int
	Timing    Timing
	Err       error
}

// Report aggregates a batch run.
type Report struct {
	Results []Result
}

// Total returns the sum of every puzzle's phase durations.
func (r Report) Total() time.Duration {
	var total time.Duration
	for _, res := range r.Results {
		total += res.Timing.Total()
	}
	return total
}

// Failed returns the number of puzzles that ended with an error.
func (r Report) Failed() int {
	n := 0
	for _, res := range r.Results {
		if res.Err != nil {
			n++
		}
	}
	return n
}

// Batch runs selections of a Registry in sequence.
type Batch struct {
	registry Registry
	input    InputFunc
	opts     []Option
	log      *zap.Logger
}

// NewBatch returns a Batch over reg that loads inputs with input.
// The same opts are passed to every Run.
func NewBatch(reg Registry, input InputFunc, opts ...Option) *Batch {
	o := buildOptions(opts)
	return &Batch{
		registry: reg,
		input:    input,
		opts:     opts,
		log:      o.Logger,
	}
}

// Run executes the selected puzzles in registry order, each on a fresh
// Runner, and writes a final "total" line. A failing puzzle is logged and
// reported in its Result; the batch continues with the next one. The
// returned error joins every puzzle error, or is the selection error when
// nothing could be selected.
func (b *Batch) Run(w io.Writer, sel Selection) (Report, error) {
	idx, err := b.registry.Resolve(sel)
	if err != nil {
		return Report{}, err
	}

	var (
		rep  = Report{Results: make([]Result, 0, len(idx))}
		errs []error
	)
	for _, i := range idx {
		res := b.runOne(w, b.registry[i]())
		if res.Err != nil {
			b.log.Error("puzzle failed",
				zap.String("puzzle", Label(res.Year, res.Day)),
				zap.Error(res.Err),
			)
			errs = append(errs, res.Err)
		}
		rep.Results = append(rep.Results, res)
	}

	fmt.Fprintf(w, "total %s\n", Seconds(rep.Total()))
	b.log.Debug("batch done",
		zap.Int("puzzles", len(rep.Results)),
		zap.Int("failed", rep.Failed()),
		zap.Duration("total", rep.Total()),
	)

	return rep, errors.Join(errs...)
}

func (b *Batch) runOne(w io.Writer, r Runner) Result {
	year, day := r.Name()
	res := Result{Year: year, Day: day}
	b.log.Info("running puzzle", zap.String("puzzle", Label(year, day)))

	in, err := b.input(year, day)
	if err != nil {
		fmt.Fprintln(w, Label(year, day))
		fmt.Fprintln(w, "  input   FAILED")
		res.Err = fmt.Errorf("%s: input: %w", Label(year, day), err)
		return res
	}

	res.Timing, res.Err = Run(w, r, in, b.opts...)
	return res
}
