package runner

import (
	"fmt"
	"io"
	"strings"
	"time"

	"go.uber.org/zap"
)

// resultIndent lines continuation lines up under the result column of a phase line.
var resultIndent = strings.Repeat(" ", len("  part 1  0.000s  "))

// Run drives r through parse, part 1 and part 2, writing a header and one
// line per phase to w. It stops at the first failing phase and returns the
// timings measured so far together with the error.
func Run(w io.Writer, r Runner, input string, opts ...Option) (Timing, error) {
	o := buildOptions(opts)
	year, day := r.Name()
	label := Label(year, day)
	log := o.Logger.With(zap.String("puzzle", label))

	var t Timing
	fmt.Fprintln(w, label)

	// 1) parse
	var err error
	t.Parse = o.timed(func() { err = r.Parse(input) })
	log.Debug("phase done", zap.String("phase", "parse"), zap.Duration("elapsed", t.Parse))
	if err != nil {
		fmt.Fprintf(w, "  parse   %s  FAILED\n", Seconds(t.Parse))
		return t, fmt.Errorf("%s: parse: %w", label, err)
	}
	fmt.Fprintf(w, "  parse   %s\n", Seconds(t.Parse))

	// 2) parts
	parts := []struct {
		name    string
		fn      func() (string, error)
		elapsed *time.Duration
	}{
		{"part 1", r.Part1, &t.Part1},
		{"part 2", r.Part2, &t.Part2},
	}
	for _, p := range parts {
		var res string
		*p.elapsed = o.timed(func() { res, err = p.fn() })
		log.Debug("phase done", zap.String("phase", p.name), zap.Duration("elapsed", *p.elapsed))
		if err != nil {
			fmt.Fprintf(w, "  %s  %s  FAILED\n", p.name, Seconds(*p.elapsed))
			return t, fmt.Errorf("%s: %s: %w", label, p.name, err)
		}
		fmt.Fprintf(w, "  %s  %s  %s\n", p.name, Seconds(*p.elapsed), indentResult(res))
	}

	return t, nil
}

// timed runs fn and returns its elapsed time, never negative.
func (o *Options) timed(fn func()) time.Duration {
	start := o.Now()
	fn()
	d := o.Now().Sub(start)
	if d < 0 {
		return 0
	}
	return d
}

// Seconds formats d as seconds with millisecond precision, e.g. "1.042s".
func Seconds(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%d.%03ds", d/time.Second, (d%time.Second)/time.Millisecond)
}

// indentResult keeps the first line of res inline and indents the rest.
func indentResult(res string) string {
	res = strings.TrimRight(res, "\n")
	return strings.ReplaceAll(res, "\n", "\n"+resultIndent)
}
