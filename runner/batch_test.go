package runner_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/runner"
)

func testRegistry(broken error) runner.Registry {
	return runner.Registry{
		func() runner.Runner { return &fakePuzzle{year: 2021, day: 15, part2: "a"} },
		func() runner.Runner { return &fakePuzzle{year: 2022, day: 1, part2: "b", parseErr: broken} },
		func() runner.Runner { return &fakePuzzle{year: 2022, day: 12, part2: "c"} },
	}
}

func constInput(year, day int) (string, error) {
	return fmt.Sprintf("%d %d", year, day), nil
}

func TestParseSelection(t *testing.T) {
	cases := []struct {
		arg  string
		want runner.Selection
	}{
		{"", runner.Last()},
		{"all", runner.All()},
		{"ALL", runner.All()},
		{"0", runner.All()},
		{"3", runner.Index(3)},
		{"2022/12", runner.Named(2022, 12)},
		{"2021-5", runner.Named(2021, 5)},
	}
	for _, tc := range cases {
		t.Run(tc.arg, func(t *testing.T) {
			got, err := runner.ParseSelection(tc.arg)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseSelection_Errors(t *testing.T) {
	for _, arg := range []string{"x", "-1", "2022/day", "2022/26", "2022/0", "1.5"} {
		t.Run(arg, func(t *testing.T) {
			_, err := runner.ParseSelection(arg)
			assert.ErrorIs(t, err, runner.ErrBadSelection)
		})
	}
}

func TestSelection_StringRoundTrip(t *testing.T) {
	for _, s := range []runner.Selection{runner.Last(), runner.All(), runner.Index(2), runner.Named(2022, 6)} {
		got, err := runner.ParseSelection(s.String())
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestRegistry_Resolve(t *testing.T) {
	reg := testRegistry(nil)

	idx, err := reg.Resolve(runner.Last())
	require.NoError(t, err)
	assert.Equal(t, []int{2}, idx)

	idx, err = reg.Resolve(runner.All())
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, idx)

	idx, err = reg.Resolve(runner.Index(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0}, idx)

	idx, err = reg.Resolve(runner.Named(2022, 1))
	require.NoError(t, err)
	assert.Equal(t, []int{1}, idx)

	_, err = reg.Resolve(runner.Index(4))
	assert.ErrorIs(t, err, runner.ErrIndexOutOfRange)

	_, err = reg.Resolve(runner.Named(2020, 1))
	assert.ErrorIs(t, err, runner.ErrNotRegistered)

	_, err = runner.Registry{}.Resolve(runner.Last())
	assert.ErrorIs(t, err, runner.ErrEmptyRegistry)
}

func TestRegistry_Entries(t *testing.T) {
	got := testRegistry(nil).Entries()
	want := []runner.Entry{
		{Index: 1, Year: 2021, Day: 15},
		{Index: 2, Year: 2022, Day: 1},
		{Index: 3, Year: 2022, Day: 12},
	}
	assert.Equal(t, want, got)
}

func TestBatch_TotalIsSumOfPhases(t *testing.T) {
	var buf bytes.Buffer
	b := runner.NewBatch(testRegistry(nil), constInput, runner.WithClock(stepClock(2*time.Millisecond)))

	rep, err := b.Run(&buf, runner.All())
	require.NoError(t, err)
	require.Len(t, rep.Results, 3)

	var sum time.Duration
	for _, r := range rep.Results {
		sum += r.Timing.Parse + r.Timing.Part1 + r.Timing.Part2
	}
	assert.Equal(t, sum, rep.Total())
	assert.Equal(t, 18*time.Millisecond, rep.Total())
	assert.True(t, strings.HasSuffix(buf.String(), "total 0.018s\n"), buf.String())
}

func TestBatch_FailureDoesNotStopSiblings(t *testing.T) {
	var buf bytes.Buffer
	bad := errors.New("malformed")
	b := runner.NewBatch(testRegistry(bad), constInput)

	rep, err := b.Run(&buf, runner.All())
	require.Error(t, err)
	assert.ErrorIs(t, err, bad)
	require.Len(t, rep.Results, 3)
	assert.Equal(t, 1, rep.Failed())
	assert.NoError(t, rep.Results[2].Err)
	assert.Contains(t, buf.String(), "2022 day 12")
}

func TestBatch_InputError(t *testing.T) {
	var buf bytes.Buffer
	missing := errors.New("no such file")
	b := runner.NewBatch(testRegistry(nil), func(int, int) (string, error) { return "", missing })

	rep, err := b.Run(&buf, runner.Last())
	assert.ErrorIs(t, err, missing)
	require.Len(t, rep.Results, 1)
	assert.Equal(t, 2022, rep.Results[0].Year)
	assert.Contains(t, buf.String(), "input   FAILED")
}

func TestBatch_FreshRunnerPerRun(t *testing.T) {
	var made []*fakePuzzle
	reg := runner.Registry{func() runner.Runner {
		p := &fakePuzzle{year: 2022, day: 6}
		made = append(made, p)
		return p
	}}
	b := runner.NewBatch(reg, constInput)

	for i := 0; i < 2; i++ {
		_, err := b.Run(&bytes.Buffer{}, runner.Last())
		require.NoError(t, err)
	}
	require.Len(t, made, 2)
	for _, p := range made {
		assert.Equal(t, 1, p.parsed)
	}
}

func TestBatch_SelectionError(t *testing.T) {
	b := runner.NewBatch(testRegistry(nil), constInput)
	_, err := b.Run(&bytes.Buffer{}, runner.Index(9))
	assert.ErrorIs(t, err, runner.ErrIndexOutOfRange)
}
