// Package runnertest provides helpers for testing runner.Runner implementations.
package runnertest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/runner"
)

// Check parses input into r and asserts both answers. Each part is called
// twice to confirm repeated calls give the same answer. An empty want skips
// that part.
func Check(t *testing.T, r runner.Runner, input, want1, want2 string) {
	t.Helper()
	require.NoError(t, r.Parse(input), "Parse")

	parts := []struct {
		name string
		fn   func() (string, error)
		want string
	}{
		{"Part1", r.Part1, want1},
		{"Part2", r.Part2, want2},
	}
	for _, p := range parts {
		if p.want == "" {
			continue
		}
		got, err := p.fn()
		require.NoError(t, err, p.name)
		assert.Equal(t, p.want, got, p.name)

		again, err := p.fn()
		require.NoError(t, err, p.name+" (second call)")
		assert.Equal(t, got, again, p.name+" must be idempotent")
	}
}

// CheckName asserts r's year and day.
func CheckName(t *testing.T, r runner.Runner, year, day int) {
	t.Helper()
	y, d := r.Name()
	assert.Equal(t, year, y, "year")
	assert.Equal(t, day, d, "day")
}
