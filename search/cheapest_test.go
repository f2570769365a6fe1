package search_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/advent/search"
)

// city is a vertex of a small road map with weighted one-way roads.
//
//	A ─1─ B ─1─ C ─1─ D
//	 \                /
//	  ──────5────────
type city string

var roads = map[city][]search.Edge[city]{
	"A": {{Next: "B", Cost: 1}, {Next: "D", Cost: 5}},
	"B": {{Next: "C", Cost: 1}},
	"C": {{Next: "D", Cost: 1}, {Next: "A", Cost: 1}},
}

func (c city) WeightedMoves() []search.Edge[city] { return roads[c] }
func (c city) IsDone() bool                       { return c == "D" }

// toll is a chain 0→1→2→3 where every step is free.
type toll int

func (t toll) WeightedMoves() []search.Edge[toll] {
	if t >= 3 {
		return nil
	}
	return []search.Edge[toll]{{Next: t + 1, Cost: 0}}
}
func (t toll) IsDone() bool { return t == 3 }

// broken has a road with a negative cost.
type broken int

func (b broken) WeightedMoves() []search.Edge[broken] {
	return []search.Edge[broken]{{Next: b + 1, Cost: -1}}
}
func (b broken) IsDone() bool { return false }

func TestCheapest_PrefersCheaperLongerRoute(t *testing.T) {
	path, cost, ok := search.Cheapest(city("A"))
	require.True(t, ok)
	assert.Equal(t, []city{"A", "B", "C", "D"}, path)
	assert.Equal(t, 3, cost)
}

func TestCheapest_NoPath(t *testing.T) {
	// past the end of the chain there are no moves at all
	path, cost, ok := search.Cheapest(toll(5))
	assert.False(t, ok)
	assert.Nil(t, path)
	assert.Zero(t, cost)
}

func TestCheapest_StartIsGoal(t *testing.T) {
	path, cost, ok := search.Cheapest(city("D"))
	require.True(t, ok)
	assert.Equal(t, []city{"D"}, path)
	assert.Zero(t, cost)
}

func TestCheapest_ZeroCostMoves(t *testing.T) {
	path, cost, ok := search.Cheapest(toll(0))
	require.True(t, ok)
	assert.Equal(t, []toll{0, 1, 2, 3}, path)
	assert.Zero(t, cost)
}

func TestCheapest_NegativeCostPanics(t *testing.T) {
	assert.Panics(t, func() { search.Cheapest(broken(0)) })
}
