package search

import "fmt"

// Mover is a state that can enumerate the states reachable from it in one step.
// States are used as map keys, so they must be comparable; pointer states
// compare by identity and are rarely what you want.
type Mover[S any] interface {
	comparable
	Moves() []S
}

// Searchable is a Mover that also knows whether it is a goal state.
type Searchable[S any] interface {
	Mover[S]
	IsDone() bool
}

// Edge is a weighted move to Next costing Cost (Cost >= 0).
type Edge[S any] struct {
	Next S
	Cost int
}

// WeightedSearchable is a state whose moves carry a non-negative cost.
type WeightedSearchable[S any] interface {
	comparable
	WeightedMoves() []Edge[S]
	IsDone() bool
}

// Option configures a single search call via functional arguments.
type Option[S any] func(*Options[S])

// Options holds per-call parameters and hooks.
type Options[S any] struct {
	// OnVisit is called each time a state is expanded, with its depth
	// (edges from the start state).
	OnVisit func(state S, depth int)

	// MaxDepth, if > 0, stops expanding states at this depth.
	// A value of 0 disables the limit.
	MaxDepth int

	// Goal, if non-nil, replaces the state's own IsDone for this call.
	Goal func(state S) bool
}

// DefaultOptions returns Options with a no-op OnVisit, no depth limit
// and no goal override.
func DefaultOptions[S any]() Options[S] {
	return Options[S]{
		OnVisit:  func(S, int) {},
		MaxDepth: 0,
		Goal:     nil,
	}
}

// WithOnVisit registers a hook called whenever a state is expanded.
func WithOnVisit[S any](fn func(state S, depth int)) Option[S] {
	return func(o *Options[S]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search from expanding states deeper than d.
//
//	d > 0:  limit to depth d
//	d == 0: explicit no limit
//	d < 0:  panics; a negative depth is a programming error
func WithMaxDepth[S any](d int) Option[S] {
	if d < 0 {
		panic(fmt.Sprintf("search: MaxDepth cannot be negative (%d)", d))
	}
	return func(o *Options[S]) {
		o.MaxDepth = d
	}
}

// WithGoal overrides the goal test for one call.
func WithGoal[S any](fn func(state S) bool) Option[S] {
	return func(o *Options[S]) {
		o.Goal = fn
	}
}

func buildOptions[S any](opts []Option[S]) Options[S] {
	o := DefaultOptions[S]()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// expandable reports whether a state at depth d may be expanded under o.
func (o *Options[S]) expandable(d int) bool {
	return o.MaxDepth == 0 || d < o.MaxDepth
}

// PathLen returns the number of edges in path: len(path)-1, or 0 for an empty path.
func PathLen[S any](path []S) int {
	if len(path) == 0 {
		return 0
	}
	return len(path) - 1
}

// backtrack rebuilds the start → end path by following parent links.
// The start state is the one state without an entry in parent.
func backtrack[S comparable](parent map[S]S, end S) []S {
	path := []S{end}
	for cur := end; ; {
		prev, ok := parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	// reverse to get start → end
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
