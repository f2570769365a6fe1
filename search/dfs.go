package search

// stackItem is a pushed state along with the state that pushed it.
type stackItem[S any] struct {
	state     S
	parent    S
	hasParent bool
	depth     int
}

// DFS runs depth-first search from start and returns some path from start to
// a goal state. It makes no claim that the path is short. ok is false when no
// goal is reachable.
//
// The frontier is an explicit stack, and the visited check happens when a
// state is popped: a state may be pushed several times but is expanded only
// the first time it comes off the stack. Its parent is whichever state pushed
// that copy.
func DFS[S Searchable[S]](start S, opts ...Option[S]) (path []S, ok bool) {
	o := buildOptions(opts)
	goal := o.Goal
	if goal == nil {
		goal = func(s S) bool { return s.IsDone() }
	}

	visited := make(map[S]bool)
	parent := make(map[S]S)
	stack := []stackItem[S]{{state: start}}

	for len(stack) > 0 {
		item := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if visited[item.state] {
			continue
		}
		visited[item.state] = true
		if item.hasParent {
			parent[item.state] = item.parent
		}

		if goal(item.state) {
			return backtrack(parent, item.state), true
		}

		o.OnVisit(item.state, item.depth)
		if !o.expandable(item.depth) {
			continue
		}
		for _, nbr := range item.state.Moves() {
			if visited[nbr] {
				continue
			}
			stack = append(stack, stackItem[S]{
				state:     nbr,
				parent:    item.state,
				hasParent: true,
				depth:     item.depth + 1,
			})
		}
	}

	return nil, false
}
