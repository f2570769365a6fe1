package search

// queueItem pairs a state with its depth from the start.
type queueItem[S any] struct {
	state S
	depth int
}

// bfsWalker encapsulates mutable BFS state for one call.
type bfsWalker[S Mover[S]] struct {
	opts   Options[S]
	queue  []queueItem[S]
	depth  map[S]int // discovered states; doubles as the visited set
	parent map[S]S   // discovered state → state that discovered it
}

func newBFSWalker[S Mover[S]](start S, opts []Option[S]) *bfsWalker[S] {
	w := &bfsWalker[S]{
		opts:   buildOptions(opts),
		depth:  make(map[S]int),
		parent: make(map[S]S),
	}
	w.depth[start] = 0
	w.queue = append(w.queue, queueItem[S]{state: start})

	return w
}

// BFS runs breadth-first search from start and returns the path from start to
// the first goal state dequeued. With uniform move cost the path has the
// minimum possible number of edges. ok is false when no goal is reachable.
//
// A state is skipped once it has been discovered, so every state is expanded
// at most once and the search terminates on finite reachable spaces.
func BFS[S Searchable[S]](start S, opts ...Option[S]) (path []S, ok bool) {
	w := newBFSWalker(start, opts)
	goal := w.opts.Goal
	if goal == nil {
		goal = func(s S) bool { return s.IsDone() }
	}

	for len(w.queue) > 0 {
		item := w.dequeue()
		if goal(item.state) {
			return backtrack(w.parent, item.state), true
		}
		w.expand(item)
	}

	return nil, false
}

// Reachable floods every state reachable from start (start included) and
// returns each one with its BFS depth. WithGoal has no effect here;
// WithMaxDepth bounds the flood.
func Reachable[S Mover[S]](start S, opts ...Option[S]) map[S]int {
	w := newBFSWalker(start, opts)
	for len(w.queue) > 0 {
		w.expand(w.dequeue())
	}

	return w.depth
}

// dequeue pops the first item of the queue.
func (w *bfsWalker[S]) dequeue() queueItem[S] {
	item := w.queue[0]
	w.queue = w.queue[1:]
	return item
}

// expand calls OnVisit and enqueues each undiscovered neighbor of item,
// unless item sits at the depth limit.
func (w *bfsWalker[S]) expand(item queueItem[S]) {
	w.opts.OnVisit(item.state, item.depth)
	if !w.opts.expandable(item.depth) {
		return
	}
	next := item.depth + 1
	for _, nbr := range item.state.Moves() {
		// first time seen?
		if _, seen := w.depth[nbr]; seen {
			continue
		}
		w.depth[nbr] = next
		w.parent[nbr] = item.state
		w.queue = append(w.queue, queueItem[S]{state: nbr, depth: next})
	}
}
