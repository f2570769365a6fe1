// Package search provides generic path finding over implicit state graphs.
//
// What
//
//   - A state type describes the graph by itself: Moves enumerates the states
//     reachable in one step and IsDone reports whether the state is a goal.
//   - BFS returns a shortest path (in edge count) from a start state to the
//     first goal state it dequeues.
//   - DFS returns some path, exploring last-in-first-out.
//   - Reachable floods the whole reachable state space and reports depths.
//   - Cheapest runs Dijkstra over states whose moves carry a non-negative cost.
//
// An unreachable goal is not an error: every search reports it through its
// boolean result. Parent links and frontiers are allocated per call and never
// shared.
//
// Termination
//
//	All searches track visited states, so they terminate whenever the set of
//	states reachable from start is finite. On infinite spaces callers bound
//	the search themselves, either in Moves or with WithMaxDepth.
//
// Complexity (V = reachable states, E = moves)
//
//   - BFS, DFS, Reachable: Time O(V + E), Memory O(V)
//   - Cheapest:            Time O((V + E) log V), Memory O(V + E)
//
// Usage
//
//	type counter int
//
//	func (c counter) Moves() []counter { return []counter{c + 1, c + 3} }
//	func (c counter) IsDone() bool     { return c == 10 }
//
//	path, ok := search.BFS(counter(0))
//	// ok == true, path == [0 1 4 7 10] or another 4-edge path
package search
