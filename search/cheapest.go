package search

import (
	"container/heap"
	"fmt"
)

// Cheapest runs Dijkstra's algorithm from start over weighted moves and
// returns the minimum-cost path to the first goal state settled, with its
// total cost. ok is false when no goal is reachable.
//
// Costs must be non-negative; a negative cost is a programming error and
// panics. Duplicate heap entries are pushed instead of decreasing keys, and
// stale entries are skipped when popped.
func Cheapest[S WeightedSearchable[S]](start S) (path []S, cost int, ok bool) {
	dist := map[S]int{start: 0}
	parent := make(map[S]S)
	settled := make(map[S]bool)

	pq := &statePQ[S]{}
	heap.Push(pq, &stateItem[S]{state: start, dist: 0})

	for pq.Len() > 0 {
		item := heap.Pop(pq).(*stateItem[S])
		u := item.state

		// stale entry
		if settled[u] {
			continue
		}
		settled[u] = true

		if u.IsDone() {
			return backtrack(parent, u), item.dist, true
		}

		for _, e := range u.WeightedMoves() {
			if e.Cost < 0 {
				panic(fmt.Sprintf("search: negative move cost %d", e.Cost))
			}
			if settled[e.Next] {
				continue
			}
			newDist := item.dist + e.Cost
			if old, seen := dist[e.Next]; seen && newDist >= old {
				continue
			}
			dist[e.Next] = newDist
			parent[e.Next] = u
			heap.Push(pq, &stateItem[S]{state: e.Next, dist: newDist})
		}
	}

	return nil, 0, false
}

// stateItem is a state with its tentative distance from the start.
type stateItem[S any] struct {
	state S
	dist  int
}

// statePQ is a min-heap of *stateItem ordered by dist.
type statePQ[S any] []*stateItem[S]

func (pq statePQ[S]) Len() int           { return len(pq) }
func (pq statePQ[S]) Less(i, j int) bool { return pq[i].dist < pq[j].dist }
func (pq statePQ[S]) Swap(i, j int)      { pq[i], pq[j] = pq[j], pq[i] }

func (pq *statePQ[S]) Push(x any) { *pq = append(*pq, x.(*stateItem[S])) }

func (pq *statePQ[S]) Pop() any {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
