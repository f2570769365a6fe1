package search_test

import (
	"fmt"

	"github.com/katalvlaran/advent/search"
)

// knight is a chess knight on a 5×5 board; the goal is the opposite corner.
type knight struct{ x, y int }

func (k knight) Moves() []knight {
	out := make([]knight, 0, 8)
	for _, d := range [][2]int{{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2}} {
		nx, ny := k.x+d[0], k.y+d[1]
		if nx >= 0 && nx < 5 && ny >= 0 && ny < 5 {
			out = append(out, knight{nx, ny})
		}
	}
	return out
}

func (k knight) IsDone() bool { return k.x == 4 && k.y == 4 }

// ExampleBFS finds the fewest knight moves across a 5×5 board.
func ExampleBFS() {
	path, ok := search.BFS(knight{0, 0})
	fmt.Println(ok, search.PathLen(path))
	// Output:
	// true 4
}

// ExampleReachable counts the squares a knight can reach within two moves.
func ExampleReachable() {
	depth := search.Reachable(knight{0, 0}, search.WithMaxDepth[knight](2))
	fmt.Println(len(depth))
	// Output:
	// 12
}
