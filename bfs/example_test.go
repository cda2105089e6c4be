package bfs_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/bfs"
	"github.com/katalvlaran/stepviz/core"
)

func ExampleBFS() {
	g, _ := core.NewGraph(6)
	g.MustAddEdge(0, 1, 0)
	g.MustAddEdge(0, 2, 0)
	g.MustAddEdge(1, 3, 0)
	g.MustAddEdge(2, 4, 0)
	g.MustAddEdge(4, 5, 0)

	res, _ := bfs.BFS(g, 0)
	fmt.Println("layers:", res.Layers)
	fmt.Println("path to 5:", res.PathTo(5))
	// Output:
	// layers: [[0] [1 2] [3 4] [5]]
	// path to 5: [0 2 4 5]
}
