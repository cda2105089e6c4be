package dsu_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/dsu"
)

func ExampleForest() {
	f, _ := dsu.New(6)
	_, _ = f.Union(0, 1)
	_, _ = f.Union(1, 2)
	_, _ = f.Union(4, 5)

	fmt.Println(f.Connected(0, 2), f.Connected(2, 4))
	fmt.Println(f.Count(), f.Sets())
	// Output:
	// true false
	// 3 [[0 1 2] [3] [4 5]]
}

func ExampleRun() {
	res, _ := dsu.Run(3, []dsu.Op{dsu.Union(0, 2), dsu.Find(2)})
	fmt.Println(res.Roots, res.Sets, res.Outcome)
	// Output: [0] [[0 2] [1]] success
}
