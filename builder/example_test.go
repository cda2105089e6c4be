package builder_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/builder"
)

func ExampleBuildGraph() {
	g, err := builder.BuildGraph(4, nil, nil, builder.Cycle())
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, e := range g.Edges() {
		fmt.Printf("%d-%d ", e.From, e.To)
	}
	fmt.Println()
	// Output: 0-1 1-2 2-3 3-0
}
