package mo_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/mo"
)

func ExampleAnswer() {
	values := []int{1, 1, 2, 1, 3, 4, 5, 2, 8}
	res, _ := mo.Answer(values, []mo.Query{{0, 4}, {1, 3}, {2, 6}})
	for i, a := range res.Answers {
		fmt.Printf("query %d: sum=%d distinct=%d\n", i, a.Sum, a.Distinct)
	}
	fmt.Println("order:", res.Order, "moves:", res.Moves)
	// Output:
	// query 0: sum=8 distinct=3
	// query 1: sum=4 distinct=2
	// query 2: sum=15 distinct=5
	// order: [1 0 2] moves: 11
}
