package visualizer_test

import (
	"fmt"

	"github.com/katalvlaran/stepviz/kmp"
	"github.com/katalvlaran/stepviz/trace"
	"github.com/katalvlaran/stepviz/visualizer"
)

func ExampleLookup() {
	d, _ := visualizer.Lookup("kmp")
	seq, _ := d.Run(visualizer.Params{Text: "abab", Pattern: "ab"})
	for s := range seq {
		switch s.Event {
		case trace.EventFound:
			fmt.Println(s.Message)
		case trace.EventDone:
			fmt.Println("matches:", s.State.(kmp.Result).Matches)
		}
	}
	// Output:
	// match at 0
	// match at 2
	// matches: [0 2]
}
