package hld_test

import (
	"testing"

	"github.com/katalvlaran/stepviz/builder"
	"github.com/katalvlaran/stepviz/hld"
)

func BenchmarkDecompose(b *testing.B) {
	g := builder.MustRandomTree(32, 7)
	b.ResetTimer()
	for range b.N {
		_, _ = hld.DecomposeGraph(g, 0)
	}
}
