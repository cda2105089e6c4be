package bfs_test

import (
	"testing"

	"github.com/katalvlaran/stepviz/bfs"
	"github.com/katalvlaran/stepviz/builder"
	"github.com/katalvlaran/stepviz/trace"
)

func BenchmarkBFS_Complete(b *testing.B) {
	g := builder.MustComplete(10, false)
	b.ResetTimer()
	for range b.N {
		_, _ = bfs.BFS(g, 0)
	}
}

func BenchmarkBFS_Traced(b *testing.B) {
	g := builder.MustComplete(10, false)
	b.ResetTimer()
	for range b.N {
		_, _ = bfs.BFS(g, 0, bfs.WithRecorder(&trace.Tape{}))
	}
}
