package bfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/bfs"
	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/trace"
)

// square: 0-1, 0-2, 1-3, 2-3, plus isolated 4.
func square(t *testing.T) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}} {
		require.NoError(t, g.AddEdge(e[0], e[1], 0))
	}

	return g
}

func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.BFS(square(t), 9)
	assert.ErrorIs(t, err, bfs.ErrStartVertexNotFound)
	_, err = bfs.BFS(square(t), 0, bfs.WithMaxDepth(-1))
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

func TestBFS_Layers(t *testing.T) {
	res, err := bfs.BFS(square(t), 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3}, res.Order)
	assert.Equal(t, []int{0, 1, 1, 2, -1}, res.Depth)
	assert.Equal(t, [][]int{{0}, {1, 2}, {3}}, res.Layers)
	assert.Equal(t, []int{0, 1, 3}, res.PathTo(3))
	assert.Nil(t, res.PathTo(4))
}

func TestBFS_WeightsIgnored(t *testing.T) {
	g, _ := core.NewGraph(3, core.WithWeighted())
	g.MustAddEdge(0, 1, 1)
	g.MustAddEdge(1, 2, 1)
	g.MustAddEdge(0, 2, 100)
	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, res.Depth[2])
}

func TestBFS_MaxDepth(t *testing.T) {
	res, err := bfs.BFS(square(t), 0, bfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2}, res.Order)
	assert.Equal(t, -1, res.Depth[3])
}

func TestBFS_Trace(t *testing.T) {
	tape := &trace.Tape{}
	_, err := bfs.BFS(square(t), 0, bfs.WithRecorder(tape))
	require.NoError(t, err)
	assert.Equal(t, []trace.Event{
		trace.EventInit,
		trace.EventVisit, trace.EventUpdate, trace.EventUpdate, // 0
		trace.EventVisit, trace.EventCompare, trace.EventUpdate, // 1
		trace.EventVisit, trace.EventCompare, trace.EventCompare, // 2
		trace.EventVisit, trace.EventCompare, trace.EventCompare, // 3
		trace.EventDone,
	}, tape.Events())

	init := tape.Steps[0].State.(bfs.Snapshot)
	assert.Equal(t, []int{0}, init.Queue)
}

func TestBFS_Cancelled(t *testing.T) {
	res, err := bfs.BFS(square(t), 0, bfs.WithRecorder(&trace.Tape{Limit: 3}))
	require.NoError(t, err)
	assert.Equal(t, trace.OutcomeCancelled, res.Outcome)
	assert.Equal(t, []int{0}, res.Order)
}
