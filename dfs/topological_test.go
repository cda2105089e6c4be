package dfs_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/dfs"
	"github.com/katalvlaran/stepviz/trace"
)

func TestTopologicalSort_Errors(t *testing.T) {
	_, err := dfs.TopologicalSort(nil)
	assert.ErrorIs(t, err, dfs.ErrGraphNil)
	_, err = dfs.TopologicalSort(graph(t, 2, false, nil))
	assert.ErrorIs(t, err, dfs.ErrUndirected)
}

func TestTopologicalSort_DAG(t *testing.T) {
	// 0→1, 0→2, 1→3, 2→3, 4 isolated
	g := graph(t, 5, true, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	res, err := dfs.TopologicalSort(g)
	require.NoError(t, err)
	assert.Equal(t, trace.OutcomeSuccess, res.Outcome)
	assert.Equal(t, []int{4, 0, 2, 1, 3}, res.Order)
	assert.Nil(t, res.Cycle)

	pos := make(map[int]int)
	for i, v := range res.Order {
		pos[v] = i
	}
	for _, e := range g.Edges() {
		assert.Less(t, pos[e.From], pos[e.To])
	}
}

func TestTopologicalSort_Cycle(t *testing.T) {
	g := graph(t, 4, true, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 1}})
	tape := &trace.Tape{}
	res, err := dfs.TopologicalSort(g, dfs.WithRecorder(tape))
	require.NoError(t, err)
	assert.Equal(t, trace.OutcomeCycleDetected, res.Outcome)
	assert.Nil(t, res.Order)
	assert.Equal(t, []int{1, 2, 3, 1}, res.Cycle)

	last, _ := tape.Last()
	assert.Equal(t, trace.EventDone, last.Event)
	assert.Contains(t, tape.Events(), trace.EventFound)
}
