package mo_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/mo"
	"github.com/katalvlaran/stepviz/trace"
)

func brute(values []int, q mo.Query) mo.Aggregate {
	seen := map[int]bool{}
	var agg mo.Aggregate
	for i := q.L; i <= q.R; i++ {
		agg.Sum += values[i]
		if !seen[values[i]] {
			seen[values[i]] = true
			agg.Distinct++
		}
	}

	return agg
}

func TestAnswer_Reference(t *testing.T) {
	values := []int{1, 1, 2, 1, 3, 4, 5, 2, 8}
	queries := []mo.Query{{0, 4}, {1, 3}, {2, 6}}

	res, err := mo.Answer(values, queries)
	require.NoError(t, err)
	assert.Equal(t, 3, res.Block)
	assert.Equal(t, []int{1, 0, 2}, res.Order)
	assert.Equal(t, []mo.Aggregate{{8, 3}, {4, 2}, {15, 5}}, res.Answers)
	for i, q := range queries {
		assert.Equal(t, brute(values, q), res.Answers[i])
	}
	assert.Equal(t, 11, res.Moves)
	assert.Equal(t, trace.OutcomeSuccess, res.Outcome)
}

func TestBlockSize(t *testing.T) {
	assert.Equal(t, 1, mo.BlockSize(1))
	assert.Equal(t, 1, mo.BlockSize(3))
	assert.Equal(t, 2, mo.BlockSize(8))
	assert.Equal(t, 3, mo.BlockSize(9))
	assert.Equal(t, 8, mo.BlockSize(64))
}

func TestOrder_StableWithinBlock(t *testing.T) {
	queries := []mo.Query{{4, 5}, {0, 5}, {1, 2}, {3, 3}, {2, 5}}
	// block 2: L/2 = 2,0,0,1,1
	assert.Equal(t, []int{2, 1, 3, 4, 0}, mo.Order(queries, 2))
}

func TestAnswer_Errors(t *testing.T) {
	_, err := mo.Answer(nil, nil)
	assert.ErrorIs(t, err, mo.ErrEmpty)

	for _, q := range []mo.Query{{-1, 0}, {0, 3}, {2, 1}} {
		_, err = mo.Answer([]int{1, 2, 3}, []mo.Query{q})
		assert.ErrorIs(t, err, mo.ErrBadQuery, "%v", q)
	}
}

func TestAnswer_NoQueries(t *testing.T) {
	res, err := mo.Answer([]int{1}, nil)
	require.NoError(t, err)
	assert.Empty(t, res.Answers)
	assert.Zero(t, res.Moves)
	assert.Equal(t, trace.OutcomeSuccess, res.Outcome)
}

func TestAnswer_TraceWindowTracksMoves(t *testing.T) {
	values := []int{1, 1, 2, 1, 3, 4, 5, 2, 8}
	tape := &trace.Tape{}
	res, err := mo.Answer(values, []mo.Query{{0, 4}, {1, 3}, {2, 6}}, mo.WithRecorder(tape))
	require.NoError(t, err)

	var moves, found int
	for _, s := range tape.Steps {
		switch s.Event {
		case trace.EventUpdate, trace.EventDiscard:
			moves++
			snap := s.State.(mo.Snapshot)
			assert.Equal(t, moves, snap.Moves)
			// the window is never inverted while it holds elements
			assert.LessOrEqual(t, snap.L, snap.R+1)
		case trace.EventFound:
			found++
			snap := s.State.(mo.Snapshot)
			q := snap.Query
			assert.True(t, snap.Answered[q])
			assert.Equal(t, brute(values, mo.Query{L: snap.L, R: snap.R}), snap.Answers[q])
		}
	}
	assert.Equal(t, res.Moves, moves)
	assert.Equal(t, 3, found)

	last, _ := tape.Last()
	assert.Equal(t, trace.EventDone, last.Event)
}

func TestAnswer_Cancelled(t *testing.T) {
	res, err := mo.Answer([]int{1, 2, 3, 4}, []mo.Query{{0, 3}}, mo.WithRecorder(&trace.Tape{Limit: 3}))
	require.NoError(t, err)
	assert.Equal(t, trace.OutcomeCancelled, res.Outcome)
	assert.Equal(t, mo.Aggregate{}, res.Answers[0])
}

func TestAnswer_MatchesBruteForce(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("every answer equals direct recomputation", prop.ForAll(
		func(values []int, raw []int) bool {
			n := len(values)
			queries := make([]mo.Query, 0, len(raw)/2)
			for i := 0; i+1 < len(raw); i += 2 {
				a, b := raw[i]%n, raw[i+1]%n
				queries = append(queries, mo.Query{L: min(a, b), R: max(a, b)})
			}
			res, err := mo.Answer(values, queries)
			if err != nil {
				return false
			}
			for i, q := range queries {
				if res.Answers[i] != brute(values, q) {
					return false
				}
			}

			return true
		},
		gen.SliceOf(gen.IntRange(0, 9)).SuchThat(func(v []int) bool { return len(v) > 0 }),
		gen.SliceOf(gen.IntRange(0, 1000)),
	))

	properties.TestingRun(t)
}
