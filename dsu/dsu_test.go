package dsu_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/dsu"
	"github.com/katalvlaran/stepviz/trace"
)

func TestNew_Validation(t *testing.T) {
	_, err := dsu.New(0)
	assert.ErrorIs(t, err, dsu.ErrBadSize)

	f, err := dsu.New(3)
	require.NoError(t, err)
	_, err = f.Find(3)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	_, err = f.Union(-1, 0)
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	assert.False(t, f.Connected(0, 7))
}

func TestUnion_ByRank(t *testing.T) {
	f, err := dsu.New(4)
	require.NoError(t, err)

	// equal ranks: y's root goes under x's root
	merged, err := f.Union(0, 1)
	require.NoError(t, err)
	assert.True(t, merged)
	assert.Equal(t, 0, f.Parent(1))
	assert.Equal(t, 1, f.Rank(0))

	// lower rank root goes under the higher one regardless of argument order
	_, err = f.Union(2, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, f.Parent(2))
	assert.Equal(t, 1, f.Rank(0))

	merged, err = f.Union(1, 2)
	require.NoError(t, err)
	assert.False(t, merged)
	assert.Equal(t, 2, f.Count())
	assert.Equal(t, [][]int{{0, 1, 2}, {3}}, f.Sets())
}

func TestFind_CompressesPath(t *testing.T) {
	// Build a chain 3 -> 2 -> 0 via ranked unions.
	f, err := dsu.New(4)
	require.NoError(t, err)
	_, _ = f.Union(2, 3) // 3 under 2, rank[2]=1
	_, _ = f.Union(0, 1) // 1 under 0, rank[0]=1
	_, _ = f.Union(0, 2) // 2 under 0, rank[0]=2
	assert.Equal(t, 2, f.Parent(3))

	root, err := f.Find(3)
	require.NoError(t, err)
	assert.Equal(t, 0, root)
	assert.Equal(t, 0, f.Parent(3))
}

func TestRun_StepsAndResult(t *testing.T) {
	tape := &trace.Tape{}
	res, err := dsu.Run(4, []dsu.Op{dsu.Union(2, 3), dsu.Union(0, 1), dsu.Union(0, 2), dsu.Find(3), dsu.Union(1, 3)},
		dsu.WithRecorder(tape))
	require.NoError(t, err)

	assert.Equal(t, trace.OutcomeSuccess, res.Outcome)
	assert.Equal(t, []int{0}, res.Roots)
	assert.Equal(t, []bool{true, true, true, false}, res.Merged)
	assert.Equal(t, [][]int{{0, 1, 2, 3}}, res.Sets)

	last, ok := tape.Last()
	require.True(t, ok)
	assert.Equal(t, trace.EventDone, last.Event)
	for i, s := range tape.Steps {
		assert.Equal(t, i, s.Seq)
	}

	// The find(3) visit step shows the uncompressed walk 3 -> 2 -> 0.
	var walked []int
	for _, s := range tape.Steps {
		snap, isSnap := s.State.(dsu.Snapshot)
		if isSnap && s.Event == trace.EventVisit && snap.Op == dsu.Find(3) {
			walked = snap.Path
			assert.Equal(t, 2, snap.Parent[3])
		}
	}
	assert.Equal(t, []int{3, 2, 0}, walked)
}

func TestRun_RejectsBadOps(t *testing.T) {
	_, err := dsu.Run(3, []dsu.Op{dsu.Union(0, 3)})
	assert.ErrorIs(t, err, dsu.ErrOutOfRange)
	_, err = dsu.Run(3, []dsu.Op{{Kind: "merge"}})
	assert.ErrorIs(t, err, dsu.ErrBadOp)
}

func TestRun_Cancelled(t *testing.T) {
	tape := &trace.Tape{Limit: 3}
	res, err := dsu.Run(5, []dsu.Op{dsu.Union(0, 1), dsu.Union(2, 3), dsu.Union(0, 4)}, dsu.WithRecorder(tape))
	require.NoError(t, err)
	assert.Equal(t, trace.OutcomeCancelled, res.Outcome)
	assert.Len(t, tape.Steps, 3)
}

// naive keeps an explicit label per element and relabels on every union.
type naive []int

func (l naive) union(x, y int) {
	from, to := l[y], l[x]
	for i := range l {
		if l[i] == from {
			l[i] = to
		}
	}
}

func TestForest_MatchesNaiveLabels(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	const n = 12
	properties.Property("connected iff joined by prior unions", prop.ForAll(
		func(pairs []int) bool {
			f, _ := dsu.New(n)
			labels := make(naive, n)
			for i := range labels {
				labels[i] = i
			}
			for i := 0; i+1 < len(pairs); i += 2 {
				_, _ = f.Union(pairs[i], pairs[i+1])
				labels.union(pairs[i], pairs[i+1])
			}
			for x := 0; x < n; x++ {
				for y := 0; y < n; y++ {
					if f.Connected(x, y) != (labels[x] == labels[y]) {
						return false
					}
				}
			}
			distinct := map[int]bool{}
			for _, l := range labels {
				distinct[l] = true
			}

			return f.Count() == len(distinct)
		},
		gen.SliceOf(gen.IntRange(0, n-1)),
	))

	properties.TestingRun(t)
}
