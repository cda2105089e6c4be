package hld_test

import (
	"math/bits"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/core"
	"github.com/katalvlaran/stepviz/hld"
	"github.com/katalvlaran/stepviz/trace"
)

// sample:
//
//	      0
//	    /   \
//	   1     2
//	  / \     \
//	 3   4     7
//	    / \
//	   5   6
var sample = [][2]int{{0, 1}, {0, 2}, {1, 3}, {1, 4}, {4, 5}, {4, 6}, {2, 7}}

func TestDecompose_Sample(t *testing.T) {
	res, err := hld.Decompose(8, sample, 0)
	require.NoError(t, err)

	assert.Equal(t, []int{8, 5, 2, 1, 3, 1, 1, 1}, res.Size)
	assert.Equal(t, []int{-1, 0, 0, 1, 1, 4, 4, 2}, res.Parent)
	assert.Equal(t, []int{0, 1, 1, 2, 2, 3, 3, 2}, res.Depth)
	assert.Equal(t, []int{1, 4, 7, -1, 5, -1, -1, -1}, res.Heavy, "4 picks 5 over 6 on a tie")
	assert.Equal(t, [][]int{{0, 1, 4, 5}, {6}, {3}, {2, 7}}, res.Chains)
	assert.Equal(t, []int{0, 1, 6, 5, 2, 3, 4, 7}, res.Pos)
	assert.Equal(t, []int{0, 0, 2, 3, 0, 0, 6, 2}, res.Head)
	assert.Equal(t, trace.OutcomeSuccess, res.Outcome)

	assert.Equal(t, 0, res.LightEdgesOnPath(5))
	assert.Equal(t, 1, res.LightEdgesOnPath(6))
	assert.Equal(t, 1, res.LightEdgesOnPath(7))
	assert.Equal(t, 2, res.ChainsOnPath(3))
	assert.Equal(t, -1, res.ChainsOnPath(8))
	assert.Equal(t, [][2]int{{4, 4}, {0, 2}}, res.Segments(6))
}

func TestDecompose_SingleNode(t *testing.T) {
	res, err := hld.Decompose(1, nil, 0)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{0}}, res.Chains)
	assert.Equal(t, 1, res.ChainsOnPath(0))
}

func TestDecompose_OtherRoot(t *testing.T) {
	res, err := hld.Decompose(8, sample, 5)
	require.NoError(t, err)
	assert.Equal(t, -1, res.Parent[5])
	assert.Equal(t, 8, res.Size[5])
	assert.Equal(t, 4, res.Heavy[5])
}

func TestDecompose_Errors(t *testing.T) {
	_, err := hld.Decompose(0, nil, 0)
	assert.ErrorIs(t, err, hld.ErrBadSize)

	_, err = hld.Decompose(3, [][2]int{{0, 1}, {1, 2}}, 3)
	assert.ErrorIs(t, err, hld.ErrBadRoot)

	_, err = hld.Decompose(3, [][2]int{{0, 1}}, 0)
	assert.ErrorIs(t, err, hld.ErrNotTree)

	// n-1 edges, but a triangle plus an isolated node
	_, err = hld.Decompose(4, [][2]int{{0, 1}, {1, 2}, {2, 0}}, 0)
	assert.ErrorIs(t, err, hld.ErrNotTree)

	_, err = hld.Decompose(3, [][2]int{{0, 1}, {1, 1}}, 0)
	assert.ErrorIs(t, err, core.ErrLoopNotAllowed)

	_, err = hld.Decompose(3, [][2]int{{0, 1}, {1, 0}}, 0)
	assert.ErrorIs(t, err, core.ErrDuplicateEdge)

	_, err = hld.Decompose(3, [][2]int{{0, 1}, {1, 5}}, 0)
	assert.ErrorIs(t, err, core.ErrNodeOutOfRange)
}

func TestDecompose_TracePasses(t *testing.T) {
	tape := &trace.Tape{}
	res, err := hld.Decompose(8, sample, 0, hld.WithRecorder(tape))
	require.NoError(t, err)

	var chainsFound int
	lastPass := hld.PassSizes
	for _, s := range tape.Steps {
		if snap, ok := s.State.(hld.Snapshot); ok {
			assert.GreaterOrEqual(t, snap.Pass, lastPass, "passes never interleave")
			lastPass = snap.Pass
		}
		if s.Event == trace.EventFound {
			chainsFound++
		}
	}
	assert.Equal(t, len(res.Chains), chainsFound)

	last, _ := tape.Last()
	assert.Equal(t, res, last.State)
}

func TestDecompose_Cancelled(t *testing.T) {
	res, err := hld.Decompose(8, sample, 0, hld.WithRecorder(&trace.Tape{Limit: 4}))
	require.NoError(t, err)
	assert.Equal(t, trace.OutcomeCancelled, res.Outcome)
	assert.Equal(t, -1, res.ChainsOnPath(5))
}

func TestDecompose_ChainBound(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	// raw[i] picks the parent of node i+1 among 0..i.
	properties.Property("chains on any root path <= ceil(log2 n)+1", prop.ForAll(
		func(raw []int) bool {
			n := len(raw) + 1
			edges := make([][2]int, len(raw))
			for i, r := range raw {
				edges[i] = [2]int{r % (i + 1), i + 1}
			}
			res, err := hld.Decompose(n, edges, 0)
			if err != nil {
				return false
			}
			bound := bits.Len(uint(n-1)) + 1
			seen := make([]bool, n)
			for v := range n {
				if res.ChainsOnPath(v) > bound {
					return false
				}
				seen[res.Pos[v]] = true
				// heavy child sits right after its parent
				if h := res.Heavy[v]; h >= 0 && res.Pos[h] != res.Pos[v]+1 {
					return false
				}
			}
			for _, ok := range seen {
				if !ok {
					return false
				}
			}

			return true
		},
		gen.SliceOf(gen.IntRange(0, 1<<20)),
	))

	properties.Property("heavy child has the largest subtree", prop.ForAll(
		func(raw []int) bool {
			edges := make([][2]int, len(raw))
			for i, r := range raw {
				edges[i] = [2]int{r % (i + 1), i + 1}
			}
			res, err := hld.Decompose(len(raw)+1, edges, 0)
			if err != nil {
				return false
			}
			for v, p := range res.Parent {
				if p >= 0 && res.Size[v] > res.Size[res.Heavy[p]] {
					return false
				}
			}

			return true
		},
		gen.SliceOf(gen.IntRange(0, 1<<20)),
	))

	properties.TestingRun(t)
}
