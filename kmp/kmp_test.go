package kmp_test

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/stepviz/kmp"
	"github.com/katalvlaran/stepviz/trace"
)

func TestLPS(t *testing.T) {
	cases := map[string][]int{
		"ABABCABAB":   {0, 0, 1, 2, 0, 1, 2, 3, 4},
		"AAAA":        {0, 1, 2, 3},
		"AABAACAABAA": {0, 1, 0, 1, 2, 0, 1, 2, 3, 4, 5},
		"ABCD":        {0, 0, 0, 0},
		"x":           {0},
	}
	for pattern, want := range cases {
		assert.Equal(t, want, kmp.LPS(pattern), pattern)
	}
}

func TestSearch_Overlapping(t *testing.T) {
	res := kmp.Search("AAAAA", "AA")
	assert.Equal(t, []int{0, 1, 2, 3}, res.Matches)
	assert.Equal(t, trace.OutcomeSuccess, res.Outcome)
}

func TestSearch_Classic(t *testing.T) {
	res := kmp.Search("ABABDABACDABABCABAB", "ABABCABAB")
	assert.Equal(t, []int{10}, res.Matches)
	assert.LessOrEqual(t, res.Comparisons, 2*(19+9))
}

func TestSearch_NoMatchAndEmpty(t *testing.T) {
	res := kmp.Search("abc", "d")
	assert.Empty(t, res.Matches)
	assert.Equal(t, trace.OutcomeNoSolution, res.Outcome)

	res = kmp.Search("abc", "")
	assert.Empty(t, res.Matches)
	assert.Equal(t, trace.OutcomeNoSolution, res.Outcome)

	res = kmp.Search("", "abc")
	assert.Empty(t, res.Matches)
}

func TestSearch_Unicode(t *testing.T) {
	res := kmp.Search("ёжёжё", "ёжё")
	assert.Equal(t, []int{0, 2}, res.Matches)
}

func TestSearch_TraceHasBothPhases(t *testing.T) {
	tape := &trace.Tape{}
	res := kmp.Search("abab", "ab", kmp.WithRecorder(tape))
	require.Equal(t, []int{0, 2}, res.Matches)

	var phases []kmp.Phase
	for _, s := range tape.Steps {
		if snap, ok := s.State.(kmp.Snapshot); ok && s.Event == trace.EventInit {
			phases = append(phases, snap.Phase)
		}
	}
	assert.Equal(t, []kmp.Phase{kmp.PhaseTable, kmp.PhaseSearch}, phases)

	var found int
	for _, ev := range tape.Events() {
		if ev == trace.EventFound {
			found++
		}
	}
	assert.Equal(t, 2, found)
}

func TestSearch_Cancelled(t *testing.T) {
	res := kmp.Search("aaaa", "aa", kmp.WithRecorder(&trace.Tape{Limit: 2}))
	assert.Equal(t, trace.OutcomeCancelled, res.Outcome)
}

func brute(text, pattern []rune) []int {
	var out []int
	if len(pattern) == 0 {
		return out
	}
	for i := 0; i+len(pattern) <= len(text); i++ {
		ok := true
		for j := range pattern {
			if text[i+j] != pattern[j] {
				ok = false
				break
			}
		}
		if ok {
			out = append(out, i)
		}
	}

	return out
}

func clip(r []rune) []rune {
	if len(r) > 50 {
		return r[:50]
	}

	return r
}

func TestSearch_Properties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 300
	properties := gopter.NewProperties(parameters)

	alphabet := gen.SliceOf(gen.RuneRange('a', 'c'))

	properties.Property("matches equal brute force", prop.ForAll(
		func(text, pattern []rune) bool {
			text, pattern = clip(text), clip(pattern)
			got := kmp.Search(string(text), string(pattern)).Matches

			return assert.ObjectsAreEqual(len(brute(text, pattern)), len(got)) &&
				(len(got) == 0 || assert.ObjectsAreEqual(brute(text, pattern), got))
		},
		alphabet, alphabet,
	))

	properties.Property("comparisons are linear", prop.ForAll(
		func(text, pattern []rune) bool {
			text, pattern = clip(text), clip(pattern)
			res := kmp.Search(string(text), string(pattern))

			return res.Comparisons <= 2*(len(text)+len(pattern))
		},
		alphabet, alphabet,
	))

	properties.TestingRun(t)
}
