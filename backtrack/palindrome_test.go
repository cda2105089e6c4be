package backtrack_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/stepviz/backtrack"
	"github.com/katalvlaran/stepviz/trace"
)

func TestPalindromePartition(t *testing.T) {
	res := backtrack.PalindromePartition("aab")
	assert.Equal(t, [][]string{{"a", "a", "b"}, {"aa", "b"}}, res.Partitions)
	assert.Equal(t, trace.OutcomeSuccess, res.Outcome)

	res = backtrack.PalindromePartition("racecar")
	assert.Len(t, res.Partitions, 4)
	assert.Equal(t, []string{"racecar"}, res.Partitions[len(res.Partitions)-1])
}

func TestPalindromePartition_Empty(t *testing.T) {
	res := backtrack.PalindromePartition("")
	assert.Len(t, res.Partitions, 1)
	assert.Empty(t, res.Partitions[0])
}

func TestPalindromePartition_Runes(t *testing.T) {
	res := backtrack.PalindromePartition("аба")
	assert.Equal(t, [][]string{{"а", "б", "а"}, {"аба"}}, res.Partitions)
}

func TestPalindromePartition_MaxAndCancel(t *testing.T) {
	res := backtrack.PalindromePartition("aaaa", backtrack.WithMaxSolutions(2))
	assert.Len(t, res.Partitions, 2)

	res = backtrack.PalindromePartition("aaaa", backtrack.WithRecorder(&trace.Tape{Limit: 3}))
	assert.Equal(t, trace.OutcomeCancelled, res.Outcome)
}
