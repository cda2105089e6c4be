package backtrack

import (
	"slices"

	"github.com/katalvlaran/stepviz/trace"
)

// PartitionSnapshot is the search state at one step.
type PartitionSnapshot struct {
	Input      string
	Start, End int      // candidate prefix [Start, End) in runes, -1 if none
	Parts      []string // palindromes committed so far
	Found      int
}

// PartitionResult is carried by the EventDone step of PalindromePartition.
type PartitionResult struct {
	Partitions [][]string // in visit order
	Outcome    trace.Outcome
}

// Status implements trace.Outcomer.
func (r PartitionResult) Status() trace.Outcome { return r.Outcome }

type partitioner struct {
	search
	input string
	runes []rune
	parts []string
	out   [][]string
}

// PalindromePartition lists every way to cut s into palindromic pieces.
// The empty string has exactly one partition: no pieces.
func PalindromePartition(s string, opts ...Option) PartitionResult {
	cfg := buildOptions(opts)
	p := &partitioner{
		search: search{em: trace.NewEmitter(cfg.Recorder), max: cfg.MaxSolutions},
		input:  s,
		runes:  []rune(s),
	}
	if p.em.Emitf(trace.EventInit, trace.DelayVisit, p.snapshot(-1, -1), nil, "partition %q", s) {
		p.cut(0)
	}

	res := PartitionResult{Partitions: p.out, Outcome: p.outcome()}
	p.em.Emitf(trace.EventDone, trace.DelayDone, res, nil, "%d partitions", len(p.out))

	return res
}

// cut extends the partition from rune offset start.
func (p *partitioner) cut(start int) {
	if start == len(p.runes) {
		p.found++
		p.out = append(p.out, slices.Clone(p.parts))
		p.em.Emitf(trace.EventFound, trace.DelayFound, p.snapshot(-1, -1), nil, "partition %v", p.parts)

		return
	}

	for end := start + 1; end <= len(p.runes); end++ {
		if !p.em.Emitf(trace.EventCompare, trace.DelayCompare, p.snapshot(start, end), []int{start, end - 1},
			"is %q a palindrome?", string(p.runes[start:end])) {
			return
		}
		if !isPalindrome(p.runes, start, end-1) {
			continue
		}
		piece := string(p.runes[start:end])
		p.parts = append(p.parts, piece)
		if !p.em.Emitf(trace.EventUpdate, trace.DelayUpdate, p.snapshot(start, end), []int{start, end - 1},
			"cut %q", piece) {
			return
		}

		p.cut(end)

		p.parts = p.parts[:len(p.parts)-1]
		if p.stop() {
			return
		}
		if !p.em.Emitf(trace.EventBacktrack, trace.DelayBacktrack, p.snapshot(start, end), []int{start, end - 1},
			"uncut %q", piece) {
			return
		}
	}
}

// isPalindrome is a symmetric two-pointer scan of r[lo..hi].
func isPalindrome(r []rune, lo, hi int) bool {
	for lo < hi {
		if r[lo] != r[hi] {
			return false
		}
		lo++
		hi--
	}

	return true
}

func (p *partitioner) snapshot(start, end int) PartitionSnapshot {
	return PartitionSnapshot{
		Input: p.input,
		Start: start,
		End:   end,
		Parts: slices.Clone(p.parts),
		Found: p.found,
	}
}
