package kmp

import (
	"slices"

	"github.com/katalvlaran/stepviz/trace"
)

// LPS returns the prefix function of pattern.
func LPS(pattern string) []int {
	m := &matcher{pat: []rune(pattern), em: trace.NewEmitter(trace.Discard)}
	m.buildTable()

	return m.lps
}

// Search reports every position where pattern occurs in text.
// An empty pattern matches nowhere. No match yields OutcomeNoSolution.
func Search(text, pattern string, opts ...Option) Result {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	m := &matcher{
		text: []rune(text),
		pat:  []rune(pattern),
		em:   trace.NewEmitter(cfg.Recorder),
	}

	return m.run()
}

type matcher struct {
	text, pat []rune
	lps       []int
	matches   []int
	cmp       int
	phase     Phase
	em        *trace.Emitter
}

func (m *matcher) run() Result {
	if len(m.pat) == 0 {
		res := m.result(trace.OutcomeNoSolution)
		m.em.Emit(trace.EventDone, trace.DelayDone, "empty pattern", res)

		return res
	}
	if !m.buildTable() || !m.search() {
		return m.result(trace.OutcomeCancelled)
	}

	outcome := trace.OutcomeSuccess
	if len(m.matches) == 0 {
		outcome = trace.OutcomeNoSolution
	}
	res := m.result(outcome)
	m.em.Emitf(trace.EventDone, trace.DelayDone, res, res.Matches,
		"%d matches, %d comparisons", len(res.Matches), res.Comparisons)

	return res
}

// buildTable fills lps left to right.
//
//  1. length is the running match length, i the main index (starting at 1).
//  2. On pat[i] == pat[length]: length++, lps[i] = length, i++.
//  3. On mismatch with length > 0: length = lps[length-1]; i stays.
//  4. On mismatch with length == 0: lps[i] = 0, i++.
func (m *matcher) buildTable() bool {
	m.phase = PhaseTable
	m.lps = make([]int, len(m.pat))
	for i := 1; i < len(m.lps); i++ {
		m.lps[i] = -1
	}
	if len(m.pat) == 0 {
		return true
	}
	if !m.em.Emitf(trace.EventInit, trace.DelayVisit, m.snapshot(1, 0), []int{0}, "lps[0] = 0") {
		return false
	}

	length := 0
	for i := 1; i < len(m.pat); {
		m.cmp++
		if !m.em.Emitf(trace.EventCompare, trace.DelayCompare, m.snapshot(i, length), []int{i, length},
			"pattern[%d]=%q vs pattern[%d]=%q", i, m.pat[i], length, m.pat[length]) {
			return false
		}
		switch {
		case m.pat[i] == m.pat[length]:
			length++
			m.lps[i] = length
			if !m.em.Emitf(trace.EventUpdate, trace.DelayUpdate, m.snapshot(i, length), []int{i},
				"lps[%d] = %d", i, length) {
				return false
			}
			i++
		case length > 0:
			length = m.lps[length-1]
			if !m.em.Emitf(trace.EventBacktrack, trace.DelayBacktrack, m.snapshot(i, length), []int{i},
				"fall back to length %d", length) {
				return false
			}
		default:
			m.lps[i] = 0
			if !m.em.Emitf(trace.EventUpdate, trace.DelayUpdate, m.snapshot(i, 0), []int{i},
				"lps[%d] = 0", i) {
				return false
			}
			i++
		}
	}

	return true
}

// search scans the text.
//
//  1. On text[i] == pat[j]: advance both; j == m records a match at i-m and
//     continues with j = lps[m-1].
//  2. On mismatch with j > 0: j = lps[j-1]; i stays.
//  3. On mismatch with j == 0: i++.
func (m *matcher) search() bool {
	m.phase = PhaseSearch
	if !m.em.Emitf(trace.EventInit, trace.DelayVisit, m.snapshot(0, 0), nil, "table ready: %v", m.lps) {
		return false
	}

	i, j := 0, 0
	for i < len(m.text) {
		m.cmp++
		if !m.em.Emitf(trace.EventCompare, trace.DelayCompare, m.snapshot(i, j), []int{i, j},
			"text[%d]=%q vs pattern[%d]=%q", i, m.text[i], j, m.pat[j]) {
			return false
		}
		switch {
		case m.text[i] == m.pat[j]:
			i++
			j++
			if j == len(m.pat) {
				start := i - j
				m.matches = append(m.matches, start)
				j = m.lps[j-1]
				if !m.em.Emitf(trace.EventFound, trace.DelayFound, m.snapshot(i, j), []int{start},
					"match at %d", start) {
					return false
				}
			}
		case j > 0:
			j = m.lps[j-1]
			if !m.em.Emitf(trace.EventBacktrack, trace.DelayBacktrack, m.snapshot(i, j), []int{i},
				"fall back to pattern index %d", j) {
				return false
			}
		default:
			i++
		}
	}

	return true
}

func (m *matcher) snapshot(i, j int) Snapshot {
	return Snapshot{
		Phase:       m.phase,
		LPS:         slices.Clone(m.lps),
		I:           i,
		J:           j,
		Matches:     slices.Clone(m.matches),
		Comparisons: m.cmp,
	}
}

func (m *matcher) result(outcome trace.Outcome) Result {
	return Result{
		LPS:         slices.Clone(m.lps),
		Matches:     slices.Clone(m.matches),
		Comparisons: m.cmp,
		Outcome:     outcome,
	}
}
