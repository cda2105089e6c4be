package trie

import (
	"errors"
	"fmt"
	"slices"

	"github.com/katalvlaran/stepviz/trace"
)

// ErrBadRune indicates a rune outside 'a'..'z'.
var ErrBadRune = errors.New("trie: only lowercase a-z is supported")

const alphabet = 26

type node struct {
	children [alphabet]*node
	end      bool
}

// Trie is a set of lowercase words. The zero value is an empty trie.
type Trie struct {
	root  node
	nodes int // excluding the root
	words int
}

// New returns an empty trie.
func New() *Trie { return &Trie{} }

func index(r rune) (int, bool) {
	if r < 'a' || r > 'z' {
		return 0, false
	}

	return int(r - 'a'), true
}

func check(word string) error {
	for i, r := range word {
		if _, ok := index(r); !ok {
			return fmt.Errorf("%w: %q at byte %d of %q", ErrBadRune, r, i, word)
		}
	}

	return nil
}

// Insert adds word and reports whether it was new. The empty word is allowed
// and marks the root.
func (t *Trie) Insert(word string) (bool, error) {
	if err := check(word); err != nil {
		return false, err
	}
	cur := &t.root
	for _, r := range word {
		i, _ := index(r)
		if cur.children[i] == nil {
			cur.children[i] = &node{}
			t.nodes++
		}
		cur = cur.children[i]
	}
	if cur.end {
		return false, nil
	}
	cur.end = true
	t.words++

	return true, nil
}

// walk returns the node reached by prefix, or nil.
func (t *Trie) walk(prefix string) *node {
	cur := &t.root
	for _, r := range prefix {
		i, ok := index(r)
		if !ok {
			return nil
		}
		if cur = cur.children[i]; cur == nil {
			return nil
		}
	}

	return cur
}

// Contains reports whether word was inserted.
func (t *Trie) Contains(word string) bool {
	n := t.walk(word)

	return n != nil && n.end
}

// HasPrefix reports whether some inserted word starts with prefix.
func (t *Trie) HasPrefix(prefix string) bool {
	return t.walk(prefix) != nil
}

// Len returns the number of distinct words.
func (t *Trie) Len() int { return t.words }

// Nodes returns the number of nodes below the root.
func (t *Trie) Nodes() int { return t.nodes }

// Words returns every word with the given prefix in lexicographic order.
func (t *Trie) Words(prefix string) []string {
	start := t.walk(prefix)
	if start == nil {
		return nil
	}
	var out []string
	buf := []byte(prefix)
	var collect func(n *node)
	collect = func(n *node) {
		if n.end {
			out = append(out, string(buf))
		}
		for i, c := range n.children {
			if c == nil {
				continue
			}
			buf = append(buf, byte('a'+i))
			collect(c)
			buf = buf[:len(buf)-1]
		}
	}
	collect(start)

	return out
}

// Snapshot is the observable state at one step of Build.
type Snapshot struct {
	Word   string // word being inserted
	Depth  int    // characters matched so far
	Nodes  int
	Words  []string // words inserted so far, in insertion order
	Shared bool     // the current edge already existed
}

// Result is carried by the EventDone step of Build.
type Result struct {
	Trie    *Trie
	Words   int
	Nodes   int
	Outcome trace.Outcome
}

// Status implements trace.Outcomer.
func (r Result) Status() trace.Outcome { return r.Outcome }

// Options configures Build.
type Options struct {
	Recorder trace.Recorder
}

// Option mutates Options.
type Option func(*Options)

// WithRecorder sends steps to rec.
func WithRecorder(rec trace.Recorder) Option {
	return func(o *Options) {
		if rec != nil {
			o.Recorder = rec
		}
	}
}

// Build inserts words in order, one step per character.
// Every word is checked before anything is inserted.
func Build(words []string, opts ...Option) (Result, error) {
	for _, w := range words {
		if err := check(w); err != nil {
			return Result{}, err
		}
	}
	cfg := Options{Recorder: trace.Discard}
	for _, opt := range opts {
		opt(&cfg)
	}
	em := trace.NewEmitter(cfg.Recorder)
	t := New()
	var done []string

	snap := func(word string, depth int, shared bool) Snapshot {
		return Snapshot{Word: word, Depth: depth, Nodes: t.nodes, Words: slices.Clone(done), Shared: shared}
	}
	result := func(o trace.Outcome) Result {
		return Result{Trie: t, Words: t.words, Nodes: t.nodes, Outcome: o}
	}

	if !em.Emitf(trace.EventInit, trace.DelayVisit, snap("", 0, false), nil, "insert %d words", len(words)) {
		return result(trace.OutcomeCancelled), nil
	}
	for _, w := range words {
		cur := &t.root
		depth := 0
		for _, r := range w {
			i, _ := index(r)
			shared := cur.children[i] != nil
			if !shared {
				cur.children[i] = &node{}
				t.nodes++
			}
			cur = cur.children[i]
			depth++
			ev, msg := trace.EventUpdate, "new node %q"
			if shared {
				ev, msg = trace.EventVisit, "follow %q"
			}
			if !em.Emitf(ev, trace.DelayVisit, snap(w, depth, shared), []int{depth}, msg, w[:depth]) {
				return result(trace.OutcomeCancelled), nil
			}
		}

		ev, msg := trace.EventFound, "end of %q"
		if cur.end {
			ev, msg = trace.EventDiscard, "%q already present"
		} else {
			cur.end = true
			t.words++
			done = append(done, w)
		}
		if !em.Emitf(ev, trace.DelayFound, snap(w, depth, false), []int{depth}, msg, w) {
			return result(trace.OutcomeCancelled), nil
		}
	}

	res := result(trace.OutcomeSuccess)
	em.Emitf(trace.EventDone, trace.DelayDone, res, nil, "%d words, %d nodes", t.words, t.nodes)

	return res, nil
}
