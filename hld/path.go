package hld

import "github.com/katalvlaran/stepviz/trace"

// LightEdgesOnPath counts the light edges between the root and v.
// Returns -1 for an out-of-range v or an incomplete Result.
func (r Result) LightEdgesOnPath(v int) int {
	if v < 0 || v >= len(r.Parent) || r.Outcome != trace.OutcomeSuccess {
		return -1
	}
	light := 0
	for v != r.Root {
		p := r.Parent[v]
		if r.Heavy[p] != v {
			light++
		}
		v = p
	}

	return light
}

// ChainsOnPath counts the distinct chains touched between the root and v.
func (r Result) ChainsOnPath(v int) int {
	light := r.LightEdgesOnPath(v)
	if light < 0 {
		return -1
	}

	return light + 1
}

// Segments returns the position ranges [from, to] covering the path from v
// up to the root, one per chain, deepest first.
func (r Result) Segments(v int) [][2]int {
	if v < 0 || v >= len(r.Parent) || r.Outcome != trace.OutcomeSuccess {
		return nil
	}
	var out [][2]int
	for v >= 0 {
		h := r.Head[v]
		out = append(out, [2]int{r.Pos[h], r.Pos[v]})
		v = r.Parent[h]
	}

	return out
}
