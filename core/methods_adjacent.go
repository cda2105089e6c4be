// File: methods_adjacent.go
// Role: Neighborhood APIs (Neighbors, NeighborIDs), Reverse and Matrix views.
// Determinism:
//   - Neighbors() and NeighborIDs() follow edge insertion order.
// Concurrency:
//   - Read operations hold mu read lock.

package core

// Neighbors returns the edges leaving u, oriented so that e.From == u.
//
// Neighborhood policy:
//   - Directed graphs: only edges stored with From == u.
//   - Undirected graphs: every incident edge, mirrored when stored as v→u.
//
// Returns nil for an out-of-range u.
// Complexity: O(deg(u)).
func (g *Graph) Neighbors(u int) []Edge {
	if u < 0 || u >= g.n {
		return nil
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Edge, 0, len(g.adj[u]))
	var e Edge
	for _, idx := range g.adj[u] {
		e = g.edges[idx]
		if e.From != u {
			// mirrored undirected edge: orient away from u
			e = Edge{From: u, To: e.From, Weight: e.Weight}
		}
		out = append(out, e)
	}

	return out
}

// NeighborIDs returns the nodes adjacent to u in insertion order.
// Complexity: O(deg(u)).
func (g *Graph) NeighborIDs(u int) []int {
	nbs := g.Neighbors(u)
	out := make([]int, len(nbs))
	for i, e := range nbs {
		out[i] = e.To
	}

	return out
}

// Reverse returns a new graph with every edge flipped, preserving insertion
// order and weights. For undirected graphs the result is an equal copy.
// Complexity: O(V + E).
func (g *Graph) Reverse() *Graph {
	g.mu.RLock()
	defer g.mu.RUnlock()

	r := &Graph{
		n:        g.n,
		directed: g.directed,
		weighted: g.weighted,
		edges:    make([]Edge, len(g.edges)),
		adj:      make([][]int, g.n),
	}
	for i, e := range g.edges {
		r.edges[i] = Edge{From: e.To, To: e.From, Weight: e.Weight}
		r.adj[e.To] = append(r.adj[e.To], i)
		if !g.directed {
			r.adj[e.From] = append(r.adj[e.From], i)
		}
	}

	return r
}

// Matrix returns an n×n adjacency matrix snapshot. Absent edges hold NoEdge;
// unweighted edges hold 0. Undirected edges are mirrored.
// Complexity: O(V² + E).
func (g *Graph) Matrix() [][]int64 {
	g.mu.RLock()
	defer g.mu.RUnlock()

	m := make([][]int64, g.n)
	for i := range m {
		m[i] = make([]int64, g.n)
		for j := range m[i] {
			m[i][j] = NoEdge
		}
	}
	for _, e := range g.edges {
		m[e.From][e.To] = e.Weight
		if !g.directed {
			m[e.To][e.From] = e.Weight
		}
	}

	return m
}
