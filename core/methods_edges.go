// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/HasEdge/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges in insertion order.
// Concurrency:
//   - Mutations under mu write lock, queries under mu read lock.

package core

import "fmt"

// AddEdge inserts the edge from→to with the given weight.
//
// Steps:
//  1. Validate endpoints are in range and distinct.
//  2. Validate weight against the graph's weighting policy.
//  3. Lock, reject duplicates (mode-dependent), append to the catalog.
//  4. Link adjacency for from (and for to when undirected).
//
// Complexity: O(deg(from)) for the duplicate check, O(1) amortized insert.
func (g *Graph) AddEdge(from, to int, weight int64) error {
	// 1) Endpoint validation
	if from < 0 || from >= g.n || to < 0 || to >= g.n {
		return fmt.Errorf("%w: edge %d→%d with n=%d", ErrNodeOutOfRange, from, to, g.n)
	}
	if from == to {
		return fmt.Errorf("%w: node %d", ErrLoopNotAllowed, from)
	}

	// 2) Weight policy
	if weight < 0 || (!g.weighted && weight != 0) {
		return fmt.Errorf("%w: edge %d→%d weight=%d", ErrBadWeight, from, to, weight)
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	// 3) Duplicate check; undirected adjacency is mirrored so one lookup suffices
	if g.hasEdgeLocked(from, to) {
		return fmt.Errorf("%w: %d→%d", ErrDuplicateEdge, from, to)
	}

	idx := len(g.edges)
	g.edges = append(g.edges, Edge{From: from, To: to, Weight: weight})

	// 4) Link adjacency
	g.adj[from] = append(g.adj[from], idx)
	if !g.directed {
		g.adj[to] = append(g.adj[to], idx)
	}

	return nil
}

// MustAddEdge is AddEdge that panics on error. Intended for fixtures and examples.
func (g *Graph) MustAddEdge(from, to int, weight int64) {
	if err := g.AddEdge(from, to, weight); err != nil {
		panic(err)
	}
}

// HasEdge reports whether an edge u→v exists (either orientation when undirected).
// Complexity: O(deg(u)).
func (g *Graph) HasEdge(u, v int) bool {
	if u < 0 || u >= g.n || v < 0 || v >= g.n {
		return false
	}
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.hasEdgeLocked(u, v)
}

func (g *Graph) hasEdgeLocked(u, v int) bool {
	for _, idx := range g.adj[u] {
		if g.edges[idx].Other(u) == v {
			if g.directed && g.edges[idx].From != u {
				continue
			}
			return true
		}
	}

	return false
}

// Edges returns a copy of all edges in insertion order.
// Complexity: O(E).
func (g *Graph) Edges() []Edge {
	g.mu.RLock()
	defer g.mu.RUnlock()
	out := make([]Edge, len(g.edges))
	copy(out, g.edges)

	return out
}

// EdgeCount returns the number of stored edges.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.edges)
}

// TotalWeight sums the weights of edges.
func TotalWeight(edges []Edge) int64 {
	var total int64
	for _, e := range edges {
		total += e.Weight
	}

	return total
}
