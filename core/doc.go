// Package core provides the small, dense graph model consumed by every
// algorithm core in stepviz.
//
// A Graph G = (V,E) has a fixed vertex set V = {0, 1, …, n-1} chosen at
// construction time and an insertion-ordered edge list E. It supports:
//
//   - Directed vs. undirected edges (WithDirected)
//   - Weighted vs. unweighted edges (WithWeighted)
//   - Adjacency-list iteration in insertion order (Neighbors)
//   - Adjacency-matrix snapshots (Matrix)
//   - Reversal of every directed edge (Reverse), used by Kosaraju's second pass
//
// Why dense integer vertices?
//
//   - Visualizer inputs are small (2–10 nodes) and edited as index pairs.
//   - Algorithm state (dist, parent, rank, finish order) becomes plain slices,
//     which makes immutable snapshots cheap to copy.
//
// Invariants enforced by AddEdge:
//
//	– every endpoint lies in [0, n)                  → ErrNodeOutOfRange
//	– no self-loops                                   → ErrLoopNotAllowed
//	– at most one edge per ordered pair (directed)
//	  or per unordered pair (undirected)              → ErrDuplicateEdge
//	– weights are zero on unweighted graphs and
//	  non-negative on weighted graphs                 → ErrBadWeight
//
// A Graph is built before a run and treated as immutable while any core reads
// it. All methods are safe for concurrent use; a single sync.RWMutex guards
// the edge list and adjacency buckets.
//
// Complexity:
//
//	AddEdge      O(1) amortized
//	HasEdge      O(deg(u))
//	Neighbors    O(deg(u))  (copy)
//	Edges        O(E)       (copy)
//	Reverse      O(V + E)
//	Matrix       O(V² + E)
package core
