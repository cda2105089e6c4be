// Package dijkstra implements single-source shortest paths on a core.Graph
// with non-negative integer weights, instrumented so every decision can be
// watched step by step.
//
// Overview:
//
//   - dist starts at Inf for every node except the source (0).
//   - A binary min-heap holds (dist, node) entries. Equal distances are popped
//     in insertion order, using a monotone push counter as the second key, so
//     the settle order is fully deterministic.
//   - Lazy deletion: improving a node pushes a fresh entry and leaves the old
//     one in the heap. Popping an entry for an already settled node publishes
//     a discard step and skips it.
//   - WithTarget stops the run as soon as the target is settled.
//
// Published steps:
//
//   - init     – source pushed.
//   - visit    – a node is settled; its distance is final.
//   - update   – an edge relaxation improved dist[v].
//   - compare  – an edge relaxation that did not improve dist[v].
//   - discard  – a stale heap entry was popped.
//   - found    – the target was settled.
//   - done     – Result.
//
// Negative weights are a caller precondition. core.Graph already refuses
// them, so Dijkstra does not rescan the edges.
//
// Complexity:
//
//   - Time:  O((V + E) log E), each edge pushes at most one entry.
//   - Space: O(V + E).
package dijkstra
