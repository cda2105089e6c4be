// Package bfs provides breadth-first search over a core.Graph, returning
// unweighted shortest-path distances, parent links, visit order and the
// nodes grouped by layer.
//
// Edge weights are ignored: every edge counts as one hop. Neighbors are
// enqueued in insertion order, so the traversal is deterministic.
//
// Published steps: init (start enqueued), visit (dequeue), update (a
// neighbor is discovered and enqueued), compare (a neighbor was already
// seen), done (BFSResult).
package bfs
