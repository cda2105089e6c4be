// Package prim_kruskal computes minimum spanning trees on an undirected,
// weighted core.Graph with two classic strategies and traces every decision.
//
// Algorithms Provided
//
//   - Kruskal(g, opts...)
//
//   - Strategy: stable-sort all edges by weight (ties keep insertion order),
//     then walk them smallest first. A dsu.Forest tells whether both
//     endpoints already share a component: if so the edge is rejected,
//     otherwise it is accepted and the components are merged. Stops after
//     n-1 accepted edges.
//
//   - Steps: compare (consider), update (accept), discard (reject).
//
//   - Time: O(E log E + α(V)·E). Space: O(V + E).
//
//   - Prim(g, root, opts...)
//
//   - Strategy: grow a tree from root. A min-heap holds candidate edges
//     leaving the tree, ordered by (weight, push order). Popped edges whose
//     far endpoint is already in the tree are skipped.
//
//   - Steps: visit (node joins), compare (pop), update (accept), discard (skip).
//
//   - Time: O(E log E). Space: O(V + E).
//
// Disconnected graphs are not an error. Both algorithms return the minimum
// spanning forest (Prim restarts from the smallest node not yet reached) and
// report trace.OutcomeNoSolution.
//
// Compute dispatches on MSTOptions.Method.
package prim_kruskal
