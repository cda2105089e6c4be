// Package dfs implements depth-first search, topological sort and strongly
// connected components (Kosaraju) on a core.Graph, each publishing its
// intermediate state as trace steps.
//
// What:
//
//   - DFS: explores as far as possible along each branch before
//     backtracking. Records pre-order, post-order, depth and parent per node.
//     WithFullTraversal restarts from every unvisited node (forest).
//   - TopologicalSort: three-colour DFS over a directed graph. Reaching a
//     Gray node means a back edge, the run ends with
//     trace.OutcomeCycleDetected, no order and the offending cycle.
//   - SCC: Kosaraju's two passes. Pass 1 runs DFS from nodes 0..n-1 (neighbors
//     in insertion order) and pushes each node when it finishes. Pass 2 pops
//     that stack and runs DFS on the reversed graph; every tree is one
//     component. Components are reported in discovery order, members ascending.
//
// Key Types & Constants:
//
//   - White, Gray, Black: visitation colours.
//   - Snapshot: colours, DFS stack, current edge and partial order at one step.
//   - DFSResult, TopoResult, SCCResult: carried by the final step.
//
// Complexity:
//
//   - DFS, TopologicalSort, SCC: Time O(V+E), Memory O(V).
//
// Errors:
//
//   - ErrGraphNil             graph pointer is nil
//   - ErrStartVertexNotFound  start vertex not in [0, n)
//   - ErrUndirected           TopologicalSort on an undirected graph
package dfs
