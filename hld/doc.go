// Package hld implements heavy-light decomposition of a rooted tree and
// publishes both passes as trace steps.
//
// What:
//
//   - Pass 1 walks the tree with an explicit stack, records parent and depth,
//     then folds subtree sizes bottom-up (size[v] = 1 + sum of children).
//   - The heavy child of v is the child with the strictly largest size; ties
//     go to the child met first in adjacency order.
//   - Pass 2 lays the tree out so every chain of heavy edges occupies a
//     contiguous position range. Each light child starts a new chain.
//
// Every light edge on a root-to-node path at least halves the remaining
// subtree size, so such a path touches at most ⌈log2 n⌉+1 chains.
//
// Complexity: Time O(n), Memory O(n).
//
// Errors:
//
//   - ErrBadSize  n < 1
//   - ErrBadRoot  root outside [0, n)
//   - ErrNotTree  edge count is not n-1 or the edges leave nodes unreachable
//   - core sentinels for endpoints out of range, self-loops and duplicates
package hld
