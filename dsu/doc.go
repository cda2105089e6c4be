// Package dsu implements a disjoint-set union (union–find) forest over the
// dense integer elements 0..n-1.
//
// Find runs in two passes: it walks parent pointers up to the root, then
// rewrites the parent of every visited element to that root (full path
// compression). Union links by rank: the root with the smaller rank is
// attached under the other, and on equal ranks the root of y goes under the
// root of x and x's rank grows by one.
//
// Together these give an amortized cost of O(α(n)) per operation, where α is
// the inverse Ackermann function.
//
// Run replays a list of Find/Union operations against a fresh Forest and
// publishes a trace.Step per phase: the path before compression, the root,
// the compressed path and the rank comparison of a union.
//
// Example:
//
//	f, _ := dsu.New(5)
//	f.Union(0, 1)
//	f.Union(3, 4)
//	fmt.Println(f.Connected(1, 0), f.Count()) // true 3
package dsu
