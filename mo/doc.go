// Package mo answers a batch of inclusive range queries offline with Mo's
// algorithm, publishing every window move as a trace step.
//
// The array is split into blocks of max(1, floor(sqrt(n))) elements and the
// queries are visited sorted by (block of L, R). A single window [L, R]
// slides from one query to the next one element at a time, keeping a running
// sum and a per-value frequency table (hence the distinct count). Edges move
// in a fixed order: grow right, shrink right, shrink left, grow left, so the
// window never inverts while it still holds elements.
//
// Total pointer movement is O((n+q)·sqrt(n)); Result.Moves reports the exact
// figure so callers can compare it with answering queries one by one.
package mo
