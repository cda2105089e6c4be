// Package core defines the central Graph and Edge types together with the
// sentinel errors and construction options.
//
// Errors:
//
//	ErrTooFewNodes     - node count is negative.
//	ErrNodeOutOfRange  - an endpoint lies outside [0, n).
//	ErrLoopNotAllowed  - from == to.
//	ErrDuplicateEdge   - an edge between the same endpoints already exists.
//	ErrBadWeight       - non-zero weight on an unweighted graph, or negative weight.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrTooFewNodes indicates that NewGraph was asked for a negative node count.
	ErrTooFewNodes = errors.New("core: node count must be non-negative")

	// ErrNodeOutOfRange indicates an edge endpoint outside [0, n).
	ErrNodeOutOfRange = errors.New("core: node out of range")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrDuplicateEdge indicates a second edge between the same endpoints.
	// For undirected graphs {u,v} and {v,u} are the same edge.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrBadWeight indicates a non-zero weight on an unweighted graph or a
	// negative weight on a weighted one.
	ErrBadWeight = errors.New("core: bad edge weight")
)

// NoEdge marks an absent entry in Matrix.
const NoEdge int64 = -1

// Edge is a connection From→To with a non-negative Weight.
// In undirected graphs the stored orientation is the one given to AddEdge;
// Neighbors reports mirrored copies oriented away from the queried node.
type Edge struct {
	From   int   // source node
	To     int   // destination node
	Weight int64 // cost, zero on unweighted graphs
}

// Other returns the endpoint of e that is not u.
func (e Edge) Other(u int) int {
	if e.From == u {
		return e.To
	}

	return e.From
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes every edge one-way.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// WithWeighted allows non-zero edge weights.
func WithWeighted() GraphOption {
	return func(g *Graph) { g.weighted = true }
}

// Graph is a fixed-size graph over nodes 0..n-1.
//
// edges keeps insertion order; adj[u] lists indices into edges for every
// edge leaving u (both endpoints for undirected edges).
type Graph struct {
	mu sync.RWMutex // guards edges and adj

	n        int  // node count
	directed bool // one-way edges
	weighted bool // allow non-zero weights

	edges []Edge  // insertion-ordered catalog
	adj   [][]int // adj[u] = indices into edges, insertion order
}

// NewGraph creates an empty Graph with n nodes and the given options.
// By default the graph is undirected and unweighted.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrTooFewNodes
	}
	g := &Graph{
		n:   n,
		adj: make([][]int, n),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g, nil
}

// N returns the number of nodes.
func (g *Graph) N() int { return g.n }

// Directed reports whether edges are one-way.
func (g *Graph) Directed() bool { return g.directed }

// Weighted reports whether non-zero weights are permitted.
func (g *Graph) Weighted() bool { return g.weighted }
