// SPDX-License-Identifier: MIT

package builder

import "errors"

// ErrTooFewVertices indicates a graph smaller than the constructor minimum.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNeedRandSource indicates a stochastic constructor run without an RNG
// (WithSeed or WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrTooManyEdges indicates more edges than a simple graph on n nodes holds.
var ErrTooManyEdges = errors.New("builder: too many edges")

// ErrConstructFailed indicates a nil constructor or a core rejection.
var ErrConstructFailed = errors.New("builder: construction failed")
