// Package visualizer is the fixed catalog of instrumented algorithms.
//
// Each Descriptor pairs a name with demo inputs (Defaults) and a Run
// function. Run validates its Params first and only then returns the lazy
// step sequence, so a rejected input never starts a run. Ranging over the
// sequence drives the algorithm; breaking out of the loop stops it at that
// step.
//
// The set is fixed at build time; there is no registration API.
package visualizer
