// Package builder generates deterministic core.Graph fixtures for tests,
// benchmarks and the visualizer catalog.
//
// The package offers:
//
//   - Constructor: a closure that adds edges to a graph sized by BuildGraph.
//   - Topologies: Path, Cycle, Star, Complete, RandomTree, RandomConnected.
//   - BuilderOption: WithSeed, WithRand, WithWeightFn.
//   - WeightFn: DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//   - Must* helpers for fixtures whose parameters are known to be valid.
//
// Guarantees:
//
//   - Determinism: the same n, options, seed and constructor order produce
//     the same graph, edge insertion order included.
//   - Constructors return sentinel errors (errors.Is) and never panic.
//     Option constructors panic on meaningless values (nil RNG, nil WeightFn).
//   - Weights are drawn only for weighted graphs; unweighted edges carry 0.
package builder
