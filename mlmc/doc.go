// Package mlmc implements a Multi-Level Monte Carlo estimation engine: it
// estimates the expected value of a scalar or vector quantity of interest
// produced by a costly stochastic simulation, using a hierarchy of models of
// increasing cost and accuracy instead of single-fidelity Monte Carlo.
//
// # Reading Guide
//
// Start with these files to understand the pipeline:
//   - input.go: InputSource / RandomInput, the sole generators of randomness
//   - model.go, hierarchy.go: level models and their ordering
//   - estimator.go: pilot-based per-level cost and variance estimation
//   - allocator.go: the cost-optimal sample allocation formula
//   - coordinator.go: full-phase draws with pairing guaranteed by construction
//   - aggregator.go: the telescoping-sum estimator and its variance
//
// run.go ties the stages into a one-call pipeline; evaluate.go holds the
// worker-pool evaluation it uses. rng.go provides the partitioned
// deterministic RNG that makes whole campaigns reproducible from one seed.
//
// # Statelessness
//
// AllocateSamples, AggregateEstimators, and LevelDifferences are package
// functions of their arguments alone. The Simulator methods hold only the
// hierarchy and input source; no result of one call feeds implicitly into
// the next, so one Simulator serves repeated independent experiments.
package mlmc
