// Package builder provides reusable “functional‐options”‐style building blocks
// for constructing core.Graph topologies. It centralizes common configuration,
// ID scheme, and weight distribution logic, keeping constructors DRY and
// consistent.
//
// The package offers:
//
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – builderConfig:     holds RNG, ID‐scheme, and weight function.
//   - Vertex‐ID scheme (IDFn implementation):
//     – DefaultIDFn:       decimal strings ("0","1",…).
//   - Edge‐weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – UniformWeightFn:   uniform ∼U[min,max].
//   - Shared constants:
//     – DefaultEdgeWeight.
//   - RandomSparse(n, p): the one topology factory, an Erdős–Rényi-like
//     sparse graph generator.
//
// Guarantees:
//
//   - Re-running the same builder on g does not duplicate vertices (AddVertex is
//     idempotent); sampled edges are added again, so a graph without multi-edges
//     rejects a repeated pair with core.ErrMultiEdgeNotAllowed.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Sentinel errors for invalid build parameters (ErrTooFewVertices,
//     ErrInvalidProbability, ErrNeedRandSource, ErrConstructFailed).
//
// See individual function documentation for detailed contracts, panic conditions,
// parameter descriptions, and performance notes.
package builder
