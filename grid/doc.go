// Package grid enumerates discretized perturbation vectors inside an
// axis-aligned parameter polytope.
//
// What:
//
//   - Takes an R×K matrix of candidate parameter vectors (rows are
//     dimensions, columns are candidates) plus per-dimension delta
//     bounds [deltaMin, deltaMax].
//   - Derives, per column, the feasible delta interval of every
//     dimension: any delta inside it keeps the perturbed vector within
//     the global envelope [min over columns, max over columns] and the
//     delta itself within its bounds.
//   - Discretizes each interval at a fixed step, always including both
//     interval boundaries exactly.
//   - Emits the full Cartesian product of the per-dimension grids, one
//     (parameter, delta) Sample per combination, clipped elementwise
//     into the delta bounds.
//
// Why:
//
//   - Sensitivity analysis: probe every candidate with all feasible
//     perturbations on a regular lattice.
//   - Robustness sweeps: verify a model's behavior over the whole
//     reachable box, not just at the candidates themselves.
//   - Dataset augmentation: generate bounded, structured jitter.
//
// Complexity:
//
//   - Envelope + intervals: O(R·K) time, O(R) memory.
//   - Output: Σ_k Π_d |axis_d(k)| samples. The product grows
//     exponentially in R for wide intervals and small steps; use
//     Options.MaxSamples to cap Generate, or Walk to stream without
//     materializing anything.
//
// Options:
//
//   - Options.StepSize: grid resolution (default DefaultStepSize = 0.1).
//   - Options.MaxSamples: hard cap on Generate's output; 0 = unlimited.
//
// Errors:
//
//   - ErrNilParams: params matrix is nil.
//   - ErrBoundsLength: a delta-bounds vector does not match the row count.
//   - ErrBadStepSize: step size is zero, negative, NaN, or infinite.
//   - ErrAxisOverflow: step size too fine for a feasible interval; the
//     per-dimension point count would overflow.
//   - ErrSampleBudget: Generate would exceed Options.MaxSamples.
//
// An inverted feasible interval (lo > hi) is not an error: that
// dimension gets an empty axis and the affected column contributes zero
// samples. Callers violating deltaMin[d] <= deltaMax[d] get exactly
// this silent degradation.
package grid
