// Package grid defines options, output types, and sentinel errors for
// the polytope grid generator.
package grid

// DefaultStepSize is the grid resolution used when Options.StepSize is
// left at zero.
const DefaultStepSize = 0.1

// Sample is one output unit of the generator: a candidate parameter
// vector paired with one feasible perturbation of it.
//
// Param is the original column, length R. All samples of the same
// column share one Param slice; treat it as read-only.
// Delta is owned by the sample and safe to mutate.
//
// Invariant: Param[d]+Delta[d] lies within the global envelope of
// dimension d, and Delta[d] lies within its delta bounds.
type Sample struct {
	Param []float64
	Delta []float64
}

// Options configures grid generation.
//
// Fields:
//   - StepSize   — spacing between neighboring grid points along each
//     dimension's feasible interval. Zero means DefaultStepSize;
//     negative, NaN, or infinite values are rejected.
//   - MaxSamples — upper bound on the number of samples Generate may
//     return; exceeding it yields ErrSampleBudget. Zero or negative
//     disables the cap. Walk ignores MaxSamples: streaming callers
//     bound the output themselves by returning false from the visitor.
//
// Example:
//
//	opts := grid.DefaultOptions()
//	opts.StepSize = 0.25
//	opts.MaxSamples = 100_000
//
//	samples, err := grid.Generate(params, dMin, dMax, &opts)
//	if err != nil {
//	  // handle ErrBadStepSize, ErrBoundsLength, ErrSampleBudget, ...
//	}
type Options struct {
	StepSize   float64
	MaxSamples int
}

// DefaultOptions returns Options with default settings:
// StepSize=DefaultStepSize, MaxSamples=0 (uncapped).
func DefaultOptions() Options {
	return Options{StepSize: DefaultStepSize}
}
