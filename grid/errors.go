package grid

import "errors"

// Sentinel errors for grid operations.
var (
	// ErrNilParams indicates the params matrix is nil.
	ErrNilParams = errors.New("grid: params matrix must be non-nil")
	// ErrBoundsLength indicates a delta-bounds vector whose length does
	// not equal the number of rows of the params matrix.
	ErrBoundsLength = errors.New("grid: delta bounds length must equal the params row count")
	// ErrBadStepSize indicates a step size that is zero, negative, NaN, or infinite.
	ErrBadStepSize = errors.New("grid: step size must be positive and finite")
	// ErrAxisOverflow indicates a step size too fine for a feasible
	// interval: the axis point count would overflow before any sample
	// could be emitted.
	ErrAxisOverflow = errors.New("grid: step size too fine for interval; axis point count overflows")
	// ErrSampleBudget indicates Generate would emit more samples than
	// Options.MaxSamples allows.
	ErrSampleBudget = errors.New("grid: sample count exceeds Options.MaxSamples")
)
