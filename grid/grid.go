package grid

import (
	"math"

	"github.com/katalvlaran/polytope/matrix"
)

// Generate — Polytope Grid Generation
//
// Description:
//
//	Generate enumerates, for every column p_k of params, all feasible
//	perturbation vectors on a regular grid, and returns them as
//	(p_k, delta) pairs. A delta is feasible when the perturbed vector
//	p_k+delta stays inside the global per-dimension envelope of params
//	and each component stays inside [deltaMin[d], deltaMax[d]].
//
// Algorithm Outline:
//  1. Validate inputs (nil matrix, bounds lengths, step size).
//  2. Compute the envelope once: pMin[d], pMax[d] over all columns.
//  3. For each column k and dimension d derive the feasible interval
//     lo = max(deltaMin[d], max(pMin[d]-p_k[d], -deltaMax[d]))
//     hi = min(deltaMax[d], min(pMax[d]-p_k[d],  deltaMax[d]))
//  4. Discretize each interval at StepSize, boundaries always included.
//     An inverted interval yields an empty axis and the column is
//     skipped (zero samples, no error).
//  5. Emit the Cartesian product of the R axes, last dimension varying
//     fastest, each combination clipped elementwise into the delta
//     bounds. Columns appear in order k=0..K-1.
//
// Determinism:
//
//	No randomness, no shared state. Identical inputs produce identical
//	samples in identical order on every call.
//
// Complexity:
//
//	Time and memory are dominated by the output:
//	Σ_k Π_d |axis_d(k)| samples of R floats each. Set
//	Options.MaxSamples to fail fast instead of materializing a
//	combinatorial blow-up, or use Walk to stream.
//
// Errors:
//   - ErrNilParams, ErrBoundsLength, ErrBadStepSize — input validation.
//   - ErrAxisOverflow — a feasible interval holds more grid points than
//     an int can count.
//   - ErrSampleBudget — MaxSamples > 0 and the product exceeds it.
func Generate(params *matrix.Dense, deltaMin, deltaMax []float64, opts *Options) ([]Sample, error) {
	o, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	var out []Sample
	exceeded := false
	err = walk(params, deltaMin, deltaMax, o, func(s Sample) bool {
		if o.MaxSamples > 0 && len(out) == o.MaxSamples {
			exceeded = true

			return false
		}
		out = append(out, s)

		return true
	})
	if err != nil {
		return nil, err
	}
	if exceeded {
		return nil, ErrSampleBudget
	}

	return out, nil
}

// GenerateVector is the rank-1 convenience form of Generate: the input
// vector is treated as ONE dimension with len(params) candidate
// scalars (a 1×K matrix), and the scalar bounds become its delta
// bounds. It is not shorthand for a single R-dimensional column; use
// matrix.FromColumn with Generate for that.
//
// Errors: as Generate, plus matrix.ErrEmptyMatrix for an empty vector.
func GenerateVector(params []float64, deltaMin, deltaMax float64, opts *Options) ([]Sample, error) {
	m, err := matrix.FromRowVector(params)
	if err != nil {
		return nil, err
	}

	return Generate(m, []float64{deltaMin}, []float64{deltaMax}, opts)
}

// Walk streams the exact sample sequence Generate materializes,
// invoking visit once per sample in the same deterministic order.
// Return false from visit to stop early; Walk then returns nil.
//
// Walk never buffers samples and ignores Options.MaxSamples — the
// visitor is the cap. Peak memory is O(R·K) regardless of output size.
//
// Errors: ErrNilParams, ErrBoundsLength, ErrBadStepSize, ErrAxisOverflow.
func Walk(params *matrix.Dense, deltaMin, deltaMax []float64, opts *Options, visit func(Sample) bool) error {
	o, err := resolveOptions(opts)
	if err != nil {
		return err
	}

	return walk(params, deltaMin, deltaMax, o, visit)
}

// resolveOptions applies defaults and validates the step size.
// A nil opts means DefaultOptions; StepSize==0 means DefaultStepSize.
func resolveOptions(opts *Options) (Options, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
		if o.StepSize == 0 {
			o.StepSize = DefaultStepSize
		}
	}
	// Rejects negatives, NaN (fails the comparison), and +Inf.
	if !(o.StepSize > 0) || math.IsInf(o.StepSize, 1) {
		return Options{}, ErrBadStepSize
	}

	return o, nil
}

// walk is the shared core of Generate and Walk: validate, envelope,
// per-column axes, Cartesian enumeration.
func walk(params *matrix.Dense, deltaMin, deltaMax []float64, o Options, visit func(Sample) bool) error {
	if params == nil {
		return ErrNilParams
	}
	rows, cols := params.Rows(), params.Cols()
	if len(deltaMin) != rows || len(deltaMax) != rows {
		return ErrBoundsLength
	}

	// Envelope over ALL columns, computed once and shared read-only:
	// each column's feasible intervals depend on the extrema of the
	// whole matrix, not on the column alone.
	pMin, pMax, err := params.RowExtrema()
	if err != nil {
		return err
	}

	axes := make([][]float64, rows)
	for k := 0; k < cols; k++ {
		pk, err := params.Column(k)
		if err != nil {
			return err
		}

		empty := false
		for d := 0; d < rows; d++ {
			lo, hi := feasibleInterval(pk[d], pMin[d], pMax[d], deltaMin[d], deltaMax[d])
			axes[d], err = discretize(lo, hi, o.StepSize)
			if err != nil {
				return err
			}
			if len(axes[d]) == 0 {
				empty = true

				break
			}
		}
		if empty {
			// At least one dimension has no feasible delta: the whole
			// column contributes zero combinations.
			continue
		}

		if !walkColumn(pk, axes, deltaMin, deltaMax, visit) {
			return nil
		}
	}

	return nil
}

// walkColumn enumerates the Cartesian product of axes as an odometer
// with the last dimension varying fastest, clips each combination into
// the delta bounds, and feeds it to visit. The clip is defensive:
// discretize already keeps points inside the interval, this guards
// rounding at the edges. Returns false when visit aborted the walk.
func walkColumn(pk []float64, axes [][]float64, deltaMin, deltaMax []float64, visit func(Sample) bool) bool {
	rows := len(axes)
	idx := make([]int, rows)
	for {
		delta := make([]float64, rows)
		for d := 0; d < rows; d++ {
			delta[d] = clamp(axes[d][idx[d]], deltaMin[d], deltaMax[d])
		}
		if !visit(Sample{Param: pk, Delta: delta}) {
			return false
		}

		// Advance the odometer; carry left from the last axis.
		d := rows - 1
		for d >= 0 {
			idx[d]++
			if idx[d] < len(axes[d]) {
				break
			}
			idx[d] = 0
			d--
		}
		if d < 0 {
			return true
		}
	}
}
