package grid

import "math"

// feasibleInterval derives the delta range [lo, hi] for one dimension
// of one column. Any delta inside it keeps pk+delta within the global
// envelope [pMin, pMax] of that dimension and the delta itself within
// [dMin, dMax]. The bounds enter symmetrically: lo is clamped from
// below by dMin and by -dMax, hi from above by dMax on both sides of
// the envelope term.
//
// lo > hi marks the interval as empty; the caller decides the policy.
// Complexity: O(1).
func feasibleInterval(pk, pMin, pMax, dMin, dMax float64) (lo, hi float64) {
	lo = math.Max(dMin, math.Max(pMin-pk, -dMax))
	hi = math.Min(dMax, math.Min(pMax-pk, dMax))

	return lo, hi
}

// maxAxisPoints bounds the point count of a single axis. A step fine
// enough to cross it could not be materialized anyway; it would also
// overflow the float→int conversion below and corrupt the count.
const maxAxisPoints = float64(math.MaxInt / 2)

// discretize expands [lo, hi] into a fixed-step grid that always
// contains both boundaries exactly.
//
// Construction:
//  1. n = floor((hi-lo)/step) + 1 stepped points lo, lo+step, ...,
//     each capped at hi to guard floating-point overshoot.
//  2. If the last stepped point is still strictly below hi, append hi,
//     so the right boundary is represented exactly once even when
//     (hi-lo) is not a multiple of step.
//
// Returns a non-decreasing slice whose first element is lo and last is
// hi. Degenerate cases: lo == hi yields the single point [lo];
// lo > hi yields nil (empty axis). step must already be validated > 0;
// a step so fine that the point count exceeds maxAxisPoints yields
// ErrAxisOverflow before anything is allocated.
// Complexity: O(n) time and memory.
func discretize(lo, hi, step float64) ([]float64, error) {
	// Inverted interval: no feasible deltas on this axis.
	if lo > hi {
		return nil, nil
	}

	// Bound the raw count while it is still a float: converting a value
	// beyond the int range is undefined and has produced negative n.
	if (hi-lo)/step >= maxAxisPoints {
		return nil, ErrAxisOverflow
	}

	n := int((hi-lo)/step) + 1
	pts := make([]float64, 0, n+1)
	for j := 0; j < n; j++ {
		pts = append(pts, math.Min(lo+float64(j)*step, hi))
	}
	if pts[len(pts)-1] < hi {
		pts = append(pts, hi)
	}

	return pts, nil
}

// clamp confines v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}
