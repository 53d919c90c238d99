package matrix

import "gonum.org/v1/gonum/floats"

// RowExtrema reduces each row to its minimum and maximum across all
// columns, yielding the global per-dimension envelope [min[d], max[d]].
// The envelope is computed once from the full matrix; algorithms share
// it read-only across every column they process.
//
// Stage 1 (Validate): ensure the matrix is non-nil.
// Stage 2 (Execute): reduce each contiguous row slice via floats.Min/Max.
// Complexity: O(r*c) time, O(r) memory.
func (m *Dense) RowExtrema() (min, max []float64, err error) {
	if err = validateNotNil(m); err != nil {
		return nil, nil, matrixErrorf("RowExtrema", err)
	}

	min = make([]float64, m.r)
	max = make([]float64, m.r)
	for d := 0; d < m.r; d++ {
		row := m.data[d*m.c : (d+1)*m.c]
		min[d] = floats.Min(row)
		max[d] = floats.Max(row)
	}

	return min, max, nil
}
