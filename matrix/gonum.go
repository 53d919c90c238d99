package matrix

import "gonum.org/v1/gonum/mat"

// FromGonum copies a gonum matrix into a Dense. Callers already holding
// *mat.Dense (or any mat.Matrix) can feed it straight to the generator.
// Stage 1 (Validate): reject nil and zero-size input.
// Stage 2 (Execute): copy element by element in row-major order.
// Complexity: O(r*c) time and memory.
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf("FromGonum", ErrNilMatrix)
	}
	r, c := g.Dims()
	if r == 0 || c == 0 {
		return nil, matrixErrorf("FromGonum", ErrEmptyMatrix)
	}

	m := &Dense{r: r, c: c, data: make([]float64, r*c)}
	for i := 0; i < r; i++ {
		for j := 0; j < c; j++ {
			m.data[i*c+j] = g.At(i, j)
		}
	}

	return m, nil
}

// ToGonum returns the matrix as a freshly allocated *mat.Dense.
// The result shares no storage with the receiver.
// Complexity: O(r*c) time and memory.
func (m *Dense) ToGonum() *mat.Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return mat.NewDense(m.r, m.c, cp)
}
