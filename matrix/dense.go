package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows (dimensions), c is columns (candidate vectors), and data
// holds r*c elements in row-major order. Dense is immutable by
// convention once handed to an algorithm: nothing in this module
// mutates a matrix it did not allocate.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// NewDense creates an r×c Dense matrix initialized to zeros.
// Stage 1 (Validate): ensure rows and cols > 0.
// Stage 2 (Prepare): allocate flat backing slice.
// Stage 3 (Finalize): return new Dense or ErrInvalidDimensions.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate dimensions
	if rows <= 0 || cols <= 0 {
		return nil, matrixErrorf("NewDense", ErrInvalidDimensions)
	}

	// Allocate flat slice and return
	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// FromRows builds a Dense from a slice of rows, copying every element.
// Stage 1 (Validate): reject empty input and ragged rows.
// Stage 2 (Execute): copy row by row into flat storage.
// Complexity: O(r*c) time and memory.
func FromRows(rows [][]float64) (*Dense, error) {
	// Reject empty input
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, matrixErrorf("FromRows", ErrEmptyMatrix)
	}
	cols := len(rows[0])
	// Reject ragged input
	for _, row := range rows {
		if len(row) != cols {
			return nil, matrixErrorf("FromRows", ErrNonRectangular)
		}
	}

	// Copy into flat row-major storage
	m := &Dense{r: len(rows), c: cols, data: make([]float64, len(rows)*cols)}
	for i, row := range rows {
		copy(m.data[i*cols:(i+1)*cols], row)
	}

	return m, nil
}

// FromColumn builds an R×1 Dense from a single column vector.
// Complexity: O(r) time and memory.
func FromColumn(col []float64) (*Dense, error) {
	if len(col) == 0 {
		return nil, matrixErrorf("FromColumn", ErrEmptyMatrix)
	}

	m := &Dense{r: len(col), c: 1, data: make([]float64, len(col))}
	copy(m.data, col)

	return m, nil
}

// FromRowVector builds a 1×K Dense from a single row vector: one
// dimension, len(v) candidate scalars. This is the normalization grid
// applies to rank-1 input — the vector spreads across columns, not rows.
// Complexity: O(c) time and memory.
func FromRowVector(v []float64) (*Dense, error) {
	if len(v) == 0 {
		return nil, matrixErrorf("FromRowVector", ErrEmptyMatrix)
	}

	m := &Dense{r: 1, c: len(v), data: make([]float64, len(v))}
	copy(m.data, v)

	return m, nil
}

// Rows returns the number of rows in the matrix. Complexity: O(1).
func (m *Dense) Rows() int {
	return m.r
}

// Cols returns the number of columns in the matrix. Complexity: O(1).
func (m *Dense) Cols() int {
	return m.c
}

// At retrieves the element at (row, col).
// Stage 1 (Validate): bounds check.
// Stage 2 (Execute): read from flat storage.
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	if err := m.validateRow(row); err != nil {
		return 0, matrixErrorf("At", err)
	}
	if err := m.validateCol(col); err != nil {
		return 0, matrixErrorf("At", err)
	}

	return m.data[row*m.c+col], nil
}

// Set assigns value v at (row, col).
// Stage 1 (Validate): bounds check.
// Stage 2 (Execute): write into flat storage.
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	if err := m.validateRow(row); err != nil {
		return matrixErrorf("Set", err)
	}
	if err := m.validateCol(col); err != nil {
		return matrixErrorf("Set", err)
	}
	m.data[row*m.c+col] = v

	return nil
}

// Row returns a copy of row d. The copy is safe to hold and mutate.
// Complexity: O(c) time and memory.
func (m *Dense) Row(d int) ([]float64, error) {
	if err := m.validateRow(d); err != nil {
		return nil, matrixErrorf("Row", err)
	}

	out := make([]float64, m.c)
	copy(out, m.data[d*m.c:(d+1)*m.c])

	return out, nil
}

// Column returns a copy of column k: the k-th candidate vector, one
// element per dimension. Complexity: O(r) time and memory.
func (m *Dense) Column(k int) ([]float64, error) {
	if err := m.validateCol(k); err != nil {
		return nil, matrixErrorf("Column", err)
	}

	out := make([]float64, m.r)
	for d := 0; d < m.r; d++ {
		out[d] = m.data[d*m.c+k]
	}

	return out, nil
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	for i := 0; i < m.r; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		for j := 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
	}

	return sb.String()
}
