package matrix

import (
	"errors"
	"fmt"
)

// Sentinel errors for matrix operations. Validators return these bare so
// call sites can wrap them uniformly and callers can test with errors.Is.
var (
	// ErrNilMatrix indicates a nil *Dense where a matrix is required.
	ErrNilMatrix = errors.New("matrix: matrix must be non-nil")
	// ErrInvalidDimensions indicates requested dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")
	// ErrIndexOutOfBounds indicates a row or column index outside valid range.
	ErrIndexOutOfBounds = errors.New("matrix: index out of bounds")
	// ErrEmptyMatrix indicates input with no rows or no columns.
	ErrEmptyMatrix = errors.New("matrix: input must have at least one row and one column")
	// ErrNonRectangular indicates input rows of differing lengths.
	ErrNonRectangular = errors.New("matrix: all rows must have the same length")
)

// matrixErrorf wraps an underlying sentinel with operation context.
func matrixErrorf(op string, err error) error {
	return fmt.Errorf("matrix.%s: %w", op, err)
}

// validateNotNil ensures the matrix reference is non-nil.
// Returns ErrNilMatrix bare; callers wrap. Complexity: O(1).
func validateNotNil(m *Dense) error {
	if m == nil {
		return ErrNilMatrix
	}

	return nil
}

// validateRow checks 0 <= r < m.r. Complexity: O(1).
func (m *Dense) validateRow(r int) error {
	if r < 0 || r >= m.r {
		return ErrIndexOutOfBounds
	}

	return nil
}

// validateCol checks 0 <= c < m.c. Complexity: O(1).
func (m *Dense) validateCol(c int) error {
	if c < 0 || c >= m.c {
		return ErrIndexOutOfBounds
	}

	return nil
}
