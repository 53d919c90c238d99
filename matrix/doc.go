// Package matrix provides the dense numeric primitives the grid
// generator is built on.
//
// What:
//
//   - Dense wraps a rectangular float64 matrix in flat, row-major storage.
//   - Rows are dimensions; columns are candidate parameter vectors.
//   - RowExtrema reduces each row to its (min, max) pair across all
//     columns — the global envelope shared by every column.
//   - FromGonum / ToGonum bridge to gonum.org/v1/gonum/mat for callers
//     that already live in the gonum ecosystem.
//
// Why:
//
//   - Keeping the data structure separate from the algorithm keeps both
//     testable in isolation and lets Dense be reused outside grid.
//   - Flat row-major storage makes the per-row envelope reduction a pass
//     over contiguous memory.
//
// Complexity:
//
//   - NewDense / FromRows / Clone: O(r·c) time and memory.
//   - At / Set / Rows / Cols:       O(1).
//   - Row / Column:                 O(c) / O(r) (both return copies).
//   - RowExtrema:                   O(r·c), computed in one pass.
//
// Errors:
//
//   - ErrNilMatrix: a nil *Dense was passed where a matrix is required.
//   - ErrInvalidDimensions: requested dimensions are non-positive.
//   - ErrIndexOutOfBounds: a row or column index is outside valid range.
//   - ErrEmptyMatrix: input has no rows or no columns.
//   - ErrNonRectangular: input rows have differing lengths.
package matrix
