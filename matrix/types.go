// SPDX-License-Identifier: MIT

// Package matrix: the Matrix type and its shape queries.
// Arithmetic lives in impl_linear_algebra.go, construction in impl_builder.go,
// formatting and gonum interop in impl_dense.go.
package matrix

import "fmt"

// Matrix is an ordered sequence of rows, each an ordered sequence of float64.
// All rows must share one length (rectangular). The type does not enforce
// this for literals; NewMatrix does, and every operation re-validates.
//
// A Matrix is a value with no identity beyond its contents. Operations never
// mutate their receiver or arguments.
type Matrix [][]float64

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = Matrix(nil)

// Rows returns the number of rows in the matrix.
// Always defined; 0 for a nil or empty matrix.
// Complexity: O(1).
func (m Matrix) Rows() int {
	return len(m)
}

// Columns returns the length of the first row.
//
// Errors:
//   - ErrInvalidShape when the matrix has zero rows: there is no row to measure.
//
// Notes:
//   - Columns does not scan the remaining rows; use Shape when rectangularity
//     must be confirmed as well.
//
// Complexity: O(1).
func (m Matrix) Columns() (int, error) {
	if len(m) == 0 {
		return 0, matrixErrorf(opColumns, ErrInvalidShape)
	}

	return len(m[0]), nil
}

// Shape returns (rows, cols) after validating that m is rectangular.
// Errors: ErrInvalidShape for zero rows or ragged rows.
// Complexity: O(r).
func (m Matrix) Shape() (rows, cols int, err error) {
	if err = ValidateRectangular(m); err != nil {
		return 0, 0, matrixErrorf(opShape, err)
	}
	if cols, err = m.Columns(); err != nil {
		return 0, 0, matrixErrorf(opShape, err)
	}

	return len(m), cols, nil
}

// Clone returns a deep copy of m; rows of the copy share no storage with m.
// A nil matrix clones to an empty, non-nil Matrix.
// Complexity: O(r*c) time and memory.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = append(make([]float64, 0, len(row)), row...)
	}

	return out
}
