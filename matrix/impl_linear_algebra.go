// SPDX-License-Identifier: MIT
// Package matrix provides the arithmetic kernels on Matrix: the
// matrix-vector product and transpose. All functions perform strict
// fail-fast validation and return clear errors on shape violations.
//
// Purpose:
//   - Declare operation tags and shared constants for error reporting.
//   - Keep kernels pure: inputs are read-only, one fresh result per call.
//
// Notes:
//   - All kernels use central validators (validators.go) and wrap failures
//     via matrixErrorf with their operation tag.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opColumns       = "Columns"
	opShape         = "Shape"
	opNewMatrix     = "NewMatrix"
	opZeros         = "Zeros"
	opIdentity      = "Identity"
	opVectorProduct = "VectorProduct"
	opTranspose     = "Transpose"
	opDense         = "Dense"
	opRowSums       = "RowSums"
	opColSums       = "ColSums"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// The wrapper keeps a stable "Op: underlying" shape for uniform reporting.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
//
// Complexity:
//   - Time O(1), Space O(1).
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// VectorProduct computes y = M·v for a column vector v.
// For an n×m matrix and a length-m vector the result has length n with
//
//	y[i] = Σ_j M[i][j] * v[j].
//
// Implementation:
//   - Stage 1: ValidateRectangular(M); Columns(M) (fails on zero rows).
//   - Stage 2: ValidateVecLen(v, Columns(M)).
//   - Stage 3: one dot product per row, fixed i order.
//
// Errors:
//   - ErrInvalidShape       (ragged M, or M has zero rows).
//   - ErrDimensionMismatch  (len(v) != Columns(M)).
//
// Determinism:
//   - Fixed i→j accumulation order; results are stable across runs.
//
// Complexity:
//   - Time O(r*c), Space O(r) for y.
//
// AI-Hints:
//   - For the row-vector form vM use vector.MatrixProduct.
func (m Matrix) VectorProduct(v []float64) ([]float64, error) {
	if err := ValidateRectangular(m); err != nil {
		return nil, matrixErrorf(opVectorProduct, err)
	}
	cols, err := m.Columns()
	if err != nil {
		return nil, matrixErrorf(opVectorProduct, err)
	}
	if err = ValidateVecLen(v, cols); err != nil {
		return nil, matrixErrorf(opVectorProduct, err)
	}

	y := make([]float64, len(m)) // allocate exactly rows outputs
	for i, row := range m {
		y[i] = floats.Dot(row, v) // Σ_j M[i][j]*v[j]
	}

	return y, nil
}

// Transpose returns Mᵀ as a fresh Matrix.
// A zero-row input yields an empty matrix; so does an r×0 input.
//
// Errors:
//   - ErrInvalidShape (ragged M).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Transpose(m Matrix) (Matrix, error) {
	if err := ValidateRectangular(m); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if len(m) == 0 {
		return Matrix{}, nil
	}

	rows, cols := len(m), len(m[0])
	t := newBacked(cols, rows)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			t[j][i] = m[i][j]
		}
	}

	return t, nil
}
