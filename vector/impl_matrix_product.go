// SPDX-License-Identifier: MIT

package vector

import (
	"github.com/katalvlaran/linalg/matrix"
	"gonum.org/v1/gonum/floats"
)

const opMatrixProduct = "MatrixProduct"

// MatrixProduct computes the row-vector product vM.
// For a length-n vector v and an n×m matrix M the result has length m with
//
//	out[j] = Σ_i v[i] * M[i][j].
//
// Implementation:
//   - Stage 1: ValidateRectangular(M).
//   - Stage 2: ValidateVecLen(v, Rows(M)).
//   - Stage 3: Columns(M) fixes the result length.
//   - Stage 4: out += v[i]·M[i] for i = 0..n-1 (one axpy per row, fixed order).
//
// Errors (ragged shape, then length, then zero rows):
//   - ErrInvalidShape       (ragged M).
//   - ErrDimensionMismatch  (len(v) != Rows(M); a zero-row M with non-empty v lands here).
//   - ErrInvalidShape       (M has zero rows and v is empty: the result length is undefined).
//
// Complexity:
//   - Time O(n*m), Space O(m).
//
// Notes:
//   - Equivalent to Transpose(M).VectorProduct(v) without materializing Mᵀ.
func MatrixProduct(v Vector, m matrix.Matrix) (Vector, error) {
	if err := matrix.ValidateRectangular(m); err != nil {
		return nil, vectorErrorf(opMatrixProduct, err)
	}
	if err := matrix.ValidateVecLen(v, m.Rows()); err != nil {
		return nil, vectorErrorf(opMatrixProduct, err)
	}
	cols, err := m.Columns()
	if err != nil {
		return nil, vectorErrorf(opMatrixProduct, err)
	}

	out := make(Vector, cols)
	for i, row := range m {
		floats.AddScaled(out, v[i], row) // out += v[i]*M[i]
	}

	return out, nil
}
