// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid any logic duplication — each facade delegates to a canonical kernel.
//
// Determinism & Policy:
//   - Facades never change loop orders or numeric policy of the kernels.
//   - Validation is performed in the kernels; facades only compose or forward.

package matrix

// MatVec is the function form of Matrix.VectorProduct: y = m·x.
// Complexity: O(rc).
func MatVec(m Matrix, x []float64) ([]float64, error) { return m.VectorProduct(x) }

// ones returns an all-ones vector of length n.
func ones(n int) []float64 {
	out := make([]float64, n)
	for j := range out {
		out[j] = 1.0
	}

	return out
}

// RowSums returns vector r where r[i] = sum_j m[i][j].
// Implementation: MatVec(m, ones(cols)). No custom loops.
// Complexity: O(rc).
//
// Errors: ErrInvalidShape for ragged or zero-row m.
func RowSums(m Matrix) ([]float64, error) {
	cols, err := m.Columns()
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	rs, err := MatVec(m, ones(cols))
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}

	return rs, nil
}

// ColSums returns vector c where c[j] = sum_i m[i][j].
// Implementation: Transpose, then MatVec with ones(rows).
// Complexity: O(rc).
//
// Behavior highlights:
//   - An r×0 matrix has no columns to sum: the result is empty, not an error.
//
// Errors: ErrInvalidShape for ragged or zero-row m.
func ColSums(m Matrix) ([]float64, error) {
	if len(m) == 0 {
		return nil, matrixErrorf(opColSums, ErrInvalidShape)
	}
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opColSums, err)
	}
	if len(mt) == 0 { // r×0 input
		return []float64{}, nil
	}
	cs, err := MatVec(mt, ones(len(m)))
	if err != nil {
		return nil, matrixErrorf(opColSums, err)
	}

	return cs, nil
}
