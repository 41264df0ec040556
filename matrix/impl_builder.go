// SPDX-License-Identifier: MIT

// Package matrix - validating constructors.
//
// Purpose:
//   - Give callers one place to turn literal [][]float64 data into a Matrix
//     that is known to be rectangular and (by default) finite.
//   - Allocate rows from a single contiguous buffer (row-major), each row
//     capacity-clipped so an append on one row can never bleed into the next.
//
// Complexity quicksheet:
//   - NewMatrix: O(r*c); Zeros: O(r*c); Identity: O(n^2).
package matrix

import "fmt"

// newBacked allocates an r×c zero Matrix whose rows view one flat buffer.
// Callers guarantee rows, cols >= 0.
func newBacked(rows, cols int) Matrix {
	data := make([]float64, rows*cols)
	m := make(Matrix, rows)
	for i := range m {
		m[i] = data[i*cols : (i+1)*cols : (i+1)*cols]
	}

	return m
}

// NewMatrix builds a Matrix from literal rows.
// MAIN DESCRIPTION:
//   - Deep-copies rows into fresh storage after validating shape and values.
//
// Implementation:
//   - Stage 1: resolve options (numeric policy).
//   - Stage 2: ValidateRectangular(rows); ragged input is rejected.
//   - Stage 3: ValidateFinite per row under the policy.
//   - Stage 4: copy into a contiguous row-major buffer.
//
// Behavior highlights:
//   - Zero rows is legal (Rows()==0); Columns() on it reports ErrInvalidShape.
//   - The result never aliases the input.
//
// Errors:
//   - ErrInvalidShape (ragged rows).
//   - ErrNaNInf       (non-finite value under the default policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewMatrix(rows [][]float64, opts ...Option) (Matrix, error) {
	o := gatherOptions(opts...)

	if err := ValidateRectangular(rows); err != nil {
		return nil, matrixErrorf(opNewMatrix, err)
	}
	for i, row := range rows {
		if err := ValidateFinite(row, o); err != nil {
			return nil, matrixErrorf(opNewMatrix, fmt.Errorf("row %d: %w", i, err))
		}
	}

	cols := 0
	if len(rows) > 0 {
		cols = len(rows[0])
	}
	m := newBacked(len(rows), cols)
	for i, row := range rows {
		copy(m[i], row)
	}

	return m, nil
}

// Zeros returns a rows×cols matrix of zeros.
// Zero-sized shapes are legal; negative sizes fail with ErrInvalidShape.
// Complexity: O(r*c).
func Zeros(rows, cols int) (Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, matrixErrorf(opZeros, ErrInvalidShape)
	}

	return newBacked(rows, cols), nil
}

// Identity returns I_n (ones on the diagonal, zeros elsewhere).
// Determinism: fixed i-loop; single write per diagonal cell.
// Complexity: O(n^2).
func Identity(n int) (Matrix, error) {
	I, err := Zeros(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I[i][i] = 1.0
	}

	return I, nil
}
