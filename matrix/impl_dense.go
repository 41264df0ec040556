// SPDX-License-Identifier: MIT

// Package matrix - formatting & gonum interop.
//
// Purpose:
//   - Render matrices for humans (String) with a stable "[a, b]\n" layout.
//   - Let a Matrix flow into gonum.org/v1/gonum/mat without copying: Matrix
//     satisfies mat.Matrix via Dims/At/T.
//   - Convert to and from *mat.Dense when a caller wants gonum storage.
//
// Notes:
//   - At follows the gonum contract and panics on out-of-range indices; it is
//     an interop hook, not a safe accessor. Index the slices directly instead.
package matrix

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/mat"
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Compile-time assertion: Matrix is usable wherever gonum expects a mat.Matrix.
var _ mat.Matrix = Matrix(nil)

// String implements fmt.Stringer: one "[a, b, c]" line per row, %g values.
// Complexity: O(r*c).
func (m Matrix) String() string {
	var sb strings.Builder
	for _, row := range m {
		sb.WriteString(_fmtRowOpen)
		for j, v := range row {
			if j > 0 {
				sb.WriteString(_fmtSep)
			}
			sb.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
		}
		sb.WriteString(_fmtRowClose)
	}

	return sb.String()
}

// Dims returns (rows, cols) per mat.Matrix; cols is the first row's length
// (0 for an empty matrix).
func (m Matrix) Dims() (r, c int) {
	if len(m) == 0 {
		return 0, 0
	}

	return len(m), len(m[0])
}

// At returns m[i][j] per mat.Matrix.
func (m Matrix) At(i, j int) float64 { return m[i][j] }

// T returns an implicit transpose per mat.Matrix (no copy).
func (m Matrix) T() mat.Matrix { return mat.Transpose{Matrix: m} }

// Dense copies m into a freshly allocated *mat.Dense.
//
// Errors:
//   - ErrInvalidShape (ragged, zero rows, or zero columns: gonum has no
//     representation for empty dense matrices).
//
// Complexity: O(r*c).
func (m Matrix) Dense() (*mat.Dense, error) {
	rows, cols, err := m.Shape()
	if err != nil {
		return nil, matrixErrorf(opDense, err)
	}
	if cols == 0 {
		return nil, matrixErrorf(opDense, ErrInvalidShape)
	}

	data := make([]float64, 0, rows*cols)
	for _, row := range m {
		data = append(data, row...)
	}

	return mat.NewDense(rows, cols, data), nil
}

// FromDense copies any gonum mat.Matrix into a fresh Matrix.
// Complexity: O(r*c).
func FromDense(a mat.Matrix) Matrix {
	rows, cols := a.Dims()
	out := newBacked(rows, cols)
	var i, j int
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			out[i][j] = a.At(i, j)
		}
	}

	return out
}
