// SPDX-License-Identifier: MIT

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestString(t *testing.T) {
	t.Parallel()
	M := MustMatrix(t, [][]float64{{2, 4.5, -3}, {21, -6, -1}})
	assert.Equal(t, "[2, 4.5, -3]\n[21, -6, -1]\n", M.String())
	assert.Equal(t, "", matrix.Matrix{}.String())
}

func TestGonum_DimsAtT(t *testing.T) {
	t.Parallel()
	M := MustMatrix(t, sample)

	r, c := M.Dims()
	assert.Equal(t, 2, r)
	assert.Equal(t, 3, c)
	assert.Equal(t, -6.0, M.At(1, 1))

	tr, tc := M.T().Dims()
	assert.Equal(t, 3, tr)
	assert.Equal(t, 2, tc)
	assert.Equal(t, -3.0, M.T().At(2, 0))

	r, c = matrix.Matrix{}.Dims()
	assert.Zero(t, r+c)
}

func TestGonum_DenseRoundTrip(t *testing.T) {
	t.Parallel()
	M := MustMatrix(t, sample)

	D, err := M.Dense()
	require.NoError(t, err)
	assert.True(t, mat.Equal(D, M))

	// Mutating the gonum copy leaves M untouched.
	D.Set(0, 0, 100)
	assert.Equal(t, 2.0, M[0][0])

	back := matrix.FromDense(D)
	assert.Equal(t, 100.0, back[0][0])
	assert.Equal(t, M[1], back[1])

	// FromDense accepts implicit transposes too.
	T := matrix.FromDense(M.T())
	want, err := matrix.Transpose(M)
	require.NoError(t, err)
	assert.Equal(t, want, T)
}

func TestGonum_DenseErrors(t *testing.T) {
	t.Parallel()
	_, err := matrix.Matrix{}.Dense()
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	Z, err := matrix.Zeros(2, 0)
	require.NoError(t, err)
	_, err = Z.Dense()
	require.ErrorIs(t, err, matrix.ErrInvalidShape)

	_, err = matrix.Matrix{{1, 2}, {3}}.Dense()
	require.ErrorIs(t, err, matrix.ErrInvalidShape)
}
