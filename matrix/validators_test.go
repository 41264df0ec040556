// SPDX-License-Identifier: MIT

package matrix_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/stretchr/testify/require"
)

func TestValidateRectangular(t *testing.T) {
	t.Parallel()
	require.NoError(t, matrix.ValidateRectangular(nil))
	require.NoError(t, matrix.ValidateRectangular(matrix.Matrix{{1, 2}, {3, 4}}))
	require.NoError(t, matrix.ValidateRectangular(matrix.Matrix{{}, {}}))
	require.ErrorIs(t, matrix.ValidateRectangular(matrix.Matrix{{1, 2}, {3, 4}, {5}}), matrix.ErrInvalidShape)
}

func TestValidateVecLen(t *testing.T) {
	t.Parallel()
	require.NoError(t, matrix.ValidateVecLen([]float64{1, 2}, 2))
	require.NoError(t, matrix.ValidateVecLen(nil, 0), "nil is an empty vector")
	require.ErrorIs(t, matrix.ValidateVecLen([]float64{1}, 2), matrix.ErrDimensionMismatch)
}

func TestValidateSameLen(t *testing.T) {
	t.Parallel()
	require.NoError(t, matrix.ValidateSameLen(nil, []float64{}))
	require.ErrorIs(t, matrix.ValidateSameLen([]float64{1, 2}, []float64{1, 2, 3}), matrix.ErrDimensionMismatch)
}

func TestValidateFinite(t *testing.T) {
	t.Parallel()
	strict := matrix.NewOptions()
	relaxed := matrix.NewOptions(matrix.WithNoValidateNaNInf())
	infOK := matrix.NewOptions(matrix.WithAllowInf())

	require.NoError(t, matrix.ValidateFinite([]float64{1, -2, 0}, strict))
	require.ErrorIs(t, matrix.ValidateFinite([]float64{1, math.Inf(1)}, strict), matrix.ErrNaNInf)
	require.ErrorIs(t, matrix.ValidateFinite([]float64{math.NaN()}, strict), matrix.ErrNaNInf)
	require.NoError(t, matrix.ValidateFinite([]float64{math.NaN(), math.Inf(-1)}, relaxed))
	require.NoError(t, matrix.ValidateFinite([]float64{math.Inf(-1)}, infOK))
	require.ErrorIs(t, matrix.ValidateFinite([]float64{math.NaN()}, infOK), matrix.ErrNaNInf)
}
