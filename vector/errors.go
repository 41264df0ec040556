// SPDX-License-Identifier: MIT
// Package vector: sentinel errors.
// The sentinels are shared with package matrix so that errors.Is matches
// regardless of which package detected the violation (e.g. MatrixProduct
// reports matrix shape problems through the same values).

package vector

import "github.com/katalvlaran/linalg/matrix"

var (
	// ErrDimensionMismatch indicates operands of incompatible lengths.
	ErrDimensionMismatch = matrix.ErrDimensionMismatch

	// ErrInvalidShape indicates a matrix operand whose shape cannot be used
	// (ragged, or zero rows where a column count is required).
	ErrInvalidShape = matrix.ErrInvalidShape

	// ErrNaNInf signals a non-finite value rejected by the numeric policy.
	ErrNaNInf = matrix.ErrNaNInf
)
