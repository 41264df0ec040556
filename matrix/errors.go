// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// and vector packages. All operations MUST return these sentinels (optionally
// wrapped with an operation tag) and tests MUST check them via errors.Is.
// No operation panics on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap with matrixErrorf(op, ErrX), which
// keeps the sentinel reachable through errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// shape (ragged/empty) -> dimension mismatch -> numeric policy (NaN/Inf).

var (
	// ErrDimensionMismatch indicates incompatible sizes between operands,
	// e.g. len(v) != Columns(M) in VectorProduct, or unequal vector lengths.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrInvalidShape is returned when a shape cannot be determined or is
	// structurally invalid: Columns of a zero-row matrix, ragged rows,
	// negative requested dimensions.
	ErrInvalidShape = errors.New("matrix: invalid shape")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (NewMatrix, NewVector).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)
