// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/length/finiteness checks here.
//  - Return sentinel errors tagged with the validator name so call sites can
//    wrap uniformly with their own operation tag.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing on success.
//
// Note:
//  - nil slices are treated as empty everywhere; a nil vector is a valid
//    length-0 vector, a nil matrix is a valid 0-row matrix.

package matrix

import (
	"fmt"
	"math"
)

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateRectangular ensures every row of m has the length of the first row.
//
// Inputs: Matrix value (nil or empty is accepted: there is nothing to compare).
// Returns: nil or wrapped ErrInvalidShape naming the first offending row.
// Complexity: O(r).
// AI-Hints: Call first in any kernel that indexes m[i][j] with j < Columns.
func ValidateRectangular(m Matrix) error {
	if len(m) == 0 {
		return nil
	}
	cols := len(m[0])
	for i := 1; i < len(m); i++ {
		if len(m[i]) != cols {
			return validatorErrorf(
				fmt.Sprintf("ValidateRectangular: row %d has %d columns, want %d", i, len(m[i]), cols),
				ErrInvalidShape,
			)
		}
	}

	return nil
}

// ValidateVecLen ensures the vector length matches the required size n.
// Time: O(1). Space: O(1).
func ValidateVecLen(x []float64, n int) error {
	if len(x) != n {
		return validatorErrorf(
			fmt.Sprintf("ValidateVecLen: len %d, want %d", len(x), n),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateSameLen ensures two vectors have identical lengths.
// Time: O(1). Space: O(1).
func ValidateSameLen(x, y []float64) error {
	if len(x) != len(y) {
		return validatorErrorf(
			fmt.Sprintf("ValidateSameLen: %d != %d", len(x), len(y)),
			ErrDimensionMismatch,
		)
	}

	return nil
}

// ValidateFinite checks values against the numeric policy in opts.
//
// Behavior highlights:
//   - Policy disabled: always nil.
//   - NaN: always rejected under validation.
//   - ±Inf: rejected unless opts.AllowInf().
//
// Complexity: O(n).
func ValidateFinite(values []float64, opts Options) error {
	if !opts.validateNaNInf {
		return nil
	}
	for i, v := range values {
		if math.IsNaN(v) || (!opts.allowInf && math.IsInf(v, 0)) {
			return validatorErrorf(fmt.Sprintf("ValidateFinite: index %d (%v)", i, v), ErrNaNInf)
		}
	}

	return nil
}
