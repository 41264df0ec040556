// SPDX-License-Identifier: MIT
// Package vector - elementwise kernels.
//
// Purpose:
//   - Sum / Difference / Scale / Hadamard produce a fresh vector per call.
//   - Dot / Norm reduce to a scalar.
//   - Equal / AllClose compare vectors exactly or within tolerance.
//
// Determinism:
//   - Fixed 0..n-1 traversal; no data-dependent branching in the arithmetic.
//
// Notes:
//   - Length checks run before any gonum/floats call: floats panics on
//     mismatched lengths, and panics are not part of this package's surface.

package vector

import (
	"fmt"
	"math"

	"github.com/katalvlaran/linalg/matrix"
	"gonum.org/v1/gonum/floats"
)

// Operation name constants for unified error wrapping.
const (
	opSum        = "Sum"
	opDifference = "Difference"
	opHadamard   = "Hadamard"
	opDot        = "Dot"
	opAllClose   = "AllClose"
)

// vectorErrorf wraps err with an operation tag, preserving the sentinel via %w.
func vectorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Sum returns x + y elementwise: out[i] = x[i] + y[i].
//
// Errors:
//   - ErrDimensionMismatch (len(x) != len(y)).
//
// Complexity: Time O(n), Space O(n).
func Sum(x, y Vector) (Vector, error) {
	if err := matrix.ValidateSameLen(x, y); err != nil {
		return nil, vectorErrorf(opSum, err)
	}

	return floats.AddTo(make(Vector, len(x)), x, y), nil
}

// Difference returns x − y elementwise: out[i] = x[i] − y[i].
//
// Errors:
//   - ErrDimensionMismatch (len(x) != len(y)).
//
// Complexity: Time O(n), Space O(n).
func Difference(x, y Vector) (Vector, error) {
	if err := matrix.ValidateSameLen(x, y); err != nil {
		return nil, vectorErrorf(opDifference, err)
	}

	return floats.SubTo(make(Vector, len(x)), x, y), nil
}

// Scale returns c·x. Unary, so it cannot fail.
// Scale(x, 0) is an explicit zero vector of the same length.
func Scale(x Vector, c float64) Vector {
	return floats.ScaleTo(make(Vector, len(x)), c, x)
}

// Hadamard returns the elementwise product: out[i] = x[i] * y[i].
// This is NOT the dot product; see Dot for the scalar Σ x[i]*y[i].
//
// Errors:
//   - ErrDimensionMismatch (len(x) != len(y)).
//
// Complexity: Time O(n), Space O(n).
func Hadamard(x, y Vector) (Vector, error) {
	if err := matrix.ValidateSameLen(x, y); err != nil {
		return nil, vectorErrorf(opHadamard, err)
	}

	return floats.MulTo(make(Vector, len(x)), x, y), nil
}

// Dot returns the scalar product Σ x[i]*y[i]. Two empty vectors give 0.
//
// Errors:
//   - ErrDimensionMismatch (len(x) != len(y)).
func Dot(x, y Vector) (float64, error) {
	if err := matrix.ValidateSameLen(x, y); err != nil {
		return 0, vectorErrorf(opDot, err)
	}

	return floats.Dot(x, y), nil
}

// Norm returns the Euclidean length √(Σ x[i]²); 0 for an empty vector.
func Norm(x Vector) float64 {
	if len(x) == 0 {
		return 0
	}

	return floats.Norm(x, 2)
}

// Equal reports whether x and y have the same length and identical elements.
// NaN is never equal to anything, itself included.
func Equal(x, y Vector) bool {
	return floats.Equal(x, y)
}

// AllClose checks elementwise |x-y| ≤ atol + rtol*|y| for equal lengths.
// Returns (true,nil) if all elements satisfy the relation; (false,nil) otherwise.
//
// Policy:
//   - rtol, atol are treated as |rtol|, |atol| (negative values are normalized).
//   - NaN tolerances, or infinite ones, fail with ErrNaNInf.
//   - NaN != anything; +Inf equals +Inf; -Inf equals -Inf.
//
// Errors:
//   - ErrDimensionMismatch (len(x) != len(y)).
//
// Time: O(n). Space: O(1). Deterministic.
func AllClose(x, y Vector, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, vectorErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)

	if err := matrix.ValidateSameLen(x, y); err != nil {
		return false, vectorErrorf(opAllClose, err)
	}

	for i := range x {
		a, b := x[i], y[i]
		switch {
		case math.IsNaN(a) || math.IsNaN(b):
			return false, nil
		case math.IsInf(a, 0) || math.IsInf(b, 0):
			if a != b {
				return false, nil
			}
		case math.Abs(a-b) > atol+rtol*math.Abs(b):
			return false, nil // early-exit on first violation
		}
	}

	return true, nil
}
