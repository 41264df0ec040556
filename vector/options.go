// SPDX-License-Identifier: MIT

package vector

import "github.com/katalvlaran/linalg/matrix"

// Option configures NewVector. It is the matrix package's option type, so a
// single policy value can be shared by matrix and vector constructors.
type Option = matrix.Option

// WithValidateNaNInf enables strict finite-value validation (default).
func WithValidateNaNInf() Option { return matrix.WithValidateNaNInf() }

// WithNoValidateNaNInf disables NaN/Inf validation.
func WithNoValidateNaNInf() Option { return matrix.WithNoValidateNaNInf() }

// WithAllowInf permits ±Inf under validation; NaN is still rejected.
func WithAllowInf() Option { return matrix.WithAllowInf() }
