// SPDX-License-Identifier: MIT

// Package vector: the Vector type, constructor, formatting and gonum adapters.
package vector

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/katalvlaran/linalg/matrix"
	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

// Vector is an ordered sequence of float64 scalars.
// A nil Vector is a valid empty vector.
type Vector []float64

// Compile-time assertions for interface conformance.
var (
	_ fmt.Stringer = Vector(nil)
	_ mat.Matrix   = Row(nil)
	_ mat.Matrix   = Column(nil)
)

const opNewVector = "NewVector"

// NewVector copies values into a fresh Vector after applying the numeric
// policy (finite values only by default).
//
// Errors:
//   - ErrNaNInf (non-finite value under the active policy).
//
// Complexity: O(n).
func NewVector(values []float64, opts ...Option) (Vector, error) {
	if err := matrix.ValidateFinite(values, matrix.NewOptions(opts...)); err != nil {
		return nil, vectorErrorf(opNewVector, err)
	}

	return append(make(Vector, 0, len(values)), values...), nil
}

// Len returns the number of elements.
func (v Vector) Len() int { return len(v) }

// Clone returns an independent copy; nil clones to an empty, non-nil Vector.
func (v Vector) Clone() Vector {
	return append(make(Vector, 0, len(v)), v...)
}

// String implements fmt.Stringer as "[a, b, c]" with %g values.
func (v Vector) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, x := range v {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(strconv.FormatFloat(x, 'g', -1, 64))
	}
	sb.WriteByte(']')

	return sb.String()
}

// Row views a vector as a 1×n gonum matrix (no copy).
// At panics with mat.ErrIndexOutOfRange unless i == 0 and 0 <= j < n.
type Row []float64

// Column views a vector as an n×1 gonum matrix (no copy).
// At panics with mat.ErrIndexOutOfRange unless j == 0 and 0 <= i < n.
type Column []float64

// Dims reports 1×n.
func (r Row) Dims() (rows, cols int) { return 1, len(r) }

// At returns r[j] for the single row i == 0.
func (r Row) At(i, j int) float64 {
	if i != 0 || uint(j) >= uint(len(r)) {
		panic(mat.ErrIndexOutOfRange)
	}

	return r[j]
}

// T views the same storage as a Column.
func (r Row) T() mat.Matrix { return Column(r) }

// RawVector exposes the storage with unit stride for gonum fast paths.
func (r Row) RawVector() blas64.Vector { return unitStride(r) }

// Dims reports n×1.
func (c Column) Dims() (rows, cols int) { return len(c), 1 }

// At returns c[i] for the single column j == 0.
func (c Column) At(i, j int) float64 {
	if j != 0 || uint(i) >= uint(len(c)) {
		panic(mat.ErrIndexOutOfRange)
	}

	return c[i]
}

// T views the same storage as a Row.
func (c Column) T() mat.Matrix { return Row(c) }

// RawVector exposes the storage with unit stride for gonum fast paths.
func (c Column) RawVector() blas64.Vector { return unitStride(c) }

func unitStride(data []float64) blas64.Vector {
	return blas64.Vector{N: len(data), Data: data, Inc: 1}
}
