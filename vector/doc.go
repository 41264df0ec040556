// Package vector implements elementwise and product operations on float64
// vectors.
//
// 🚀 What is a Vector here?
//
//	A Vector is []float64. It carries no row/column flag: orientation is
//	implied by the operation. MatrixProduct treats v as a row (vM);
//	matrix.Matrix.VectorProduct treats it as a column (Mv).
//
// ✨ Operations:
//   - Sum, Difference, Scale          — x+y, x−y, c·x
//   - Hadamard                        — elementwise product x⊙y
//   - Dot, Norm                       — scalar Σ x[i]·y[i], Euclidean length
//   - MatrixProduct                   — row vector times matrix
//   - Equal, AllClose                 — exact and tolerance comparison
//   - Row, Column                     — gonum mat.Matrix adapters
//
// A note on "dot product": the elementwise sequence x[i]·y[i] is the
// Hadamard product and is exposed under that name; Dot always returns the
// conventional scalar.
//
// Binary operations require equal lengths and fail with ErrDimensionMismatch
// otherwise. Inputs are never mutated; every result is freshly allocated.
package vector
