// Package matrix provides a rectangular, row-major float64 matrix and the
// operations that act on it.
//
// 🚀 What is a Matrix here?
//
//	A Matrix is simply [][]float64: an ordered sequence of rows, all of the
//	same length. Literals are convenient, but the type itself cannot stop a
//	ragged literal, so:
//	  • NewMatrix deep-copies and validates input (rectangular, finite).
//	  • Every operation re-checks rectangularity and reports ErrInvalidShape
//	    instead of indexing a short row.
//
// ✨ Operations:
//   - Rows / Columns / Shape — shape queries (Columns of a 0-row matrix fails)
//   - VectorProduct (MatVec)  — y = M·v, len(v) must equal Columns(M)
//   - Transpose (T)           — Mᵀ as a fresh Matrix
//   - Zeros / Identity / Clone
//   - Dims / At / T / Dense / FromDense — gonum mat.Matrix interop
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linalg/matrix"
//
//	M, err := matrix.NewMatrix([][]float64{
//	  {2, 4, -3},
//	  {21, -6, -1},
//	})
//	if err != nil {
//	  // ErrInvalidShape (ragged) or ErrNaNInf (non-finite under default policy)
//	}
//	y, err := M.VectorProduct([]float64{2, 4, -3}) // [29 21]
//
// Errors are package sentinels wrapped with the operation name, so match
// them with errors.Is, never by string.
//
// Performance:
//
//   - VectorProduct: O(r·c) time, O(r) memory
//   - Transpose:     O(r·c) time and memory
package matrix
