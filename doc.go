// Package linalg is a small, dependable toolbox for dense vector and matrix
// arithmetic over float64.
//
// 🚀 What is linalg?
//
//	Two focused packages with pure, allocation-per-call functions:
//		• matrix/ — rectangular row-major matrices, shape queries,
//		  matrix-vector product (Mv) and transpose
//		• vector/ — elementwise sum, difference, scale, Hadamard product,
//		  scalar dot product and vector-matrix product (vM)
//
// ✨ Why linalg?
//
//   - Explicit errors – every shape violation is a sentinel you can match
//     with errors.Is (ErrDimensionMismatch, ErrInvalidShape, ErrNaNInf)
//   - No hidden mutation – inputs are read-only, results are fresh slices
//   - gonum interop – matrix.Matrix and vector.Row/Column satisfy mat.Matrix
//
// Quick example:
//
//	M, _ := matrix.NewMatrix([][]float64{{2, 4, -3}, {21, -6, -1}})
//	Mv, _ := M.VectorProduct([]float64{2, 4, -3}) // [29 21]
//	uM, _ := vector.MatrixProduct(vector.Vector{21, -6}, M) // [-84 120 -57]
//
//	go get github.com/katalvlaran/linalg
package linalg
