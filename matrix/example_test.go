// SPDX-License-Identifier: MIT

package matrix_test

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
)

// ExampleMatrix_VectorProduct builds a validated 2×3 matrix, prints its shape
// and applies it to a column vector.
func ExampleMatrix_VectorProduct() {
	M, err := matrix.NewMatrix([][]float64{
		{2, 4, -3},
		{21, -6, -1},
	})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	cols, _ := M.Columns()
	fmt.Printf("the shape of M is %d X %d\n", M.Rows(), cols)
	fmt.Print("M is\n", M)

	Mv, err := M.VectorProduct([]float64{2, 4, -3})
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Println("Mv is", Mv)
	// Output:
	// the shape of M is 2 X 3
	// M is
	// [2, 4, -3]
	// [21, -6, -1]
	// Mv is [29 21]
}

// ExampleMatrix_VectorProduct_mismatch shows how a shape violation surfaces.
func ExampleMatrix_VectorProduct_mismatch() {
	M := matrix.Matrix{{1, 2}, {3, 4}}
	_, err := M.VectorProduct([]float64{1, 2, 3})
	fmt.Println(errors.Is(err, matrix.ErrDimensionMismatch))
	fmt.Println(err)
	// Output:
	// true
	// VectorProduct: ValidateVecLen: len 3, want 2: matrix: dimension mismatch
}

// ExampleTranspose shows Mᵀ for a non-square matrix.
func ExampleTranspose() {
	T, _ := matrix.Transpose(matrix.Matrix{{1, 2, 3}, {4, 5, 6}})
	fmt.Print(T)
	// Output:
	// [1, 4]
	// [2, 5]
	// [3, 6]
}
