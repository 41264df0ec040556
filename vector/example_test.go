// SPDX-License-Identifier: MIT

package vector_test

import (
	"fmt"

	"github.com/katalvlaran/linalg/matrix"
	"github.com/katalvlaran/linalg/vector"
)

// Example walks every vector operation over one pair of equal-length vectors
// and a 2×3 matrix.
func Example() {
	v := vector.Vector{2, 4, -3}
	w := vector.Vector{21, -6, -1}
	u := vector.Vector{21, -6}
	c := 10.0
	M := matrix.Matrix{{2, 4, -3}, {21, -6, -1}}

	sum, _ := vector.Sum(v, w)
	diff, _ := vector.Difference(v, w)
	had, _ := vector.Hadamard(v, w)
	dot, _ := vector.Dot(v, w)
	Mv, _ := M.VectorProduct(v)
	uM, _ := vector.MatrixProduct(u, M)

	fmt.Println("v is", v)
	fmt.Println("w is", w)
	fmt.Println("v + w is", sum)
	fmt.Println("v - w is", diff)
	fmt.Printf("c is %g and cv is %v\n", c, vector.Scale(v, c))
	fmt.Println("v ⊙ w is", had)
	fmt.Println("v • w is", dot)
	fmt.Println("Mv is", vector.Vector(Mv))
	fmt.Println("uM is", uM)
	// Output:
	// v is [2, 4, -3]
	// w is [21, -6, -1]
	// v + w is [23, -2, -4]
	// v - w is [-19, 10, -2]
	// c is 10 and cv is [20, 40, -30]
	// v ⊙ w is [42, -24, 3]
	// v • w is 21
	// Mv is [29, 21]
	// uM is [-84, 120, -57]
}
