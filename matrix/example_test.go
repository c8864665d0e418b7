package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/squarematrix/matrix"
)

// ExampleDeterminant expands a 3×3 matrix along its first row.
func ExampleDeterminant() {
	m := matrix.MustFromFlat(6, 1, 1, 4, -2, 5, 2, 8, 7)
	d, _ := matrix.Determinant(m)
	fmt.Println(d)
	// Output:
	// -306
}

// ExampleAdd shows the operator-style arithmetic and the sum-based ordering.
func ExampleAdd() {
	a := matrix.MustFromFlat(1, 2, 3, 4)
	b := matrix.MustFromFlat(4, 3, 2, 1)

	sum, _ := matrix.Add(a, b)
	fmt.Print(sum)
	fmt.Println(matrix.Equal(a, b), matrix.Less(a, sum))
	// Output:
	//   5  5
	//   5  5
	// true true
}

// ExampleSquareMatrix_Apply passes an operation around as a value.
func ExampleSquareMatrix_Apply() {
	m := matrix.MustFromFlat(1, 2, 3, 4, 5, 6, 7, 8, 9)
	op, _ := matrix.UnaryOpFor(matrix.TokenDiagonalize)
	d, _ := m.Apply(op)
	fmt.Print(d)
	// Output:
	//   1  0  0
	//   0  5  0
	//   0  0  9
}
