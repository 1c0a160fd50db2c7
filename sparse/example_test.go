package sparse_test

import (
	"errors"
	"fmt"

	"github.com/hodsonus/sparse-matrix-add-multiply/sparse"
)

// ExampleGrid_Render shows the reading-order projection of
//
//	3 0 1
//	0 2 0
//	0 0 4
func ExampleGrid_Render() {
	g, _ := sparse.New(3, 3)
	_ = g.Set(0, 0, 3)
	_ = g.Set(2, 2, 4) // insertion order does not matter
	_ = g.Set(1, 1, 2)
	_ = g.Set(0, 2, 1)

	fmt.Print(g.Render())
	// Output:
	// 0 0 3
	// 0 2 1
	// 1 1 2
	// 2 2 4
}

// ExampleMul multiplies the identity by B.
func ExampleMul() {
	a, _ := sparse.FromDense([][]int{{1, 0}, {0, 1}})
	b, _ := sparse.FromDense([][]int{{5, 6}, {7, 8}})

	p, err := sparse.Mul(a, b)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Print(p)
	// Output:
	// 0 0 5
	// 0 1 6
	// 1 0 7
	// 1 1 8
}

// ExampleAdd_dimensionMismatch shows the recoverable shape failure.
func ExampleAdd_dimensionMismatch() {
	a, _ := sparse.New(2, 2)
	b, _ := sparse.New(2, 3)

	_, err := sparse.Add(a, b)
	fmt.Println(errors.Is(err, sparse.ErrDimensionMismatch))
	// Output:
	// true
}
