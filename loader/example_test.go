// SPDX-License-Identifier: MIT
package loader_test

import (
	"fmt"

	"github.com/flarelab/flare/loader"
)

// ExampleFromArrays builds a series straight from in-memory records.
func ExampleFromArrays() {
	s, err := loader.FromArrays([][]int16{{1, 2, 3}, {4, 5, 6}})
	if err != nil {
		panic(err)
	}

	for _, v := range s.Values() {
		fmt.Println(v)
	}
	// Output:
	// [1 2 3]
	// [4 5 6]
}

// ExampleFromMatrices flattens each matrix into one record.
func ExampleFromMatrices() {
	s, err := loader.FromMatrices([][][]float64{
		{{1, 2}, {3, 4}},
		{{5, 6}, {7, 8}},
	})
	if err != nil {
		panic(err)
	}

	fmt.Println(s.Len())
	fmt.Println(s.Values()[0])
	// Output:
	// 2
	// [1 2 3 4]
}
