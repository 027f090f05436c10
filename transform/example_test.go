// SPDX-License-Identifier: MIT
package transform_test

import (
	"fmt"

	"github.com/jsuyu/CoDaTools/matrix"
	"github.com/jsuyu/CoDaTools/transform"
)

// //////////////////////////////////////////////////////////////////////////////
// ExampleCLR
// //////////////////////////////////////////////////////////////////////////////
//
// Scenario:
//
//	One composition x = (1, 2, 8). The centered log-ratio subtracts the mean
//	log from every log part; the inverse recovers the closed composition.
//
// Complexity: O(n·D)
func ExampleCLR() {
	X, _ := matrix.NewDenseFrom([][]float64{{1, 2, 8}})

	c, err := transform.CLR(X)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Names)
	fmt.Printf("%.4f\n", c.Values.RawRows()[0])

	back, _ := transform.InvCLR(c.Values)
	fmt.Printf("%.4f\n", back.RawRows()[0])
	// Output:
	// [clr(x1) clr(x2) clr(x3)]
	// [-0.9242 -0.2310 1.1552]
	// [0.0909 0.1818 0.7273]
}

// ExampleALR uses the last part as the common denominator.
func ExampleALR() {
	X, _ := matrix.NewDenseFrom([][]float64{{1, 2, 8}})

	c, err := transform.ALR(X, 3)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(c.Names)
	fmt.Printf("%.4f\n", c.Values.RawRows()[0])
	// Output:
	// [log(x1/x3) log(x2/x3)]
	// [-2.0794 -1.3863]
}
