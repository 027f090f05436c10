// SPDX-License-Identifier: MIT
package labeled_test

import (
	"fmt"

	"github.com/aclements/go-gg/table"

	"github.com/jsuyu/CoDaTools/labeled"
	"github.com/jsuyu/CoDaTools/transform"
)

// ExampleTransform carries the cation column names into the clr names.
func ExampleTransform() {
	tab := new(table.Builder).
		Add("Ca", []float64{2, 1}).
		Add("Mg", []float64{1, 1}).
		Add("Na", []float64{1, 2}).
		Done()

	out, err := labeled.Transform(tab, []string{"Ca", "Mg", "Na"}, transform.CLR)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(out.Columns(), out.Len())
	// Output:
	// [clr(Ca) clr(Mg) clr(Na)] 2
}
