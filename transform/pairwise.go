// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	codatools "github.com/jsuyu/CoDaTools"
	"github.com/jsuyu/CoDaTools/basis"
	"github.com/jsuyu/CoDaTools/matrix"
)

const opPLR = "PLR"

// PLR returns every pairwise log-ratio log(x_i/x_j), i<j, as log X · H with
// H = basis.PairwiseMatrix(D). Columns follow the lexicographic pair order.
func PLR(X matrix.Matrix, opts ...codatools.Option) (Coordinates, error) {
	o, d, err := prepare(opPLR, X, opts)
	if err != nil {
		return Coordinates{}, err
	}
	D := d.Cols()
	H, err := basis.PairwiseMatrix(D)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%s: %w", opPLR, err)
	}
	L, err := logOf(opPLR, d)
	if err != nil {
		return Coordinates{}, err
	}
	Y, err := matrix.Mul(L, H)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%s: %w", opPLR, err)
	}

	names := o.PartNames(D)
	cols := make([]string, 0, basis.PairCount(D))
	for _, pr := range basis.Pairs(D) {
		cols = append(cols, ratioName(names[pr[0]], names[pr[1]]))
	}

	return Coordinates{Values: Y, Names: cols}, nil
}
