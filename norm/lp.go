// SPDX-License-Identifier: MIT

package norm

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	codatools "github.com/jsuyu/CoDaTools"
	"github.com/jsuyu/CoDaTools/internal/rowpool"
	"github.com/jsuyu/CoDaTools/matrix"
	"github.com/jsuyu/CoDaTools/transform"
)

const opLp = "LpCoDa"

// LpCoDa returns min over λ of ‖clr(x) + λ·1‖_p for every row, with p taken
// from codatools.WithP (default 2, where it equals the Aitchison norm).
// Each row is solved on λ ∈ [−L, L], L = max|clr(x)|, which always contains
// the optimum; WithMaxIter and WithXTol bound the search.
//
// Errors:
//   - ErrInvalidParameter for p < 1 or another bad option.
//   - ErrInvalidDimension / ErrNonPositiveInput as for Aitchison.
//   - ErrNotConverged when a row exhausts the iteration budget.
func LpCoDa(X matrix.Matrix, opts ...codatools.Option) ([]float64, error) {
	o, err := codatools.Resolve(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLp, err)
	}
	c, err := transform.CLR(X, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opLp, err)
	}
	log := o.Logger("norm")
	p := o.P()

	n, D := c.Values.Rows(), c.Values.Cols()
	out := make([]float64, n)
	iters := make([]int, n)
	err = rowpool.ForEach(n, o.Workers(), func(i int) error {
		z, err := c.Values.Row(i)
		if err != nil {
			return fmt.Errorf("%s: %w", opLp, err)
		}
		bound := floats.Norm(z, math.Inf(1))
		if bound == 0 {
			return nil
		}
		shifted := make([]float64, D)
		f := func(lambda float64) float64 {
			for j, v := range z {
				shifted[j] = v + lambda
			}
			return floats.Norm(shifted, p)
		}
		_, fx, k, ok := minimizeBounded(f, -bound, bound, o.XTol(), o.MaxIter())
		iters[i] = k
		if !ok {
			return fmt.Errorf("%s: row %d after %d iterations: %w", opLp, i+1, k, codatools.ErrNotConverged)
		}
		out[i] = fx
		return nil
	})
	if err != nil {
		log.Warn("lp minimization failed", "p", p, "err", err)
		return nil, err
	}
	total := 0
	for _, k := range iters {
		total += k
	}
	log.Debug("lp minimization", "p", p, "rows", n, "iterations", total)

	return out, nil
}
