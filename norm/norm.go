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

// Func is the common signature of every norm in this package.
type Func func(X matrix.Matrix, opts ...codatools.Option) ([]float64, error)

// Type names a norm.
type Type string

// Norm names, as accepted by Of and by the distance engine.
const (
	TypeAit    Type = "Ait"
	TypeL1CLR  Type = "L1clr"
	TypeL1CoDa Type = "L1CoDa"
	TypeLinf   Type = "Linf"
	TypeL1PLR  Type = "L1plr"
	TypeLp     Type = "Lp"
)

// Of returns the norm function named t.
//
// Errors:
//   - ErrInvalidParameter for an unknown name.
func Of(t Type) (Func, error) {
	switch t {
	case TypeAit:
		return Aitchison, nil
	case TypeL1CLR:
		return L1CLR, nil
	case TypeL1CoDa:
		return L1CoDa, nil
	case TypeLinf:
		return LinfCoDa, nil
	case TypeL1PLR:
		return L1PLR, nil
	case TypeLp:
		return LpCoDa, nil
	}
	return nil, fmt.Errorf("norm: unknown type %q: %w", t, codatools.ErrInvalidParameter)
}

// rowNorms returns the order-L vector norm of every row of Z, scaled by k.
func rowNorms(op string, Z *matrix.Dense, L, k float64, workers int) ([]float64, error) {
	out := make([]float64, Z.Rows())
	err := rowpool.ForEach(Z.Rows(), workers, func(i int) error {
		row, err := Z.Row(i)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		out[i] = k * floats.Norm(row, L)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// coordinateNorm resolves options, applies tr and reduces the coordinates.
func coordinateNorm(op string, tr func(matrix.Matrix, ...codatools.Option) (transform.Coordinates, error),
	L float64, X matrix.Matrix, opts []codatools.Option) ([]float64, error) {
	o, err := codatools.Resolve(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c, err := tr(X, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return rowNorms(op, c.Values, L, 1, o.Workers())
}

// Aitchison returns ‖clr(x)‖₂ for every row.
//
// Errors:
//   - ErrInvalidDimension for a nil table or D < 2.
//   - ErrNonPositiveInput with the offending 1-based rows.
func Aitchison(X matrix.Matrix, opts ...codatools.Option) ([]float64, error) {
	return coordinateNorm("Aitchison", transform.CLR, 2, X, opts)
}

// L1CLR returns ‖clr(x)‖₁ for every row.
func L1CLR(X matrix.Matrix, opts ...codatools.Option) ([]float64, error) {
	return coordinateNorm("L1CLR", transform.CLR, 1, X, opts)
}

// L1CoDa returns ‖mlr(x)‖₁, the median-centered L1 norm.
func L1CoDa(X matrix.Matrix, opts ...codatools.Option) ([]float64, error) {
	return coordinateNorm("L1CoDa", transform.MLR, 1, X, opts)
}

// LinfCoDa returns ‖mrlr(x)‖∞, the midrange-centered sup norm.
func LinfCoDa(X matrix.Matrix, opts ...codatools.Option) ([]float64, error) {
	return coordinateNorm("LinfCoDa", transform.MRLR, math.Inf(1), X, opts)
}

// L1PLR returns the mean absolute pairwise log-ratio ‖log(X)·H‖₁ / (D−1),
// H being the pairwise contrast matrix.
func L1PLR(X matrix.Matrix, opts ...codatools.Option) ([]float64, error) {
	const op = "L1PLR"
	o, err := codatools.Resolve(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	c, err := transform.PLR(X, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	n, D := c.Values.Rows(), X.Cols()
	out, err := rowNorms(op, c.Values, 1, 1/float64(D-1), o.Workers())
	if err != nil {
		return nil, fmt.Errorf("%s: n=%d rows, D=%d: %w", op, n, D, err)
	}
	return out, nil
}
