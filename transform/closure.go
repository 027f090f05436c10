// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	codatools "github.com/jsuyu/CoDaTools"
	"github.com/jsuyu/CoDaTools/matrix"
)

const (
	opClosure = "Closure"
	opInvCLR  = "InvCLR"
)

// Closure rescales every row of the composition X to sum k.
//
// Errors:
//   - ErrInvalidParameter when k is not finite and positive.
//   - ErrInvalidDimension / ErrNonPositiveInput as for CLR.
func Closure(X matrix.Matrix, k float64, opts ...codatools.Option) (*matrix.Dense, error) {
	if !(k > 0) || math.IsInf(k, 1) {
		return nil, fmt.Errorf("%s: k=%g must be finite and > 0: %w", opClosure, k, codatools.ErrInvalidParameter)
	}
	_, d, err := prepare(opClosure, X, opts)
	if err != nil {
		return nil, err
	}
	unit, _, err := matrix.NormalizeRowsL1(d)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opClosure, err)
	}
	if k == 1 {
		return unit, nil
	}
	out, err := matrix.Scale(unit, k)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opClosure, err)
	}

	return out, nil
}

// softmax returns closure(exp(L)) row by row. Each row is shifted by its
// maximum before exponentiation, which leaves the closed result unchanged.
func softmax(op string, L *matrix.Dense) (*matrix.Dense, error) {
	shifted, _, err := matrix.CenterRowsBy(L, floats.Max)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	E, err := matrix.Exp(shifted)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	out, _, err := matrix.NormalizeRowsL1(E)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return out, nil
}

// InvCLR maps log-ratio scores back to the closed composition
// closure(exp(Z)). Any real row is accepted; adding a constant to a row
// does not change its image.
//
// Errors:
//   - ErrInvalidDimension for a nil table.
//   - ErrInvalidParameter for non-finite scores.
func InvCLR(Z matrix.Matrix) (*matrix.Dense, error) {
	d, err := matrix.AsDense(Z)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", opInvCLR, err, codatools.ErrInvalidDimension)
	}
	if err = matrix.ValidateFinite(d); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", opInvCLR, err, codatools.ErrInvalidParameter)
	}

	return softmax(opInvCLR, d)
}
