// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	codatools "github.com/jsuyu/CoDaTools"
	"github.com/jsuyu/CoDaTools/basis"
	"github.com/jsuyu/CoDaTools/matrix"
)

const (
	opALR    = "ALR"
	opInvALR = "InvALR"
)

// ALR returns log(x_i / x_denom) for every part i ≠ denom, in part order.
// denom is 1-based.
//
// Errors:
//   - ErrInvalidDimension when denom ∉ [1, D] (checked before positivity).
//   - ErrNonPositiveInput with the offending 1-based rows.
func ALR(X matrix.Matrix, denom int, opts ...codatools.Option) (Coordinates, error) {
	if _, err := codatools.Resolve(opts...); err != nil {
		return Coordinates{}, fmt.Errorf("%s: %w", opALR, err)
	}
	D, err := parts(opALR, X)
	if err != nil {
		return Coordinates{}, err
	}
	psi, err := basis.ALRMatrix(D, denom)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%s: %w", opALR, err)
	}
	o, d, err := prepare(opALR, X, opts)
	if err != nil {
		return Coordinates{}, err
	}
	L, err := logOf(opALR, d)
	if err != nil {
		return Coordinates{}, err
	}
	Y, err := matrix.Mul(L, psi)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%s: %w", opALR, err)
	}

	names := o.PartNames(D)
	cols := make([]string, 0, D-1)
	for i, n := range names {
		if i != denom-1 {
			cols = append(cols, ratioName(n, names[denom-1]))
		}
	}

	return Coordinates{Values: Y, Names: cols}, nil
}

// InvALR rebuilds the closed composition from n×(D−1) alr coordinates taken
// against the 1-based part denom of a D = cols+1 part composition.
//
// Errors:
//   - ErrInvalidDimension for a nil table or denom ∉ [1, D].
//   - ErrInvalidParameter for non-finite coordinates.
func InvALR(Y matrix.Matrix, denom int) (*matrix.Dense, error) {
	y, err := matrix.AsDense(Y)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", opInvALR, err, codatools.ErrInvalidDimension)
	}
	n, D := y.Rows(), y.Cols()+1
	if denom < 1 || denom > D {
		return nil, fmt.Errorf("%s: denominator %d outside [1,%d]: %w", opInvALR, denom, D, codatools.ErrInvalidDimension)
	}
	if err = matrix.ValidateFinite(y); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", opInvALR, err, codatools.ErrInvalidParameter)
	}

	// Re-insert log(x_denom/x_denom) = 0 at its position.
	L, err := matrix.NewDense(n, D)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInvALR, err)
	}
	full := make([]float64, D)
	for i, row := range y.RawRows() {
		copy(full, row[:denom-1])
		full[denom-1] = 0
		copy(full[denom:], row[denom-1:])
		if err = L.SetRow(i, full); err != nil {
			return nil, fmt.Errorf("%s: %w", opInvALR, err)
		}
	}

	return softmax(opInvALR, L)
}
