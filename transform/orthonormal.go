// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"
	"strconv"

	"github.com/aclements/go-moremath/stats"

	codatools "github.com/jsuyu/CoDaTools"
	"github.com/jsuyu/CoDaTools/basis"
	"github.com/jsuyu/CoDaTools/matrix"
)

const (
	opOLR    = "OLR"
	opInvOLR = "InvOLR"
)

// checkBasis verifies psi against D and the olr tolerance.
func checkBasis(op string, psi matrix.Matrix, D int, o codatools.Options) error {
	tol := o.Tolerance(codatools.DefaultOrthonormalTol)
	if err := basis.CheckOrthonormal(psi, D, tol); err != nil {
		o.Logger("transform").Warn("basis rejected", "op", op, "err", err)
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// OLR projects the clr coordinates of X onto the orthonormal basis psi
// (D×(D−1)). The Euclidean norm of every output row equals the Aitchison
// norm of the input row.
//
// Errors, in priority order:
//   - ErrInvalidParameter for bad options.
//   - ErrInvalidDimension when psi is not D×(D−1).
//   - ErrNonPositiveInput with the offending 1-based rows.
//   - ErrNotOrthonormal when max|ΨᵗΨ − I| ≥ tol (default
//     codatools.DefaultOrthonormalTol).
func OLR(X, psi matrix.Matrix, opts ...codatools.Option) (Coordinates, error) {
	o, err := codatools.Resolve(opts...)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%s: %w", opOLR, err)
	}
	D, err := parts(opOLR, X)
	if err != nil {
		return Coordinates{}, err
	}
	if err = matrix.ValidateNotNil(psi); err != nil {
		return Coordinates{}, fmt.Errorf("%s: basis: %v: %w", opOLR, err, codatools.ErrInvalidDimension)
	}
	if psi.Rows() != D || psi.Cols() != D-1 {
		return Coordinates{}, fmt.Errorf("%s: basis is %d×%d, data has D=%d: %w",
			opOLR, psi.Rows(), psi.Cols(), D, codatools.ErrInvalidDimension)
	}
	_, d, err := prepare(opOLR, X, opts)
	if err != nil {
		return Coordinates{}, err
	}
	if err = checkBasis(opOLR, psi, D, o); err != nil {
		return Coordinates{}, err
	}

	L, err := logOf(opOLR, d)
	if err != nil {
		return Coordinates{}, err
	}
	z, _, err := matrix.CenterRowsBy(L, stats.Mean)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%s: %w", opOLR, err)
	}
	Y, err := matrix.Mul(z, psi)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%s: %w", opOLR, err)
	}

	names := make([]string, D-1)
	for k := range names {
		names[k] = "olr" + strconv.Itoa(k+1)
	}

	return Coordinates{Values: Y, Names: names}, nil
}

// InvOLR maps olr coordinates back to the closed composition
// closure(exp(Y·Ψᵗ)).
//
// Errors:
//   - ErrInvalidDimension when Y has not psi.Cols() columns.
//   - ErrNotOrthonormal as for OLR.
func InvOLR(Y, psi matrix.Matrix, opts ...codatools.Option) (*matrix.Dense, error) {
	o, err := codatools.Resolve(opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInvOLR, err)
	}
	if err = matrix.ValidateNotNil(Y); err != nil {
		return nil, fmt.Errorf("%s: %v: %w", opInvOLR, err, codatools.ErrInvalidDimension)
	}
	if err = matrix.ValidateNotNil(psi); err != nil {
		return nil, fmt.Errorf("%s: basis: %v: %w", opInvOLR, err, codatools.ErrInvalidDimension)
	}
	D := psi.Rows()
	if Y.Cols() != D-1 {
		return nil, fmt.Errorf("%s: coordinates have %d columns, basis expects %d: %w",
			opInvOLR, Y.Cols(), D-1, codatools.ErrInvalidDimension)
	}
	if err = checkBasis(opInvOLR, psi, D, o); err != nil {
		return nil, err
	}
	pt, err := matrix.Transpose(psi)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInvOLR, err)
	}
	Z, err := matrix.Mul(Y, pt)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", opInvOLR, err)
	}

	return InvCLR(Z)
}
