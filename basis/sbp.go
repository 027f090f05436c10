// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	codatools "github.com/jsuyu/CoDaTools"
	"github.com/jsuyu/CoDaTools/matrix"
)

// ValidateSBP checks that sbp is a well-formed Sequential Binary Partition:
//  1. shape D×(D−1), D ≥ 2                              → ErrSBPShape
//  2. every entry in {−1, 0, +1}                        → ErrSBPValues
//  3. every column has at least one +1 and one −1       → ErrSBPSigns
//  4. every pair of partitions is orthogonal within tol → ErrSBPOrthogonality
//
// The first violated check determines the error. Orthogonality is measured
// on the balance columns the partitions induce (see SBPBasis), because the
// raw sign vectors of nested partitions are not orthogonal in general.
// Tolerance defaults to codatools.DefaultSBPTol.
func ValidateSBP(sbp matrix.Matrix, opts ...codatools.Option) (bool, error) {
	o, err := codatools.Resolve(opts...)
	if err != nil {
		return false, fmt.Errorf("ValidateSBP: %w", err)
	}
	if _, err = validateSBP(sbp, o.Tolerance(codatools.DefaultSBPTol)); err != nil {
		o.Logger("basis").Warn("sbp rejected", "err", err)
		return false, err
	}

	return true, nil
}

// SBPBasis validates sbp and returns its D×(D−1) orthonormal basis.
func SBPBasis(sbp matrix.Matrix, opts ...codatools.Option) (*matrix.Dense, error) {
	o, err := codatools.Resolve(opts...)
	if err != nil {
		return nil, fmt.Errorf("SBPBasis: %w", err)
	}
	psi, err := validateSBP(sbp, o.Tolerance(codatools.DefaultSBPTol))
	if err != nil {
		return nil, fmt.Errorf("SBPBasis: %w", err)
	}

	return psi, nil
}

// validateSBP runs the four checks in order and returns the balance basis.
func validateSBP(sbp matrix.Matrix, tol float64) (*matrix.Dense, error) {
	if err := matrix.ValidateNotNil(sbp); err != nil {
		return nil, fmt.Errorf("%v: %w", err, ErrSBPShape)
	}
	d, k := sbp.Rows(), sbp.Cols()
	if d < 2 || k != d-1 {
		return nil, fmt.Errorf("got %d×%d, want D×(D−1): %w", d, k, ErrSBPShape)
	}

	// Check 2: values.
	var v float64
	for i := 0; i < d; i++ {
		for j := 0; j < k; j++ {
			v, _ = sbp.At(i, j)
			if v != -1 && v != 0 && v != 1 {
				return nil, fmt.Errorf("entry (%d,%d) = %g: %w", i+1, j+1, v, ErrSBPValues)
			}
		}
	}

	// Check 3: both signs present; build the balance column as we go.
	psi, err := matrix.NewDense(d, k)
	if err != nil {
		return nil, err
	}
	cols := make([][]float64, k)
	for j := 0; j < k; j++ {
		r, s := 0, 0
		for i := 0; i < d; i++ {
			v, _ = sbp.At(i, j)
			switch v {
			case 1:
				r++
			case -1:
				s++
			}
		}
		if r == 0 || s == 0 {
			return nil, fmt.Errorf("column %d has %d positive and %d negative parts: %w", j+1, r, s, ErrSBPSigns)
		}
		pos, neg := balance(r, s)
		cols[j] = make([]float64, d)
		for i := 0; i < d; i++ {
			v, _ = sbp.At(i, j)
			switch v {
			case 1:
				cols[j][i] = pos
			case -1:
				cols[j][i] = neg
			}
			_ = psi.Set(i, j, cols[j][i])
		}
	}

	// Check 4: pairwise orthogonality of the balances.
	worst, wa, wb := 0.0, -1, -1
	for a := 0; a < k; a++ {
		for b := a + 1; b < k; b++ {
			if dot := math.Abs(floats.Dot(cols[a], cols[b])); dot > worst {
				worst, wa, wb = dot, a, b
			}
		}
	}
	if worst > tol {
		return nil, fmt.Errorf("columns %d and %d: |dot|=%g > tol=%g: %w", wa+1, wb+1, worst, tol, ErrSBPOrthogonality)
	}

	return psi, nil
}

// CheckOrthonormal verifies that psi is a D×(D−1) basis with
// max|ΨᵗΨ − I| < tol.
//
// Errors:
//   - ErrInvalidDimension for a shape mismatch.
//   - ErrNotOrthonormal with the maximal violation and the 1-based column
//     pair where it occurs.
func CheckOrthonormal(psi matrix.Matrix, d int, tol float64) error {
	if err := matrix.ValidateNotNil(psi); err != nil {
		return fmt.Errorf("CheckOrthonormal: %v: %w", err, codatools.ErrInvalidDimension)
	}
	if psi.Rows() != d || psi.Cols() != d-1 {
		return fmt.Errorf("CheckOrthonormal: basis is %d×%d, want %d×%d: %w",
			psi.Rows(), psi.Cols(), d, d-1, codatools.ErrInvalidDimension)
	}
	g, err := matrix.Gram(psi)
	if err != nil {
		return fmt.Errorf("CheckOrthonormal: %w", err)
	}
	dev, r, c, err := matrix.IdentityDeviation(g)
	if err != nil {
		return fmt.Errorf("CheckOrthonormal: %w", err)
	}
	if !(dev < tol) {
		return fmt.Errorf("CheckOrthonormal: max|ΨᵗΨ−I|=%g at columns (%d,%d), tol=%g: %w",
			dev, r+1, c+1, tol, codatools.ErrNotOrthonormal)
	}

	return nil
}
