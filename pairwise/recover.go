// SPDX-License-Identifier: MIT

package pairwise

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"

	codatools "github.com/jsuyu/CoDaTools"
	"github.com/jsuyu/CoDaTools/basis"
	"github.com/jsuyu/CoDaTools/matrix"
	"github.com/jsuyu/CoDaTools/transform"
)

const (
	opRecover    = "Recover"
	opInferParts = "InferParts"
)

// Result is the outcome of Recover.
type Result struct {
	// Valid is true when every row reconstructs within tolerance.
	Valid bool

	// D is the number of parts.
	D int

	// X holds the closed compositions (rows sum to 1) when Valid, and NaN
	// otherwise.
	X *matrix.Dense

	// Errors holds the per-row reconstruction residual ‖PW − X_log·H‖₂.
	Errors []float64
}

// MaxError returns the largest residual, the quantity compared with the
// tolerance.
func (r Result) MaxError() float64 {
	if len(r.Errors) == 0 {
		return 0
	}
	return floats.Max(r.Errors)
}

// InferParts returns D such that p = D(D−1)/2, i.e. D = (1 + √(1+8p))/2.
//
// Errors:
//   - ErrInvalidDimension when p < 1 or no integer D exists.
func InferParts(p int) (int, error) {
	if p < 1 {
		return 0, fmt.Errorf("%s: p=%d: %w", opInferParts, p, codatools.ErrInvalidDimension)
	}
	disc := 1 + 8*p
	s := int(math.Sqrt(float64(disc)))
	for s*s > disc {
		s--
	}
	for (s+1)*(s+1) <= disc {
		s++
	}
	if s*s != disc {
		return 0, fmt.Errorf("%s: %d columns is not D(D−1)/2 for any integer D: %w", opInferParts, p, codatools.ErrInvalidDimension)
	}

	return (1 + s) / 2, nil
}

// Recover reconstructs the compositions whose pairwise log-ratios are the
// rows of pw. D is inferred from the column count unless
// codatools.WithParts is given; the admissibility tolerance defaults to
// codatools.DefaultRecoveryTol.
//
// Errors:
//   - ErrInvalidParameter for bad options or non-finite entries.
//   - ErrInvalidDimension for a nil table, a column count that is not
//     D(D−1)/2, or a mismatch with WithParts.
func Recover(pw matrix.Matrix, opts ...codatools.Option) (Result, error) {
	o, err := codatools.Resolve(opts...)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opRecover, err)
	}
	log := o.Logger("pairwise")
	tol := o.Tolerance(codatools.DefaultRecoveryTol)

	P, err := matrix.AsDense(pw)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %v: %w", opRecover, err, codatools.ErrInvalidDimension)
	}
	n, p := P.Shape()
	D := o.Parts()
	if D == 0 {
		if D, err = InferParts(p); err != nil {
			return Result{}, fmt.Errorf("%s: %w", opRecover, err)
		}
	}
	if D < 2 || basis.PairCount(D) != p {
		return Result{}, fmt.Errorf("%s: D=%d needs %d columns, got %d: %w",
			opRecover, D, basis.PairCount(D), p, codatools.ErrInvalidDimension)
	}
	if err = matrix.ValidateFinite(P); err != nil {
		return Result{}, fmt.Errorf("%s: %v: %w", opRecover, err, codatools.ErrInvalidParameter)
	}

	H, err := basis.PairwiseMatrix(D)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opRecover, err)
	}
	Hp, err := matrix.Pinv(H)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opRecover, err)
	}
	Xlog, err := matrix.Mul(P, Hp)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opRecover, err)
	}
	back, err := matrix.Mul(Xlog, H)
	if err != nil {
		return Result{}, fmt.Errorf("%s: %w", opRecover, err)
	}

	res := Result{D: D, Errors: make([]float64, n)}
	orig, rec := P.RawRows(), back.RawRows()
	for i := range orig {
		res.Errors[i] = floats.Distance(orig[i], rec[i], 2)
	}
	res.Valid = res.MaxError() < tol
	log.Debug("pairwise reconstruction", "rows", n, "parts", D, "max_error", res.MaxError(), "tol", tol, "valid", res.Valid)

	if !res.Valid {
		log.Warn("pairwise table outside the range of the contrast map",
			"max_error", res.MaxError(), "tol", tol, "err", codatools.ErrNumericalInfeasible)
		if res.X, err = matrix.NewNaN(n, D); err != nil {
			return Result{}, fmt.Errorf("%s: %w", opRecover, err)
		}
		return res, nil
	}
	if res.X, err = transform.InvCLR(Xlog); err != nil {
		return Result{}, fmt.Errorf("%s: %w", opRecover, err)
	}

	return res, nil
}
