// SPDX-License-Identifier: MIT

// Package validate is the gate every coordinate, norm and distance operation
// passes before numeric work begins.
//
// Each check returns a global verdict plus a per-row mask, so callers can
// report exactly which observations violate the contract:
//
//	ok, mask := validate.IsComposition(X)          // all entries > 0
//	ok, mask, k := validate.IsClosed(X, 1e-6)      // common row sum k
//	ok, mask := validate.IsCLR(Z, 1e-9)            // rows sum to 0
//
// Check wraps IsComposition into the fail-fast error form used by the
// transform, norm and distance packages.
package validate

import (
	"fmt"
	"maps"
	"math"
	"slices"

	codatools "github.com/jsuyu/CoDaTools"
	"github.com/jsuyu/CoDaTools/matrix"
)

// IsComposition reports whether every entry of X is finite and strictly
// positive. mask[i] is true iff row i passes. A nil X yields (false, nil).
//
// Complexity: O(n*D).
func IsComposition(X matrix.Matrix) (bool, []bool) {
	d, err := matrix.AsDense(X)
	if err != nil {
		return false, nil
	}
	n, D := d.Shape()
	mask := make([]bool, n)
	valid := true
	var v float64
	for i := 0; i < n; i++ {
		mask[i] = true
		for j := 0; j < D; j++ {
			v, _ = d.At(i, j)
			if !(v > 0) || math.IsInf(v, 1) {
				mask[i] = false
				valid = false
				break
			}
		}
	}

	return valid, mask
}

// IsClosed reports whether X is a composition whose rows all sum to one
// common constant within tol. The constant is the statistical mode of the row
// sums rounded to ceil(−log10 tol) decimals (ties → smallest value); value is
// that constant, or NaN when the check fails.
func IsClosed(X matrix.Matrix, tol float64) (valid bool, mask []bool, value float64) {
	if math.IsNaN(tol) || tol < 0 {
		return false, nil, math.NaN()
	}
	valid, mask = IsComposition(X)
	if mask == nil {
		return false, nil, math.NaN()
	}
	sums, err := matrix.RowSums(X)
	if err != nil {
		return false, nil, math.NaN()
	}

	k, ok := rowSumMode(sums, mask, decimalsFor(tol))
	if !ok {
		return false, mask, math.NaN()
	}
	for i, s := range sums {
		if mask[i] && math.Abs(s-k) > tol {
			mask[i] = false
			valid = false
		}
	}
	if !valid {
		return false, mask, math.NaN()
	}

	return true, mask, k
}

// IsCLR reports whether every row of X sums to 0 within tol.
func IsCLR(X matrix.Matrix, tol float64) (bool, []bool) {
	if math.IsNaN(tol) || tol < 0 {
		return false, nil
	}
	sums, err := matrix.RowSums(X)
	if err != nil {
		return false, nil
	}
	mask := make([]bool, len(sums))
	valid := true
	for i, s := range sums {
		mask[i] = math.Abs(s) <= tol
		valid = valid && mask[i]
	}

	return valid, mask
}

// Check is the fail-fast form of IsComposition used by every operation.
// It also requires D ≥ 2 (a single part carries no ratio information).
//
// Errors:
//   - ErrInvalidDimension for a nil table or D < 2.
//   - ErrNonPositiveInput with the count and 1-based indices of bad rows.
func Check(op string, X matrix.Matrix, o codatools.Options) (*matrix.Dense, error) {
	log := o.Logger("validate")
	d, err := matrix.AsDense(X)
	if err != nil {
		return nil, fmt.Errorf("%s: %v: %w", op, err, codatools.ErrInvalidDimension)
	}
	if d.Cols() < 2 {
		return nil, fmt.Errorf("%s: composition needs D >= 2 parts, got %d: %w", op, d.Cols(), codatools.ErrInvalidDimension)
	}

	ok, mask := IsComposition(d)
	if ok {
		return d, nil
	}
	bad := make([]int, 0, len(mask))
	for i, m := range mask {
		if !m {
			bad = append(bad, i)
		}
	}
	log.Warn("composition check failed", "op", op, "rows", d.Rows(), "violations", len(bad))

	return nil, codatools.RowsErrorf(op, codatools.ErrNonPositiveInput, bad)
}

// decimalsFor maps a tolerance to the rounding precision of the mode search.
// A zero tolerance disables rounding.
func decimalsFor(tol float64) int {
	if tol == 0 {
		return -1
	}
	dec := int(math.Ceil(-math.Log10(tol)))
	if dec < 0 {
		dec = 0
	}
	return dec
}

// rowSumMode returns the most frequent rounded row sum among rows with
// mask[i] set. Ties resolve to the smallest value.
func rowSumMode(sums []float64, mask []bool, decimals int) (float64, bool) {
	counts := make(map[float64]int)
	for i, s := range sums {
		if !mask[i] {
			continue
		}
		if decimals >= 0 {
			p := math.Pow(10, float64(decimals))
			s = math.Round(s*p) / p
		}
		counts[s]++
	}
	if len(counts) == 0 {
		return math.NaN(), false
	}

	var best float64
	bestN := 0
	for _, k := range slices.Sorted(maps.Keys(counts)) {
		if counts[k] > bestN {
			best, bestN = k, counts[k]
		}
	}

	return best, true
}
