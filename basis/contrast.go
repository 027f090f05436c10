// SPDX-License-Identifier: MIT

package basis

import (
	"fmt"
	"math"

	codatools "github.com/jsuyu/CoDaTools"
	"github.com/jsuyu/CoDaTools/matrix"
)

// PairCount returns p = D(D−1)/2, the number of unordered part pairs.
func PairCount(d int) int { return d * (d - 1) / 2 }

// Pairs lists the 0-based part pairs (i, j), i<j, in the column order of
// PairwiseMatrix: i ascending, then j ascending.
func Pairs(d int) [][2]int {
	out := make([][2]int, 0, PairCount(d))
	for i := 0; i < d-1; i++ {
		for j := i + 1; j < d; j++ {
			out = append(out, [2]int{i, j})
		}
	}
	return out
}

// PairwiseMatrix returns the D×p contrast matrix H: column k, for the k-th
// pair (i, j) in lexicographic order, holds +1 at i and −1 at j. log(X)·H
// yields every pairwise log-ratio log(x_i/x_j).
//
// Errors:
//   - ErrInvalidDimension when D < 2.
//
// Complexity: O(D³) zero-init, O(D²) writes.
func PairwiseMatrix(d int) (*matrix.Dense, error) {
	if d < 2 {
		return nil, fmt.Errorf("PairwiseMatrix: D=%d < 2: %w", d, codatools.ErrInvalidDimension)
	}
	H, err := matrix.NewDense(d, PairCount(d))
	if err != nil {
		return nil, err
	}
	for k, pr := range Pairs(d) {
		_ = H.Set(pr[0], k, 1)
		_ = H.Set(pr[1], k, -1)
	}

	return H, nil
}

// ALRMatrix returns the D×(D−1) additive log-ratio contrast matrix for the
// 1-based denominator part denom: an identity block on the other parts, in
// their original order, and a row of −1 at denom.
//
// Errors:
//   - ErrInvalidDimension when D < 2 or denom ∉ [1, D].
func ALRMatrix(d, denom int) (*matrix.Dense, error) {
	if d < 2 {
		return nil, fmt.Errorf("ALRMatrix: D=%d < 2: %w", d, codatools.ErrInvalidDimension)
	}
	if denom < 1 || denom > d {
		return nil, fmt.Errorf("ALRMatrix: denominator %d outside [1,%d]: %w", denom, d, codatools.ErrInvalidDimension)
	}
	psi, err := matrix.NewDense(d, d-1)
	if err != nil {
		return nil, err
	}
	col := 0
	for i := 0; i < d; i++ {
		if i == denom-1 {
			for c := 0; c < d-1; c++ {
				_ = psi.Set(i, c, -1)
			}
			continue
		}
		_ = psi.Set(i, col, 1)
		col++
	}

	return psi, nil
}

// balance returns the coefficients of a balance between r parts (positive
// group) and s parts (negative group).
func balance(r, s int) (pos, neg float64) {
	fr, fs := float64(r), float64(s)
	pos = math.Sqrt(fs / (fr * (fr + fs)))
	neg = -math.Sqrt(fr / (fs * (fr + fs)))
	return pos, neg
}

// checkOrder validates a 1-based permutation of 1..D and returns it 0-based.
// An empty order means the identity.
func checkOrder(op string, d int, order []int) ([]int, error) {
	if d < 2 {
		return nil, fmt.Errorf("%s: D=%d < 2: %w", op, d, codatools.ErrInvalidDimension)
	}
	out := make([]int, d)
	if len(order) == 0 {
		for i := range out {
			out[i] = i
		}
		return out, nil
	}
	if len(order) != d {
		return nil, fmt.Errorf("%s: order has %d entries, want %d: %w", op, len(order), d, codatools.ErrInvalidDimension)
	}
	seen := make([]bool, d)
	for k, p := range order {
		if p < 1 || p > d || seen[p-1] {
			return nil, fmt.Errorf("%s: order is not a permutation of 1..%d (entry %d = %d): %w",
				op, d, k+1, p, codatools.ErrInvalidParameter)
		}
		seen[p-1] = true
		out[k] = p - 1
	}

	return out, nil
}

// PivotBasis returns the D×(D−1) orthonormal pivot basis. Column c isolates
// part order[c] against the D−c−1 parts that follow it in order, with the
// balance coefficients for r=1: +sqrt(s/(s+1)) on the pivot and
// −sqrt(1/(s(s+1))) on each remaining part. order is a 1-based permutation
// of 1..D; omitted means 1, 2, ..., D.
//
// Errors:
//   - ErrInvalidDimension (D < 2, wrong order length);
//     ErrInvalidParameter (order is not a permutation).
func PivotBasis(d int, order ...int) (*matrix.Dense, error) {
	ord, err := checkOrder("PivotBasis", d, order)
	if err != nil {
		return nil, err
	}
	psi, err := matrix.NewDense(d, d-1)
	if err != nil {
		return nil, err
	}
	for c := 0; c < d-1; c++ {
		pos, neg := balance(1, d-c-1)
		_ = psi.Set(ord[c], c, pos)
		for _, p := range ord[c+1:] {
			_ = psi.Set(p, c, neg)
		}
	}

	return psi, nil
}

// SBPFromPivot returns the SBP whose SBPBasis equals PivotBasis(D, order...).
func SBPFromPivot(d int, order ...int) (*matrix.Dense, error) {
	ord, err := checkOrder("SBPFromPivot", d, order)
	if err != nil {
		return nil, err
	}
	sbp, err := matrix.NewDense(d, d-1)
	if err != nil {
		return nil, err
	}
	for c := 0; c < d-1; c++ {
		_ = sbp.Set(ord[c], c, 1)
		for _, p := range ord[c+1:] {
			_ = sbp.Set(p, c, -1)
		}
	}

	return sbp, nil
}
