// SPDX-License-Identifier: MIT

package transform

import (
	"fmt"

	"github.com/aclements/go-moremath/stats"

	codatools "github.com/jsuyu/CoDaTools"
	"github.com/jsuyu/CoDaTools/matrix"
)

const opNALR = "NALR"

// level is one step of a nested chain: the parts leaving the set and the set
// they are compared against, both 0-based.
type level struct {
	out  []int
	curr []int
}

// chain validates the 1-based index sets S₁ ⊃ S₂ ⊃ … ⊃ S_K against D.
// S₀ = {1..D} is implicit; a leading set holding every part is accepted and
// treated as S₀.
func chain(D int, sets [][]int) ([]level, error) {
	if len(sets) > 0 && coversAll(D, sets[0]) {
		sets = sets[1:]
	}
	if len(sets) == 0 {
		return nil, fmt.Errorf("%s: empty chain of index sets: %w", opNALR, codatools.ErrInvalidDimension)
	}
	if len(sets) > D-1 {
		return nil, fmt.Errorf("%s: %d nesting levels exceed D−1=%d: %w", opNALR, len(sets), D-1, codatools.ErrInvalidDimension)
	}

	prev := make([]int, D)
	for i := range prev {
		prev[i] = i
	}
	levels := make([]level, 0, len(sets))
	for k, set := range sets {
		inPrev := make(map[int]bool, len(prev))
		for _, p := range prev {
			inPrev[p] = true
		}
		if len(set) == 0 || len(set) >= len(prev) {
			return nil, fmt.Errorf("%s: set %d has %d parts, want 1..%d: %w",
				opNALR, k+1, len(set), len(prev)-1, codatools.ErrInvalidDimension)
		}
		curr := make([]int, len(set))
		inCurr := make(map[int]bool, len(set))
		for m, idx := range set {
			switch {
			case idx < 1 || idx > D:
				return nil, fmt.Errorf("%s: set %d: index %d outside [1,%d]: %w", opNALR, k+1, idx, D, codatools.ErrInvalidDimension)
			case inCurr[idx-1]:
				return nil, fmt.Errorf("%s: set %d: duplicate index %d: %w", opNALR, k+1, idx, codatools.ErrInvalidDimension)
			case !inPrev[idx-1]:
				return nil, fmt.Errorf("%s: set %d: index %d is not in the enclosing set: %w", opNALR, k+1, idx, codatools.ErrInvalidDimension)
			}
			inCurr[idx-1] = true
			curr[m] = idx - 1
		}
		lv := level{curr: curr}
		for _, p := range prev {
			if !inCurr[p] {
				lv.out = append(lv.out, p)
			}
		}
		levels = append(levels, lv)
		prev = curr
	}
	if len(prev) != 1 {
		return nil, fmt.Errorf("%s: final set has %d parts, want 1: %w", opNALR, len(prev), codatools.ErrInvalidDimension)
	}

	return levels, nil
}

// coversAll reports whether set is a permutation of 1..D.
func coversAll(D int, set []int) bool {
	if len(set) != D {
		return false
	}
	seen := make([]bool, D)
	for _, idx := range set {
		if idx < 1 || idx > D || seen[idx-1] {
			return false
		}
		seen[idx-1] = true
	}
	return true
}

// NALR returns nested additive log-ratios. For every level k of the chain
// S₀ = {1..D} ⊃ S₁ ⊃ … ⊃ S_K, |S_K| = 1, and every part j ∈ S_{k−1} \ S_k it
// emits log x_j − mean(log x_{S_k}): the log-ratio of x_j to the geometric
// mean of the parts still in the chain. Columns are grouped by level, D−1 in
// total. Index sets are 1-based.
//
// Errors:
//   - ErrInvalidDimension for a malformed chain (checked before positivity).
//   - ErrNonPositiveInput with the offending 1-based rows.
func NALR(X matrix.Matrix, sets [][]int, opts ...codatools.Option) (Coordinates, error) {
	if _, err := codatools.Resolve(opts...); err != nil {
		return Coordinates{}, fmt.Errorf("%s: %w", opNALR, err)
	}
	D, err := parts(opNALR, X)
	if err != nil {
		return Coordinates{}, err
	}
	levels, err := chain(D, sets)
	if err != nil {
		return Coordinates{}, err
	}
	o, d, err := prepare(opNALR, X, opts)
	if err != nil {
		return Coordinates{}, err
	}
	L, err := logOf(opNALR, d)
	if err != nil {
		return Coordinates{}, err
	}

	n := d.Rows()
	Y, err := matrix.NewDense(n, D-1)
	if err != nil {
		return Coordinates{}, fmt.Errorf("%s: %w", opNALR, err)
	}
	rows := L.RawRows()
	out := make([]float64, D-1)
	var scratch []float64
	for i, row := range rows {
		col := 0
		for _, lv := range levels {
			scratch = scratch[:0]
			for _, p := range lv.curr {
				scratch = append(scratch, row[p])
			}
			g := stats.Mean(scratch)
			for _, j := range lv.out {
				out[col] = row[j] - g
				col++
			}
		}
		if err = Y.SetRow(i, out); err != nil {
			return Coordinates{}, fmt.Errorf("%s: %w", opNALR, err)
		}
	}

	names := o.PartNames(D)
	cols := make([]string, 0, D-1)
	for _, lv := range levels {
		den := names[lv.curr[0]]
		if len(lv.curr) > 1 {
			sub := make([]string, len(lv.curr))
			for m, p := range lv.curr {
				sub[m] = names[p]
			}
			den = geoName(sub)
		}
		for _, j := range lv.out {
			cols = append(cols, ratioName(names[j], den))
		}
	}

	return Coordinates{Values: Y, Names: cols}, nil
}
