// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Row-wise statistical transforms that log-ratio coordinates are built on.
//
// Exposed API:
//   - CenterRowsBy(X, loc)  -> (Xc, centers) // subtract any per-row location statistic
//   - NormalizeRowsL1(X)    -> (Y, norms)    // L1 row normalization (closure for positive rows)
//
// Determinism & Performance:
//   - Fixed i→j traversal for all explicit loops.
//   - The location callback receives a copy of the row; it may sort it freely.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opCenterRowsBy    = "CenterRowsBy"
	opNormalizeRowsL1 = "NormalizeRowsL1"
)

// Location reduces one row to the scalar it is centered on (mean, median,
// midrange, ...).
type Location func(row []float64) float64

// CenterRowsBy returns Xc[i,*] = X[i,*] − loc(X[i,*]) and the per-row centers.
//
// Errors:
//   - ErrNilMatrix; ErrNaNInf when loc yields a non-finite center.
//
// Complexity:
//   - Time O(r*c) plus the cost of loc per row, Space O(r*c).
func CenterRowsBy(X Matrix, loc Location) (*Dense, []float64, error) {
	d, err := asDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRowsBy, err)
	}
	if loc == nil {
		return nil, nil, matrixErrorf(opCenterRowsBy, fmt.Errorf("nil location: %w", ErrNilMatrix))
	}

	out, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, nil, matrixErrorf(opCenterRowsBy, err)
	}
	centers := make([]float64, d.r)
	scratch := make([]float64, d.c)

	var i, j, base int
	var ctr float64
	for i = 0; i < d.r; i++ {
		base = i * d.c
		copy(scratch, d.data[base:base+d.c]) // loc may reorder its argument
		ctr = loc(scratch)
		if math.IsNaN(ctr) || math.IsInf(ctr, 0) {
			return nil, nil, matrixErrorf(opCenterRowsBy, fmt.Errorf("row %d: %w", i, ErrNaNInf))
		}
		centers[i] = ctr
		for j = 0; j < d.c; j++ {
			out.data[base+j] = d.data[base+j] - ctr
		}
	}

	return out, centers, nil
}

// NormalizeRowsL1 scales each row to L1-norm 1 and returns the original norms.
// Degenerate rows (norm==0) are left unchanged. For strictly positive rows
// this is the closure operation C(x) = x / Σx.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NormalizeRowsL1(X Matrix) (*Dense, []float64, error) {
	d, err := asDense(X)
	if err != nil {
		return nil, nil, matrixErrorf(opNormalizeRowsL1, err)
	}
	out := d.Clone().(*Dense)
	norms := make([]float64, d.r)

	var i, j, base int
	var s float64
	for i = 0; i < d.r; i++ {
		base = i * d.c
		s = 0
		for j = 0; j < d.c; j++ {
			s += math.Abs(d.data[base+j])
		}
		norms[i] = s
		if s == 0 {
			continue // preserves the row exactly
		}
		for j = 0; j < d.c; j++ {
			out.data[base+j] /= s
		}
	}

	return out, norms, nil
}
