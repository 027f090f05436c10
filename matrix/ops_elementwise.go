// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Element-wise maps (Log, Exp, Map), row reductions (RowSums) and numeric
//     comparisons (AllClose, MaxAbsDiff) shared by the transform layers.
//
// Determinism & Performance:
//   - Single flat loop 0..r*c-1; one output allocation.

package matrix

import (
	"fmt"
	"math"
)

const (
	opMap        = "Map"
	opLog        = "Log"
	opExp        = "Exp"
	opRowSums    = "RowSums"
	opAllClose   = "AllClose"
	opMaxAbsDiff = "MaxAbsDiff"
)

// Map returns out[i,j] = f(X[i,j]). The result must be finite everywhere.
func Map(X Matrix, f func(float64) float64) (*Dense, error) {
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	out, err := NewDense(d.r, d.c)
	if err != nil {
		return nil, matrixErrorf(opMap, err)
	}
	var v float64
	for k, x := range d.data {
		v = f(x)
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, matrixErrorf(opMap, fmt.Errorf("row %d col %d: %w", k/d.c, k%d.c, ErrNaNInf))
		}
		out.data[k] = v
	}

	return out, nil
}

// Log returns the entrywise natural logarithm. Entries must be > 0.
func Log(X Matrix) (*Dense, error) {
	out, err := Map(X, math.Log)
	if err != nil {
		return nil, matrixErrorf(opLog, err)
	}
	return out, nil
}

// Exp returns the entrywise exponential.
func Exp(X Matrix) (*Dense, error) {
	out, err := Map(X, math.Exp)
	if err != nil {
		return nil, matrixErrorf(opExp, err)
	}
	return out, nil
}

// RowSums returns r where r[i] = Σ_j X[i,j].
func RowSums(X Matrix) ([]float64, error) {
	d, err := asDense(X)
	if err != nil {
		return nil, matrixErrorf(opRowSums, err)
	}
	sums := make([]float64, d.r)
	for i := 0; i < d.r; i++ {
		for _, v := range d.row(i) {
			sums[i] += v
		}
	}

	return sums, nil
}

// MaxAbsDiff returns max|a−b| over identical shapes.
func MaxAbsDiff(a, b Matrix) (float64, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	da, err := asDense(a)
	if err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	db, err := asDense(b)
	if err != nil {
		return 0, matrixErrorf(opMaxAbsDiff, err)
	}
	var worst float64
	for k := range da.data {
		if diff := math.Abs(da.data[k] - db.data[k]); diff > worst {
			worst = diff
		}
	}

	return worst, nil
}

// AllClose checks element-wise |a-b| ≤ atol + rtol*|b| for identical shapes.
// NaN never compares close. Negative tolerances are normalized to |tol|.
func AllClose(a, b Matrix, rtol, atol float64) (bool, error) {
	if math.IsNaN(rtol) || math.IsNaN(atol) || math.IsInf(rtol, 0) || math.IsInf(atol, 0) {
		return false, matrixErrorf(opAllClose, ErrNaNInf)
	}
	rtol, atol = math.Abs(rtol), math.Abs(atol)
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	da, err := asDense(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	db, err := asDense(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	for k := range da.data {
		if !(math.Abs(da.data[k]-db.data[k]) <= atol+rtol*math.Abs(db.data[k])) {
			return false, nil // early-exit on first violation (NaN included)
		}
	}

	return true, nil
}
