// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Deterministic linear-algebra kernels needed by log-ratio coordinates:
//     Mul (projection onto a basis), Transpose, Gram (ΨᵗΨ) and the
//     identity-deviation check used to certify orthonormal bases.
//
// Determinism & Performance:
//   - Fixed loop orders (i→k→j for Mul); flat row-major buffers only.
//   - One result allocation per call; inputs are never mutated.

package matrix

import (
	"fmt"
	"math"
)

// Operation name constants for unified error wrapping.
const (
	opMul        = "Mul"
	opTranspose  = "Transpose"
	opGram       = "Gram"
	opIdentityDv = "IdentityDeviation"
	opScale      = "Scale"
)

// matrixErrorf wraps err with an operation tag: "<tag>: <err>".
// It preserves errors.Is/As behavior via %w.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// Mul returns the product a×b.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrDimensionMismatch (a.Cols != b.Rows).
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c). Zero entries of a are skipped, which
//     matters for the sparse contrast matrices built by the basis package.
func Mul(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	da, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	db, err := asDense(b)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	aRows, aCols, bCols := da.r, da.c, db.c
	res, err := NewDense(aRows, bCols)
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	res.validateNaNInf = da.validateNaNInf && db.validateNaNInf

	var i, j, k int
	var av float64
	var rowOffsetA, rowOffsetB, rowOffsetR int
	for i = 0; i < aRows; i++ {
		rowOffsetA = i * aCols
		rowOffsetR = i * bCols
		for k = 0; k < aCols; k++ {
			av = da.data[rowOffsetA+k]
			if av == 0 {
				continue // skip zero for performance
			}
			rowOffsetB = k * bCols
			for j = 0; j < bCols; j++ {
				res.data[rowOffsetR+j] += av * db.data[rowOffsetB+j]
			}
		}
	}

	return res, nil
}

// Transpose returns a new matrix with rows and columns swapped (mᵀ).
// Complexity: O(r*c).
func Transpose(m Matrix) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	res.validateNaNInf = d.validateNaNInf

	var i, j int
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			res.data[j*d.r+i] = d.data[i*d.c+j]
		}
	}

	return res, nil
}

// Scale returns alpha*m.
// Complexity: O(r*c).
func Scale(m Matrix, alpha float64) (*Dense, error) {
	d, err := asDense(m)
	if err != nil {
		return nil, matrixErrorf(opScale, err)
	}
	res := d.Clone().(*Dense)
	for k := range res.data {
		res.data[k] *= alpha
	}

	return res, nil
}

// Gram returns mᵀm (Cols×Cols). For a basis Ψ with orthonormal columns the
// result is the identity.
// Complexity: O(r*c²).
func Gram(m Matrix) (*Dense, error) {
	mt, err := Transpose(m)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}
	g, err := Mul(mt, m)
	if err != nil {
		return nil, matrixErrorf(opGram, err)
	}

	return g, nil
}

// IdentityDeviation returns max|m − I| over all entries of a square m, and
// the 0-based (row, col) where it is attained (first occurrence in row-major
// order).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (non-square).
func IdentityDeviation(m Matrix) (dev float64, row, col int, err error) {
	d, err := asDense(m)
	if err != nil {
		return 0, 0, 0, matrixErrorf(opIdentityDv, err)
	}
	if err = ValidateSquare(d); err != nil {
		return 0, 0, 0, matrixErrorf(opIdentityDv, err)
	}

	var i, j int
	var want, diff float64
	for i = 0; i < d.r; i++ {
		for j = 0; j < d.c; j++ {
			want = 0
			if i == j {
				want = 1
			}
			diff = math.Abs(d.data[i*d.c+j] - want)
			if diff > dev || math.IsNaN(diff) {
				dev, row, col = diff, i, j
				if math.IsNaN(diff) {
					return math.Inf(1), row, col, nil
				}
			}
		}
	}

	return dev, row, col, nil
}
