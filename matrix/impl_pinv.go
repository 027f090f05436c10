// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Moore–Penrose pseudoinverse A⁺ via a thin singular value decomposition.
//     The pairwise contrast matrix is rank-deficient (rank D−1), so a plain
//     inverse or normal-equation solve does not apply.
//
// Implementation:
//   - Stage 1: copy A into a gonum mat.Dense and factorize with mat.SVDThin.
//   - Stage 2: drop singular values ≤ rcond·σ_max, invert the rest.
//   - Stage 3: A⁺ = V · diag(1/σ) · Uᵀ, copied back into a Dense.

package matrix

import (
	"gonum.org/v1/gonum/mat"
)

const opPinv = "Pinv"

// DefaultPinvRcond is the relative cutoff below which singular values are
// treated as zero.
const DefaultPinvRcond = 1e-12

// Pinv returns the Moore–Penrose pseudoinverse of a (r×c → c×r).
//
// Errors:
//   - ErrNilMatrix, ErrNaNInf (non-finite input), ErrSingular (SVD failed).
//
// Complexity:
//   - Time O(r*c*min(r,c)), Space O(r*c).
func Pinv(a Matrix) (*Dense, error) {
	d, err := asDense(a)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	if err = ValidateFinite(d); err != nil {
		return nil, matrixErrorf(opPinv, err)
	}

	g := mat.NewDense(d.r, d.c, append([]float64(nil), d.data...))
	var svd mat.SVD
	if ok := svd.Factorize(g, mat.SVDThin); !ok {
		return nil, matrixErrorf(opPinv, ErrSingular)
	}

	s := svd.Values(nil)
	var u, v mat.Dense
	svd.UTo(&u) // r×k
	svd.VTo(&v) // c×k

	cutoff := 0.0
	if len(s) > 0 {
		cutoff = DefaultPinvRcond * s[0]
	}
	vr, _ := v.Dims()
	var inv float64
	for k, sk := range s {
		inv = 0
		if sk > cutoff {
			inv = 1 / sk
		}
		for i := 0; i < vr; i++ {
			v.Set(i, k, v.At(i, k)*inv)
		}
	}

	var p mat.Dense
	p.Mul(&v, u.T()) // c×r

	out, err := NewDense(d.c, d.r)
	if err != nil {
		return nil, matrixErrorf(opPinv, err)
	}
	for i := 0; i < out.r; i++ {
		for j := 0; j < out.c; j++ {
			out.data[i*out.c+j] = p.At(i, j)
		}
	}

	return out, nil
}
