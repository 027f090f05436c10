// SPDX-License-Identifier: MIT

// Package basis builds the structural matrices that log-ratio coordinates
// are projected on.
//
// ✨ Constructors:
//   - PairwiseMatrix(D)        — D×D(D−1)/2 contrasts, one column per pair {i<j}
//   - PivotBasis(D, order...)  — orthonormal binary cascade isolating one part per column
//   - SBPBasis(sbp)            — orthonormal basis from a Sequential Binary Partition
//   - ALRMatrix(D, denom)      — additive log-ratio contrasts against one part
//   - SBPFromPivot(D, order...) — the SBP whose basis equals PivotBasis
//
// Every column of an SBP with r parts coded +1 and s parts coded −1 becomes
// the balance
//
//	+sqrt(s / (r(r+s)))  on the +1 parts
//	−sqrt(r / (s(r+s)))  on the −1 parts
//	 0                   elsewhere
//
// which has unit norm and sums to zero. Part indices in the public API
// (pivot order, alr denominator) are 1-based.
package basis
