// SPDX-License-Identifier: MIT

// Package pairwise reconstructs compositions from their pairwise log-ratios.
//
// A table PW of p = D(D−1)/2 columns is admissible when it lies in the range
// of the contrast map log X ↦ log X · H (H from basis.PairwiseMatrix). Recover
// solves the least-squares problem X_log = PW · H⁺ with the Moore–Penrose
// pseudoinverse, measures the per-row residual ‖PW − X_log·H‖₂ and accepts
// the table when the largest residual is below tolerance:
//
//	res, err := pairwise.Recover(PW)
//	if err != nil { ... }      // malformed input
//	if !res.Valid { ... }      // not a pairwise table; res.X is all NaN
//
// An inadmissible table is a normal outcome, reported through Result.Valid,
// never as an error.
package pairwise
