// SPDX-License-Identifier: MIT

// Package matrix is the raw-array core of the CoDa engine.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 table: rows are observations, columns are
//     parts (or coordinates). Compositions, bases and coordinate tables are
//     all Dense values.
//   - Deterministic kernels (Mul, Transpose, Gram) with flat-slice loops.
//   - Row statistics used by log-ratio transforms: CenterRowsBy (row
//     centering by an arbitrary location statistic) and NormalizeRowsL1
//     (closure to unit sum).
//   - Element-wise maps (Log, Exp) and comparisons (AllClose, MaxAbsDiff).
//   - Pinv, the Moore–Penrose pseudoinverse, backed by gonum's thin SVD.
//
// Every operation returns a fresh Dense; inputs are never mutated.
// Errors are package sentinels (errors.go) wrapped with the operation tag.
package matrix
