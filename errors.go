// SPDX-License-Identifier: MIT
// Package codatools: sentinel error set shared by every subpackage.
//
// All operations return these sentinels wrapped with call-site context
// ("CLR: 2 row(s) ... : coda: non-positive input"); callers match them with
// errors.Is. No operation panics on user input.
//
// ERROR PRIORITY (documented, enforced in tests):
// parameter -> dimension -> positivity -> structural (orthonormal/orthogonal).

package codatools

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	// ErrNonPositiveInput is returned when a composition row holds a
	// non-positive (or non-finite) entry.
	ErrNonPositiveInput = errors.New("coda: non-positive input")

	// ErrInvalidDimension signals a shape contract violation: wrong column
	// count, basis/data row mismatch, alr denominator outside [1,D], or an
	// nalr chain violating its size/nesting rules.
	ErrInvalidDimension = errors.New("coda: invalid dimension")

	// ErrInvalidParameter signals a malformed option: unknown norm type or
	// mode, negative or NaN tolerance, p < 1.
	ErrInvalidParameter = errors.New("coda: invalid parameter")

	// ErrNotOrthonormal signals that a basis fails max|ΨᵗΨ − I| < tol.
	ErrNotOrthonormal = errors.New("coda: basis is not orthonormal")

	// ErrNotOrthogonal signals an SBP whose partitions are not orthogonal,
	// or whose entries/columns are malformed.
	ErrNotOrthogonal = errors.New("coda: sbp is not orthogonal")

	// ErrNumericalInfeasible marks a pairwise table outside the range of the
	// contrast map. Recovery reports it through Result.Valid, not as an error.
	ErrNumericalInfeasible = errors.New("coda: pairwise table not in range of contrast map")

	// ErrNotConverged is returned when the bounded scalar minimizer exhausts
	// its iteration budget.
	ErrNotConverged = errors.New("coda: minimization did not converge")
)

// maxListedRows caps the number of indices spelled out in a row error.
const maxListedRows = 20

// RowsErrorf wraps err with the operation tag, the count of offending rows
// and their 1-based indices. rows holds 0-based indices.
//
//	RowsErrorf("CLR", ErrNonPositiveInput, []int{0, 3})
//	// CLR: 2 row(s) violate the contract at rows [1 4]: coda: non-positive input
func RowsErrorf(op string, err error, rows []int) error {
	var b strings.Builder
	b.WriteByte('[')
	for k, r := range rows {
		if k == maxListedRows {
			b.WriteString(" ...")
			break
		}
		if k > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(r + 1))
	}
	b.WriteByte(']')

	return fmt.Errorf("%s: %d row(s) violate the contract at rows %s: %w", op, len(rows), b.String(), err)
}
