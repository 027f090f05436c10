// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for common validation checks.
//  - Keep kernels minimal by delegating shape/nil/finite checks here.
//  - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing.

package matrix

import "math"

// ValidateNotNil ensures the matrix reference is non-nil (including a typed
// nil *Dense hidden in the interface).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return ErrNilMatrix
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return ErrNilMatrix
	}

	return nil
}

// ValidateSameShape ensures a and b have identical shapes. Assumes non-nil.
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() || a.Cols() != b.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateBinarySameShape – NotNil(a), NotNil(b), then SameShape.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}

	return ValidateSameShape(a, b)
}

// ValidateMulCompatible – NotNil(a), NotNil(b), then a.Cols()==b.Rows().
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return err
	}
	if err := ValidateNotNil(b); err != nil {
		return err
	}
	if a.Cols() != b.Rows() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateSquare ensures the matrix is square. Assumes non-nil.
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return ErrDimensionMismatch
	}

	return nil
}

// ValidateFinite ensures every entry of m is finite. Assumes non-nil.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	d, err := asDense(m)
	if err != nil {
		return err
	}
	for _, v := range d.data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return ErrNaNInf
		}
	}

	return nil
}
