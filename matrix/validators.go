// SPDX-License-Identifier: MIT
// Package matrix: validators.
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels/facades minimal by delegating shape/nil checks here.
//   - Return plain sentinel errors (no wrapping) so call sites can wrap uniformly.
//
// Determinism & Performance:
//   - All checks are pure, deterministic and allocate nothing.
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).
//   - Aliasing between a destination and an input is NOT validated here — it
//     is an unchecked precondition of MulInto/TransposeInto by contract.

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
// Used internally to maintain consistent labeling of sentinel violations.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// A non-nil interface carrying a nil *Dense pointer is rejected too:
// such a value would pass an m == nil check and then panic on m.Rows().
//
// Returns ErrNilMatrix if m is nil either way.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}
	if d, ok := m.(*Dense); ok && d == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
// Assumes a and b are not nil (caller must ensure).
//
// Returns nil or wrapped ErrDimensionMismatch.
// Complexity: O(1).
func ValidateSameShape(a, b Matrix) error {
	if a.Rows() != b.Rows() {
		return validatorErrorf("ValidateSameShape: Rows", ErrDimensionMismatch)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateSameShape: Columns", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil (caller must ensure).
//
// Returns wrapped ErrNonSquare when violated.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateMulCompatible ensures a.Cols == b.Rows, inputs non-nil.
// Composite: NotNil(a) → NotNil(b) → inner-dimension check.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateMulCompatible", err)
	}
	if a.Cols() != b.Rows() {
		return validatorErrorf("ValidateMulCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateMulInto ensures dst is non-nil and shaped a.Rows × b.Cols on top
// of ValidateMulCompatible(a, b).
// Composite: MulCompatible(a,b) → NotNil(dst) → dst shape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateMulInto(dst, a, b Matrix) error {
	if err := ValidateMulCompatible(a, b); err != nil {
		return validatorErrorf("ValidateMulInto", err)
	}
	if err := ValidateNotNil(dst); err != nil {
		return validatorErrorf("ValidateMulInto", err)
	}
	if dst.Rows() != a.Rows() || dst.Cols() != b.Cols() {
		return validatorErrorf("ValidateMulInto", ErrDimensionMismatch)
	}

	return nil
}

// ValidateTransposeInto ensures dst is non-nil and shaped a.Cols × a.Rows.
// Composite: NotNil(a) → NotNil(dst) → flipped-shape check.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateTransposeInto(dst, a Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateTransposeInto", err)
	}
	if err := ValidateNotNil(dst); err != nil {
		return validatorErrorf("ValidateTransposeInto", err)
	}
	if dst.Rows() != a.Cols() || dst.Cols() != a.Rows() {
		return validatorErrorf("ValidateTransposeInto", ErrDimensionMismatch)
	}

	return nil
}

// ValidateSquareNonNil — Composite: NotNil → Square.
//
// Errors: ErrNilMatrix, ErrNonSquare.
// Complexity: O(1).
func ValidateSquareNonNil(m Matrix) error {
	if err := ValidateNotNil(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}
	if err := ValidateSquare(m); err != nil {
		return validatorErrorf("ValidateSquareNonNil", err)
	}

	return nil
}
