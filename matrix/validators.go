// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//   - Provide a single, canonical source of truth for common validation checks.
//   - Keep kernels minimal by delegating shape/nil/index checks here.
//   - Every operation validates fully BEFORE its first write, so a failed
//     call never leaves a half-updated receiver behind.
//
// Determinism & Performance:
//   - Matrix checks are O(1) and allocate nothing.
//   - ValidateRectangular is O(rows) over a raw [][]float64.
//
// Note:
//   - Each composite validator follows a fixed sequence (e.g. NotNil → Shape).

package matrix

import "fmt"

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// isNilMatrix catches both an untyped nil interface and a typed nil pointer
// of a package variant stored in the interface.
func isNilMatrix(m Matrix) bool {
	switch v := m.(type) {
	case nil:
		return true
	case *Dense:
		return v == nil
	case *Frozen:
		return v == nil || v.d == nil
	}

	return false
}

// ValidateNotNil ensures the matrix reference is non-nil.
//
// Returns ErrNilMatrix if m == nil (including a typed nil *Dense/*Frozen).
// Complexity: O(1).
// AI-Hints: Use as the first step in composite validations.
func ValidateNotNil(m Matrix) error {
	if isNilMatrix(m) {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSameShape ensures matrices a and b have equal dimensions.
//
// Implementation: Assumes a and b are not nil (caller must ensure).
// Return: nil or wrapped ErrDimensionMismatch.
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

// ValidateBinarySameShape – Composite: NotNil(a) → NotNil(b) → SameShape.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
// AI-Hints: Use for Add/Subtract guards.
func ValidateBinarySameShape(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}
	if err := ValidateSameShape(a, b); err != nil {
		return validatorErrorf("ValidateBinarySameShape", err)
	}

	return nil
}

// ValidateMulCompatible – Ensures a.Cols == b.Rows, inputs non-nil.
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

// ValidateAppendCompatible – Ensures a.Cols == b.Cols, inputs non-nil.
//
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(1).
func ValidateAppendCompatible(a, b Matrix) error {
	if err := ValidateNotNil(a); err != nil {
		return validatorErrorf("ValidateAppendCompatible", err)
	}
	if err := ValidateNotNil(b); err != nil {
		return validatorErrorf("ValidateAppendCompatible", err)
	}
	if a.Cols() != b.Cols() {
		return validatorErrorf("ValidateAppendCompatible", ErrDimensionMismatch)
	}

	return nil
}

// ValidateIndex checks 0 ≤ i < m.Rows() and 0 ≤ j < m.Cols().
// Assumes m is not nil.
func ValidateIndex(m Matrix, i, j int) error {
	if i < 0 || i >= m.Rows() || j < 0 || j >= m.Cols() {
		return validatorErrorf("ValidateIndex", ErrOutOfRange)
	}

	return nil
}

// ValidateRowIndex checks 0 ≤ i < m.Rows(). Assumes m is not nil.
func ValidateRowIndex(m Matrix, i int) error {
	if i < 0 || i >= m.Rows() {
		return validatorErrorf("ValidateRowIndex", ErrOutOfRange)
	}

	return nil
}

// ValidateSplit checks that cols can be cut into pieces equal-width blocks.
//
// Errors:
//   - ErrInvalidPieces when pieces <= 0 or pieces > cols.
//   - ErrUnevenSplit when cols % pieces != 0.
//
// Complexity: O(1).
func ValidateSplit(cols, pieces int) error {
	if pieces <= 0 || pieces > cols {
		return validatorErrorf("ValidateSplit", ErrInvalidPieces)
	}
	if cols%pieces != 0 {
		return validatorErrorf("ValidateSplit", ErrUnevenSplit)
	}

	return nil
}

// ValidateDivisor rejects an exact zero divisor with ErrDivisionByZero.
// Negative zero compares equal to zero and is rejected as well.
func ValidateDivisor(s float64) error {
	if s == 0 {
		return validatorErrorf("ValidateDivisor", ErrDivisionByZero)
	}

	return nil
}

// ValidateRectangular checks that a raw 2D array is non-empty and that every
// row has the same, positive length. It returns the detected shape.
//
// Errors:
//   - ErrInvalidDimensions when there are no rows or the first row is empty.
//   - ErrRagged when some row length differs from the first.
//
// Complexity: O(rows).
func ValidateRectangular(a [][]float64) (rows, cols int, err error) {
	if len(a) == 0 || len(a[0]) == 0 {
		return 0, 0, validatorErrorf("ValidateRectangular", ErrInvalidDimensions)
	}
	cols = len(a[0])
	for i := 1; i < len(a); i++ {
		if len(a[i]) != cols {
			return 0, 0, validatorErrorf(fmt.Sprintf("ValidateRectangular: row %d", i), ErrRagged)
		}
	}

	return len(a), cols, nil
}
