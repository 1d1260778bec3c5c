// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All operations MUST return these sentinels and tests MUST check them
// via errors.Is. No operation panics on user-triggered error conditions.
// Panics are reserved for programmer errors in option constructors.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Call sites wrap with an operation tag
// (matrixErrorf / denseErrorf / frozenErrorf); callers still use errors.Is.
//
// ERROR PRIORITY (enforced in tests):
// nil operand -> shape/index -> divisor/split policy.

var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set/Row/SetRow) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g., Add/Subtract different shapes, Dot where a.Cols != b.Rows,
	// AppendRows with different column counts, or Copy between unequal shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrDivisionByZero is returned by Divide when the scalar is exactly 0.
	ErrDivisionByZero = errors.New("matrix: division by zero")

	// ErrUnevenSplit is returned by SplitColumns when cols % pieces != 0.
	ErrUnevenSplit = errors.New("matrix: columns not evenly divisible by pieces")

	// ErrInvalidPieces is returned by SplitColumns when pieces <= 0 or pieces > cols.
	ErrInvalidPieces = errors.New("matrix: invalid number of pieces")

	// ErrRagged indicates a raw [][]float64 whose rows differ in length.
	ErrRagged = errors.New("matrix: ragged rows")

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")
)
