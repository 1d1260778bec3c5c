// SPDX-License-Identifier: MIT
// Package matrix: public API facades.
//
// Purpose:
//   - Provide thin entry points for common tasks across the package.
//   - Avoid logic duplication: each facade delegates to the canonical
//     Dense kernel on a fresh copy, so operands are never mutated.
//
// AI-Hints:
//   - Use the facades when you hold a Matrix of unknown variant and must not
//     disturb it; call the methods directly for in-place chains on *Dense.
//   - AllClose with small tolerances is ideal for invariance tests.

package matrix

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/floats/scalar"
)

// NewIdentity returns I_n (ones on the diagonal, zeros elsewhere).
// Errors: ErrInvalidDimensions when n <= 0.
// Complexity: O(n^2) zeroing + O(n) diagonal writes.
func NewIdentity(n int) (*Dense, error) {
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}

// ZerosLike returns a new zero Dense with the same shape as m.
func ZerosLike(m Matrix) (*Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, err
	}

	return NewDense(m.Rows(), m.Cols())
}

// Product returns a × b as a new Dense; neither operand is modified.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
// Complexity: O(r*n*c).
func Product(a, b Matrix) (*Dense, error) {
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opDot, err)
	}
	out, err := NewDenseFromMatrix(a)
	if err != nil {
		return nil, err
	}
	if _, err = out.Dot(b); err != nil {
		return nil, err
	}

	return out, nil
}

// Sum returns a + b as a new Dense; neither operand is modified.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Sum(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opAdd, err)
	}
	out, err := NewDenseFromMatrix(a)
	if err != nil {
		return nil, err
	}
	if _, err = out.Add(b); err != nil {
		return nil, err
	}

	return out, nil
}

// Diff returns a − b as a new Dense; neither operand is modified.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func Diff(a, b Matrix) (*Dense, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return nil, matrixErrorf(opSubtract, err)
	}
	out, err := NewDenseFromMatrix(a)
	if err != nil {
		return nil, err
	}
	if _, err = out.Subtract(b); err != nil {
		return nil, err
	}

	return out, nil
}

// T returns mᵀ as a new Dense; m is not modified.
// Errors: ErrNilMatrix.
func T(m Matrix) (*Dense, error) {
	out, err := NewDenseFromMatrix(m)
	if err != nil {
		return nil, err
	}
	out.Transpose()

	return out, nil
}

// Equal reports exact elementwise equality with identical shapes.
// Nil or differently shaped operands are simply not equal; NaN != NaN.
// Complexity: O(r*c).
func Equal(a, b Matrix) bool {
	if ValidateBinarySameShape(a, b) != nil {
		return false
	}
	fa, err := flatten(a)
	if err != nil {
		return false
	}
	fb, err := flatten(b)
	if err != nil {
		return false
	}

	return floats.Equal(fa, fb)
}

// AllClose reports whether every pair of elements is within the absolute
// tolerance or the relative tolerance (gonum scalar.EqualWithinAbsOrRel).
// Tolerances default to DefaultAbsTol/DefaultRelTol; override with WithTolerance.
// NaN is never close to anything; +Inf is close to +Inf.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch.
//
// Complexity:
//   - Time O(r*c), Space O(1) for package variants.
func AllClose(a, b Matrix, opts ...Option) (bool, error) {
	if err := ValidateBinarySameShape(a, b); err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	fa, err := flatten(a)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}
	fb, err := flatten(b)
	if err != nil {
		return false, matrixErrorf(opAllClose, err)
	}

	o := gatherOptions(opts...)
	for idx := range fa {
		if !scalar.EqualWithinAbsOrRel(fa[idx], fb[idx], o.atol, o.rtol) {
			return false, nil // early exit on first violation
		}
	}

	return true, nil
}
