// SPDX-License-Identifier: MIT

// Package matrix - Frozen: the copy-on-write variant.
//
// Purpose:
//   - Same operation surface as Dense, but no operation ever changes the
//     receiver: each returns a new *Frozen holding the result.
//   - Data() and Row() hand out copies, so callers cannot reach the storage.
//
// Implementation:
//   - A Frozen owns a private *Dense that is never mutated after construction.
//     Every derived value runs the Dense kernel on a clone and freezes it, so
//     both variants share one set of loops and validators.
//
// Concurrency:
//   - A *Frozen is safe for concurrent use by multiple goroutines.
//
// Complexity:
//   - Every mutating-style call costs one O(r*c) copy on top of the kernel,
//     including Set and SetRow.

package matrix

import "fmt"

// frozenErrorf wraps an error with Frozen context and callsite indices.
func frozenErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Frozen.%s(%d,%d): %w", method, row, col, err)
}

// Frozen is an immutable row-major matrix with copy-on-write operations.
// Only the constructors (NewFrozen, NewFrozenFrom, Freeze) produce usable
// values. A zero Frozen{} holds no storage: validators report it as
// ErrNilMatrix and its methods must not be called.
type Frozen struct {
	d *Dense // private storage; never written after construction
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Frozen)(nil)
	_ fmt.Stringer = (*Frozen)(nil)
)

// NewFrozen returns an r×c zero matrix. Errors: ErrInvalidDimensions.
func NewFrozen(rows, cols int) (*Frozen, error) {
	d, err := NewDense(rows, cols)
	if err != nil {
		return nil, err
	}

	return &Frozen{d: d}, nil
}

// NewFrozenFrom copies a rectangular [][]float64 into a new Frozen.
// Errors: ErrInvalidDimensions, ErrRagged.
func NewFrozenFrom(data [][]float64) (*Frozen, error) {
	d, err := NewDenseFrom(data)
	if err != nil {
		return nil, err
	}

	return &Frozen{d: d}, nil
}

// Freeze returns an immutable snapshot of m. A *Frozen input is returned as is;
// anything else is deep-copied, so later writes to m are not observed.
//
// Errors: ErrNilMatrix, or any error surfaced by m.At.
// Complexity: O(1) for *Frozen, O(r*c) otherwise.
func Freeze(m Matrix) (*Frozen, error) {
	if f, ok := m.(*Frozen); ok && !isNilMatrix(f) {
		return f, nil
	}
	d, err := NewDenseFromMatrix(m)
	if err != nil {
		return nil, err
	}

	return &Frozen{d: d}, nil
}

// Thaw returns a mutable deep copy. Mutating it never affects f.
func (f *Frozen) Thaw() *Dense { return f.d.clone() }

// with clones the storage, applies a non-failing Dense kernel and freezes it.
func (f *Frozen) with(op func(*Dense)) *Frozen {
	cp := f.d.clone()
	op(cp)

	return &Frozen{d: cp}
}

// derive is with for kernels that validate and may fail.
func (f *Frozen) derive(op func(*Dense) error) (Matrix, error) {
	cp := f.d.clone()
	if err := op(cp); err != nil {
		return nil, err
	}

	return &Frozen{d: cp}, nil
}

// Rows returns the row count. Complexity: O(1).
func (f *Frozen) Rows() int { return f.d.r }

// Cols returns the column count. Complexity: O(1).
func (f *Frozen) Cols() int { return f.d.c }

// Shape packs Rows() and Cols() into a single call.
func (f *Frozen) Shape() (rows, cols int) { return f.d.r, f.d.c }

// Mutable reports false: Frozen operations return new instances.
func (f *Frozen) Mutable() bool { return false }

// Data returns a deep copy of the rows.
// Complexity: O(r*c).
func (f *Frozen) Data() [][]float64 { return f.d.clone().rows }

// At returns the value at (row, col) or ErrOutOfRange.
func (f *Frozen) At(row, col int) (float64, error) {
	off, err := f.d.indexOf(row, col)
	if err != nil {
		return 0, frozenErrorf(ctxAt, row, col, err)
	}

	return f.d.data[off], nil
}

// Set returns a new Frozen equal to f except at (row, col).
// Errors: ErrOutOfRange (f is unchanged either way).
func (f *Frozen) Set(row, col int, v float64) (Matrix, error) {
	off, err := f.d.indexOf(row, col)
	if err != nil {
		return nil, frozenErrorf(ctxSet, row, col, err)
	}

	return f.with(func(d *Dense) { d.data[off] = v }), nil
}

// Row returns a copy of row i. Errors: ErrOutOfRange.
func (f *Frozen) Row(i int) ([]float64, error) {
	if err := ValidateRowIndex(f, i); err != nil {
		return nil, matrixErrorf(opRow, fmt.Errorf("row %d: %w", i, err))
	}

	return append([]float64(nil), f.d.rows[i]...), nil
}

// SetRow returns a new Frozen with row i replaced by values.
// Errors: ErrOutOfRange, ErrDimensionMismatch.
func (f *Frozen) SetRow(i int, values []float64) (Matrix, error) {
	return f.derive(func(d *Dense) error {
		_, err := d.SetRow(i, values)
		return err
	})
}

// AppendRows returns a new Frozen with f's rows followed by other's rows.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (f *Frozen) AppendRows(other Matrix) (Matrix, error) {
	d, err := f.d.appendRows(other)
	if err != nil {
		return nil, err
	}

	return &Frozen{d: d}, nil
}

// SplitColumns returns pieces new Frozen blocks, left to right.
// Errors: ErrInvalidPieces, ErrUnevenSplit.
func (f *Frozen) SplitColumns(pieces int) ([]Matrix, error) {
	parts, err := f.d.splitColumns(pieces)
	if err != nil {
		return nil, err
	}
	out := make([]Matrix, len(parts))
	for p, d := range parts {
		out[p] = &Frozen{d: d}
	}

	return out, nil
}

// Dot returns f × other as a new Frozen.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (f *Frozen) Dot(other Matrix) (Matrix, error) {
	return f.derive(func(d *Dense) error {
		_, err := d.Dot(other)
		return err
	})
}

// Add returns f + other as a new Frozen.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (f *Frozen) Add(other Matrix) (Matrix, error) {
	return f.derive(func(d *Dense) error {
		_, err := d.Add(other)
		return err
	})
}

// Subtract returns f - other as a new Frozen.
// Errors: ErrNilMatrix, ErrDimensionMismatch.
func (f *Frozen) Subtract(other Matrix) (Matrix, error) {
	return f.derive(func(d *Dense) error {
		_, err := d.Subtract(other)
		return err
	})
}

// Multiply returns s*f as a new Frozen.
func (f *Frozen) Multiply(s float64) Matrix {
	return f.with(func(d *Dense) { d.Multiply(s) })
}

// Divide returns f/s as a new Frozen. Errors: ErrDivisionByZero.
func (f *Frozen) Divide(s float64) (Matrix, error) {
	if err := ValidateDivisor(s); err != nil {
		return nil, matrixErrorf(opDivide, err)
	}

	return f.with(func(d *Dense) { d.divide(s) }), nil
}

// Pow returns f with every element raised to p.
func (f *Frozen) Pow(p float64) Matrix {
	return f.with(func(d *Dense) { d.Pow(p) })
}

// Apply returns f with every element v replaced by fn(v).
func (f *Frozen) Apply(fn Func) Matrix {
	return f.with(func(d *Dense) { d.Apply(fn) })
}

// Transpose returns fᵀ as a new Frozen.
func (f *Frozen) Transpose() Matrix {
	return f.with(func(d *Dense) { d.Transpose() })
}

// Fill returns a new Frozen of the same shape with every element set to v.
func (f *Frozen) Fill(v float64) Matrix {
	return f.with(func(d *Dense) { d.Fill(v) })
}

// Clone returns f itself: sharing an immutable value is indistinguishable
// from copying it.
func (f *Frozen) Clone() Matrix { return f }

// String renders rows as "[a, b]\n" lines with %g formatting.
func (f *Frozen) String() string { return f.d.String() }
