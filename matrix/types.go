// SPDX-License-Identifier: MIT

// Package matrix: public contract shared by every matrix variant.
// This file contains ONLY the interface and the small function/source types
// consumed by it. Errors and options live in dedicated files
// (errors.go, options.go).
package matrix

// Func is a caller-supplied elementwise mapping used by Apply.
// It should be pure; it is called exactly once per element in row-major order.
type Func func(float64) float64

// Source supplies uniform and Gaussian deviates to the random constructors.
// *math/rand.Rand satisfies it.
type Source interface {
	// Float64 returns a uniform deviate in [0, 1).
	Float64() float64

	// NormFloat64 returns a standard normal deviate (mean 0, stddev 1).
	NormFloat64() float64
}

// Matrix is a rows×cols rectangle of float64 values with an arithmetic
// surface. Two implementations exist and the chaining contract is explicit:
//
//   - *Dense (Mutable() == true): every operation except AppendRows,
//     SplitColumns and Clone mutates the receiver and returns it (same pointer).
//   - *Frozen (Mutable() == false): every operation returns a new *Frozen and
//     the receiver is never changed.
//
// Indices are 0-based. Operations that can fail validate everything before
// touching storage, so a failed call leaves the receiver unchanged.
type Matrix interface {
	// Rows returns the number of rows.
	// Complexity: O(1).
	Rows() int

	// Cols returns the number of columns.
	// Complexity: O(1).
	Cols() int

	// Shape packs Rows() and Cols() into a single call.
	Shape() (rows, cols int)

	// Mutable reports whether operations mutate and return the receiver.
	Mutable() bool

	// Data returns the rows of the matrix. For *Dense the rows alias live
	// storage; for *Frozen they are a fresh deep copy.
	// Complexity: O(1) for *Dense, O(r*c) for *Frozen.
	Data() [][]float64

	// At retrieves the element at (i, j).
	// Returns ErrOutOfRange if i<0, i>=Rows(), j<0 or j>=Cols().
	At(i, j int) (float64, error)

	// Set writes v at (i, j) and returns the resulting matrix.
	// Returns ErrOutOfRange if indices are invalid.
	Set(i, j int, v float64) (Matrix, error)

	// Row returns row i. For *Dense the slice aliases live storage until the
	// next shape-changing operation (Dot, Transpose); for *Frozen it is a copy.
	Row(i int) ([]float64, error)

	// SetRow overwrites row i with values (len(values) must equal Cols()).
	SetRow(i int, values []float64) (Matrix, error)

	// AppendRows returns a NEW matrix (same variant) holding the receiver's
	// rows followed by other's rows. Requires equal column counts.
	AppendRows(other Matrix) (Matrix, error)

	// SplitColumns returns pieces NEW matrices (same variant), each with
	// Cols()/pieces contiguous columns, ordered left to right.
	SplitColumns(pieces int) ([]Matrix, error)

	// Dot computes the matrix product receiver × other.
	// Requires Cols() == other.Rows(); the result is Rows() × other.Cols().
	Dot(other Matrix) (Matrix, error)

	// Add computes the elementwise sum. Shapes must be identical.
	Add(other Matrix) (Matrix, error)

	// Subtract computes the elementwise difference. Shapes must be identical.
	Subtract(other Matrix) (Matrix, error)

	// Multiply scales every element by s.
	Multiply(s float64) Matrix

	// Divide divides every element by s; ErrDivisionByZero when s == 0.
	Divide(s float64) (Matrix, error)

	// Pow raises every element to p (math.Pow; NaN is a legal result).
	Pow(p float64) Matrix

	// Apply replaces every element v by f(v).
	Apply(f Func) Matrix

	// Transpose swaps rows and columns; shape becomes Cols() × Rows().
	Transpose() Matrix

	// Fill sets every element to v.
	Fill(v float64) Matrix

	// Clone returns a copy of the same variant that no later operation on the
	// receiver can affect. *Dense deep-copies (O(rows*cols)); *Frozen returns
	// itself since it never changes.
	Clone() Matrix

	// String renders the matrix as "[a, b]\n[c, d]\n".
	String() string
}
