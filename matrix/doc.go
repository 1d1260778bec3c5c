// SPDX-License-Identifier: MIT

// Package matrix provides a dense float64 matrix with two explicit variants
// behind one Matrix interface.
//
// What:
//
//   - Dense:  mutate-in-place. Every arithmetic or shape operation changes the
//     receiver and returns it, so calls chain:
//     m.Multiply(2).Transpose().Fill(0). AppendRows, SplitColumns and Clone
//     allocate new matrices because they produce different objects.
//   - Frozen: copy-on-write. Every operation returns a new *Frozen; the
//     receiver never changes and is safe to share between goroutines.
//
// Operation surface (both variants):
//
//	At/Set/Row/SetRow/Data   element and row access (0-based, bounds-checked)
//	Add/Subtract             elementwise, identical shapes
//	Multiply/Divide          scalar scale; Divide(0) → ErrDivisionByZero
//	Pow/Apply                elementwise math.Pow / caller-supplied Func
//	Dot                      matrix product (r×n · n×c → r×c)
//	Transpose/Fill           shape swap / constant fill
//	AppendRows/SplitColumns  vertical concatenation / equal-width column blocks
//
// Representation-agnostic helpers AppendRows, SplitColumns and Copy work on
// raw [][]float64; Random and RandomNormal build Dense matrices from an
// injected Source (WithSeed, WithSource, WithScalar); ToGonum/FromGonum
// convert to and from gonum's mat.Dense.
//
// Errors:
//
//	All failures return package sentinels (ErrDimensionMismatch, ErrOutOfRange,
//	ErrDivisionByZero, ErrUnevenSplit, ...) wrapped with an operation tag; match
//	them with errors.Is. Shapes are validated before any write, so a failed
//	call leaves the receiver unchanged. Nothing panics on bad user input;
//	only With* option constructors panic, on nonsensical arguments.
//
// Aliasing:
//
//	Dense.Row and Dense.Data alias live storage. Frozen.Row and Frozen.Data
//	return copies.
//
// Concurrency:
//
//	Dense is not safe for concurrent mutation; guard it externally or Freeze it.
package matrix
