// SPDX-License-Identifier: MIT

// Package matrix: converters to and from gonum's mat package.
//
// Purpose:
//   - Hand a matrix to gonum for routines this package does not provide
//     (decompositions, solvers) and bring results back.
//   - Both directions copy, so the two libraries never share storage.
//
// Complexity:
//   - O(r*c) each way.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// ToGonum copies m into a new *mat.Dense.
// Errors: ErrNilMatrix, or any error surfaced by m.At for foreign variants.
func ToGonum(m Matrix) (*mat.Dense, error) {
	if err := ValidateNotNil(m); err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	src, err := flatten(m)
	if err != nil {
		return nil, matrixErrorf(opToGonum, err)
	}
	buf := make([]float64, len(src))
	copy(buf, src) // mat.NewDense adopts its slice; never give it ours

	return mat.NewDense(m.Rows(), m.Cols(), buf), nil
}

// FromGonum copies any gonum mat.Matrix into a new Dense.
// MAIN DESCRIPTION:
//   - Fast-path for *mat.Dense reads the raw strided buffer row by row;
//     other implementations are read through At.
//
// Errors:
//   - ErrNilMatrix (nil input), ErrInvalidDimensions (empty gonum matrix).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func FromGonum(g mat.Matrix) (*Dense, error) {
	if g == nil {
		return nil, matrixErrorf(opFromGonum, ErrNilMatrix)
	}
	r, c := g.Dims()
	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opFromGonum, fmt.Errorf("%dx%d: %w", r, c, err))
	}

	var i, j int
	if gd, ok := g.(*mat.Dense); ok {
		raw := gd.RawMatrix()
		for i = 0; i < r; i++ {
			copy(m.rows[i], raw.Data[i*raw.Stride:i*raw.Stride+c])
		}
		return m, nil
	}

	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			m.data[i*c+j] = g.At(i, j)
		}
	}

	return m, nil
}
