// SPDX-License-Identifier: MIT
// Package matrix: operation tags and operand access shared by both variants.
//
// Purpose:
//   - Define operation tags for uniform error wrapping (no magic strings).
//   - Provide operand readers with a flat-slice fast-path for the package
//     variants and an At-based fallback for foreign Matrix implementations.

package matrix

import "fmt"

// Operation name constants for unified error wrapping.
const (
	opAdd          = "Add"
	opSubtract     = "Subtract"
	opDot          = "Dot"
	opDivide       = "Divide"
	opAppendRows   = "AppendRows"
	opSplitColumns = "SplitColumns"
	opCopy         = "Copy"
	opRow          = "Row"
	opSetRow       = "SetRow"
	opNewFrom      = "NewDenseFrom"
	opNewFromM     = "NewDenseFromMatrix"
	opRandom       = "Random"
	opRandomNormal = "RandomNormal"
	opIdentity     = "NewIdentity"
	opAllClose     = "AllClose"
	opFromGonum    = "FromGonum"
	opToGonum      = "ToGonum"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Always gate calls with `if err != nil { return nil, matrixErrorf(tag, err) }`.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// rawOf returns the row-major flat buffer of a package variant.
// The returned slice must be treated as read-only by callers other than *Dense
// operating on itself.
func rawOf(m Matrix) ([]float64, bool) {
	switch v := m.(type) {
	case *Dense:
		return v.data, true
	case *Frozen:
		return v.d.data, true
	}

	return nil, false
}

// flatten reads m into a row-major buffer. Package variants are returned
// without copying; foreign implementations are materialized through At.
//
// Complexity: O(1) fast-path; O(r*c) fallback.
func flatten(m Matrix) ([]float64, error) {
	if raw, ok := rawOf(m); ok {
		return raw, nil
	}

	r, c := m.Rows(), m.Cols()
	buf := make([]float64, r*c)
	var (
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return nil, fmt.Errorf("At(%d,%d): %w", i, j, err)
			}
			buf[i*c+j] = v
		}
	}

	return buf, nil
}

// rowsOf returns m as [][]float64 for the static helpers. Package variants
// hand out their row headers without copying.
func rowsOf(m Matrix) ([][]float64, error) {
	switch v := m.(type) {
	case *Dense:
		return v.rows, nil
	case *Frozen:
		return v.d.rows, nil
	}

	buf, err := flatten(m)
	if err != nil {
		return nil, err
	}

	return carveRows(buf, m.Rows(), m.Cols()), nil
}

// carveRows slices a flat row-major buffer into r row headers of width c.
// Each header has its capacity capped, so appending to a row never spills
// into the next one.
func carveRows(buf []float64, r, c int) [][]float64 {
	rows := make([][]float64, r)
	var lo int
	for i := 0; i < r; i++ {
		lo = i * c
		rows[i] = buf[lo : lo+c : lo+c]
	}

	return rows
}
