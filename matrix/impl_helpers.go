// SPDX-License-Identifier: MIT
// Package matrix: representation-agnostic helpers over raw [][]float64.
//
// Purpose:
//   - AppendRows, SplitColumns and Copy work on plain 2D arrays so any variant
//     (and any caller holding raw data) can reuse them.
//   - AppendRows and SplitColumns are shape-pure: inputs are never modified and
//     every returned array owns freshly allocated, contiguous storage.
//
// Determinism:
//   - Fixed i→j traversal; no allocation beyond the returned storage.

package matrix

import "fmt"

// AppendRows stacks b under a and returns a new (ra+rb)×c array.
// MAIN DESCRIPTION:
//   - Vertical concatenation of two rectangular arrays with equal width.
//
// Implementation:
//   - Stage 1: validate both inputs are rectangular; compare column counts.
//   - Stage 2: allocate one flat buffer, carve row headers, copy a then b.
//
// Inputs:
//   - a, b: non-empty rectangular arrays with the same column count.
//
// Returns:
//   - [][]float64: new array; the first len(a) rows equal a, the rest equal b.
//
// Errors:
//   - ErrInvalidDimensions, ErrRagged (malformed input).
//   - ErrDimensionMismatch (column counts differ).
//
// Complexity:
//   - Time O((ra+rb)*c), Space O((ra+rb)*c).
//
// Notes:
//   - a and b may be the same array; the output never aliases either input.
func AppendRows(a, b [][]float64) ([][]float64, error) {
	ra, ca, err := ValidateRectangular(a)
	if err != nil {
		return nil, matrixErrorf(opAppendRows, err)
	}
	rb, cb, err := ValidateRectangular(b)
	if err != nil {
		return nil, matrixErrorf(opAppendRows, err)
	}
	if ca != cb {
		return nil, matrixErrorf(opAppendRows, fmt.Errorf("cols %d vs %d: %w", ca, cb, ErrDimensionMismatch))
	}

	out := carveRows(make([]float64, (ra+rb)*ca), ra+rb, ca)
	var i int
	for i = 0; i < ra; i++ {
		copy(out[i], a[i])
	}
	for i = 0; i < rb; i++ {
		copy(out[ra+i], b[i])
	}

	return out, nil
}

// SplitColumns cuts a into pieces column blocks of equal width, left to right.
// MAIN DESCRIPTION:
//   - Piece p holds columns [p*w, (p+1)*w) of every row, where w = cols/pieces.
//
// Implementation:
//   - Stage 1: validate rectangular input and the split policy.
//   - Stage 2: allocate one buffer per piece and copy row segments.
//
// Errors:
//   - ErrInvalidDimensions, ErrRagged (malformed input).
//   - ErrInvalidPieces (pieces <= 0 or pieces > cols).
//   - ErrUnevenSplit (cols not divisible by pieces; no remainder policy).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Reassembling the pieces left to right reproduces a exactly.
func SplitColumns(a [][]float64, pieces int) ([][][]float64, error) {
	r, c, err := ValidateRectangular(a)
	if err != nil {
		return nil, matrixErrorf(opSplitColumns, err)
	}
	if err = ValidateSplit(c, pieces); err != nil {
		return nil, matrixErrorf(opSplitColumns, fmt.Errorf("cols=%d pieces=%d: %w", c, pieces, err))
	}

	w := c / pieces // width of every block
	out := make([][][]float64, pieces)
	var p, i, lo int
	for p = 0; p < pieces; p++ {
		block := carveRows(make([]float64, r*w), r, w)
		lo = p * w
		for i = 0; i < r; i++ {
			copy(block[i], a[i][lo:lo+w])
		}
		out[p] = block
	}

	return out, nil
}

// Copy overwrites dst with src elementwise. Shapes must be identical.
//
// Errors: ErrInvalidDimensions/ErrRagged for malformed input,
// ErrDimensionMismatch when shapes differ. dst is untouched on error.
// Complexity: O(r*c).
func Copy(src, dst [][]float64) error {
	rs, cs, err := ValidateRectangular(src)
	if err != nil {
		return matrixErrorf(opCopy, err)
	}
	rd, cd, err := ValidateRectangular(dst)
	if err != nil {
		return matrixErrorf(opCopy, err)
	}
	if rs != rd || cs != cd {
		return matrixErrorf(opCopy, fmt.Errorf("%dx%d into %dx%d: %w", rs, cs, rd, cd, ErrDimensionMismatch))
	}

	for i := 0; i < rs; i++ {
		copy(dst[i], src[i])
	}

	return nil
}
