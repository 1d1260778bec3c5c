// SPDX-License-Identifier: MIT

// Package matrix - Dense: the mutate-in-place variant.
//
// Purpose:
//   - Provide a cache-friendly row-major buffer with the explicit index formula i*cols + j.
//   - Expose the same storage as [][]float64 row headers carved from that buffer,
//     so Data()/Row() give live 2D access while kernels run on one flat slice.
//   - Every operation except AppendRows, SplitColumns and Clone mutates the
//     receiver and returns it, enabling chains such as m.Multiply(2).Transpose().
//
// Aliasing contract:
//   - Row(i) and Data() alias live storage: writes through them are writes to
//     the matrix and vice versa.
//   - Dot and Transpose keep row headers intact when the shape is unchanged
//     (square cases). When the shape changes, headers are rebuilt and slices
//     obtained earlier must be considered stale.
//
// Complexity quicksheet:
//   - NewDense: O(r*c); At/Set/Row: O(1); elementwise ops: O(r*c);
//     Dot: O(r*n*c); Transpose: O(r*c) with one scratch buffer.

package matrix

import (
	"fmt"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// ---------- error context tags ----------

const (
	ctxAt  = "At"  // method tag used in error wrappers
	ctxSet = "Set" // method tag used in error wrappers
)

// ---------- Formatting literals ----------
const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// denseErrorf wraps an error with a uniform Dense context and callsite indices.
// Format: "Dense.<method>(row,col): <err>"; the sentinel is preserved via %w.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// Dense is a concrete row-major matrix with mutate-in-place semantics.
//   - r,c hold dimensions (rows, cols), both > 0.
//   - data is a flat buffer of length r*c in row-major order (offset = i*c + j).
//   - rows[i] is data[i*c:(i+1)*c] with capped capacity.
type Dense struct {
	r, c int         // row and column counts
	data []float64   // contiguous row-major storage (len == r*c)
	rows [][]float64 // row headers over data (len == r)
}

// Compile-time assertions for interface & fmt.Stringer conformance.
var (
	_ Matrix       = (*Dense)(nil)
	_ fmt.Stringer = (*Dense)(nil)
)

// NewDense creates an r×c zero matrix using row-major storage.
// MAIN DESCRIPTION:
//   - Public constructor for Dense with strict shape validation.
//
// Implementation:
//   - Stage 1: validate rows>0 && cols>0; else ErrInvalidDimensions.
//   - Stage 2: allocate zero-filled buffer and carve row headers.
//
// Errors:
//   - ErrInvalidDimensions (shape contract violation).
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
//
// AI-Hints:
//   - Use NewDenseFrom to wrap literal data; Random/RandomNormal for initializers.
func NewDense(rows, cols int) (*Dense, error) {
	// Validate shape.
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}
	// make() zero-fills deterministically.
	buf := make([]float64, rows*cols)

	return &Dense{r: rows, c: cols, data: buf, rows: carveRows(buf, rows, cols)}, nil
}

// NewDenseFrom copies a rectangular [][]float64 into a new Dense.
// The input is never retained; later writes to data do not affect the matrix.
//
// Errors:
//   - ErrInvalidDimensions (no rows or empty first row), ErrRagged.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func NewDenseFrom(data [][]float64) (*Dense, error) {
	r, c, err := ValidateRectangular(data)
	if err != nil {
		return nil, matrixErrorf(opNewFrom, err)
	}
	m, err := NewDense(r, c)
	if err != nil {
		return nil, matrixErrorf(opNewFrom, err)
	}
	// Shapes are equal by construction; Copy cannot fail here.
	if err = Copy(data, m.rows); err != nil {
		return nil, matrixErrorf(opNewFrom, err)
	}

	return m, nil
}

// NewDenseFromMatrix returns a mutable deep copy of any Matrix.
// Fast-path for package variants (single flat copy); fallback reads via At.
//
// Errors: ErrNilMatrix, or any error surfaced by src.At.
// Complexity: O(r*c).
func NewDenseFromMatrix(src Matrix) (*Dense, error) {
	if err := ValidateNotNil(src); err != nil {
		return nil, matrixErrorf(opNewFromM, err)
	}
	buf, err := flatten(src)
	if err != nil {
		return nil, matrixErrorf(opNewFromM, err)
	}
	m, err := NewDense(src.Rows(), src.Cols())
	if err != nil {
		return nil, matrixErrorf(opNewFromM, err)
	}
	copy(m.data, buf)

	return m, nil
}

// newDenseFromRows packs helper output into a fresh Dense. Input must already
// be validated as rectangular.
func newDenseFromRows(rows [][]float64) *Dense {
	r, c := len(rows), len(rows[0])
	buf := make([]float64, r*c)
	for i := 0; i < r; i++ {
		copy(buf[i*c:(i+1)*c], rows[i])
	}

	return &Dense{r: r, c: c, data: buf, rows: carveRows(buf, r, c)}
}

// Rows returns the row count. Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the column count. Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// Shape packs Rows() and Cols() into a single call.
func (m *Dense) Shape() (rows, cols int) { return m.r, m.c }

// Mutable reports true: Dense operations mutate and return the receiver.
func (m *Dense) Mutable() bool { return true }

// Data returns the rows as headers over live storage. Writing data[i][j]
// writes the matrix; replacing data[i] itself does not.
func (m *Dense) Data() [][]float64 { return append([][]float64(nil), m.rows...) }

// indexOf computes the row-major offset or returns ErrOutOfRange.
// Public methods (At/Set) wrap the sentinel with coordinates and method name.
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r {
		return 0, ErrOutOfRange
	}
	if col < 0 || col >= m.c {
		return 0, ErrOutOfRange
	}

	// Row-major offset: i*c + j.
	return row*m.c + col, nil
}

// At returns the value at (row, col) or ErrOutOfRange.
// Complexity: O(1), no allocations.
func (m *Dense) At(row, col int) (float64, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf(ctxAt, row, col, err)
	}

	return m.data[off], nil
}

// Set stores v at (row, col) and returns the receiver.
// Returns (nil, ErrOutOfRange) on invalid indices; storage is untouched then.
func (m *Dense) Set(row, col int, v float64) (Matrix, error) {
	off, err := m.indexOf(row, col)
	if err != nil {
		return nil, denseErrorf(ctxSet, row, col, err)
	}
	m.data[off] = v

	return m, nil
}

// Row returns row i as a LIVE alias into the matrix storage.
// MAIN DESCRIPTION:
//   - Zero-copy access to one row; mutations through the slice mutate m.
//
// Errors:
//   - ErrOutOfRange when i is outside [0, Rows()).
//
// Notes:
//   - The slice capacity is capped at Cols(), so append() reallocates instead
//     of overwriting the next row.
//   - The alias becomes stale after a shape-changing Dot/Transpose.
//
// AI-Hints:
//   - Copy the slice (append([]float64(nil), row...)) when you need a snapshot,
//     or write through SetRow to keep mutations explicit.
func (m *Dense) Row(i int) ([]float64, error) {
	if err := ValidateRowIndex(m, i); err != nil {
		return nil, matrixErrorf(opRow, fmt.Errorf("row %d: %w", i, err))
	}

	return m.rows[i], nil
}

// SetRow copies values into row i and returns the receiver.
//
// Errors: ErrOutOfRange (bad i), ErrDimensionMismatch (len(values) != Cols()).
func (m *Dense) SetRow(i int, values []float64) (Matrix, error) {
	if err := ValidateRowIndex(m, i); err != nil {
		return nil, matrixErrorf(opSetRow, fmt.Errorf("row %d: %w", i, err))
	}
	if len(values) != m.c {
		return nil, matrixErrorf(opSetRow, fmt.Errorf("len %d vs cols %d: %w", len(values), m.c, ErrDimensionMismatch))
	}
	copy(m.rows[i], values)

	return m, nil
}

// AppendRows returns a NEW Dense with m's rows followed by other's rows.
// MAIN DESCRIPTION:
//   - Shape-changing operation; neither m nor other is modified.
//
// Implementation:
//   - Stage 1: ValidateAppendCompatible(m, other).
//   - Stage 2: delegate to the static AppendRows helper; pack into a new Dense.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (column counts differ).
//
// Complexity:
//   - Time O((r1+r2)*c), Space O((r1+r2)*c).
func (m *Dense) AppendRows(other Matrix) (Matrix, error) {
	out, err := m.appendRows(other)
	if err != nil {
		return nil, err
	}

	return out, nil
}

// appendRows is AppendRows with the concrete return type; it never mutates m.
func (m *Dense) appendRows(other Matrix) (*Dense, error) {
	if err := ValidateAppendCompatible(m, other); err != nil {
		return nil, matrixErrorf(opAppendRows, err)
	}
	below, err := rowsOf(other)
	if err != nil {
		return nil, matrixErrorf(opAppendRows, err)
	}
	out, err := AppendRows(m.rows, below)
	if err != nil {
		return nil, err // already tagged by the helper
	}

	return newDenseFromRows(out), nil
}

// SplitColumns returns pieces NEW Dense matrices of width Cols()/pieces.
//
// Errors: ErrInvalidPieces, ErrUnevenSplit (see ValidateSplit).
// Complexity: O(r*c).
func (m *Dense) SplitColumns(pieces int) ([]Matrix, error) {
	parts, err := m.splitColumns(pieces)
	if err != nil {
		return nil, err
	}
	out := make([]Matrix, len(parts))
	for p, d := range parts {
		out[p] = d
	}

	return out, nil
}

// splitColumns is SplitColumns with the concrete element type.
func (m *Dense) splitColumns(pieces int) ([]*Dense, error) {
	blocks, err := SplitColumns(m.rows, pieces)
	if err != nil {
		return nil, err // already tagged by the helper
	}
	out := make([]*Dense, len(blocks))
	for p, b := range blocks {
		out[p] = newDenseFromRows(b)
	}

	return out, nil
}

// adopt installs a freshly computed r×c result into the receiver while
// keeping its identity.
//   - Same shape: scratch is copied into the existing flat buffer, so row
//     headers (and Row aliases) stay valid.
//   - Otherwise: the existing buffer is reused when its capacity suffices,
//     else the scratch buffer is adopted; row headers are rebuilt.
func (m *Dense) adopt(r, c int, scratch []float64) {
	if r == m.r && c == m.c {
		copy(m.data, scratch)
		return
	}
	if cap(m.data) >= len(scratch) {
		m.data = m.data[:len(scratch)]
		copy(m.data, scratch)
	} else {
		m.data = scratch
	}
	m.r, m.c = r, c
	m.rows = carveRows(m.data, r, c)
}

// Dot replaces m with the product m × other and returns m.
// MAIN DESCRIPTION:
//   - product[i][j] = Σ_k m[i][k] * other[k][j], computed into a scratch
//     buffer and then written back so the receiver keeps its identity.
//
// Implementation:
//   - Stage 1: ValidateMulCompatible(m, other) (fail fast before any write).
//   - Stage 2: read other as a flat buffer (no copy for package variants).
//   - Stage 3: i→k→j accumulation into scratch; adopt(r, other.Cols()).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (m.Cols != other.Rows).
//
// Determinism:
//   - Each product[i][j] accumulates k in ascending order.
//
// Complexity:
//   - Time O(r*n*c), Space O(r*c) scratch.
//
// Notes:
//   - m.Dot(m) is legal for square m: all reads complete before the write-back.
//   - Zeros are not skipped, so 0*Inf still yields NaN as IEEE-754 requires.
func (m *Dense) Dot(other Matrix) (Matrix, error) {
	if err := ValidateMulCompatible(m, other); err != nil {
		return nil, matrixErrorf(opDot, err)
	}
	src, err := flatten(other)
	if err != nil {
		return nil, matrixErrorf(opDot, err)
	}

	r, n, c := m.r, m.c, other.Cols()
	scratch := make([]float64, r*c)
	var (
		i, k, j                int
		av                     float64
		rowA, rowB, rowProduct int
	)
	for i = 0; i < r; i++ {
		rowA = i * n
		rowProduct = i * c
		for k = 0; k < n; k++ {
			av = m.data[rowA+k]
			rowB = k * c
			for j = 0; j < c; j++ {
				scratch[rowProduct+j] += av * src[rowB+j]
			}
		}
	}
	m.adopt(r, c, scratch)

	return m, nil
}

// Add performs m += other elementwise and returns m.
// Shapes are validated before the first write (ErrNilMatrix, ErrDimensionMismatch).
// Complexity: O(r*c); the flat kernel is gonum floats.Add.
func (m *Dense) Add(other Matrix) (Matrix, error) { return m.addSub(other, true, opAdd) }

// Subtract performs m -= other elementwise and returns m.
// Same validation and complexity as Add; kernel is gonum floats.Sub.
func (m *Dense) Subtract(other Matrix) (Matrix, error) { return m.addSub(other, false, opSubtract) }

// addSub is the shared body of Add/Subtract.
func (m *Dense) addSub(other Matrix, add bool, opTag string) (Matrix, error) {
	if err := ValidateBinarySameShape(m, other); err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	src, err := flatten(other)
	if err != nil {
		return nil, matrixErrorf(opTag, err)
	}
	if add {
		floats.Add(m.data, src)
	} else {
		floats.Sub(m.data, src)
	}

	return m, nil
}

// Multiply scales every element by s in place and returns m.
func (m *Dense) Multiply(s float64) Matrix {
	floats.Scale(s, m.data)

	return m
}

// Divide divides every element by s in place and returns m.
// Returns ErrDivisionByZero when s == 0; m is untouched in that case.
func (m *Dense) Divide(s float64) (Matrix, error) {
	if err := ValidateDivisor(s); err != nil {
		return nil, matrixErrorf(opDivide, err)
	}
	m.divide(s)

	return m, nil
}

// divide is the unchecked Divide kernel; s must be non-zero.
func (m *Dense) divide(s float64) {
	for idx := range m.data {
		m.data[idx] /= s
	}
}

// Pow raises every element to p in place (math.Pow) and returns m.
// Negative bases with non-integer p produce NaN; that is not an error.
func (m *Dense) Pow(p float64) Matrix {
	for idx, v := range m.data {
		m.data[idx] = math.Pow(v, p)
	}

	return m
}

// Apply replaces each element v with f(v) in row-major order and returns m.
// A nil f leaves the matrix unchanged.
//
// AI-Hints:
//   - Keep f pure; it sees elements in i→j order but should not depend on it.
func (m *Dense) Apply(f Func) Matrix {
	if f == nil {
		return m
	}
	for idx, v := range m.data {
		m.data[idx] = f(v)
	}

	return m
}

// Transpose swaps rows and columns in place (shape becomes c×r) and returns m.
// Computed into a scratch buffer, then written back via adopt.
// Complexity: O(r*c) time, O(r*c) scratch.
func (m *Dense) Transpose() Matrix {
	r, c := m.r, m.c
	scratch := make([]float64, r*c)
	var i, j, base int
	for i = 0; i < r; i++ {
		base = i * c
		for j = 0; j < c; j++ {
			scratch[j*r+i] = m.data[base+j]
		}
	}
	m.adopt(c, r, scratch)

	return m
}

// Fill sets every element to v and returns m.
func (m *Dense) Fill(v float64) Matrix {
	for idx := range m.data {
		m.data[idx] = v
	}

	return m
}

// Clone returns a deep copy (new buffer, new row headers).
// Complexity: O(r*c).
func (m *Dense) Clone() Matrix { return m.clone() }

// clone is Clone with the concrete return type for internal callers.
func (m *Dense) clone() *Dense {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp, rows: carveRows(cp, m.r, m.c)}
}

// Do visits each element (i,j) in row-major order and calls f(i,j,v).
// Read-only; stops early when f returns false.
// Complexity: O(r*c), Space O(1).
func (m *Dense) Do(f func(i, j int, v float64) bool) {
	var i, j, base int
	for i = 0; i < m.r; i++ {
		base = i * m.c
		for j = 0; j < m.c; j++ {
			if !f(i, j, m.data[base+j]) {
				return
			}
		}
	}
}

// String renders rows as "[a, b]\n" lines with %g formatting.
// Intended for diagnostics, not hot paths.
func (m *Dense) String() string { return formatFlat(m.data, m.r, m.c) }

// formatFlat renders a row-major buffer; shared by Dense and Frozen.
func formatFlat(data []float64, r, c int) string {
	var b strings.Builder
	var i, j, base int
	for i = 0; i < r; i++ {
		b.WriteString(_fmtRowOpen)
		base = i * c
		for j = 0; j < c; j++ {
			fmt.Fprintf(&b, "%g", data[base+j])
			if j+1 < c {
				b.WriteString(_fmtSep)
			}
		}
		b.WriteString(_fmtRowClose)
	}

	return b.String()
}
