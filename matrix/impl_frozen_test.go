// SPDX-License-Identifier: MIT

// Package matrix_test contains unit tests for the Frozen (copy-on-write)
// implementation of the Matrix interface.
package matrix_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

var frozenBase = [][]float64{{1, 2}, {3, 4}}

// TestFrozenNeverMutates runs every operation and checks the receiver afterwards.
func TestFrozenNeverMutates(t *testing.T) {
	f := mustFrozen(t, frozenBase)
	other := mustDense(t, [][]float64{{5, 6}, {7, 8}})
	require.False(t, f.Mutable())

	fresh := func(out matrix.Matrix, err error) {
		t.Helper()
		require.NoError(t, err)
		require.NotSame(t, f, out)
		require.False(t, out.Mutable())
		requireRows(t, frozenBase, f)
	}
	fresh(f.Set(0, 0, 9))
	fresh(f.SetRow(1, []float64{0, 0}))
	fresh(f.Add(other))
	fresh(f.Subtract(other))
	fresh(f.Dot(other))
	fresh(f.Divide(2))
	fresh(f.AppendRows(other))
	fresh(f.Multiply(2), nil)
	fresh(f.Pow(2), nil)
	fresh(f.Apply(math.Sqrt), nil)
	fresh(f.Transpose(), nil)
	fresh(f.Fill(0), nil)

	parts, err := f.SplitColumns(2)
	require.NoError(t, err)
	require.Len(t, parts, 2)
	requireRows(t, frozenBase, f)
}

// TestFrozenResults checks values produced by the copy-on-write operations.
func TestFrozenResults(t *testing.T) {
	f := mustFrozen(t, frozenBase)
	n := mustFrozen(t, [][]float64{{5, 6}, {7, 8}})

	prod, err := f.Dot(n)
	require.NoError(t, err)
	requireRows(t, [][]float64{{19, 22}, {43, 50}}, prod)

	sum, err := f.Add(n)
	require.NoError(t, err)
	requireRows(t, [][]float64{{6, 8}, {10, 12}}, sum)

	set, err := f.Set(1, 1, 40)
	require.NoError(t, err)
	requireRows(t, [][]float64{{1, 2}, {3, 40}}, set)

	requireRows(t, [][]float64{{1, 3}, {2, 4}}, f.Transpose())

	half, err := f.Divide(2)
	require.NoError(t, err)
	requireRows(t, [][]float64{{0.5, 1}, {1.5, 2}}, half)
}

// TestFrozenZeroValueIsNil checks that an unconstructed Frozen is rejected
// as a nil operand instead of being dereferenced.
func TestFrozenZeroValueIsNil(t *testing.T) {
	zero := &matrix.Frozen{}

	require.ErrorIs(t, matrix.ValidateNotNil(zero), matrix.ErrNilMatrix)

	_, err := matrix.Freeze(zero)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = mustDense(t, frozenBase).Add(zero)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	_, err = mustFrozen(t, frozenBase).Dot(zero)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestFrozenDataAndRowAreCopies ensures callers cannot reach the storage.
func TestFrozenDataAndRowAreCopies(t *testing.T) {
	f := mustFrozen(t, frozenBase)

	f.Data()[0][0] = 100
	row, err := f.Row(1)
	require.NoError(t, err)
	row[0] = 100

	requireRows(t, frozenBase, f)

	_, err = f.Row(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestFrozenErrors covers the failure taxonomy on the immutable variant.
func TestFrozenErrors(t *testing.T) {
	f := mustFrozen(t, frozenBase)

	_, err := f.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.Contains(t, err.Error(), "Frozen.At(2,0)")

	_, err = f.Set(0, 2, 1)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = f.Dot(mustFrozen(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = f.Add(mustFrozen(t, [][]float64{{1}}))
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	_, err = f.Divide(0)
	require.ErrorIs(t, err, matrix.ErrDivisionByZero)

	_, err = f.SplitColumns(3)
	require.ErrorIs(t, err, matrix.ErrInvalidPieces)

	_, err = f.AppendRows(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestFreezeAndThaw verifies snapshot independence in both directions.
func TestFreezeAndThaw(t *testing.T) {
	d := mustDense(t, frozenBase)
	f, err := matrix.Freeze(d)
	require.NoError(t, err)

	d.Fill(0) // later writes to the source are not observed
	requireRows(t, frozenBase, f)

	again, err := matrix.Freeze(f)
	require.NoError(t, err)
	require.Same(t, f, again)
	require.Same(t, f, f.Clone())

	thawed := f.Thaw()
	thawed.Multiply(10)
	requireRows(t, frozenBase, f)
	requireRows(t, [][]float64{{10, 20}, {30, 40}}, thawed)

	_, err = matrix.Freeze(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)
}

// TestNewFrozen covers the zero constructor.
func TestNewFrozen(t *testing.T) {
	f, err := matrix.NewFrozen(2, 3)
	require.NoError(t, err)
	require.Equal(t, "[0, 0, 0]\n[0, 0, 0]\n", f.String())

	_, err = matrix.NewFrozen(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

// TestFrozenConcurrentReads exercises shared reads and derived writes (run with -race).
func TestFrozenConcurrentReads(t *testing.T) {
	f := mustFrozen(t, frozenBase)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(k float64) {
			defer wg.Done()
			out := f.Multiply(k)
			v, err := out.At(1, 1)
			if err != nil || v != 4*k {
				t.Errorf("goroutine %v: got %v, %v", k, v, err)
			}
		}(float64(g))
	}
	wg.Wait()
	requireRows(t, frozenBase, f)
}
