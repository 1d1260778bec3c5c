// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers
//
// Purpose:
//   • Provide small, deterministic test fixtures and utilities for both variants.
//   • Keep all data finite and well-formed unless a test is about NaN/Inf.

package matrix_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/lvmat/matrix"
	"github.com/stretchr/testify/require"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Passing hide{X} as an operand forces the generic At-based read path.
type hide struct{ matrix.Matrix }

// mustDense builds a *Dense from literal rows or fails the test.
func mustDense(tb testing.TB, rows [][]float64) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(tb, err)

	return m
}

// mustFrozen builds a *Frozen from literal rows or fails the test.
func mustFrozen(tb testing.TB, rows [][]float64) *matrix.Frozen {
	tb.Helper()
	f, err := matrix.NewFrozenFrom(rows)
	require.NoError(tb, err)

	return f
}

// mustZeros allocates an r×c zero *Dense or fails the test.
func mustZeros(tb testing.TB, r, c int) *matrix.Dense {
	tb.Helper()
	m, err := matrix.NewDense(r, c)
	require.NoError(tb, err)

	return m
}

// randDense returns an r×c Dense with uniform values in [-1, 1) from seed.
func randDense(tb testing.TB, r, c int, seed int64) *matrix.Dense {
	tb.Helper()
	rng := rand.New(rand.NewSource(seed))
	m := mustZeros(tb, r, c)
	m.Apply(func(float64) float64 { return 2*rng.Float64() - 1 })

	return m
}

// requireClose asserts AllClose(want, got) with default tolerances.
func requireClose(tb testing.TB, want, got matrix.Matrix) {
	tb.Helper()
	ok, err := matrix.AllClose(got, want)
	require.NoError(tb, err)
	require.Truef(tb, ok, "want:\n%s\ngot:\n%s", want, got)
}

// requireRows asserts got equals the literal rows exactly.
func requireRows(tb testing.TB, want [][]float64, got matrix.Matrix) {
	tb.Helper()
	require.Equal(tb, want, got.Data())
}

// variants lists constructors so table tests run against both implementations.
var variants = []struct {
	name string
	make func(testing.TB, [][]float64) matrix.Matrix
}{
	{"Dense", func(tb testing.TB, rows [][]float64) matrix.Matrix { return mustDense(tb, rows) }},
	{"Frozen", func(tb testing.TB, rows [][]float64) matrix.Matrix { return mustFrozen(tb, rows) }},
}
