// SPDX-License-Identifier: MIT
// Package matrix_test: algebraic properties checked on both variants.
//
// Each property is evaluated on seeded random inputs; Dense results are
// cross-checked against gonum's mat.Dense where gonum offers the operation.
package matrix_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/lvmat/matrix"
)

var propShapes = [][2]int{{1, 1}, {2, 3}, {4, 4}, {5, 2}, {3, 8}}

// snapshot returns a deep copy of m's rows for later comparison.
func snapshot(m matrix.Matrix) [][]float64 {
	rows := m.Data()
	out := make([][]float64, len(rows))
	for i := range rows {
		out[i] = append([]float64(nil), rows[i]...)
	}
	return out
}

func TestPropertyTransposeInvolution(t *testing.T) {
	for _, v := range variants {
		for k, s := range propShapes {
			name := fmt.Sprintf("%s/%dx%d", v.name, s[0], s[1])
			t.Run(name, func(t *testing.T) {
				m := v.make(t, randDense(t, s[0], s[1], int64(k)).Data())
				want := snapshot(m)

				tt := m.Transpose().Transpose()
				require.Equal(t, want, tt.Data())
			})
		}
	}
}

func TestPropertyIdentityDot(t *testing.T) {
	for _, v := range variants {
		for k, s := range propShapes {
			name := fmt.Sprintf("%s/%dx%d", v.name, s[0], s[1])
			t.Run(name, func(t *testing.T) {
				src := randDense(t, s[0], s[1], int64(100+k)).Data()
				I, err := matrix.NewIdentity(s[1])
				require.NoError(t, err)

				got, err := v.make(t, src).Dot(I)
				require.NoError(t, err)
				require.Equal(t, src, got.Data())
			})
		}
	}
}

func TestPropertyAddSubtractInverse(t *testing.T) {
	for _, v := range variants {
		for k, s := range propShapes {
			name := fmt.Sprintf("%s/%dx%d", v.name, s[0], s[1])
			t.Run(name, func(t *testing.T) {
				src := randDense(t, s[0], s[1], int64(200+k)).Data()
				n := randDense(t, s[0], s[1], int64(300+k))

				sum, err := v.make(t, src).Add(n)
				require.NoError(t, err)
				back, err := sum.Subtract(n)
				require.NoError(t, err)
				requireClose(t, mustDense(t, src), back)
			})
		}
	}
}

func TestPropertyMultiplyDivideInverse(t *testing.T) {
	for _, v := range variants {
		for _, s := range []float64{2, -0.5, 3, 1e-3} {
			s := s
			t.Run(fmt.Sprintf("%s/s=%g", v.name, s), func(t *testing.T) {
				src := randDense(t, 3, 4, 5).Data()
				back, err := v.make(t, src).Multiply(s).Divide(s)
				require.NoError(t, err)
				requireClose(t, mustDense(t, src), back)
			})
		}
	}
}

func TestPropertySplitReassemble(t *testing.T) {
	for _, v := range variants {
		for _, pieces := range []int{1, 2, 3, 6} {
			pieces := pieces
			t.Run(fmt.Sprintf("%s/pieces=%d", v.name, pieces), func(t *testing.T) {
				m := v.make(t, randDense(t, 3, 6, 9).Data())
				parts, err := m.SplitColumns(pieces)
				require.NoError(t, err)
				require.Len(t, parts, pieces)

				for p, part := range parts {
					require.Equal(t, m.Mutable(), part.Mutable())
					for i := 0; i < m.Rows(); i++ {
						for j := 0; j < part.Cols(); j++ {
							want, _ := m.At(i, p*part.Cols()+j)
							got, _ := part.At(i, j)
							require.Equal(t, want, got)
						}
					}
				}
			})
		}
	}
}

func TestPropertyAppendRowsShape(t *testing.T) {
	for _, v := range variants {
		t.Run(v.name, func(t *testing.T) {
			top := randDense(t, 2, 3, 1).Data()
			bottom := randDense(t, 4, 3, 2).Data()

			out, err := v.make(t, top).AppendRows(v.make(t, bottom))
			require.NoError(t, err)
			require.Equal(t, 6, out.Rows())
			require.Equal(t, 3, out.Cols())
			require.Equal(t, append(append([][]float64{}, top...), bottom...), out.Data())
		})
	}
}

// TestPropertyDotMatchesGonum uses mat.Dense.Mul as an oracle.
func TestPropertyDotMatchesGonum(t *testing.T) {
	dims := [][3]int{{1, 1, 1}, {2, 3, 4}, {5, 5, 5}, {7, 2, 3}, {3, 9, 1}}
	for _, v := range variants {
		for k, d := range dims {
			name := fmt.Sprintf("%s/%dx%dx%d", v.name, d[0], d[1], d[2])
			t.Run(name, func(t *testing.T) {
				a := randDense(t, d[0], d[1], int64(400+k))
				b := randDense(t, d[1], d[2], int64(500+k))

				ga, err := matrix.ToGonum(a)
				require.NoError(t, err)
				gb, err := matrix.ToGonum(b)
				require.NoError(t, err)
				var want mat.Dense
				want.Mul(ga, gb)

				got, err := v.make(t, a.Data()).Dot(b)
				require.NoError(t, err)
				wantM, err := matrix.FromGonum(&want)
				require.NoError(t, err)
				requireClose(t, wantM, got)
			})
		}
	}
}

// TestPropertyGenericOperands checks the At-based paths agree with the fast paths.
func TestPropertyGenericOperands(t *testing.T) {
	a := randDense(t, 3, 3, 61)
	b := randDense(t, 3, 3, 62)

	fast, err := matrix.Product(a, b)
	require.NoError(t, err)
	slow, err := matrix.Product(hide{a}, hide{b})
	require.NoError(t, err)
	require.True(t, matrix.Equal(fast, slow))

	fastSum, err := matrix.Sum(a, b)
	require.NoError(t, err)
	slowSum, err := matrix.Sum(a, hide{b})
	require.NoError(t, err)
	require.True(t, matrix.Equal(fastSum, slowSum))
}
