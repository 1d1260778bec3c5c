// Package lvmat is a small dense-matrix toolkit for numeric code that wants
// explicit control over mutation: neural-network layers, regressions,
// simulations and glue around gonum.
//
// What is lvmat/matrix?
//
//	One Matrix interface, two variants:
//		• Dense  – mutate-in-place; operations return the receiver so calls chain
//		• Frozen – copy-on-write; operations return new values, safe to share
//	plus raw [][]float64 helpers (AppendRows, SplitColumns, Copy), seeded
//	random constructors and converters to and from gonum's mat.Dense.
//
// Why lvmat?
//
//   - Fail-fast shapes – every operation validates before its first write
//   - Sentinel errors – match with errors.Is, nothing panics on bad input
//   - Deterministic – injected random sources, fixed traversal order
//   - Interop – hand off to gonum for decompositions and solvers
//
// Layout:
//
//	matrix/   – Matrix interface, Dense, Frozen, helpers, options, validators
//	examples/ – runnable programs (dense_layer, linear_regression, gonum_solve)
//
// Quick example:
//
//	a, _ := matrix.NewDenseFrom([][]float64{{1, 2}, {3, 4}})
//	b, _ := matrix.NewDenseFrom([][]float64{{5, 6}, {7, 8}})
//	a.Dot(b)        // a is now [[19 22] [43 50]]
//	a.Multiply(0.5) // chained in place
//
//	f, _ := matrix.Freeze(a)
//	g := f.Transpose() // f is unchanged
//
// See matrix/doc.go for the full operation surface and error taxonomy.
package lvmat
