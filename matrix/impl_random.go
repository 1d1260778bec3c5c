// SPDX-License-Identifier: MIT

// Package matrix - randomized construction.
//
// Purpose:
//   - Random fills a new Dense with uniform deviates in [0, scalar).
//   - RandomNormal fills a new Dense with Gaussian deviates times scalar.
//
// Determinism:
//   - Cells are drawn in row-major order, one deviate per cell. With
//     WithSeed(seed) the output is reproducible; WithSource injects any
//     generator (e.g. a shared *rand.Rand).
//
// AI-Hints:
//   - RandomNormal(r, c, WithScalar(1/math.Sqrt(float64(c)))) is a common
//     weight initializer; freeze the result when it must not change.

package matrix

// deviate selects which Source method feeds a random constructor.
type deviate func(Source) float64

func uniformDeviate(src Source) float64 { return src.Float64() }
func normalDeviate(src Source) float64  { return src.NormFloat64() }

// Random returns a rows×cols Dense with independent uniform deviates in
// [0, scalar). The scalar defaults to 1.0 and may be zero or negative (see
// WithScalar).
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func Random(rows, cols int, opts ...Option) (*Dense, error) {
	return randomDense(opRandom, rows, cols, uniformDeviate, opts)
}

// RandomNormal returns a rows×cols Dense with independent standard normal
// deviates multiplied by scalar (default 1.0).
//
// Errors:
//   - ErrInvalidDimensions when rows <= 0 or cols <= 0.
//
// Complexity:
//   - Time O(r*c), Space O(r*c).
func RandomNormal(rows, cols int, opts ...Option) (*Dense, error) {
	return randomDense(opRandomNormal, rows, cols, normalDeviate, opts)
}

// randomDense allocates, resolves options and fills in row-major order.
func randomDense(tag string, rows, cols int, draw deviate, opts []Option) (*Dense, error) {
	m, err := NewDense(rows, cols)
	if err != nil {
		return nil, matrixErrorf(tag, err)
	}
	o := gatherOptions(opts...)
	for idx := range m.data {
		m.data[idx] = draw(o.source) * o.scalar
	}

	return m, nil
}
