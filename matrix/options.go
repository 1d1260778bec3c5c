// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for random construction and
// numeric comparison. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves defaults.
//
// Design goals:
//   - No dead switches: each knob impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//   - Options fields are unexported; public APIs consume ...Option.
//
// Notes:
//   - Randomness is always injected. Without WithSource/WithSeed the random
//     constructors draw from the process-wide math/rand functions.
//   - Tolerances only affect AllClose; Equal is always exact.
package matrix

import (
	"math"
	"math/rand"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultScalar multiplies every deviate drawn by Random/RandomNormal.
	// Random yields values in [0, scalar) for positive scalars, (scalar, 0]
	// for negative ones and exact zeros for 0.
	DefaultScalar = 1.0

	// DefaultRelTol is the relative tolerance used by AllClose.
	DefaultRelTol = 1e-9

	// DefaultAbsTol is the absolute tolerance used by AllClose.
	DefaultAbsTol = 1e-12
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicScalarInvalid    = "matrix: WithScalar: scalar must be finite"
	panicSourceNil        = "matrix: WithSource: source must not be nil"
	panicToleranceInvalid = "matrix: WithTolerance: tolerances must be finite and >= 0"
)

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option` and resolve
// them via gatherOptions.
type Options struct {
	scalar float64 // finite; DefaultScalar
	source Source  // nil ⇒ globalSource
	rtol   float64 // >= 0; DefaultRelTol
	atol   float64 // >= 0; DefaultAbsTol
}

// WithScalar sets the multiplier applied to every random deviate.
// Implementation:
//   - Stage 1: validate s is finite (zero and negative values are allowed).
//   - Stage 2: return a setter that writes s into Options.
//
// Errors:
//   - Panics with a stable message when s is NaN or ±Inf.
//
// Complexity:
//   - Time O(1), Space O(1).
//
// AI-Hints:
//   - Random(r, c, WithScalar(0.01)) is the usual small-weight initializer.
func WithScalar(s float64) Option {
	if isNonFinite(s) {
		panic(panicScalarInvalid)
	}

	return func(o *Options) { o.scalar = s }
}

// WithSource injects the deviate source used by Random/RandomNormal.
// Panics when src is nil.
func WithSource(src Source) Option {
	if src == nil {
		panic(panicSourceNil)
	}

	return func(o *Options) { o.source = src }
}

// WithSeed creates a new *rand.Rand with the given seed (deterministic).
// Each resolved Options gets its own stream, so two calls with the same seed
// produce identical matrices.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.source = rand.New(rand.NewSource(seed)) }
}

// WithTolerance sets the relative and absolute tolerances used by AllClose.
// Panics when either value is NaN, ±Inf or negative.
func WithTolerance(rtol, atol float64) Option {
	if isNonFinite(rtol) || isNonFinite(atol) || rtol < 0 || atol < 0 {
		panic(panicToleranceInvalid)
	}

	return func(o *Options) {
		o.rtol = rtol
		o.atol = atol
	}
}

// gatherOptions resolves defaults and applies opts in order (later wins).
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{
		scalar: DefaultScalar,
		rtol:   DefaultRelTol,
		atol:   DefaultAbsTol,
	}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}
	if o.source == nil {
		o.source = globalSource{}
	}

	return o
}

// globalSource draws from the process-wide math/rand functions, which are
// safe for concurrent use.
type globalSource struct{}

func (globalSource) Float64() float64     { return rand.Float64() }
func (globalSource) NormFloat64() float64 { return rand.NormFloat64() }

// isNonFinite reports NaN or ±Inf.
func isNonFinite(x float64) bool { return math.IsNaN(x) || math.IsInf(x, 0) }
