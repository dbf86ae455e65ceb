// SPDX-License-Identifier: MIT

// Package number: functional configuration of the comparison policy.
// This file defines:
//   - documented defaults (constants),
//   - Option / Options (functional options with internal state),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - Comparer, the configured entry point used by Value's own methods.
//
// Design goals:
//   - Deterministic behavior: no global mutable state.
//   - Tolerances are named constants on the type, tunable per Comparer.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package number

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// Float64Tolerance is the relative tolerance of IsBasicallyAnInteger for F64:
	// |fract(v)| ≤ |v| × Float64Tolerance.
	Float64Tolerance = 1e-12

	// Float32Tolerance is the relative tolerance of IsBasicallyAnInteger for F32.
	Float32Tolerance = 1e-6

	// DefaultPromoteFloat32 controls F64 vs F32 equality. false ⇒ cross-width
	// pairs are never equal; a 32-bit value is not silently treated as 64-bit.
	DefaultPromoteFloat32 = false
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicFloat64ToleranceInvalid = "number: WithFloat64Tolerance: tol must be finite, non-negative"
	panicFloat32ToleranceInvalid = "number: WithFloat32Tolerance: tol must be finite, non-negative"
)

// Option mutates internal options. Later options win.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; callers go through NewComparer.
type Options struct {
	tol64          float64 // Float64Tolerance
	tol32          float64 // Float32Tolerance
	promoteFloat32 bool    // DefaultPromoteFloat32
}

// WithFloat64Tolerance sets the relative integer tolerance for F64 values.
// Panics if tol is NaN, ±Inf or negative.
func WithFloat64Tolerance(tol float64) Option {
	if !validTolerance(tol) {
		panic(panicFloat64ToleranceInvalid)
	}

	return func(o *Options) { o.tol64 = tol }
}

// WithFloat32Tolerance sets the relative integer tolerance for F32 values.
// Panics if tol is NaN, ±Inf or negative.
func WithFloat32Tolerance(tol float64) Option {
	if !validTolerance(tol) {
		panic(panicFloat32ToleranceInvalid)
	}

	return func(o *Options) { o.tol32 = tol }
}

// WithFloat32Promotion makes Equal widen F32 to float64 and compare it with
// an F64 payload, so F64(4) equals F32(4).
func WithFloat32Promotion() Option {
	return func(o *Options) { o.promoteFloat32 = true }
}

// WithoutFloat32Promotion restores the default: F64 never equals F32.
func WithoutFloat32Promotion() Option {
	return func(o *Options) { o.promoteFloat32 = false }
}

func defaultOptions() Options {
	return Options{
		tol64:          Float64Tolerance,
		tol32:          Float32Tolerance,
		promoteFloat32: DefaultPromoteFloat32,
	}
}

func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}

func validTolerance(tol float64) bool {
	return !math.IsNaN(tol) && !math.IsInf(tol, 0) && tol >= 0
}

// Comparer evaluates the equality and ordering families under a fixed policy.
// It is an immutable value and safe for concurrent use.
type Comparer struct {
	opts Options
}

// NewComparer builds a Comparer from defaults overridden by opts.
func NewComparer(opts ...Option) Comparer {
	return Comparer{opts: gatherOptions(opts...)}
}

// defaultComparer backs the methods on Value. It is never mutated.
var defaultComparer = NewComparer()
