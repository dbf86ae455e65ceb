// SPDX-License-Identifier: MIT
// Package number: the equality family.
//
// Equality is defined per right-hand-side type. NotANumber equals nothing,
// not even another NotANumber, mirroring IEEE NaN. Float equality is plain
// ==, so +0 equals -0. Integer equality is fuzzy: the Value must be
// "basically an integer" and its truncation must equal the integer.

package number

import "math"

// Equal reports numeric equality under the default policy: F64 never equals F32.
func (v Value) Equal(w Value) bool { return defaultComparer.Equal(v, w) }

// EqualFloat64 reports whether v's payload equals f.
func (v Value) EqualFloat64(f float64) bool { return defaultComparer.EqualFloat64(v, f) }

// EqualFloat32 reports whether v's payload equals f widened to float64.
func (v Value) EqualFloat32(f float32) bool { return defaultComparer.EqualFloat32(v, f) }

// EqualInt32 reports whether v is basically the integer i.
func (v Value) EqualInt32(i int32) bool { return defaultComparer.EqualInt32(v, i) }

// EqualInt64 reports whether v is basically the integer i. Integers outside
// ±MaxExactInteger equal nothing.
func (v Value) EqualInt64(i int64) bool { return defaultComparer.EqualInt64(v, i) }

// Equal compares two Values. Same-width pairs use float ==. Cross-width pairs
// are equal only under WithFloat32Promotion. Any pair involving NotANumber is
// unequal.
func (c Comparer) Equal(a, b Value) bool {
	if a.kind == KindNotANumber || b.kind == KindNotANumber {
		return false
	}
	if a.kind != b.kind && !c.opts.promoteFloat32 {
		return false
	}

	// F32 payloads are stored widened, so the promoted comparison is a plain ==.
	return a.x == b.x
}

// EqualFloat64 compares v's payload, promoted to float64, with f.
// A NaN f equals nothing.
func (c Comparer) EqualFloat64(v Value, f float64) bool {
	if v.kind == KindNotANumber {
		return false
	}

	return v.x == f
}

// EqualFloat32 compares v's payload with f, both promoted to float64.
func (c Comparer) EqualFloat32(v Value, f float32) bool {
	return c.EqualFloat64(v, float64(f))
}

// EqualInt32 reports IsBasicallyAnInteger(v) && trunc(v) == i.
func (c Comparer) EqualInt32(v Value, i int32) bool {
	return c.integerEqual(v, float64(i))
}

// EqualInt64 is EqualInt32 for 64-bit integers, additionally requiring
// |i| ≤ MaxExactInteger.
func (c Comparer) EqualInt64(v Value, i int64) bool {
	if !fitsExact(i) {
		return false
	}

	return c.integerEqual(v, float64(i))
}

// integerEqual expects f to be an exactly represented integer.
func (c Comparer) integerEqual(v Value, f float64) bool {
	if !c.IsBasicallyAnInteger(v) {
		return false
	}

	return math.Trunc(v.x) == f
}
