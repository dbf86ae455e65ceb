// SPDX-License-Identifier: MIT

package number

import "math"

// IsNotANumber reports whether v is the NotANumber sentinel.
func (v Value) IsNotANumber() bool {
	return v.kind == KindNotANumber
}

// IsBasicallyAnInteger reports whether v is within relative tolerance of an
// integer under the default tolerances. See Comparer.IsBasicallyAnInteger.
func (v Value) IsBasicallyAnInteger() bool {
	return defaultComparer.IsBasicallyAnInteger(v)
}

// IsBasicallyAnInteger reports |fract(v)| ≤ |v| × tol, where tol depends on
// the width of v. The tolerance is relative, so the same rounding error is
// accepted at any magnitude.
//
// The inequality is non-strict: exact integers, including 0, always pass.
// NotANumber and ±Inf never pass (fract(±Inf) is NaN).
func (c Comparer) IsBasicallyAnInteger(v Value) bool {
	var tol float64
	switch v.kind {
	case KindFloat64:
		tol = c.opts.tol64
	case KindFloat32:
		tol = c.opts.tol32
	default:
		return false
	}
	_, frac := math.Modf(v.x)
	if math.IsNaN(frac) {
		return false
	}

	return math.Abs(frac) <= math.Abs(v.x)*tol
}
