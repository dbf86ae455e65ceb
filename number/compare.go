// SPDX-License-Identifier: MIT
// Package number: the ordering family.
//
// Value vs Value is a total order, so Values can be sorted and used as
// ordered keys:
//   - float-carrying Values order numerically, F32 promoted to float64;
//   - NotANumber ranks after every float, and two NotANumber are Equal.
//
// Note the deliberate asymmetry with the equality family: Compare(NaN, NaN)
// is Equal while NaN.Equal(NaN) is false, and Compare(F64(4), F32(4)) is
// Equal while F64(4).Equal(F32(4)) is false by default.
//
// Against raw floats and integers there is no total order: NotANumber, a NaN
// literal, or an int64 outside ±MaxExactInteger yields Unordered.

package number

import "strconv"

// Ordering is a three-way comparison result extended with Unordered.
type Ordering int8

const (
	Less      Ordering = -1
	Equal     Ordering = 0
	Greater   Ordering = 1
	Unordered Ordering = 2 // no ordering relation exists
)

// String returns the ordering name.
func (o Ordering) String() string {
	switch o {
	case Less:
		return "Less"
	case Equal:
		return "Equal"
	case Greater:
		return "Greater"
	case Unordered:
		return "Unordered"
	default:
		return "Ordering(" + strconv.Itoa(int(o)) + ")"
	}
}

// IsOrdered reports whether o is one of Less, Equal, Greater.
func (o Ordering) IsOrdered() bool {
	return o >= Less && o <= Greater
}

// Compare is the total order on Values in the shape expected by sort helpers:
// -1, 0 or +1. It never reports Unordered.
func Compare(a, b Value) int {
	return int(a.Compare(b))
}

// Compare returns the total-order relation of v to w. Never Unordered.
func (v Value) Compare(w Value) Ordering {
	switch {
	case v.kind == KindNotANumber && w.kind == KindNotANumber:
		return Equal
	case v.kind == KindNotANumber:
		return Greater
	case w.kind == KindNotANumber:
		return Less
	}

	return floatOrder(v.x, w.x)
}

// CompareFloat64 orders v's payload against f. Unordered for NotANumber or NaN f.
func (v Value) CompareFloat64(f float64) Ordering { return defaultComparer.CompareFloat64(v, f) }

// CompareFloat32 orders v's payload against f widened to float64.
func (v Value) CompareFloat32(f float32) Ordering { return defaultComparer.CompareFloat32(v, f) }

// CompareInt32 orders v against i under the default integer tolerances.
func (v Value) CompareInt32(i int32) Ordering { return defaultComparer.CompareInt32(v, i) }

// CompareInt64 orders v against i under the default integer tolerances.
func (v Value) CompareInt64(i int64) Ordering { return defaultComparer.CompareInt64(v, i) }

// Compare is the total order; it does not depend on the Comparer's options.
func (c Comparer) Compare(a, b Value) Ordering {
	return a.Compare(b)
}

// CompareFloat64 orders v's payload against f.
func (c Comparer) CompareFloat64(v Value, f float64) Ordering {
	if v.kind == KindNotANumber {
		return Unordered
	}

	return floatOrder(v.x, f)
}

// CompareFloat32 orders v's payload against f widened to float64.
func (c Comparer) CompareFloat32(v Value, f float32) Ordering {
	return c.CompareFloat64(v, float64(f))
}

// CompareInt32 returns Equal whenever EqualInt32 holds, and the float order
// of v against i otherwise, so the two families never disagree.
func (c Comparer) CompareInt32(v Value, i int32) Ordering {
	return c.integerOrder(v, float64(i))
}

// CompareInt64 is CompareInt32 for 64-bit integers. An integer outside
// ±MaxExactInteger has no exact float image and is Unordered.
func (c Comparer) CompareInt64(v Value, i int64) Ordering {
	if !fitsExact(i) {
		return Unordered
	}

	return c.integerOrder(v, float64(i))
}

func (c Comparer) integerOrder(v Value, f float64) Ordering {
	if v.kind == KindNotANumber {
		return Unordered
	}
	if c.integerEqual(v, f) {
		return Equal
	}

	return floatOrder(v.x, f)
}

// floatOrder compares two float64s; Unordered only if either is NaN.
func floatOrder(a, b float64) Ordering {
	switch {
	case a < b:
		return Less
	case a > b:
		return Greater
	case a == b:
		return Equal
	default:
		return Unordered
	}
}
