// SPDX-License-Identifier: MIT
// Package number: the Value type, its kinds and constructors.
//
// Representation:
//   - A Value is a closed variant: F64, F32 or NotANumber.
//   - The float payload is kept in a single float64 field. An F32 payload is
//     widened on construction, which is lossless, and narrowed back on read.
//   - The zero Value is NotANumber: an uninitialized scalar is never a number.
//
// Invariants:
//   - A float-carrying Value never stores a NaN payload. Every constructor
//     lifts NaN into NotANumber.
//   - Values are immutable. All methods use value receivers.

package number

import (
	"math"
	"strconv"
	"unsafe"

	"golang.org/x/exp/constraints"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	// KindNotANumber marks the sentinel for invalid numeric results (0/0, sqrt(-1), ...).
	KindNotANumber Kind = iota
	// KindFloat64 marks a non-NaN 64-bit float payload (±Inf allowed).
	KindFloat64
	// KindFloat32 marks a non-NaN 32-bit float payload (±Inf allowed).
	KindFloat32
)

// String returns the short variant name.
func (k Kind) String() string {
	switch k {
	case KindNotANumber:
		return "NaN"
	case KindFloat64:
		return "F64"
	case KindFloat32:
		return "F32"
	default:
		return "Kind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Value is the scalar unit of the linear-algebra layer.
//
// Go's == on Value is structural: two NotANumber values are ==, and F64(4)
// is not == F32(4). This makes Value usable as a map key. Numeric equality,
// where NotANumber equals nothing, is Value.Equal.
type Value struct {
	kind Kind
	x    float64 // payload; 0 for NotANumber, exact float32 widening for F32
}

// NotANumber returns the sentinel Value. It is identical to the zero Value.
func NotANumber() Value {
	return Value{}
}

// FromFloat64 wraps v as F64, or returns NotANumber if v is NaN.
// ±Inf pass through unchanged.
func FromFloat64(v float64) Value {
	if math.IsNaN(v) {
		return Value{}
	}

	return Value{kind: KindFloat64, x: v}
}

// FromFloat32 wraps v as F32, or returns NotANumber if v is NaN.
func FromFloat32(v float32) Value {
	if math.IsNaN(float64(v)) {
		return Value{}
	}

	return Value{kind: KindFloat32, x: float64(v)}
}

// FromInt32 converts v to F64. Every int32 fits the 53-bit mantissa, so the
// conversion is always exact.
func FromInt32(v int32) Value {
	return Value{kind: KindFloat64, x: float64(v)}
}

// FromFloat is the generic entry point for float-like types. Types with a
// 4-byte underlying representation become F32, all others F64.
func FromFloat[T constraints.Float](v T) Value {
	if unsafe.Sizeof(v) == unsafe.Sizeof(float32(0)) {
		return FromFloat32(float32(v))
	}

	return FromFloat64(float64(v))
}

// Kind reports the variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// Float64 returns the payload widened to float64. ok is false for NotANumber.
func (v Value) Float64() (f float64, ok bool) {
	if v.kind == KindNotANumber {
		return 0, false
	}

	return v.x, true
}

// Float32 returns the F32 payload. ok is false for any other kind: an F64
// payload is never narrowed silently.
func (v Value) Float32() (f float32, ok bool) {
	if v.kind != KindFloat32 {
		return 0, false
	}

	return float32(v.x), true
}

// String formats v as F64(x), F32(x) or NaN.
func (v Value) String() string {
	switch v.kind {
	case KindFloat64:
		return "F64(" + strconv.FormatFloat(v.x, 'g', -1, 64) + ")"
	case KindFloat32:
		return "F32(" + strconv.FormatFloat(v.x, 'g', -1, 32) + ")"
	default:
		return "NaN"
	}
}
