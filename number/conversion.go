// SPDX-License-Identifier: MIT
// Package number: checked integer → Value conversion.
//
// A float64 has a 53-bit mantissa, so only integers with |i| ≤ 2^53-1 are
// guaranteed to round-trip. Larger magnitudes are refused instead of being
// rounded; this is the only path by which a 64-bit integer becomes a Value.

package number

import "golang.org/x/exp/constraints"

// MaxExactInteger is the largest magnitude integer exactly representable in
// a float64 mantissa (2^53 - 1). The bound is symmetric for negatives.
const MaxExactInteger = 1<<53 - 1

// SafeConversion is the two-variant result of converting a 64-bit integer:
// Exact carries an F64 Value, Refused carries a *RefusalError.
// The zero SafeConversion is neither and should not be constructed by callers.
type SafeConversion struct {
	value  Value
	reason *RefusalError
}

func exact(f float64) SafeConversion {
	return SafeConversion{value: Value{kind: KindFloat64, x: f}}
}

func refused(r *RefusalError) SafeConversion {
	return SafeConversion{reason: r}
}

// TryFromInt64 converts i to F64 when |i| ≤ MaxExactInteger, and refuses
// otherwise. math.MinInt64 is handled without overflowing an absolute value.
func TryFromInt64(i int64) SafeConversion {
	if !fitsExact(i) {
		return refused(&RefusalError{Int: i})
	}

	return exact(float64(i))
}

// FromInt64 is TryFromInt64 in (Value, error) form.
func FromInt64(i int64) (Value, error) {
	return TryFromInt64(i).Result()
}

// FromSigned converts any signed integer type. Types narrower than 64 bits
// always yield Exact.
func FromSigned[T constraints.Signed](i T) SafeConversion {
	return TryFromInt64(int64(i))
}

// FromUnsigned converts any unsigned integer type, refusing values above
// MaxExactInteger.
func FromUnsigned[T constraints.Unsigned](u T) SafeConversion {
	if uint64(u) > MaxExactInteger {
		return refused(&RefusalError{Uint: uint64(u), Unsigned: true})
	}

	return exact(float64(u))
}

// IsExact reports whether the conversion produced a Value.
func (c SafeConversion) IsExact() bool {
	return c.reason == nil && c.value.kind == KindFloat64
}

// IsRefused reports whether the conversion was refused.
func (c SafeConversion) IsRefused() bool {
	return c.reason != nil
}

// Value returns the converted F64 Value; ok is false when refused.
func (c SafeConversion) Value() (v Value, ok bool) {
	if !c.IsExact() {
		return Value{}, false
	}

	return c.value, true
}

// Reason returns the refusal reason, or nil for an exact conversion.
func (c SafeConversion) Reason() error {
	if c.reason == nil {
		return nil
	}

	return c.reason
}

// Result returns the Value, or NotANumber and the refusal reason.
func (c SafeConversion) Result() (Value, error) {
	if c.reason != nil {
		return Value{}, c.reason
	}

	return c.value, nil
}

// String renders Exact(F64(x)) or Refused(reason).
func (c SafeConversion) String() string {
	if c.reason != nil {
		return "Refused(" + c.reason.Error() + ")"
	}

	return "Exact(" + c.value.String() + ")"
}

// fitsExact reports |i| ≤ MaxExactInteger.
func fitsExact(i int64) bool {
	return i >= -MaxExactInteger && i <= MaxExactInteger
}
