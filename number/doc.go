// Package number provides Value, the scalar unit of the linalg packages:
// a 64-bit or 32-bit float in which "not a number" is an explicit,
// comparable state rather than an IEEE NaN payload.
//
// 🚀 Why?
//
//	An IEEE NaN is unequal to itself and cannot be ordered, so a single
//	invalid result (0/0, sqrt(-1)) breaks sorting, map keys and every
//	comparison downstream. Value lifts NaN into a dedicated NotANumber
//	variant that flows through containers like any other value.
//
// ✨ Key features:
//   - Three variants: F64, F32, NotANumber. No float payload is ever NaN.
//   - Total order (Compare): numbers ascending, NotANumber last.
//   - Equality against Values, float64, float32, int32 and int64, with a
//     relative "basically an integer" tolerance for integer comparisons.
//   - Checked int64 conversion: integers beyond ±(2^53-1) are refused,
//     never rounded (TryFromInt64 → SafeConversion).
//   - Tunable policy via NewComparer and functional options.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/linalg/number"
//
//	v := number.FromFloat64(math.Sqrt(-1)) // NotANumber
//	v.IsNotANumber()                       // true
//
//	n := number.FromInt32(42)
//	n.EqualInt32(42)                       // true
//
//	c := number.TryFromInt64(1 << 53)
//	c.IsRefused()                          // true
//	errors.Is(c.Reason(), number.ErrPrecisionLoss)
//
//	vs := []number.Value{number.NotANumber(), number.FromFloat64(2), number.FromFloat32(1)}
//	number.Sort(vs)                        // [F32(1) F64(2) NaN]
//
// Semantics at a glance:
//
//	                       F64(a)/F32(a) vs ...       NotANumber vs ...
//	Equal(Value)           a == b, same width only    false (even vs NaN)
//	Compare(Value)         numeric, widths mixed      Greater; Equal vs NaN
//	EqualInt32/EqualInt64  fuzzy integer match        false
//	Compare{Float,Int}*    numeric                    Unordered
//
// Values are immutable and safe to share between goroutines.
package number
