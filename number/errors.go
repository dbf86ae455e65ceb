// SPDX-License-Identifier: MIT
// Package number: sentinel error set.
// Recoverable conditions are returned as values and matched via errors.Is /
// errors.As. Nothing in this package panics on input-driven conditions; only
// Option constructors panic, on nonsensical parameters (programmer error).

package number

import (
	"errors"
	"fmt"
)

// ErrPrecisionLoss is returned when an integer's magnitude exceeds
// MaxExactInteger, so converting it to float64 could lose precision.
var ErrPrecisionLoss = errors.New("number: integer not exactly representable as float64")

// RefusalError is the reason carried by a refused SafeConversion.
// It matches ErrPrecisionLoss under errors.Is.
type RefusalError struct {
	Int      int64  // rejected integer from a signed source
	Uint     uint64 // rejected integer from an unsigned source
	Unsigned bool   // selects Uint over Int
}

func (e *RefusalError) Error() string {
	if e.Unsigned {
		return fmt.Sprintf("number: %d exceeds the exact float64 integer range ±%d", e.Uint, int64(MaxExactInteger))
	}

	return fmt.Sprintf("number: %d exceeds the exact float64 integer range ±%d", e.Int, int64(MaxExactInteger))
}

// Unwrap exposes ErrPrecisionLoss to errors.Is.
func (e *RefusalError) Unwrap() error {
	return ErrPrecisionLoss
}
