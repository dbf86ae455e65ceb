// SPDX-License-Identifier: MIT

package number

// Test bridge: exposes unexported helpers and an options snapshot to the
// external number_test package without widening the production API.

var (
	ExportedFitsExact  = fitsExact
	ExportedFloatOrder = floatOrder
)

// OptionsSnapshot is a read-only view of a Comparer's effective options.
type OptionsSnapshot struct {
	Tol64          float64
	Tol32          float64
	PromoteFloat32 bool
}

// SnapshotOf returns the effective options of c.
func SnapshotOf(c Comparer) OptionsSnapshot {
	return OptionsSnapshot{
		Tol64:          c.opts.tol64,
		Tol32:          c.opts.tol32,
		PromoteFloat32: c.opts.promoteFloat32,
	}
}
