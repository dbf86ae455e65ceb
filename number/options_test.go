// SPDX-License-Identifier: MIT
package number_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/linalg/number"
)

// TestDefaultOptions_Documented verifies NewComparer() equals the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := number.SnapshotOf(number.NewComparer())
	assert.Equal(t, number.Float64Tolerance, o.Tol64)
	assert.Equal(t, number.Float32Tolerance, o.Tol32)
	assert.Equal(t, number.DefaultPromoteFloat32, o.PromoteFloat32)
	assert.Equal(t, 1e-12, number.Float64Tolerance)
	assert.Equal(t, 1e-6, number.Float32Tolerance)
}

// TestOptions_LastWriterWins ensures each Option toggles exactly its field.
func TestOptions_LastWriterWins(t *testing.T) {
	o := number.SnapshotOf(number.NewComparer(number.WithFloat32Promotion(), number.WithoutFloat32Promotion()))
	assert.False(t, o.PromoteFloat32)
	o = number.SnapshotOf(number.NewComparer(number.WithoutFloat32Promotion(), number.WithFloat32Promotion()))
	assert.True(t, o.PromoteFloat32)

	o = number.SnapshotOf(number.NewComparer(number.WithFloat64Tolerance(1e-3), number.WithFloat64Tolerance(1e-4)))
	assert.Equal(t, 1e-4, o.Tol64)
	assert.Equal(t, number.Float32Tolerance, o.Tol32, "tol32 untouched")

	o = number.SnapshotOf(number.NewComparer(number.WithFloat32Tolerance(0)))
	assert.Equal(t, 0.0, o.Tol32)
	assert.Equal(t, number.Float64Tolerance, o.Tol64, "tol64 untouched")

	o = number.SnapshotOf(number.NewComparer(nil))
	assert.Equal(t, number.SnapshotOf(number.NewComparer()), o, "nil options are skipped")
}

func TestOptions_PanicOnInvalidTolerance(t *testing.T) {
	for _, bad := range []float64{-1e-9, math.NaN(), math.Inf(1), math.Inf(-1)} {
		assert.Panics(t, func() { number.WithFloat64Tolerance(bad) }, "tol64=%v", bad)
		assert.Panics(t, func() { number.WithFloat32Tolerance(bad) }, "tol32=%v", bad)
	}
	assert.NotPanics(t, func() { number.WithFloat64Tolerance(0) })
}
