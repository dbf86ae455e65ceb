// Package number_test provides benchmarks for the comparison hot paths,
// using deterministic random inputs.
package number_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/katalvlaran/linalg/number"
)

// benchSizes are the slice lengths for the sort benchmarks.
var benchSizes = []int{1 << 10, 1 << 14}

// sinks to defeat dead-code elimination
var (
	sinkB bool
	sinkO number.Ordering
	sinkV number.Value
)

// randomValues mixes both widths and ~5% NotANumber, seeded for repeatability.
func randomValues(n int, seed int64) []number.Value {
	r := rand.New(rand.NewSource(seed))
	vs := make([]number.Value, n)
	for i := range vs {
		switch x := r.NormFloat64() * 1e3; {
		case r.Intn(20) == 0:
			vs[i] = number.FromFloat64(math.NaN())
		case r.Intn(2) == 0:
			vs[i] = number.FromFloat32(float32(x))
		default:
			vs[i] = number.FromFloat64(x)
		}
	}

	return vs
}

func BenchmarkFromFloat64(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		sinkV = number.FromFloat64(float64(i) * 0.5)
	}
}

func BenchmarkCompare(b *testing.B) {
	vs := randomValues(1024, 1337)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkO = vs[i&1023].Compare(vs[(i+1)&1023])
	}
}

func BenchmarkEqualInt64(b *testing.B) {
	vs := randomValues(1024, 4242)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sinkB = vs[i&1023].EqualInt64(int64(i))
	}
}

func BenchmarkSort(b *testing.B) {
	b.ReportAllocs()
	for _, n := range benchSizes {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			src := randomValues(n, 7)
			buf := make([]number.Value, n)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				copy(buf, src)
				number.Sort(buf)
			}
			sinkB = number.IsSorted(buf)
		})
	}
}
