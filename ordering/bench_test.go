package ordering_test

import (
	"testing"

	"github.com/Tardigrada777/copec-cspy-book/ordering"
)

// BenchmarkContains compares linear and binary lookups on a sorted slice of 1e5 ints.
func BenchmarkContains(b *testing.B) {
	const N = 100000
	seq := make([]int, N)
	for i := range seq {
		seq[i] = 2 * i
	}

	b.Run("Linear", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = ordering.LinearContains(seq, 2*N-1)
		}
	})
	b.Run("Binary", func(b *testing.B) {
		b.ReportAllocs()
		for i := 0; i < b.N; i++ {
			_ = ordering.BinaryContainsOrdered(seq, 2*N-1)
		}
	})
}
