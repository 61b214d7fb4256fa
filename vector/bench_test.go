package vector_test

import (
	"testing"

	"github.com/katalvlaran/mathlib/vector"
)

// fillSeq returns a length-n slice with predictable increasing values.
func fillSeq(n int) []float64 {
	s := make([]float64, n)
	for i := 0; i < n; i++ {
		s[i] = float64(i)
	}
	return s
}

// benchmarkDot runs Dot on two length-n operands.
func benchmarkDot(b *testing.B, n int) {
	a := fillSeq(n)
	c := fillSeq(n)

	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, err := vector.Dot(a, c); err != nil {
			b.Fatalf("Dot failed: %v", err)
		}
	}
}

func BenchmarkDot_1K(b *testing.B)   { benchmarkDot(b, 1_000) }
func BenchmarkDot_100K(b *testing.B) { benchmarkDot(b, 100_000) }

// BenchmarkAdd_InPlace measures the aliasing (dst == a) path.
func BenchmarkAdd_InPlace(b *testing.B) {
	a := fillSeq(10_000)
	c := fillSeq(10_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if err := vector.Add(a, a, c); err != nil {
			b.Fatalf("Add failed: %v", err)
		}
	}
}

// BenchmarkMagnitude measures the reduction + sqrt path.
func BenchmarkMagnitude(b *testing.B) {
	a := fillSeq(10_000)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = vector.Magnitude(a)
	}
}
