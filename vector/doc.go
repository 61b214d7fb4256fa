// Package vector implements elementwise and reduction kernels on
// fixed-length float64 sequences: dot product, elementwise addition,
// scalar scaling and Euclidean magnitude.
//
// 🚀 What is vector?
//
//	The smallest useful layer of numeric plumbing. Vectors here are plain
//	[]float64 borrowed from the caller — no wrapper type, no inherent
//	shape beyond length, no ownership transfer. Each call is a single
//	synchronous pass with no retained state.
//
// ✨ Key properties:
//   - Dot and Magnitude reduce over an empty slice to 0.0 (empty-sum identity)
//   - Add and Scale write into a caller-supplied destination, which may
//     safely alias an input (kernels advance index-forward)
//   - Length disagreement is the only reported error (ErrLengthMismatch);
//     everything else is the caller's precondition
//   - Fixed forward loop order — deterministic accumulation on every run
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mathlib/vector"
//
//	a := []float64{1, 2, 3}
//	b := []float64{4, 5, 6}
//
//	d, err := vector.Dot(a, b)       // 32
//	_ = vector.Add(a, a, b)          // a = a+b, aliasing is fine
//	m := vector.Magnitude(a)         // √(a·a)
//
// Performance: every kernel is O(n) time, O(1) space.
//
// See example_test.go for runnable examples.
package vector
