// Package mathlib is a small, deterministic numeric computation library:
// vector arithmetic, row-major matrix operations and descriptive statistics
// over caller-supplied float64 buffers, with a stable C-callable export
// surface for host programs in any language.
//
// 🚀 What is mathlib?
//
//	A compact, dependency-light library of pure numeric kernels:
//		• Vector ops: dot product, elementwise add, scalar scale, magnitude
//		• Matrix ops: row-major multiply, transpose, 2×2 determinant, identity
//		• Statistics: mean, population variance, standard deviation, median
//		• C boundary: all of the above exported as plain C symbols (c-shared)
//
// ✨ Why choose mathlib?
//
//   - Caller owns the memory – every kernel reads and writes borrowed
//     slices; nothing is allocated, cached or retained between calls
//   - Deterministic – fixed loop orders, identical results on every run
//   - Memory-safe inside – slices and bounds-checked views everywhere;
//     the single unsafe adapter lives at the C boundary and nowhere else
//   - Zero orchestration – stateless pure functions, reentrant by
//     construction, safe for concurrent callers on disjoint buffers
//
// The library is organized as one package per component:
//
//	vector/         — elementwise and reduction kernels on []float64
//	matrix/         — Dense row-major storage, Into-kernels and facades
//	stats/          — descriptive statistics (median sorts in place!)
//	cmd/libmathlib/ — cgo c-shared build exporting the C symbol set
//	cmd/mathdemo/   — runnable tour over the canonical fixtures
//	cmd/statplot/   — histogram demo annotating mean/median via gonum/plot
//
// Quick example:
//
//	v := []float64{1, 2, 3}
//	w := []float64{4, 5, 6}
//	d, _ := vector.Dot(v, w) // 32
//
// Degenerate inputs follow two rules only: empty-input reductions return a
// documented 0.0 sentinel, and everything else (negative sizes, overlapping
// multiply buffers, non-2×2 determinant input at the C boundary) is an
// unchecked precondition left to the caller.
//
//	go get github.com/katalvlaran/mathlib
package mathlib
