// Package matrix offers dense row-major matrix storage and the four
// canonical operations of the mathlib core: multiply, transpose, 2×2
// determinant and identity construction.
//
// The matrix package provides:
//
//   - Dense, a flat row-major float64 container (element (i,j) at offset
//     i*cols+j) with O(1) indexed access.
//   - FromSlice, a zero-copy borrowed view over a caller-owned flat slice —
//     writes through the view land in the caller's memory.
//   - Into-kernels (MulInto, TransposeInto, IdentityInto) that write into a
//     caller-supplied destination and allocate nothing, preserving the
//     caller-owns-memory contract of the C export surface.
//   - Allocating facades (Mul, Transpose, Identity) for Go-native callers
//     who prefer fresh results.
//
// Output buffers for MulInto and TransposeInto must not overlap their
// inputs; overlap is an unchecked precondition with unspecified results.
// Shape disagreements on the Go API are reported as sentinel errors
// (errors.Is-matchable); see errors.go for the full set.
//
// Determinism: every kernel uses fixed loop orders, so identical inputs
// produce bit-identical outputs on every run.
//
// See the examples in this package for usage patterns.
package matrix
