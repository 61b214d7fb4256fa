// SPDX-License-Identifier: MIT
// Package vector: elementwise and reduction kernels over borrowed slices.
//
// Purpose:
//   - Provide the four canonical vector operations (Dot, Add, Scale, Magnitude)
//     as stateless single-pass kernels over caller-owned memory.
//
// Determinism & Performance:
//   - Fixed forward traversal for all loops; identical accumulation order on
//     every run.
//   - No allocations anywhere in this file; destinations are caller-supplied.

package vector

import "math"

// Dot returns the sum of pairwise products Σ a[i]*b[i].
// Implementation:
//   - Stage 1: validate len(a) == len(b).
//   - Stage 2: single forward pass accumulating into one float64.
//
// Behavior highlights:
//   - Empty inputs reduce to 0.0 (empty-sum identity, not an error).
//
// Inputs:
//   - a, b: equal-length operands; read-only.
//
// Returns:
//   - float64: Σ a[i]*b[i].
//
// Errors:
//   - ErrLengthMismatch when len(a) != len(b).
//
// Determinism:
//   - Fixed i=0..n-1 order; stable accumulation.
//
// Complexity:
//   - Time O(n), Space O(1).
func Dot(a, b []float64) (float64, error) {
	// Validate operand lengths agree.
	if len(a) != len(b) {
		return 0, ErrLengthMismatch
	}

	// Accumulate pairwise products in fixed forward order.
	var sum float64
	for i := 0; i < len(a); i++ {
		sum += a[i] * b[i]
	}

	return sum, nil
}

// Add writes the elementwise sum dst[i] = a[i] + b[i].
// Implementation:
//   - Stage 1: validate all three lengths agree.
//   - Stage 2: single forward pass writing into dst.
//
// Behavior highlights:
//   - dst may alias a or b: each iteration reads index i before writing
//     index i, so in-place accumulation is well defined.
//
// Inputs:
//   - dst: caller-owned destination, len(dst) == len(a).
//   - a, b: equal-length operands.
//
// Errors:
//   - ErrLengthMismatch on any length disagreement.
//
// Complexity:
//   - Time O(n), Space O(1).
func Add(dst, a, b []float64) error {
	// Validate destination and operand lengths agree.
	if len(a) != len(b) || len(dst) != len(a) {
		return ErrLengthMismatch
	}

	// Forward pass; safe when dst aliases a or b.
	for i := 0; i < len(a); i++ {
		dst[i] = a[i] + b[i]
	}

	return nil
}

// Scale writes dst[i] = a[i] * alpha.
// Implementation:
//   - Stage 1: validate len(dst) == len(a).
//   - Stage 2: single forward pass writing into dst.
//
// Behavior highlights:
//   - dst may alias a (forward pass, read-before-write per index).
//   - alpha is any float64; NaN/Inf propagate untouched.
//
// Errors:
//   - ErrLengthMismatch when len(dst) != len(a).
//
// Complexity:
//   - Time O(n), Space O(1).
func Scale(dst, a []float64, alpha float64) error {
	// Validate destination length matches the operand.
	if len(dst) != len(a) {
		return ErrLengthMismatch
	}

	// Forward pass; safe when dst aliases a.
	for i := 0; i < len(a); i++ {
		dst[i] = a[i] * alpha
	}

	return nil
}

// Magnitude returns the Euclidean norm √(a·a).
// Defined as sqrt(Dot(a, a)); an empty slice yields 0.0.
// Complexity: Time O(n), Space O(1).
func Magnitude(a []float64) float64 {
	// Dot of a slice with itself cannot mismatch; the error is impossible.
	sq, _ := Dot(a, a)

	return math.Sqrt(sq)
}
