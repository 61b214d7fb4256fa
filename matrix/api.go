// SPDX-License-Identifier: MIT
// Package matrix — public API facades.
//
// Purpose:
//   - Provide thin, allocating entry points over the Into-kernels for
//     Go-native callers who prefer fresh results.
//   - Avoid any logic duplication — each facade allocates a destination and
//     delegates to the canonical kernel.
//
// Determinism & Policy:
//   - Facades never change the loop orders or numeric policy of underlying
//     kernels; validation happens in the kernels, facades only compose.
//
// AI-Hints:
//   - Prefer passing *Dense to unlock flat-slice fast paths in the kernels.
//   - Use the Into-kernels directly when the destination buffer is owned by
//     an external caller (zero-copy, zero-allocation path).

package matrix

// Mul returns the product a × b as a fresh Dense.
// Complexity: O(r_a·c_a·c_b) time, O(r_a·c_b) space for the result.
func Mul(a, b Matrix) (Matrix, error) {
	// Validate compatibility before allocating the result.
	if err := ValidateMulCompatible(a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	// Allocate the destination and delegate to the kernel.
	dst, err := NewDense(a.Rows(), b.Cols())
	if err != nil {
		return nil, matrixErrorf(opMul, err)
	}
	if err = MulInto(dst, a, b); err != nil {
		return nil, matrixErrorf(opMul, err)
	}

	return dst, nil
}

// Transpose returns aᵀ as a fresh Dense with flipped dimensions.
// Complexity: O(r*c) time and space.
func Transpose(a Matrix) (Matrix, error) {
	// Validate presence before allocating the result.
	if err := ValidateNotNil(a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	// Allocate the flipped-shape destination and delegate.
	dst, err := NewDense(a.Cols(), a.Rows())
	if err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}
	if err = TransposeInto(dst, a); err != nil {
		return nil, matrixErrorf(opTranspose, err)
	}

	return dst, nil
}

// Identity returns I_n (n×n identity; ones on the diagonal, zeros elsewhere).
// Complexity: O(n²) zeroing (constructor) + O(n) diagonal writes.
func Identity(n int) (*Dense, error) {
	// Allocate an n×n zero matrix via the strict constructor.
	I, err := NewDense(n, n)
	if err != nil {
		return nil, matrixErrorf(opIdentity, err)
	}
	// Set the diagonal deterministically in a single loop.
	for i := 0; i < n; i++ {
		I.data[i*n+i] = 1.0
	}

	return I, nil
}
