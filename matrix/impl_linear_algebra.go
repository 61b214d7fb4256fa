// SPDX-License-Identifier: MIT
// Package matrix: canonical linear-algebra kernels.
//
// Purpose:
//   - Implement the Into-kernels (caller-owned destinations, zero allocation)
//     that back both the Go facades and the C export surface: MulInto,
//     TransposeInto, IdentityInto, plus the Det2x2 reduction.
//
// Notes:
//   - All kernels use the central validators and return plain sentinels
//     wrapped via matrixErrorf with an operation tag.
//   - Destinations for MulInto/TransposeInto must not overlap the inputs;
//     overlap is an unchecked precondition (results unspecified).

package matrix

import "fmt"

// ZeroSum is the initial accumulator value for multiply reductions.
const ZeroSum = 0.0

// det2x2Size is the only dimension Det2x2 accepts.
const det2x2Size = 2

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opMulInto       = "MulInto"
	opTransposeInto = "TransposeInto"
	opIdentityInto  = "IdentityInto"
	opDet2x2        = "Det2x2"
	opMul           = "Mul"
	opTranspose     = "Transpose"
	opIdentity      = "Identity"
)

// matrixErrorf wraps err with an operation tag, preserving the original error
// via %w so callers can still match sentinels with errors.Is.
// Use only when err != nil.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// MulInto computes dst = a × b into a caller-owned destination (no aliasing).
// Implementation:
//   - Stage 1: ValidateMulInto(dst, a, b) — inner dimensions and dst shape.
//   - Stage 2: If all three are *Dense, run the flat i→k→j row-major loop
//     after zeroing dst rows; otherwise fall back to At/Set with i→j→k order.
//
// Behavior highlights:
//   - Zero allocations; dst is fully overwritten (no stale values survive).
//   - Deterministic triple loops; float64 accumulation throughout.
//   - Non-finite operands propagate per IEEE-754: every a[i,k]*b[k,j]
//     product is accumulated, so 0*NaN contributes NaN, not 0.
//   - dst MUST NOT overlap a or b (unchecked precondition).
//
// Inputs:
//   - dst: destination with shape (r_a × c_b), caller-owned.
//   - a:   left matrix with shape (r_a × c_a).
//   - b:   right matrix with shape (c_a × c_b).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateMulInto).
//
// Determinism:
//   - Fixed loop orders (i→k→j fast path, i→j→k fallback).
//
// Complexity:
//   - Time O(r_a·c_a·c_b), Space O(1). No blocking/tiling — correctness first.
func MulInto(dst, a, b Matrix) error {
	// Validate operands and destination shape via canonical validator.
	if err := ValidateMulInto(dst, a, b); err != nil {
		return matrixErrorf(opMulInto, err)
	}

	aRows, aCols, bCols := a.Rows(), a.Cols(), b.Cols()
	var i, j, k int // loop iterators (deterministic order)

	// Fast path: all three operands are *Dense → flat row-major loops.
	if dd, okD := dst.(*Dense); okD {
		if da, okA := a.(*Dense); okA {
			if db, okB := b.(*Dense); okB {
				var rowOffsetA, rowOffsetB, rowOffsetD int
				var av float64
				for i = 0; i < aRows; i++ {
					rowOffsetA = i * aCols
					rowOffsetD = i * bCols
					// Zero the destination row before accumulation.
					for j = 0; j < bCols; j++ {
						dd.data[rowOffsetD+j] = ZeroSum
					}
					for k = 0; k < aCols; k++ {
						// Accumulate unconditionally: a zero-skip shortcut would
						// turn 0*NaN into 0 and break IEEE-754 NaN propagation.
						av = da.data[rowOffsetA+k]
						rowOffsetB = k * bCols
						for j = 0; j < bCols; j++ {
							dd.data[rowOffsetD+j] += av * db.data[rowOffsetB+j]
						}
					}
				}

				return nil
			}
		}
	}

	// Fallback: generic interface triple-loop (i→j→k).
	var av, bv, current float64
	var err error
	for i = 0; i < aRows; i++ {
		for j = 0; j < bCols; j++ {
			current = ZeroSum
			for k = 0; k < aCols; k++ {
				av, err = a.At(i, k)
				if err != nil {
					return matrixErrorf(opMulInto, fmt.Errorf("At(%d,%d): %w", i, k, err))
				}
				bv, err = b.At(k, j)
				if err != nil {
					return matrixErrorf(opMulInto, fmt.Errorf("At(%d,%d): %w", k, j, err))
				}
				current += av * bv // accumulate product
			}
			if err = dst.Set(i, j, current); err != nil {
				return matrixErrorf(opMulInto, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}

// TransposeInto writes aᵀ into a caller-owned destination (no aliasing).
// Implementation:
//   - Stage 1: ValidateTransposeInto(dst, a) — dst must be a.Cols × a.Rows.
//   - Stage 2: Dense fast path maps data[i*c+j] → dst.data[j*r+i];
//     otherwise generic i→j At/Set loop.
//
// Behavior highlights:
//   - Zero allocations; fixed traversal order; full overwrite of dst.
//   - dst MUST NOT alias a (unchecked precondition): a same-buffer
//     "in-place" transpose would read elements it already overwrote.
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (from ValidateTransposeInto).
//
// Complexity:
//   - Time O(r*c), Space O(1).
func TransposeInto(dst, a Matrix) error {
	// Validate destination carries the flipped shape.
	if err := ValidateTransposeInto(dst, a); err != nil {
		return matrixErrorf(opTransposeInto, err)
	}

	rows, cols := a.Rows(), a.Cols()
	var i, j int // loop iterators

	// Fast path: Dense → Dense flat mapping.
	if dd, okD := dst.(*Dense); okD {
		if da, okA := a.(*Dense); okA {
			var baseSrc int
			for i = 0; i < rows; i++ {
				baseSrc = i * cols
				for j = 0; j < cols; j++ {
					dd.data[j*rows+i] = da.data[baseSrc+j]
				}
			}

			return nil
		}
	}

	// Fallback: generic interface loop.
	var v float64
	var err error
	for i = 0; i < rows; i++ {
		for j = 0; j < cols; j++ {
			v, err = a.At(i, j)
			if err != nil {
				return matrixErrorf(opTransposeInto, fmt.Errorf("At(%d,%d): %w", i, j, err))
			}
			if err = dst.Set(j, i, v); err != nil {
				return matrixErrorf(opTransposeInto, fmt.Errorf("Set(%d,%d): %w", j, i, err))
			}
		}
	}

	return nil
}

// IdentityInto fills a caller-owned square destination with the identity:
// 1.0 on the diagonal, 0.0 everywhere else.
// Implementation:
//   - Stage 1: ValidateSquareNonNil(dst).
//   - Stage 2: Dense fast path zeroes the flat slice then writes the
//     diagonal; fallback uses Set in fixed i→j order.
//
// Errors:
//   - ErrNilMatrix, ErrNonSquare (from ValidateSquareNonNil).
//
// Complexity:
//   - Time O(n²), Space O(1).
func IdentityInto(dst Matrix) error {
	// Validate destination is present and square.
	if err := ValidateSquareNonNil(dst); err != nil {
		return matrixErrorf(opIdentityInto, err)
	}

	n := dst.Rows()
	var i, j int // loop iterators

	// Fast path: zero the backing slice, then set the diagonal.
	if dd, ok := dst.(*Dense); ok {
		for i = range dd.data {
			dd.data[i] = 0
		}
		for i = 0; i < n; i++ {
			dd.data[i*n+i] = 1.0
		}

		return nil
	}

	// Fallback: generic interface loop.
	var v float64
	var err error
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			v = 0.0
			if i == j {
				v = 1.0
			}
			if err = dst.Set(i, j, v); err != nil {
				return matrixErrorf(opIdentityInto, fmt.Errorf("Set(%d,%d): %w", i, j, err))
			}
		}
	}

	return nil
}

// Det2x2 returns the determinant of a 2×2 matrix:
// m[0,0]*m[1,1] − m[0,1]*m[1,0].
// Implementation:
//   - Stage 1: validate m is non-nil and exactly 2×2.
//   - Stage 2: Dense fast path reads the four flat elements directly;
//     fallback goes through At.
//
// Behavior highlights:
//   - Defined ONLY for the 2×2 case; any other shape is rejected on the Go
//     API (the C boundary leaves the shape unchecked by contract).
//
// Errors:
//   - ErrNilMatrix, ErrDimensionMismatch (wrong shape).
//
// Complexity:
//   - Time O(1), Space O(1).
func Det2x2(m Matrix) (float64, error) {
	// Validate presence and the exact 2×2 shape.
	if err := ValidateNotNil(m); err != nil {
		return 0, matrixErrorf(opDet2x2, err)
	}
	if m.Rows() != det2x2Size || m.Cols() != det2x2Size {
		return 0, matrixErrorf(opDet2x2, ErrDimensionMismatch)
	}

	// Fast path: read the flat backing slice directly.
	if d, ok := m.(*Dense); ok {
		return d.data[0]*d.data[3] - d.data[1]*d.data[2], nil
	}

	// Fallback: generic interface reads (shape already validated).
	a, err := m.At(0, 0)
	if err != nil {
		return 0, matrixErrorf(opDet2x2, err)
	}
	b, err := m.At(0, 1)
	if err != nil {
		return 0, matrixErrorf(opDet2x2, err)
	}
	c, err := m.At(1, 0)
	if err != nil {
		return 0, matrixErrorf(opDet2x2, err)
	}
	d, err := m.At(1, 1)
	if err != nil {
		return 0, matrixErrorf(opDet2x2, err)
	}

	return a*d - b*c, nil
}
