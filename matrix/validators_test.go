// SPDX-License-Identifier: MIT
// Package matrix_test: validator behavior.
//
// Purpose:
//   - Pin the sentinel each validator reports, including the typed-nil
//     *Dense case that a plain interface nil-check would let through.

package matrix_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/mathlib/matrix"
)

// TestValidateNotNil_TypedNilDense asserts that a non-nil Matrix interface
// carrying a nil *Dense pointer is rejected with ErrNilMatrix instead of
// reaching a method call that would dereference the nil receiver.
func TestValidateNotNil_TypedNilDense(t *testing.T) {
	var d *matrix.Dense // typed nil; interface Matrix(d) != nil

	if err := matrix.ValidateNotNil(d); !errors.Is(err, matrix.ErrNilMatrix) {
		t.Fatalf("ValidateNotNil(typed nil): want ErrNilMatrix, got %v", err)
	}
}

// TestKernels_TypedNilDense asserts every Into-kernel and Det2x2 returns
// ErrNilMatrix (no panic) when handed a typed-nil *Dense operand.
func TestKernels_TypedNilDense(t *testing.T) {
	var nilDense *matrix.Dense
	ok := MustFromSlice(t, 2, 2, []float64{1, 2, 3, 4})

	cases := []struct {
		name string
		call func() error
	}{
		{"IdentityInto", func() error { return matrix.IdentityInto(nilDense) }},
		{"MulInto_dst", func() error { return matrix.MulInto(nilDense, ok, ok) }},
		{"MulInto_a", func() error { return matrix.MulInto(ok, nilDense, ok) }},
		{"MulInto_b", func() error { return matrix.MulInto(ok, ok, nilDense) }},
		{"TransposeInto_dst", func() error { return matrix.TransposeInto(nilDense, ok) }},
		{"TransposeInto_a", func() error { return matrix.TransposeInto(ok, nilDense) }},
		{"Det2x2", func() error { _, err := matrix.Det2x2(nilDense); return err }},
	}

	var err error
	for _, tc := range cases {
		err = tc.call()
		if !errors.Is(err, matrix.ErrNilMatrix) {
			t.Errorf("%s(typed nil): want ErrNilMatrix, got %v", tc.name, err)
		}
	}
}

// TestValidateSameShape covers the equal-shape, row-mismatch and
// col-mismatch branches.
func TestValidateSameShape(t *testing.T) {
	cases := []struct {
		name    string
		ra, ca  int
		rb, cb  int
		wantErr error
	}{
		{"equal", 2, 3, 2, 3, nil},
		{"row_mismatch", 2, 3, 4, 3, matrix.ErrDimensionMismatch},
		{"col_mismatch", 2, 3, 2, 5, matrix.ErrDimensionMismatch},
	}

	var a, b *matrix.Dense
	var err error
	for _, tc := range cases {
		a = MustDense(t, tc.ra, tc.ca)
		b = MustDense(t, tc.rb, tc.cb)
		err = matrix.ValidateSameShape(a, b)
		if tc.wantErr == nil {
			if err != nil {
				t.Errorf("%s: want nil, got %v", tc.name, err)
			}
			continue
		}
		if !errors.Is(err, tc.wantErr) {
			t.Errorf("%s: want %v, got %v", tc.name, tc.wantErr, err)
		}
	}
}
