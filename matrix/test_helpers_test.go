// SPDX-License-Identifier: MIT
// Package matrix_test contains test helpers.
//
// Purpose:
//   - Provide small, deterministic fixtures and utilities for kernel tests.
//   - Keep all data finite and well-formed.

package matrix_test

import (
	"testing"

	"github.com/katalvlaran/mathlib/matrix"
)

// hide WRAPS any Matrix to hide its concrete type from type assertions.
// Use hide{X} in tests to force the non-*Dense (fallback) kernel paths.
type hide struct{ matrix.Matrix }

// MustDense allocates an r×c *Dense or fails the test (fatal on error).
func MustDense(t *testing.T, rows, cols int) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(rows, cols)
	if err != nil {
		t.Fatalf("NewDense(%d,%d): %v", rows, cols, err)
	}
	return m
}

// MustFromSlice wraps data as an r×c borrowed view or fails the test.
func MustFromSlice(t *testing.T, rows, cols int, data []float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.FromSlice(rows, cols, data)
	if err != nil {
		t.Fatalf("FromSlice(%d,%d,len=%d): %v", rows, cols, len(data), err)
	}
	return m
}

// MustAt reads (i,j) or fails the test.
func MustAt(t *testing.T, m matrix.Matrix, i, j int) float64 {
	t.Helper()
	v, err := m.At(i, j)
	if err != nil {
		t.Fatalf("At(%d,%d): %v", i, j, err)
	}
	return v
}

// MustSet writes (i,j) or fails the test.
func MustSet(t *testing.T, m matrix.Matrix, i, j int, v float64) {
	t.Helper()
	if err := m.Set(i, j, v); err != nil {
		t.Fatalf("Set(%d,%d,%g): %v", i, j, v, err)
	}
}

// FillSeq writes 1, 2, 3, ... row by row — a deterministic, asymmetric
// fixture that makes transposition mistakes visible.
func FillSeq(t *testing.T, m matrix.Matrix) {
	t.Helper()
	var i, j int // loop iterators
	for i = 0; i < m.Rows(); i++ {
		for j = 0; j < m.Cols(); j++ {
			MustSet(t, m, i, j, float64(i*m.Cols()+j+1))
		}
	}
}

// CompareExact asserts that m equals the reference rows exactly (no tolerance).
func CompareExact(t *testing.T, want [][]float64, m matrix.Matrix) {
	t.Helper()
	if len(want) != m.Rows() {
		t.Fatalf("row count: want %d, got %d", len(want), m.Rows())
	}
	var i, j int // loop iterators
	var got float64
	for i = 0; i < m.Rows(); i++ {
		if len(want[i]) != m.Cols() {
			t.Fatalf("col count in row %d: want %d, got %d", i, len(want[i]), m.Cols())
		}
		for j = 0; j < m.Cols(); j++ {
			got = MustAt(t, m, i, j)
			if got != want[i][j] {
				t.Fatalf("mismatch at [%d,%d]: want %g, got %g", i, j, want[i][j], got)
			}
		}
	}
}
