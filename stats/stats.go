// SPDX-License-Identifier: MIT
// Package stats: descriptive-statistics reductions.
//
// Purpose:
//   - Implement mean, population variance, standard deviation and median as
//     stateless single-pass reductions over borrowed samples.
//
// Determinism & Performance:
//   - Fixed forward traversal; sort.Float64s gives a deterministic order for
//     the median's in-place sort.
//   - No reported errors in this package: empty input maps to the 0.0
//     sentinel by contract, everything else is the caller's precondition.

package stats

import (
	"math"
	"sort"
)

// emptySentinel is the documented return value for empty-input reductions.
const emptySentinel = 0.0

// Mean returns the arithmetic mean of data.
// Returns 0.0 for an empty sample (documented sentinel, not an error).
// Complexity: Time O(n), Space O(1).
func Mean(data []float64) float64 {
	if len(data) == 0 {
		return emptySentinel
	}

	// Accumulate in fixed forward order.
	var sum float64
	for _, v := range data {
		sum += v
	}

	return sum / float64(len(data))
}

// Variance returns the POPULATION variance of data: the sum of squared
// deviations from the mean divided by n (not n−1).
// Returns 0.0 for an empty sample.
//
// Implementation:
//   - Stage 1: empty-input sentinel check.
//   - Stage 2: two passes — Mean, then squared deviations.
//
// Complexity: Time O(n), Space O(1).
func Variance(data []float64) float64 {
	if len(data) == 0 {
		return emptySentinel
	}

	m := Mean(data)

	// Second pass: accumulate squared deviations.
	var sumSq float64
	var diff float64
	for _, v := range data {
		diff = v - m
		sumSq += diff * diff
	}

	return sumSq / float64(len(data))
}

// StdDeviation returns the population standard deviation √(Variance(data)).
// Returns 0.0 for an empty sample (√0).
// Complexity: Time O(n), Space O(1).
func StdDeviation(data []float64) float64 {
	return math.Sqrt(Variance(data))
}

// Median SORTS data IN PLACE ascending, then returns the middle element
// (odd length) or the mean of the two middle elements (even length).
// Returns 0.0 for an empty sample.
//
// Behavior highlights:
//   - The destructive sort is a deliberate, load-bearing part of the
//     contract (it is what the exported C `median` symbol does). Callers
//     who need the original order must copy first — or use MedianOf.
//
// Determinism:
//   - sort.Float64s; ties and NaN ordering follow the sort package rules.
//
// Complexity: Time O(n log n), Space O(1) extra.
func Median(data []float64) float64 {
	n := len(data)
	if n == 0 {
		return emptySentinel
	}

	// In-place ascending sort — visible to the caller by contract.
	sort.Float64s(data)

	if n%2 == 0 {
		return (data[n/2-1] + data[n/2]) / 2.0
	}

	return data[n/2]
}

// MedianOf returns the median of data WITHOUT mutating it: the sample is
// copied, then Median runs on the copy. Use this when the original order
// matters; use Median when the C-surface destructive contract is wanted.
// Complexity: Time O(n log n), Space O(n) for the copy.
func MedianOf(data []float64) float64 {
	if len(data) == 0 {
		return emptySentinel
	}

	// Copy, then delegate to the canonical (destructive) reduction.
	tmp := make([]float64, len(data))
	copy(tmp, data)

	return Median(tmp)
}
