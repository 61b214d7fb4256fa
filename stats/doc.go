// Package stats provides descriptive statistics over caller-supplied
// float64 samples: mean, population variance, standard deviation and median.
//
// 🚀 What is stats?
//
//	Four reductions with deliberately simple contracts. Samples are plain
//	[]float64 borrowed from the caller; every call is a single synchronous
//	pass (median: one sort) with no retained state.
//
// ✨ Contracts worth reading twice:
//   - Variance is POPULATION variance: the sum of squared deviations is
//     divided by n, not n−1.
//   - Median SORTS THE INPUT IN PLACE and then reads the middle — this
//     destructive side effect is part of the exported contract and is
//     preserved exactly for link compatibility with the C surface.
//     Callers who need the original order must use MedianOf (which copies)
//     or copy themselves before calling.
//   - Empty input is not an error: Mean, Variance, StdDeviation, Median and
//     MedianOf all return the documented 0.0 sentinel for len(data) == 0.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/mathlib/stats"
//
//	data := []float64{1, 2, 3, 4, 5}
//	stats.Mean(data)         // 3
//	stats.Variance(data)     // 2   (÷n, population)
//	stats.StdDeviation(data) // √2
//
//	sample := []float64{5, 1, 3, 2, 4}
//	stats.Median(sample)     // 3; sample is now {1,2,3,4,5}
//
// Internal call chain: Variance computes Mean, StdDeviation computes
// Variance. No other package dependencies.
//
// Performance: Mean/Variance/StdDeviation are O(n) time, O(1) space;
// Median is O(n log n) time, O(1) extra space (O(n) for MedianOf's copy).
package stats
