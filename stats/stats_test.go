package stats_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/mathlib/stats"
)

// floatTol is the comparison tolerance for accumulated float64 results.
const floatTol = 1e-12

// TestMean_Canonical verifies mean({1..5}) == 3.
func TestMean_Canonical(t *testing.T) {
	assert.Equal(t, 3.0, stats.Mean([]float64{1, 2, 3, 4, 5}))
}

// TestVariance_PopulationPolicy pins the ÷n (not ÷(n−1)) policy:
// variance({1..5}) == 2 exactly; the sample variance would be 2.5.
func TestVariance_PopulationPolicy(t *testing.T) {
	assert.Equal(t, 2.0, stats.Variance([]float64{1, 2, 3, 4, 5}))

	// A constant sample has zero variance under either policy.
	assert.Equal(t, 0.0, stats.Variance([]float64{7, 7, 7}))
}

// TestStdDeviation_Canonical verifies stddev({1..5}) == √2.
func TestStdDeviation_Canonical(t *testing.T) {
	assert.InDelta(t, math.Sqrt(2), stats.StdDeviation([]float64{1, 2, 3, 4, 5}), floatTol)
}

// TestMedian_DestructiveContract verifies both halves of the contract:
// the returned value AND the in-place sort of the caller's buffer.
func TestMedian_DestructiveContract(t *testing.T) {
	sample := []float64{5, 1, 3, 2, 4}

	assert.Equal(t, 3.0, stats.Median(sample))
	assert.Equal(t, []float64{1, 2, 3, 4, 5}, sample, "median must leave the buffer sorted")
}

// TestMedian_EvenLength verifies the two-middle-element average.
func TestMedian_EvenLength(t *testing.T) {
	sample := []float64{4, 1, 3, 2}

	assert.Equal(t, 2.5, stats.Median(sample))
	assert.Equal(t, []float64{1, 2, 3, 4}, sample)
}

// TestMedian_SingleElement covers the smallest non-empty sample.
func TestMedian_SingleElement(t *testing.T) {
	assert.Equal(t, 42.0, stats.Median([]float64{42}))
}

// TestMedianOf_NonDestructive verifies the copying variant leaves the
// caller's buffer untouched while returning the same value.
func TestMedianOf_NonDestructive(t *testing.T) {
	sample := []float64{5, 1, 3, 2, 4}

	assert.Equal(t, 3.0, stats.MedianOf(sample))
	assert.Equal(t, []float64{5, 1, 3, 2, 4}, sample, "MedianOf must not reorder the input")
}

// TestEmptyInput_Sentinels verifies every reduction returns 0.0 for an
// empty sample without faulting.
func TestEmptyInput_Sentinels(t *testing.T) {
	assert.Equal(t, 0.0, stats.Mean(nil))
	assert.Equal(t, 0.0, stats.Variance(nil))
	assert.Equal(t, 0.0, stats.StdDeviation(nil))
	assert.Equal(t, 0.0, stats.Median(nil))
	assert.Equal(t, 0.0, stats.MedianOf(nil))

	assert.Equal(t, 0.0, stats.Median([]float64{}))
}

// TestVariance_MeanChain spot-checks the mean → variance → stddev chain on
// a sample with a non-integer mean.
func TestVariance_MeanChain(t *testing.T) {
	data := []float64{2, 4, 4, 4, 5, 5, 7, 9} // classic textbook sample

	assert.Equal(t, 5.0, stats.Mean(data))
	assert.Equal(t, 4.0, stats.Variance(data))
	assert.Equal(t, 2.0, stats.StdDeviation(data))
}

// TestNegativeValues ensures signs flow through the reductions correctly.
func TestNegativeValues(t *testing.T) {
	data := []float64{-3, -1, 1, 3}

	assert.Equal(t, 0.0, stats.Mean(data))
	assert.Equal(t, 5.0, stats.Variance(data))
	assert.Equal(t, 0.0, stats.MedianOf(data))
}
