// Command mathdemo runs each mathlib component over the canonical fixtures
// and prints the results — the Go rendition of the library's original
// smoke-test driver. Useful as a quick sanity tour and as copy-paste
// starting material for new callers.
package main

import (
	"fmt"
	"os"

	"github.com/katalvlaran/mathlib/matrix"
	"github.com/katalvlaran/mathlib/stats"
	"github.com/katalvlaran/mathlib/vector"
)

func main() {
	fmt.Println("MathLib Test Suite")
	fmt.Println("==================")
	fmt.Println()

	// Vector operations.
	fmt.Println("Vector Operations:")
	v1 := []float64{1, 2, 3}
	v2 := []float64{4, 5, 6}
	vResult := make([]float64, 3)

	dot, err := vector.Dot(v1, v2)
	fail(err)
	fmt.Printf("  Dot product: %g (expected: 32)\n", dot)

	fail(vector.Add(vResult, v1, v2))
	fmt.Printf("  Vector add: %v\n", vResult)

	fmt.Printf("  Magnitude: %g\n\n", vector.Magnitude(v1))

	// Matrix operations.
	fmt.Println("Matrix Operations:")
	m1, err := matrix.FromSlice(2, 2, []float64{1, 2, 3, 4})
	fail(err)
	m2, err := matrix.FromSlice(2, 2, []float64{5, 6, 7, 8})
	fail(err)
	mOut := make([]float64, 4)
	mResult, err := matrix.FromSlice(2, 2, mOut)
	fail(err)

	fail(matrix.MulInto(mResult, m1, m2))
	fmt.Println("  Matrix multiply result:")
	fmt.Printf("    [%g, %g]\n", mOut[0], mOut[1])
	fmt.Printf("    [%g, %g]\n", mOut[2], mOut[3])

	det, err := matrix.Det2x2(m1)
	fail(err)
	fmt.Printf("  Determinant: %g (expected: -2)\n\n", det)

	// Statistics.
	fmt.Println("Statistics:")
	data := []float64{1, 2, 3, 4, 5}
	fmt.Printf("  Mean: %g (expected: 3)\n", stats.Mean(data))
	fmt.Printf("  Variance: %g (expected: 2)\n", stats.Variance(data))
	fmt.Printf("  Std Dev: %g\n", stats.StdDeviation(data))

	// Median sorts its buffer in place, so feed it a scratch copy.
	scratch := []float64{5, 1, 3, 2, 4}
	fmt.Printf("  Median: %g (expected: 3)\n", stats.Median(scratch))

	fmt.Println()
	fmt.Println("All checks completed.")
}

// fail aborts the demo on the first unexpected error.
func fail(err error) {
	if err != nil {
		fmt.Fprintln(os.Stderr, "mathdemo:", err)
		os.Exit(1)
	}
}
