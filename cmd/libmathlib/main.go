// Command libmathlib builds the C-callable mathlib surface as a shared
// library:
//
//	go build -buildmode=c-shared -o libmathlib.so ./cmd/libmathlib
//
// Host programs in any language link against the generated library and call
// the exported symbols below directly. Every function takes raw numeric
// buffers plus explicit size/shape integers, and either returns a double or
// writes into a caller-provided output buffer.
//
// Boundary contract (deliberately unchecked — the Go-native packages carry
// the safe, validated API):
//   - Buffers are borrowed views over caller memory: nothing is allocated,
//     copied, freed or retained here. unsafe.Slice is the entire adapter.
//   - Size/shape parameters must match the true buffer sizes; this is the
//     caller's unchecked precondition. A negative vector/stats size traps
//     (runtime abort) rather than producing a plausible wrong answer.
//   - Empty-input reductions (size == 0) return the documented 0.0 sentinel.
//   - Matrix calls with any dimension <= 0 are no-ops: the reference loops
//     zero-trip, touching no memory and writing nothing.
//   - median sorts the caller's buffer in place — load-bearing side effect.
//   - No call panics or unwinds across the boundary on valid input.
package main

import "C"

import (
	"unsafe"

	"github.com/katalvlaran/mathlib/matrix"
	"github.com/katalvlaran/mathlib/stats"
	"github.com/katalvlaran/mathlib/vector"
)

// view reinterprets a caller-owned C buffer as a Go slice without copying.
// n == 0 yields a nil slice (sentinel paths); a negative n makes
// unsafe.Slice trap, which the boundary contract permits.
func view(p *C.double, n C.int) []float64 {
	if n == 0 {
		return nil
	}

	return unsafe.Slice((*float64)(unsafe.Pointer(p)), int(n))
}

// borrow wraps a caller-owned C buffer as a rows×cols Dense view.
// Callers guard rows > 0 && cols > 0 first, so the shape always matches
// the view length and the FromSlice error is impossible here.
func borrow(p *C.double, rows, cols C.int) *matrix.Dense {
	m, _ := matrix.FromSlice(int(rows), int(cols), view(p, rows*cols))

	return m
}

// ---------- VectorOps ----------

//export vector_dot
func vector_dot(a, b *C.double, n C.int) C.double {
	// Equal lengths by construction; the mismatch error is impossible.
	d, _ := vector.Dot(view(a, n), view(b, n))

	return C.double(d)
}

//export vector_add
func vector_add(a, b, result *C.double, n C.int) {
	_ = vector.Add(view(result, n), view(a, n), view(b, n))
}

//export vector_scale
func vector_scale(a *C.double, scalar C.double, result *C.double, n C.int) {
	_ = vector.Scale(view(result, n), view(a, n), float64(scalar))
}

//export vector_magnitude
func vector_magnitude(a *C.double, n C.int) C.double {
	return C.double(vector.Magnitude(view(a, n)))
}

// ---------- MatrixOps ----------

//export matrix_multiply
func matrix_multiply(a, b, result *C.double, rowsA, colsA, colsB C.int) {
	if rowsA <= 0 || colsA <= 0 || colsB <= 0 {
		return // zero-trip: no memory is touched
	}
	// result must not overlap a or b (unchecked caller precondition).
	_ = matrix.MulInto(
		borrow(result, rowsA, colsB),
		borrow(a, rowsA, colsA),
		borrow(b, colsA, colsB),
	)
}

//export matrix_transpose
func matrix_transpose(a, result *C.double, rows, cols C.int) {
	if rows <= 0 || cols <= 0 {
		return // zero-trip: no memory is touched
	}
	// result is sized cols×rows and must not alias a.
	_ = matrix.TransposeInto(borrow(result, cols, rows), borrow(a, rows, cols))
}

//export matrix_determinant_2x2
func matrix_determinant_2x2(m *C.double) C.double {
	// The 2×2 shape is the caller's precondition; exactly 4 doubles are read.
	d, _ := matrix.Det2x2(borrow(m, 2, 2))

	return C.double(d)
}

//export matrix_identity
func matrix_identity(result *C.double, size C.int) {
	if size <= 0 {
		return // zero-trip: no memory is touched
	}
	_ = matrix.IdentityInto(borrow(result, size, size))
}

// ---------- StatisticsOps ----------

//export mean
func mean(data *C.double, size C.int) C.double {
	return C.double(stats.Mean(view(data, size)))
}

//export variance
func variance(data *C.double, size C.int) C.double {
	return C.double(stats.Variance(view(data, size)))
}

//export std_deviation
func std_deviation(data *C.double, size C.int) C.double {
	return C.double(stats.StdDeviation(view(data, size)))
}

//export median
func median(data *C.double, size C.int) C.double {
	// Sorts the caller's buffer in place through the view.
	return C.double(stats.Median(view(data, size)))
}

// main is required by the c-shared build mode and never runs.
func main() {}
