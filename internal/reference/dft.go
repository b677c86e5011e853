// Package reference provides slow, obviously-correct transforms used to
// verify the device kernels.
package reference

import (
	"math"
	"math/cmplx"
)

// NaiveDFT computes X[k] = sum_n x[n]·exp(-2πi·kn/N) in float64 and rounds
// the result to complex64.
func NaiveDFT(src []complex64) []complex64 {
	wide := make([]complex128, len(src))
	for i, v := range src {
		wide[i] = complex128(v)
	}

	out := make([]complex64, len(src))
	for k, v := range NaiveDFT128(wide) {
		out[k] = complex64(v)
	}
	return out
}

// NaiveDFT128 computes the forward DFT of src in float64.
func NaiveDFT128(src []complex128) []complex128 {
	n := len(src)
	out := make([]complex128, n)

	for k := range n {
		var sum complex128
		for t, v := range src {
			// Reduce kn mod n first so the angle stays small and exact.
			angle := -2 * math.Pi * float64((k*t)%n) / float64(n)
			sum += v * cmplx.Exp(complex(0, angle))
		}
		out[k] = sum
	}
	return out
}

// MaxAbsError returns max_k |got[k] - want[k]| evaluated in float64.
func MaxAbsError(got []complex64, want []complex128) float64 {
	var worst float64
	for i := range min(len(got), len(want)) {
		if d := cmplx.Abs(complex128(got[i]) - want[i]); d > worst {
			worst = d
		}
	}
	return worst
}

// MaxAbs returns max_k |v[k]|.
func MaxAbs(v []complex128) float64 {
	var m float64
	for _, x := range v {
		m = math.Max(m, cmplx.Abs(x))
	}
	return m
}
