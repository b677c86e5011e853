package kernels

import "math"

const (
	// Size is the transform length handled by the kernel.
	Size = 16
	// Radix of both passes.
	Radix = 4
	// Lanes is the number of lanes of the single block a launch uses.
	Lanes = Size / Radix

	// twiddleBase and twiddleStride address the Pass 1 rotation factors:
	// lane me reads entries twiddleBase + twiddleStride*me + {0,1,2}.
	twiddleBase   = Radix - 1
	twiddleStride = Radix - 1
)

// TwiddleBytes is the device footprint of the table returned by Twiddles.
const TwiddleBytes = Size * 8

// Twiddles returns the rotation table for the two-pass radix-4 length-16
// transform. Entry twiddleBase + twiddleStride*k + (j-1) holds W16^(j·k) for
// lane k and sub-transform j = 1..3; the remaining slots are 1.
func Twiddles() []complex64 {
	tw := make([]complex64, Size)
	for i := range tw {
		tw[i] = 1
	}

	for k := range Lanes {
		for j := 1; j < Radix; j++ {
			tw[twiddleIndex(k, j)] = twiddle(j*k, Size)
		}
	}

	return tw
}

func twiddleIndex(lane, j int) int {
	return twiddleBase + twiddleStride*(lane%Radix) + j - 1
}

// twiddle returns W_n^k = exp(-2πik/n) rounded to complex64.
func twiddle(k, n int) complex64 {
	angle := -2.0 * math.Pi * float64(k%n) / float64(n)
	return complex(float32(math.Cos(angle)), float32(math.Sin(angle)))
}
