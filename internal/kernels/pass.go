package kernels

import "github.com/cwbudde/algo-gpufft/device"

// pass0 is the untwiddled stage. Each lane transforms the stride-4
// subsequence in[me+4m] and then exchanges results with the other lanes
// through the staging planes, so that afterwards lane me holds bin me of
// every sub-transform.
//
// re and im may alias: each plane is written, read back and released
// behind its own pair of barriers.
func pass0(l device.Lane, in []complex64, re, im []float32, r *[Radix]complex64) {
	me := l.ThreadIdx()

	for m := range Radix {
		r[m] = in[me+m*Lanes]
	}

	fwdRad4(r)

	l.Barrier()

	for k := range Radix {
		re[me*Radix+k] = real(r[k])
	}

	l.Barrier()

	for k := range Radix {
		r[k] = complex(re[me+k*Lanes], imag(r[k]))
	}

	l.Barrier()

	for k := range Radix {
		im[me*Radix+k] = imag(r[k])
	}

	l.Barrier()

	for k := range Radix {
		r[k] = complex(real(r[k]), im[me+k*Lanes])
	}

	l.Barrier()
}

// pass1 rotates the non-DC operands by W16^(j·me), combines them and stores
// bin me+4k of the spectrum. pass0's transpose already put the operands in
// place, so the stores need no permutation.
func pass1(l device.Lane, out, tw []complex64, r *[Radix]complex64) {
	me := l.ThreadIdx()

	for j := 1; j < Radix; j++ {
		r[j] = cmul(tw[twiddleIndex(me, j)], r[j])
	}

	fwdRad4(r)

	l.Barrier()

	for k := range Radix {
		out[me+k*Lanes] = r[k]
	}
}
