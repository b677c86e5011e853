// Package kernels holds the device kernels of the length-16 transform.
package kernels

import "github.com/cwbudde/algo-gpufft/device"

// LaunchConfig is the fixed geometry of ForwardFFT16: one block of Lanes
// lanes sharing one Size-slot staging plane.
var LaunchConfig = device.LaunchConfig{
	Grid:         device.Dim3{X: 1, Y: 1, Z: 1},
	Block:        device.Dim3{X: Lanes, Y: 1, Z: 1},
	SharedFloats: Size,
}

// ForwardFFT16 returns the kernel computing the forward length-16 DFT of the
// samples at in into out. in and out may be equal: every lane has loaded its
// inputs before any lane stores.
//
// twiddles must hold the table returned by Twiddles.
func ForwardFFT16(in, out, twiddles device.Ptr) device.Kernel {
	return func(l device.Lane) {
		src := l.Complex64s(in)[:Size]
		dst := l.Complex64s(out)[:Size]
		tw := l.Complex64s(twiddles)[:Size]

		// One scalar plane serves as both staging planes.
		lds := l.Shared()[:Size]

		var r [Radix]complex64
		pass0(l, src, lds, lds, &r)
		pass1(l, dst, tw, &r)
	}
}
