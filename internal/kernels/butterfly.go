package kernels

// fwdRad4 replaces r with its 4-point forward DFT, in natural order.
//
// The combine runs as two difference/sum rounds in the a-b, 2a-(a-b) form;
// the final swap undoes the bit-reversed order the rounds produce.
func fwdRad4(r *[Radix]complex64) {
	r[2] = r[0] - r[2]
	r[0] = twice(r[0]) - r[2]
	r[3] = r[1] - r[3]
	r[1] = twice(r[1]) - r[3]

	r[1] = r[0] - r[1]
	r[0] = twice(r[0]) - r[1]

	// r3 * i: (re, im) → (-im, re)
	r[3] = r[2] + rot90(r[3])
	r[2] = twice(r[2]) - r[3]

	r[1], r[2] = r[2], r[1]
}

func twice(z complex64) complex64 {
	return complex(2*real(z), 2*imag(z))
}

func rot90(z complex64) complex64 {
	return complex(-imag(z), real(z))
}

// cmul is (a+bi)(c+di) = (ac-bd) + (ad+bc)i, written out so every backend
// rounds the same way.
func cmul(w, z complex64) complex64 {
	return complex(
		real(w)*real(z)-imag(w)*imag(z),
		imag(w)*real(z)+real(w)*imag(z),
	)
}
