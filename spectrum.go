package gpufft

import "github.com/cwbudde/algo-vecmath"

// Magnitude returns |X[k]| for each bin of spectrum.
func Magnitude(spectrum []complex64) []float64 {
	if len(spectrum) == 0 {
		return nil
	}
	re, im := splitParts(spectrum)
	out := make([]float64, len(spectrum))
	vecmath.Magnitude(out, re, im)
	return out
}

// Power returns |X[k]|^2 for each bin of spectrum.
func Power(spectrum []complex64) []float64 {
	if len(spectrum) == 0 {
		return nil
	}
	re, im := splitParts(spectrum)
	out := make([]float64, len(spectrum))
	vecmath.Power(out, re, im)
	return out
}

func splitParts(v []complex64) (re, im []float64) {
	re = make([]float64, len(v))
	im = make([]float64, len(v))
	for i, c := range v {
		re[i] = float64(real(c))
		im[i] = float64(imag(c))
	}
	return re, im
}
