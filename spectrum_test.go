package gpufft

import (
	"math"
	"testing"
)

func TestMagnitudeAndPower(t *testing.T) {
	t.Parallel()

	in := []complex64{3 + 4i, -1, 2i, 0}
	wantMag := []float64{5, 1, 2, 0}
	wantPow := []float64{25, 1, 4, 0}

	mag := Magnitude(in)
	pow := Power(in)
	for i := range in {
		if math.Abs(mag[i]-wantMag[i]) > 1e-12 {
			t.Errorf("Magnitude[%d] = %v, want %v", i, mag[i], wantMag[i])
		}
		if math.Abs(pow[i]-wantPow[i]) > 1e-12 {
			t.Errorf("Power[%d] = %v, want %v", i, pow[i], wantPow[i])
		}
	}

	if Magnitude(nil) != nil || Power(nil) != nil {
		t.Error("empty input should yield nil")
	}
}

func TestMagnitudeOfImpulseSpectrum(t *testing.T) {
	t.Parallel()

	src := make([]complex64, FFTLength)
	src[0] = 1
	for k, m := range Magnitude(forward(t, src)) {
		if math.Abs(m-1) > 1e-6 {
			t.Errorf("|X[%d]| = %v, want 1", k, m)
		}
	}
}
