package kernels

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-gpufft/device"
	"github.com/cwbudde/algo-gpufft/device/host"
)

const relTol = 1e-5

func randomComplex64(n int, seed int64) []complex64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]complex64, n)
	for i := range out {
		out[i] = complex(rng.Float32()*2-1, rng.Float32()*2-1)
	}
	return out
}

// assertSpectrumClose fails when any bin differs from want by more than
// tol relative to the largest magnitude in want (or absolute when want ~ 0).
func assertSpectrumClose(t *testing.T, got []complex64, want []complex128, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}

	scale := 1.0
	for _, w := range want {
		scale = math.Max(scale, cmplx.Abs(w))
	}

	for i := range got {
		diff := cmplx.Abs(complex128(got[i]) - want[i])
		if diff > tol*scale {
			t.Errorf("bin %d: got %v want %v (diff=%g, limit=%g)", i, got[i], want[i], diff, tol*scale)
		}
	}
}

func widen(v []complex64) []complex128 {
	out := make([]complex128, len(v))
	for i, x := range v {
		out[i] = complex128(x)
	}
	return out
}

// runFFT16 executes ForwardFFT16 on a fresh simulated device. With inPlace
// the result is read back from the input allocation.
func runFFT16(t *testing.T, src []complex64, inPlace bool) []complex64 {
	t.Helper()

	d := host.New()
	defer func() { _ = d.Close() }()

	in := mustUpload(t, d, src)
	out := in
	if !inPlace {
		out = mustUpload(t, d, make([]complex64, Size))
	}
	tw := mustUpload(t, d, Twiddles())

	if err := d.Launch(ForwardFFT16(in, out, tw), LaunchConfig); err != nil {
		t.Fatalf("Launch: %v", err)
	}

	got := make([]complex64, Size)
	if err := device.DownloadComplex64(d, got, out); err != nil {
		t.Fatalf("DownloadComplex64: %v", err)
	}
	return got
}

func mustUpload(t *testing.T, d device.Device, v []complex64) device.Ptr {
	t.Helper()

	p, err := d.Malloc(len(v) * device.Complex64Size)
	if err != nil {
		t.Fatalf("Malloc: %v", err)
	}
	if err := device.UploadComplex64(d, p, v); err != nil {
		t.Fatalf("UploadComplex64: %v", err)
	}
	return p
}
