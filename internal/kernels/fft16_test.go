package kernels

import (
	"errors"
	"math/cmplx"
	"testing"

	"github.com/cwbudde/algo-gpufft/device"
	"github.com/cwbudde/algo-gpufft/device/host"
	"github.com/cwbudde/algo-gpufft/internal/reference"
)

func TestForwardFFT16MatchesDFT(t *testing.T) {
	t.Parallel()

	for seed := int64(100); seed < 120; seed++ {
		src := randomComplex64(Size, seed)
		got := runFFT16(t, src, true)
		assertSpectrumClose(t, got, reference.NaiveDFT128(widen(src)), relTol)
	}
}

func TestForwardFFT16OutOfPlace(t *testing.T) {
	t.Parallel()

	src := randomComplex64(Size, 7)

	d := host.New()
	in := mustUpload(t, d, src)
	out := mustUpload(t, d, make([]complex64, Size))
	tw := mustUpload(t, d, Twiddles())

	if err := d.Launch(ForwardFFT16(in, out, tw), LaunchConfig); err != nil {
		t.Fatalf("Launch: %v", err)
	}

	got := make([]complex64, Size)
	if err := device.DownloadComplex64(d, got, out); err != nil {
		t.Fatalf("DownloadComplex64: %v", err)
	}
	assertSpectrumClose(t, got, reference.NaiveDFT128(widen(src)), relTol)

	kept := make([]complex64, Size)
	if err := device.DownloadComplex64(d, kept, in); err != nil {
		t.Fatalf("DownloadComplex64: %v", err)
	}
	for i := range src {
		if kept[i] != src[i] {
			t.Fatalf("input sample %d changed: %v -> %v", i, src[i], kept[i])
		}
	}
}

func TestForwardFFT16Impulse(t *testing.T) {
	t.Parallel()

	src := make([]complex64, Size)
	src[0] = 1

	for k, v := range runFFT16(t, src, true) {
		if v != 1 {
			t.Errorf("X[%d] = %v, want 1", k, v)
		}
	}
}

func TestForwardFFT16Constant(t *testing.T) {
	t.Parallel()

	src := make([]complex64, Size)
	for i := range src {
		src[i] = 1
	}

	got := runFFT16(t, src, true)
	if got[0] != Size {
		t.Errorf("X[0] = %v, want %d", got[0], Size)
	}
	for k := 1; k < Size; k++ {
		if cmplx.Abs(complex128(got[k])) > 1e-6 {
			t.Errorf("X[%d] = %v, want 0", k, got[k])
		}
	}
}

func TestForwardFFT16SingleTone(t *testing.T) {
	t.Parallel()

	// x[n] = W16^(-3n) puts all energy into bin 3.
	src := make([]complex64, Size)
	for n := range src {
		src[n] = complex64(cmplx.Conj(complex128(twiddle(3*n, Size))))
	}

	got := runFFT16(t, src, true)
	want := make([]complex128, Size)
	want[3] = Size
	assertSpectrumClose(t, got, want, relTol)
}

func TestForwardFFT16Linearity(t *testing.T) {
	t.Parallel()

	x := randomComplex64(Size, 12345)
	y := randomComplex64(Size, 67890)
	c := complex(float32(2.5), float32(-1.3))

	combined := make([]complex64, Size)
	for i := range combined {
		combined[i] = x[i] + c*y[i]
	}

	fx := runFFT16(t, x, true)
	fy := runFFT16(t, y, true)
	fc := runFFT16(t, combined, true)

	want := make([]complex128, Size)
	for i := range want {
		want[i] = complex128(fx[i]) + complex128(c)*complex128(fy[i])
	}
	assertSpectrumClose(t, fc, want, relTol)
}

func TestForwardFFT16Deterministic(t *testing.T) {
	t.Parallel()

	src := randomComplex64(Size, 2024)
	first := runFFT16(t, src, true)

	for run := range 10 {
		again := runFFT16(t, src, run%2 == 0)
		for i := range first {
			if again[i] != first[i] {
				t.Fatalf("run %d bin %d: %v != %v", run, i, again[i], first[i])
			}
		}
	}
}

func TestForwardFFT16ShortBufferFaults(t *testing.T) {
	t.Parallel()

	d := host.New()
	in, err := d.Malloc(8 * device.Complex64Size)
	if err != nil {
		t.Fatalf("Malloc: %v", err)
	}
	tw := mustUpload(t, d, Twiddles())

	err = d.Launch(ForwardFFT16(in, in, tw), LaunchConfig)
	if !errors.Is(err, device.ErrLaneFault) {
		t.Fatalf("got %v, want ErrLaneFault", err)
	}
}

func TestLaunchConfigGeometry(t *testing.T) {
	t.Parallel()

	if LaunchConfig.Grid.Size() != 1 {
		t.Errorf("grid = %+v, want a single block", LaunchConfig.Grid)
	}
	if LaunchConfig.Block.Size() != Lanes || Lanes != 4 {
		t.Errorf("block = %+v, want %d lanes", LaunchConfig.Block, Lanes)
	}
	if LaunchConfig.SharedFloats != Size {
		t.Errorf("shared = %d, want %d", LaunchConfig.SharedFloats, Size)
	}
}
