package gpufft

import (
	"math"
	"math/cmplx"
	"math/rand"
	"testing"

	"github.com/cwbudde/algo-gpufft/device/host"
)

// Shared test helper functions used across multiple test files

const relTol = 1e-5

func randomComplex64(n int, seed int64) []complex64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]complex64, n)
	for i := range out {
		out[i] = complex(rng.Float32()*2-1, rng.Float32()*2-1)
	}
	return out
}

func assertSpectrumClose(t *testing.T, got []complex64, want []complex128, tol float64) {
	t.Helper()

	scale := 1.0
	for _, w := range want {
		scale = math.Max(scale, cmplx.Abs(w))
	}
	for i := range want {
		if diff := cmplx.Abs(complex128(got[i]) - want[i]); diff > tol*scale {
			t.Errorf("bin %d: got %v want %v (diff=%g)", i, got[i], want[i], diff)
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

func newTestRuntime(t *testing.T, opts ...host.Option) (*Runtime, *host.Device) {
	t.Helper()

	dev := host.New(opts...)
	t.Cleanup(func() { _ = dev.Close() })
	return NewRuntime(dev), dev
}

func mustPlan(t *testing.T, lengths []int, desc *Description) *Plan {
	t.Helper()

	p, err := CreatePlan(TransformComplexForward, PrecisionSingle, lengths, 1, desc)
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	t.Cleanup(func() { _ = p.Destroy() })
	return p
}

func mustBuffer(t *testing.T, rt *Runtime, samples []complex64) *Buffer {
	t.Helper()

	b, err := rt.CreateBuffer(ElementComplexSingle, len(samples))
	if err != nil {
		t.Fatalf("CreateBuffer: %v", err)
	}
	if err := b.Upload(samples); err != nil {
		t.Fatalf("Upload: %v", err)
	}
	return b
}
