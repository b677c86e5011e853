package main

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/goccy/go-json"

	gpufft "github.com/cwbudde/algo-gpufft"
)

// sampleFile is the on-disk input format: {"samples":[[re,im],...]}.
type sampleFile struct {
	Samples [][2]float32 `json:"samples"`
}

type traceJSON struct {
	Grid         [3]int `json:"grid"`
	Block        [3]int `json:"block"`
	SharedBytes  int    `json:"shared_bytes"`
	TwiddleBytes int    `json:"twiddle_bytes"`
	InPlace      bool   `json:"in_place"`
}

type runResult struct {
	Plan      string       `json:"plan"`
	Placement string       `json:"placement"`
	Input     [][2]float32 `json:"input"`
	Spectrum  [][2]float32 `json:"spectrum"`
	Magnitude []float64    `json:"magnitude,omitempty"`
	Trace     *traceJSON   `json:"trace,omitempty"`
}

func readSamples(r io.Reader) ([]complex64, error) {
	var f sampleFile
	if err := json.NewDecoder(r).Decode(&f); err != nil {
		return nil, fmt.Errorf("decode samples: %w", err)
	}
	if len(f.Samples) != gpufft.FFTLength {
		return nil, fmt.Errorf("got %d samples, want %d", len(f.Samples), gpufft.FFTLength)
	}
	return fromPairs(f.Samples), nil
}

func randomSamples(seed int64) []complex64 {
	rng := rand.New(rand.NewSource(seed))
	out := make([]complex64, gpufft.FFTLength)
	for i := range out {
		out[i] = complex(rng.Float32()*2-1, rng.Float32()*2-1)
	}
	return out
}

func writeResult(w io.Writer, res runResult) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(res)
}

func toPairs(v []complex64) [][2]float32 {
	out := make([][2]float32, len(v))
	for i, c := range v {
		out[i] = [2]float32{real(c), imag(c)}
	}
	return out
}

func fromPairs(p [][2]float32) []complex64 {
	out := make([]complex64, len(p))
	for i, v := range p {
		out[i] = complex(v[0], v[1])
	}
	return out
}

func newTraceJSON(t gpufft.LaunchTrace) *traceJSON {
	return &traceJSON{
		Grid:         [3]int{t.Grid.X, t.Grid.Y, t.Grid.Z},
		Block:        [3]int{t.Block.X, t.Block.Y, t.Block.Z},
		SharedBytes:  t.SharedBytes,
		TwiddleBytes: t.TwiddleBytes,
		InPlace:      t.InPlace,
	}
}
