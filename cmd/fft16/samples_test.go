package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/goccy/go-json"

	gpufft "github.com/cwbudde/algo-gpufft"
)

func TestReadSamples(t *testing.T) {
	var sb strings.Builder
	sb.WriteString(`{"samples":[`)
	for i := range gpufft.FFTLength {
		if i > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(`[1.5,-0.25]`)
	}
	sb.WriteString(`]}`)

	got, err := readSamples(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("readSamples: %v", err)
	}
	for i, v := range got {
		if v != complex(1.5, -0.25) {
			t.Fatalf("sample %d = %v", i, v)
		}
	}
}

func TestReadSamplesRejectsWrongCount(t *testing.T) {
	if _, err := readSamples(strings.NewReader(`{"samples":[[1,0],[0,1]]}`)); err == nil {
		t.Fatal("expected error for 2 samples")
	}
	if _, err := readSamples(strings.NewReader(`{"samples":`)); err == nil {
		t.Fatal("expected error for truncated JSON")
	}
}

func TestRandomSamplesSeeded(t *testing.T) {
	a, b := randomSamples(9), randomSamples(9)
	if len(a) != gpufft.FFTLength {
		t.Fatalf("len = %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("sample %d differs for the same seed", i)
		}
	}
}

func TestWriteResult(t *testing.T) {
	res := runResult{
		Plan:      "p",
		Placement: gpufft.PlacementInPlace.String(),
		Spectrum:  toPairs([]complex64{1 + 2i}),
		Trace:     &traceJSON{Grid: [3]int{1, 0, 0}, SharedBytes: 64},
	}

	var buf bytes.Buffer
	if err := writeResult(&buf, res); err != nil {
		t.Fatalf("writeResult: %v", err)
	}

	var back runResult
	if err := json.Unmarshal(buf.Bytes(), &back); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if back.Spectrum[0] != [2]float32{1, 2} || back.Trace.SharedBytes != 64 {
		t.Fatalf("decoded %+v", back)
	}
	if strings.Contains(buf.String(), "magnitude") {
		t.Error("empty magnitude should be omitted")
	}
}
