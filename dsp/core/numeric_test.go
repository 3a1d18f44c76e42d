package core

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	cases := []struct {
		value, min, max, want float64
	}{
		{5, 0, 10, 5},
		{-1, 0, 10, 0},
		{11, 0, 10, 10},
		{5, 10, 0, 5}, // swapped bounds
		{0, 0, 0, 0},
	}

	for _, tc := range cases {
		if got := Clamp(tc.value, tc.min, tc.max); got != tc.want {
			t.Fatalf("Clamp(%g, %g, %g) = %g, want %g", tc.value, tc.min, tc.max, got, tc.want)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	cases := []struct {
		a, b, eps float64
		want      bool
	}{
		{1, 1, 1e-9, true},
		{1, 1 + 1e-10, 1e-9, true},
		{1, 1.1, 1e-9, false},
		{0, 0, 0, true},         // zero eps falls back to the default
		{1e12, 1e12 + 1, 1e-9, true}, // relative comparison for large values
		{0, 1e-13, 1e-12, true},
	}

	for _, tc := range cases {
		if got := NearlyEqual(tc.a, tc.b, tc.eps); got != tc.want {
			t.Fatalf("NearlyEqual(%g, %g, %g) = %v, want %v", tc.a, tc.b, tc.eps, got, tc.want)
		}
	}
}

func TestDBConversionRoundTrip(t *testing.T) {
	for _, amp := range []float64{0.001, 0.5, 1, 2, 100} {
		db := LinearToDB(amp)
		if got := DBToLinear(db); !NearlyEqual(got, amp, 1e-12) {
			t.Fatalf("round trip %g -> %g dB -> %g", amp, db, got)
		}
	}

	if got := LinearToDB(1); got != 0 {
		t.Fatalf("LinearToDB(1) = %g, want 0", got)
	}
	if got := LinearToDB(0); !math.IsInf(got, -1) {
		t.Fatalf("LinearToDB(0) = %g, want -Inf", got)
	}
	if got := DBToLinear(20); !NearlyEqual(got, 10, 1e-12) {
		t.Fatalf("DBToLinear(20) = %g, want 10", got)
	}
}

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions()
	if cfg.SampleRate != 44100 {
		t.Fatalf("default sample rate = %g, want 44100", cfg.SampleRate)
	}

	cfg = ApplyProcessorOptions(WithSampleRate(48000))
	if cfg.SampleRate != 48000 {
		t.Fatalf("sample rate = %g, want 48000", cfg.SampleRate)
	}

	// Invalid rates are ignored rather than breaking the config.
	cfg = ApplyProcessorOptions(WithSampleRate(-1), nil)
	if cfg.SampleRate != 44100 {
		t.Fatalf("sample rate = %g, want 44100 after invalid option", cfg.SampleRate)
	}
}
