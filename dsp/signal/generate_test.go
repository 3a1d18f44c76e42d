package signal

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-vocoder/dsp/core"
	"github.com/cwbudde/algo-vocoder/internal/testutil"
)

func newTestGenerator(opts ...Option) *Generator {
	return NewGenerator([]core.ProcessorOption{core.WithSampleRate(44100)}, opts...)
}

func TestSine_KnownValues(t *testing.T) {
	g := newTestGenerator()

	// At 44100/4 = 11025 Hz a sine hits 0, 1, 0, -1 exactly (up to rounding).
	out, err := g.Sine(11025, 1, 8)
	if err != nil {
		t.Fatal(err)
	}

	want := []float64{0, 1, 0, -1, 0, 1, 0, -1}
	testutil.RequireSliceNearlyEqual(t, out, want, 1e-9)
}

func TestSine_Amplitude(t *testing.T) {
	g := newTestGenerator()

	out, err := g.Sine(440, 0.25, 44100)
	if err != nil {
		t.Fatal(err)
	}

	if peak := testutil.MaxAbs(out); math.Abs(peak-0.25) > 1e-3 {
		t.Fatalf("peak = %v, want ~0.25", peak)
	}
}

func TestSine_Errors(t *testing.T) {
	g := newTestGenerator()
	if _, err := g.Sine(440, 1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}

	// A zero-value generator has no usable sample rate.
	var bad Generator
	if _, err := bad.Sine(440, 1, 10); err == nil {
		t.Fatal("expected error for invalid sample rate")
	}
}

func TestWhiteNoise_DeterministicBySeed(t *testing.T) {
	a, err := newTestGenerator(WithSeed(7)).WhiteNoise(1, 1000)
	if err != nil {
		t.Fatal(err)
	}
	b, err := newTestGenerator(WithSeed(7)).WhiteNoise(1, 1000)
	if err != nil {
		t.Fatal(err)
	}
	c, err := newTestGenerator(WithSeed(8)).WhiteNoise(1, 1000)
	if err != nil {
		t.Fatal(err)
	}

	testutil.RequireSliceNearlyEqual(t, a, b, 0)

	diff, err := testutil.MaxAbsDiff(a, c)
	if err != nil {
		t.Fatal(err)
	}
	if diff == 0 {
		t.Fatal("different seeds produced identical noise")
	}
}

func TestWhiteNoise_Bounded(t *testing.T) {
	out, err := newTestGenerator().WhiteNoise(0.5, 10000)
	if err != nil {
		t.Fatal(err)
	}

	if peak := testutil.MaxAbs(out); peak > 0.5 {
		t.Fatalf("peak = %v, want <= 0.5", peak)
	}
}

func TestGaussianNoise_Moments(t *testing.T) {
	const n = 100000
	out, err := newTestGenerator(WithSeed(3)).GaussianNoise(1, n)
	if err != nil {
		t.Fatal(err)
	}

	mean := 0.0
	for _, v := range out {
		mean += v
	}
	mean /= n

	variance := 0.0
	for _, v := range out {
		d := v - mean
		variance += d * d
	}
	variance /= n

	if math.Abs(mean) > 0.02 {
		t.Fatalf("mean = %v, want ~0", mean)
	}
	if math.Abs(variance-1) > 0.05 {
		t.Fatalf("variance = %v, want ~1", variance)
	}
}

func TestGaussianNoise_StddevScales(t *testing.T) {
	unit, err := newTestGenerator(WithSeed(3)).GaussianNoise(1, 100)
	if err != nil {
		t.Fatal(err)
	}
	scaled, err := newTestGenerator(WithSeed(3)).GaussianNoise(2, 100)
	if err != nil {
		t.Fatal(err)
	}

	for i := range unit {
		if math.Abs(scaled[i]-2*unit[i]) > 1e-12 {
			t.Fatalf("index %d: %v != 2 * %v", i, scaled[i], unit[i])
		}
	}
}

func TestNoise_Errors(t *testing.T) {
	g := newTestGenerator()

	if _, err := g.WhiteNoise(-1, 10); err == nil {
		t.Fatal("expected error for negative amplitude")
	}
	if _, err := g.WhiteNoise(1, 0); err == nil {
		t.Fatal("expected error for zero samples")
	}
	if _, err := g.GaussianNoise(-1, 10); err == nil {
		t.Fatal("expected error for negative stddev")
	}
	if _, err := g.GaussianNoise(1, -5); err == nil {
		t.Fatal("expected error for negative samples")
	}
}

func TestNormalize(t *testing.T) {
	out, err := Normalize([]float64{0.1, -0.4, 0.2}, 1)
	if err != nil {
		t.Fatal(err)
	}
	testutil.RequireSliceNearlyEqual(t, out, []float64{0.25, -1, 0.5}, 1e-12)

	// Silence stays silent instead of dividing by zero.
	out, err = Normalize(make([]float64, 5), 1)
	if err != nil {
		t.Fatal(err)
	}
	if testutil.MaxAbs(out) != 0 {
		t.Fatal("normalized silence must stay zero")
	}

	if _, err := Normalize(nil, 1); err == nil {
		t.Fatal("expected error for empty input")
	}
	if _, err := Normalize([]float64{1}, -1); err == nil {
		t.Fatal("expected error for negative target peak")
	}
}
