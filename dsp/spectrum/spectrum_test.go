package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-vocoder/internal/testutil"
)

func TestPower_PeakAtSineFrequency(t *testing.T) {
	sr := 44100.0
	// 4096 samples pad to exactly 4096; bin width is sr/4096 ≈ 10.77 Hz.
	x := testutil.DeterministicSine(1000, sr, 1, 4096)

	power, fftSize, err := Power(x)
	if err != nil {
		t.Fatal(err)
	}

	if fftSize != 4096 {
		t.Fatalf("fftSize = %d, want 4096", fftSize)
	}
	if len(power) != fftSize/2+1 {
		t.Fatalf("bins = %d, want %d", len(power), fftSize/2+1)
	}

	peak := 0
	for i, p := range power {
		if p > power[peak] {
			peak = i
		}
		if p < 0 {
			t.Fatalf("bin %d: negative power %v", i, p)
		}
	}

	binHz := sr / float64(fftSize)
	if got := float64(peak) * binHz; math.Abs(got-1000) > binHz {
		t.Fatalf("peak at %g Hz, want within one bin of 1000", got)
	}
}

func TestMagnitude_MatchesSqrtPower(t *testing.T) {
	x := testutil.DeterministicNoise(9, 1, 1000)

	power, _, err := Power(x)
	if err != nil {
		t.Fatal(err)
	}
	mag, _, err := Magnitude(x)
	if err != nil {
		t.Fatal(err)
	}

	for i := range mag {
		if math.Abs(mag[i]*mag[i]-power[i]) > 1e-6*math.Max(1, power[i]) {
			t.Fatalf("bin %d: |X|^2 = %v, power = %v", i, mag[i]*mag[i], power[i])
		}
	}
}

func TestPower_ZeroPadsToPowerOfTwo(t *testing.T) {
	x := testutil.DeterministicNoise(2, 1, 1000)

	_, fftSize, err := Power(x)
	if err != nil {
		t.Fatal(err)
	}
	if fftSize != 1024 {
		t.Fatalf("fftSize = %d, want 1024", fftSize)
	}
}

func TestBandEnergy_Concentration(t *testing.T) {
	sr := 44100.0
	x := testutil.DeterministicSine(1000, sr, 1, 8192)

	inBand, err := BandEnergy(x, sr, 900, 1100)
	if err != nil {
		t.Fatal(err)
	}
	offBand, err := BandEnergy(x, sr, 3000, 4000)
	if err != nil {
		t.Fatal(err)
	}

	if inBand <= offBand*100 {
		t.Fatalf("in-band energy %g not well above off-band energy %g", inBand, offBand)
	}
}

func TestBandEnergy_Errors(t *testing.T) {
	x := []float64{1, 2, 3}

	if _, err := BandEnergy(x, 0, 100, 200); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
	if _, err := BandEnergy(x, 44100, -10, 200); err == nil {
		t.Fatal("expected error for negative low edge")
	}
	if _, err := BandEnergy(x, 44100, 500, 100); err == nil {
		t.Fatal("expected error for inverted band")
	}
	if _, err := BandEnergy(nil, 44100, 100, 200); err == nil {
		t.Fatal("expected error for empty signal")
	}
}

func TestTotalEnergy(t *testing.T) {
	if got := TotalEnergy([]float64{3, 4}); got != 25 {
		t.Fatalf("TotalEnergy = %v, want 25", got)
	}
	if got := TotalEnergy(nil); got != 0 {
		t.Fatalf("TotalEnergy = %v, want 0 for empty input", got)
	}
}

func TestEmptySignalErrors(t *testing.T) {
	if _, _, err := Power(nil); err == nil {
		t.Fatal("expected error for empty signal")
	}
	if _, _, err := Magnitude(nil); err == nil {
		t.Fatal("expected error for empty signal")
	}
}
