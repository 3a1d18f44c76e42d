package pass

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-vocoder/dsp/filter/biquad"
)

// ErrInvalidBand reports filter design parameters that are non-positive,
// inverted, or not strictly below the Nyquist frequency.
var ErrInvalidBand = errors.New("pass: invalid band")

// validateCutoff checks a single cutoff against the Nyquist limit.
func validateCutoff(freq, sampleRate float64) error {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return fmt.Errorf("pass: sample rate must be > 0: %g: %w", sampleRate, ErrInvalidBand)
	}

	if freq <= 0 || math.IsNaN(freq) || math.IsInf(freq, 0) {
		return fmt.Errorf("pass: cutoff must be > 0: %g: %w", freq, ErrInvalidBand)
	}

	if freq >= sampleRate/2 {
		return fmt.Errorf("pass: cutoff %g Hz not below Nyquist %g Hz: %w",
			freq, sampleRate/2, ErrInvalidBand)
	}

	return nil
}

// validateBand checks bandpass edges against each other and the Nyquist limit.
func validateBand(lowHz, highHz, sampleRate float64) error {
	if err := validateCutoff(lowHz, sampleRate); err != nil {
		return err
	}

	if err := validateCutoff(highHz, sampleRate); err != nil {
		return err
	}

	if lowHz >= highHz {
		return fmt.Errorf("pass: band edges inverted: low %g Hz >= high %g Hz: %w",
			lowHz, highHz, ErrInvalidBand)
	}

	return nil
}

// butterworthQ returns the quality factor for a Butterworth filter section.
// index ranges from 0 to (order/2 - 1) for the biquad sections.
func butterworthQ(order, index int) float64 {
	theta := math.Pi * float64(2*index+1) / (2 * float64(order))

	s := math.Sin(theta)
	if s == 0 {
		return 1 / math.Sqrt2 // default Q
	}

	return 1 / (2 * s)
}

// lowpassSection designs a single lowpass biquad (RBJ) at freq with the
// given quality factor.
func lowpassSection(freq, q, sampleRate float64) biquad.Coefficients {
	w0 := 2 * math.Pi * freq / sampleRate
	cw := math.Cos(w0)
	sw := math.Sin(w0)
	alpha := sw / (2 * q)

	a0 := 1 + alpha
	inv := 1.0 / a0

	return biquad.Coefficients{
		B0: ((1 - cw) * 0.5) * inv,
		B1: (1 - cw) * inv,
		B2: ((1 - cw) * 0.5) * inv,
		A1: (-2 * cw) * inv,
		A2: (1 - alpha) * inv,
	}
}

// firstOrderLowpass designs a first-order lowpass section (B2=A2=0).
// Used for odd-order cascades.
func firstOrderLowpass(freq, sampleRate float64) biquad.Coefficients {
	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		B2: 0,
		A1: (k - 1) * norm,
		A2: 0,
	}
}
