// Package spectrum provides FFT-based magnitude and power analysis for
// real-valued signals, plus band-energy measurement for verifying how a
// filter bank distributes energy across frequency bands.
package spectrum

import (
	"fmt"
	"math"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"
)

// Power computes the one-sided power spectrum |X[k]|^2 of x.
//
// The signal is zero-padded to the next power of two; the returned fftSize
// lets callers convert bin indices to frequencies (binHz = sampleRate/fftSize).
// The slice holds bins 0..fftSize/2 inclusive.
func Power(x []float64) ([]float64, int, error) {
	bins, fftSize, err := forward(x)
	if err != nil {
		return nil, 0, err
	}

	re, im := split(bins)
	out := make([]float64, len(bins))
	vecmath.Power(out, re, im)

	return out, fftSize, nil
}

// Magnitude computes the one-sided magnitude spectrum |X[k]| of x.
func Magnitude(x []float64) ([]float64, int, error) {
	bins, fftSize, err := forward(x)
	if err != nil {
		return nil, 0, err
	}

	re, im := split(bins)
	out := make([]float64, len(bins))
	vecmath.Magnitude(out, re, im)

	return out, fftSize, nil
}

// BandEnergy sums the power spectrum of x over [lowHz, highHz].
func BandEnergy(x []float64, sampleRate, lowHz, highHz float64) (float64, error) {
	if sampleRate <= 0 {
		return 0, fmt.Errorf("spectrum: sample rate must be > 0: %g", sampleRate)
	}

	if lowHz < 0 || highHz < lowHz {
		return 0, fmt.Errorf("spectrum: invalid band [%g, %g]", lowHz, highHz)
	}

	power, fftSize, err := Power(x)
	if err != nil {
		return 0, err
	}

	binHz := sampleRate / float64(fftSize)
	lo := int(math.Ceil(lowHz / binHz))
	hi := int(math.Floor(highHz / binHz))

	if lo < 0 {
		lo = 0
	}

	if hi > len(power)-1 {
		hi = len(power) - 1
	}

	sum := 0.0
	for i := lo; i <= hi; i++ {
		sum += power[i]
	}

	return sum, nil
}

// TotalEnergy returns the time-domain energy sum(x[i]^2).
func TotalEnergy(x []float64) float64 {
	sum := 0.0
	for _, v := range x {
		sum += v * v
	}

	return sum
}

// forward runs a zero-padded forward FFT and returns the non-negative
// frequency bins [0..fftSize/2].
func forward(x []float64) ([]complex128, int, error) {
	if len(x) == 0 {
		return nil, 0, fmt.Errorf("spectrum: empty signal")
	}

	fftSize := nextPowerOf2(len(x))

	plan, err := algofft.NewPlan64(fftSize)
	if err != nil {
		return nil, 0, fmt.Errorf("spectrum: failed to create FFT plan: %w", err)
	}

	in := make([]complex128, fftSize)
	for i, v := range x {
		in[i] = complex(v, 0)
	}

	out := make([]complex128, fftSize)
	if err := plan.Forward(out, in); err != nil {
		return nil, 0, fmt.Errorf("spectrum: forward FFT: %w", err)
	}

	return out[:fftSize/2+1], fftSize, nil
}

func split(bins []complex128) (re, im []float64) {
	re = make([]float64, len(bins))
	im = make([]float64, len(bins))

	for i, c := range bins {
		re[i] = real(c)
		im[i] = imag(c)
	}

	return re, im
}

func nextPowerOf2(n int) int {
	if n <= 1 {
		return 1
	}

	p := 1
	for p < n {
		p <<= 1
	}

	return p
}
