package bank

import (
	"errors"
	"fmt"
	"math"
)

// Default plan parameters for speech-range vocoding.
const (
	DefaultThirdOctaveLow  = 100.0
	DefaultThirdOctaveHigh = 5000.0

	DefaultShannonChannels = 24
	DefaultShannonLow      = 70.0
	DefaultShannonHigh     = 5000.0
)

// thirdOctaveRatio is 2^(1/6): half a 1/3 octave on each side of a center.
var thirdOctaveRatio = math.Pow(2, 1.0/6)

// ErrInvalidPlan reports planner parameters that are non-positive or inverted.
var ErrInvalidPlan = errors.New("bank: invalid plan parameters")

// Band is one frequency band of a filter bank plan, bounded by its lower
// and upper -3 dB edges in Hz.
type Band struct {
	Low  float64
	High float64
}

// Center returns the geometric center frequency of the band.
func (b Band) Center() float64 {
	return math.Sqrt(b.Low * b.High)
}

// Plan is an ordered list of frequency bands. Output channel i of a filter
// bank always corresponds to plan band i.
type Plan []Band

// ThirdOctave plans 1/3-octave-wide bands around octave-spaced centers.
//
// Centers start at lowHz and double until they exceed highHz, giving
// floor(log2(highHz/lowHz))+1 bands. Each band spans cf/2^(1/6) to
// cf*2^(1/6), so adjacent bands do not touch.
func ThirdOctave(lowHz, highHz float64) (Plan, error) {
	if err := validateRange(lowHz, highHz); err != nil {
		return nil, err
	}

	// The epsilon keeps a center that lands exactly on highHz in the plan
	// despite log2 rounding.
	n := int(math.Floor(math.Log2(highHz/lowHz)+1e-12)) + 1

	plan := make(Plan, 0, n)
	for k := 0; k < n; k++ {
		cf := lowHz * math.Pow(2, float64(k))
		plan = append(plan, Band{
			Low:  cf / thirdOctaveRatio,
			High: cf * thirdOctaveRatio,
		})
	}

	return plan, nil
}

// Shannon plans nc contiguous bands covering [lowHz, highHz] with
// log-spaced edges. Adjacent bands share an edge, and the first and last
// edges equal lowHz and highHz exactly.
func Shannon(nc int, lowHz, highHz float64) (Plan, error) {
	if nc <= 0 {
		return nil, fmt.Errorf("bank: channel count must be > 0: %d: %w", nc, ErrInvalidPlan)
	}

	if err := validateRange(lowHz, highHz); err != nil {
		return nil, err
	}

	edges := make([]float64, nc+1)
	logLow := math.Log(lowHz)
	step := (math.Log(highHz) - logLow) / float64(nc)

	edges[0] = lowHz
	edges[nc] = highHz
	for i := 1; i < nc; i++ {
		edges[i] = math.Exp(logLow + float64(i)*step)
	}

	plan := make(Plan, nc)
	for i := range plan {
		plan[i] = Band{Low: edges[i], High: edges[i+1]}
	}

	return plan, nil
}

// MaxFrequency returns the highest band edge in the plan, or 0 for an
// empty plan.
func (p Plan) MaxFrequency() float64 {
	maxHz := 0.0
	for _, b := range p {
		if b.High > maxHz {
			maxHz = b.High
		}
	}

	return maxHz
}

// Validate checks that every band is usable at the given sample rate:
// positive, non-inverted, and strictly below Nyquist.
func (p Plan) Validate(sampleRate float64) error {
	if len(p) == 0 {
		return fmt.Errorf("bank: empty plan: %w", ErrInvalidPlan)
	}

	nyquist := sampleRate / 2
	for i, b := range p {
		if b.Low <= 0 || b.Low >= b.High {
			return fmt.Errorf("bank: band %d has invalid edges [%g, %g]: %w",
				i, b.Low, b.High, ErrInvalidPlan)
		}

		if b.High >= nyquist {
			return fmt.Errorf("bank: band %d edge %g Hz not below Nyquist %g Hz: %w",
				i, b.High, nyquist, ErrInvalidPlan)
		}
	}

	return nil
}

func validateRange(lowHz, highHz float64) error {
	if lowHz <= 0 || math.IsNaN(lowHz) || math.IsInf(lowHz, 0) {
		return fmt.Errorf("bank: low frequency must be > 0: %g: %w", lowHz, ErrInvalidPlan)
	}

	if highHz <= lowHz || math.IsNaN(highHz) || math.IsInf(highHz, 0) {
		return fmt.Errorf("bank: high frequency must exceed low: low=%g high=%g: %w",
			lowHz, highHz, ErrInvalidPlan)
	}

	return nil
}
