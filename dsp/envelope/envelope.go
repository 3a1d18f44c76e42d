// Package envelope extracts amplitude envelopes from band-limited signals.
//
// The envelope is the full-wave rectified signal smoothed by a zero-phase
// Butterworth lowpass. With the default 30 Hz cutoff it tracks the slow
// amplitude modulation of a speech band while discarding the fine structure.
package envelope

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-vocoder/dsp/filter/biquad"
	"github.com/cwbudde/algo-vocoder/dsp/filter/design/pass"
	"github.com/cwbudde/algo-vocoder/dsp/filter/zerophase"
)

// Defaults for speech envelope extraction.
const (
	DefaultCutoffHz = 30.0
	DefaultOrder    = 2
)

type config struct {
	cutoffHz float64
	order    int
}

// Option configures an Extractor.
type Option func(*config)

// WithCutoff sets the lowpass cutoff frequency in Hz. Defaults to 30.
func WithCutoff(hz float64) Option {
	return func(cfg *config) {
		if hz > 0 {
			cfg.cutoffHz = hz
		}
	}
}

// WithOrder sets the Butterworth lowpass order. Defaults to 2.
func WithOrder(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.order = n
		}
	}
}

// Extractor computes amplitude envelopes with a fixed, reusable lowpass
// design.
type Extractor struct {
	sections []biquad.Coefficients
}

// NewExtractor designs the smoothing lowpass for the given sample rate.
func NewExtractor(sampleRate float64, opts ...Option) (*Extractor, error) {
	cfg := config{cutoffHz: DefaultCutoffHz, order: DefaultOrder}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	sections, err := pass.ButterworthLP(cfg.cutoffHz, cfg.order, sampleRate)
	if err != nil {
		return nil, fmt.Errorf("envelope: %w", err)
	}

	return &Extractor{sections: sections}, nil
}

// Extract returns the amplitude envelope of x: full-wave rectification
// followed by zero-phase lowpass filtering. The result has len(x) samples.
//
// Filter ringing can push values slightly below zero near the noise floor;
// they are passed through unclamped so callers can decide how to treat them.
func (e *Extractor) Extract(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("envelope: empty signal")
	}

	rectified := make([]float64, len(x))
	for i, v := range x {
		rectified[i] = math.Abs(v)
	}

	out, err := zerophase.Apply(e.sections, rectified)
	if err != nil {
		return nil, fmt.Errorf("envelope: %w", err)
	}

	return out, nil
}

// Extract is a one-shot convenience that designs the lowpass and extracts
// the envelope in a single call.
func Extract(x []float64, sampleRate float64, opts ...Option) ([]float64, error) {
	e, err := NewExtractor(sampleRate, opts...)
	if err != nil {
		return nil, err
	}

	return e.Extract(x)
}
