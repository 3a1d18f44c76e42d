package bank

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vocoder/dsp/filter/biquad"
	"github.com/cwbudde/algo-vocoder/dsp/filter/design/pass"
	"github.com/cwbudde/algo-vocoder/dsp/filter/zerophase"
)

// DefaultOrder is the bandpass order used per band. The bandpass transform
// doubles the 4th-order Butterworth prototype, yielding 4 sections.
const DefaultOrder = 8

type bankConfig struct {
	order int
}

// Option configures Apply or Design.
type Option func(*bankConfig)

// WithOrder sets the Butterworth bandpass order per band.
// Must be a positive even integer; defaults to 8.
func WithOrder(n int) Option {
	return func(cfg *bankConfig) {
		if n > 0 && n%2 == 0 {
			cfg.order = n
		}
	}
}

// Design computes the bandpass section cascade for every band of the plan.
// Results are indexed by band. Callers that filter many signals through the
// same plan can reuse the returned coefficients across Apply-equivalent
// calls; designs are pure values.
func Design(plan Plan, sampleRate float64, opts ...Option) ([][]biquad.Coefficients, error) {
	cfg := bankConfig{order: DefaultOrder}
	for _, o := range opts {
		if o != nil {
			o(&cfg)
		}
	}

	if len(plan) == 0 {
		return nil, fmt.Errorf("bank: empty plan: %w", ErrInvalidPlan)
	}

	specs := make([][]biquad.Coefficients, len(plan))
	for i, b := range plan {
		spec, err := pass.ButterworthBP(b.Low, b.High, cfg.order, sampleRate)
		if err != nil {
			return nil, fmt.Errorf("bank: band %d [%g, %g] Hz: %w", i, b.Low, b.High, err)
		}

		specs[i] = spec
	}

	return specs, nil
}

// Apply filters x through a bandpass per plan band with zero-phase
// filtering, returning one channel per band. Channel i is x filtered by
// band i; every channel has len(x) samples aligned with the input.
//
// Bands are independent, so channels are filtered concurrently. All designs
// are validated before any filtering starts.
func Apply(x []float64, plan Plan, sampleRate float64, opts ...Option) ([][]float64, error) {
	specs, err := Design(plan, sampleRate, opts...)
	if err != nil {
		return nil, err
	}

	return ApplyDesigned(x, specs)
}

// ApplyDesigned filters x through previously designed band cascades,
// one goroutine per band, preserving band order in the output.
func ApplyDesigned(x []float64, specs [][]biquad.Coefficients) ([][]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("bank: empty signal")
	}

	channels := make([][]float64, len(specs))
	errs := make([]error, len(specs))

	var wg sync.WaitGroup
	for i := range specs {
		wg.Add(1)

		go func() {
			defer wg.Done()
			channels[i], errs[i] = zerophase.Apply(specs[i], x)
		}()
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("bank: band %d: %w", i, err)
		}
	}

	return channels, nil
}
