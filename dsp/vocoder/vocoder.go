package vocoder

import (
	"fmt"
	"math"
	"math/rand"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"github.com/cwbudde/algo-vocoder/dsp/envelope"
	"github.com/cwbudde/algo-vocoder/dsp/filter/bank"
	"github.com/cwbudde/algo-vocoder/dsp/filter/biquad"
	"github.com/cwbudde/algo-vocoder/dsp/filter/zerophase"
)

// defaultNoiseSeed makes vocoding reproducible out of the box; pass
// WithNoiseSource to randomize or to share a source across vocoders.
const defaultNoiseSeed = 1

type vocoderConfig struct {
	bandOrder      int
	envelopeCutoff float64
	envelopeOrder  int
	noise          rand.Source
}

func defaultVocoderConfig() vocoderConfig {
	return vocoderConfig{
		bandOrder:      bank.DefaultOrder,
		envelopeCutoff: envelope.DefaultCutoffHz,
		envelopeOrder:  envelope.DefaultOrder,
	}
}

// Option configures a Vocoder at construction time.
type Option func(*vocoderConfig) error

// WithBandOrder sets the Butterworth bandpass order per band.
// Must be even and positive; defaults to 8.
func WithBandOrder(n int) Option {
	return func(cfg *vocoderConfig) error {
		if n <= 0 || n%2 != 0 {
			return fmt.Errorf("vocoder: band order must be even and > 0: %d", n)
		}

		cfg.bandOrder = n

		return nil
	}
}

// WithEnvelopeCutoff sets the envelope lowpass cutoff in Hz. Defaults to 30.
func WithEnvelopeCutoff(hz float64) Option {
	return func(cfg *vocoderConfig) error {
		if hz <= 0 || math.IsNaN(hz) || math.IsInf(hz, 0) {
			return fmt.Errorf("vocoder: envelope cutoff must be > 0: %g", hz)
		}

		cfg.envelopeCutoff = hz

		return nil
	}
}

// WithEnvelopeOrder sets the envelope lowpass order. Defaults to 2.
func WithEnvelopeOrder(n int) Option {
	return func(cfg *vocoderConfig) error {
		if n <= 0 {
			return fmt.Errorf("vocoder: envelope order must be > 0: %d", n)
		}

		cfg.envelopeOrder = n

		return nil
	}
}

// WithNoiseSource sets the random source for the noise carrier, making the
// stochastic step explicit and reproducible under the caller's control.
func WithNoiseSource(src rand.Source) Option {
	return func(cfg *vocoderConfig) error {
		if src == nil {
			return fmt.Errorf("vocoder: noise source must not be nil")
		}

		cfg.noise = src

		return nil
	}
}

// Vocoder replaces a signal's spectral fine structure with envelope-modulated
// noise, band by band. All filters are designed once at construction and
// reused across Process calls.
type Vocoder struct {
	plan       bank.Plan
	sampleRate float64

	bandSpecs [][]biquad.Coefficients
	extractor *envelope.Extractor
	rng       *rand.Rand
}

// New creates a Vocoder for the given band plan and sample rate.
// Every band must lie strictly below the Nyquist frequency.
func New(plan bank.Plan, sampleRate float64, opts ...Option) (*Vocoder, error) {
	if sampleRate <= 0 || math.IsNaN(sampleRate) || math.IsInf(sampleRate, 0) {
		return nil, fmt.Errorf("vocoder: sample rate must be > 0: %f", sampleRate)
	}

	cfg := defaultVocoderConfig()

	for _, opt := range opts {
		if opt == nil {
			continue
		}

		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	specs, err := bank.Design(plan, sampleRate, bank.WithOrder(cfg.bandOrder))
	if err != nil {
		return nil, fmt.Errorf("vocoder: %w", err)
	}

	extractor, err := envelope.NewExtractor(sampleRate,
		envelope.WithCutoff(cfg.envelopeCutoff),
		envelope.WithOrder(cfg.envelopeOrder))
	if err != nil {
		return nil, fmt.Errorf("vocoder: %w", err)
	}

	src := cfg.noise
	if src == nil {
		src = rand.NewSource(defaultNoiseSeed)
	}

	return &Vocoder{
		plan:       plan,
		sampleRate: sampleRate,
		bandSpecs:  specs,
		extractor:  extractor,
		rng:        rand.New(src),
	}, nil
}

// Plan returns the band plan the vocoder was built for.
func (v *Vocoder) Plan() bank.Plan { return v.plan }

// SampleRate returns the sample rate in Hz.
func (v *Vocoder) SampleRate() float64 { return v.sampleRate }

// NumBands returns the number of frequency bands.
func (v *Vocoder) NumBands() int { return len(v.plan) }

// Process vocodes x and returns a new signal of the same length.
//
// The noise carrier is drawn once from the vocoder's random source before
// any band work and shared read-only across bands, so results are
// deterministic for a given source state regardless of scheduling. Bands
// are then processed concurrently: band i filters both input and noise,
// extracts the input band's envelope, and modulates the noise band with it.
// The output is the sum over bands.
func (v *Vocoder) Process(x []float64) ([]float64, error) {
	if len(x) == 0 {
		return nil, fmt.Errorf("vocoder: empty signal")
	}

	noise := make([]float64, len(x))
	for i := range noise {
		noise[i] = v.rng.NormFloat64()
	}

	channels := make([][]float64, len(v.bandSpecs))
	errs := make([]error, len(v.bandSpecs))

	var wg sync.WaitGroup
	for i := range v.bandSpecs {
		wg.Add(1)

		go func() {
			defer wg.Done()
			channels[i], errs[i] = v.processBand(v.bandSpecs[i], x, noise)
		}()
	}

	wg.Wait()

	for i, err := range errs {
		if err != nil {
			return nil, fmt.Errorf("vocoder: band %d: %w", i, err)
		}
	}

	out := make([]float64, len(x))
	for _, ch := range channels {
		for i, s := range ch {
			out[i] += s
		}
	}

	return out, nil
}

// processBand computes one vocoded channel: the band-filtered noise scaled
// sample-by-sample by the band-filtered input's amplitude envelope.
func (v *Vocoder) processBand(spec []biquad.Coefficients, x, noise []float64) ([]float64, error) {
	bandX, err := zerophase.Apply(spec, x)
	if err != nil {
		return nil, err
	}

	bandNoise, err := zerophase.Apply(spec, noise)
	if err != nil {
		return nil, err
	}

	env, err := v.extractor.Extract(bandX)
	if err != nil {
		return nil, err
	}

	vecmath.MulBlockInPlace(bandNoise, env)

	return bandNoise, nil
}

// Vocode is a one-shot convenience: it builds a Vocoder with default
// settings (order-8 bands, 30 Hz / order-2 envelopes, seeded noise) and
// processes x.
func Vocode(x []float64, plan bank.Plan, sampleRate float64) ([]float64, error) {
	v, err := New(plan, sampleRate)
	if err != nil {
		return nil, err
	}

	return v.Process(x)
}
