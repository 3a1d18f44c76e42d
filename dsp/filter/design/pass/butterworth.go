package pass

import (
	"fmt"

	"github.com/cwbudde/algo-vocoder/dsp/filter/biquad"
)

// ButterworthLP designs a lowpass Butterworth cascade with the given cutoff
// frequency (Hz) and order.
//
// The cascade contains (order+1)/2 sections; for odd orders, the final
// section is first-order (B2=A2=0).
func ButterworthLP(freq float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if order <= 0 {
		return nil, fmt.Errorf("pass: lowpass order must be > 0: %d: %w", order, ErrInvalidBand)
	}

	if err := validateCutoff(freq, sampleRate); err != nil {
		return nil, err
	}

	sections := make([]biquad.Coefficients, 0, (order+1)/2)

	n2 := order / 2
	for i := n2 - 1; i >= 0; i-- {
		q := butterworthQ(order, i)
		sections = append(sections, lowpassSection(freq, q, sampleRate))
	}
	if order%2 != 0 {
		sections = append(sections, firstOrderLowpass(freq, sampleRate))
	}

	return sections, nil
}
