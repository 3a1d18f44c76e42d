// Package zerophase applies second-order-section cascades forward and
// backward over a signal so that the net phase response is zero.
//
// The magnitude response is applied twice (squared), and the operation is
// non-causal: the whole signal must be in memory. Boundary transients are
// suppressed by extending the signal with an odd reflection at both ends
// and seeding the cascade with its constant-input steady state.
package zerophase

import (
	"errors"
	"fmt"

	"github.com/cwbudde/algo-vocoder/dsp/filter/biquad"
)

// ErrUnstableFilter reports a section cascade with poles on or outside the
// unit circle. The Butterworth designs in this module never produce one;
// the check guards against caller-supplied coefficients.
var ErrUnstableFilter = errors.New("zerophase: unstable filter")

// padFactor sets the reflection length per second-order section. Six
// samples per section give the doubled-order transient room to decay.
const padFactor = 6

// Apply filters x forward and backward through the cascade and returns a new
// slice of the same length. x is not modified.
func Apply(sections []biquad.Coefficients, x []float64) ([]float64, error) {
	if len(sections) == 0 {
		return nil, fmt.Errorf("zerophase: empty section cascade")
	}

	if len(x) == 0 {
		return nil, fmt.Errorf("zerophase: empty signal")
	}

	for i := range sections {
		if !sections[i].Stable() {
			return nil, fmt.Errorf("zerophase: section %d has poles on or outside the unit circle: %w",
				i, ErrUnstableFilter)
		}
	}

	pad := padFactor * len(sections)
	if pad > len(x)-1 {
		pad = len(x) - 1
	}

	buf := extendOdd(x, pad)

	runPass(sections, buf)
	reverse(buf)
	runPass(sections, buf)
	reverse(buf)

	out := make([]float64, len(x))
	copy(out, buf[pad:pad+len(x)])

	return out, nil
}

// runPass filters buf in-place once, starting from the steady state the
// cascade would have reached for a constant input equal to buf[0].
func runPass(sections []biquad.Coefficients, buf []float64) {
	chain := biquad.NewChain(sections)
	chain.SetState(biquad.StepStates(sections, buf[0]))
	chain.ProcessBlock(buf)
}

// extendOdd returns x with pad samples of odd (point-symmetric) reflection
// prepended and appended: the extension continues the signal's slope through
// the endpoint instead of introducing a step.
func extendOdd(x []float64, pad int) []float64 {
	n := len(x)
	ext := make([]float64, n+2*pad)

	for i := 0; i < pad; i++ {
		ext[i] = 2*x[0] - x[pad-i]
	}

	copy(ext[pad:], x)

	for i := 0; i < pad; i++ {
		ext[pad+n+i] = 2*x[n-1] - x[n-2-i]
	}

	return ext
}

func reverse(buf []float64) {
	for i, j := 0, len(buf)-1; i < j; i, j = i+1, j-1 {
		buf[i], buf[j] = buf[j], buf[i]
	}
}
