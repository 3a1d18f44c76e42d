package pass

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-vocoder/dsp/filter/biquad"
)

// ButterworthBP designs a bandpass Butterworth cascade with edges lowHz and
// highHz (the -3 dB points) and the given total order.
//
// order is the final bandpass order and must be even: the lowpass-to-bandpass
// transform doubles the prototype order, so an order-8 bandpass uses a
// 4th-order lowpass prototype and yields 4 second-order sections. The cascade
// is normalized to unity gain at the geometric center of the band.
//
// The design runs the classic analog route: Butterworth prototype poles,
// lowpass-to-bandpass transform with pre-warped edge frequencies, then the
// bilinear transform into the z-plane. Poles are paired with their conjugates
// into second-order sections; the transform's zeros land at z = +1 and z = -1,
// one pair per section.
func ButterworthBP(lowHz, highHz float64, order int, sampleRate float64) ([]biquad.Coefficients, error) {
	if err := validateBand(lowHz, highHz, sampleRate); err != nil {
		return nil, err
	}

	if order < 2 || order%2 != 0 {
		return nil, fmt.Errorf("pass: bandpass order must be even and >= 2: %d: %w",
			order, ErrInvalidBand)
	}

	m := order / 2 // lowpass prototype order

	// Pre-warp edges so the bilinear transform maps them back exactly.
	w1 := math.Tan(math.Pi * lowHz / sampleRate)
	w2 := math.Tan(math.Pi * highHz / sampleRate)
	bw := w2 - w1
	w0sq := complex(w1*w2, 0)

	sections := make([]biquad.Coefficients, 0, m)

	// Upper-half-plane prototype poles. Each one expands into two analog
	// bandpass poles whose conjugates come from the mirrored prototype pole,
	// so every expanded pole closes one section.
	for k := 1; k <= m/2; k++ {
		angle := math.Pi * float64(2*k+m-1) / float64(2*m)
		p := cmplx.Exp(complex(0, angle))

		s1, s2 := bandpassPolePair(p, bw, w0sq)
		sections = append(sections,
			sectionFromConjugatePole(bilinearZ(s1)),
			sectionFromConjugatePole(bilinearZ(s2)),
		)
	}

	// Odd prototype orders have a real pole at s = -1; its two bandpass poles
	// are conjugates (or a real pair) and form a single section.
	if m%2 != 0 {
		s1, s2 := bandpassPolePair(complex(-1, 0), bw, w0sq)
		sections = append(sections, sectionFromPolePair(bilinearZ(s1), bilinearZ(s2)))
	}

	if err := normalizeBandpassGain(sections, w1, w2, sampleRate); err != nil {
		return nil, err
	}

	return sections, nil
}

// bandpassPolePair applies the lowpass-to-bandpass transform to one
// prototype pole: the roots of s^2 - bw*p*s + w0^2 = 0.
func bandpassPolePair(p complex128, bw float64, w0sq complex128) (complex128, complex128) {
	half := complex(bw/2, 0) * p
	d := cmplx.Sqrt(half*half - w0sq)

	return half + d, half - d
}

// bilinearZ maps an analog pole to the z-plane: z = (1 + s) / (1 - s).
// Valid for pre-warped frequencies w = tan(pi*f/fs).
func bilinearZ(s complex128) complex128 {
	return (1 + s) / (1 - s)
}

// sectionFromConjugatePole builds a section whose poles are z and conj(z),
// with zeros at +1 and -1 (numerator 1 - z^-2) before gain scaling.
func sectionFromConjugatePole(z complex128) biquad.Coefficients {
	return biquad.Coefficients{
		B0: 1,
		B2: -1,
		A1: -2 * real(z),
		A2: real(z)*real(z) + imag(z)*imag(z),
	}
}

// sectionFromPolePair builds a section from two poles that already form a
// real-coefficient pair (conjugates, or two real poles).
func sectionFromPolePair(z1, z2 complex128) biquad.Coefficients {
	return biquad.Coefficients{
		B0: 1,
		B2: -1,
		A1: -real(z1 + z2),
		A2: real(z1 * z2),
	}
}

// normalizeBandpassGain scales the sections so the cascade has unity gain at
// the band's warped geometric center, distributing the correction evenly to
// keep intermediate stage gains balanced.
func normalizeBandpassGain(sections []biquad.Coefficients, w1, w2, sampleRate float64) error {
	centerHz := math.Atan(math.Sqrt(w1*w2)) * sampleRate / math.Pi

	total := 1.0
	for i := range sections {
		total *= math.Sqrt(sections[i].MagnitudeSquared(centerHz, sampleRate))
	}

	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		return fmt.Errorf("pass: degenerate bandpass gain %g at %g Hz: %w",
			total, centerHz, ErrInvalidBand)
	}

	scale := math.Pow(total, -1.0/float64(len(sections)))
	for i := range sections {
		sections[i].B0 *= scale
		sections[i].B2 *= scale
	}

	return nil
}
