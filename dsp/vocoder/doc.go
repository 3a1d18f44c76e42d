// Package vocoder implements noise vocoding: a signal is split into
// frequency bands, each band's amplitude envelope is extracted, and the
// envelopes modulate matching bands of Gaussian noise. Summing the modulated
// bands yields a signal that keeps the input's temporal and amplitude
// structure while destroying its fine spectral detail, the degraded
// listening condition used in speech-perception research to simulate
// reduced spectral resolution (for example, cochlear-implant hearing).
//
// The pipeline is offline: the whole signal is filtered with zero-phase
// (forward-backward) Butterworth bandpass cascades, so there is no
// group-delay skew between bands. Band layouts come from
// [github.com/cwbudde/algo-vocoder/dsp/filter/bank]: either 1/3-octave bands
// on octave-spaced centers or log-spaced contiguous "Shannon" bands.
//
// Basic usage:
//
//	plan, _ := bank.Shannon(8, 70, 5000)
//	out, err := vocoder.Vocode(input, plan, 44100)
//
// Output amplitude is not normalized; it depends on band count, filter
// gains and the envelope cutoff. Normalize downstream if required.
package vocoder
