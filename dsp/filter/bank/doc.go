// Package bank plans frequency bands and applies bandpass filter banks.
//
// Two planning strategies are provided:
//
//   - [ThirdOctave] places 1/3-octave-wide bands around octave-spaced
//     center frequencies: centers start at the given low frequency and
//     double until they pass the high bound, and each band spans
//     [cf/2^(1/6), cf*2^(1/6)].
//   - [Shannon] splits a frequency range into a fixed number of contiguous
//     bands with log-spaced edges, the layout used for noise-vocoded speech
//     experiments.
//
// [Apply] runs a signal through an order-8 Butterworth bandpass per band
// using zero-phase filtering, producing one output channel per band. Bands
// are independent, so channels are computed in parallel; channel i always
// corresponds to plan band i.
package bank
