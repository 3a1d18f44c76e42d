// Package biquad implements second-order IIR filter sections and cascades.
//
// High-order filters are represented as a cascade of second-order sections
// rather than a single direct-form transfer function. Direct-form
// coefficients of order >= 6 suffer catastrophic precision loss; the
// cascade keeps every stage numerically well conditioned regardless of the
// total order.
//
// A [Section] processes samples in Direct Form II Transposed. A [Chain]
// runs several sections in series and is the unit consumed by the
// zero-phase filtering and filter bank packages.
package biquad
