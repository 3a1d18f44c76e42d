package biquad

// Chain is an ordered cascade of biquad sections processed in series.
// It is used for higher-order filters (Butterworth lowpass and bandpass)
// where each second-order section feeds into the next.
type Chain struct {
	sections []Section
}

// NewChain creates a cascade from one or more coefficient sets.
// Each Coefficients value becomes one Section in the cascade.
func NewChain(coeffs []Coefficients) *Chain {
	c := &Chain{
		sections: make([]Section, len(coeffs)),
	}
	for i := range coeffs {
		c.sections[i].Coefficients = coeffs[i]
	}

	return c
}

// ProcessSample cascades input through all sections in order.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.sections {
		x = c.sections[i].ProcessSample(x)
	}

	return x
}

// ProcessBlock filters a block in-place through the full cascade.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.sections {
		c.sections[i].ProcessBlock(buf)
	}
}

// Reset clears all section states.
func (c *Chain) Reset() {
	for i := range c.sections {
		c.sections[i].Reset()
	}
}

// Order returns the total filter order (2 per full biquad section).
func (c *Chain) Order() int {
	return 2 * len(c.sections)
}

// NumSections returns the number of biquad sections.
func (c *Chain) NumSections() int {
	return len(c.sections)
}

// Section returns a pointer to the i-th section for inspection or modification.
func (c *Chain) Section(i int) *Section {
	return &c.sections[i]
}

// State returns a snapshot of all section delay-line states.
func (c *Chain) State() [][2]float64 {
	states := make([][2]float64, len(c.sections))
	for i := range c.sections {
		states[i] = c.sections[i].State()
	}

	return states
}

// SetState restores previously saved section states.
// The slice length must match NumSections.
func (c *Chain) SetState(states [][2]float64) {
	for i := range c.sections {
		c.sections[i].SetState(states[i])
	}
}

// StepStates computes the delay-line states a cascade settles into for a
// constant input x0. Seeding a fresh chain with these states makes it
// respond to a constant signal with its steady-state output from the very
// first sample, which suppresses the startup transient.
//
// The input to each section is x0 scaled by the DC gain of all upstream
// sections. Sections with a pole at z = 1 get a zero state.
func StepStates(coeffs []Coefficients, x0 float64) [][2]float64 {
	states := make([][2]float64, len(coeffs))

	in := x0
	for i := range coeffs {
		c := &coeffs[i]

		den := 1 + c.A1 + c.A2

		dc := 0.0
		if den != 0 {
			dc = (c.B0 + c.B1 + c.B2) / den
		}

		out := dc * in
		states[i] = [2]float64{out - c.B0*in, c.B2*in - c.A2*out}
		in = out
	}

	return states
}
