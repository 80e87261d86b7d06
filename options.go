package currentloop

// WithProcessValue sets the initial process value
func WithProcessValue(value float64) func(*Calculator) {
	return func(c *Calculator) {
		c.in.ProcessValue = value
	}
}

// WithRange sets the initial process variable range
func WithRange(min, max float64) func(*Calculator) {
	return func(c *Calculator) {
		c.in.Range = Range{Min: min, Max: max}
	}
}

// WithBandCount sets the initial color code band count
func WithBandCount(bands BandCount) func(*Calculator) {
	return func(c *Calculator) {
		c.in.Bands = bands
	}
}

// WithTolerance sets the initial resistor tolerance
func WithTolerance(tolerance Tolerance) func(*Calculator) {
	return func(c *Calculator) {
		c.in.Tolerance = tolerance
	}
}

// WithInputs sets the whole initial input snapshot
func WithInputs(in Inputs) func(*Calculator) {
	return func(c *Calculator) {
		c.in = in
	}
}

// WithLogger sets a logger
func WithLogger(logger Logger) func(*Calculator) {
	return func(c *Calculator) {
		c.logger = logger
	}
}
