package currentloop

import "fmt"

// defaultInputs is the configuration of a fresh calculator: the
// midpoint of a 0-100 range at a 4-band, 5% code
var defaultInputs = Inputs{
	ProcessValue: 50,
	Range:        Range{Min: 0, Max: 100},
	Bands:        Bands4,
	Tolerance:    Tolerance5,
}

// Calculator denotes a 4-20 mA current-loop calculator holding one
// input snapshot and the values derived from it. All computation is
// synchronous: every input change triggers a full recomputation before
// the mutating call returns.
type Calculator struct {
	in  Inputs
	out Outputs

	updateHandler func(Outputs)
	updateChan    chan Outputs

	logger Logger
}

// New instantiates a new Calculator, executing functional options, if any
func New(options ...func(*Calculator)) (*Calculator, error) {

	// Initialize a new instance of a Calculator
	c := &Calculator{
		in:     defaultInputs,
		logger: &NullLogger{},
	}

	// Execute functional options (if any), see options.go for implementation
	for _, option := range options {
		option(c)
	}

	return c, c.recompute()
}

// Inputs returns the current input snapshot
func (c *Calculator) Inputs() Inputs {
	return c.in
}

// Outputs returns the values derived from the current input snapshot
func (c *Calculator) Outputs() Outputs {
	return c.out
}

// SetProcessValue updates the process value and recomputes all derived
// values
func (c *Calculator) SetProcessValue(value float64) error {
	in := c.in
	in.ProcessValue = value

	return c.apply(in)
}

// SetRange updates the process variable range and recomputes all
// derived values
func (c *Calculator) SetRange(min, max float64) error {
	in := c.in
	in.Range = Range{Min: min, Max: max}

	return c.apply(in)
}

// SetBandCount updates the color code band count and recomputes all
// derived values
func (c *Calculator) SetBandCount(bands BandCount) error {
	in := c.in
	in.Bands = bands

	return c.apply(in)
}

// SetTolerance updates the resistor tolerance and recomputes all
// derived values
func (c *Calculator) SetTolerance(tolerance Tolerance) error {
	in := c.in
	in.Tolerance = tolerance

	return c.apply(in)
}

// SetInputs replaces the whole input snapshot and recomputes all
// derived values
func (c *Calculator) SetInputs(in Inputs) error {
	return c.apply(in)
}

// SetUpdateHandler defines a handler function that is called after
// every recomputation
func (c *Calculator) SetUpdateHandler(fn func(Outputs)) {
	c.updateHandler = fn
}

// SetUpdateChannel defines a channel receiving the outputs of every
// recomputation
func (c *Calculator) SetUpdateChannel(ch chan Outputs) {
	c.updateChan = ch
}

////////////////////////////////////////////////////////////////////////////////

// apply swaps in a new input snapshot; on a validation error the
// previous inputs and outputs stay untouched
func (c *Calculator) apply(in Inputs) error {
	prev := c.in
	c.in = in
	if err := c.recompute(); err != nil {
		c.in = prev
		return err
	}

	return nil
}

func (c *Calculator) recompute() error {
	out, err := Derive(c.in)
	if err != nil {
		return err
	}
	c.out = out

	c.logger.Debugf("recomputed derived values: %s", out)
	c.publish(out)

	return nil
}

func (c *Calculator) publish(out Outputs) {

	// Call handler function, if any
	if c.updateHandler != nil {
		c.updateHandler(out)
	}

	// Put outputs on channel, if any, without ever blocking the
	// recomputation
	if c.updateChan != nil {
		select {
		case c.updateChan <- out:
		default:
		}
	}
}

////////////////////////////////////////////////////////////////////////////////

// Derive recomputes the full set of derived values for one input
// snapshot. It is a pure function: identical inputs yield identical
// outputs, and a validation error leaves no partial result. The
// tolerance is validated for every band count because it always feeds
// the resistance bounds.
func Derive(in Inputs) (Outputs, error) {
	current, err := Signal(in.ProcessValue, in.Range)
	if err != nil {
		return Outputs{}, err
	}

	resistance, err := Resistance(current)
	if err != nil {
		return Outputs{}, err
	}

	if !in.Tolerance.Valid() {
		return Outputs{}, fmt.Errorf("%w: %d%%", ErrTolerance, int(in.Tolerance))
	}

	code, err := Encode(resistance, in.Bands, in.Tolerance)
	if err != nil {
		return Outputs{}, err
	}

	resistanceMin, resistanceMax := in.Tolerance.Bounds(resistance)

	return Outputs{
		Current:       current,
		Resistance:    resistance,
		Code:          code,
		ResistanceMin: resistanceMin,
		ResistanceMax: resistanceMax,
		Curve:         SampleCurve(),
	}, nil
}
