package currentloop

import "fmt"

// Range denotes the configured process variable range
type Range struct {
	Min float64
	Max float64
}

// Validate checks that the range denotes a usable configuration: both
// bounds and the span must be finite and Min must be less than Max
func (r Range) Validate() error {
	if !isFinite(r.Min) || !isFinite(r.Max) || !isFinite(r.Span()) {
		return fmt.Errorf("%w: bounds must be finite (have [%v, %v])", ErrRange, r.Min, r.Max)
	}
	if r.Min >= r.Max {
		return fmt.Errorf("%w: lower bound must be less than upper bound (have [%v, %v])", ErrRange, r.Min, r.Max)
	}

	return nil
}

// Span returns the width of the range
func (r Range) Span() float64 {
	return r.Max - r.Min
}

// Inputs denotes one immutable snapshot of the calculator inputs
type Inputs struct {
	ProcessValue float64
	Range        Range
	Bands        BandCount
	Tolerance    Tolerance
}

// Outputs denotes the set of values derived from one input snapshot.
// It is recomputed wholesale on every input change, never updated in
// place.
type Outputs struct {
	Current       float64 // loop current (mA)
	Resistance    float64 // load resistance (Ω)
	Code          Code    // resistor color code for the load resistance
	ResistanceMin float64 // tolerance-adjusted lower resistance bound (Ω)
	ResistanceMax float64 // tolerance-adjusted upper resistance bound (Ω)
	Curve         Curve   // fixed resistance-over-current reference curve
}

// String fulfils the Stringer interface
func (o Outputs) String() string {
	return fmt.Sprintf("Current: %.2f mA, Resistance: %.2f Ω, Code: %s", o.Current, o.Resistance, o.Code)
}

// CurvePoint denotes a loop current paired with the load resistance it
// implies
type CurvePoint struct {
	Current    float64 // mA
	Resistance float64 // Ω
}

// Curve denotes an ordered set of curve points over the fixed current
// sweep
type Curve []CurvePoint
