package currentloop

import (
	"fmt"
	"math"
)

const (
	supplyVoltage   = 24.0 // fixed loop supply (V)
	milliampsPerAmp = 1000.0

	signalMin  = 4.0  // loop current at the bottom of the process range (mA)
	signalMax  = 20.0 // loop current at the top of the process range (mA)
	signalSpan = signalMax - signalMin

	curveStep    = 0.5 // current increment between curve points (mA)
	curveSamples = 33
)

// Signal converts a process value within rng to the loop current in mA,
// mapping [rng.Min, rng.Max] linearly onto [4, 20]. Process values
// outside the range yield currents outside that interval, they are not
// clamped.
func Signal(processValue float64, rng Range) (float64, error) {
	if err := rng.Validate(); err != nil {
		return 0, err
	}
	if !isFinite(processValue) {
		return 0, fmt.Errorf("%w: %v", ErrProcessValue, processValue)
	}

	current := signalMin + (processValue-rng.Min)*signalSpan/rng.Span()
	if !isFinite(current) {
		return 0, fmt.Errorf("%w: value %v does not map onto [%v, %v] mA", ErrRange, processValue, signalMin, signalMax)
	}

	return current, nil
}

// Resistance returns the load resistance in Ω drawing the given current
// in mA from the fixed 24 V loop supply. The current must be finite and
// nonzero; negative currents yield negative resistances.
func Resistance(current float64) (float64, error) {
	if !isFinite(current) || current == 0 {
		return 0, fmt.Errorf("%w: %v mA", ErrCurrent, current)
	}

	return resistanceAt(current), nil
}

// SampleCurve returns the fixed 33-point reference curve of load
// resistance over the 4-20 mA sweep in 0.5 mA steps. The sweep never
// touches zero, so every point is defined.
func SampleCurve() Curve {
	curve := make(Curve, 0, curveSamples)
	for i := 0; i < curveSamples; i++ {
		current := signalMin + curveStep*float64(i)
		curve = append(curve, CurvePoint{
			Current:    current,
			Resistance: resistanceAt(current),
		})
	}

	return curve
}

////////////////////////////////////////////////////////////////////////////////

func resistanceAt(current float64) float64 {

	// Must multiply before dividing: 24000/12 is exact, 24/0.012 is not
	return supplyVoltage * milliampsPerAmp / current
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
