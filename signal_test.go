package currentloop

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSignal(t *testing.T) {
	testCases := []struct {
		processValue float64
		rng          Range
		expected     float64
	}{
		{0, Range{0, 100}, 4},
		{25, Range{0, 100}, 8},
		{50, Range{0, 100}, 12},
		{75, Range{0, 100}, 16},
		{100, Range{0, 100}, 20},

		// Values outside the range are not clamped
		{-25, Range{0, 100}, 0},
		{125, Range{0, 100}, 24},

		{-50, Range{-50, 50}, 4},
		{0, Range{-50, 50}, 12},
		{50, Range{-50, 50}, 20},
		{12, Range{4, 20}, 12},
	}

	for _, tc := range testCases {
		got, err := Signal(tc.processValue, tc.rng)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, got, "process value %v on %v", tc.processValue, tc.rng)
	}
}

func TestSignalContainment(t *testing.T) {
	testCases := []struct {
		processValue float64
		rng          Range
	}{
		{0.2, Range{0.1, 0.3}},
		{0, Range{-273.15, 1000}},
		{1.5e-6, Range{1e-6, 2e-6}},
		{19, Range{4, 20}},
		{0.1, Range{0.1, 0.3}},
		{0.3, Range{0.1, 0.3}},
	}

	for _, tc := range testCases {
		got, err := Signal(tc.processValue, tc.rng)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, got, 4.0, "process value %v on %v", tc.processValue, tc.rng)
		assert.LessOrEqual(t, got, 20.0, "process value %v on %v", tc.processValue, tc.rng)
	}
}

func TestSignalInvalidProcessValue(t *testing.T) {
	for _, value := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Signal(value, Range{0, 100})
		assert.ErrorIs(t, err, ErrProcessValue, "process value %v", value)
	}
}

func TestSignalInvalidRange(t *testing.T) {
	testCases := []Range{
		{0, 0},
		{5, 5},
		{100, 0},
		{math.NaN(), 100},
		{0, math.NaN()},
		{math.Inf(-1), 0},
		{0, math.Inf(1)},
		{-math.MaxFloat64, math.MaxFloat64}, // finite bounds, infinite span
	}

	for _, rng := range testCases {
		_, err := Signal(50, rng)
		assert.ErrorIs(t, err, ErrRange, "range %v", rng)
	}
}

func TestSignalOverflow(t *testing.T) {

	// A huge process value on a tiny range pushes the current beyond float64
	_, err := Signal(1e300, Range{0, 1e-300})
	assert.ErrorIs(t, err, ErrRange)
}

func TestResistance(t *testing.T) {
	testCases := []struct {
		current  float64
		expected float64
	}{
		{4, 6000},
		{8, 3000},
		{10, 2400},
		{12, 2000},
		{16, 1500},
		{20, 1200},
		{0.5, 48000},
		{-4, -6000},
	}

	for _, tc := range testCases {
		got, err := Resistance(tc.current)
		require.NoError(t, err)
		assert.Equal(t, tc.expected, got, "current %v mA", tc.current)
	}
}

func TestResistanceInvalidCurrent(t *testing.T) {
	for _, current := range []float64{0, math.NaN(), math.Inf(1), math.Inf(-1)} {
		_, err := Resistance(current)
		assert.ErrorIs(t, err, ErrCurrent, "current %v", current)
	}
}

func TestSampleCurve(t *testing.T) {
	curve := SampleCurve()
	require.Len(t, curve, 33)

	assert.Equal(t, CurvePoint{Current: 4, Resistance: 6000}, curve[0])
	assert.Equal(t, CurvePoint{Current: 20, Resistance: 1200}, curve[len(curve)-1])

	for i, point := range curve {
		assert.Equal(t, 4+0.5*float64(i), point.Current, "point %d", i)
		if i > 0 {
			assert.Less(t, point.Resistance, curve[i-1].Resistance, "point %d", i)
		}
	}
}

func TestSampleCurveDeterministic(t *testing.T) {
	assert.Equal(t, SampleCurve(), SampleCurve())
}
