package currentloop

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRangeValidate(t *testing.T) {
	testCases := []struct {
		rng   Range
		valid bool
	}{
		{Range{0, 100}, true},
		{Range{-50, 50}, true},
		{Range{4, 20}, true},
		{Range{0, 0.001}, true},
		{Range{0, 0}, false},
		{Range{100, 0}, false},
		{Range{math.NaN(), 100}, false},
		{Range{0, math.Inf(1)}, false},
		{Range{-math.MaxFloat64, math.MaxFloat64}, false},
	}

	for _, tc := range testCases {
		err := tc.rng.Validate()
		if tc.valid {
			assert.NoError(t, err, "range %v", tc.rng)
			continue
		}
		assert.ErrorIs(t, err, ErrRange, "range %v", tc.rng)
	}
}

func TestRangeSpan(t *testing.T) {
	assert.Equal(t, 100.0, Range{0, 100}.Span())
	assert.Equal(t, 100.0, Range{-50, 50}.Span())
	assert.Equal(t, 16.0, Range{4, 20}.Span())
}

func TestOutputsString(t *testing.T) {
	out, err := Derive(defaultInputs)
	require.NoError(t, err)

	assert.Equal(t, "Current: 12.00 mA, Resistance: 2000.00 Ω, Code: Red, Black, Red, Gold", out.String())
}
