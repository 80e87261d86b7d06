package currentloop

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Color denotes a single resistor band color
type Color int

const (

	// Black through White make up the digit palette: the color value
	// doubles as the digit it encodes and as the power of ten on the
	// multiplier band
	Black Color = iota
	Brown
	Red
	Orange
	Yellow
	Green
	Blue
	Violet
	Grey
	White

	// Gold and Silver appear on tolerance bands only
	Gold
	Silver
)

// colorNames backs Color.String, indexed by color value
var colorNames = [...]string{
	"Black", "Brown", "Red", "Orange", "Yellow",
	"Green", "Blue", "Violet", "Grey", "White",
	"Gold", "Silver",
}

// String fulfils the Stringer interface
func (c Color) String() string {
	if c < Black || c > Silver {
		return fmt.Sprintf("Color(%d)", int(c))
	}

	return colorNames[c]
}

// BandCount denotes the number of bands of a resistor color code
type BandCount int

const (

	// Bands3 denotes a code of two digit bands and a multiplier band
	Bands3 BandCount = 3

	// Bands4 denotes a 3-band code plus a tolerance band
	Bands4 BandCount = 4

	// Bands5 denotes three digit bands, a multiplier and a tolerance band
	Bands5 BandCount = 5
)

// Valid reports whether b is a supported band count
func (b BandCount) Valid() bool {
	return b == Bands3 || b == Bands4 || b == Bands5
}

// significantDigits returns the number of digit bands for the count
func (b BandCount) significantDigits() int {
	if b == Bands5 {
		return 3
	}

	return 2
}

// Tolerance denotes a manufacturing tolerance in percent
type Tolerance int

const (
	Tolerance1  Tolerance = 1
	Tolerance2  Tolerance = 2
	Tolerance5  Tolerance = 5
	Tolerance10 Tolerance = 10
)

// toleranceColors maps each supported tolerance to its band color
var toleranceColors = map[Tolerance]Color{
	Tolerance1:  Brown,
	Tolerance2:  Red,
	Tolerance5:  Gold,
	Tolerance10: Silver,
}

// Valid reports whether t is a supported tolerance
func (t Tolerance) Valid() bool {
	_, exists := toleranceColors[t]
	return exists
}

// Factor returns the tolerance as a fraction (5% yields 0.05)
func (t Tolerance) Factor() float64 {
	return float64(t) / 100
}

// Bounds returns the tolerance-adjusted interval around a nominal
// resistance
func (t Tolerance) Bounds(resistance float64) (min, max float64) {
	return resistance * (1 - t.Factor()), resistance * (1 + t.Factor())
}

// String fulfils the Stringer interface
func (t Tolerance) String() string {
	return fmt.Sprintf("%d%%", int(t))
}

// Code denotes an ordered resistor band color sequence. The zero-length
// code marks a resistance that is valid but has too few digits to be
// represented at the requested band count.
type Code []Color

// Representable reports whether the code carries any bands
func (c Code) Representable() bool {
	return len(c) > 0
}

// String fulfils the Stringer interface, rendering the empty code as
// "N/A"
func (c Code) String() string {
	if !c.Representable() {
		return "N/A"
	}

	names := make([]string, len(c))
	for i, color := range c {
		names[i] = color.String()
	}

	return strings.Join(names, ", ")
}

// Encode derives the band color sequence for a resistance at the given
// band count. The resistance is rounded to the nearest Ω; 3- and 4-band
// codes take two significant digits, 5-band codes take three. Values
// with fewer digits than that are zero-padded on 5-band codes but yield
// the empty (unrepresentable) code on 3- and 4-band codes. The
// tolerance selects the final band on 4- and 5-band codes and is
// ignored on 3-band codes.
func Encode(resistance float64, bands BandCount, tolerance Tolerance) (Code, error) {
	if !bands.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrBandCount, int(bands))
	}
	if !isFinite(resistance) || math.Signbit(resistance) {
		return nil, fmt.Errorf("%w: %v Ω", ErrResistance, resistance)
	}
	if bands != Bands3 && !tolerance.Valid() {
		return nil, fmt.Errorf("%w: %d%%", ErrTolerance, int(tolerance))
	}

	digits := strconv.FormatFloat(math.Round(resistance), 'f', 0, 64)
	significant := bands.significantDigits()
	if len(digits) < significant {
		if bands != Bands5 {

			// 3- and 4-band codes do not zero-pad; values this small
			// stay unrepresentable
			return Code{}, nil
		}
		digits = strings.Repeat("0", significant-len(digits)) + digits
	}

	// The multiplier approximates the magnitude from the digit count;
	// there is no palette entry beyond 10^9
	multiplier := len(digits) - significant
	if multiplier > int(White) {
		return Code{}, nil
	}

	code := make(Code, 0, int(bands))
	for _, digit := range digits[:significant] {
		code = append(code, Color(digit-'0'))
	}
	code = append(code, Color(multiplier))
	if bands != Bands3 {
		code = append(code, toleranceColors[tolerance])
	}

	return code, nil
}
