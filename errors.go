package currentloop

import "errors"

var (
	// ErrRange flags a degenerate or non-finite process variable range
	ErrRange = errors.New("invalid process range")

	// ErrProcessValue flags a non-finite process value
	ErrProcessValue = errors.New("invalid process value")

	// ErrCurrent flags a zero or non-finite loop current
	ErrCurrent = errors.New("invalid loop current")

	// ErrResistance flags a negative or non-finite resistance
	ErrResistance = errors.New("invalid resistance")

	// ErrBandCount flags a band count other than 3, 4 or 5
	ErrBandCount = errors.New("invalid band count")

	// ErrTolerance flags a tolerance other than 1, 2, 5 or 10 percent
	ErrTolerance = errors.New("invalid tolerance")
)
