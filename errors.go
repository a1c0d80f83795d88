package residual

import (
	"errors"
)

// Precondition failures are reported through these sentinels so that callers
// can classify them with errors.Is. Filter never produces partial output: it
// either fails with one of these before any computation or returns a complete
// map.
var (
	// ErrShapeMismatch reports that the data dimensions do not match the
	// lengths of the two axes.
	ErrShapeMismatch = errors.New("data shape does not match axes")

	// ErrInvalidAxis reports an axis that is too short, non-finite, or not
	// strictly monotonic.
	ErrInvalidAxis = errors.New("invalid axis")

	// ErrInvalidParameter reports a kernel width, stretch exponent, or
	// interpolation kind outside the supported range.
	ErrInvalidParameter = errors.New("invalid parameter")
)
