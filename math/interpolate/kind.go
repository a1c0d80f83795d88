package interpolate

import (
	"fmt"
)

// Kind names an interpolation scheme. The names follow the scipy interp2d
// conventions, so parameter strings from existing analysis configs can be
// forwarded directly.
type Kind string

const (
	KindLinear  Kind = "linear"
	KindCubic   Kind = "cubic"
	KindQuintic Kind = "quintic"
)

// Kinds returns the supported interpolation kinds.
func Kinds() []Kind {
	return []Kind{KindLinear, KindCubic, KindQuintic}
}

// Valid reports whether k names a supported interpolation scheme.
func (k Kind) Valid() bool {
	switch k {
	case KindLinear, KindCubic, KindQuintic:
		return true
	}
	return false
}

// NewBi creates a 2D interpolator of the given kind on top of a rectilinear
// grid. The values of the x and y grid lines are given by xs and ys, and the
// vals grid is indexed in the usual way: vals(ix, iy) -> vals[ix + iy*nx].
// An unrecognized kind returns an error.
func NewBi(kind Kind, xs, ys, vals []float64) (BiInterpolator, error) {
	switch kind {
	case KindLinear:
		return NewBiLinear(xs, ys, vals), nil
	case KindCubic:
		return NewBiCubic(xs, ys, vals), nil
	case KindQuintic:
		return NewBiQuintic(xs, ys, vals), nil
	}
	return nil, fmt.Errorf("unknown interpolation kind %q (supported: %v)",
		kind, Kinds())
}
