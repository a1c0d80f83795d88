package residual

import (
	"math"
)

// radialStretch remaps coordinates by a radius-dependent power law,
// (x, y) -> (x, y) * r^gamma. The warped radius is r' = r^(1+gamma), so the
// warp is invertible for gamma > -1 and the original position of a warped
// point is recovered with the exponent -gamma/(1+gamma).
//
// For gamma < 0 the scale factor is undefined at r = 0 and apply returns
// NaNs there. Setting eps > 0 clamps the radius to eps before
// exponentiation, which keeps the origin finite.
type radialStretch struct {
	gamma, eps float64
}

// factor returns the coordinate scale factor at radius r.
func (st radialStretch) factor(r float64) float64 {
	if st.eps > 0 && r < st.eps {
		r = st.eps
	}
	return math.Pow(r, st.gamma)
}

// apply warps a point forward.
func (st radialStretch) apply(x, y float64) (float64, float64) {
	s := st.factor(math.Hypot(x, y))
	return x * s, y * s
}

// invert recovers the original position of a warped point.
func (st radialStretch) invert(x, y float64) (float64, float64) {
	r := math.Hypot(x, y)
	if r == 0 {
		return x, y
	}

	var s float64
	if st.eps > 0 && r < math.Pow(st.eps, 1+st.gamma) {
		// Points inside the clamped core were scaled by the constant factor
		// eps^gamma, so undo exactly that.
		s = math.Pow(st.eps, -st.gamma)
	} else {
		s = math.Pow(r, -st.gamma/(1+st.gamma))
	}
	return x * s, y * s
}
