package interpolate

import (
	"math"
)

type quinticCoeff struct {
	a0, a1, a2, a3, a4, a5 float64
}

// Quintic is a C^2 piecewise-quintic interpolator. Each interval matches the
// values and the first and second derivatives of a natural cubic spline at
// both of its end points, which raises the local polynomial order without
// losing smoothness at the knots. Points outside the table range evaluate to
// the nearest boundary value.
type Quintic struct {
	sp     *Spline
	coeffs []quinticCoeff
}

// NewQuintic creates a quintic interpolator based off a table of x and y
// values. The values must be sorted in increasing or decreasing order in x.
func NewQuintic(xs, ys []float64) *Quintic {
	q := &Quintic{sp: NewSpline(xs, ys)}
	q.coeffs = make([]quinticCoeff, len(xs)-1)
	q.calcCoeffs()
	return q
}

// Init reinitializes the interpolator to use a new sequence of points without
// doing any additional heap allocations. |xs| and |ys| must be the same as
// the previous point set.
func (q *Quintic) Init(xs, ys []float64) {
	q.sp.Init(xs, ys)
	q.calcCoeffs()
}

func (q *Quintic) calcCoeffs() {
	xs, ys, y2s := q.sp.xs, q.sp.ys, q.sp.y2s
	for i := range q.coeffs {
		h := xs[i+1] - xs[i]
		y0, y1 := ys[i], ys[i+1]
		d0, d1 := q.sp.derivAtNode(i), q.sp.derivAtNode(i+1)
		s0, s1 := y2s[i], y2s[i+1]

		// Solve for the three highest coefficients of the unique quintic with
		// value y, slope d and curvature s at both interval ends.
		u := y1 - y0 - d0*h - s0*h*h/2
		v := (d1 - d0 - s0*h) * h
		w := (s1 - s0) * h * h

		c := &q.coeffs[i]
		c.a0, c.a1, c.a2 = y0, d0, s0/2
		c.a3 = (10*u - 4*v + w/2) / (h * h * h)
		c.a4 = (-15*u + 7*v - w) / (h * h * h * h)
		c.a5 = (6*u - 3*v + w/2) / (h * h * h * h * h)
	}
}

// Eval computes the value of the interpolator at the given point. Points
// outside the table range evaluate to the nearest boundary value, and NaN
// evaluates to NaN.
func (q *Quintic) Eval(x float64) float64 {
	if math.IsNaN(x) {
		return math.NaN()
	}
	x = clampRange(q.sp.xs, x)

	i := q.sp.bsearch(x)
	dx := x - q.sp.xs[i]
	c := &q.coeffs[i]
	return c.a0 + dx*(c.a1+dx*(c.a2+dx*(c.a3+dx*(c.a4+dx*c.a5))))
}

// EvalAll evaluates the interpolator at all the given x values. If an output
// array is given, the output is written to that array (the array is still
// returned as a convenience).
func (q *Quintic) EvalAll(xs []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}

	for i := range xs {
		out[0][i] = q.Eval(xs[i])
	}

	return out[0]
}
