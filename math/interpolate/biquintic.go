package interpolate

import (
	"fmt"
	"math"
)

//////////////////////////////
// BiQuintic Implementation //
//////////////////////////////

// BiQuintic is a bi-quintic interpolator with the same column/row caching
// strategy as BiCubic, so it is not thread safe.
type BiQuintic struct {
	xs, ys []float64
	vals   []float64
	nx     int

	lastY       float64
	ySplines    []*Quintic
	xSplineVals []float64
	xSpline     *Quintic
}

// NewBiQuintic creates a bi-quintic interpolator on top of a grid with the
// values given by vals. The values of the x and y grid lines are given by xs
// and ys. The vals grid is indexed in the usual way:
// vals(ix, iy) -> vals[ix + iy*nx].
//
// Panics if len(xs) * len(ys) != len(vals).
func NewBiQuintic(xs, ys, vals []float64) *BiQuintic {
	if len(xs)*len(ys) != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but len(xs) = %d and len(ys) = %d",
			len(vals), len(xs), len(ys),
		))
	}

	bi := &BiQuintic{}
	bi.nx = len(xs)
	bi.vals = vals
	bi.xs, bi.ys = xs, ys

	bi.initSplines()

	return bi
}

func (bi *BiQuintic) initSplines() {
	bi.ySplines = make([]*Quintic, len(bi.xs))

	for xi := range bi.xs {
		yVals := make([]float64, len(bi.ys))
		for yi := range bi.ys {
			yVals[yi] = bi.vals[bi.nx*yi+xi]
		}

		bi.ySplines[xi] = NewQuintic(bi.ys, yVals)
	}

	bi.lastY = bi.ys[0]
	bi.xSplineVals = make([]float64, len(bi.xs))
	for i := range bi.xSplineVals {
		bi.xSplineVals[i] = bi.ySplines[i].Eval(bi.lastY)
	}

	bi.xSpline = NewQuintic(bi.xs, bi.xSplineVals)
}

// Eval evaluates the interpolator at the coordinate (x, y). Points outside
// the grid clamp per-axis to the grid edge, and NaN evaluates to NaN.
func (bi *BiQuintic) Eval(x, y float64) float64 {
	if math.IsNaN(x) || math.IsNaN(y) {
		return math.NaN()
	}
	x = clampRange(bi.xs, x)
	y = clampRange(bi.ys, y)

	if y != bi.lastY {
		bi.lastY = y
		for i := range bi.xSplineVals {
			bi.xSplineVals[i] = bi.ySplines[i].Eval(y)
		}

		bi.xSpline.Init(bi.xs, bi.xSplineVals)
	}

	return bi.xSpline.Eval(x)
}

// EvalAll evaluates the interpolator at all the given (x, y) values. If an
// output array is given, the output is written to that array (the array is
// still returned as a convenience).
func (bi *BiQuintic) EvalAll(xs, ys []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i := range xs {
		out[0][i] = bi.Eval(xs[i], ys[i])
	}
	return out[0]
}
