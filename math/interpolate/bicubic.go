package interpolate

import (
	"fmt"
	"math"
)

////////////////////////////
// BiCubic Implementation //
////////////////////////////

// BiCubic is a bi-cubic spline interpolator. It keeps one spline per grid
// column and caches the row spline of the most recent y query, so it is not
// thread safe.
type BiCubic struct {
	xs, ys []float64
	vals   []float64
	nx     int

	lastY       float64
	ySplines    []*Spline
	xSplineVals []float64
	xSpline     *Spline
}

// NewBiCubic creates a bi-cubic interpolator on top of a grid with the values
// given by vals. The values of the x and y grid lines are given by xs and ys.
// The vals grid is indexed in the usual way: vals(ix, iy) -> vals[ix + iy*nx].
//
// Panics if len(xs) * len(ys) != len(vals).
func NewBiCubic(xs, ys, vals []float64) *BiCubic {
	if len(xs)*len(ys) != len(vals) {
		panic(fmt.Sprintf(
			"len(vals) = %d, but len(xs) = %d and len(ys) = %d",
			len(vals), len(xs), len(ys),
		))
	}

	bi := &BiCubic{}
	bi.nx = len(xs)
	bi.vals = vals
	bi.xs, bi.ys = xs, ys

	bi.initSplines()

	return bi
}

func (bi *BiCubic) initSplines() {
	bi.ySplines = make([]*Spline, len(bi.xs))

	for xi := range bi.xs {
		yVals := make([]float64, len(bi.ys))
		for yi := range bi.ys {
			yVals[yi] = bi.vals[bi.nx*yi+xi]
		}

		bi.ySplines[xi] = NewSpline(bi.ys, yVals)
	}

	bi.lastY = bi.ys[0]
	bi.xSplineVals = make([]float64, len(bi.xs))
	for i := range bi.xSplineVals {
		bi.xSplineVals[i] = bi.ySplines[i].Eval(bi.lastY)
	}

	bi.xSpline = NewSpline(bi.xs, bi.xSplineVals)
}

// Eval evaluates the interpolator at the coordinate (x, y). Points outside
// the grid clamp per-axis to the grid edge, and NaN evaluates to NaN.
func (bi *BiCubic) Eval(x, y float64) float64 {
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
func (bi *BiCubic) EvalAll(xs, ys []float64, out ...[]float64) []float64 {
	if len(out) == 0 {
		out = [][]float64{make([]float64, len(xs))}
	}
	for i := range xs {
		out[0][i] = bi.Eval(xs[i], ys[i])
	}
	return out[0]
}
