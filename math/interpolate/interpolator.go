/*package interpolate implements 1D and 2D interpolators over rectilinear
grids. They are used to resample scalar maps between coordinate grids.

Queries outside the range of the sample points are clamped per-axis to the
nearest boundary, so every interpolator extrapolates with its edge values.
NaN queries evaluate to NaN.
*/
package interpolate

// Interpolator is a 1D interpolator over a strictly monotonic sequence of
// sample points.
type Interpolator interface {
	// Eval evaluates the interpolator at x.
	Eval(x float64) float64
	// EvalAll evaluates a sequence of values and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs []float64, out ...[]float64) []float64
}

var (
	_ Interpolator = &Linear{}
	_ Interpolator = &Spline{}
	_ Interpolator = &Quintic{}
)

// BiInterpolator is a 2D interpolator over a rectilinear grid. The spline
// variants cache partially evaluated rows, so they are not thread safe.
type BiInterpolator interface {
	// Eval evaluates the interpolator at a point.
	Eval(x, y float64) float64
	// EvalAll evaluates a sequence of points and returns the result. An
	// optional output array can be supplied to prevent unneeded heap
	// allocations.
	EvalAll(xs, ys []float64, out ...[]float64) []float64
}

var (
	_ BiInterpolator = &BiLinear{}
	_ BiInterpolator = &BiCubic{}
	_ BiInterpolator = &BiQuintic{}
)
