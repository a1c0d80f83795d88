/*package residual implements a radially-variable-width Gaussian high-pass
filter for 2D scalar maps, such as astronomical surface-brightness maps. It
highlights substructure whose spatial scale grows with distance from the map
center: a fixed kernel width over-blurs the inner region and under-blurs the
outer one, so the kernel width is made to follow a radial power law instead.

The variable-width convolution is not done by varying the kernel over the
map. The sample grid is stretched by r^gamma, blurred with a fixed kernel in
the stretched frame, and resampled back onto the original grid, which is
equivalent and reuses ordinary fixed-kernel machinery.
*/
package residual

import (
	"fmt"
	"log"
	"math"
	"time"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cmblake/residual/logging"
	"github.com/cmblake/residual/math/interpolate"
)

// Filter convolves data with a Gaussian kernel whose standard deviation
// follows r^gamma and returns the residual left after subtracting the blurred
// map, resampled onto the original grid. With the Background option the
// blurred map is returned instead.
//
// data must have shape (len(yaxis), len(xaxis)). The axes give the sample
// coordinates of the grid columns and rows; they must be strictly monotonic
// and centered so that r = 0 falls at the physical origin of the map. width
// is the kernel standard deviation in grid-pixel units. The inputs are not
// mutated and repeated calls produce identical output.
//
// For gamma < 0 the stretch is undefined at r = 0. By default the resulting
// NaN propagates into the output (with the spline kinds it contaminates every
// coupled sample); use ClampRadius to clamp the radius instead. Stretched
// sample coordinates that land outside the original grid are clamped to the
// grid edge by the interpolators, so accuracy near the map edges degrades as
// |gamma| or the kernel width grow.
func Filter(
	data *mat.Dense, xaxis, yaxis []float64,
	gamma, width float64, opts ...Option,
) (*mat.Dense, error) {
	start := time.Now()

	p := defaultParams()
	p.loadOptions(opts)

	if err := checkAxis("x", xaxis); err != nil {
		return nil, err
	}
	if err := checkAxis("y", yaxis); err != nil {
		return nil, err
	}
	ny, nx := data.Dims()
	if nx != len(xaxis) || ny != len(yaxis) {
		return nil, fmt.Errorf(
			"%w: data is (%d, %d), but len(yaxis) = %d and len(xaxis) = %d",
			ErrShapeMismatch, ny, nx, len(yaxis), len(xaxis),
		)
	}
	if width <= 0 {
		return nil, fmt.Errorf(
			"%w: kernel width %g is not positive", ErrInvalidParameter, width,
		)
	}
	if gamma <= -1 {
		return nil, fmt.Errorf(
			"%w: stretch exponent %g is not greater than -1; the radial "+
				"warp would not be invertible", ErrInvalidParameter, gamma,
		)
	}
	// A custom builder decides for itself which kinds it accepts.
	if !p.customBuild && !p.kind.Valid() {
		return nil, fmt.Errorf(
			"%w: unknown interpolation kind %q (supported: %v)",
			ErrInvalidParameter, p.kind, interpolate.Kinds(),
		)
	}

	xs := append([]float64{}, xaxis...)
	ys := append([]float64{}, yaxis...)
	vals := denseVals(data)

	st := radialStretch{gamma: gamma, eps: p.rEps}

	// Warp the sample coordinates of the grid: every sample moves radially by
	// its own factor r^gamma.
	qx := make([]float64, nx*ny)
	qy := make([]float64, nx*ny)
	for iy, y := range ys {
		for ix, x := range xs {
			i := iy*nx + ix
			qx[i], qy[i] = st.apply(x, y)
		}
	}

	// Resample the map onto the stretched grid.
	src, err := p.build(p.kind, xs, ys, vals)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	stretched := src.EvalAll(qx, qy)

	// A fixed-width blur on the stretched grid is a radius-dependent blur on
	// the original one.
	background := p.smooth(stretched, nx, width)
	sel := background
	if !p.background {
		sel = make([]float64, len(stretched))
		floats.SubTo(sel, stretched, background)
	}

	// The selected map is anchored at the stretched coordinates, so its value
	// at an original grid point is found by pulling the query back through
	// the inverse warp and evaluating on the unstretched grid.
	dst, err := p.build(p.kind, xs, ys, sel)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidParameter, err)
	}
	out := mat.NewDense(ny, nx, nil)
	for iy, y := range ys {
		for ix, x := range xs {
			px, py := st.invert(x, y)
			out.Set(iy, ix, dst.Eval(px, py))
		}
	}

	if logging.Mode == logging.Performance {
		log.Printf(
			"residual: filtered a (%d, %d) map in %v (%s)",
			ny, nx, time.Since(start), logging.MemString(),
		)
	}

	return out, nil
}

// checkAxis verifies that an axis is usable as a grid coordinate sequence:
// at least two samples, all finite, strictly monotonic in either direction.
func checkAxis(name string, axis []float64) error {
	if len(axis) < 2 {
		return fmt.Errorf(
			"%w: %s-axis has length %d", ErrInvalidAxis, name, len(axis),
		)
	}
	incr := axis[1] > axis[0]
	for i := range axis {
		if math.IsNaN(axis[i]) || math.IsInf(axis[i], 0) {
			return fmt.Errorf(
				"%w: %s-axis[%d] = %g", ErrInvalidAxis, name, i, axis[i],
			)
		}
		if i == 0 {
			continue
		}
		if axis[i] == axis[i-1] || (axis[i] > axis[i-1]) != incr {
			return fmt.Errorf(
				"%w: %s-axis is not strictly monotonic at index %d",
				ErrInvalidAxis, name, i,
			)
		}
	}
	return nil
}

// denseVals returns a fresh row-major copy of the matrix values.
func denseVals(m *mat.Dense) []float64 {
	return mat.DenseCopyOf(m).RawMatrix().Data
}
