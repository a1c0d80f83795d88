package residual

import (
	"github.com/cmblake/residual/math/filter"
	"github.com/cmblake/residual/math/interpolate"
)

// Smoother produces a smoothed copy of a row-major, nx-wide grid. The width
// is the kernel scale in grid-pixel units.
type Smoother func(vals []float64, nx int, width float64) []float64

// InterpolantBuilder constructs a 2D interpolant of the given kind on top of
// a rectilinear grid with row-major values.
type InterpolantBuilder func(
	kind interpolate.Kind, xs, ys, vals []float64,
) (interpolate.BiInterpolator, error)

type filterParams struct {
	kind        interpolate.Kind
	background  bool
	boundary    filter.BoundaryCondition
	rEps        float64
	smooth      Smoother
	build       InterpolantBuilder
	customBuild bool
}

type internalFilterOption func(*filterParams)

// Option is an abstract data type which allows for the customization of
// calls to Filter without cluttering the call signature in the common case.
// This works similarly to kwargs in other languages.
type Option internalFilterOption

func (p *filterParams) loadOptions(opts []Option) {
	for _, opt := range opts {
		opt(p)
	}
}

func defaultParams() *filterParams {
	p := &filterParams{
		kind:     interpolate.KindCubic,
		boundary: filter.Reflection,
		build:    interpolate.NewBi,
	}
	// The default smoother reads the boundary condition at call time, so the
	// Boundary option applies regardless of option order.
	p.smooth = func(vals []float64, nx int, width float64) []float64 {
		return filter.GaussianGrid(vals, nx, width, p.boundary)
	}
	return p
}

// Kind selects the interpolation scheme used by the two resampling steps.
// The default is interpolate.KindCubic.
func Kind(kind interpolate.Kind) Option {
	return func(p *filterParams) { p.kind = kind }
}

// Background makes Filter return the blurred map instead of the residual map.
func Background() Option {
	return func(p *filterParams) { p.background = true }
}

// Boundary sets the boundary handling of the smoothing kernel. The default is
// filter.Reflection.
func Boundary(b filter.BoundaryCondition) Option {
	return func(p *filterParams) { p.boundary = b }
}

// ClampRadius clamps radii below eps before they are raised to the stretch
// exponent. Without it, a negative exponent is undefined at the grid origin
// and NaNs appear in the output.
func ClampRadius(eps float64) Option {
	return func(p *filterParams) { p.rEps = eps }
}

// WithSmoother replaces the default Gaussian smoothing step with a custom
// smoother.
func WithSmoother(s Smoother) Option {
	return func(p *filterParams) { p.smooth = s }
}

// WithInterpolant replaces the default interpolant construction with a custom
// builder. The builder also decides which interpolation kinds it accepts, so
// the Kind option is no longer restricted to the built-in kinds.
func WithInterpolant(b InterpolantBuilder) Option {
	return func(p *filterParams) {
		p.build = b
		p.customBuild = true
	}
}
