package residual

import (
	"errors"
	"math"
	"testing"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cmblake/residual/math/filter"
	"github.com/cmblake/residual/math/interpolate"
)

func almostEq(x, y, eps float64) bool {
	return x+eps > y && x-eps < y
}

// bumpMap builds a smooth Gaussian bump of the given scale on the grid.
func bumpMap(xs, ys []float64, scale float64) *mat.Dense {
	data := mat.NewDense(len(ys), len(xs), nil)
	for iy, y := range ys {
		for ix, x := range xs {
			r2 := x*x + y*y
			data.Set(iy, ix, math.Exp(-r2/(2*scale*scale)))
		}
	}
	return data
}

func span(lo, hi float64, n int) []float64 {
	return floats.Span(make([]float64, n), lo, hi)
}

func TestFilterShape(t *testing.T) {
	xs := span(-24, 24, 49)
	ys := span(-16, 16, 33)
	data := bumpMap(xs, ys, 8)

	for _, opts := range [][]Option{{}, {Background()}} {
		out, err := Filter(data, xs, ys, 0.5, 2, opts...)
		if err != nil {
			t.Fatalf("Filter returned error: %v", err)
		}
		ny, nx := out.Dims()
		if ny != 33 || nx != 49 {
			t.Errorf("output shape is (%d, %d), want (33, 49)", ny, nx)
		}
	}
}

func TestFilterZeroGammaMatchesDirectBlur(t *testing.T) {
	xs := span(-16, 16, 33)
	data := bumpMap(xs, xs, 5)
	vals := denseVals(data)
	want := filter.GaussianGrid(vals, 33, 2, filter.Reflection)

	for _, kind := range interpolate.Kinds() {
		bg, err := Filter(data, xs, xs, 0, 2, Kind(kind), Background())
		if err != nil {
			t.Fatalf("%s: Filter returned error: %v", kind, err)
		}
		hp, err := Filter(data, xs, xs, 0, 2, Kind(kind))
		if err != nil {
			t.Fatalf("%s: Filter returned error: %v", kind, err)
		}

		for iy := 0; iy < 33; iy++ {
			for ix := 0; ix < 33; ix++ {
				w := want[iy*33+ix]
				if got := bg.At(iy, ix); !almostEq(got, w, 1e-10) {
					t.Fatalf("%s: background(%d, %d) = %g, want direct "+
						"blur %g", kind, ix, iy, got, w)
				}
				whp := vals[iy*33+ix] - w
				if got := hp.At(iy, ix); !almostEq(got, whp, 1e-10) {
					t.Fatalf("%s: highpass(%d, %d) = %g, want %g",
						kind, ix, iy, got, whp)
				}
			}
		}
	}
}

func TestFilterZeroGammaDecreasingAxis(t *testing.T) {
	xs := span(16, -16, 33)
	ys := span(-16, 16, 33)
	data := bumpMap(xs, ys, 5)
	vals := denseVals(data)
	want := filter.GaussianGrid(vals, 33, 2, filter.Reflection)

	bg, err := Filter(data, xs, ys, 0, 2, Background())
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	for iy := 0; iy < 33; iy++ {
		for ix := 0; ix < 33; ix++ {
			w := want[iy*33+ix]
			if got := bg.At(iy, ix); !almostEq(got, w, 1e-10) {
				t.Fatalf("background(%d, %d) = %g, want %g", ix, iy, got, w)
			}
		}
	}
}

func TestFilterComplementarity(t *testing.T) {
	xs := span(-32, 32, 65)
	data := bumpMap(xs, xs, 10)

	bg, err := Filter(data, xs, xs, 0.5, 2, Background())
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	hp, err := Filter(data, xs, xs, 0.5, 2)
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}

	// The two outputs pass through the same inverse resampling, so their sum
	// reproduces the input up to interpolation error. Edge accuracy degrades
	// with the warp, so only the interior is compared.
	for iy := 16; iy <= 48; iy++ {
		for ix := 16; ix <= 48; ix++ {
			sum := bg.At(iy, ix) + hp.At(iy, ix)
			if got := data.At(iy, ix); !almostEq(sum, got, 0.02) {
				t.Fatalf("background + highpass at (%d, %d) = %g, want %g",
					ix, iy, sum, got)
			}
		}
	}
}

// windowMax returns the largest value within the given half-width around a
// map position.
func windowMax(m *mat.Dense, iy, ix, half int) float64 {
	max := math.Inf(-1)
	for y := iy - half; y <= iy+half; y++ {
		for x := ix - half; x <= ix+half; x++ {
			if v := m.At(y, x); v > max {
				max = v
			}
		}
	}
	return max
}

func TestFilterWidthGrowsWithRadius(t *testing.T) {
	xs := span(-32, 32, 65)
	data := mat.NewDense(65, 65, nil)
	data.Set(32, 40, 1) // r = 8
	data.Set(32, 56, 1) // r = 24

	bg, err := Filter(data, xs, xs, 0.5, 2, Background())
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}

	// With gamma > 0 the effective kernel grows with radius, so the impulse
	// far from the origin is blurred down harder than the close one.
	near := windowMax(bg, 32, 40, 3)
	far := windowMax(bg, 32, 56, 3)
	if near <= far {
		t.Errorf("near-impulse peak %g does not exceed far-impulse peak %g",
			near, far)
	}
	if near < 0.01 {
		t.Errorf("near-impulse peak %g is implausibly small", near)
	}
}

func TestFilterCenteredImpulse(t *testing.T) {
	xs := span(-32, 32, 65)
	data := mat.NewDense(65, 65, nil)
	data.Set(32, 32, 1)

	bg, err := Filter(
		data, xs, xs, 0.5, 3, Kind(interpolate.KindCubic), Background(),
	)
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}

	peak, py, px := math.Inf(-1), -1, -1
	for iy := 0; iy < 65; iy++ {
		for ix := 0; ix < 65; ix++ {
			if v := bg.At(iy, ix); v > peak {
				peak, py, px = v, iy, ix
			}
		}
	}

	if py != 32 || px != 32 {
		t.Errorf("peak at (%d, %d), want the impulse location (32, 32)",
			px, py)
	}
	if peak <= 0 || peak >= 1 {
		t.Errorf("peak amplitude %g, want attenuated within (0, 1)", peak)
	}

	// The grid, the warp, and the kernel are all symmetric about the center.
	if !almostEq(bg.At(32, 31), bg.At(32, 33), 1e-9) {
		t.Errorf("background is not x-symmetric: %g vs %g",
			bg.At(32, 31), bg.At(32, 33))
	}
	if !almostEq(bg.At(31, 32), bg.At(33, 32), 1e-9) {
		t.Errorf("background is not y-symmetric: %g vs %g",
			bg.At(31, 32), bg.At(33, 32))
	}
}

func TestFilterValidation(t *testing.T) {
	xs := span(-16, 16, 33)
	data := bumpMap(xs, xs, 5)

	badAxis := span(-16, 16, 33)
	badAxis[5] = badAxis[4]
	nanAxis := span(-16, 16, 33)
	nanAxis[0] = math.NaN()

	table := []struct {
		name  string
		x, y  []float64
		gamma float64
		width float64
		opts  []Option
		want  error
	}{
		{"zero width", xs, xs, 0.5, 0, nil, ErrInvalidParameter},
		{"negative width", xs, xs, 0.5, -3, nil, ErrInvalidParameter},
		{"gamma at -1", xs, xs, -1, 2, nil, ErrInvalidParameter},
		{"unknown kind", xs, xs, 0.5, 2,
			[]Option{Kind(interpolate.Kind("quadratic"))}, ErrInvalidParameter},
		{"short x-axis", span(-16, 16, 5), xs, 0.5, 2, nil, ErrShapeMismatch},
		{"short y-axis", xs, span(-16, 16, 40), 0.5, 2, nil, ErrShapeMismatch},
		{"non-monotonic axis", badAxis, xs, 0.5, 2, nil, ErrInvalidAxis},
		{"NaN in axis", xs, nanAxis, 0.5, 2, nil, ErrInvalidAxis},
		{"one-point axis", []float64{0}, xs, 0.5, 2, nil, ErrInvalidAxis},
	}

	for _, test := range table {
		_, err := Filter(data, test.x, test.y, test.gamma, test.width,
			test.opts...)
		if !errors.Is(err, test.want) {
			t.Errorf("%s: got error %v, want %v", test.name, err, test.want)
		}
	}
}

func TestFilterDeterminism(t *testing.T) {
	xs := span(-16, 16, 33)
	data := bumpMap(xs, xs, 5)

	a, err := Filter(data, xs, xs, 0.5, 2)
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	b, err := Filter(data, xs, xs, 0.5, 2)
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if !mat.Equal(a, b) {
		t.Errorf("repeated calls with identical inputs differ")
	}
}

func TestFilterInputNotMutated(t *testing.T) {
	xs := span(-16, 16, 33)
	data := bumpMap(xs, xs, 5)
	orig := mat.DenseCopyOf(data)
	xcopy := append([]float64{}, xs...)

	if _, err := Filter(data, xs, xs, 0.5, 2); err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if !mat.Equal(data, orig) {
		t.Errorf("input map was mutated")
	}
	for i := range xs {
		if xs[i] != xcopy[i] {
			t.Fatalf("input axis was mutated at %d", i)
		}
	}
}

func TestFilterOriginDegeneracy(t *testing.T) {
	xs := span(-16, 16, 33)
	data := bumpMap(xs, xs, 5)

	// A negative exponent is undefined at r = 0; the NaN propagates through
	// the output by default.
	out, err := Filter(data, xs, xs, -0.5, 2, Background())
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if !math.IsNaN(out.At(16, 16)) {
		t.Errorf("origin value is %g, want NaN for gamma < 0", out.At(16, 16))
	}

	// Clamping the radius keeps the whole map finite.
	out, err = Filter(data, xs, xs, -0.5, 2, Background(), ClampRadius(1e-6))
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	for iy := 0; iy < 33; iy++ {
		for ix := 0; ix < 33; ix++ {
			if v := out.At(iy, ix); math.IsNaN(v) || math.IsInf(v, 0) {
				t.Fatalf("non-finite value %g at (%d, %d) despite the "+
					"radius clamp", v, ix, iy)
			}
		}
	}
}

func TestFilterCustomSmoother(t *testing.T) {
	xs := span(-16, 16, 33)
	data := bumpMap(xs, xs, 5)

	identity := func(vals []float64, nx int, width float64) []float64 {
		return append([]float64{}, vals...)
	}
	out, err := Filter(
		data, xs, xs, 0, 2, Background(), WithSmoother(identity),
	)
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if !mat.EqualApprox(out, data, 1e-12) {
		t.Errorf("identity smoother with zero stretch does not round-trip")
	}

	tophat := func(vals []float64, nx int, width float64) []float64 {
		return filter.NewTophatKernel(7).ConvolveGrid(
			vals, nx, filter.Reflection,
		)
	}
	out, err = Filter(data, xs, xs, 0, 2, Background(), WithSmoother(tophat))
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	want := filter.NewTophatKernel(7).ConvolveGrid(
		denseVals(data), 33, filter.Reflection,
	)
	for iy := 0; iy < 33; iy++ {
		for ix := 0; ix < 33; ix++ {
			if got := out.At(iy, ix); !almostEq(got, want[iy*33+ix], 1e-10) {
				t.Fatalf("tophat background(%d, %d) = %g, want %g",
					ix, iy, got, want[iy*33+ix])
			}
		}
	}
}

func TestFilterCustomInterpolant(t *testing.T) {
	xs := span(-16, 16, 33)
	data := bumpMap(xs, xs, 5)

	calls := 0
	build := func(
		kind interpolate.Kind, gx, gy, vals []float64,
	) (interpolate.BiInterpolator, error) {
		calls++
		return interpolate.NewBi(kind, gx, gy, vals)
	}

	if _, err := Filter(data, xs, xs, 0.5, 2, WithInterpolant(build)); err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if calls != 2 {
		t.Errorf("interpolant builder called %d times, want 2", calls)
	}
}

func TestFilterCustomKind(t *testing.T) {
	xs := span(-16, 16, 33)
	data := bumpMap(xs, xs, 5)

	// A custom builder accepts whatever kinds it wants, so the kind check
	// must not reject names outside the built-in set.
	build := func(
		kind interpolate.Kind, gx, gy, vals []float64,
	) (interpolate.BiInterpolator, error) {
		return interpolate.NewBiLinear(gx, gy, vals), nil
	}

	_, err := Filter(
		data, xs, xs, 0.5, 2,
		Kind(interpolate.Kind("nearest")), WithInterpolant(build),
	)
	if err != nil {
		t.Errorf("custom builder with its own kind failed: %v", err)
	}
}

func TestFilterBoundaryOption(t *testing.T) {
	xs := span(-16, 16, 33)
	ones := mat.NewDense(33, 33, nil)
	for iy := 0; iy < 33; iy++ {
		for ix := 0; ix < 33; ix++ {
			ones.Set(iy, ix, 1)
		}
	}

	reflect, err := Filter(ones, xs, xs, 0, 2, Background())
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if !almostEq(reflect.At(0, 0), 1, 1e-12) {
		t.Errorf("Reflection corner = %g, want 1", reflect.At(0, 0))
	}

	zero, err := Filter(
		ones, xs, xs, 0, 2, Background(), Boundary(filter.ZeroPad),
	)
	if err != nil {
		t.Fatalf("Filter returned error: %v", err)
	}
	if zero.At(0, 0) >= 1 {
		t.Errorf("ZeroPad corner = %g, want < 1", zero.At(0, 0))
	}
	if !almostEq(zero.At(16, 16), 1, 1e-12) {
		t.Errorf("ZeroPad interior = %g, want 1", zero.At(16, 16))
	}
}

func BenchmarkFilter65(b *testing.B) {
	xs := span(-32, 32, 65)
	data := bumpMap(xs, xs, 10)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := Filter(data, xs, xs, 0.5, 2); err != nil {
			b.Fatal(err)
		}
	}
}
