package residual

import (
	"math"
	"math/rand"
	"testing"
)

func TestRadialStretchRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(0))
	gammas := []float64{0, 0.25, 0.5, 1, 2, -0.5}

	for _, gamma := range gammas {
		st := radialStretch{gamma: gamma}
		for i := 0; i < 100; i++ {
			th := rng.Float64() * 2 * math.Pi
			r := rng.Float64()*40 + 0.01
			x, y := r*math.Cos(th), r*math.Sin(th)

			wx, wy := st.apply(x, y)
			bx, by := st.invert(wx, wy)

			eps := 1e-9 * (math.Abs(x) + math.Abs(y))
			if !almostEq(bx, x, eps) || !almostEq(by, y, eps) {
				t.Errorf("gamma = %g: invert(apply(%g, %g)) = (%g, %g)",
					gamma, x, y, bx, by)
			}
		}
	}
}

func TestRadialStretchIdentity(t *testing.T) {
	st := radialStretch{gamma: 0}
	table := [][2]float64{{0, 0}, {1, 2}, {-3.5, 0.25}, {100, -100}}
	for i, p := range table {
		wx, wy := st.apply(p[0], p[1])
		if wx != p[0] || wy != p[1] {
			t.Errorf("%d) apply(%g, %g) = (%g, %g), want identity",
				i+1, p[0], p[1], wx, wy)
		}
	}
}

func TestRadialStretchOrigin(t *testing.T) {
	// The stretch factor is defined at r = 0 for gamma >= 0 and undefined
	// below it.
	st := radialStretch{gamma: 0.5}
	if wx, wy := st.apply(0, 0); wx != 0 || wy != 0 {
		t.Errorf("apply(0, 0) = (%g, %g), want (0, 0)", wx, wy)
	}
	if bx, by := st.invert(0, 0); bx != 0 || by != 0 {
		t.Errorf("invert(0, 0) = (%g, %g), want (0, 0)", bx, by)
	}

	st = radialStretch{gamma: -0.5}
	if wx, _ := st.apply(0, 0); !math.IsNaN(wx) {
		t.Errorf("apply(0, 0) with gamma = -0.5 = %g, want NaN", wx)
	}
}

func TestRadialStretchClamp(t *testing.T) {
	st := radialStretch{gamma: -0.5, eps: 1e-6}

	wx, wy := st.apply(0, 0)
	if math.IsNaN(wx) || math.IsNaN(wy) {
		t.Errorf("clamped apply(0, 0) is NaN")
	}

	// Inside the clamped core the warp is a constant scaling, and the
	// inverse undoes it exactly.
	x := 1e-8
	wx, wy = st.apply(x, 0)
	bx, by := st.invert(wx, wy)
	if !almostEq(bx, x, 1e-20) || by != 0 {
		t.Errorf("clamped invert(apply(%g, 0)) = (%g, %g)", x, bx, by)
	}
}
