/*plot_residual is a visual check of the expanding-kernel residual filter. It
builds an exponential disk with blobs whose size grows with radius, filters
it, and plots the midplane cut of the input, background, and residual maps.*/
package main

import (
	"math"

	plt "github.com/phil-mansfield/pyplot"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/cmblake/residual"
)

const (
	N     = 129
	Lim   = 32.0
	Gamma = 0.5
	Width = 2.0
)

func blob(data *mat.Dense, xs, ys []float64, x0, y0, sigma, amp float64) {
	for iy, y := range ys {
		for ix, x := range xs {
			dx, dy := x-x0, y-y0
			data.Set(iy, ix, data.At(iy, ix)+
				amp*math.Exp(-(dx*dx+dy*dy)/(2*sigma*sigma)))
		}
	}
}

func row(m *mat.Dense, iy int) []float64 {
	out := make([]float64, N)
	mat.Row(out, iy, m)
	return out
}

func main() {
	xs := floats.Span(make([]float64, N), -Lim, Lim)
	ys := floats.Span(make([]float64, N), -Lim, Lim)

	// An exponential disk with substructure whose scale follows the radius.
	data := mat.NewDense(N, N, nil)
	for iy, y := range ys {
		for ix, x := range xs {
			data.Set(iy, ix, math.Exp(-math.Hypot(x, y)/10))
		}
	}
	for _, r := range []float64{5, 12, 20, 27} {
		blob(data, xs, ys, r, 0, 0.3*math.Sqrt(r), 0.5*math.Exp(-r/10))
	}

	bg, err := residual.Filter(
		data, xs, ys, Gamma, Width, residual.Background(),
	)
	if err != nil {
		panic(err.Error())
	}
	hp, err := residual.Filter(data, xs, ys, Gamma, Width)
	if err != nil {
		panic(err.Error())
	}

	mid := N / 2
	plt.Reset()
	plt.Plot(xs, row(data, mid), "k", plt.Label("Input"), plt.LW(3))
	plt.Plot(xs, row(bg, mid), "b", plt.Label("Background"), plt.LW(3))
	plt.Plot(xs, row(hp, mid), "r", plt.Label("Residual"), plt.LW(3))
	plt.Title("Midplane cut")
	plt.Legend(plt.Loc("upper right"), plt.FrameOn(false))
	plt.Show()
}
