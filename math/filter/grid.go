package filter

import (
	"fmt"
)

// ConvolveGrid convolves every row and then every column of a row-major,
// nx-wide grid with the kernel, which applies its separable 2D version.
// Boundary conditions are applied per-axis.
//
// Panics if len(vals) is not a multiple of nx.
func (k *Kernel) ConvolveGrid(vals []float64, nx int, b BoundaryCondition) []float64 {
	if nx <= 0 || len(vals)%nx != 0 {
		panic(fmt.Sprintf(
			"Grid given to ConvolveGrid has len(vals) = %d, but nx = %d.",
			len(vals), nx,
		))
	}
	ny := len(vals) / nx

	out := make([]float64, len(vals))
	for iy := 0; iy < ny; iy++ {
		k.ConvolveAt(vals[iy*nx:(iy+1)*nx], b, out[iy*nx:(iy+1)*nx])
	}

	col, colOut := make([]float64, ny), make([]float64, ny)
	for ix := 0; ix < nx; ix++ {
		for iy := 0; iy < ny; iy++ {
			col[iy] = out[iy*nx+ix]
		}
		k.ConvolveAt(col, b, colOut)
		for iy := 0; iy < ny; iy++ {
			out[iy*nx+ix] = colOut[iy]
		}
	}

	return out
}

// GaussianGrid smooths a row-major, nx-wide grid with a Gaussian of standard
// deviation sigma, in pixel units. The kernel is truncated at four standard
// deviations on each side, matching the usual ndimage convention.
func GaussianGrid(vals []float64, nx int, sigma float64, b BoundaryCondition) []float64 {
	radius := int(4*sigma + 0.5)
	k := NewGaussianKernel(2*radius+1, sigma, 1)
	return k.ConvolveGrid(vals, nx, b)
}
