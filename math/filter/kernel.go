/*package filter implements fixed-width smoothing kernels and their
application to 1D sequences and 2D grids.*/
package filter

import (
	"math"
)

// Kernel is a 1D smoothing kernel corresponding to some smoothing strategy
// and some window width.
type Kernel struct {
	cs     []float64
	center int
}

// BoundaryCondition is a flag representing the rule used when the smoothing
// window extends outside the data range.
//
// Reflection mirrors the sequence about its edges with the edge samples
// repeated, ZeroPad treats everything outside as zero, Extension repeats the
// edge samples, and Periodic wraps around. Reflection is a good default for
// maps without a natural period.
type BoundaryCondition int

const (
	Periodic BoundaryCondition = iota
	Reflection
	ZeroPad
	Extension
)

// Get returns the value in xs that corresponds to the given index for a
// particular choice of boundary conditions. The index may be arbitrarily far
// outside the sequence.
func (b BoundaryCondition) Get(xs []float64, i int) float64 {
	n := len(xs)
	if i >= 0 && i < n {
		return xs[i]
	}
	switch b {
	case Periodic:
		i %= n
		if i < 0 {
			i += n
		}
		return xs[i]
	case Reflection:
		// The extended sequence has period 2n: (c b a | a b c | c b a).
		period := 2 * n
		i %= period
		if i < 0 {
			i += period
		}
		if i >= n {
			i = period - 1 - i
		}
		return xs[i]
	case ZeroPad:
		return 0
	case Extension:
		if i < 0 {
			return xs[0]
		}
		return xs[n-1]
	}
	panic("Impossible")
}

// Convolve convolves a 1D data set with the kernel. Boundary conditions are
// specified with b.
//
// Make sure that xs corresponds to some uniformly-spaced sequence.
func (k *Kernel) Convolve(xs []float64, b BoundaryCondition) []float64 {
	out := make([]float64, len(xs))
	k.ConvolveAt(xs, b, out)
	return out
}

// ConvolveAt convolves a 1D data set with the kernel. Boundary conditions are
// specified with b and the output is written to out.
func (k *Kernel) ConvolveAt(xs []float64, b BoundaryCondition, out []float64) {
	if len(xs) != len(out) {
		panic("Input and output arrays given to ConvolveAt have unequal lengths.")
	}

	n := len(xs)
	nl, nr := k.center, len(k.cs)-1-k.center

	for i := 0; i < n; i++ {
		sum := 0.0
		if i >= nl && i+nr < n {
			for j, c := range k.cs {
				sum += xs[i+j-k.center] * c
			}
		} else {
			for j, c := range k.cs {
				sum += b.Get(xs, i+j-k.center) * c
			}
		}
		out[i] = sum
	}
}

func (k *Kernel) normalize() {
	sum := 0.0
	for _, c := range k.cs {
		sum += c
	}
	for i := range k.cs {
		k.cs[i] /= sum
	}
}

// NewGaussianKernel creates a Gaussian kernel, exp(-(x - x0)^2 / (2 sigma^2)),
// with the given window width, width, and point separation, dx. The
// coefficients are normalized to sum to one.
func NewGaussianKernel(width int, sigma, dx float64) *Kernel {
	if width%2 != 1 {
		panic("Kernel width must be odd.")
	}

	k := new(Kernel)
	k.cs = make([]float64, width)
	k.center = width / 2

	for i := 0; i <= k.center; i++ {
		x := float64(i-k.center) * dx
		k.cs[i] = math.Exp(-x * x / (2 * sigma * sigma))
	}
	// Gaussians are symmetric: no need to compute again.
	for i := k.center + 1; i < len(k.cs); i++ {
		k.cs[i] = k.cs[len(k.cs)-1-i]
	}

	k.normalize()
	return k
}

// NewTophatKernel creates a constant smoothing kernel of the given width.
func NewTophatKernel(width int) *Kernel {
	if width%2 != 1 {
		panic("Kernel width must be odd.")
	}

	k := new(Kernel)
	k.cs = make([]float64, width)
	k.center = width / 2

	for i := range k.cs {
		k.cs[i] = 1
	}

	k.normalize()
	return k
}
