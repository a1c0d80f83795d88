package interpolate

// searcher locates the interval containing a query point in a strictly
// monotonic sequence. Uniform sequences are located in O(1), everything else
// in O(log n) with an O(1) guess for nearly uniform spacing.
type searcher struct {
	xs          []float64
	x0, dx, lim float64
	n           int
	unif, incr  bool
}

func (s *searcher) init(xs []float64) {
	s.xs = xs
	s.x0 = xs[0]
	s.lim = xs[len(xs)-1]
	s.dx = (s.lim - s.x0) / float64(len(xs)-1)
	s.n = len(xs)
	s.unif = uniformSpacing(xs, s.x0, s.dx)
	s.incr = s.dx > 0
}

// uniformSpacing reports whether xs is exactly the sequence x0 + i*dx. Axes
// built by stepping a fixed increment satisfy this, and lookups on them can
// skip the binary search.
func uniformSpacing(xs []float64, x0, dx float64) bool {
	for i := range xs {
		if xs[i] != x0+float64(i)*dx {
			return false
		}
	}
	return true
}

// clamp clips x into the coordinate range covered by the searcher. NaN falls
// through unchanged.
func (s *searcher) clamp(x float64) float64 {
	lo, hi := s.x0, s.lim
	if !s.incr {
		lo, hi = hi, lo
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}

// search returns the index of the interval containing x. x must already be
// inside the covered range.
func (s *searcher) search(x float64) int {
	if s.unif {
		idx := int((x - s.x0) / s.dx)
		if idx < 0 {
			idx = 0
		}
		if idx >= s.n-1 {
			idx = s.n - 2
		}
		return idx
	}

	// Guess under the assumption of uniform spacing.
	guess := int((x - s.xs[0]) / s.dx)
	if guess >= 0 && guess < len(s.xs)-1 &&
		(s.xs[guess] <= x == s.incr) &&
		(s.xs[guess+1] >= x == s.incr) {

		return guess
	}

	// Binary search.
	lo, hi := 0, s.n-1
	for hi-lo > 1 {
		mid := (lo + hi) / 2
		if s.incr == (x >= s.xs[mid]) {
			lo = mid
		} else {
			hi = mid
		}
	}

	return lo
}

func (s *searcher) val(i int) float64 {
	return s.xs[i]
}

// clampRange clips x into the closed interval spanned by a strictly monotonic
// sequence. NaN falls through unchanged.
func clampRange(xs []float64, x float64) float64 {
	lo, hi := xs[0], xs[len(xs)-1]
	if lo > hi {
		lo, hi = hi, lo
	}
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
