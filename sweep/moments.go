package sweep

import "github.com/mikenye/gridpoly/grid"

// Moments accumulates the area and the 1st/2nd x-moments of the filled
// region swept so far, in grid units; Finalize rescales them by the
// appropriate power of gridsize.
type Moments struct {
	Area     float64
	MomentX  float64
	MomentX2 float64
}

// xAt returns the x coordinate of s's line at y, as a real number (not
// rounded to the grid): the moments accumulator integrates the exact
// trapezoid, not its grid-snapped boundary.
func xAt(s *grid.Segment, y int32) float64 {
	return float64(s.K+s.DeltaX*int64(y)) / float64(s.DeltaY)
}

// powerSum returns dy * sum_{k=0}^{n} x0^(n-k) * x1^k / (n+1), the exact
// integral of x(y)^n over an interval of length dy where x is linear in y
// with endpoint values x0 and x1.
func powerSum(x0, x1, dy float64, n int) float64 {
	sum := 0.0
	for k := 0; k <= n; k++ {
		sum += pow(x0, n-k) * pow(x1, k)
	}
	return sum * dy / float64(n+1)
}

func pow(x float64, n int) float64 {
	r := 1.0
	for i := 0; i < n; i++ {
		r *= x
	}
	return r
}

// accumulateTrapezoid adds the contribution of the filled strip between
// segments l (left) and r (right) over the scanline interval [y0, y1] to
// m.
func (m *Moments) accumulateTrapezoid(l, r *grid.Segment, y0, y1 int32) {
	if y1 <= y0 {
		return
	}
	dy := float64(y1 - y0)
	xL0, xL1 := xAt(l, y0), xAt(l, y1)
	xR0, xR1 := xAt(r, y0), xAt(r, y1)

	m.Area += powerSum(xR0, xR1, dy, 1) - powerSum(xL0, xL1, dy, 1)
	m.MomentX += (powerSum(xR0, xR1, dy, 2) - powerSum(xL0, xL1, dy, 2)) / 2
	m.MomentX2 += (powerSum(xR0, xR1, dy, 3) - powerSum(xL0, xL1, dy, 3)) / 3
}

// Finalize rescales accumulated moments by the powers of gridsize they
// were computed in grid units without: area by g^2, the x-moment by g^3,
// the x^2-moment by g^4 (one extra power of g per coordinate converted
// from grid units to real units, over one x factor and one y factor for
// area, two x factors and one y factor for the x-moment, and three x
// factors and one y factor for the x^2-moment).
func (m Moments) Finalize(gridsize float64) Moments {
	g2 := gridsize * gridsize
	return Moments{
		Area:     m.Area * g2,
		MomentX:  m.MomentX * g2 * gridsize,
		MomentX2: m.MomentX2 * g2 * gridsize * gridsize,
	}
}
