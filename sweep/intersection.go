package sweep

import (
	"math"

	"github.com/mikenye/gridpoly/grid"
)

// Intersection decides whether segments a and b cross strictly below the
// current scanline y, and if so returns the crossing point rounded to the
// nearest grid point. Parallel segments (det == 0, including exact
// collinear overlaps) never report a crossing here — collinear overlap is
// a distinct case the sweep driver's START/END bookkeeping handles
// directly, per spec.md §4.3.
//
// The line-equation coefficients are exact 64-bit integers, so the
// determinant test and the decision of "is this point strictly below y"
// are exact; only the final division that locates the crossing within its
// grid cell is a floating-point rounding step, unavoidable since the true
// crossing is almost never itself a lattice point.
func Intersection(a, b *grid.Segment, y int32) (p grid.Point, crosses bool) {
	det := a.DeltaX*b.DeltaY - b.DeltaX*a.DeltaY
	if det == 0 {
		return grid.Point{}, false
	}

	xNum := a.DeltaX*b.K - b.DeltaX*a.K
	yNum := a.DeltaY*b.K - b.DeltaY*a.K

	xf := float64(xNum) / float64(det)
	yf := float64(yNum) / float64(det)

	cy := grid.ClampCoord(int64(math.Floor(yf + 0.5)))
	if cy <= y {
		return grid.Point{}, false
	}
	maxY := a.B.Y
	if b.B.Y < maxY {
		maxY = b.B.Y
	}
	if cy > maxY {
		return grid.Point{}, false
	}

	cx := grid.ClampCoord(int64(math.Floor(xf + 0.5)))
	return grid.Point{X: cx, Y: cy}, true
}
