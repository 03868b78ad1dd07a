package path

import (
	"math"

	"github.com/mikenye/gridpoly/grid"
	"github.com/mikenye/gridpoly/point"
)

// Quantize maps a real-world coordinate onto the grid lattice defined by
// gridsize: floor(coord/gridsize + 0.5), so halves round toward +inf,
// clamped to the 26-bit grid range.
func Quantize(coord, gridsize float64) int32 {
	return grid.ClampCoord(int64(math.Floor(coord/gridsize + 0.5)))
}

// QuantizePoint quantizes both coordinates of p onto the gridsize lattice.
func QuantizePoint(p point.Point, gridsize float64) grid.Point {
	x, y := p.Coordinates()
	return grid.Point{X: Quantize(x, gridsize), Y: Quantize(y, gridsize)}
}
