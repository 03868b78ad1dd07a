package path

import (
	"math"

	"github.com/mikenye/gridpoly/point"
)

// bezierSegmentCount returns the number of line segments a quadratic
// spline from start through control to end should be flattened into:
// ceil(sqrt(|dx^2| + |dy^2|) * 2.4), at least 1.
func bezierSegmentCount(start, control, end point.Point) int {
	sx, sy := start.Coordinates()
	ex, ey := end.Coordinates()
	dx := ex - sx
	dy := ey - sy
	n := int(math.Ceil(math.Sqrt(math.Abs(dx*dx)+math.Abs(dy*dy)) * 2.4))
	if n < 1 {
		n = 1
	}
	return n
}

// flattenQuadratic subdivides the quadratic Bezier curve (start, control,
// end) into n straight segments and returns the n points that end them,
// excluding start and ending with end.
func flattenQuadratic(start, control, end point.Point, n int) []point.Point {
	pts := make([]point.Point, 0, n)
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		pts = append(pts, quadraticAt(start, control, end, t))
	}
	return pts
}

func quadraticAt(start, control, end point.Point, t float64) point.Point {
	u := 1 - t
	sx, sy := start.Coordinates()
	cx, cy := control.Coordinates()
	ex, ey := end.Coordinates()
	x := u*u*sx + 2*u*t*cx + t*t*ex
	y := u*u*sy + 2*u*t*cy + t*t*ey
	return point.New(x, y)
}
