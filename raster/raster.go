// Package raster is a debug oracle, not a renderer: it rasterizes a path
// command sequence to a coverage bitmap under either winding rule, so tests
// can check that an even-odd rasterization of a sweep's input agrees with a
// non-zero rasterization of its output (spec testable property 7), modulo a
// one-pixel dilation tolerance on the input boundary row. Nothing in this
// module renders to a window or file; it exists for the test suite alone.
package raster

import (
	"image"
	"image/color"
	"sort"

	"github.com/mikenye/gridpoly/path"
	"golang.org/x/image/vector"
)

// NonZero rasterizes cmds into a w×h coverage bitmap using a non-zero
// winding fill, delegating directly to x/image/vector's scan converter
// (which is itself a non-zero rasterizer).
func NonZero(cmds []path.Command, w, h int) *image.Alpha {
	r := vector.NewRasterizer(w, h)
	walk(cmds, r.MoveTo, r.LineTo, r.QuadTo)

	img := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(img, img.Bounds(), image.Opaque, image.Point{})
	return img
}

// EvenOdd rasterizes cmds into a w×h coverage bitmap using an even-odd
// fill, sampling each pixel's center against cmds' edge crossings. This is
// computed directly rather than through x/image/vector, since that package
// only implements non-zero winding with no even-odd mode to select.
func EvenOdd(cmds []path.Command, w, h int) *image.Alpha {
	edges := edgesFromCommands(cmds)
	img := image.NewAlpha(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		cy := float64(y) + 0.5
		xs := crossingsAtY(edges, cy)
		for i := 0; i+1 < len(xs); i += 2 {
			x0, x1 := xs[i], xs[i+1]
			for x := 0; x < w; x++ {
				cx := float64(x) + 0.5
				if cx >= x0 && cx < x1 {
					img.SetAlpha(x, y, fullCoverage)
				}
			}
		}
	}
	return img
}

var fullCoverage = color.Alpha{A: 255}

type edge struct {
	x0, y0, x1, y1 float64
}

// edgesFromCommands turns MoveTo/LineTo/SplineTo into straight edges,
// closing each sub-path back to its start (an open sub-path has no fill
// meaning for a scan converter). A SplineTo contributes one straight edge
// to its end point; its control point is ignored.
func edgesFromCommands(cmds []path.Command) []edge {
	var edges []edge
	var cur, start float64x2
	var have bool

	closeSubpath := func() {
		if have && cur != start {
			edges = append(edges, edge{cur.x, cur.y, start.x, start.y})
		}
	}

	for _, cmd := range cmds {
		x, y := cmd.To.Coordinates()
		switch cmd.Kind {
		case path.MoveTo:
			closeSubpath()
			cur = float64x2{x, y}
			start = cur
			have = true
		case path.LineTo:
			edges = append(edges, edge{cur.x, cur.y, x, y})
			cur = float64x2{x, y}
		case path.SplineTo:
			edges = append(edges, edge{cur.x, cur.y, x, y})
			cur = float64x2{x, y}
		}
	}
	closeSubpath()
	return edges
}

type float64x2 struct{ x, y float64 }

// crossingsAtY returns the sorted x-coordinates at which edges cross
// horizontal line y, duplicated per even-odd pairing (span [xs[0],xs[1]]
// filled, [xs[2],xs[3]] filled, and so on).
func crossingsAtY(edges []edge, y float64) []float64 {
	var xs []float64
	for _, e := range edges {
		y0, y1 := e.y0, e.y1
		if y0 == y1 {
			continue
		}
		lo, hi := y0, y1
		if lo > hi {
			lo, hi = hi, lo
		}
		if y < lo || y >= hi {
			continue
		}
		t := (y - e.y0) / (e.y1 - e.y0)
		xs = append(xs, e.x0+t*(e.x1-e.x0))
	}
	sort.Float64s(xs)
	return xs
}

// walk replays cmds against vector.Rasterizer's float32 MoveTo/LineTo;
// SplineTo is passed straight to quadTo since the rasterizer accepts
// quadratics natively.
func walk(cmds []path.Command, moveTo, lineTo func(x, y float32), quadTo func(cx, cy, x, y float32)) {
	for _, cmd := range cmds {
		x, y := cmd.To.Coordinates()
		switch cmd.Kind {
		case path.MoveTo:
			moveTo(float32(x), float32(y))
		case path.LineTo:
			lineTo(float32(x), float32(y))
		case path.SplineTo:
			cx, cy := cmd.Control.Coordinates()
			quadTo(float32(cx), float32(cy), float32(x), float32(y))
		}
	}
}

// Equal reports whether a and b agree at every pixel once each is dilated
// by tolerance pixels: a pixel set in a is allowed to be unset in b as long
// as some pixel within tolerance of it in b is set, and vice versa. A
// tolerance of 0 requires an exact match.
func Equal(a, b *image.Alpha, tolerance int) bool {
	bounds := a.Bounds()
	if bounds != b.Bounds() {
		return false
	}
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			av := set(a, x, y)
			bv := set(b, x, y)
			if av == bv {
				continue
			}
			if av && !nearSet(b, x, y, tolerance) {
				return false
			}
			if bv && !nearSet(a, x, y, tolerance) {
				return false
			}
		}
	}
	return true
}

func set(img *image.Alpha, x, y int) bool {
	return img.AlphaAt(x, y).A > 0
}

func nearSet(img *image.Alpha, x, y, tolerance int) bool {
	for dy := -tolerance; dy <= tolerance; dy++ {
		for dx := -tolerance; dx <= tolerance; dx++ {
			if set(img, x+dx, y+dy) {
				return true
			}
		}
	}
	return false
}
