package sweep

import (
	"github.com/mikenye/gridpoly/grid"
	"github.com/mikenye/gridpoly/path"
	"github.com/mikenye/gridpoly/wind"
)

// outputBuilder accumulates boundary sub-segments emitted during the
// sweep into directed, y-monotone strokes: one open stroke per active
// segment currently contributing to the output boundary, per spec.md
// §4.6's stroke lifecycle (unborn -> open -> sealed).
type outputBuilder struct {
	open map[*grid.Segment]*path.Stroke
	poly *path.Poly
}

func newOutputBuilder(gridsize float64) *outputBuilder {
	return &outputBuilder{
		open: make(map[*grid.Segment]*path.Stroke),
		poly: path.NewPoly(gridsize),
	}
}

// emit appends the boundary sub-segment (p1 -> p2) produced by segment s
// to s's open stroke, extending it when the previous emission ended at p1
// with the same edge style, or sealing the old stroke and starting a new
// one otherwise.
func (b *outputBuilder) emit(s *grid.Segment, p1, p2 grid.Point, style *wind.EdgeStyle) {
	stroke := b.open[s]
	if stroke != nil && stroke.Style == style && stroke.Points[len(stroke.Points)-1].Eq(p1) {
		stroke.Points = append(stroke.Points, p2)
		return
	}
	if stroke != nil {
		b.seal(s)
	}
	b.open[s] = &path.Stroke{
		Points: []grid.Point{p1, p2},
		Dir:    s.Dir,
		Style:  style,
	}
}

// migrate transfers old's open stroke, if any, to next's identity. Called
// by driver.retarget alongside its cursor migration, since emit keys open
// strokes by segment identity and retarget always swaps in a new Segment
// value (grid.Segment is immutable) for the same logical edge.
func (b *outputBuilder) migrate(old, next *grid.Segment) {
	stroke, ok := b.open[old]
	if !ok {
		return
	}
	delete(b.open, old)
	b.open[next] = stroke
}

// seal finalizes s's open stroke onto the output polygon, if one is open.
func (b *outputBuilder) seal(s *grid.Segment) {
	stroke, ok := b.open[s]
	if !ok {
		return
	}
	delete(b.open, s)
	if len(stroke.Points) >= 2 {
		b.poly.AddStroke(stroke)
	}
}

// sealAll finalizes every still-open stroke, called once the sweep's
// event queue is drained.
func (b *outputBuilder) sealAll() {
	for s := range b.open {
		b.seal(s)
	}
}

func (b *outputBuilder) result() *path.Poly {
	return b.poly
}
