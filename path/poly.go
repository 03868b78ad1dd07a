// Package path defines the input/output polygon representation the sweep
// engine exchanges with callers: floating-point path commands on the way
// in, and y-monotone stroke lists on the way out.
package path

import (
	"errors"
	"github.com/mikenye/gridpoly/grid"
	"github.com/mikenye/gridpoly/wind"
)

// ErrInvalidInput is returned when a Poly or a command sequence violates a
// structural invariant: too few points, a command out of sequence, or a
// non-finite coordinate.
var ErrInvalidInput = errors.New("path: invalid input")

// Stroke is a y-monotone run of at least two grid points in ascending y
// order, tagged with the original path direction it carries and the edge
// style of the boundary it traces.
//
// Invariant: len(Points) >= 2, Points[i].Y <= Points[i+1].Y for every i, and
// consecutive points differ.
type Stroke struct {
	Points []grid.Point
	Dir    grid.Direction
	Style  *wind.EdgeStyle
}

// Validate checks Stroke's structural invariants.
func (s *Stroke) Validate() error {
	if len(s.Points) < 2 {
		return ErrInvalidInput
	}
	for i := 0; i < len(s.Points)-1; i++ {
		p, q := s.Points[i], s.Points[i+1]
		if q.Y < p.Y {
			return ErrInvalidInput
		}
		if p.Eq(q) {
			return ErrInvalidInput
		}
	}
	return nil
}

// Upper returns the stroke's first (topmost) point.
func (s *Stroke) Upper() grid.Point { return s.Points[0] }

// Lower returns the stroke's last (bottommost) point.
func (s *Stroke) Lower() grid.Point { return s.Points[len(s.Points)-1] }

// Poly is a polygon expressed as a flat list of y-monotone strokes: the
// output shape of every boolean operation (inputs are Command sequences,
// converted by FromFill). Gridsize
// is the quantum the strokes' grid coordinates were snapped to, needed to
// convert them back to real coordinates in ToLines.
type Poly struct {
	Strokes  []*Stroke
	Gridsize float64
}

// NewPoly returns an empty Poly quantized at gridsize.
func NewPoly(gridsize float64) *Poly {
	return &Poly{Gridsize: gridsize}
}

// AddStroke appends stroke to the polygon.
func (p *Poly) AddStroke(stroke *Stroke) {
	p.Strokes = append(p.Strokes, stroke)
}

// Validate checks every stroke's structural invariants.
func (p *Poly) Validate() error {
	for _, s := range p.Strokes {
		if err := s.Validate(); err != nil {
			return err
		}
	}
	return nil
}
