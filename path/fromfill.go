package path

import (
	"errors"
	"fmt"
	"math"

	"github.com/mikenye/gridpoly/grid"
	"github.com/mikenye/gridpoly/point"
)

// FromFill converts a drawing command sequence into the directed grid
// segments that bound a filled region, for use as one polygon's input to
// the sweep driver. Splines are flattened per bezierSegmentCount before
// quantization; zero-length segments that result from quantization are
// silently dropped, per spec. Horizontal edges are dropped as well: no
// segment or event is produced for them. A NaN or infinite coordinate is
// rejected with ErrInvalidInput.
func FromFill(cmds []Command, gridsize float64, polygonIndex int) ([]*grid.Segment, error) {
	if gridsize <= 0 {
		return nil, fmt.Errorf("%w: gridsize must be positive, got %v", ErrInvalidInput, gridsize)
	}

	var segments []*grid.Segment
	var current point.Point
	var haveCurrent bool

	emit := func(from, to point.Point) error {
		a := QuantizePoint(from, gridsize)
		b := QuantizePoint(to, gridsize)
		if a.Eq(b) {
			return nil
		}
		seg, err := grid.NewSegment(a, b, polygonIndex)
		if err != nil {
			if errors.Is(err, grid.ErrHorizontalSegment) {
				return nil
			}
			return err
		}
		segments = append(segments, seg)
		return nil
	}

	for _, cmd := range cmds {
		tx, ty := cmd.To.Coordinates()
		cx, cy := cmd.Control.Coordinates()
		for _, v := range []float64{tx, ty, cx, cy} {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return nil, fmt.Errorf("%w: non-finite coordinate in %v command", ErrInvalidInput, cmd.Kind)
			}
		}
		switch cmd.Kind {
		case MoveTo:
			current = cmd.To
			haveCurrent = true
		case LineTo:
			if !haveCurrent {
				return nil, fmt.Errorf("%w: LineTo before MoveTo", ErrInvalidInput)
			}
			if err := emit(current, cmd.To); err != nil {
				return nil, err
			}
			current = cmd.To
		case SplineTo:
			if !haveCurrent {
				return nil, fmt.Errorf("%w: SplineTo before MoveTo", ErrInvalidInput)
			}
			n := bezierSegmentCount(current, cmd.Control, cmd.To)
			pts := flattenQuadratic(current, cmd.Control, cmd.To, n)
			prev := current
			for _, p := range pts {
				if err := emit(prev, p); err != nil {
					return nil, err
				}
				prev = p
			}
			current = cmd.To
		default:
			return nil, fmt.Errorf("%w: unrecognized command kind %v", ErrInvalidInput, cmd.Kind)
		}
	}

	return segments, nil
}
