package path

import (
	"fmt"

	"github.com/mikenye/gridpoly/point"
)

// Canvas is a builder for a drawing command sequence. It tracks the
// current point and the start of the open sub-path so Close can return to
// it, and rejects commands that would produce a degenerate stroke.
type Canvas struct {
	gridsize   float64
	cmds       []Command
	current    point.Point
	subpathAt  point.Point
	haveCurrent bool
}

// NewCanvas returns a Canvas for gridsize, which must be positive. The
// Canvas records commands in real coordinates; it does not quantize them.
func NewCanvas(gridsize float64) (*Canvas, error) {
	if gridsize <= 0 {
		return nil, fmt.Errorf("%w: gridsize must be positive, got %v", ErrInvalidInput, gridsize)
	}
	return &Canvas{gridsize: gridsize}, nil
}

// MoveTo starts a new sub-path at (x, y).
func (c *Canvas) MoveTo(x, y float64) error {
	p := point.New(x, y)
	c.cmds = append(c.cmds, Command{Kind: MoveTo, To: p})
	c.current = p
	c.subpathAt = p
	c.haveCurrent = true
	return nil
}

// LineTo draws a straight line from the current point to (x, y). It is an
// error to call LineTo before any MoveTo.
func (c *Canvas) LineTo(x, y float64) error {
	if !c.haveCurrent {
		return fmt.Errorf("%w: LineTo before MoveTo", ErrInvalidInput)
	}
	p := point.New(x, y)
	if p.Eq(c.current) {
		return fmt.Errorf("%w: LineTo to the current point produces a degenerate stroke", ErrInvalidInput)
	}
	c.cmds = append(c.cmds, Command{Kind: LineTo, To: p})
	c.current = p
	return nil
}

// SplineTo draws a quadratic Bezier from the current point through
// (cx, cy) to (x, y). It is an error to call SplineTo before any MoveTo.
func (c *Canvas) SplineTo(cx, cy, x, y float64) error {
	if !c.haveCurrent {
		return fmt.Errorf("%w: SplineTo before MoveTo", ErrInvalidInput)
	}
	ctrl := point.New(cx, cy)
	end := point.New(x, y)
	if end.Eq(c.current) && ctrl.Eq(c.current) {
		return fmt.Errorf("%w: SplineTo collapses to a point", ErrInvalidInput)
	}
	c.cmds = append(c.cmds, Command{Kind: SplineTo, Control: ctrl, To: end})
	c.current = end
	return nil
}

// Close draws a straight line back to the start of the current sub-path.
// It is an error to call Close before any MoveTo.
func (c *Canvas) Close() error {
	if !c.haveCurrent {
		return fmt.Errorf("%w: Close before MoveTo", ErrInvalidInput)
	}
	if c.current.Eq(c.subpathAt) {
		return nil
	}
	c.cmds = append(c.cmds, Command{Kind: LineTo, To: c.subpathAt})
	c.current = c.subpathAt
	return nil
}

// Result returns the accumulated command sequence.
func (c *Canvas) Result() []Command {
	return c.cmds
}
