package path

import "github.com/mikenye/gridpoly/point"

// CommandKind discriminates the drawing commands a Command carries.
type CommandKind uint8

const (
	// MoveTo starts a new sub-path at a point, without drawing.
	MoveTo CommandKind = iota
	// LineTo draws a straight line from the current point to a point.
	LineTo
	// SplineTo draws a quadratic Bezier curve from the current point through
	// a control point to an end point.
	SplineTo
)

// String returns the command kind's name.
func (k CommandKind) String() string {
	switch k {
	case MoveTo:
		return "MoveTo"
	case LineTo:
		return "LineTo"
	case SplineTo:
		return "SplineTo"
	default:
		return "Unknown"
	}
}

// Command is one instruction in a drawing sequence. To is always populated;
// Control is only meaningful for SplineTo.
type Command struct {
	Kind    CommandKind
	Control point.Point
	To      point.Point
}

// NewMoveTo returns a MoveTo command to (x, y).
func NewMoveTo(x, y float64) Command {
	return Command{Kind: MoveTo, To: point.New(x, y)}
}

// NewLineTo returns a LineTo command to (x, y).
func NewLineTo(x, y float64) Command {
	return Command{Kind: LineTo, To: point.New(x, y)}
}

// NewSplineTo returns a SplineTo command through control point (cx, cy) to
// (x, y).
func NewSplineTo(cx, cy, x, y float64) Command {
	return Command{Kind: SplineTo, Control: point.New(cx, cy), To: point.New(x, y)}
}
