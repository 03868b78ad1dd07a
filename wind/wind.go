// Package wind implements the pluggable winding rules the sweep driver
// folds across an arrangement's edges to decide which sub-segments bound a
// filled region: even-odd and non-zero self-normalization, and binary
// intersect/union.
//
// A [Rule] is a triple of pure functions — Start, Add, Diff — matching the
// {start, add, diff} capability interface called for in place of a
// function-pointer vtable. Rules never mutate the [State] they receive.
package wind

import "github.com/mikenye/gridpoly/grid"

// EdgeStyle is an opaque handle identifying how an edge is painted.
// Equality-by-identity suffices: rules decide whether two edges "cancel" by
// comparing handles, never their contents.
type EdgeStyle struct {
	name string
}

// NewEdgeStyle returns a distinct EdgeStyle, tagged with name for
// diagnostics only.
func NewEdgeStyle(name string) *EdgeStyle {
	return &EdgeStyle{name: name}
}

// String returns the style's diagnostic name.
func (s *EdgeStyle) String() string {
	if s == nil {
		return "<nil edge style>"
	}
	return s.name
}

// DefaultEdgeStyle is the style assigned to every boundary edge a built-in
// rule emits; the built-in rules carry no stylistic information beyond
// "this is a boundary."
var DefaultEdgeStyle = NewEdgeStyle("default")

// State is the fill classification folded leftward across a scanline:
// whether the cell immediately to the right of the last folded edge is
// filled, and a rule-specific winding counter or bitmask.
type State struct {
	IsFilled bool
	WindNr   int64
}

// nonFilled is the state at -infinity x on every scanline.
var nonFilled = State{}

// Context carries the configuration a Rule needs: how many input polygons
// are in play (1 for self-normalization, 2 for a binary boolean op) and an
// opaque slot for caller extensions the built-in rules never read.
type Context struct {
	NumPolygons int
	UserData    any
}

// Rule is a pluggable winding rule: a state automaton mapping
// (leftState, edge, direction, polygonIndex) to rightState, plus a Diff
// function deciding the edge style of the boundary between two cells.
type Rule struct {
	Name string

	// Start returns the state at -infinity x on every scanline.
	Start func(ctx *Context) State

	// Add folds one edge into the state immediately to its left, producing
	// the state immediately to its right.
	Add func(ctx *Context, left State, dir grid.Direction, polygonIndex int) State

	// Diff returns the edge style of the boundary between a left and right
	// cell, or nil if the two cells have the same fill and no boundary edge
	// should be emitted.
	Diff func(ctx *Context, left, right State) *EdgeStyle
}

func diffOnFillChange(left, right State) *EdgeStyle {
	if left.IsFilled == right.IsFilled {
		return nil
	}
	return DefaultEdgeStyle
}

// EvenOdd toggles fill on every edge crossed, regardless of direction: the
// classic even-odd (XOR) fill rule.
var EvenOdd = Rule{
	Name:  "even-odd",
	Start: func(*Context) State { return nonFilled },
	Add: func(_ *Context, left State, _ grid.Direction, _ int) State {
		left.IsFilled = !left.IsFilled
		return left
	},
	Diff: diffOnFillChange,
}

// NonZero is the non-zero (circular) winding rule: a region is filled
// whenever its accumulated winding number is non-zero. Which direction adds
// versus subtracts is arbitrary, as long as it is consistent.
var NonZero = Rule{
	Name:  "non-zero",
	Start: func(*Context) State { return nonFilled },
	Add: func(_ *Context, left State, dir grid.Direction, _ int) State {
		if dir == grid.DirDown {
			left.WindNr++
		} else {
			left.WindNr--
		}
		left.IsFilled = left.WindNr != 0
		return left
	},
	Diff: diffOnFillChange,
}

// Intersect is the binary intersection rule: a region is filled only when
// every one of ctx.NumPolygons has contributed an edge over it, tracked as
// one bit per polygon in the winding number.
var Intersect = Rule{
	Name:  "intersect",
	Start: func(*Context) State { return nonFilled },
	Add: func(ctx *Context, left State, _ grid.Direction, polygonIndex int) State {
		left.WindNr ^= 1 << uint(polygonIndex)
		left.IsFilled = left.WindNr == (1<<uint(ctx.NumPolygons))-1
		return left
	},
	Diff: diffOnFillChange,
}

// Union is the binary union rule: a region is filled when at least one
// polygon has contributed an edge over it.
var Union = Rule{
	Name:  "union",
	Start: func(*Context) State { return nonFilled },
	Add: func(_ *Context, left State, _ grid.Direction, polygonIndex int) State {
		left.WindNr ^= 1 << uint(polygonIndex)
		left.IsFilled = left.WindNr != 0
		return left
	},
	Diff: diffOnFillChange,
}
