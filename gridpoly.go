// Package gridpoly implements a boolean polygon engine built around a single
// Bentley–Ottmann plane sweep: union, intersection, and self-normalization
// (even-odd or non-zero winding) of polygons, plus polygon area and
// low-order statistical moments computed as a byproduct of the same sweep.
//
// # Coordinate System
//
// Input paths are described in floating-point coordinates (see the path
// package) and quantized onto an integer grid before the sweep runs (see the
// grid package). x increases to the right and y increases downward: the
// sweep runs from low y to high y, and a segment's or stroke's "upper"
// point is the one with the smaller y.
//
// # Core Types
//
//   - [path.Command]: a floating-point drawing command; a sequence of them
//     is the input shape for every boolean operation.
//   - [path.Poly]: a polygon as a flat set of y-monotone strokes, the output
//     shape of every boolean operation.
//   - [wind.Rule]: a pluggable winding rule (even-odd, non-zero, intersect,
//     union) that decides which edges of the swept arrangement survive.
//   - [grid.Segment]: an integer-coordinate directed edge, the unit the
//     sweep itself operates on.
//
// # Precision Control with Epsilon
//
// Process accepts an epsilon tolerance via [WithEpsilon] to absorb
// floating-point error introduced before quantization; [point.Point.Eq]
// separately accepts the teacher's own [options.WithEpsilon] for coordinate
// comparison outside the sweep.
//
// # Acknowledgments
//
// The sweep algorithm and winding-rule semantics in this package follow the
// Bentley–Ottmann line-sweep approach and the Vatti-style winding
// accounting used by general-purpose polygon clippers.
package gridpoly

func init() {
	logDebugf("debug logging enabled")
}
