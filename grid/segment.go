package grid

import (
	"errors"
	"fmt"
)

// Direction records which endpoint of a Segment was the original path's
// start, before the segment was normalized so that A < B lexicographically.
type Direction int8

const (
	// DirUp means the original path ran from B to A (downward in y became
	// upward once normalized).
	DirUp Direction = iota
	// DirDown means the original path ran from A to B.
	DirDown
)

// String returns "up" or "down".
func (d Direction) String() string {
	if d == DirUp {
		return "up"
	}
	return "down"
}

// ErrDegenerateSegment is returned when both endpoints of a prospective
// segment are the same grid point.
var ErrDegenerateSegment = errors.New("grid: degenerate (zero-length) segment")

// ErrHorizontalSegment is returned when both endpoints share a y coordinate.
// Horizontal edges are never represented as a Segment: path.FromFill drops
// them, and the sweep driver neither receives them nor emits horizontal
// edges into its output strokes.
var ErrHorizontalSegment = errors.New("grid: horizontal segment, handle out of band")

// Segment is a directed grid-aligned edge with its upper endpoint A and
// lower endpoint B satisfying A < B under the (y, x) lexicographic order,
// plus the line-equation coefficients used by the active list's ordering
// predicate and the intersection tester.
//
// Segment is immutable after construction; the sweep driver creates a new
// Segment (via Retarget) rather than mutating one in place when a crossing
// moves its effective upper endpoint.
type Segment struct {
	A, B Point

	// Delta is B - A, computed in 64-bit arithmetic so that products of
	// Delta with any grid coordinate fit exactly in an int64.
	DeltaX, DeltaY int64

	// K is the line-equation constant: LineEq(p) = DeltaY*p.X - DeltaX*p.Y - K
	// is zero for any point p on the line through A and B, and positive for
	// points strictly to the right of the directed line A->B.
	K int64

	MinX, MaxX int32

	// Dir records which endpoint of the original (pre-normalization) path
	// this segment's A corresponds to.
	Dir Direction

	// PolygonIndex is 0 or 1, identifying which input polygon this segment
	// came from in a two-polygon boolean operation.
	PolygonIndex int
}

// NewSegment builds a Segment from two grid points belonging to
// polygonIndex, normalizing so A < B. It returns ErrDegenerateSegment if p
// and q are the same point, or ErrHorizontalSegment if they share a y
// coordinate (path.FromFill drops such edges).
func NewSegment(p, q Point, polygonIndex int) (*Segment, error) {
	if p.Eq(q) {
		return nil, ErrDegenerateSegment
	}
	if p.Y == q.Y {
		return nil, ErrHorizontalSegment
	}

	a, b, dir := p, q, DirDown
	if q.Less(p) {
		a, b, dir = q, p, DirUp
	}

	deltaX := int64(b.X) - int64(a.X)
	deltaY := int64(b.Y) - int64(a.Y)
	k := deltaY*int64(a.X) - deltaX*int64(a.Y)

	minX, maxX := a.X, b.X
	if maxX < minX {
		minX, maxX = maxX, minX
	}

	return &Segment{
		A: a, B: b,
		DeltaX: deltaX, DeltaY: deltaY,
		K:            k,
		MinX:         minX,
		MaxX:         maxX,
		Dir:          dir,
		PolygonIndex: polygonIndex,
	}, nil
}

// LineEq evaluates the segment's line equation at p: zero on the line,
// positive strictly to the right of the directed line A->B, negative to the
// left.
func (s *Segment) LineEq(p Point) int64 {
	return s.DeltaY*int64(p.X) - s.DeltaX*int64(p.Y) - s.K
}

// String renders the segment's endpoints and direction for diagnostics.
func (s *Segment) String() string {
	if s == nil {
		return "<nil segment>"
	}
	return fmt.Sprintf("%s->%s(%s,p%d)", s.A, s.B, s.Dir, s.PolygonIndex)
}

// Retarget returns a new Segment sharing s's direction and polygon index but
// starting at newA instead of s.A, as happens when s is split at a crossing
// point. newA must lie on the line through s.A and s.B, strictly above s.B.
func (s *Segment) Retarget(newA Point) (*Segment, error) {
	if newA.Eq(s.B) {
		return nil, ErrDegenerateSegment
	}
	seg, err := NewSegment(newA, s.B, s.PolygonIndex)
	if err != nil {
		return nil, err
	}
	seg.Dir = s.Dir
	return seg, nil
}

// XDiff computes the ordering predicate between two segments active at
// scanline y: negative if s1 sorts left of s2, positive if right, zero if
// they coincide at y. It is exact 64-bit integer arithmetic per spec: both
// segments' line constants are evaluated at y and cross-multiplied by the
// other's DeltaY to avoid division.
func XDiff(s1, s2 *Segment, y int32) int64 {
	left := (s1.K + s1.DeltaX*int64(y)) * s2.DeltaY
	right := (s2.K + s2.DeltaX*int64(y)) * s1.DeltaY
	return left - right
}
