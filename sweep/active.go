package sweep

import (
	rbt "github.com/emirpasic/gods/trees/redblacktree"

	"github.com/mikenye/gridpoly/grid"
)

// activeList is the sweep's status structure: the segments currently
// crossing the sweep line, ordered left-to-right by grid.XDiff evaluated
// at the current scanline y. Backed by a red-black tree rather than the
// splay tree spec.md recommends, since Go's type system makes an intrusive
// splay tree awkward without unsafe pointer games; a red-black tree gives
// the same O(log n) find/insert/delete with none of that.
type activeList struct {
	tree *rbt.Tree
	y    int32
}

// probeSegment returns a degenerate vertical "segment" standing for the
// column x, used only as a search key against the real segments in the
// tree: DeltaX=0, DeltaY=1, K=x makes LineEq(p) zero exactly when p.X==x,
// so grid.XDiff compares it against a real segment exactly as if it were
// a vertical line through x.
func probeSegment(x int32) *grid.Segment {
	return &grid.Segment{DeltaX: 0, DeltaY: 1, K: int64(x)}
}

func newActiveList() *activeList {
	al := &activeList{}
	al.tree = rbt.NewWith(func(a, b interface{}) int {
		return al.compare(a.(*grid.Segment), b.(*grid.Segment))
	})
	return al
}

func (al *activeList) compare(sa, sb *grid.Segment) int {
	if sa == sb {
		return 0
	}
	d := grid.XDiff(sa, sb, al.y)
	switch {
	case d < 0:
		return -1
	case d > 0:
		return 1
	}
	// Tied at y: the segment with the smaller slope (dx/dy) will be left of
	// the other immediately below y, per spec.md's active-list tie-break.
	slope := sa.DeltaX*sb.DeltaY - sb.DeltaX*sa.DeltaY
	switch {
	case slope < 0:
		return -1
	case slope > 0:
		return 1
	default:
		return 0
	}
}

// setY advances the scanline the comparator evaluates ordering at.
func (al *activeList) setY(y int32) {
	al.y = y
}

// insert adds s to the active list.
func (al *activeList) insert(s *grid.Segment) {
	al.tree.Put(s, struct{}{})
}

// remove drops s from the active list.
func (al *activeList) remove(s *grid.Segment) {
	al.tree.Remove(s)
}

func (al *activeList) len() int {
	return al.tree.Size()
}

// neighbors returns the segments immediately left and right of s in the
// active list, or nil where there is none.
func (al *activeList) neighbors(s *grid.Segment) (left, right *grid.Segment) {
	node := al.tree.GetNode(s)
	if node == nil {
		return nil, nil
	}
	prevIter := al.tree.IteratorAt(node)
	if prevIter.Prev() {
		left = prevIter.Key().(*grid.Segment)
	}
	nextIter := al.tree.IteratorAt(node)
	if nextIter.Next() {
		right = nextIter.Key().(*grid.Segment)
	}
	return left, right
}

// findColumn returns the segments immediately left (floor) and right
// (ceiling) of column x at the current scanline.
func (al *activeList) findColumn(x int32) (left, right *grid.Segment) {
	probe := probeSegment(x)
	if floor, ok := al.tree.Floor(probe); ok {
		left = floor.Key.(*grid.Segment)
	}
	if ceil, ok := al.tree.Ceiling(probe); ok {
		right = ceil.Key.(*grid.Segment)
	}
	return left, right
}

// all returns every active segment, left to right.
func (al *activeList) all() []*grid.Segment {
	out := make([]*grid.Segment, 0, al.tree.Size())
	it := al.tree.Iterator()
	for it.Next() {
		out = append(out, it.Key().(*grid.Segment))
	}
	return out
}
