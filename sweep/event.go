// Package sweep implements the Bentley–Ottmann plane sweep at the heart of
// the engine: an event queue ordered by (y, x, kind), an active list
// ordered by the exact-integer XDIFF predicate, an intersection tester,
// and the sweep driver that folds winding rules across the arrangement to
// emit boundary strokes and accumulate moments.
package sweep

import (
	"fmt"

	"github.com/mikenye/gridpoly/grid"
)

// Kind discriminates the four event types the sweep processes at a given
// (y, x). Ordering here doubles as the kind-priority tie-break required at
// coincident points: HORIZONTAL < START < CROSS < END.
type Kind uint8

const (
	KindHorizontal Kind = iota
	KindStart
	KindCross
	KindEnd
)

// String returns the event kind's name.
func (k Kind) String() string {
	switch k {
	case KindHorizontal:
		return "horizontal"
	case KindStart:
		return "start"
	case KindCross:
		return "cross"
	case KindEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Event is one entry in the sweep's event queue: a point, tagged with the
// kind of update it drives and the segment(s) it concerns. Seg2 is only
// populated for KindCross.
type Event struct {
	Y, X int32
	Kind Kind
	Seg  *grid.Segment
	Seg2 *grid.Segment
}

// String renders the event for diagnostics.
func (e *Event) String() string {
	if e.Kind == KindCross {
		return fmt.Sprintf("%s@(%d,%d)[%s,%s]", e.Kind, e.X, e.Y, e.Seg, e.Seg2)
	}
	return fmt.Sprintf("%s@(%d,%d)[%s]", e.Kind, e.X, e.Y, e.Seg)
}

func startEvent(s *grid.Segment) *Event {
	return &Event{Y: s.A.Y, X: s.A.X, Kind: KindStart, Seg: s}
}

func endEvent(s *grid.Segment) *Event {
	return &Event{Y: s.B.Y, X: s.B.X, Kind: KindEnd, Seg: s}
}

func crossEvent(y, x int32, s1, s2 *grid.Segment) *Event {
	return &Event{Y: y, X: x, Kind: KindCross, Seg: s1, Seg2: s2}
}

func horizontalEvent(s *grid.Segment) *Event {
	return &Event{Y: s.A.Y, X: s.A.X, Kind: KindHorizontal, Seg: s}
}
