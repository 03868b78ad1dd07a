package sweep

import (
	"errors"
	"fmt"
	"math"

	"github.com/mikenye/gridpoly/grid"
	"github.com/mikenye/gridpoly/path"
	"github.com/mikenye/gridpoly/wind"
)

// ErrInvalidInput is returned when the segment set violates a structural
// invariant the sweep requires (handled upstream by path.FromFill/grid.NewSegment
// in practice, but re-checked here since Run is a public entry point in its
// own right).
var ErrInvalidInput = errors.New("sweep: invalid input")

// ErrInternal marks an invariant violation: Run panics with an error
// wrapping it when the active list fails to empty out at the end of the
// sweep. Crossing events whose segments are no longer active or adjacent
// are dropped as stale, not reported.
var ErrInternal = errors.New("sweep: internal invariant violation")

// Result is the sweep's output: the classified boundary polygon plus the
// moments accumulated as a byproduct of the same pass.
type Result struct {
	Poly    *path.Poly
	Moments Moments
}

// Run sweeps segs — already built via path.FromFill and tagged with the
// polygon index they belong to — under rule, returning the boundary
// polygon and its moments. ctx.NumPolygons should match the distinct
// polygon indices present in segs; pass nil to default to NumPolygons: 1.
func Run(segs []*grid.Segment, rule wind.Rule, ctx *wind.Context, gridsize float64) (*Result, error) {
	if gridsize <= 0 {
		return nil, fmt.Errorf("%w: gridsize must be positive, got %v", ErrInvalidInput, gridsize)
	}
	if ctx == nil {
		ctx = &wind.Context{NumPolygons: 1}
	}

	d := &driver{
		queue:        NewEventQueue(),
		active:       newActiveList(),
		out:          newOutputBuilder(gridsize),
		moments:      &Moments{},
		cursor:       make(map[*grid.Segment]grid.Point),
		endScheduled: make(map[*grid.Segment]bool),
		rule:         rule,
		ctx:          ctx,
	}

	for _, s := range segs {
		if s.DeltaY == 0 {
			return nil, fmt.Errorf("%w: horizontal segments must be excluded before Run", ErrInvalidInput)
		}
		d.queue.Push(startEvent(s))
	}

	return d.run(gridsize)
}

// driver holds the sweep's mutable state across the event loop; it exists
// so the loop and its helper steps can share state without a long
// parameter list.
type driver struct {
	queue        *EventQueue
	active       *activeList
	out          *outputBuilder
	moments      *Moments
	cursor       map[*grid.Segment]grid.Point // last emitted output point, per live segment identity
	endScheduled map[*grid.Segment]bool
	rule         wind.Rule
	ctx          *wind.Context

	haveY bool
	prevY int32
}

func (d *driver) run(gridsize float64) (*Result, error) {
	for d.queue.Len() > 0 {
		next := d.queue.Peek()
		if !d.haveY || next.Y != d.prevY {
			if err := d.flush(next.Y); err != nil {
				return nil, err
			}
		}

		ev := d.queue.Pop()
		if err := d.apply(ev); err != nil {
			return nil, err
		}
	}

	if err := d.flush(d.prevY); err != nil {
		return nil, err
	}
	d.out.sealAll()

	if d.active.len() != 0 {
		panic(fmt.Errorf("%w: active list non-empty at end of sweep", ErrInternal))
	}

	return &Result{Poly: d.out.result(), Moments: d.moments.Finalize(gridsize)}, nil
}

func (d *driver) apply(ev *Event) error {
	switch ev.Kind {
	case KindStart:
		d.active.insert(ev.Seg)
		d.scheduleEnd(ev.Seg)
		d.checkCrossing(ev.Seg, ev.Y)

	case KindEnd:
		if d.active.tree.GetNode(ev.Seg) == nil {
			return nil // stale: this identity was retargeted away at a crossing
		}
		d.active.remove(ev.Seg)
		delete(d.cursor, ev.Seg)

	case KindCross:
		s1, s2 := ev.Seg, ev.Seg2
		if d.active.tree.GetNode(s1) == nil || d.active.tree.GetNode(s2) == nil {
			return nil // stale: one side already retargeted or removed
		}
		l1, r1 := d.active.neighbors(s1)
		if r1 != s2 && l1 != s2 {
			return nil // stale: no longer adjacent
		}
		p := grid.Point{X: ev.X, Y: ev.Y}
		next1, err := d.retarget(s1, p)
		if err != nil {
			return err
		}
		next2, err := d.retarget(s2, p)
		if err != nil {
			return err
		}
		d.checkCrossing(next1, p.Y)
		d.checkCrossing(next2, p.Y)

	case KindHorizontal:
		// Run never queues horizontal events: it rejects segments with
		// DeltaY == 0, and path.FromFill drops horizontal edges before they
		// reach it. Such an event would only wake the flush for its y.
	}
	return nil
}

func (d *driver) scheduleEnd(s *grid.Segment) {
	if d.endScheduled[s] {
		return
	}
	d.endScheduled[s] = true
	d.queue.Push(endEvent(s))
}

// checkCrossing probes s's current left and right neighbors in the active
// list for a crossing strictly below y, pushing a CROSS event for any pair
// found. Called after every insert (a new segment's START) and every
// retarget (a CROSS event's segments re-entering the active list at a new
// position), per spec.md §4.2 step 4 / §4.5 step 4: "for every adjacent
// pair involving a newly inserted or reordered segment, run the
// intersection tester and push any CROSS event found." A stale duplicate
// pushed for a pair that later stops being adjacent (or is retargeted
// away) is caught by apply's KindCross staleness checks, so no dedup is
// needed here.
func (d *driver) checkCrossing(s *grid.Segment, y int32) {
	left, right := d.active.neighbors(s)
	if left != nil {
		if p, ok := Intersection(left, s, y); ok {
			d.queue.Push(crossEvent(p.Y, p.X, left, s))
		}
	}
	if right != nil {
		if p, ok := Intersection(s, right, y); ok {
			d.queue.Push(crossEvent(p.Y, p.X, s, right))
		}
	}
}

// retarget replaces old with a new Segment starting at p, moving its
// output/bookkeeping state across, per spec.md §4.5's Cross handling
// ("each has its a updated to the crossing point and its k recomputed").
// grid.Segment is immutable, so "updating a" means swapping in a new
// Segment value under the same logical identity.
func (d *driver) retarget(old *grid.Segment, p grid.Point) (*grid.Segment, error) {
	d.active.remove(old)

	next, err := old.Retarget(p)
	if err != nil {
		if errors.Is(err, grid.ErrDegenerateSegment) {
			// The crossing point is old's own lower endpoint: old simply
			// ends there and needs no retargeting.
			d.active.insert(old)
			return old, nil
		}
		return nil, err
	}

	if pt, ok := d.cursor[old]; ok {
		delete(d.cursor, old)
		d.cursor[next] = pt
	}
	d.out.migrate(old, next)
	delete(d.endScheduled, old)
	d.active.insert(next)
	d.scheduleEnd(next)
	return next, nil
}

// flush reconciles the active list after every event at the current
// scanline has been applied: it folds the winding rule left to right,
// emits boundary sub-segments for the interval [d.prevY, y], and
// accumulates moments over filled gaps. Called once per distinct event y
// (and once more after the queue empties, for the final scanline).
func (d *driver) flush(y int32) error {
	if d.haveY && y > d.prevY {
		d.active.setY(d.prevY) // evaluate exit order at the interval's start
		if err := d.reconcile(d.prevY, y); err != nil {
			return err
		}
	}
	d.haveY = true
	d.prevY = y
	d.active.setY(y)
	return nil
}

// reconcile folds the winding rule across every active segment (not only
// the changed set — see DESIGN.md for why this trades the spec's
// changed-set optimization for a simpler, still-correct full pass),
// emitting a boundary sub-segment for every segment where the fold
// crosses a fill-state change, and accumulating moments for every gap
// that is filled over [y0, y1].
func (d *driver) reconcile(y0, y1 int32) error {
	segs := d.active.all()
	if len(segs) == 0 {
		return nil
	}

	xrow := grid.NewXrow()
	positions := make(map[*grid.Segment]int32, len(segs))
	for _, s := range segs {
		x := columnAt(s, y1)
		positions[s] = x
		xrow.Add(x)
	}
	for s, x := range positions {
		if nearest, ok := xrow.Nearest(x); ok {
			positions[s] = nearest
		}
	}

	state := d.rule.Start(d.ctx)
	var prev *grid.Segment
	for _, s := range segs {
		before := state
		state = d.rule.Add(d.ctx, before, s.Dir, s.PolygonIndex)

		if style := d.rule.Diff(d.ctx, before, state); style != nil {
			p2 := grid.Point{X: positions[s], Y: y1}
			p1, ok := d.cursor[s]
			if !ok {
				p1 = s.A
			}
			if !p1.Eq(p2) {
				d.out.emit(s, p1, p2, style)
				d.cursor[s] = p2
			} else {
				d.cursor[s] = p2
			}
		}

		if prev != nil && before.IsFilled {
			d.moments.accumulateTrapezoid(prev, s, y0, y1)
		}
		prev = s
	}
	return nil
}

// columnAt returns s's grid x position at y: its exact endpoint when y is
// that endpoint's y, otherwise its line position rounded to the nearest
// grid column.
func columnAt(s *grid.Segment, y int32) int32 {
	if y == s.A.Y {
		return s.A.X
	}
	if y == s.B.Y {
		return s.B.X
	}
	return grid.ClampCoord(int64(math.Round(xAt(s, y))))
}
