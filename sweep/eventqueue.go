package sweep

import "github.com/google/btree"

// EventQueue is the sweep's min-priority queue over events, ordered by
// (y, x, kind) with kind-priority tie-breaking HORIZONTAL < START < CROSS
// < END at a coincident point. It is backed by a B-tree rather than a
// binary heap: CROSS events are pushed mid-sweep at arbitrary positions,
// and a B-tree gives the same O(log n) push/pop without the array-shifting
// a binary heap needs on removal of an arbitrary already-popped duplicate.
type EventQueue struct {
	tree *btree.BTreeG[*queueItem]
	seq  uint64
}

type queueItem struct {
	event *Event
	seq   uint64
}

func lessQueueItem(a, b *queueItem) bool {
	if a.event.Y != b.event.Y {
		return a.event.Y < b.event.Y
	}
	if a.event.X != b.event.X {
		return a.event.X < b.event.X
	}
	if a.event.Kind != b.event.Kind {
		return a.event.Kind < b.event.Kind
	}
	return a.seq < b.seq
}

// NewEventQueue returns an empty event queue.
func NewEventQueue() *EventQueue {
	return &EventQueue{tree: btree.NewG(32, lessQueueItem)}
}

// Push schedules e. Events with identical (y, x, kind) are ordered by push
// order relative to each other, so pushing never silently overwrites an
// existing event.
func (q *EventQueue) Push(e *Event) {
	q.seq++
	q.tree.ReplaceOrInsert(&queueItem{event: e, seq: q.seq})
}

// Pop removes and returns the lowest-ordered event, or nil if the queue is
// empty.
func (q *EventQueue) Pop() *Event {
	item, ok := q.tree.DeleteMin()
	if !ok {
		return nil
	}
	return item.event
}

// Peek returns the lowest-ordered event without removing it, or nil if the
// queue is empty.
func (q *EventQueue) Peek() *Event {
	var found *Event
	q.tree.Ascend(func(item *queueItem) bool {
		found = item.event
		return false
	})
	return found
}

// Len returns the number of pending events.
func (q *EventQueue) Len() int {
	return q.tree.Len()
}
