package sweep

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventQueue_OrdersByYThenXThenKind(t *testing.T) {
	q := NewEventQueue()
	q.Push(&Event{Y: 5, X: 0, Kind: KindEnd})
	q.Push(&Event{Y: 1, X: 9, Kind: KindStart})
	q.Push(&Event{Y: 1, X: 2, Kind: KindStart})
	q.Push(&Event{Y: 1, X: 2, Kind: KindHorizontal})

	require.Equal(t, 4, q.Len())

	first := q.Pop()
	assert.Equal(t, int32(1), first.Y)
	assert.Equal(t, int32(2), first.X)
	assert.Equal(t, KindHorizontal, first.Kind, "horizontal has the lowest kind priority at a coincident point")

	second := q.Pop()
	assert.Equal(t, int32(2), second.X)
	assert.Equal(t, KindStart, second.Kind)

	third := q.Pop()
	assert.Equal(t, int32(9), third.X)

	fourth := q.Pop()
	assert.Equal(t, int32(5), fourth.Y)

	assert.Nil(t, q.Pop())
}

func TestEventQueue_Peek(t *testing.T) {
	q := NewEventQueue()
	assert.Nil(t, q.Peek())

	q.Push(&Event{Y: 3, X: 0, Kind: KindStart})
	peeked := q.Peek()
	require.NotNil(t, peeked)
	assert.Equal(t, 1, q.Len(), "Peek does not remove the event")
}
