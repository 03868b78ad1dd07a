package grid

import (
	"errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestNewSegment(t *testing.T) {
	t.Run("normalizes so A < B and records direction", func(t *testing.T) {
		// Path ran from (5,5) down to (0,0): after normalization A=(0,0),
		// B=(5,5), and since the path's start was the lower point, Dir is up.
		seg, err := NewSegment(NewPoint(5, 5), NewPoint(0, 0), 0)
		require.NoError(t, err)
		assert.Equal(t, NewPoint(0, 0), seg.A)
		assert.Equal(t, NewPoint(5, 5), seg.B)
		assert.Equal(t, DirUp, seg.Dir)
	})

	t.Run("path start already the upper point records down", func(t *testing.T) {
		seg, err := NewSegment(NewPoint(0, 0), NewPoint(5, 5), 0)
		require.NoError(t, err)
		assert.Equal(t, DirDown, seg.Dir)
	})

	t.Run("rejects zero-length segments", func(t *testing.T) {
		_, err := NewSegment(NewPoint(1, 1), NewPoint(1, 1), 0)
		assert.True(t, errors.Is(err, ErrDegenerateSegment))
	})

	t.Run("rejects horizontal segments", func(t *testing.T) {
		_, err := NewSegment(NewPoint(0, 5), NewPoint(10, 5), 0)
		assert.True(t, errors.Is(err, ErrHorizontalSegment))
	})

	t.Run("minx/maxx are endpoint-order independent", func(t *testing.T) {
		seg, err := NewSegment(NewPoint(10, 0), NewPoint(0, 10), 0)
		require.NoError(t, err)
		assert.Equal(t, int32(0), seg.MinX)
		assert.Equal(t, int32(10), seg.MaxX)
	})
}

func TestSegment_LineEq(t *testing.T) {
	seg, err := NewSegment(NewPoint(0, 0), NewPoint(10, 10), 0)
	require.NoError(t, err)

	assert.Equal(t, int64(0), seg.LineEq(NewPoint(5, 5)), "midpoint lies on the line")
	assert.Equal(t, int64(0), seg.LineEq(NewPoint(0, 0)), "endpoint lies on the line")

	// For DeltaX=DeltaY=10, LineEq(p) = 10*p.x - 10*p.y; a point below-right
	// of the line (larger x for the same y) is positive.
	assert.Greater(t, seg.LineEq(NewPoint(6, 5)), int64(0))
	assert.Less(t, seg.LineEq(NewPoint(4, 5)), int64(0))
}

func TestSegment_Retarget(t *testing.T) {
	seg, err := NewSegment(NewPoint(0, 0), NewPoint(10, 10), 1)
	require.NoError(t, err)

	split, err := seg.Retarget(NewPoint(5, 5))
	require.NoError(t, err)
	assert.Equal(t, NewPoint(5, 5), split.A)
	assert.Equal(t, NewPoint(10, 10), split.B)
	assert.Equal(t, seg.Dir, split.Dir)
	assert.Equal(t, seg.PolygonIndex, split.PolygonIndex)
}

func TestSegment_String(t *testing.T) {
	seg, err := NewSegment(NewPoint(0, 0), NewPoint(5, 5), 1)
	require.NoError(t, err)
	assert.Equal(t, "(0,0)->(5,5)(down,p1)", seg.String())

	var nilSeg *Segment
	assert.Equal(t, "<nil segment>", nilSeg.String())
}

func TestXDiff(t *testing.T) {
	t.Run("left segment sorts before right segment", func(t *testing.T) {
		left, err := NewSegment(NewPoint(0, 0), NewPoint(0, 10), 0)
		require.NoError(t, err)
		right, err := NewSegment(NewPoint(5, 0), NewPoint(5, 10), 0)
		require.NoError(t, err)

		assert.Less(t, XDiff(left, right, 5), int64(0))
		assert.Greater(t, XDiff(right, left, 5), int64(0))
	})

	t.Run("crossing segments evaluate to zero at the crossing y", func(t *testing.T) {
		// Two diagonals crossing at (5,5).
		a, err := NewSegment(NewPoint(0, 0), NewPoint(10, 10), 0)
		require.NoError(t, err)
		b, err := NewSegment(NewPoint(10, 0), NewPoint(0, 10), 0)
		require.NoError(t, err)

		assert.Equal(t, int64(0), XDiff(a, b, 5))
	})
}
