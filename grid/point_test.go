package grid

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestClampCoord(t *testing.T) {
	tests := map[string]struct {
		in       int64
		expected int32
	}{
		"within range":    {100, 100},
		"at max":          {int64(CoordMax), CoordMax},
		"above max":       {int64(CoordMax) + 1000, CoordMax},
		"at min":          {int64(CoordMin), CoordMin},
		"below min":       {int64(CoordMin) - 1000, CoordMin},
		"far above range": {1 << 40, CoordMax},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, ClampCoord(tc.in))
		})
	}
}

func TestPoint_Less(t *testing.T) {
	tests := map[string]struct {
		p, q     Point
		expected bool
	}{
		"lower y is less":       {NewPoint(5, 0), NewPoint(5, 1), true},
		"higher y is not less":  {NewPoint(5, 1), NewPoint(5, 0), false},
		"same y, lower x":       {NewPoint(0, 5), NewPoint(1, 5), true},
		"same y, higher x":      {NewPoint(1, 5), NewPoint(0, 5), false},
		"identical points":      {NewPoint(1, 1), NewPoint(1, 1), false},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.p.Less(tc.q))
		})
	}
}

func TestPoint_Eq(t *testing.T) {
	assert.True(t, NewPoint(3, 4).Eq(NewPoint(3, 4)))
	assert.False(t, NewPoint(3, 4).Eq(NewPoint(3, 5)))
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(3,4)", NewPoint(3, 4).String())
	assert.Equal(t, "(-3,-4)", NewPoint(-3, -4).String())
}
