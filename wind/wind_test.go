package wind

import (
	"github.com/mikenye/gridpoly/grid"
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestEvenOdd(t *testing.T) {
	ctx := &Context{NumPolygons: 1}
	state := EvenOdd.Start(ctx)
	assert.False(t, state.IsFilled)

	state = EvenOdd.Add(ctx, state, grid.DirDown, 0)
	assert.True(t, state.IsFilled)

	state = EvenOdd.Add(ctx, state, grid.DirUp, 0)
	assert.False(t, state.IsFilled, "a second crossing toggles back to unfilled regardless of direction")
}

func TestEvenOdd_Diff(t *testing.T) {
	ctx := &Context{NumPolygons: 1}
	filled := State{IsFilled: true}
	unfilled := State{IsFilled: false}

	assert.Equal(t, DefaultEdgeStyle, EvenOdd.Diff(ctx, unfilled, filled))
	assert.Nil(t, EvenOdd.Diff(ctx, filled, filled))
}

func TestNonZero(t *testing.T) {
	ctx := &Context{NumPolygons: 1}
	state := NonZero.Start(ctx)

	state = NonZero.Add(ctx, state, grid.DirDown, 0)
	assert.True(t, state.IsFilled)
	assert.Equal(t, int64(1), state.WindNr)

	state = NonZero.Add(ctx, state, grid.DirDown, 0)
	assert.True(t, state.IsFilled)
	assert.Equal(t, int64(2), state.WindNr, "two same-direction crossings accumulate winding")

	state = NonZero.Add(ctx, state, grid.DirUp, 0)
	state = NonZero.Add(ctx, state, grid.DirUp, 0)
	assert.False(t, state.IsFilled, "opposite-direction crossings cancel back to zero winding")
}

func TestIntersect(t *testing.T) {
	ctx := &Context{NumPolygons: 2}
	state := Intersect.Start(ctx)

	state = Intersect.Add(ctx, state, grid.DirDown, 0)
	assert.False(t, state.IsFilled, "only one of two polygons has contributed")

	state = Intersect.Add(ctx, state, grid.DirDown, 1)
	assert.True(t, state.IsFilled, "both polygons have now contributed")

	state = Intersect.Add(ctx, state, grid.DirDown, 0)
	assert.False(t, state.IsFilled, "leaving polygon 0's region drops the intersection")
}

func TestUnion(t *testing.T) {
	ctx := &Context{NumPolygons: 2}
	state := Union.Start(ctx)

	state = Union.Add(ctx, state, grid.DirDown, 0)
	assert.True(t, state.IsFilled, "one polygon contributing is enough for a union")

	state = Union.Add(ctx, state, grid.DirDown, 1)
	assert.True(t, state.IsFilled)

	state = Union.Add(ctx, state, grid.DirDown, 0)
	assert.True(t, state.IsFilled, "polygon 1 still contributes")

	state = Union.Add(ctx, state, grid.DirDown, 1)
	assert.False(t, state.IsFilled, "neither polygon contributes now")
}

func TestEdgeStyle_String(t *testing.T) {
	var nilStyle *EdgeStyle
	assert.Equal(t, "<nil edge style>", nilStyle.String())
	assert.Equal(t, "default", DefaultEdgeStyle.String())
}
