package raster

import (
	"testing"

	"github.com/mikenye/gridpoly/path"
	"github.com/stretchr/testify/assert"
)

func square(x0, y0, x1, y1 float64) []path.Command {
	return []path.Command{
		path.NewMoveTo(x0, y0),
		path.NewLineTo(x1, y0),
		path.NewLineTo(x1, y1),
		path.NewLineTo(x0, y1),
		path.NewLineTo(x0, y0),
	}
}

func TestEvenOdd_FillsInterior(t *testing.T) {
	img := EvenOdd(square(2, 2, 6, 6), 8, 8)
	assert.True(t, set(img, 3, 3))
	assert.False(t, set(img, 0, 0))
	assert.False(t, set(img, 7, 7))
}

func TestNonZero_MatchesEvenOdd_ForSimplePolygon(t *testing.T) {
	cmds := square(2, 2, 6, 6)
	a := EvenOdd(cmds, 8, 8)
	b := NonZero(cmds, 8, 8)
	assert.True(t, Equal(a, b, 1), "a simple, non-self-intersecting polygon fills identically under either rule")
}

func TestEqual_ExactMatchRequiresSameBounds(t *testing.T) {
	a := EvenOdd(square(0, 0, 2, 2), 4, 4)
	b := EvenOdd(square(0, 0, 2, 2), 5, 5)
	assert.False(t, Equal(a, b, 0))
}

func TestEqual_ToleratesOnePixelDilation(t *testing.T) {
	a := EvenOdd(square(2, 2, 6, 6), 8, 8)
	b := EvenOdd(square(2, 2, 6, 7), 8, 8)
	assert.True(t, Equal(a, b, 1), "a one-row taller square is within a one-pixel dilation tolerance")
}
