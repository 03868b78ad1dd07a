package sweep

import (
	"testing"

	"github.com/mikenye/gridpoly/grid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIntersection_DiagonalsCross(t *testing.T) {
	a, err := grid.NewSegment(grid.NewPoint(0, 0), grid.NewPoint(10, 10), 0)
	require.NoError(t, err)
	b, err := grid.NewSegment(grid.NewPoint(10, 0), grid.NewPoint(0, 10), 0)
	require.NoError(t, err)

	p, crosses := Intersection(a, b, 0)
	require.True(t, crosses)
	assert.Equal(t, int32(5), p.X)
	assert.Equal(t, int32(5), p.Y)
}

func TestIntersection_ParallelNeverCrosses(t *testing.T) {
	a, err := grid.NewSegment(grid.NewPoint(0, 0), grid.NewPoint(0, 10), 0)
	require.NoError(t, err)
	b, err := grid.NewSegment(grid.NewPoint(5, 0), grid.NewPoint(5, 10), 0)
	require.NoError(t, err)

	_, crosses := Intersection(a, b, 0)
	assert.False(t, crosses)
}

func TestIntersection_NotStrictlyBelowCurrentY(t *testing.T) {
	a, err := grid.NewSegment(grid.NewPoint(0, 0), grid.NewPoint(10, 10), 0)
	require.NoError(t, err)
	b, err := grid.NewSegment(grid.NewPoint(10, 0), grid.NewPoint(0, 10), 0)
	require.NoError(t, err)

	_, crosses := Intersection(a, b, 5)
	assert.False(t, crosses, "a crossing exactly at the current y is handled in-place, not scheduled")
}

func TestIntersection_BeyondBothSegmentsNeverCrosses(t *testing.T) {
	a, err := grid.NewSegment(grid.NewPoint(0, 0), grid.NewPoint(4, 4), 0)
	require.NoError(t, err)
	b, err := grid.NewSegment(grid.NewPoint(4, 0), grid.NewPoint(0, 4), 0)
	require.NoError(t, err)

	_, crosses := Intersection(a, b, 0)
	assert.True(t, crosses, "sanity: these do cross within both segments' extent")

	// c's line meets a's at (50,50), far below both segments' lower ends.
	c, err := grid.NewSegment(grid.NewPoint(100, 0), grid.NewPoint(96, 4), 0)
	require.NoError(t, err)
	_, crossesFar := Intersection(a, c, 0)
	assert.False(t, crossesFar)
}
