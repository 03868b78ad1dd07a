package gridpoly

import (
	"testing"

	"github.com/mikenye/gridpoly/path"
	"github.com/mikenye/gridpoly/wind"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func closedSquare(x0, y0, x1, y1 float64) []path.Command {
	return []path.Command{
		path.NewMoveTo(x0, y0),
		path.NewLineTo(x1, y0),
		path.NewLineTo(x1, y1),
		path.NewLineTo(x0, y1),
		path.NewLineTo(x0, y0),
	}
}

func TestProcess_RejectsMissingGridsize(t *testing.T) {
	_, err := Process(closedSquare(0, 0, 1, 1), nil, wind.EvenOdd, nil, nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestProcess_SelfNormalizeSquare(t *testing.T) {
	var m Moments
	poly, err := Process(closedSquare(0, 0, 10, 10), nil, wind.EvenOdd, nil, &m, WithGridsize(1))
	require.NoError(t, err)
	require.Len(t, poly.Strokes, 2)
	assert.InDelta(t, 100.0, m.Area, 1e-6)
}

func TestProcess_Union(t *testing.T) {
	var m Moments
	_, err := Process(
		closedSquare(0, 0, 1, 1),
		closedSquare(2, 0, 3, 1),
		wind.Union,
		&wind.Context{NumPolygons: 2},
		&m,
		WithGridsize(1),
	)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, m.Area, 1e-6)
}

func TestArea(t *testing.T) {
	area, err := Area(closedSquare(0, 0, 4, 4), WithGridsize(1))
	require.NoError(t, err)
	assert.InDelta(t, 16.0, area, 1e-6)
}

func TestIntersectionArea(t *testing.T) {
	area, err := IntersectionArea(
		closedSquare(0, 0, 2, 2),
		closedSquare(1, 1, 3, 3),
		WithGridsize(1),
	)
	require.NoError(t, err)
	assert.InDelta(t, 1.0, area, 1e-6)
}

func TestComputeMoments(t *testing.T) {
	m, err := ComputeMoments(closedSquare(0, 0, 5, 5), wind.EvenOdd, nil, WithGridsize(1))
	require.NoError(t, err)
	assert.InDelta(t, 25.0, m.Area, 1e-6)
}

func TestProcess_NumericallyDegenerateInput(t *testing.T) {
	tiny := closedSquare(0, 0, 0.001, 0.001)
	_, err := Process(tiny, nil, wind.EvenOdd, nil, nil, WithGridsize(10))
	assert.ErrorIs(t, err, ErrNumericDegenerate)
}

func TestProcess_WithEpsilon_AbsorbsJitter(t *testing.T) {
	jittered := []path.Command{
		path.NewMoveTo(0, 0),
		path.NewLineTo(10.00000003, 0),
		path.NewLineTo(10, 9.99999997),
		path.NewLineTo(0.00000002, 10),
		path.NewLineTo(0, 0),
	}
	var m Moments
	_, err := Process(jittered, nil, wind.EvenOdd, nil, &m, WithGridsize(1), WithEpsilon(1e-3))
	require.NoError(t, err)
	assert.InDelta(t, 100.0, m.Area, 1e-6)
}

func TestToLines_HonorsPreserveDirection(t *testing.T) {
	poly, err := Process(closedSquare(0, 0, 10, 10), nil, wind.EvenOdd, nil, nil, WithGridsize(1))
	require.NoError(t, err)

	stitched := ToLines(poly)
	preserved := ToLines(poly, WithPreserveDirection(true))
	assert.NotEmpty(t, stitched)
	assert.NotEmpty(t, preserved)
}
