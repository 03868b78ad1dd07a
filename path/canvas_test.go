package path

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanvas_InvalidGridsize(t *testing.T) {
	_, err := NewCanvas(0)
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = NewCanvas(-1)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestCanvas_Square(t *testing.T) {
	c, err := NewCanvas(1)
	require.NoError(t, err)

	require.NoError(t, c.MoveTo(0, 0))
	require.NoError(t, c.LineTo(10, 0))
	require.NoError(t, c.LineTo(10, 10))
	require.NoError(t, c.LineTo(0, 10))
	require.NoError(t, c.Close())

	cmds := c.Result()
	require.Len(t, cmds, 5)
	assert.Equal(t, MoveTo, cmds[0].Kind)
	assert.Equal(t, LineTo, cmds[4].Kind)
}

func TestCanvas_CloseNoOpWhenAlreadyAtStart(t *testing.T) {
	c, err := NewCanvas(1)
	require.NoError(t, err)
	require.NoError(t, c.MoveTo(0, 0))
	require.NoError(t, c.LineTo(1, 1))
	require.NoError(t, c.LineTo(0, 0))
	require.NoError(t, c.Close())
	assert.Len(t, c.Result(), 3)
}

func TestCanvas_RejectsOutOfOrderCommands(t *testing.T) {
	c, err := NewCanvas(1)
	require.NoError(t, err)

	assert.ErrorIs(t, c.LineTo(1, 1), ErrInvalidInput)
	assert.ErrorIs(t, c.SplineTo(1, 1, 2, 2), ErrInvalidInput)
	assert.ErrorIs(t, c.Close(), ErrInvalidInput)
}

func TestCanvas_RejectsDegenerateLineTo(t *testing.T) {
	c, err := NewCanvas(1)
	require.NoError(t, err)
	require.NoError(t, c.MoveTo(0, 0))
	assert.ErrorIs(t, c.LineTo(0, 0), ErrInvalidInput)
}
