package glyphpath

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_RejectsUnparsableFont(t *testing.T) {
	_, err := Load([]byte("not a font"), 'A', 64)
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLoad_RejectsEmptyInput(t *testing.T) {
	_, err := Load(nil, 'A', 64)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
