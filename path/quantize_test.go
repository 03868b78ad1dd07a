package path

import (
	"testing"

	"github.com/mikenye/gridpoly/grid"
	"github.com/mikenye/gridpoly/point"
	"github.com/stretchr/testify/assert"
)

func TestQuantize(t *testing.T) {
	tests := map[string]struct {
		coord, gridsize float64
		want            int32
	}{
		"exact":       {10, 1, 10},
		"round up":    {10.6, 1, 11},
		"round down":  {10.4, 1, 10},
		"round half":  {10.5, 1, 11},
		"negative":    {-10.5, 1, -10},
		"scaled grid": {25, 5, 5},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tt.want, Quantize(tt.coord, tt.gridsize))
		})
	}
}

func TestQuantizePoint(t *testing.T) {
	got := QuantizePoint(point.New(2.5, -2.5), 1)
	assert.Equal(t, grid.Point{X: 3, Y: -2}, got)
}

func TestQuantize_ClampsToGridRange(t *testing.T) {
	got := Quantize(1e12, 1)
	assert.Equal(t, grid.CoordMax, got)
}
