package geom

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVector2_Operations(t *testing.T) {
	v1 := Vector2{X: 3, Y: 4}
	v2 := Vector2{X: 1, Y: 2}

	t.Run("Add", func(t *testing.T) {
		assert.Equal(t, Vector2{X: 4, Y: 6}, v1.Add(v2))
	})

	t.Run("Sub", func(t *testing.T) {
		assert.Equal(t, Vector2{X: 2, Y: 2}, v1.Sub(v2))
	})

	t.Run("Mul", func(t *testing.T) {
		assert.Equal(t, Vector2{X: 6, Y: 8}, v1.Mul(2))
	})

	t.Run("Dot", func(t *testing.T) {
		assert.Equal(t, 11.0, v1.Dot(v2))
	})

	t.Run("Len", func(t *testing.T) {
		assert.Equal(t, 5.0, v1.Len())
	})

	t.Run("Dist", func(t *testing.T) {
		assert.InDelta(t, math.Sqrt(8), v1.Dist(v2), 1e-9)
	})
}

func TestVector2_Finite(t *testing.T) {
	assert.True(t, Vector2{X: 1, Y: -1}.Finite())
	assert.False(t, Vector2{X: math.NaN()}.Finite())
	assert.False(t, Vector2{Y: math.Inf(-1)}.Finite())
}

func TestClamp01(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{-0.5, 0},
		{0, 0},
		{0.25, 0.25},
		{1, 1},
		{3, 1},
		{math.NaN(), 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Clamp01(tt.in), "Clamp01(%v)", tt.in)
	}
}
