package repulsion

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/iburimskiy/mouse-away/internal/geom"
)

func TestDefaultSpring_IsUnderCriticallyDamped(t *testing.T) {
	s := DefaultSpring()
	assert.InDelta(t, math.Sqrt(250), s.AngularFrequency(), 1e-9)
	assert.InDelta(t, 22/(2*math.Sqrt(250)), s.DampingRatio(), 1e-9)
	assert.Greater(t, s.DampingRatio(), 0.6)
	assert.Less(t, s.DampingRatio(), 1.0)
}

func TestSmoother_SettlesWithoutBouncing(t *testing.T) {
	s := newSmoother(DefaultSpring())
	target := geom.Vector2{X: 100, Y: -40}

	maxX := 0.0
	for i := 0; i < 300; i++ {
		p := s.step(1.0/60, target)
		maxX = math.Max(maxX, p.X)
		if i == 60 {
			assert.InDelta(t, target.X, p.X, 0.5, "one second in, only a small ripple is left")
		}
	}

	assert.True(t, s.settled(target))
	assert.Less(t, maxX, 110.0, "overshoot stays small")
}

func TestSmoother_IgnoresBadFrames(t *testing.T) {
	s := newSmoother(DefaultSpring())
	target := geom.Vector2{X: 10}

	assert.Equal(t, geom.Zero, s.step(0, target))
	assert.Equal(t, geom.Zero, s.step(-1, target))
	assert.Equal(t, geom.Zero, s.step(math.NaN(), target))
	assert.Equal(t, geom.Zero, s.step(1.0/60, geom.Vector2{X: math.NaN()}))
}

func TestSmoother_VariableFrameTime(t *testing.T) {
	s := newSmoother(DefaultSpring())
	target := geom.Vector2{Y: 50}
	for i := 0; i < 400; i++ {
		dt := 1.0 / 60
		if i%3 == 0 {
			dt = 1.0 / 30
		}
		s.step(dt, target)
	}
	assert.True(t, s.settled(target))
}

func TestSmoother_Reconfigure(t *testing.T) {
	s := newSmoother(DefaultSpring())
	s.step(1.0/60, geom.Vector2{X: 10})
	before := s.spring

	stiff := DefaultSpring()
	stiff.Stiffness = 1000
	s.configure(stiff)
	assert.Zero(t, s.dt, "changing parameters drops cached coefficients")

	s.step(1.0/60, geom.Vector2{X: 10})
	assert.NotEqual(t, before, s.spring)
}
