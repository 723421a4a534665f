package repulsion

import (
	"math"

	"github.com/charmbracelet/harmonica"

	"github.com/iburimskiy/mouse-away/internal/geom"
)

// smoother drives one damped spring per axis toward a moving target.
type smoother struct {
	params Spring
	dt     float64
	spring harmonica.Spring
	pos    geom.Vector2
	vel    geom.Vector2
}

func newSmoother(p Spring) *smoother {
	return &smoother{params: p}
}

func (s *smoother) configure(p Spring) {
	if p == s.params {
		return
	}
	s.params = p
	s.dt = 0
}

// step advances the springs by dt seconds and returns the new position.
func (s *smoother) step(dt float64, target geom.Vector2) geom.Vector2 {
	if !(dt > 0) || math.IsInf(dt, 0) || !target.Finite() {
		return s.pos
	}
	// harmonica precomputes coefficients for a fixed delta; rebuild only when
	// the frame time changes.
	if dt != s.dt {
		s.spring = harmonica.NewSpring(dt, s.params.AngularFrequency(), s.params.DampingRatio())
		s.dt = dt
	}
	s.pos.X, s.vel.X = s.axis(s.pos.X, s.vel.X, target.X)
	s.pos.Y, s.vel.Y = s.axis(s.pos.Y, s.vel.Y, target.Y)
	return s.pos
}

func (s *smoother) axis(pos, vel, target float64) (float64, float64) {
	pos, vel = s.spring.Update(pos, vel, target)
	if math.Abs(target-pos) < s.params.RestDelta && math.Abs(vel) < s.params.RestSpeed {
		return target, 0
	}
	return pos, vel
}

func (s *smoother) settled(target geom.Vector2) bool {
	return s.pos == target && s.vel.IsZero()
}
