package repulsion

import (
	"math"

	"github.com/iburimskiy/mouse-away/internal/geom"
)

const (
	DefaultRadius    = 120.0
	DefaultStrength  = 180.0
	DefaultStiffness = 250.0
	DefaultDamping   = 22.0
	DefaultMass      = 1.0
	DefaultRestDelta = 0.01
	DefaultRestSpeed = 0.01
)

// Element is anything whose on-screen box can be measured on demand. Rect
// reports the box as rendered, with the current offset already applied.
// ok is false when the element is not laid out (unmounted, zero-sized window, ...).
type Element interface {
	Rect() (r geom.Rect, ok bool)
}

// ElementFunc adapts a plain function to Element.
type ElementFunc func() (geom.Rect, bool)

func (f ElementFunc) Rect() (geom.Rect, bool) { return f() }

type boundsKind uint8

const (
	boundsNone boundsKind = iota
	boundsViewport
	boundsContainer
)

// Bounds selects the rectangle the element is kept inside. The zero value
// behaves like ViewportBounds.
type Bounds struct {
	kind      boundsKind
	container Element
}

// ViewportBounds clamps against the host viewport.
func ViewportBounds() Bounds { return Bounds{kind: boundsViewport} }

// ContainerBounds clamps against el. A nil el behaves like ViewportBounds.
func ContainerBounds(el Element) Bounds {
	if el == nil {
		return Bounds{}
	}
	return Bounds{kind: boundsContainer, container: el}
}

// Container returns the container element, if any.
func (b Bounds) Container() (Element, bool) {
	return b.container, b.kind == boundsContainer
}

func (b Bounds) String() string {
	switch b.kind {
	case boundsContainer:
		return "container"
	case boundsViewport:
		return "viewport"
	default:
		return "default"
	}
}

// resolve returns the active bounds rectangle. A container that cannot be
// measured falls back to the viewport.
func (b Bounds) resolve(viewport func() (geom.Rect, bool)) (geom.Rect, bool) {
	if b.kind == boundsContainer {
		if r, ok := b.container.Rect(); ok && r.Measurable() {
			return r, true
		}
	}
	if viewport == nil {
		return geom.Rect{}, false
	}
	r, ok := viewport()
	if !ok || !r.Measurable() {
		return geom.Rect{}, false
	}
	return r, true
}

// Spring holds the smoothing parameters, expressed the way CSS animation
// libraries do (stiffness, damping, mass).
type Spring struct {
	Stiffness float64
	Damping   float64
	Mass      float64
	// RestDelta and RestSpeed bound the distance and velocity under which an
	// axis snaps onto its target.
	RestDelta float64
	RestSpeed float64
}

func DefaultSpring() Spring {
	return Spring{
		Stiffness: DefaultStiffness,
		Damping:   DefaultDamping,
		Mass:      DefaultMass,
		RestDelta: DefaultRestDelta,
		RestSpeed: DefaultRestSpeed,
	}
}

// AngularFrequency is sqrt(k/m).
func (s Spring) AngularFrequency() float64 {
	return math.Sqrt(s.Stiffness / s.Mass)
}

// DampingRatio is c / (2*sqrt(k*m)); 1 is critical damping.
func (s Spring) DampingRatio() float64 {
	return s.Damping / (2 * math.Sqrt(s.Stiffness*s.Mass))
}

func (s Spring) normalized() Spring {
	d := DefaultSpring()
	if !(s.Stiffness > 0) || math.IsInf(s.Stiffness, 0) {
		s.Stiffness = d.Stiffness
	}
	if !(s.Damping >= 0) || math.IsInf(s.Damping, 0) {
		s.Damping = d.Damping
	}
	if !(s.Mass > 0) || math.IsInf(s.Mass, 0) {
		s.Mass = d.Mass
	}
	if !(s.RestDelta >= 0) {
		s.RestDelta = d.RestDelta
	}
	if !(s.RestSpeed >= 0) {
		s.RestSpeed = d.RestSpeed
	}
	return s
}

// Config is the per-activation configuration. Start from DefaultConfig and
// override fields; a zero Config has a zero radius and never pushes.
type Config struct {
	// Radius of the influence bubble around the pointer, in pixels.
	Radius float64
	// Strength is the push at the bubble center, in pixels.
	Strength float64
	Bounds   Bounds
	Disabled bool
	// RespectReducedMotion makes the platform reduced-motion preference
	// disable the push.
	RespectReducedMotion bool
	Spring               Spring
}

func DefaultConfig() Config {
	return Config{
		Radius:               DefaultRadius,
		Strength:             DefaultStrength,
		RespectReducedMotion: true,
		Spring:               DefaultSpring(),
	}
}

// normalized replaces values the geometry cannot use. A non-positive or NaN
// radius is kept: the distance check then never passes.
func (c Config) normalized() Config {
	if !(c.Strength > 0) || math.IsInf(c.Strength, 0) {
		c.Strength = 0
	}
	c.Spring = c.Spring.normalized()
	return c
}
