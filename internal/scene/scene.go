// Package scene is the checkout demo independent of any host: a container
// box with a button centered in it that runs away from the pointer.
package scene

import (
	"time"

	"github.com/iburimskiy/mouse-away/internal/config"
	"github.com/iburimskiy/mouse-away/internal/geom"
	"github.com/iburimskiy/mouse-away/internal/repulsion"
)

// Scene tracks the layout, the engine handle and the demo counters.
type Scene struct {
	cfg      config.SceneConfig
	viewport geom.Rect
	handle   *repulsion.Handle
	trail    *Trail

	pushing bool
	dodges  int
	catches int
}

// New lays the scene out in a width x height viewport.
func New(cfg config.SceneConfig, width, height float64) *Scene {
	return &Scene{
		cfg:      cfg,
		viewport: geom.NewRect(0, 0, width, height),
		trail:    NewTrail(config.TrailRingSize),
	}
}

// Resize follows the host viewport.
func (s *Scene) Resize(width, height float64) {
	s.viewport = geom.NewRect(0, 0, width, height)
}

// Viewport is the engine's viewport query.
func (s *Scene) Viewport() (geom.Rect, bool) {
	return s.viewport, !s.viewport.Empty()
}

// Container returns the demo box: full width minus padding, vertically
// centered. ok is false when the viewport is too small to hold it.
func (s *Scene) Container() (geom.Rect, bool) {
	w := s.viewport.Width - 2*s.cfg.Padding
	h := s.cfg.ContainerHeight
	if h > s.viewport.Height-2*s.cfg.Padding {
		h = s.viewport.Height - 2*s.cfg.Padding
	}
	if w <= 0 || h <= 0 {
		return geom.Rect{}, false
	}
	top := s.viewport.Top + (s.viewport.Height-h)/2
	return geom.NewRect(s.viewport.Left+s.cfg.Padding, top, w, h), true
}

// ButtonBase is the button's resting box, centered in the container.
func (s *Scene) ButtonBase() (geom.Rect, bool) {
	c, ok := s.Container()
	if !ok {
		return geom.Rect{}, false
	}
	center := c.Center()
	w, h := s.cfg.ButtonWidth, s.cfg.ButtonHeight
	return geom.NewRect(center.X-w/2, center.Y-h/2, w, h), true
}

// Button is the box as rendered: the resting box moved by the smoothed offset.
func (s *Scene) Button() (geom.Rect, bool) {
	base, ok := s.ButtonBase()
	if !ok {
		return geom.Rect{}, false
	}
	return base.Translate(s.Offset()), true
}

// ContainerElement measures the container for container bounds.
func (s *Scene) ContainerElement() repulsion.Element { return repulsion.ElementFunc(s.Container) }

// ButtonElement measures the rendered button for the engine.
func (s *Scene) ButtonElement() repulsion.Element { return repulsion.ElementFunc(s.Button) }

// Activate starts the engine for the button. env.Viewport defaults to the
// scene viewport.
func (s *Scene) Activate(env repulsion.Env, rc config.RepulsionConfig) *repulsion.Handle {
	if env.Viewport == nil {
		env.Viewport = s.Viewport
	}
	s.handle = repulsion.Activate(env, rc.Engine(s.ContainerElement()))
	s.handle.SetElement(s.ButtonElement())
	return s.handle
}

// Reconfigure applies new settings to the running engine.
func (s *Scene) Reconfigure(rc config.RepulsionConfig) {
	if s.handle == nil {
		return
	}
	s.handle.Configure(rc.Engine(s.ContainerElement()))
}

// Handle returns the engine handle, nil before Activate.
func (s *Scene) Handle() *repulsion.Handle { return s.handle }

// Deactivate stops the engine; the button stays where it is.
func (s *Scene) Deactivate() {
	if s.handle != nil {
		s.handle.Deactivate()
	}
}

// Offset is the current smoothed offset, zero before activation.
func (s *Scene) Offset() geom.Vector2 {
	if s.handle == nil {
		return geom.Zero
	}
	return s.handle.Offset().Get()
}

// Step advances the spring by one frame and reports whether the button just
// started dodging.
func (s *Scene) Step(dt time.Duration) (dodged bool) {
	if s.handle == nil {
		return false
	}
	s.handle.Tick(dt)
	s.trail.Push(s.Offset())

	pushing := !s.handle.Target().IsZero()
	dodged = pushing && !s.pushing
	s.pushing = pushing
	if dodged {
		s.dodges++
	}
	return dodged
}

// Click registers a click and reports whether it landed on the button.
func (s *Scene) Click(p geom.Vector2) bool {
	b, ok := s.Button()
	if !ok || !b.Contains(p) {
		return false
	}
	s.catches++
	return true
}

// Hovered reports whether p is over the button.
func (s *Scene) Hovered(p geom.Vector2) bool {
	b, ok := s.Button()
	return ok && b.Contains(p)
}

// Trail holds the offsets of recent frames.
func (s *Scene) Trail() *Trail { return s.trail }

// Label is the button caption.
func (s *Scene) Label() string { return s.cfg.Label }

// Stats returns how often the button dodged and how often it was caught.
func (s *Scene) Stats() (dodges, catches int) { return s.dodges, s.catches }
