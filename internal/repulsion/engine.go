// Package repulsion moves an element away from the pointer. Geometry runs on
// every pointer move and produces a target offset; a per-axis spring, advanced
// by the host once per frame, eases the rendered offset toward it.
//
// A Handle is not safe for concurrent use. Hosts deliver pointer moves,
// preference changes and ticks from a single loop.
package repulsion

import (
	"time"

	"github.com/iburimskiy/mouse-away/internal/geom"
)

// PointerSource delivers global pointer positions in viewport coordinates.
type PointerSource interface {
	Subscribe(fn func(pos geom.Vector2)) (unsubscribe func())
}

// Env is what the engine needs from its host. Every field is optional: no
// Pointer means no moves arrive, no Motion means no reduced-motion
// preference, no Viewport means an element with viewport bounds is never
// pushed.
type Env struct {
	Pointer  PointerSource
	Viewport func() (geom.Rect, bool)
	Motion   MotionPreference
}

// Handle is one activation of the engine.
type Handle struct {
	env     Env
	cfg     Config
	element Element
	reduced bool
	active  bool

	target   geom.Vector2
	offset   *Offset
	smoother *smoother

	cancels []func()
}

// Activate starts listening to pointer moves and preference changes.
func Activate(env Env, cfg Config) *Handle {
	cfg = cfg.normalized()
	h := &Handle{
		env:      env,
		cfg:      cfg,
		active:   true,
		offset:   newOffset(),
		smoother: newSmoother(cfg.Spring),
	}
	if env.Motion != nil {
		h.reduced = env.Motion.ReducedMotion()
		h.cancels = append(h.cancels, env.Motion.Watch(h.setReducedMotion))
	}
	if env.Pointer != nil {
		h.cancels = append(h.cancels, env.Pointer.Subscribe(h.Move))
	}
	return h
}

// SetElement sets the tracked element; nil stops tracking.
func (h *Handle) SetElement(el Element) {
	if !h.active {
		return
	}
	h.element = el
}

// Element returns the tracked element, nil when none is set.
func (h *Handle) Element() Element { return h.element }

// Offset returns the smoothed offset cell the renderer reads.
func (h *Handle) Offset() *Offset { return h.offset }

// Target returns the latest unsmoothed, clamped offset.
func (h *Handle) Target() geom.Vector2 { return h.target }

// Config returns the normalized configuration in use.
func (h *Handle) Config() Config { return h.cfg }

// Active reports whether the handle still listens for input.
func (h *Handle) Active() bool { return h.active }

// ReducedMotion reports whether the reduced-motion preference currently
// suppresses the push.
func (h *Handle) ReducedMotion() bool {
	return h.reduced && h.cfg.RespectReducedMotion
}

// Configure swaps the configuration. The next pointer move uses it. Turning
// the engine off, directly or through reduced motion, clears the target right
// away so the spring starts settling.
func (h *Handle) Configure(cfg Config) {
	if !h.active {
		return
	}
	h.cfg = cfg.normalized()
	h.smoother.configure(h.cfg.Spring)
	if h.suppressed() {
		h.target = geom.Zero
	}
}

// Move recomputes the target for a pointer at pos. It is the subscriber
// installed on Env.Pointer and may also be called directly by hosts that own
// their event loop.
func (h *Handle) Move(pos geom.Vector2) {
	if !h.active {
		return
	}
	if h.suppressed() {
		h.target = geom.Zero
		return
	}
	if h.element == nil {
		return
	}
	rect, ok := h.element.Rect()
	if !ok || !rect.Measurable() {
		return
	}

	raw := Push(rect, pos, h.cfg.Radius, h.cfg.Strength)
	if raw.IsZero() {
		h.target = geom.Zero
		return
	}
	bounds, ok := h.cfg.Bounds.resolve(h.env.Viewport)
	if !ok {
		h.target = geom.Zero
		return
	}
	// The target is relative to the resting box, not to the rendered one.
	resting := rect.Translate(h.offset.Get().Mul(-1))
	h.target = ClampToBounds(raw, resting, bounds)
}

// Tick advances the spring by dt and publishes the new offset.
func (h *Handle) Tick(dt time.Duration) {
	if !h.active {
		return
	}
	h.offset.set(h.smoother.step(dt.Seconds(), h.target))
}

// Settled reports whether the smoothed offset has come to rest on the target.
func (h *Handle) Settled() bool {
	return h.smoother.settled(h.target)
}

// Deactivate removes every subscription. Offsets keep their last values and
// later calls on the handle have no effect. Safe to call more than once.
func (h *Handle) Deactivate() {
	if !h.active {
		return
	}
	h.active = false
	for _, cancel := range h.cancels {
		cancel()
	}
	h.cancels = nil
}

func (h *Handle) setReducedMotion(reduced bool) {
	if !h.active {
		return
	}
	h.reduced = reduced
	if h.suppressed() {
		h.target = geom.Zero
	}
}

func (h *Handle) suppressed() bool {
	return h.cfg.Disabled || h.ReducedMotion()
}
