package repulsion

import "github.com/iburimskiy/mouse-away/internal/geom"

// degenerateDistance is the pointer-to-center distance under which the push
// direction is undefined.
const degenerateDistance = 1e-4

// Intensity is the linear falloff inside the bubble: 1 at the pointer, 0 at
// the bubble edge.
func Intensity(d, radius float64) float64 {
	return geom.Clamp01(1 - d/radius)
}

// Push returns the raw offset that moves elem straight away from pointer.
// It is zero outside the bubble and when the pointer sits on the center.
func Push(elem geom.Rect, pointer geom.Vector2, radius, strength float64) geom.Vector2 {
	away := elem.Center().Sub(pointer)
	d := away.Len()
	if !(d < radius) || !(d > degenerateDistance) {
		return geom.Zero
	}
	dir := away.Mul(1 / d)
	return dir.Mul(strength * Intensity(d, radius))
}

// ClampToBounds pulls offset back so that elem moved by offset stays inside
// bounds. Overflows are measured once on the predicted box and each positive
// overflow is removed from its axis. An element larger than bounds gets both
// corrections on that axis.
func ClampToBounds(offset geom.Vector2, elem, bounds geom.Rect) geom.Vector2 {
	predicted := elem.Translate(offset)

	overLeft := bounds.Left - predicted.Left
	overTop := bounds.Top - predicted.Top
	overRight := predicted.Right - bounds.Right
	overBottom := predicted.Bottom - bounds.Bottom

	if overLeft > 0 {
		offset.X += overLeft
	}
	if overTop > 0 {
		offset.Y += overTop
	}
	if overRight > 0 {
		offset.X -= overRight
	}
	if overBottom > 0 {
		offset.Y -= overBottom
	}
	return offset
}
