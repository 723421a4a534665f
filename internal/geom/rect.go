package geom

// Rect is an axis-aligned box in the same coordinate space as pointer
// positions. Width and Height are always Right-Left and Bottom-Top.
type Rect struct {
	Left   float64
	Top    float64
	Right  float64
	Bottom float64
	Width  float64
	Height float64
}

// NewRect builds a Rect from its top-left corner and size.
func NewRect(x, y, w, h float64) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h, Width: w, Height: h}
}

// Edges builds a Rect from its four edges.
func Edges(left, top, right, bottom float64) Rect {
	return Rect{Left: left, Top: top, Right: right, Bottom: bottom, Width: right - left, Height: bottom - top}
}

// Center returns the midpoint of the box.
func (r Rect) Center() Vector2 {
	return Vector2{X: r.Left + r.Width/2, Y: r.Top + r.Height/2}
}

// Translate shifts the box by d.
func (r Rect) Translate(d Vector2) Rect {
	return Rect{
		Left:   r.Left + d.X,
		Top:    r.Top + d.Y,
		Right:  r.Right + d.X,
		Bottom: r.Bottom + d.Y,
		Width:  r.Width,
		Height: r.Height,
	}
}

// Contains reports whether p lies inside the box, edges included.
func (r Rect) Contains(p Vector2) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

// Inside reports whether r lies entirely within outer, edges included.
func (r Rect) Inside(outer Rect) bool {
	return r.Left >= outer.Left && r.Top >= outer.Top && r.Right <= outer.Right && r.Bottom <= outer.Bottom
}

// Measurable reports whether the box has finite edges and a non-negative size.
// Boxes that fail this check are treated as not laid out.
func (r Rect) Measurable() bool {
	return finite(r.Left) && finite(r.Top) && finite(r.Right) && finite(r.Bottom) &&
		r.Width >= 0 && r.Height >= 0
}

// Empty reports whether the box has no area.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
