package geom

import "math"

// Vector2 is a point or displacement in pixel space.
type Vector2 struct {
	X float64
	Y float64
}

// Zero is the origin / empty displacement.
var Zero = Vector2{}

func (v Vector2) Add(o Vector2) Vector2 {
	return Vector2{X: v.X + o.X, Y: v.Y + o.Y}
}

func (v Vector2) Sub(o Vector2) Vector2 {
	return Vector2{X: v.X - o.X, Y: v.Y - o.Y}
}

func (v Vector2) Mul(s float64) Vector2 {
	return Vector2{X: v.X * s, Y: v.Y * s}
}

func (v Vector2) Dot(o Vector2) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Len returns the Euclidean length. math.Hypot keeps it stable for large components.
func (v Vector2) Len() float64 {
	return math.Hypot(v.X, v.Y)
}

// Dist returns the distance between two points.
func (v Vector2) Dist(o Vector2) float64 {
	return math.Hypot(v.X-o.X, v.Y-o.Y)
}

// Finite reports whether both components are real numbers.
func (v Vector2) Finite() bool {
	return finite(v.X) && finite(v.Y)
}

// IsZero reports whether the vector is exactly the origin.
func (v Vector2) IsZero() bool {
	return v.X == 0 && v.Y == 0
}

// Clamp01 limits v to [0, 1]. NaN maps to 0.
func Clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
