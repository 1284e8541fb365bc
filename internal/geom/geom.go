// Package geom provides 2D vector math for the simulation.
// It contains no external dependencies so the core logic stays pure
// and testable.
package geom

import "math"

// Vec2 is a point or direction in board coordinates.
type Vec2 struct {
	X, Y float64
}

// V is shorthand for constructing a Vec2.
func V(x, y float64) Vec2 {
	return Vec2{X: x, Y: y}
}

// FromAngle returns the unit vector at the given angle in radians.
func FromAngle(rad float64) Vec2 {
	return Vec2{X: math.Cos(rad), Y: math.Sin(rad)}
}

// Add returns a + b.
func (a Vec2) Add(b Vec2) Vec2 {
	return Vec2{X: a.X + b.X, Y: a.Y + b.Y}
}

// Sub returns a - b.
func (a Vec2) Sub(b Vec2) Vec2 {
	return Vec2{X: a.X - b.X, Y: a.Y - b.Y}
}

// Scale returns a scaled by s.
func (a Vec2) Scale(s float64) Vec2 {
	return Vec2{X: a.X * s, Y: a.Y * s}
}

// Len returns the Euclidean length of a.
func (a Vec2) Len() float64 {
	return math.Hypot(a.X, a.Y)
}

// Len2 returns the squared length of a. Cheaper than Len when only
// comparisons are needed.
func (a Vec2) Len2() float64 {
	return a.X*a.X + a.Y*a.Y
}

// Dist returns the Euclidean distance between a and b.
func (a Vec2) Dist(b Vec2) float64 {
	return a.Sub(b).Len()
}

// Dist2 returns the squared distance between a and b.
func (a Vec2) Dist2(b Vec2) float64 {
	return a.Sub(b).Len2()
}

// Normalize returns the unit vector in the direction of a.
// The zero vector normalizes to the zero vector.
func (a Vec2) Normalize() Vec2 {
	l := a.Len()
	if l == 0 {
		return Vec2{}
	}
	return Vec2{X: a.X / l, Y: a.Y / l}
}

// Lerp linearly interpolates from a to b by t.
func (a Vec2) Lerp(b Vec2, t float64) Vec2 {
	return Vec2{
		X: a.X + (b.X-a.X)*t,
		Y: a.Y + (b.Y-a.Y)*t,
	}
}

// ClampLen returns a shortened to at most max, preserving direction.
func (a Vec2) ClampLen(max float64) Vec2 {
	l2 := a.Len2()
	if l2 <= max*max {
		return a
	}
	return a.Scale(max / math.Sqrt(l2))
}

// Clamp restricts a float64 value to be within [min, max].
func Clamp(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
