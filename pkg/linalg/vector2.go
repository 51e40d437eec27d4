// Package linalg provides the small vector and matrix types used to place the
// camera and project the field into screen space.
package linalg

import "math"

// Vector2 is a 2D vector value.
type Vector2 struct {
	X, Y float64
}

// V2 is shorthand for Vector2{x, y}.
func V2(x, y float64) Vector2 { return Vector2{X: x, Y: y} }

// Zero2 returns the zero vector.
func Zero2() Vector2 { return Vector2{} }

// Add returns v + o.
func (v Vector2) Add(o Vector2) Vector2 { return Vector2{v.X + o.X, v.Y + o.Y} }

// Sub returns v - o.
func (v Vector2) Sub(o Vector2) Vector2 { return Vector2{v.X - o.X, v.Y - o.Y} }

// AddAssign accumulates o into v.
func (v *Vector2) AddAssign(o Vector2) {
	v.X += o.X
	v.Y += o.Y
}

// SubAssign subtracts o from v in place.
func (v *Vector2) SubAssign(o Vector2) {
	v.X -= o.X
	v.Y -= o.Y
}

// Scale multiplies both components by s.
func (v Vector2) Scale(s float64) Vector2 { return Vector2{v.X * s, v.Y * s} }

// Dot returns the dot product.
func (v Vector2) Dot(o Vector2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the scalar z component of the 3D cross product of v and o.
func (v Vector2) Cross(o Vector2) float64 { return v.X*o.Y - v.Y*o.X }

// Length returns the Euclidean length.
func (v Vector2) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y) }

// Normalize returns v scaled to unit length. The length must be non-zero;
// a zero vector yields NaN components.
func (v Vector2) Normalize() Vector2 {
	l := v.Length()
	return Vector2{v.X / l, v.Y / l}
}

// Rotate turns v counter-clockwise by angle radians.
func (v Vector2) Rotate(angle float64) Vector2 {
	sin, cos := math.Sincos(angle)
	return Vector2{
		X: v.X*cos - v.Y*sin,
		Y: v.X*sin + v.Y*cos,
	}
}

// RotateAbsolute keeps the length of v and points it at angle radians.
func (v Vector2) RotateAbsolute(angle float64) Vector2 {
	l := v.Length()
	sin, cos := math.Sincos(angle)
	return Vector2{X: l * cos, Y: l * sin}
}

// ReflectX mirrors v across the y axis.
func (v Vector2) ReflectX() Vector2 { return Vector2{-v.X, v.Y} }

// ReflectY mirrors v across the x axis.
func (v Vector2) ReflectY() Vector2 { return Vector2{v.X, -v.Y} }

// Array returns the components as float32, the form shader uniforms take.
func (v Vector2) Array() [2]float32 { return [2]float32{float32(v.X), float32(v.Y)} }
