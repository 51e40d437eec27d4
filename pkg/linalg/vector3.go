package linalg

import "math"

// Vector3 is a 3D vector value.
type Vector3 struct {
	X, Y, Z float64
}

// V3 is shorthand for Vector3{x, y, z}.
func V3(x, y, z float64) Vector3 { return Vector3{X: x, Y: y, Z: z} }

// WorldUp is the +Y axis.
var WorldUp = Vector3{0, 1, 0}

// Add returns v + o.
func (v Vector3) Add(o Vector3) Vector3 { return Vector3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }

// Sub returns v - o.
func (v Vector3) Sub(o Vector3) Vector3 { return Vector3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }

// AddAssign accumulates o into v.
func (v *Vector3) AddAssign(o Vector3) {
	v.X += o.X
	v.Y += o.Y
	v.Z += o.Z
}

// SubAssign subtracts o from v in place.
func (v *Vector3) SubAssign(o Vector3) {
	v.X -= o.X
	v.Y -= o.Y
	v.Z -= o.Z
}

// Scale multiplies every component by s.
func (v Vector3) Scale(s float64) Vector3 { return Vector3{v.X * s, v.Y * s, v.Z * s} }

// Negate returns -v.
func (v Vector3) Negate() Vector3 { return Vector3{-v.X, -v.Y, -v.Z} }

// Dot returns the dot product.
func (v Vector3) Dot(o Vector3) float64 { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }

// Cross returns the right-handed cross product v x o.
func (v Vector3) Cross(o Vector3) Vector3 {
	return Vector3{
		X: v.Y*o.Z - v.Z*o.Y,
		Y: v.Z*o.X - v.X*o.Z,
		Z: v.X*o.Y - v.Y*o.X,
	}
}

// Length returns the Euclidean length.
func (v Vector3) Length() float64 { return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z) }

// Normalize returns v scaled to unit length. The length must be non-zero;
// a zero vector yields NaN components.
func (v Vector3) Normalize() Vector3 {
	l := v.Length()
	return Vector3{v.X / l, v.Y / l, v.Z / l}
}

// BirdView drops the vertical component, keeping movement on the XZ plane.
func (v Vector3) BirdView() Vector3 { return Vector3{v.X, 0, v.Z} }

// Array returns the components as float32.
func (v Vector3) Array() [3]float32 {
	return [3]float32{float32(v.X), float32(v.Y), float32(v.Z)}
}
