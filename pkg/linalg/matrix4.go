package linalg

import "math"

// Matrix4 is a 4x4 matrix indexed [row][col]. Vectors are columns and are
// multiplied on the right, so translation lives in the last column.
//
// Components exports the transpose (column-major), which is what GL-style
// uniform uploads expect.
type Matrix4 [4][4]float64

// Vector4 is a homogeneous coordinate.
type Vector4 struct {
	X, Y, Z, W float64
}

// Identity returns the identity matrix.
func Identity() Matrix4 {
	return Matrix4{
		{1, 0, 0, 0},
		{0, 1, 0, 0},
		{0, 0, 1, 0},
		{0, 0, 0, 1},
	}
}

// Translate returns a translation by (x, y, z).
func Translate(x, y, z float64) Matrix4 {
	return Matrix4{
		{1, 0, 0, x},
		{0, 1, 0, y},
		{0, 0, 1, z},
		{0, 0, 0, 1},
	}
}

// Scale returns a diagonal scale matrix.
func Scale(x, y, z float64) Matrix4 {
	return Matrix4{
		{x, 0, 0, 0},
		{0, y, 0, 0},
		{0, 0, z, 0},
		{0, 0, 0, 1},
	}
}

// Rotate returns the Tait-Bryan rotation Rz(yaw) * Ry(pitch) * Rx(roll).
func Rotate(roll, pitch, yaw float64) Matrix4 {
	sr, cr := math.Sincos(roll)
	sp, cp := math.Sincos(pitch)
	sy, cy := math.Sincos(yaw)
	return Matrix4{
		{cy * cp, cy*sp*sr - sy*cr, cy*sp*cr + sy*sr, 0},
		{sy * cp, sy*sp*sr + cy*cr, sy*sp*cr - cy*sr, 0},
		{-sp, cp * sr, cp * cr, 0},
		{0, 0, 0, 1},
	}
}

// Perspective returns a right-handed projection with a vertical field of
// view of fovy radians, mapping [-near, -far] on the view axis to [-1, 1].
func Perspective(fovy, aspect, near, far float64) Matrix4 {
	f := 1 / math.Tan(fovy/2)
	zz := (far + near) / (near - far)
	zw := 2 * far * near / (near - far)
	return Matrix4{
		{f / aspect, 0, 0, 0},
		{0, f, 0, 0},
		{0, 0, zz, zw},
		{0, 0, -1, 0},
	}
}

// LookAt returns the view matrix of an eye looking at center. The direction
// center-eye must not be parallel to up.
func LookAt(eye, center, up Vector3) Matrix4 {
	f := center.Sub(eye).Normalize()
	s := f.Cross(up).Normalize()
	u := s.Cross(f)
	return Matrix4{
		{s.X, s.Y, s.Z, -s.Dot(eye)},
		{u.X, u.Y, u.Z, -u.Dot(eye)},
		{-f.X, -f.Y, -f.Z, f.Dot(eye)},
		{0, 0, 0, 1},
	}
}

// Mul returns m * o.
func (m Matrix4) Mul(o Matrix4) Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m[i][0]*o[0][j] + m[i][1]*o[1][j] + m[i][2]*o[2][j] + m[i][3]*o[3][j]
		}
	}
	return r
}

// MulVec4 returns m * v.
func (m Matrix4) MulVec4(v Vector4) Vector4 {
	return Vector4{
		X: m[0][0]*v.X + m[0][1]*v.Y + m[0][2]*v.Z + m[0][3]*v.W,
		Y: m[1][0]*v.X + m[1][1]*v.Y + m[1][2]*v.Z + m[1][3]*v.W,
		Z: m[2][0]*v.X + m[2][1]*v.Y + m[2][2]*v.Z + m[2][3]*v.W,
		W: m[3][0]*v.X + m[3][1]*v.Y + m[3][2]*v.Z + m[3][3]*v.W,
	}
}

// TransformPoint transforms p (w=1) and performs the perspective divide.
// The clip-space w is returned as well; when it is zero the point is
// returned undivided.
func (m Matrix4) TransformPoint(p Vector3) (Vector3, float64) {
	r := m.MulVec4(Vector4{p.X, p.Y, p.Z, 1})
	if r.W == 0 {
		return Vector3{r.X, r.Y, r.Z}, 0
	}
	return Vector3{r.X / r.W, r.Y / r.W, r.Z / r.W}, r.W
}

// Transpose swaps rows and columns.
func (m Matrix4) Transpose() Matrix4 {
	var r Matrix4
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			r[i][j] = m[j][i]
		}
	}
	return r
}

// Components exports the matrix column-major: Components()[c][r] is the
// entry at row r, column c.
func (m Matrix4) Components() [4][4]float32 {
	var out [4][4]float32
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			out[c][r] = float32(m[r][c])
		}
	}
	return out
}
