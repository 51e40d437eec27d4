package linalg

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertMatrix(t *testing.T, want, got Matrix4) {
	t.Helper()
	for r := 0; r < 4; r++ {
		for c := 0; c < 4; c++ {
			assert.InDelta(t, want[r][c], got[r][c], eps, "entry [%d][%d]", r, c)
		}
	}
}

func TestPerspectiveClosedForm(t *testing.T) {
	near, far := 0.1, 100.0
	p := Perspective(math.Pi/2, 1.0, near, far)
	comp := p.Components()

	zz := (far + near) / (near - far)
	zw := 2 * far * near / (near - far)

	require.InDelta(t, zz, float64(comp[2][2]), 1e-5)
	require.InDelta(t, -1.0, float64(comp[2][3]), 1e-6)
	require.InDelta(t, zw, float64(comp[3][2]), 1e-5)
	require.InDelta(t, 0.0, float64(comp[3][3]), 1e-6)

	// tan(45deg) == 1
	assert.InDelta(t, 1.0, float64(comp[0][0]), 1e-6)
	assert.InDelta(t, 1.0, float64(comp[1][1]), 1e-6)
}

func TestPerspectiveMapsClipPlanes(t *testing.T) {
	p := Perspective(math.Pi/3, 16.0/9.0, 0.5, 50)

	nearPt, w := p.TransformPoint(V3(0, 0, -0.5))
	require.Greater(t, w, 0.0)
	assert.InDelta(t, -1.0, nearPt.Z, eps)

	farPt, _ := p.TransformPoint(V3(0, 0, -50))
	assert.InDelta(t, 1.0, farPt.Z, eps)
}

func TestLookAtOrthonormalBasis(t *testing.T) {
	eye := V3(0, 0, 5)
	v := LookAt(eye, V3(0, 0, 0), V3(0, 1, 0))

	side := V3(v[0][0], v[0][1], v[0][2])
	up := V3(v[1][0], v[1][1], v[1][2])
	forward := V3(v[2][0], v[2][1], v[2][2]).Negate()

	assertVec3(t, V3(0, 0, -1), forward)
	for name, vec := range map[string]Vector3{"side": side, "up": up, "forward": forward} {
		assert.InDelta(t, 1.0, vec.Length(), eps, "%s must be unit length", name)
	}
	assert.InDelta(t, 0.0, side.Dot(up), eps)
	assert.InDelta(t, 0.0, side.Dot(forward), eps)
	assert.InDelta(t, 0.0, up.Dot(forward), eps)

	// The eye lands on the origin of view space.
	origin, _ := v.TransformPoint(eye)
	assertVec3(t, Vector3{}, origin)

	// The target lies straight ahead, down -Z.
	target, _ := v.TransformPoint(V3(0, 0, 0))
	assertVec3(t, V3(0, 0, -5), target)
}

func TestLookAtComponentsLayout(t *testing.T) {
	eye := V3(1, 2, 3)
	comp := LookAt(eye, V3(1, 2, 0), V3(0, 1, 0)).Components()

	// Column 3 carries the translation: -s.eye, -u.eye, f.eye.
	assert.InDelta(t, -1.0, float64(comp[3][0]), 1e-6)
	assert.InDelta(t, -2.0, float64(comp[3][1]), 1e-6)
	assert.InDelta(t, -3.0, float64(comp[3][2]), 1e-6)
	assert.InDelta(t, 1.0, float64(comp[3][3]), 1e-6)
}

func TestTranslateAndScale(t *testing.T) {
	tr := Translate(1, -2, 3)
	p, w := tr.TransformPoint(V3(1, 1, 1))
	assert.InDelta(t, 1.0, w, eps)
	assertVec3(t, V3(2, -1, 4), p)

	comp := tr.Components()
	assert.Equal(t, [4]float32{1, -2, 3, 1}, comp[3])

	s := Scale(2, 3, 4)
	p, _ = s.TransformPoint(V3(1, 1, 1))
	assertVec3(t, V3(2, 3, 4), p)
}

func TestRotateYaw(t *testing.T) {
	r := Rotate(0, 0, math.Pi/2)
	p, _ := r.TransformPoint(V3(1, 0, 0))
	assertVec3(t, V3(0, 1, 0), p)

	r = Rotate(math.Pi/2, 0, 0)
	p, _ = r.TransformPoint(V3(0, 1, 0))
	assertVec3(t, V3(0, 0, 1), p)

	r = Rotate(0, math.Pi/2, 0)
	p, _ = r.TransformPoint(V3(0, 0, 1))
	assertVec3(t, V3(1, 0, 0), p)
}

func TestRotateIsOrthonormal(t *testing.T) {
	r := Rotate(0.3, -1.1, 2.4)
	assertMatrix(t, Identity(), r.Mul(r.Transpose()))
}

func TestMulIdentity(t *testing.T) {
	m := Rotate(0.1, 0.2, 0.3).Mul(Translate(4, 5, 6))
	assertMatrix(t, m, Identity().Mul(m))
	assertMatrix(t, m, m.Mul(Identity()))
}

func TestMulComposesRightToLeft(t *testing.T) {
	m := Translate(10, 0, 0).Mul(Scale(2, 2, 2))
	p, _ := m.TransformPoint(V3(1, 1, 1))
	assertVec3(t, V3(12, 2, 2), p)
}

func TestComponentsIsPure(t *testing.T) {
	m := Perspective(1.2, 1.5, 0.1, 10).Mul(LookAt(V3(1, 2, 3), V3(0, 0, 0), V3(0, 1, 0)))
	first := m.Components()
	second := m.Components()
	require.Equal(t, first, second)
	assertMatrix(t, m, Perspective(1.2, 1.5, 0.1, 10).Mul(LookAt(V3(1, 2, 3), V3(0, 0, 0), V3(0, 1, 0))))
}

func TestTransformPointZeroW(t *testing.T) {
	p, w := Matrix4{}.TransformPoint(V3(1, 2, 3))
	assert.Equal(t, 0.0, w)
	assert.Equal(t, Vector3{}, p)
}
