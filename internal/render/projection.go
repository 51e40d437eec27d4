package render

import "life3d/pkg/linalg"

// QuadCorners are the model-space corners of a unit cell quad in
// triangle-strip order.
var QuadCorners = [4]linalg.Vector2{
	{X: 1, Y: 1},
	{X: 1, Y: -1},
	{X: -1, Y: 1},
	{X: -1, Y: -1},
}

// QuadIndices triangulates QuadCorners.
var QuadIndices = [6]uint16{0, 1, 2, 1, 3, 2}

// Scene bundles the three transforms applied to every quad.
type Scene struct {
	Projection linalg.Matrix4
	View       linalg.Matrix4
	Model      linalg.Matrix4
}

// DefaultModel pushes the field plane one unit away from the origin.
func DefaultModel() linalg.Matrix4 { return linalg.Translate(0, 0, -1) }

// MVP returns Projection * View * Model.
func (s Scene) MVP() linalg.Matrix4 {
	return s.Projection.Mul(s.View).Mul(s.Model)
}

// ScreenPoint is a projected vertex in pixels plus its NDC depth.
type ScreenPoint struct {
	X, Y  float64
	Depth float64
}

// ProjectQuad transforms the unit quad shifted by offset through mvp into a
// width*height viewport. It reports false when a corner is behind the camera
// or the whole quad lies outside the view volume on one side.
func ProjectQuad(mvp linalg.Matrix4, offset linalg.Vector2, width, height float64) ([4]ScreenPoint, bool) {
	var out [4]ScreenPoint
	var left, right, below, above, near, far int
	for i, c := range QuadCorners {
		ndc, w := mvp.TransformPoint(linalg.V3(c.X+offset.X, c.Y+offset.Y, 0))
		if w <= 0 {
			return out, false
		}
		switch {
		case ndc.X < -1:
			left++
		case ndc.X > 1:
			right++
		}
		switch {
		case ndc.Y < -1:
			below++
		case ndc.Y > 1:
			above++
		}
		switch {
		case ndc.Z < -1:
			near++
		case ndc.Z > 1:
			far++
		}
		out[i] = ScreenPoint{
			X:     (ndc.X + 1) / 2 * width,
			Y:     (1 - ndc.Y) / 2 * height,
			Depth: ndc.Z,
		}
	}
	n := len(QuadCorners)
	if left == n || right == n || below == n || above == n || near == n || far == n {
		return out, false
	}
	return out, true
}
