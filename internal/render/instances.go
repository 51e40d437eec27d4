package render

import (
	"life3d/pkg/linalg"
	"life3d/pkg/sims/life"
)

// MarkerColor is the colour of the quad drawn just off the field's origin
// corner.
var MarkerColor = linalg.V3(0.2, 0.2, 1.0)

// Instance is one quad to draw: a cell's grid coordinates, its offset in
// model space and its colour.
type Instance struct {
	X, Y   int
	State  life.State
	Offset linalg.Vector2
	Color  linalg.Vector3
}

// CellOffset places cell (x, y) in model space. Rows grow downwards so row 0
// is drawn at the top.
func CellOffset(x, y int, spacing float64) linalg.Vector2 {
	return linalg.V2(float64(x)*spacing, -float64(y)*spacing)
}

// Instances appends one Instance per cell of f to dst[:0] in row-major order.
func Instances(f *life.Field, spacing float64, dst []Instance) []Instance {
	dst = dst[:0]
	f.Each(func(x, y int, s life.State) {
		dst = append(dst, Instance{
			X:      x,
			Y:      y,
			State:  s,
			Offset: CellOffset(x, y, spacing),
			Color:  s.Color(),
		})
	})
	return dst
}

// OriginMarker returns the quad drawn diagonally outside cell (0, 0).
func OriginMarker(spacing float64) Instance {
	return Instance{
		X:      -1,
		Y:      -1,
		State:  life.Boundary,
		Offset: linalg.V2(-spacing, -spacing),
		Color:  MarkerColor,
	}
}
