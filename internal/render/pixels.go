package render

import (
	"image/color"

	"life3d/pkg/sims/life"
)

// FillRGBA writes one RGBA pixel per cell of f into buf, row-major. buf must
// hold 4*width*height bytes; shorter buffers are left untouched.
func FillRGBA(buf []byte, f *life.Field) bool {
	if len(buf) < 4*f.Width()*f.Height() {
		return false
	}
	palette := [...]color.RGBA{
		life.Dead:     life.Dead.RGBA(),
		life.Alive:    life.Alive.RGBA(),
		life.Boundary: life.Boundary.RGBA(),
	}
	w := f.Width()
	f.Each(func(x, y int, s life.State) {
		col := palette[life.Boundary]
		if int(s) < len(palette) {
			col = palette[s]
		}
		base := (y*w + x) * 4
		buf[base+0] = col.R
		buf[base+1] = col.G
		buf[base+2] = col.B
		buf[base+3] = col.A
	})
	return true
}
