//go:build ebiten

package render

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"

	"life3d/pkg/linalg"
	"life3d/pkg/sims/life"
)

var whiteImage = func() *ebiten.Image {
	img := ebiten.NewImage(3, 3)
	img.Fill(color.White)
	return img
}()

// maxBatchVertices keeps vertex indices within uint16.
const maxBatchVertices = 1<<16 - 1

// whiteSubImage avoids sampling the texture edge.
var whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

// ScenePainter projects cell quads on the CPU and draws them as coloured
// triangles.
type ScenePainter struct {
	spacing   float64
	instances []Instance
	vertices  []ebiten.Vertex
	indices   []uint16
}

// NewScenePainter returns a painter laying cells out spacing units apart.
func NewScenePainter(spacing float64) *ScenePainter {
	return &ScenePainter{spacing: spacing}
}

// Draw renders the origin marker and every cell of f through scene.
func (p *ScenePainter) Draw(dst *ebiten.Image, f *life.Field, scene Scene) {
	b := dst.Bounds()
	w, h := float64(b.Dx()), float64(b.Dy())
	mvp := scene.MVP()

	p.instances = Instances(f, p.spacing, p.instances)
	p.vertices = p.vertices[:0]
	p.indices = p.indices[:0]

	p.appendQuad(mvp, OriginMarker(p.spacing), w, h)
	for _, inst := range p.instances {
		p.appendQuad(mvp, inst, w, h)
		if len(p.vertices)+len(QuadCorners) > maxBatchVertices {
			p.flush(dst)
		}
	}
	p.flush(dst)
}

func (p *ScenePainter) appendQuad(mvp linalg.Matrix4, inst Instance, w, h float64) {
	pts, ok := ProjectQuad(mvp, inst.Offset, w, h)
	if !ok {
		return
	}
	rgb := inst.Color.Array()
	base := uint16(len(p.vertices))
	for _, pt := range pts {
		p.vertices = append(p.vertices, ebiten.Vertex{
			DstX:   float32(pt.X),
			DstY:   float32(pt.Y),
			SrcX:   1,
			SrcY:   1,
			ColorR: rgb[0],
			ColorG: rgb[1],
			ColorB: rgb[2],
			ColorA: 1,
		})
	}
	for _, i := range QuadIndices {
		p.indices = append(p.indices, base+i)
	}
}

func (p *ScenePainter) flush(dst *ebiten.Image) {
	if len(p.indices) == 0 {
		return
	}
	op := &ebiten.DrawTrianglesOptions{}
	op.FillRule = ebiten.FillAll
	dst.DrawTriangles(p.vertices, p.indices, whiteSubImage, op)
	p.vertices = p.vertices[:0]
	p.indices = p.indices[:0]
}

// MinimapPainter draws a top-down pixel image of the field.
type MinimapPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewMinimapPainter allocates a painter for a w*h field.
func NewMinimapPainter(w, h int) *MinimapPainter {
	return &MinimapPainter{w: w, h: h, img: ebiten.NewImage(w, h), buf: make([]byte, 4*w*h)}
}

// Blit uploads the field into the painter image and draws it at (x, y).
func (mp *MinimapPainter) Blit(dst *ebiten.Image, f *life.Field, x, y, scale float64) {
	if f.Width() != mp.w || f.Height() != mp.h || !FillRGBA(mp.buf, f) {
		return
	}
	mp.img.WritePixels(mp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	dst.DrawImage(mp.img, op)
}
