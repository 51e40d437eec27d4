//go:build ebiten

package ui

import (
	"life3d/internal/render"
	"life3d/pkg/sims/life"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// Overlay draws the top-down minimap in the bottom-right corner.
type Overlay struct {
	field   *life.Field
	painter *render.MinimapPainter
	show    bool
	margin  float64
	maxSize float64
}

// NewOverlay constructs a minimap overlay for f. It starts visible.
func NewOverlay(f *life.Field) *Overlay {
	return &Overlay{
		field:   f,
		painter: render.NewMinimapPainter(f.Width(), f.Height()),
		show:    true,
		margin:  8,
		maxSize: 160,
	}
}

// Update toggles the minimap on M.
func (o *Overlay) Update() {
	if o == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		o.show = !o.show
	}
}

// Draw blits the minimap scaled to fit maxSize.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if o == nil || !o.show {
		return
	}
	w, h := float64(o.field.Width()), float64(o.field.Height())
	scale := o.maxSize / max(w, h)
	if scale > 4 {
		scale = 4
	}
	b := screen.Bounds()
	x := float64(b.Dx()) - w*scale - o.margin
	y := float64(b.Dy()) - h*scale - o.margin
	o.painter.Blit(screen, o.field, x, y, scale)
}
