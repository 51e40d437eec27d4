//go:build ebiten

package ui

import (
	"image/color"

	"life3d/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	panelPadding = 8
	lineHeight   = 16
)

// HUD renders the status panel in the top-left corner of the view.
type HUD struct {
	width      int
	panel      *ebiten.Image
	lastHeight int
	snapshot   core.ParameterSnapshot
	hidden     bool
	help       []string
}

// NewHUD constructs a HUD with the given panel width.
func NewHUD(width int) *HUD {
	if width < 0 {
		width = 0
	}
	return &HUD{
		width: width,
		help: []string{
			"WASD move  Space/Ctrl up/down",
			"T step  R run  Enter reseed",
			"Tab mouse  Bksp clear  M map",
			"H hud  Esc quit",
		},
	}
}

// Update stores the snapshot to draw and toggles visibility on H.
func (h *HUD) Update(s core.ParameterSnapshot) {
	if h == nil {
		return
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.hidden = !h.hidden
	}
	h.snapshot = s
}

// Draw paints the panel onto screen.
func (h *HUD) Draw(screen *ebiten.Image) {
	if h == nil || h.hidden || h.width <= 0 {
		return
	}
	lines := append(h.snapshot.Lines(), h.help...)
	height := panelPadding*2 + len(lines)*lineHeight
	if h.panel == nil || h.lastHeight != height {
		h.panel = ebiten.NewImage(h.width, height)
		h.lastHeight = height
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 200})

	face := basicfont.Face7x13
	for i, line := range lines {
		col := color.RGBA{R: 220, G: 220, B: 230, A: 255}
		if i >= len(lines)-len(h.help) {
			col = color.RGBA{R: 160, G: 160, B: 170, A: 255}
		}
		text.Draw(h.panel, line, face, panelPadding, panelPadding+(i+1)*lineHeight-4, col)
	}

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(panelPadding, panelPadding)
	screen.DrawImage(h.panel, op)
}
