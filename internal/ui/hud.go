//go:build ebiten

package ui

import (
	"image/color"

	"github.com/Hunterosmun/conways-game/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUDHeight is the height in pixels of the status strip under the board.
const HUDHeight = 36

const panelPadding = 6

// HUD renders the engine status and key help under the board.
type HUD struct {
	engine core.Engine
	panel  *ebiten.Image
	status string
}

// NewHUD constructs a HUD for the provided engine.
func NewHUD(engine core.Engine) *HUD {
	return &HUD{engine: engine}
}

// Update refreshes the cached status line.
func (h *HUD) Update() {
	if h == nil {
		return
	}
	h.status = StatusLine(Status(h.engine))
}

// Draw paints the strip at offsetY with the given width.
func (h *HUD) Draw(screen *ebiten.Image, offsetY, width int) {
	if h == nil || width <= 0 {
		return
	}
	if h.panel == nil || h.panel.Bounds().Dx() != width {
		h.panel = ebiten.NewImage(width, HUDHeight)
	}
	h.panel.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 255})

	face := basicfont.Face7x13
	text.Draw(h.panel, h.status, face, panelPadding, 14, color.RGBA{R: 220, G: 220, B: 230, A: 255})
	text.Draw(h.panel, KeyHelp, face, panelPadding, 30, color.RGBA{R: 160, G: 160, B: 170, A: 255})

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, float64(offsetY))
	screen.DrawImage(h.panel, op)
}
