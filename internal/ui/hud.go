//go:build ebiten

package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// HUD draws a one-line status readout over the simulation view.
type HUD struct {
	visible bool
}

// NewHUD constructs a HUD, visible by default.
func NewHUD() *HUD {
	return &HUD{visible: true}
}

// Update toggles HUD visibility on the H key.
func (h *HUD) Update() {
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		h.visible = !h.visible
	}
}

// Draw renders the status line in the top-left corner.
func (h *HUD) Draw(screen *ebiten.Image, line string) {
	if !h.visible || line == "" {
		return
	}
	// Drop shadow keeps the line readable over live cells.
	text.Draw(screen, line, basicfont.Face7x13, 5, 15, color.Black)
	text.Draw(screen, line, basicfont.Face7x13, 4, 14, color.White)
}
