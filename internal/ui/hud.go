//go:build ebiten

package ui

import (
	"image/color"

	"lifecanvas/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

const (
	hudPadding = 6
	hudHeight  = 20
)

// HUD draws the status line on a translucent strip across the top of the view.
type HUD struct {
	sim   core.Sim
	strip *ebiten.Image
}

// NewHUD constructs a HUD for the provided simulation.
func NewHUD(sim core.Sim) *HUD {
	return &HUD{sim: sim}
}

// Draw paints the status strip. A nil HUD draws nothing.
func (h *HUD) Draw(screen *ebiten.Image, paused bool) {
	if h == nil {
		return
	}
	width := screen.Bounds().Dx()
	if width <= 0 {
		return
	}
	if h.strip == nil || h.strip.Bounds().Dx() != width {
		h.strip = ebiten.NewImage(width, hudHeight)
		h.strip.Fill(color.RGBA{R: 16, G: 16, B: 20, A: 180})
	}
	screen.DrawImage(h.strip, nil)
	text.Draw(screen, StatusLine(h.sim, paused), basicfont.Face7x13, hudPadding, 14, color.RGBA{R: 200, G: 220, B: 200, A: 255})
}
