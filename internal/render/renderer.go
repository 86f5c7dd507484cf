//go:build ebiten

package render

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
)

// GridPainter keeps a one-pixel-per-cell image of the grid and repaints only
// the cells that changed since the previous sync.
type GridPainter struct {
	img   *ebiten.Image
	frame *frame
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	return &GridPainter{img: ebiten.NewImage(w, h), frame: newFrame(w * h)}
}

// Sync recolors changed cells and uploads the result. Pass a nil changed list
// to force a full repaint.
func (gp *GridPainter) Sync(cells []uint8, changed []int, on, off color.Color) {
	if gp.frame.update(cells, changed, on, off) {
		gp.img.WritePixels(gp.frame.buf)
	}
}

// Draw blits the grid image onto dst with each cell scaled to a square of
// scale pixels.
func (gp *GridPainter) Draw(dst *ebiten.Image, scale int) {
	if scale <= 0 {
		scale = 1
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}
