package render

import "image/color"

// frame holds one RGBA pixel per cell and tracks whether it has ever been
// painted in full.
type frame struct {
	buf    []byte
	primed bool
}

func newFrame(cells int) *frame {
	return &frame{buf: make([]byte, 4*cells)}
}

// update recolors the pixels for changed cells. A nil changed list, or the
// first update, repaints every cell. It reports whether any pixel was written.
func (f *frame) update(cells []uint8, changed []int, on, off color.Color) bool {
	if len(cells)*4 != len(f.buf) {
		return false
	}
	if !f.primed || changed == nil {
		fillBinaryRGBA(f.buf, cells, on, off)
		f.primed = true
		return true
	}
	if len(changed) == 0 {
		return false
	}
	paintBinaryRGBA(f.buf, cells, changed, on, off)
	return true
}

// fillBinaryRGBA converts binary cell data (0/1) into RGBA pixels in buf.
func fillBinaryRGBA(buf []byte, cells []uint8, on, off color.Color) {
	onPx, offPx := toRGBA(on), toRGBA(off)
	for i, c := range cells {
		putPixel(buf, i, c, onPx, offPx)
	}
}

// paintBinaryRGBA rewrites only the pixels at the given cell indices.
func paintBinaryRGBA(buf []byte, cells []uint8, indices []int, on, off color.Color) {
	onPx, offPx := toRGBA(on), toRGBA(off)
	for _, i := range indices {
		if i < 0 || i >= len(cells) {
			continue
		}
		putPixel(buf, i, cells[i], onPx, offPx)
	}
}

func putPixel(buf []byte, i int, c uint8, on, off color.RGBA) {
	px := off
	if c != 0 {
		px = on
	}
	base := i * 4
	buf[base+0] = px.R
	buf[base+1] = px.G
	buf[base+2] = px.B
	buf[base+3] = px.A
}

func toRGBA(c color.Color) color.RGBA {
	r, g, b, a := c.RGBA()
	return color.RGBA{R: uint8(r >> 8), G: uint8(g >> 8), B: uint8(b >> 8), A: uint8(a >> 8)}
}
