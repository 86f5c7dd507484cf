package render

import (
	"image/color"
	"slices"
	"testing"
)

var (
	on  = color.White
	off = color.Black
)

func pixel(buf []byte, i int) [4]byte {
	return [4]byte{buf[i*4], buf[i*4+1], buf[i*4+2], buf[i*4+3]}
}

func TestFrameFirstUpdatePaintsEverything(t *testing.T) {
	f := newFrame(4)
	cells := []uint8{1, 0, 0, 1}
	if !f.update(cells, []int{}, on, off) {
		t.Fatal("first update must paint")
	}
	white := [4]byte{255, 255, 255, 255}
	black := [4]byte{0, 0, 0, 255}
	for i, c := range cells {
		want := black
		if c != 0 {
			want = white
		}
		if got := pixel(f.buf, i); got != want {
			t.Fatalf("pixel %d=%v, expected %v", i, got, want)
		}
	}
}

func TestFrameRepaintsOnlyChanged(t *testing.T) {
	f := newFrame(4)
	f.update([]uint8{0, 0, 0, 0}, nil, on, off)

	// Cell 1 flips without being reported; it must keep its old color.
	cells := []uint8{0, 1, 1, 0}
	if !f.update(cells, []int{2}, on, off) {
		t.Fatal("update with changes must paint")
	}
	if got := pixel(f.buf, 2); got != [4]byte{255, 255, 255, 255} {
		t.Fatalf("changed pixel=%v, expected white", got)
	}
	if got := pixel(f.buf, 1); got != [4]byte{0, 0, 0, 255} {
		t.Fatalf("unreported pixel=%v, expected it untouched", got)
	}
}

func TestFrameNoChanges(t *testing.T) {
	f := newFrame(2)
	f.update([]uint8{1, 0}, nil, on, off)
	before := slices.Clone(f.buf)
	if f.update([]uint8{0, 1}, []int{}, on, off) {
		t.Fatal("empty change list reported a repaint")
	}
	if !slices.Equal(before, f.buf) {
		t.Fatal("buffer modified without changes")
	}
	if !f.update([]uint8{0, 1}, nil, on, off) {
		t.Fatal("nil change list must force a repaint")
	}
	if got := pixel(f.buf, 1); got != [4]byte{255, 255, 255, 255} {
		t.Fatalf("pixel 1=%v after forced repaint", got)
	}
}

func TestFrameIgnoresMismatchedSize(t *testing.T) {
	f := newFrame(3)
	if f.update([]uint8{1, 1}, nil, on, off) {
		t.Fatal("update accepted a grid of the wrong size")
	}
}

func TestPaintSkipsOutOfRange(t *testing.T) {
	buf := make([]byte, 8)
	paintBinaryRGBA(buf, []uint8{1, 1}, []int{-1, 5, 0}, on, off)
	if got := pixel(buf, 0); got != [4]byte{255, 255, 255, 255} {
		t.Fatalf("pixel 0=%v, expected white", got)
	}
	if got := pixel(buf, 1); got != [4]byte{} {
		t.Fatalf("pixel 1=%v, expected untouched", got)
	}
}
