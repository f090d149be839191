package render

import (
	"image/color"
	"slices"
	"testing"
)

func TestFillPaletteRGBA(t *testing.T) {
	palette := []color.RGBA{{R: 1, G: 2, B: 3, A: 4}, {R: 9, G: 8, B: 7, A: 255}}
	cells := []uint8{0, 1, 5}
	buf := make([]byte, 4*len(cells))
	FillPaletteRGBA(buf, cells, palette)
	want := []byte{1, 2, 3, 4, 9, 8, 7, 255, 9, 8, 7, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, want %v", buf, want)
	}

	FillPaletteRGBA(buf, cells, nil)
	if !slices.Equal(buf, make([]byte, len(buf))) {
		t.Fatalf("empty palette must clear, got %v", buf)
	}
}

func TestFillBinaryRGBA(t *testing.T) {
	cells := []uint8{0, 7}
	buf := make([]byte, 8)
	FillBinaryRGBA(buf, cells, color.White, color.Black)
	want := []byte{0, 0, 0, 255, 255, 255, 255, 255}
	if !slices.Equal(buf, want) {
		t.Fatalf("got %v, want %v", buf, want)
	}
}
