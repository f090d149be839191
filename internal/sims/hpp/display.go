package hpp

import (
	"image/color"

	"hpp-ca/internal/lga"
)

var hppPalette = buildPalette()

// Palette maps every cell state to a display colour.
func (s *Sim) Palette() []color.RGBA { return hppPalette }

// buildPalette brightens cells by particle count and tints them by their net
// direction of travel: red to the right, blue to the left, green vertically.
func buildPalette() []color.RGBA {
	palette := make([]color.RGBA, lga.NumStates)
	for i := range palette {
		st := lga.State(i)
		n := st.Count()
		if n == 0 {
			palette[i] = color.RGBA{R: 8, G: 8, B: 12, A: 255}
			continue
		}
		base := uint8(40 + 45*n)
		c := color.RGBA{R: base, G: base, B: base, A: 255}
		mx, my := lga.CellMomentum(st)
		switch {
		case mx > 0:
			c.R = addClamp(c.R, 70)
		case mx < 0:
			c.B = addClamp(c.B, 70)
		}
		if my != 0 {
			c.G = addClamp(c.G, 50)
		}
		palette[i] = c
	}
	return palette
}

func addClamp(v uint8, d int) uint8 {
	sum := int(v) + d
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}
