package lga

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Format selects how Draw encodes a generation. Every format writes one
// symbol per cell, rows top to bottom, each row terminated by '\n'.
type Format uint8

const (
	// FormatHex writes each state as a lowercase hex digit.
	FormatHex Format = iota
	// FormatGlyph writes '.' for empty cells, an arrow for single particles
	// and the particle count otherwise.
	FormatGlyph
)

const hexDigits = "0123456789abcdef"

var glyphs = [NumStates]byte{
	Empty: '.',
	Up:    '^',
	Right: '>',
	Down:  'v',
	Left:  '<',
}

func init() {
	for s := State(0); s < NumStates; s++ {
		if glyphs[s] == 0 {
			glyphs[s] = byte('0' + s.Count())
		}
	}
}

// String returns the configuration name of the format.
func (f Format) String() string {
	switch f {
	case FormatHex:
		return "hex"
	case FormatGlyph:
		return "glyph"
	}
	return fmt.Sprintf("format(%d)", uint8(f))
}

// ParseFormat converts a configuration name into a Format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "hex", "":
		return FormatHex, nil
	case "glyph", "glyphs", "ascii":
		return FormatGlyph, nil
	}
	return FormatHex, fmt.Errorf("lga: unknown format %q", s)
}

// Symbol returns the byte written for s.
func (f Format) Symbol(s State) byte {
	s &= Full
	if f == FormatGlyph {
		return glyphs[s]
	}
	return hexDigits[s]
}

// Encode writes the current generation of g to w.
func (f Format) Encode(w io.Writer, g *Grid) error {
	bw := bufio.NewWriterSize(w, g.w+1)
	for y := 0; y < g.h; y++ {
		row := g.cur[y*g.w : (y+1)*g.w]
		for _, s := range row {
			if err := bw.WriteByte(f.Symbol(s)); err != nil {
				return err
			}
		}
		if err := bw.WriteByte('\n'); err != nil {
			return err
		}
	}
	return bw.Flush()
}
