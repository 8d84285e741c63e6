package render

import "lifeca/internal/automaton"

// fillColorsRGBA writes a row-major color grid into buf as opaque RGBA
// pixels. Rows shorter than w leave the rest of their pixels untouched.
func fillColorsRGBA(buf []byte, colors [][]automaton.Color, w int) {
	for row, line := range colors {
		for col, c := range line {
			if col >= w {
				break
			}
			base := (row*w + col) * 4
			if base+3 >= len(buf) {
				return
			}
			rgba := c.RGBA()
			buf[base+0] = rgba.R
			buf[base+1] = rgba.G
			buf[base+2] = rgba.B
			buf[base+3] = rgba.A
		}
	}
}

// Frame is one rendered view of a world: a glyph and a color per cell,
// indexed by row then column.
type Frame struct {
	Glyphs [][]rune
	Colors [][]automaton.Color
}

// Source is implemented by *world.World.
type Source interface {
	GlyphGrid() [][]rune
	ColorGrid() [][]automaton.Color
}

// Capture renders the current view of src.
func Capture(src Source) Frame {
	return Frame{Glyphs: src.GlyphGrid(), Colors: src.ColorGrid()}
}

// Size returns the number of columns and rows of the frame.
func (f Frame) Size() (int, int) {
	if len(f.Colors) == 0 {
		return 0, 0
	}
	return len(f.Colors[0]), len(f.Colors)
}
