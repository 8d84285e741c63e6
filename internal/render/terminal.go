package render

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"lifeca/internal/automaton"
)

// TerminalPainter draws frames on a terminal screen, one glyph per cell in
// the cell's color, with a status line below the grid.
type TerminalPainter struct {
	screen     tcell.Screen
	background tcell.Color
}

// NewTerminalPainter returns a painter drawing on screen.
func NewTerminalPainter(screen tcell.Screen) *TerminalPainter {
	return &TerminalPainter{screen: screen, background: tcell.ColorDefault}
}

// Paint clears the screen, draws the frame from the top-left corner and
// shows the result. Glyphs wider than one column push the rest of their
// row to the right.
func (p *TerminalPainter) Paint(f Frame, status string) {
	p.screen.Clear()
	for row, line := range f.Glyphs {
		x := 0
		for col, glyph := range line {
			style := tcell.StyleDefault.Background(p.background)
			if row < len(f.Colors) && col < len(f.Colors[row]) {
				style = style.Foreground(terminalColor(f.Colors[row][col]))
			}
			p.screen.SetContent(x, row, glyph, nil, style)
			x += glyphWidth(glyph)
		}
	}
	x := 0
	for _, r := range status {
		p.screen.SetContent(x, len(f.Glyphs)+1, r, nil, tcell.StyleDefault)
		x += glyphWidth(r)
	}
	p.screen.Show()
}

func terminalColor(c automaton.Color) tcell.Color {
	return tcell.NewRGBColor(int32(c.Red()), int32(c.Green()), int32(c.Blue()))
}

func glyphWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}
