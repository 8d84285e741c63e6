//go:build ebiten

package render

import (
	"github.com/hajimehoshi/ebiten/v2"

	"lifeca/internal/automaton"
)

// GridPainter keeps an image with one pixel per cell and draws it scaled.
type GridPainter struct {
	w, h int
	img  *ebiten.Image
	buf  []byte
}

// NewGridPainter allocates a painter for a grid of size w*h.
func NewGridPainter(w, h int) *GridPainter {
	gp := &GridPainter{w: w, h: h, buf: make([]byte, 4*w*h)}
	gp.img = ebiten.NewImage(w, h)
	return gp
}

// Blit uploads the colors into the painter image and draws it at scale.
func (gp *GridPainter) Blit(dst *ebiten.Image, colors [][]automaton.Color, scale int) {
	if len(colors) != gp.h || (gp.h > 0 && len(colors[0]) != gp.w) {
		return
	}
	fillColorsRGBA(gp.buf, colors, gp.w)
	gp.img.WritePixels(gp.buf)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(scale), float64(scale))
	dst.DrawImage(gp.img, op)
}

// Size returns the dimensions of the underlying image.
func (gp *GridPainter) Size() (int, int) { return gp.w, gp.h }
