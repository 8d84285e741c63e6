//go:build ebiten

package ui

import (
	"image/color"

	"lifeca/internal/core"

	"github.com/hajimehoshi/ebiten/v2"
)

// Overlay draws cell borders on top of the grid. Borders are only drawn
// when enabled and the cells are at least MinGridScale pixels wide.
type Overlay struct {
	sim     core.Sim
	scale   int
	enabled bool
	color   color.RGBA

	pixel *ebiten.Image
}

// NewOverlay constructs an overlay for sim drawn at the given scale.
func NewOverlay(sim core.Sim, scale int) *Overlay {
	o := &Overlay{
		sim:     sim,
		scale:   scale,
		enabled: true,
		color:   color.RGBA{R: 60, G: 60, B: 70, A: 255},
	}
	o.pixel = ebiten.NewImage(1, 1)
	o.pixel.Fill(color.White)
	return o
}

// SetScale changes the cell size the overlay draws for.
func (o *Overlay) SetScale(scale int) { o.scale = scale }

// SetEnabled turns the cell borders on or off.
func (o *Overlay) SetEnabled(on bool) { o.enabled = on }

// Enabled reports whether cell borders are requested.
func (o *Overlay) Enabled() bool { return o.enabled }

// Draw renders the overlay onto the provided screen.
func (o *Overlay) Draw(screen *ebiten.Image) {
	if !o.enabled || !GridLinesVisible(o.scale) {
		return
	}
	size := o.sim.Size()
	if size.W <= 0 || size.H <= 0 {
		return
	}
	width := float64(size.W * o.scale)
	height := float64(size.H * o.scale)
	for col := 1; col < size.W; col++ {
		o.drawRect(screen, float64(col*o.scale), 0, 1, height)
	}
	for row := 1; row < size.H; row++ {
		o.drawRect(screen, 0, float64(row*o.scale), width, 1)
	}
}

func (o *Overlay) drawRect(screen *ebiten.Image, x, y, w, h float64) {
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(w, h)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(o.color)
	screen.DrawImage(o.pixel, op)
}
