//go:build ebiten

package app

import (
	"lifeca/internal/render"
	"lifeca/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// hudWidth is the width in pixels of the control panel.
const hudWidth = 220

// Game adapts a controller to the ebiten.Game interface.
type Game struct {
	ctrl    *Controller
	painter *render.GridPainter
	overlay *ui.Overlay
	hud     *ui.HUD
}

var gameKeys = []struct {
	key    ebiten.Key
	action Action
}{
	{ebiten.KeySpace, ActionTogglePlay},
	{ebiten.KeyN, ActionStep},
	{ebiten.KeyR, ActionRestart},
	{ebiten.KeyG, ActionToggleGrid},
	{ebiten.KeyBracketLeft, ActionSlower},
	{ebiten.KeyBracketRight, ActionFaster},
	{ebiten.KeyEqual, ActionZoomIn},
	{ebiten.KeyMinus, ActionZoomOut},
	{ebiten.KeyQ, ActionQuit},
	{ebiten.KeyEscape, ActionQuit},
}

// New constructs a Game for the controller. The control panel is shown
// when withHUD is set.
func New(ctrl *Controller, withHUD bool) *Game {
	size := ctrl.Size()
	g := &Game{
		ctrl:    ctrl,
		painter: render.NewGridPainter(size.W, size.H),
		overlay: ui.NewOverlay(ctrl, ctrl.Scale()),
	}
	if withHUD {
		g.hud = ui.NewHUD(ctrl, hudWidth)
	}
	return g
}

// Update handles per-frame logic and advances the world when a generation
// is due.
func (g *Game) Update() error {
	for _, k := range gameKeys {
		if inpututil.IsKeyJustPressed(k.key) {
			g.ctrl.Do(k.action)
		}
	}
	if g.ctrl.Quit() {
		return ebiten.Termination
	}
	if g.hud != nil {
		g.hud.Update(g.gridWidth())
	}
	g.overlay.SetScale(g.ctrl.Scale())
	g.overlay.SetEnabled(g.ctrl.GridLines())
	g.ctrl.Tick()
	return nil
}

// Draw renders the window of the world.
func (g *Game) Draw(screen *ebiten.Image) {
	g.painter.Blit(screen, g.ctrl.World().ColorGrid(), g.ctrl.Scale())
	g.overlay.Draw(screen)
	if g.hud != nil {
		g.hud.Draw(screen, g.gridWidth(), g.ctrl.Scale())
	}
}

// Layout returns the logical screen size: the scaled window plus the
// control panel when shown.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	w := g.gridWidth()
	h := g.ctrl.Size().H * g.ctrl.Scale()
	if g.hud != nil {
		w += g.hud.Width()
		h = g.hud.Height(h)
	}
	return w, h
}

func (g *Game) gridWidth() int { return g.ctrl.Size().W * g.ctrl.Scale() }
