//go:build !ebiten

package ui

import "lifeca/internal/core"

// Overlay is a no-op placeholder used when the ebiten build tag is absent.
type Overlay struct{ enabled bool }

// NewOverlay constructs a stub overlay.
func NewOverlay(core.Sim, int) *Overlay { return &Overlay{enabled: true} }

// SetScale is a no-op in headless builds.
func (o *Overlay) SetScale(int) {}

// SetEnabled records the requested state.
func (o *Overlay) SetEnabled(on bool) { o.enabled = on }

// Enabled reports the requested state.
func (o *Overlay) Enabled() bool { return o.enabled }

// Draw is a no-op placeholder.
func (o *Overlay) Draw(any) {}
