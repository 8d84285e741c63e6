// Package world simulates an automaton on a toroidal grid sized from its
// terrain and projects the result through its window.
package world

import (
	"strconv"
	"strings"

	"github.com/juju/loggo"

	"lifeca/internal/automaton"
	"lifeca/internal/core"
)

var logger = loggo.GetLogger("lifeca.world")

// World owns the grid of an automaton. The automaton itself is borrowed:
// the world reads its rule and terrain and writes the live cells back into
// its Initial after every call to Simulate.
type World struct {
	a       automaton.Automaton
	grid    *core.Grid
	changed []core.Cell
	initial []core.Cell

	generation int
}

// New returns a world for a, reset to its initial cells. Initial cells
// outside the terrain are ignored.
func New(a automaton.Automaton) *World {
	terrain := a.Terrain()
	w := &World{
		a:    a,
		grid: core.NewGrid(terrain.Rows(), terrain.Cols()),
	}
	for _, c := range a.Initial().Cells() {
		if !terrain.Contains(c.X, c.Y) {
			logger.Debugf("initial cell %v is outside the terrain, skipped", c)
			continue
		}
		w.initial = append(w.initial, core.Cell{
			X:     c.X - terrain.XStart,
			Y:     terrain.YEnd - c.Y,
			State: c.State,
		})
	}
	w.Reset()
	return w
}

// Automaton returns the automaton being simulated.
func (w *World) Automaton() automaton.Automaton { return w.a }

// Name returns the automaton name, or its family when it has none.
func (w *World) Name() string {
	if name := w.a.Name(); name != "" {
		return name
	}
	return strings.ToLower(string(w.a.Family()))
}

// Reset clears the grid and applies the initial cells as generation 0.
func (w *World) Reset() {
	w.grid.Clear()
	w.changed = append(w.changed[:0], w.initial...)
	w.apply()
	w.generation = 0
	w.syncInitial()
	logger.Debugf("%s: reset with %d initial cells", w.Name(), len(w.initial))
}

// Simulate advances up to n generations. It stops early once a generation
// changes nothing, since no later generation can change anything either.
// It returns the number of generations computed.
func (w *World) Simulate(n int) int {
	ran := 0
	for ; ran < n; ran++ {
		if len(w.changed) == 0 {
			logger.Debugf("%s: fixed point at generation %d", w.Name(), w.generation)
			break
		}
		w.next()
	}
	w.syncInitial()
	return ran
}

// Step advances a single generation.
func (w *World) Step() { w.Simulate(1) }

// Generation returns the number of generations computed since Reset.
func (w *World) Generation() int { return w.generation }

// Stable reports whether the last generation changed nothing.
func (w *World) Stable() bool { return len(w.changed) == 0 }

// Changed returns the grid cells set by the last generation.
func (w *World) Changed() []core.Cell {
	return append([]core.Cell(nil), w.changed...)
}

func (w *World) next() {
	w.changed = w.changed[:0]
	for row := 0; row < w.grid.Rows; row++ {
		for col := 0; col < w.grid.Cols; col++ {
			c := w.grid.Cell(row, col)
			if s := w.a.NextCellState(w.grid, c); s != c.State {
				c.State = s
				w.changed = append(w.changed, c)
			}
		}
	}
	w.apply()
	w.generation++
}

func (w *World) apply() {
	for _, c := range w.changed {
		w.grid.Set(c.Y, c.X, c.State)
	}
}

func (w *World) syncInitial() {
	w.a.Initial().ConvertToTerrainCells(w.NonDefaultCells(), w.a.Terrain())
}

// Grid returns the terrain grid. Callers must not modify it.
func (w *World) Grid() *core.Grid { return w.grid }

// NonDefaultCells returns the grid cells that are not in the default
// state, in row-major order.
func (w *World) NonDefaultCells() []core.Cell {
	var cells []core.Cell
	for row := 0; row < w.grid.Rows; row++ {
		for col := 0; col < w.grid.Cols; col++ {
			if c := w.grid.Cell(row, col); c.State != core.StateDefault {
				cells = append(cells, c)
			}
		}
	}
	return cells
}

// View returns the range being displayed: the window when one is set,
// the terrain otherwise.
func (w *World) View() automaton.Range {
	if win, ok := w.a.Window(); ok {
		return win
	}
	return w.a.Terrain()
}

// Size returns the dimensions of the view.
func (w *World) Size() core.Size {
	v := w.View()
	return core.Size{W: v.Cols(), H: v.Rows()}
}

// projection maps view positions onto the grid. Window row 0 is the
// window's YEnd and the terrain wraps in both directions, so a window may
// be larger than the terrain or lie outside it.
type projection struct {
	top, left  int
	rows, cols int
}

func (w *World) projection() projection {
	win, ok := w.a.Window()
	if !ok {
		return projection{rows: w.grid.Rows, cols: w.grid.Cols}
	}
	terrain := w.a.Terrain()
	return projection{
		top:  terrain.YEnd - win.YEnd,
		left: win.XStart - terrain.XStart,
		rows: win.Rows(),
		cols: win.Cols(),
	}
}

// cell returns the view cell at (row, col) in view grid space.
func (w *World) cell(p projection, row, col int) core.Cell {
	return core.Cell{X: col, Y: row, State: w.grid.At(p.top+row, p.left+col)}
}

// WindowGrid returns a copy of the view as a grid of its own.
func (w *World) WindowGrid() *core.Grid {
	p := w.projection()
	out := core.NewGrid(p.rows, p.cols)
	for row := 0; row < p.rows; row++ {
		for col := 0; col < p.cols; col++ {
			out.Set(row, col, w.grid.At(p.top+row, p.left+col))
		}
	}
	return out
}

// String renders the view with one glyph per cell and one line per row.
func (w *World) String() string {
	p := w.projection()
	var b strings.Builder
	b.Grow(p.rows * (p.cols + 1))
	for row := 0; row < p.rows; row++ {
		for col := 0; col < p.cols; col++ {
			b.WriteRune(w.a.GlyphFor(w.cell(p, row, col)))
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// GlyphGrid returns the glyph of every cell of the view, indexed by row
// then column.
func (w *World) GlyphGrid() [][]rune {
	p := w.projection()
	glyphs := make([][]rune, p.rows)
	for row := range glyphs {
		glyphs[row] = make([]rune, p.cols)
		for col := range glyphs[row] {
			glyphs[row][col] = w.a.GlyphFor(w.cell(p, row, col))
		}
	}
	return glyphs
}

// ColorGrid returns the color of every cell of the view, indexed by row
// then column.
func (w *World) ColorGrid() [][]automaton.Color {
	p := w.projection()
	colors := make([][]automaton.Color, p.rows)
	for row := range colors {
		colors[row] = make([]automaton.Color, p.cols)
		for col := range colors[row] {
			colors[row][col] = w.a.ColorFor(w.cell(p, row, col))
		}
	}
	return colors
}

// Parameters reports the automaton settings and the simulation progress.
func (w *World) Parameters() core.ParameterSnapshot {
	terrain := w.a.Terrain()
	desc := []core.Parameter{
		{Key: "name", Label: "Name", Type: core.ParamTypeString, Value: w.a.Name()},
		{Key: "family", Label: "Family", Type: core.ParamTypeString, Value: string(w.a.Family())},
	}
	if ra, ok := w.a.(automaton.RuleAutomaton); ok {
		desc = append(desc, core.Parameter{Key: "rule", Label: "Rule", Type: core.ParamTypeString, Value: ra.Rule()})
	}
	desc = append(desc,
		core.Parameter{Key: "terrain_x", Label: "Terrain X", Type: core.ParamTypeString, Value: terrain.XRange()},
		core.Parameter{Key: "terrain_y", Label: "Terrain Y", Type: core.ParamTypeString, Value: terrain.YRange()},
	)
	if win, ok := w.a.Window(); ok {
		desc = append(desc,
			core.Parameter{Key: "window_x", Label: "Window X", Type: core.ParamTypeString, Value: win.XRange()},
			core.Parameter{Key: "window_y", Label: "Window Y", Type: core.ParamTypeString, Value: win.YRange()},
		)
	}
	live := len(w.NonDefaultCells())
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:   "Automaton",
		Params: desc,
	}, {
		Name: "Simulation",
		Params: []core.Parameter{
			{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(w.generation)},
			{Key: "live_cells", Label: "Live cells", Type: core.ParamTypeInt, Value: strconv.Itoa(live)},
			{Key: "stable", Label: "Stable", Type: core.ParamTypeBool, Value: strconv.FormatBool(w.Stable())},
		},
	}}}
}

var _ core.Sim = (*World)(nil)
