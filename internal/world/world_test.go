package world

import (
	"fmt"
	"strings"
	"testing"

	qt "github.com/frankban/quicktest"
	"github.com/google/go-cmp/cmp"

	"lifeca/internal/automaton"
	"lifeca/internal/core"
	"lifeca/internal/structtext"
)

func lifeDoc(terrain, window, alive string) string {
	if window != "" {
		window = "Window = {" + window + "};"
	}
	return fmt.Sprintf(`
Life = {
	Rule = B3/S23;
	Terrain = { %s };
	%s
	Chars = { Alive = 42; Dead = 46; };
	Colors = { Alive = (255,255,255); Dead = (0,0,0); };
	Initial = { Alive = %s; };
};`, terrain, window, alive)
}

const sierpinskiDoc = `
Elementary = {
	Name = "sierpinski";
	Rule = 90;
	Terrain = { Xrange = 0..8; Yrange = 0..4; };
	Chars = { One = 35; Zero = 46; };
	Colors = { One = (255,255,255); Zero = (0,0,0); };
	Initial = { One = (4,4); };
};`

const brianDoc = `
Brian = {
	Terrain = { Xrange = 0..4; Yrange = 0..4; };
	Chars = { Ready = 46; Firing = 79; Refractory = 111; };
	Colors = { Ready = (0,0,0); Firing = (255,255,255); Refractory = (0,0,255); };
	Initial = { Ready = (2,3),(2,2); Firing = (1,2),(3,2); };
};`

func parse(t testing.TB, doc string) automaton.Automaton {
	a, err := automaton.Parse(structtext.Clean(doc))
	if err != nil {
		t.Fatalf("cannot parse automaton: %v", err)
	}
	return a
}

func TestBlinkerOscillation(t *testing.T) {
	w := New(parse(t, lifeDoc("Xrange=0..4;Yrange=0..4;", "", "(2,1),(2,2),(2,3)")))

	vertical := ".....\n..*..\n..*..\n..*..\n.....\n"
	horizontal := ".....\n.....\n.***.\n.....\n.....\n"

	if got := w.String(); got != vertical {
		t.Fatalf("initial grid mismatch (-want +got):\n%s", cmp.Diff(vertical, got))
	}
	w.Step()
	if got := w.String(); got != horizontal {
		t.Fatalf("after first step (-want +got):\n%s", cmp.Diff(horizontal, got))
	}
	w.Step()
	if got := w.String(); got != vertical {
		t.Fatalf("after second step (-want +got):\n%s", cmp.Diff(vertical, got))
	}
	if w.Generation() != 2 {
		t.Fatalf("generation = %d, expected 2", w.Generation())
	}
}

func TestIsolatedCellDies(t *testing.T) {
	c := qt.New(t)
	a := parse(t, lifeDoc("Xrange=0..2;Yrange=0..2;", "", "(1,1)"))
	w := New(a)
	c.Assert(w.Simulate(1), qt.Equals, 1)
	c.Assert(w.String(), qt.Equals, "...\n...\n...\n")
	c.Assert(w.NonDefaultCells(), qt.HasLen, 0)
	c.Assert(a.Initial().Len(), qt.Equals, 0)
	c.Assert(w.Stable(), qt.IsFalse)

	// The next generation changes nothing, after which simulation stops.
	c.Assert(w.Simulate(5), qt.Equals, 1)
	c.Assert(w.Generation(), qt.Equals, 2)
	c.Assert(w.Stable(), qt.IsTrue)
}

func TestFixedPoint(t *testing.T) {
	c := qt.New(t)
	w := New(parse(t, lifeDoc("Xrange=0..5;Yrange=0..5;", "", "(2,2),(2,3),(3,2),(3,3)")))
	before := w.String()
	c.Assert(w.Simulate(100), qt.Equals, 1)
	c.Assert(w.Generation(), qt.Equals, 1)
	c.Assert(w.String(), qt.Equals, before)
	c.Assert(w.Changed(), qt.HasLen, 0)
}

func TestEmptyInitialNeverChanges(t *testing.T) {
	c := qt.New(t)
	w := New(parse(t, strings.Replace(brianDoc, "Ready = (2,3),(2,2); Firing = (1,2),(3,2);", "Ready = ; Firing = ;", 1)))
	c.Assert(w.Stable(), qt.IsTrue)
	c.Assert(w.Simulate(10), qt.Equals, 0)
	c.Assert(w.Generation(), qt.Equals, 0)
}

func TestSierpinski(t *testing.T) {
	c := qt.New(t)
	w := New(parse(t, sierpinskiDoc))
	c.Assert(w.Simulate(4), qt.Equals, 4)
	want := "" +
		"....#....\n" +
		"...#.#...\n" +
		"..#...#..\n" +
		".#.#.#.#.\n" +
		"#.......#\n"
	c.Assert(w.String(), qt.Equals, want)
}

func TestBrianTransitions(t *testing.T) {
	c := qt.New(t)
	w := New(parse(t, brianDoc))
	g := w.Grid()
	c.Assert(g.At(1, 2), qt.Equals, core.StateReady)
	c.Assert(g.At(2, 1), qt.Equals, core.StateFiring)

	w.Step()
	// Firing cells become refractory, ready cells with two firing
	// neighbours fire, refractory cells become ready.
	c.Assert(g.At(2, 1), qt.Equals, core.StateDefault)
	c.Assert(g.At(2, 3), qt.Equals, core.StateDefault)
	c.Assert(g.At(1, 2), qt.Equals, core.StateFiring)
	c.Assert(g.At(2, 2), qt.Equals, core.StateFiring)
	c.Assert(g.At(0, 0), qt.Equals, core.StateReady)
	c.Assert(g.At(4, 4), qt.Equals, core.StateReady)
	c.Assert(w.String(), qt.Equals, ""+
		".....\n"+
		"..O..\n"+
		".oOo.\n"+
		".....\n"+
		".....\n")
}

func TestBrianReadyStaysWithoutTwoFiring(t *testing.T) {
	c := qt.New(t)
	w := New(parse(t, `
Brian = {
	Terrain = { Xrange = 0..6; Yrange = 0..6; };
	Chars = { Ready = 46; Firing = 79; Refractory = 111; };
	Colors = { Ready = (0,0,0); Firing = (255,255,255); Refractory = (0,0,255); };
	Initial = { Ready = (1,5),(5,1); Firing = (0,6),(4,2),(5,2),(6,2); };
};`))
	g := w.Grid()
	c.Assert(g.At(1, 1), qt.Equals, core.StateReady)
	c.Assert(g.At(5, 5), qt.Equals, core.StateReady)

	w.Step()
	// (1,5) has one firing neighbour and (5,1) has three.
	c.Assert(g.At(1, 1), qt.Equals, core.StateReady)
	c.Assert(g.At(5, 5), qt.Equals, core.StateReady)
	c.Assert(g.At(0, 0), qt.Equals, core.StateDefault)
	c.Assert(g.At(4, 5), qt.Equals, core.StateDefault)
}

func TestViewRenderingMatchesWindowGrid(t *testing.T) {
	c := qt.New(t)
	for _, window := range []string{"", "Xrange=1..6;Yrange=-1..2;"} {
		w := New(parse(t, lifeDoc("Xrange=0..4;Yrange=0..4;", window, "(2,1),(2,2),(2,3),(0,0)")))
		w.Step()
		g := w.WindowGrid()
		glyphs := w.GlyphGrid()
		colors := w.ColorGrid()
		c.Assert(glyphs, qt.HasLen, g.Rows)
		var text strings.Builder
		for row := 0; row < g.Rows; row++ {
			c.Assert(glyphs[row], qt.HasLen, g.Cols)
			for col := 0; col < g.Cols; col++ {
				cell := g.Cell(row, col)
				c.Assert(glyphs[row][col], qt.Equals, w.Automaton().GlyphFor(cell))
				c.Assert(colors[row][col], qt.Equals, w.Automaton().ColorFor(cell))
				text.WriteRune(glyphs[row][col])
			}
			text.WriteByte('\n')
		}
		c.Assert(w.String(), qt.Equals, text.String())

		// The copy is detached from the world.
		g.Clear()
		c.Assert(w.String(), qt.Equals, text.String())
	}
}

func TestRenderingDoesNotCopyGrid(t *testing.T) {
	w := New(parse(t, lifeDoc("Xrange=0..31;Yrange=0..31;", "", "(2,1),(2,2),(2,3)")))
	rows := w.Size().H
	// One slice per row plus the outer slice.
	if n := testing.AllocsPerRun(10, func() { w.GlyphGrid() }); n > float64(rows+1) {
		t.Fatalf("GlyphGrid made %v allocations, want at most %d", n, rows+1)
	}
	if n := testing.AllocsPerRun(10, func() { w.ColorGrid() }); n > float64(rows+1) {
		t.Fatalf("ColorGrid made %v allocations, want at most %d", n, rows+1)
	}
}

func TestWindowProjection(t *testing.T) {
	c := qt.New(t)
	a := parse(t, lifeDoc("Xrange=0..4;Yrange=0..4;", "Xrange=1..3;Yrange=1..3;", "(2,1),(2,2),(2,3)"))
	w := New(a)
	c.Assert(w.Size(), qt.Equals, core.Size{W: 3, H: 3})
	c.Assert(w.View(), qt.Equals, automaton.Range{XStart: 1, XEnd: 3, YStart: 1, YEnd: 3})
	c.Assert(w.String(), qt.Equals, ".*.\n.*.\n.*.\n")
	w.Step()
	c.Assert(w.String(), qt.Equals, "...\n***\n...\n")

	colors := w.ColorGrid()
	c.Assert(colors, qt.HasLen, 3)
	c.Assert(colors[1][0], qt.Equals, automaton.MustColor(255, 255, 255))
	c.Assert(colors[0][0], qt.Equals, automaton.MustColor(0, 0, 0))
}

func TestWindowWraps(t *testing.T) {
	c := qt.New(t)
	// A window larger than the terrain repeats it.
	a := parse(t, lifeDoc("Xrange=0..1;Yrange=0..1;", "Xrange=0..3;Yrange=-1..1;", "(0,1)"))
	w := New(a)
	c.Assert(w.String(), qt.Equals, "*.*.\n....\n*.*.\n")
}

func TestWindowIdentity(t *testing.T) {
	c := qt.New(t)
	for seed := int64(1); seed <= 5; seed++ {
		rng := core.NewRNG(seed)
		var alive []string
		for _, cell := range rng.Scatter(12, -3, 4, 2, 7, core.StateAlive) {
			alive = append(alive, cell.String())
		}
		literal := strings.Join(alive, ",")
		plain := New(parse(t, lifeDoc("Xrange=-3..4;Yrange=2..7;", "", literal)))
		same := New(parse(t, lifeDoc("Xrange=-3..4;Yrange=2..7;", "Xrange=-3..4;Yrange=2..7;", literal)))
		shifted := New(parse(t, lifeDoc("Xrange=-3..4;Yrange=2..7;", "Xrange=5..12;Yrange=-4..1;", literal)))

		for gen := 0; gen < 3; gen++ {
			want := plain.Grid()
			c.Assert(same.WindowGrid().Equal(want), qt.IsTrue, qt.Commentf("seed %d generation %d", seed, gen))
			c.Assert(shifted.WindowGrid().Equal(want), qt.IsTrue, qt.Commentf("seed %d generation %d", seed, gen))
			c.Assert(shifted.String(), qt.Equals, plain.String())
			plain.Step()
			same.Step()
			shifted.Step()
		}
	}
}

func TestSimulateResyncsInitial(t *testing.T) {
	c := qt.New(t)
	a := parse(t, lifeDoc("Xrange=0..4;Yrange=0..4;", "", "(2,1),(2,2),(2,3)"))
	w := New(a)
	w.Simulate(1)
	c.Assert(a.Initial().Cells(), qt.DeepEquals, []core.Cell{
		{X: 1, Y: 2, State: core.StateAlive},
		{X: 2, Y: 2, State: core.StateAlive},
		{X: 3, Y: 2, State: core.StateAlive},
	})
	c.Assert(strings.Contains(a.String(), "Alive = (1, 2), (2, 2), (3, 2);"), qt.IsTrue)

	// The serialized automaton continues from where the world stopped.
	resumed := New(parse(t, a.String()))
	c.Assert(resumed.String(), qt.Equals, w.String())

	w.Reset()
	c.Assert(w.Generation(), qt.Equals, 0)
	c.Assert(w.String(), qt.Equals, ".....\n..*..\n..*..\n..*..\n.....\n")
	c.Assert(a.Initial().Literal(core.StateAlive), qt.Equals, "(2, 3), (2, 2), (2, 1)")
}

func TestNegativeTerrain(t *testing.T) {
	c := qt.New(t)
	a := parse(t, lifeDoc("Xrange=-2..2;Yrange=-2..2;", "", "(-2,2),(2,-2)"))
	w := New(a)
	c.Assert(w.String(), qt.Equals, "*....\n.....\n.....\n.....\n....*\n")
}

func TestInitialOutsideTerrainSkipped(t *testing.T) {
	c := qt.New(t)
	a := parse(t, lifeDoc("Xrange=0..4;Yrange=0..4;", "", "(2,1),(2,2),(2,3)"))
	c.Assert(a.UpdateTerrain("0..2", "0..2"), qt.IsNil)
	w := New(a)
	c.Assert(w.Size(), qt.Equals, core.Size{W: 3, H: 3})
	c.Assert(w.NonDefaultCells(), qt.HasLen, 2)
	c.Assert(a.Initial().Len(), qt.Equals, 2)
}

func TestParameters(t *testing.T) {
	c := qt.New(t)
	w := New(parse(t, sierpinskiDoc))
	w.Simulate(2)
	p := w.Parameters()
	for key, want := range map[string]string{
		"name":       "sierpinski",
		"family":     "Elementary",
		"rule":       "90",
		"terrain_x":  "0..8",
		"generation": "2",
		"live_cells": "5",
		"stable":     "false",
	} {
		got, ok := p.Lookup(key)
		c.Assert(ok, qt.IsTrue, qt.Commentf("key %s", key))
		c.Assert(got.Value, qt.Equals, want, qt.Commentf("key %s", key))
	}
	_, ok := p.Lookup("window_x")
	c.Assert(ok, qt.IsFalse)

	b := New(parse(t, brianDoc))
	_, ok = b.Parameters().Lookup("rule")
	c.Assert(ok, qt.IsFalse)
	c.Assert(b.Name(), qt.Equals, "brian")
}
