package automaton

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"lifeca/internal/core"
)

func TestConvertCellStr(t *testing.T) {
	c := qt.New(t)
	terrain := Range{XStart: 0, XEnd: 9, YStart: 0, YEnd: 9}
	in := NewInitial()
	err := in.ConvertCellStr("(1,2), (3,4),(1,2),(11,-1)", terrain, core.StateAlive)
	c.Assert(err, qt.IsNil)
	c.Assert(in.Cells(), qt.DeepEquals, []core.Cell{
		{X: 1, Y: 2, State: core.StateAlive},
		{X: 3, Y: 4, State: core.StateAlive},
		{X: 1, Y: 9, State: core.StateAlive},
	})

	// Positions already present keep their first state.
	c.Assert(in.ConvertCellStr("(3,4),(5,5)", terrain, core.StateFiring), qt.IsNil)
	c.Assert(in.Len(), qt.Equals, 4)
	c.Assert(in.CellsIn(core.StateFiring), qt.DeepEquals, []core.Cell{{X: 5, Y: 5, State: core.StateFiring}})

	c.Assert(in.ConvertCellStr("", terrain, core.StateAlive), qt.IsNil)
	c.Assert(in.Len(), qt.Equals, 4)
}

func TestConvertCellStrErrors(t *testing.T) {
	c := qt.New(t)
	terrain := Range{XStart: 0, XEnd: 9, YStart: 0, YEnd: 9}
	for _, literal := range []string{
		"(1,2)(3,4)",
		"(1 2)",
		"(1,2",
		"1,2",
		"(1,2),",
		"(a,2)",
		"(1,2,3)",
	} {
		c.Run(literal, func(c *qt.C) {
			in := NewInitial()
			err := in.ConvertCellStr(literal, terrain, core.StateAlive)
			c.Assert(core.KindOf(err), qt.Equals, core.ErrInvalidInitialValue)
			c.Assert(in.Len(), qt.Equals, 0)
		})
	}
}

func TestConvertToTerrainCells(t *testing.T) {
	c := qt.New(t)
	terrain := Range{XStart: -2, XEnd: 2, YStart: -1, YEnd: 3}
	in := NewInitial()
	in.Add(core.Cell{X: 100, Y: 100, State: core.StateAlive})
	in.ConvertToTerrainCells([]core.Cell{
		{X: 0, Y: 0, State: core.StateAlive},
		{X: 4, Y: 4, State: core.StateFiring},
		{X: 2, Y: 1, State: core.StateReady},
	}, terrain)
	c.Assert(in.Cells(), qt.DeepEquals, []core.Cell{
		{X: -2, Y: 3, State: core.StateAlive},
		{X: 2, Y: -1, State: core.StateFiring},
		{X: 0, Y: 2, State: core.StateReady},
	})
	c.Assert(in.Literal(core.StateAlive), qt.Equals, "(-2, 3)")
	c.Assert(in.Literal(core.StateOne), qt.Equals, "")
}
