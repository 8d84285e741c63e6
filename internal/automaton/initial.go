package automaton

import (
	"strconv"
	"strings"

	"lifeca/internal/core"
)

// Initial is the set of cells that are not in the default state when a
// world is reset. Cells are unique by position and keep insertion order.
type Initial struct {
	cells []core.Cell
	index map[[2]int]int
}

// NewInitial returns an empty set.
func NewInitial() *Initial {
	return &Initial{index: make(map[[2]int]int)}
}

// Add inserts c unless a cell already occupies its position. It reports
// whether c was added.
func (in *Initial) Add(c core.Cell) bool {
	if in.index == nil {
		in.index = make(map[[2]int]int)
	}
	key := [2]int{c.X, c.Y}
	if _, ok := in.index[key]; ok {
		return false
	}
	in.index[key] = len(in.cells)
	in.cells = append(in.cells, c)
	return true
}

// Cells returns a copy of the cells in insertion order.
func (in *Initial) Cells() []core.Cell {
	return append([]core.Cell(nil), in.cells...)
}

// CellsIn returns the cells in state s.
func (in *Initial) CellsIn(s core.State) []core.Cell {
	var cells []core.Cell
	for _, c := range in.cells {
		if c.State == s {
			cells = append(cells, c)
		}
	}
	return cells
}

// Len returns the number of cells.
func (in *Initial) Len() int { return len(in.cells) }

// Clear removes every cell.
func (in *Initial) Clear() {
	in.cells = in.cells[:0]
	in.index = make(map[[2]int]int)
}

// ConvertCellStr adds the cells of a (x0,y0),(x1,y1),... literal in state
// s. Coordinates outside the terrain wrap into it and positions already in
// the set are skipped. Nothing is added when the literal is malformed.
func (in *Initial) ConvertCellStr(literal string, terrain Range, s core.State) error {
	cells, err := parseCellList(literal)
	if err != nil {
		return err
	}
	for _, c := range cells {
		c.X, c.Y = terrain.Fit(c.X, c.Y)
		c.State = s
		in.Add(c)
	}
	return nil
}

// ConvertToTerrainCells replaces the set with grid cells mapped into the
// terrain. Grid rows grow downwards from the terrain's YEnd.
func (in *Initial) ConvertToTerrainCells(gridCells []core.Cell, terrain Range) {
	in.Clear()
	for _, c := range gridCells {
		in.Add(core.Cell{X: terrain.XStart + c.X, Y: terrain.YEnd - c.Y, State: c.State})
	}
}

// Literal formats the cells in state s as (x, y), (x, y), ...
func (in *Initial) Literal(s core.State) string {
	var b strings.Builder
	for _, c := range in.cells {
		if c.State != s {
			continue
		}
		if b.Len() > 0 {
			b.WriteString(", ")
		}
		b.WriteString(c.String())
	}
	return b.String()
}

func (in *Initial) clone() *Initial {
	out := &Initial{
		cells: append([]core.Cell(nil), in.cells...),
		index: make(map[[2]int]int, len(in.index)),
	}
	for k, v := range in.index {
		out.index[k] = v
	}
	return out
}

func parseCellList(literal string) ([]core.Cell, error) {
	rest := strings.TrimSpace(literal)
	var cells []core.Cell
	for rest != "" {
		if rest[0] != '(' {
			return nil, initialError(literal)
		}
		end := strings.IndexByte(rest, ')')
		if end < 0 {
			return nil, initialError(literal)
		}
		c, err := parseCell(rest[1:end])
		if err != nil {
			return nil, err
		}
		cells = append(cells, c)
		rest = strings.TrimSpace(rest[end+1:])
		if rest == "" {
			break
		}
		if rest[0] != ',' {
			return nil, initialError(literal)
		}
		rest = strings.TrimSpace(rest[1:])
		if rest == "" {
			return nil, initialError(literal)
		}
	}
	return cells, nil
}

func parseCell(s string) (core.Cell, error) {
	xs, ys, ok := strings.Cut(s, ",")
	if !ok {
		return core.Cell{}, core.Errorf(core.ErrInvalidInitialValue, "cell is not formatted as (x,y): (%s)", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(xs))
	if err != nil {
		return core.Cell{}, core.Errorf(core.ErrInvalidInitialValue, "cell is not formatted as (x,y): (%s)", s)
	}
	y, err := strconv.Atoi(strings.TrimSpace(ys))
	if err != nil {
		return core.Cell{}, core.Errorf(core.ErrInvalidInitialValue, "cell is not formatted as (x,y): (%s)", s)
	}
	return core.Cell{X: x, Y: y}, nil
}

func initialError(literal string) error {
	return core.Errorf(core.ErrInvalidInitialValue, "initial value is not formatted as (x0,y0),(x1,y1),...: %s", literal)
}
