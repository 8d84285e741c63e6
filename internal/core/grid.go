package core

// Grid stores a rows×columns matrix of cell states in row-major order.
type Grid struct {
	Rows, Cols int
	data       []State
}

// NewGrid allocates a grid with every cell in StateDefault.
func NewGrid(rows, cols int) *Grid {
	if rows <= 0 {
		rows = 1
	}
	if cols <= 0 {
		cols = 1
	}
	return &Grid{Rows: rows, Cols: cols, data: make([]State, rows*cols)}
}

// States exposes the backing slice so callers can read values directly.
func (g *Grid) States() []State { return g.data }

// Index returns the linear slice index for (row, col).
func (g *Grid) Index(row, col int) int { return row*g.Cols + col }

// Wrap applies toroidal wrapping to the provided coordinates.
func (g *Grid) Wrap(row, col int) (int, int) {
	row = (row%g.Rows + g.Rows) % g.Rows
	col = (col%g.Cols + g.Cols) % g.Cols
	return row, col
}

// At returns the state at (row, col), wrapping out of range coordinates.
func (g *Grid) At(row, col int) State {
	row, col = g.Wrap(row, col)
	return g.data[g.Index(row, col)]
}

// Set stores the state at (row, col), wrapping out of range coordinates.
func (g *Grid) Set(row, col int, s State) {
	row, col = g.Wrap(row, col)
	g.data[g.Index(row, col)] = s
}

// Cell returns the grid-space cell at (row, col).
func (g *Grid) Cell(row, col int) Cell {
	return Cell{X: col, Y: row, State: g.At(row, col)}
}

// CountNeighbors counts the Moore neighbours of (row, col) in state s,
// wrapping at the grid edges.
func (g *Grid) CountNeighbors(row, col int, s State) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			if g.At(row+dy, col+dx) == s {
				n++
			}
		}
	}
	return n
}

// Clear resets every cell to StateDefault.
func (g *Grid) Clear() {
	for i := range g.data {
		g.data[i] = StateDefault
	}
}

// Clone returns an independent copy of the grid.
func (g *Grid) Clone() *Grid {
	return &Grid{Rows: g.Rows, Cols: g.Cols, data: append([]State(nil), g.data...)}
}

// Equal reports whether both grids have the same shape and states.
func (g *Grid) Equal(o *Grid) bool {
	if g.Rows != o.Rows || g.Cols != o.Cols {
		return false
	}
	for i, s := range g.data {
		if o.data[i] != s {
			return false
		}
	}
	return true
}
