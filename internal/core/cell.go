package core

import "fmt"

// State is the closed set of cell states shared by every automaton family.
// Each family only produces a subset of them.
type State uint8

const (
	StateDefault State = iota
	StateAlive
	StateReady
	StateFiring
	StateOne
)

var stateNames = [...]string{
	StateDefault: "default",
	StateAlive:   "alive",
	StateReady:   "ready",
	StateFiring:  "firing",
	StateOne:     "one",
}

func (s State) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", uint8(s))
}

// Cell is a positioned state. In terrain space X and Y are terrain
// coordinates; in grid space X is the column and Y is the row.
type Cell struct {
	X, Y  int
	State State
}

// SamePos reports whether c and o occupy the same position. State is
// ignored, which is the equality used for deduplication.
func (c Cell) SamePos(o Cell) bool {
	return c.X == o.X && c.Y == o.Y
}

// String formats the position as (x, y).
func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}
