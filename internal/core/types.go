package core

// Size describes the dimensions of a rendered view.
type Size struct {
	W int
	H int
}

// Sim is the minimal contract the interactive hosts drive. A world is a
// Sim; hosts never reach into the automaton behind it.
type Sim interface {
	Name() string
	Size() Size
	Reset()
	Step()
	Generation() int
}
