package core

import "math/rand/v2"

// RNG is a thin convenience wrapper around math/rand/v2 for deterministic seeding.
type RNG struct {
	r *rand.Rand
}

// NewRNG creates a deterministic RNG using the provided seed.
func NewRNG(seed int64) *RNG {
	return &RNG{r: rand.New(rand.NewPCG(uint64(seed), 0))}
}

// Bool returns a random boolean value.
func (r *RNG) Bool() bool {
	return r.r.IntN(2) == 1
}

// IntRange returns a random int in [lo, hi].
func (r *RNG) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + r.r.IntN(hi-lo+1)
}

// Pick returns a random element of choices.
func (r *RNG) Pick(choices []string) string {
	if len(choices) == 0 {
		return ""
	}
	return choices[r.r.IntN(len(choices))]
}

// Scatter returns n distinct cells with coordinates in the given inclusive
// bounds, all in state s. n is capped at the number of available positions.
func (r *RNG) Scatter(n, xStart, xEnd, yStart, yEnd int, s State) []Cell {
	w, h := xEnd-xStart+1, yEnd-yStart+1
	if w <= 0 || h <= 0 {
		return nil
	}
	if n > w*h {
		n = w * h
	}
	perm := r.r.Perm(w * h)[:n]
	cells := make([]Cell, n)
	for i, p := range perm {
		cells[i] = Cell{X: xStart + p%w, Y: yStart + p/w, State: s}
	}
	return cells
}
