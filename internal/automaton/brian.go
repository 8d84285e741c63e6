package automaton

import (
	errgo "gopkg.in/errgo.v1"

	"lifeca/internal/core"
	"lifeca/internal/structtext"
)

var (
	brianInitialKeys   = []string{"Ready", "Firing"}
	brianInitialStates = []core.State{core.StateReady, core.StateFiring}
)

// Brian is Brian's Brain. Firing cells become refractory (the default
// state), refractory cells become ready, and ready cells fire when exactly
// two of their neighbours are firing.
type Brian struct {
	base
	chars  BrianChars
	colors BrianColors
}

// NewBrian builds a Brian's Brain automaton from the body of a Brian
// struct.
func NewBrian(body string) (*Brian, error) {
	values, err := structtext.Parse(body)
	if err != nil {
		return nil, errgo.Mask(err, errgo.Any)
	}
	b, err := parseBase(values)
	if err != nil {
		return nil, err
	}
	br := &Brian{base: b}
	chars, err := requiredBody(values, "Chars")
	if err != nil {
		return nil, err
	}
	if br.chars, err = ParseBrianChars(chars); err != nil {
		return nil, errgo.NoteMask(err, "Chars", errgo.Any)
	}
	colors, err := requiredBody(values, "Colors")
	if err != nil {
		return nil, err
	}
	if br.colors, err = ParseBrianColors(colors); err != nil {
		return nil, errgo.NoteMask(err, "Colors", errgo.Any)
	}
	if err := br.parseInitial(values, brianInitialKeys, brianInitialStates); err != nil {
		return nil, err
	}
	return br, nil
}

// Family implements Automaton.
func (b *Brian) Family() Family { return FamilyBrian }

func (b *Brian) Chars() BrianChars   { return b.chars }
func (b *Brian) Colors() BrianColors { return b.colors }

// NextCellState implements Automaton.
func (b *Brian) NextCellState(g *core.Grid, c core.Cell) core.State {
	switch c.State {
	case core.StateFiring:
		return core.StateDefault
	case core.StateReady:
		if g.CountNeighbors(c.Y, c.X, core.StateFiring) == 2 {
			return core.StateFiring
		}
		return core.StateReady
	}
	return core.StateReady
}

func (b *Brian) GlyphFor(c core.Cell) rune  { return b.chars.glyph(c.State) }
func (b *Brian) ColorFor(c core.Cell) Color { return b.colors.color(c.State) }

// Field implements Automaton.
func (b *Brian) Field() structtext.Field {
	fields := append(b.headerFields(""),
		b.chars.field(),
		b.colors.field(),
		b.initialField(brianInitialKeys, brianInitialStates),
	)
	return structtext.Struct(string(FamilyBrian), fields...)
}

func (b *Brian) String() string { return b.Field().String() }

// Clone implements Automaton.
func (b *Brian) Clone() Automaton {
	out := *b
	out.base = b.base.clone()
	return &out
}
