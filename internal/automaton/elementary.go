package automaton

import (
	"strconv"
	"strings"

	errgo "gopkg.in/errgo.v1"

	"lifeca/internal/core"
	"lifeca/internal/structtext"
)

var (
	elementaryInitialKeys   = []string{"One"}
	elementaryInitialStates = []core.State{core.StateOne}
)

// Elementary is a Wolfram-code automaton. Each row is computed from the
// row above it, so a single seed row grows downwards over generations.
type Elementary struct {
	base
	rule   uint8
	chars  ElementaryChars
	colors ElementaryColors
}

// NewElementary builds an Elementary automaton from the body of an
// Elementary struct.
func NewElementary(body string) (*Elementary, error) {
	values, err := structtext.Parse(body)
	if err != nil {
		return nil, errgo.Mask(err, errgo.Any)
	}
	b, err := parseBase(values)
	if err != nil {
		return nil, err
	}
	e := &Elementary{base: b}
	rule, err := values.Value("Rule", true)
	if err != nil {
		return nil, errgo.Mask(err, errgo.Any)
	}
	if err := e.SetRule(rule); err != nil {
		return nil, err
	}
	chars, err := requiredBody(values, "Chars")
	if err != nil {
		return nil, err
	}
	if e.chars, err = ParseElementaryChars(chars); err != nil {
		return nil, errgo.NoteMask(err, "Chars", errgo.Any)
	}
	colors, err := requiredBody(values, "Colors")
	if err != nil {
		return nil, err
	}
	if e.colors, err = ParseElementaryColors(colors); err != nil {
		return nil, errgo.NoteMask(err, "Colors", errgo.Any)
	}
	if err := e.parseInitial(values, elementaryInitialKeys, elementaryInitialStates); err != nil {
		return nil, err
	}
	return e, nil
}

// Family implements Automaton.
func (e *Elementary) Family() Family { return FamilyElementary }

// Rule returns the Wolfram code as a decimal string.
func (e *Elementary) Rule() string { return strconv.Itoa(int(e.rule)) }

// Code returns the Wolfram code.
func (e *Elementary) Code() uint8 { return e.rule }

// SetRule replaces the rule with a decimal code in 0-255. Signs are
// rejected so the rule reads back as written.
func (e *Elementary) SetRule(rule string) error {
	rule = strings.TrimSpace(rule)
	code, err := strconv.Atoi(rule)
	if err != nil || code < 0 || code > 255 || !isDigits(rule) {
		return core.Errorf(core.ErrInvalidRule, "invalid rule %q: want a number in 0-255", rule)
	}
	e.rule = uint8(code)
	return nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return s != ""
}

func (e *Elementary) Chars() ElementaryChars   { return e.chars }
func (e *Elementary) Colors() ElementaryColors { return e.colors }

// NextCellState implements Automaton. ONE cells never change; a default
// cell becomes ONE when the rule bit for the pattern of its upper-left,
// upper and upper-right neighbours is set.
func (e *Elementary) NextCellState(g *core.Grid, c core.Cell) core.State {
	if c.State == core.StateOne {
		return core.StateOne
	}
	up := c.Y - 1
	var pattern uint8
	if g.At(up, c.X-1) == core.StateOne {
		pattern |= 4
	}
	if g.At(up, c.X) == core.StateOne {
		pattern |= 2
	}
	if g.At(up, c.X+1) == core.StateOne {
		pattern |= 1
	}
	if (e.rule>>pattern)&1 == 1 {
		return core.StateOne
	}
	return core.StateDefault
}

func (e *Elementary) GlyphFor(c core.Cell) rune  { return e.chars.glyph(c.State) }
func (e *Elementary) ColorFor(c core.Cell) Color { return e.colors.color(c.State) }

// Field implements Automaton.
func (e *Elementary) Field() structtext.Field {
	fields := append(e.headerFields(e.Rule()),
		e.chars.field(),
		e.colors.field(),
		e.initialField(elementaryInitialKeys, elementaryInitialStates),
	)
	return structtext.Struct(string(FamilyElementary), fields...)
}

func (e *Elementary) String() string { return e.Field().String() }

// Clone implements Automaton.
func (e *Elementary) Clone() Automaton {
	out := *e
	out.base = e.base.clone()
	return &out
}
