package automaton

import (
	"strings"

	errgo "gopkg.in/errgo.v1"

	"lifeca/internal/core"
	"lifeca/internal/structtext"
)

var (
	lifeInitialKeys   = []string{"Alive"}
	lifeInitialStates = []core.State{core.StateAlive}
)

// Life is a Life-like automaton with a B<digits>/S<digits> rule over the
// Moore neighbourhood.
type Life struct {
	base
	rule    string
	born    [9]bool
	survive [9]bool
	chars   LifeChars
	colors  LifeColors
}

// NewLife builds a Life automaton from the body of a Life struct.
func NewLife(body string) (*Life, error) {
	values, err := structtext.Parse(body)
	if err != nil {
		return nil, errgo.Mask(err, errgo.Any)
	}
	b, err := parseBase(values)
	if err != nil {
		return nil, err
	}
	l := &Life{base: b}
	rule, err := values.Value("Rule", true)
	if err != nil {
		return nil, errgo.Mask(err, errgo.Any)
	}
	if err := l.SetRule(rule); err != nil {
		return nil, err
	}
	chars, err := requiredBody(values, "Chars")
	if err != nil {
		return nil, err
	}
	if l.chars, err = ParseLifeChars(chars); err != nil {
		return nil, errgo.NoteMask(err, "Chars", errgo.Any)
	}
	colors, err := requiredBody(values, "Colors")
	if err != nil {
		return nil, err
	}
	if l.colors, err = ParseLifeColors(colors); err != nil {
		return nil, errgo.NoteMask(err, "Colors", errgo.Any)
	}
	if err := l.parseInitial(values, lifeInitialKeys, lifeInitialStates); err != nil {
		return nil, err
	}
	return l, nil
}

// Family implements Automaton.
func (l *Life) Family() Family { return FamilyLife }

// Rule returns the rule as written, for example B3/S23.
func (l *Life) Rule() string { return l.rule }

// SetRule replaces the rule. The rule is left unchanged on error.
func (l *Life) SetRule(rule string) error {
	born, survive, err := parseLifeRule(rule)
	if err != nil {
		return err
	}
	l.rule, l.born, l.survive = strings.TrimSpace(rule), born, survive
	return nil
}

// Chars returns the glyphs.
func (l *Life) Chars() LifeChars { return l.chars }

// Colors returns the colors.
func (l *Life) Colors() LifeColors { return l.colors }

// NextCellState implements Automaton.
func (l *Life) NextCellState(g *core.Grid, c core.Cell) core.State {
	n := g.CountNeighbors(c.Y, c.X, core.StateAlive)
	if c.State == core.StateAlive {
		if l.survive[n] {
			return core.StateAlive
		}
		return core.StateDefault
	}
	if l.born[n] {
		return core.StateAlive
	}
	return core.StateDefault
}

func (l *Life) GlyphFor(c core.Cell) rune  { return l.chars.glyph(c.State) }
func (l *Life) ColorFor(c core.Cell) Color { return l.colors.color(c.State) }

// Field implements Automaton.
func (l *Life) Field() structtext.Field {
	fields := append(l.headerFields(l.rule),
		l.chars.field(),
		l.colors.field(),
		l.initialField(lifeInitialKeys, lifeInitialStates),
	)
	return structtext.Struct(string(FamilyLife), fields...)
}

func (l *Life) String() string { return l.Field().String() }

// Clone implements Automaton.
func (l *Life) Clone() Automaton {
	out := *l
	out.base = l.base.clone()
	return &out
}

func parseLifeRule(rule string) (born, survive [9]bool, err error) {
	rule = strings.TrimSpace(rule)
	b, s, ok := strings.Cut(rule, "/")
	if !ok {
		return born, survive, core.Errorf(core.ErrInvalidRule, "invalid rule %q: missing /", rule)
	}
	if !strings.HasPrefix(b, "B") {
		return born, survive, core.Errorf(core.ErrInvalidRule, "invalid rule %q: want B<digits>/S<digits>", rule)
	}
	if !strings.HasPrefix(s, "S") {
		return born, survive, core.Errorf(core.ErrInvalidRule, "invalid rule %q: want B<digits>/S<digits>", rule)
	}
	if born, err = neighbourCounts(rule, b[1:]); err != nil {
		return born, survive, err
	}
	if survive, err = neighbourCounts(rule, s[1:]); err != nil {
		return born, survive, err
	}
	return born, survive, nil
}

func neighbourCounts(rule, digits string) ([9]bool, error) {
	var set [9]bool
	for _, d := range digits {
		if d < '0' || d > '8' {
			return set, core.Errorf(core.ErrInvalidRule, "invalid rule %q: %q is not a neighbour count", rule, d)
		}
		set[d-'0'] = true
	}
	return set, nil
}
