// Package automaton holds the three cellular automaton families (Life,
// Elementary and Brian's Brain) and builds them from struct text.
//
// An Automaton describes what to simulate: its terrain, optional window,
// glyphs, colors, initial cells and transition rule. Simulation itself is
// done by a world, which calls NextCellState for every cell.
package automaton

import (
	"github.com/juju/loggo"
	errgo "gopkg.in/errgo.v1"

	"lifeca/internal/core"
	"lifeca/internal/structtext"
)

var logger = loggo.GetLogger("lifeca.automaton")

// Family names the kind of automaton. It is also the top-level identifier
// of a description.
type Family string

const (
	FamilyLife       Family = "Life"
	FamilyElementary Family = "Elementary"
	FamilyBrian      Family = "Brian"
)

// Families lists every supported family in lookup order.
var Families = []Family{FamilyLife, FamilyElementary, FamilyBrian}

// Automaton is implemented by *Life, *Elementary and *Brian only.
type Automaton interface {
	Name() string
	Family() Family
	Terrain() Range
	// Window returns the view onto the terrain, if one is set.
	Window() (Range, bool)
	Initial() *Initial

	// UpdateTerrain overwrites the terrain axes given as non-empty
	// "low..high" strings.
	UpdateTerrain(xRange, yRange string) error
	// UpdateWindow sets the window axes given as non-empty strings. When
	// there is no window yet, a missing axis is taken from the terrain.
	UpdateWindow(xRange, yRange string) error

	// NextCellState returns the state that c, a grid-space cell of g,
	// has in the next generation.
	NextCellState(g *core.Grid, c core.Cell) core.State
	GlyphFor(c core.Cell) rune
	ColorFor(c core.Cell) Color

	// Field returns the automaton as a struct text field named after its
	// family.
	Field() structtext.Field
	String() string
	Clone() Automaton

	sealed()
}

// RuleAutomaton is an automaton whose behaviour is set by a rule string.
type RuleAutomaton interface {
	Automaton
	Rule() string
}

// Parse builds an automaton from a cleaned description whose top-level
// identifier is one of the families.
func Parse(doc string) (Automaton, error) {
	values, err := structtext.Parse(doc)
	if err != nil {
		return nil, errgo.Mask(err, errgo.Any)
	}
	for _, fam := range Families {
		body, ok := values.Lookup(string(fam))
		if !ok {
			continue
		}
		a, err := ParseFamily(fam, body)
		if err != nil {
			return nil, err
		}
		logger.Debugf("parsed %s automaton %q, terrain %v", fam, a.Name(), a.Terrain())
		return a, nil
	}
	return nil, core.Errorf(core.ErrUnknownAutomaton, "no Life, Elementary or Brian automaton found")
}

// ParseFamily builds an automaton of the given family from its struct body.
func ParseFamily(fam Family, body string) (Automaton, error) {
	var a Automaton
	var err error
	switch fam {
	case FamilyLife:
		a, err = NewLife(body)
	case FamilyElementary:
		a, err = NewElementary(body)
	case FamilyBrian:
		a, err = NewBrian(body)
	default:
		return nil, core.Errorf(core.ErrUnknownAutomaton, "unknown automaton %q", fam)
	}
	if err != nil {
		return nil, errgo.NoteMask(err, "cannot parse "+string(fam), errgo.Any)
	}
	return a, nil
}

// base holds the members every family shares.
type base struct {
	name    string
	terrain Range
	window  *Range
	initial *Initial
}

func (b *base) Name() string      { return b.name }
func (b *base) Terrain() Range    { return b.terrain }
func (b *base) Initial() *Initial { return b.initial }
func (b *base) sealed()           {}

func (b *base) Window() (Range, bool) {
	if b.window == nil {
		return Range{}, false
	}
	return *b.window, true
}

func (b *base) UpdateTerrain(xRange, yRange string) error {
	return b.terrain.Update(xRange, yRange)
}

func (b *base) UpdateWindow(xRange, yRange string) error {
	next := b.terrain
	if b.window != nil {
		next = *b.window
	}
	if err := next.Update(xRange, yRange); err != nil {
		return err
	}
	if b.window == nil && xRange == "" && yRange == "" {
		return nil
	}
	b.window = &next
	return nil
}

func (b *base) clone() base {
	out := base{
		name:    b.name,
		terrain: b.terrain,
		initial: b.initial.clone(),
	}
	if b.window != nil {
		w := *b.window
		out.window = &w
	}
	return out
}

// parseBase reads Name, Terrain and Window.
func parseBase(values structtext.Values) (base, error) {
	var b base
	b.name, _ = values.Lookup("Name")
	body, err := values.Value("Terrain", true)
	if err != nil {
		return base{}, errgo.Mask(err, errgo.Any)
	}
	if b.terrain, err = ParseRangeStruct(body); err != nil {
		return base{}, errgo.NoteMask(err, "Terrain", errgo.Any)
	}
	if values.Has("Window") {
		w, err := ParseRangeStruct(values["Window"])
		if err != nil {
			return base{}, errgo.NoteMask(err, "Window", errgo.Any)
		}
		b.window = &w
	}
	b.initial = NewInitial()
	return b, nil
}

// parseInitial reads the Initial struct, adding the literal of each key in
// the state paired with it. Every key must be present but may be empty.
func (b *base) parseInitial(values structtext.Values, keys []string, states []core.State) error {
	body, err := values.Value("Initial", true)
	if err != nil {
		return errgo.Mask(err, errgo.Any)
	}
	initial, err := structtext.Parse(body)
	if err != nil {
		return errgo.NoteMask(err, "Initial", errgo.Any)
	}
	for i, key := range keys {
		literal, err := initial.Value(key, false)
		if err != nil {
			return errgo.NoteMask(err, "Initial", errgo.Any)
		}
		if err := b.initial.ConvertCellStr(literal, b.terrain, states[i]); err != nil {
			return errgo.NoteMask(err, "Initial."+key, errgo.Any)
		}
	}
	return nil
}

// headerFields returns Name, Rule (when non-empty), Terrain and Window.
func (b *base) headerFields(rule string) []structtext.Field {
	var fields []structtext.Field
	if b.name != "" {
		fields = append(fields, structtext.Quoted("Name", b.name))
	}
	if rule != "" {
		fields = append(fields, structtext.Assign("Rule", rule))
	}
	fields = append(fields, b.terrain.Field("Terrain"))
	if b.window != nil {
		fields = append(fields, b.window.Field("Window"))
	}
	return fields
}

func (b *base) initialField(keys []string, states []core.State) structtext.Field {
	fields := make([]structtext.Field, len(keys))
	for i, key := range keys {
		fields[i] = structtext.Assign(key, b.initial.Literal(states[i]))
	}
	return structtext.Struct("Initial", fields...)
}

// requiredBody returns the non-empty struct body assigned to key.
func requiredBody(values structtext.Values, key string) (string, error) {
	body, err := values.Value(key, true)
	if err != nil {
		return "", errgo.Mask(err, errgo.Any)
	}
	return body, nil
}
