package automaton

import (
	"strconv"
	"strings"
	"unicode/utf8"

	errgo "gopkg.in/errgo.v1"

	"lifeca/internal/core"
	"lifeca/internal/structtext"
)

// Chars holds the glyph drawn for cells in the default state. Each family
// embeds it and adds the glyphs of its other states.
type Chars struct {
	Default rune
}

// LifeChars are the glyphs of a Life automaton.
type LifeChars struct {
	Chars
	Alive rune
}

// ElementaryChars are the glyphs of an Elementary automaton.
type ElementaryChars struct {
	Chars
	One rune
}

// BrianChars are the glyphs of a Brian's Brain automaton. The default glyph
// is the refractory one.
type BrianChars struct {
	Chars
	Ready  rune
	Firing rune
}

// Colors holds the color of cells in the default state. Each family embeds
// it and adds the colors of its other states.
type Colors struct {
	Default Color
}

// LifeColors are the colors of a Life automaton.
type LifeColors struct {
	Colors
	Alive Color
}

// ElementaryColors are the colors of an Elementary automaton.
type ElementaryColors struct {
	Colors
	One Color
}

// BrianColors are the colors of a Brian's Brain automaton.
type BrianColors struct {
	Colors
	Ready  Color
	Firing Color
}

func (c LifeChars) glyph(s core.State) rune {
	if s == core.StateAlive {
		return c.Alive
	}
	return c.Default
}

func (c ElementaryChars) glyph(s core.State) rune {
	if s == core.StateOne {
		return c.One
	}
	return c.Default
}

func (c BrianChars) glyph(s core.State) rune {
	switch s {
	case core.StateReady:
		return c.Ready
	case core.StateFiring:
		return c.Firing
	}
	return c.Default
}

func (c LifeColors) color(s core.State) Color {
	if s == core.StateAlive {
		return c.Alive
	}
	return c.Default
}

func (c ElementaryColors) color(s core.State) Color {
	if s == core.StateOne {
		return c.One
	}
	return c.Default
}

func (c BrianColors) color(s core.State) Color {
	switch s {
	case core.StateReady:
		return c.Ready
	case core.StateFiring:
		return c.Firing
	}
	return c.Default
}

func (c LifeChars) field() structtext.Field {
	return structtext.Struct("Chars",
		glyphField("Alive", c.Alive),
		glyphField("Dead", c.Default),
	)
}

func (c ElementaryChars) field() structtext.Field {
	return structtext.Struct("Chars",
		glyphField("One", c.One),
		glyphField("Zero", c.Default),
	)
}

func (c BrianChars) field() structtext.Field {
	return structtext.Struct("Chars",
		glyphField("Ready", c.Ready),
		glyphField("Firing", c.Firing),
		glyphField("Refractory", c.Default),
	)
}

func (c LifeColors) field() structtext.Field {
	return structtext.Struct("Colors",
		structtext.Assign("Alive", c.Alive.String()),
		structtext.Assign("Dead", c.Default.String()),
	)
}

func (c ElementaryColors) field() structtext.Field {
	return structtext.Struct("Colors",
		structtext.Assign("One", c.One.String()),
		structtext.Assign("Zero", c.Default.String()),
	)
}

func (c BrianColors) field() structtext.Field {
	return structtext.Struct("Colors",
		structtext.Assign("Ready", c.Ready.String()),
		structtext.Assign("Firing", c.Firing.String()),
		structtext.Assign("Refractory", c.Default.String()),
	)
}

func glyphField(name string, r rune) structtext.Field {
	return structtext.Assign(name, strconv.Itoa(int(r)))
}

// legacyKeys maps identifiers to older spellings still accepted on input.
var legacyKeys = map[string]string{
	"Refractory": "Refactory",
}

// requiredValue returns the non-empty value of key, falling back to its
// legacy spelling.
func requiredValue(values structtext.Values, key string) (string, error) {
	if _, ok := values[key]; !ok {
		if old, ok := legacyKeys[key]; ok {
			if _, ok := values[old]; ok {
				key = old
			}
		}
	}
	return values.Value(key, true)
}

func parseGlyphs(body string, keys ...string) ([]rune, error) {
	values, err := structtext.Parse(body)
	if err != nil {
		return nil, errgo.Mask(err, errgo.Any)
	}
	glyphs := make([]rune, len(keys))
	for i, key := range keys {
		v, err := requiredValue(values, key)
		if err != nil {
			return nil, errgo.Mask(err, errgo.Any)
		}
		code, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil || code < 0 || !utf8.ValidRune(rune(code)) {
			return nil, core.Errorf(core.ErrMalformedDocument, "invalid character code for %s: %q", key, v)
		}
		glyphs[i] = rune(code)
	}
	return glyphs, nil
}

func parseColors(body string, keys ...string) ([]Color, error) {
	values, err := structtext.Parse(body)
	if err != nil {
		return nil, errgo.Mask(err, errgo.Any)
	}
	colors := make([]Color, len(keys))
	for i, key := range keys {
		v, err := requiredValue(values, key)
		if err != nil {
			return nil, errgo.Mask(err, errgo.Any)
		}
		c, err := ParseColor(v)
		if err != nil {
			return nil, errgo.NoteMask(err, key, errgo.Any)
		}
		colors[i] = c
	}
	return colors, nil
}

// ParseLifeChars reads { Alive = code; Dead = code; }.
func ParseLifeChars(body string) (LifeChars, error) {
	g, err := parseGlyphs(body, "Alive", "Dead")
	if err != nil {
		return LifeChars{}, err
	}
	return LifeChars{Chars: Chars{Default: g[1]}, Alive: g[0]}, nil
}

// ParseElementaryChars reads { One = code; Zero = code; }.
func ParseElementaryChars(body string) (ElementaryChars, error) {
	g, err := parseGlyphs(body, "One", "Zero")
	if err != nil {
		return ElementaryChars{}, err
	}
	return ElementaryChars{Chars: Chars{Default: g[1]}, One: g[0]}, nil
}

// ParseBrianChars reads { Ready = code; Firing = code; Refractory = code; }.
func ParseBrianChars(body string) (BrianChars, error) {
	g, err := parseGlyphs(body, "Ready", "Firing", "Refractory")
	if err != nil {
		return BrianChars{}, err
	}
	return BrianChars{Chars: Chars{Default: g[2]}, Ready: g[0], Firing: g[1]}, nil
}

// ParseLifeColors reads { Alive = (r,g,b); Dead = (r,g,b); }.
func ParseLifeColors(body string) (LifeColors, error) {
	c, err := parseColors(body, "Alive", "Dead")
	if err != nil {
		return LifeColors{}, err
	}
	return LifeColors{Colors: Colors{Default: c[1]}, Alive: c[0]}, nil
}

// ParseElementaryColors reads { One = (r,g,b); Zero = (r,g,b); }.
func ParseElementaryColors(body string) (ElementaryColors, error) {
	c, err := parseColors(body, "One", "Zero")
	if err != nil {
		return ElementaryColors{}, err
	}
	return ElementaryColors{Colors: Colors{Default: c[1]}, One: c[0]}, nil
}

// ParseBrianColors reads { Ready = (r,g,b); Firing = (r,g,b); Refractory = (r,g,b); }.
func ParseBrianColors(body string) (BrianColors, error) {
	c, err := parseColors(body, "Ready", "Firing", "Refractory")
	if err != nil {
		return BrianColors{}, err
	}
	return BrianColors{Colors: Colors{Default: c[2]}, Ready: c[0], Firing: c[1]}, nil
}
