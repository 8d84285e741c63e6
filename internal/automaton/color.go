package automaton

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"lifeca/internal/core"
)

// Color is an RGB color whose channels are always within 0-255.
type Color struct {
	r, g, b int
}

// NewColor returns the color with the given channels.
func NewColor(red, green, blue int) (Color, error) {
	var c Color
	if err := c.SetRed(red); err != nil {
		return Color{}, err
	}
	if err := c.SetGreen(green); err != nil {
		return Color{}, err
	}
	if err := c.SetBlue(blue); err != nil {
		return Color{}, err
	}
	return c, nil
}

// MustColor is like NewColor but panics on an invalid channel.
func MustColor(red, green, blue int) Color {
	c, err := NewColor(red, green, blue)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseColor reads a color written as (r, g, b).
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "(") || !strings.HasSuffix(s, ")") {
		return Color{}, core.Errorf(core.ErrInvalidColor, "invalid color %q: want (r, g, b)", s)
	}
	parts := strings.Split(s[1:len(s)-1], ",")
	if len(parts) != 3 {
		return Color{}, core.Errorf(core.ErrInvalidColor, "invalid color %q: want 3 channels, got %d", s, len(parts))
	}
	var ch [3]int
	for i, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return Color{}, core.Errorf(core.ErrInvalidColor, "invalid color %q: channel %q is not a number", s, strings.TrimSpace(p))
		}
		ch[i] = v
	}
	return NewColor(ch[0], ch[1], ch[2])
}

func (c Color) Red() int   { return c.r }
func (c Color) Green() int { return c.g }
func (c Color) Blue() int  { return c.b }

func (c *Color) SetRed(v int) error   { return setChannel(&c.r, v, "red") }
func (c *Color) SetGreen(v int) error { return setChannel(&c.g, v, "green") }
func (c *Color) SetBlue(v int) error  { return setChannel(&c.b, v, "blue") }

func setChannel(ch *int, v int, name string) error {
	if v < 0 || v > 255 {
		return core.Errorf(core.ErrInvalidColor, "invalid color: %s channel %d out of range 0-255", name, v)
	}
	*ch = v
	return nil
}

// RGBA converts the color to an opaque image/color value.
func (c Color) RGBA() color.RGBA {
	return color.RGBA{R: uint8(c.r), G: uint8(c.g), B: uint8(c.b), A: 0xff}
}

func (c Color) String() string {
	return fmt.Sprintf("(%d, %d, %d)", c.r, c.g, c.b)
}
