package component

import (
	"fmt"
	"strconv"

	"golang.org/x/text/cases"
)

type NamedColor uint8

const (
	Black NamedColor = iota
	DarkBlue
	DarkGreen
	DarkAqua
	DarkRed
	DarkPurple
	Gold
	Gray
	DarkGray
	Blue
	Green
	Aqua
	Red
	LightPurple
	Yellow
	White
	// Reset clears any color inherited from the parent when rendered.
	Reset
)

var namedColors = [...]struct {
	name    string
	r, g, b uint8
}{
	Black:       {"black", 0x00, 0x00, 0x00},
	DarkBlue:    {"dark_blue", 0x00, 0x00, 0xaa},
	DarkGreen:   {"dark_green", 0x00, 0xaa, 0x00},
	DarkAqua:    {"dark_aqua", 0x00, 0xaa, 0xaa},
	DarkRed:     {"dark_red", 0xaa, 0x00, 0x00},
	DarkPurple:  {"dark_purple", 0xaa, 0x00, 0xaa},
	Gold:        {"gold", 0xff, 0xaa, 0x00},
	Gray:        {"gray", 0xaa, 0xaa, 0xaa},
	DarkGray:    {"dark_gray", 0x55, 0x55, 0x55},
	Blue:        {"blue", 0x55, 0x55, 0xff},
	Green:       {"green", 0x55, 0xff, 0x55},
	Aqua:        {"aqua", 0x55, 0xff, 0xff},
	Red:         {"red", 0xff, 0x55, 0x55},
	LightPurple: {"light_purple", 0xff, 0x55, 0xff},
	Yellow:      {"yellow", 0xff, 0xff, 0x55},
	White:       {"white", 0xff, 0xff, 0xff},
	Reset:       {"reset", 0xff, 0xff, 0xff},
}

var colorsByName = func() map[string]NamedColor {
	m := make(map[string]NamedColor, len(namedColors))
	for i, c := range namedColors {
		m[c.name] = NamedColor(i)
	}
	return m
}()

func (n NamedColor) String() string {
	if int(n) < len(namedColors) {
		return namedColors[n].name
	}
	return "NamedColor(" + strconv.Itoa(int(n)) + ")"
}

type colorKind uint8

const (
	colorUnset colorKind = iota
	colorNamed
	colorHex
)

// Color is either one of the named defaults or an explicit RGB value. The zero
// value means no color is set.
type Color struct {
	kind    colorKind
	name    NamedColor
	r, g, b uint8
}

func Named(n NamedColor) Color {
	return Color{kind: colorNamed, name: n}
}

func RGB(r, g, b uint8) Color {
	return Color{kind: colorHex, r: r, g: g, b: b}
}

// ColorFromName looks up a named color, ignoring case.
func ColorFromName(name string) (Color, error) {
	n, ok := colorsByName[cases.Fold().String(name)]
	if !ok {
		return Color{}, fmt.Errorf("%w: %q", ErrUnknownColor, name)
	}
	return Named(n), nil
}

// ColorFromHex parses "#RRGGBB" in either case.
func ColorFromHex(s string) (Color, error) {
	if len(s) != 7 || s[0] != '#' {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHexFormat, s)
	}
	for i := 1; i < len(s); i++ {
		if !isHexDigit(s[i]) {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidHexFormat, s)
		}
	}
	v, err := strconv.ParseUint(s[1:], 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("%w: %q", ErrInvalidHexFormat, s)
	}
	return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
}

// ParseColor accepts either wire representation: a '#' prefix selects the hex
// form, anything else is looked up by name.
func ParseColor(s string) (Color, error) {
	if len(s) > 0 && s[0] == '#' {
		return ColorFromHex(s)
	}
	return ColorFromName(s)
}

func isHexDigit(c byte) bool {
	return c >= '0' && c <= '9' || c >= 'a' && c <= 'f' || c >= 'A' && c <= 'F'
}

func (c Color) IsSet() bool {
	return c.kind != colorUnset
}

func (c Color) IsHex() bool {
	return c.kind == colorHex
}

// Name returns the named color and true, or false for RGB and unset colors.
func (c Color) Name() (NamedColor, bool) {
	return c.name, c.kind == colorNamed
}

func (c Color) RGB() (r, g, b uint8) {
	switch c.kind {
	case colorNamed:
		nc := namedColors[c.name]
		return nc.r, nc.g, nc.b
	case colorHex:
		return c.r, c.g, c.b
	}
	return 0, 0, 0
}

// Nearest returns the named color closest to c. Named colors are returned
// unchanged.
func (c Color) Nearest() Color {
	if c.kind != colorHex {
		return c
	}

	best, bestDist := Black, -1
	for i := Black; i <= White; i++ {
		nc := namedColors[i]
		dr := int(c.r) - int(nc.r)
		dg := int(c.g) - int(nc.g)
		db := int(c.b) - int(nc.b)
		dist := dr*dr + dg*dg + db*db
		if bestDist < 0 || dist < bestDist {
			best, bestDist = i, dist
		}
	}
	return Named(best)
}

// String returns the wire form: the lowercase name or "#rrggbb".
func (c Color) String() string {
	switch c.kind {
	case colorNamed:
		return c.name.String()
	case colorHex:
		return fmt.Sprintf("#%02x%02x%02x", c.r, c.g, c.b)
	}
	return ""
}

func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Color) UnmarshalText(text []byte) error {
	parsed, err := ParseColor(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
