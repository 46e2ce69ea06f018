package shape

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ParseColor accepts a CSS color name ("green", "steelblue") or a hex
// string in #rgb, #rrggbb or #rrggbbaa form.
func ParseColor(s string) (color.NRGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if c, ok := colornames.Map[s]; ok {
		return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}, nil
	}
	if !strings.HasPrefix(s, "#") {
		return color.NRGBA{}, fmt.Errorf("shape: unknown color %q: %w", s, ErrInvalidParameter)
	}

	hex := s[1:]
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	if len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("shape: bad hex color %q: %w", s, ErrInvalidParameter)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("shape: bad hex color %q: %w", s, ErrInvalidParameter)
	}
	return color.NRGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustColor is ParseColor for literals known to be valid.
func MustColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
