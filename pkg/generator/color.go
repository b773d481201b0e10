// color.go — Brand color parsing and solid canvas creation.
package generator

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/disintegration/imaging"
)

// ParseColor parses "#rrggbb" or the short "#rgb" form. The leading '#' is
// optional and hex digits are case-insensitive. The result is fully opaque.
func ParseColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) == 3 {
		hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
	}
	if len(hex) != 6 {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: expected #rgb or #rrggbb", s)
	}

	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}

	return color.NRGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 255}, nil
}

// MustParseColor is ParseColor for compile-time constants. It panics on error.
func MustParseColor(s string) color.NRGBA {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

// WithAlpha returns c with its alpha channel replaced.
func WithAlpha(c color.NRGBA, a uint8) color.NRGBA {
	c.A = a
	return c
}

// Shade composites black at the given alpha over the opaque color c, which is
// what laying a dark translucent overlay on a flat fill produces.
func Shade(c color.NRGBA, alpha uint8) color.NRGBA {
	keep := 255 - uint32(alpha)
	scale := func(v uint8) uint8 {
		return uint8((uint32(v)*keep + 127) / 255)
	}
	return color.NRGBA{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}

// Hex formats c as "#RRGGBB".
func Hex(c color.NRGBA) string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// NewSolidImage creates a w×h canvas filled with c.
func NewSolidImage(w, h int, c color.Color) *image.NRGBA {
	return imaging.New(w, h, c)
}
