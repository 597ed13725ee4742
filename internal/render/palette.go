package render

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	hsluv "github.com/hsluv/hsluv-go"
)

// Palette maps biome indices to display colors.
type Palette []color.RGBA

// ParseHex parses "#rrggbb" or "#rrggbbaa" (the leading '#' is optional).
func ParseHex(s string) (color.RGBA, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.RGBA{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	if len(hex) == 6 {
		v = v<<8 | 0xff
	}
	return color.RGBA{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// Hex formats c as "#rrggbb", appending alpha only when it is not opaque.
func Hex(c color.RGBA) string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Generate returns n colors with evenly spaced HSLuv hues.
func Generate(n int) Palette {
	pal := make(Palette, n)
	for i := range pal {
		pal[i] = hueColor(i, n)
	}
	return pal
}

// hueColor returns the i-th of n evenly spaced colors.
func hueColor(i, n int) color.RGBA {
	r, g, b := hsluv.HuslToRGB(360*float64(i)/float64(n), 75, 55)
	return color.RGBA{
		R: uint8(r*0xff + 0.5),
		G: uint8(g*0xff + 0.5),
		B: uint8(b*0xff + 0.5),
		A: 0xff,
	}
}
