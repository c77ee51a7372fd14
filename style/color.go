package style

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a non-alpha-premultiplied 32-bit color. It implements
// color.Color.
type Color struct {
	R, G, B, A uint8
}

// White is the default foreground color and the default tint of images.
var White = Color{0xff, 0xff, 0xff, 0xff}

// Black is opaque black.
var Black = Color{0, 0, 0, 0xff}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts c to the standard library representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// String returns the #rrggbbaa form of c.
func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// Hex returns the #rrggbb form of c, dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// ColorFrom converts an arbitrary color.Color.
func ColorFrom(c color.Color) Color {
	if c == nil {
		return Black
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{n.R, n.G, n.B, n.A}
}

// ParseColor decodes a hex color in one of the forms #rgb, #rgba, #rrggbb or
// #rrggbbaa. Short forms repeat each digit, i.e. #f00 equals #ff0000.
func ParseColor(s string) (Color, error) {
	if !strings.HasPrefix(s, "#") {
		return Color{}, fmt.Errorf("color must start with '#': %q", s)
	}
	hex := s[1:]
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("not a hex color: %q", s)
	}
	nibble := func(shift uint) uint8 {
		return uint8((v>>shift)&0xf) * 0x11
	}
	octet := func(shift uint) uint8 {
		return uint8(v >> shift)
	}
	switch len(hex) {
	case 3:
		return Color{nibble(8), nibble(4), nibble(0), 0xff}, nil
	case 4:
		return Color{nibble(12), nibble(8), nibble(4), nibble(0)}, nil
	case 6:
		return Color{octet(16), octet(8), octet(0), 0xff}, nil
	case 8:
		return Color{octet(24), octet(16), octet(8), octet(0)}, nil
	}
	return Color{}, fmt.Errorf("color values must match one of #rgb, #rgba, #rrggbb or #rrggbbaa: %q", s)
}
