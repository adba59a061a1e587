package pixel

import (
	"errors"
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidColor is returned when a color code cannot be parsed.
var ErrInvalidColor = errors.New("pixel: invalid color code")

// Color is an 8-bit ARGB color.
//
// Color is comparable; two colors are equal only when all four components
// match, so a fully transparent black and an opaque black are distinct
// histogram keys.
type Color struct {
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
}

// Common colors.
var (
	Transparent = Color{}
	Black       = Color{A: 0xff}
	White       = Color{A: 0xff, R: 0xff, G: 0xff, B: 0xff}
	Red         = Color{A: 0xff, R: 0xff}
	Green       = Color{A: 0xff, G: 0xff}
	Blue        = Color{A: 0xff, B: 0xff}
)

// RGB returns an opaque color.
func RGB(r, g, b uint8) Color {
	return Color{A: 0xff, R: r, G: g, B: b}
}

// ARGB returns a color from its four components.
func ARGB(a, r, g, b uint8) Color {
	return Color{A: a, R: r, G: g, B: b}
}

// FromArgb unpacks a color stored as A<<24 | R<<16 | G<<8 | B.
func FromArgb(v uint32) Color {
	return Color{A: uint8(v >> 24), R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v)}
}

// Argb packs the color as A<<24 | R<<16 | G<<8 | B.
func (c Color) Argb() uint32 {
	return uint32(c.A)<<24 | uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
}

// ParseHex parses a web color code.
//
// Accepted forms, each with an optional leading '#':
//   - "rgb": each nibble is doubled ("f80" is "ff8800"), alpha 255
//   - "rrggbb": alpha 255
//   - "aarrggbb": alpha first
func ParseHex(code string) (Color, error) {
	s := strings.TrimPrefix(strings.TrimSpace(code), "#")

	switch len(s) {
	case 3:
		v, err := strconv.ParseUint(s, 16, 16)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, code)
		}
		r, g, b := uint8(v>>8&0xf), uint8(v>>4&0xf), uint8(v&0xf)
		return RGB(r<<4|r, g<<4|g, b<<4|b), nil
	case 6:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, code)
		}
		return FromArgb(0xff000000 | uint32(v)), nil
	case 8:
		v, err := strconv.ParseUint(s, 16, 32)
		if err != nil {
			return Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, code)
		}
		return FromArgb(uint32(v)), nil
	default:
		return Color{}, fmt.Errorf("%w: %q has length %d, want 3, 6 or 8", ErrInvalidColor, code, len(s))
	}
}

// MustParseHex is like ParseHex but panics on error. Intended for constant
// tables and tests.
func MustParseHex(code string) Color {
	c, err := ParseHex(code)
	if err != nil {
		panic(err)
	}
	return c
}

// String renders the color as "#AARRGGBB".
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.A, c.R, c.G, c.B)
}

// Hex renders the color as "#RRGGBB", dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Luminance returns the perceived brightness as a percentage (0-100) using
// the ITU-R BT.601 weights, rounded half away from zero.
func (c Color) Luminance() int {
	y := 0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)
	return int(math.Round(y * 100 / 255))
}

// Opaque reports whether alpha is 255.
func (c Color) Opaque() bool {
	return c.A == 0xff
}

// RGBA implements color.Color. The returned values are alpha-premultiplied.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// NRGBA converts to the standard library's non-premultiplied color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// ColorFrom converts any color.Color to a Color.
func ColorFrom(c color.Color) Color {
	switch v := c.(type) {
	case Color:
		return v
	case color.NRGBA:
		return Color{A: v.A, R: v.R, G: v.G, B: v.B}
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{A: n.A, R: n.R, G: n.G, B: n.B}
}

// luma returns the BT.601 luma of an RGB triple, using the same fixed point
// coefficients as color.GrayModel.
func luma(r, g, b uint8) uint8 {
	// 19595 + 38470 + 7471 equals 65536.
	y := (19595*uint32(r) + 38470*uint32(g) + 7471*uint32(b) + 1<<15) >> 16
	return uint8(y)
}
