package palette

import (
	"math"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/anybitmap/internal/pixel"
)

type entry struct {
	name  string
	color pixel.Color
}

var byName = func() map[string]pixel.Color {
	m := make(map[string]pixel.Color, len(known))
	for _, e := range known {
		m[strings.ToLower(e.name)] = e.color
	}
	return m
}()

// Names returns every known color name in alphabetical order.
func Names() []string {
	out := make([]string, len(known))
	for i, e := range known {
		out[i] = e.name
	}
	return out
}

// Lookup returns the color with the given name. Case, spaces, hyphens and
// underscores are ignored, so "light-sky blue" finds LightSkyBlue.
func Lookup(name string) (pixel.Color, bool) {
	key := strings.Map(func(r rune) rune {
		switch r {
		case ' ', '-', '_':
			return -1
		}
		return r
	}, strings.ToLower(name))
	c, ok := byName[key]
	return c, ok
}

// Parse accepts a color name or a hex code in any form pixel.ParseHex
// understands.
func Parse(s string) (pixel.Color, error) {
	if c, ok := Lookup(s); ok {
		return c, nil
	}
	return pixel.ParseHex(s)
}

// Name returns the name of a color exactly equal to c, alpha included.
func Name(c pixel.Color) (string, bool) {
	for _, e := range known {
		if e.color == c {
			return e.name, true
		}
	}
	return "", false
}

// Nearest returns the opaque named color closest to c in CIE Lab space.
// Alpha is ignored.
func Nearest(c pixel.Color) (string, pixel.Color) {
	target := toColorful(c)
	best, bestDist := known[0], math.Inf(1)
	for _, e := range known {
		if e.color.A != 0xff {
			continue
		}
		if d := target.DistanceLab(toColorful(e.color)); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best.name, best.color
}

// HSL is a color in hue (degrees, 0-359), saturation (percent) and
// lightness (percent).
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// ToHSL converts the RGB part of c.
func ToHSL(c pixel.Color) HSL {
	h, s, l := toColorful(c).Hsl()
	hsl := HSL{H: int(math.Round(h)), S: int(math.Round(s * 100)), L: int(math.Round(l * 100))}
	if hsl.H >= 360 {
		hsl.H -= 360
	}
	return hsl
}

// Description is a color in the forms the server reports.
type Description struct {
	Hex       string `json:"hex"`  // "#RRGGBB", alpha excluded
	ARGB      string `json:"argb"` // "#AARRGGBB"
	R         uint8  `json:"r"`
	G         uint8  `json:"g"`
	B         uint8  `json:"b"`
	A         uint8  `json:"a"`
	HSL       HSL    `json:"hsl"`
	Luminance int    `json:"luminance"`
	Name      string `json:"name,omitempty"`    // set only for an exact match
	Nearest   string `json:"nearest,omitempty"` // closest opaque named color
}

// Describe returns c in every reported form.
func Describe(c pixel.Color) Description {
	d := Description{
		Hex:       c.Hex(),
		ARGB:      c.String(),
		R:         c.R,
		G:         c.G,
		B:         c.B,
		A:         c.A,
		HSL:       ToHSL(c),
		Luminance: c.Luminance(),
	}
	d.Name, _ = Name(c)
	d.Nearest, _ = Nearest(c)
	return d
}

func toColorful(c pixel.Color) colorful.Color {
	return colorful.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
}
