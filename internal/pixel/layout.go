package pixel

import "fmt"

// Layout tags how a pixel is packed into a frame buffer. The name lists the
// channels in byte order, lowest address first.
type Layout uint8

// Supported layouts.
const (
	LayoutUnknown Layout = iota
	RGB24                // R, G, B
	BGR24                // B, G, R (legacy device-independent bitmap order)
	RGBA32               // R, G, B, A (non-premultiplied)
	ARGB32               // A, R, G, B
	BGRA32               // B, G, R, A
	ABGR32               // A, B, G, R
	Gray8                // Y
	Mono1                // 1 bit per pixel, most significant bit first, 1 = white
)

var layoutNames = [...]string{
	LayoutUnknown: "Unknown",
	RGB24:         "RGB24",
	BGR24:         "BGR24",
	RGBA32:        "RGBA32",
	ARGB32:        "ARGB32",
	BGRA32:        "BGRA32",
	ABGR32:        "ABGR32",
	Gray8:         "Gray8",
	Mono1:         "Mono1",
}

func (l Layout) String() string {
	if int(l) < len(layoutNames) {
		return layoutNames[l]
	}
	return fmt.Sprintf("Layout(%d)", l)
}

// ParseLayout resolves a layout by its name, case-sensitively.
func ParseLayout(name string) (Layout, bool) {
	for i, n := range layoutNames {
		if i > 0 && n == name {
			return Layout(i), true
		}
	}
	return LayoutUnknown, false
}

// BitsPerPixel returns the color depth of the layout.
func (l Layout) BitsPerPixel() int {
	switch l {
	case RGB24, BGR24:
		return 24
	case RGBA32, ARGB32, BGRA32, ABGR32:
		return 32
	case Gray8:
		return 8
	case Mono1:
		return 1
	}
	return 0
}

// BytesPerPixel returns the whole bytes one pixel occupies, or 0 for
// sub-byte layouts.
func (l Layout) BytesPerPixel() int {
	return l.BitsPerPixel() / 8
}

// HasAlpha reports whether the layout stores an alpha channel.
func (l Layout) HasAlpha() bool {
	return l.BitsPerPixel() == 32
}

// Valid reports whether l is a known layout.
func (l Layout) Valid() bool {
	return l > LayoutUnknown && l <= Mono1
}

// AlignedStride returns the row length in bytes for width pixels of the
// layout, rounded up to a multiple of four bytes.
func AlignedStride(width int, l Layout) int {
	return (width*l.BitsPerPixel() + 31) / 32 * 4
}

// channel offsets of R, G, B and A within a pixel; a < 0 means no alpha.
type channels struct {
	r, g, b, a int
}

func (l Layout) channels() channels {
	switch l {
	case RGB24:
		return channels{0, 1, 2, -1}
	case BGR24:
		return channels{2, 1, 0, -1}
	case RGBA32:
		return channels{0, 1, 2, 3}
	case ARGB32:
		return channels{1, 2, 3, 0}
	case BGRA32:
		return channels{2, 1, 0, 3}
	case ABGR32:
		return channels{3, 2, 1, 0}
	}
	return channels{-1, -1, -1, -1}
}
