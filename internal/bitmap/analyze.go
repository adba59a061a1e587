package bitmap

import (
	"cmp"
	"slices"

	"github.com/ironsheep/anybitmap/internal/pixel"
)

// ColorInfo counts every distinct color of frame 0. Alpha is part of a
// color's identity.
func (m *Image) ColorInfo() (map[pixel.Color]int, error) {
	if m.closed {
		return nil, ErrClosed
	}
	f := m.frames[0]
	hist := make(map[pixel.Color]int)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			hist[f.At(x, y)]++
		}
	}
	return hist, nil
}

// ContainsColor reports whether c occurs anywhere in frame 0. It stops at
// the first match.
func (m *Image) ContainsColor(c pixel.Color) (bool, error) {
	if m.closed {
		return false, ErrClosed
	}
	f := m.frames[0]
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.At(x, y) == c {
				return true, nil
			}
		}
	}
	return false, nil
}

// ColorCount is one histogram entry.
type ColorCount struct {
	Color pixel.Color `json:"color"`
	Count int         `json:"count"`
}

// DominantColors returns the n most frequent colors of frame 0, most frequent
// first, ties broken by ascending ARGB value. n <= 0 returns all of them.
func (m *Image) DominantColors(n int) ([]ColorCount, error) {
	hist, err := m.ColorInfo()
	if err != nil {
		return nil, err
	}
	out := make([]ColorCount, 0, len(hist))
	for c, count := range hist {
		out = append(out, ColorCount{Color: c, Count: count})
	}
	slices.SortFunc(out, func(a, b ColorCount) int {
		if a.Count != b.Count {
			return cmp.Compare(b.Count, a.Count)
		}
		return cmp.Compare(a.Color.Argb(), b.Color.Argb())
	})
	if n > 0 && n < len(out) {
		out = out[:n]
	}
	return out, nil
}
