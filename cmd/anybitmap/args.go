package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ironsheep/anybitmap/internal/bitmap"
	"github.com/ironsheep/anybitmap/internal/format"
)

// parseRect reads "x,y,width,height".
func parseRect(s string) (bitmap.Rect, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return bitmap.Rect{}, fmt.Errorf("rectangle %q: want x,y,width,height", s)
	}
	var v [4]int
	for i, p := range parts {
		n, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return bitmap.Rect{}, fmt.Errorf("rectangle %q: %w", s, err)
		}
		v[i] = n
	}
	return bitmap.Rect{X: v[0], Y: v[1], Width: v[2], Height: v[3]}, nil
}

// parseSize reads "WIDTHxHEIGHT".
func parseSize(s string) (int, int, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return 0, 0, fmt.Errorf("size %q: want WIDTHxHEIGHT", s)
	}
	w, err := strconv.Atoi(strings.TrimSpace(ws))
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	h, err := strconv.Atoi(strings.TrimSpace(hs))
	if err != nil {
		return 0, 0, fmt.Errorf("size %q: %w", s, err)
	}
	return w, h, nil
}

// outputFormat resolves --format, falling back to the extension of path.
// Unknown means "keep the source format".
func outputFormat(name, path string) (format.Format, error) {
	if name == "" {
		return format.FromPath(path), nil
	}
	f, ok := format.Parse(name)
	if !ok || f == format.Svg {
		return format.Unknown, fmt.Errorf("%w: %q", bitmap.ErrUnsupportedFormat, name)
	}
	return f, nil
}
