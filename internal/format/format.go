package format

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is an encoded image container.
type Format uint8

// Known formats.
const (
	Unknown Format = iota
	Bmp
	Png
	Gif
	Jpeg
	Tiff
	Webp
	Svg
)

type info struct {
	name string
	mime string
	ext  string
	alt  []string // extra names accepted by Parse
}

var table = [...]info{
	Unknown: {name: "Unknown"},
	Bmp:     {name: "Bmp", mime: "image/bmp", ext: ".bmp", alt: []string{"dib", "image/x-ms-bmp"}},
	Png:     {name: "Png", mime: "image/png", ext: ".png"},
	Gif:     {name: "Gif", mime: "image/gif", ext: ".gif"},
	Jpeg:    {name: "Jpeg", mime: "image/jpeg", ext: ".jpg", alt: []string{"jpg", "jpe", "jfif", "image/jpg"}},
	Tiff:    {name: "Tiff", mime: "image/tiff", ext: ".tiff", alt: []string{"tif"}},
	Webp:    {name: "Webp", mime: "image/webp", ext: ".webp"},
	Svg:     {name: "Svg", mime: "image/svg+xml", ext: ".svg", alt: []string{"svgz"}},
}

// All lists every known format except Unknown, in declaration order.
var All = []Format{Bmp, Png, Gif, Jpeg, Tiff, Webp, Svg}

func (f Format) String() string {
	if int(f) < len(table) {
		return table[f].name
	}
	return fmt.Sprintf("Format(%d)", f)
}

// MimeType returns the registered media type, or "" for Unknown.
func (f Format) MimeType() string {
	if int(f) < len(table) {
		return table[f].mime
	}
	return ""
}

// Extension returns the preferred file extension including the dot.
func (f Format) Extension() string {
	if int(f) < len(table) {
		return table[f].ext
	}
	return ""
}

// MultiFrame reports whether the container can hold more than one frame.
func (f Format) MultiFrame() bool {
	return f == Gif || f == Tiff
}

// Lossy reports whether encoding honors a quality setting.
func (f Format) Lossy() bool {
	return f == Jpeg || f == Webp
}

// Parse resolves a format from its name, mime type or file extension, ignoring
// case and a leading dot. It returns Unknown, false when nothing matches.
func Parse(s string) (Format, bool) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), ".")
	if s == "" {
		return Unknown, false
	}
	for _, f := range All {
		in := table[f]
		if s == strings.ToLower(in.name) || s == in.mime || s == in.ext[1:] {
			return f, true
		}
		for _, a := range in.alt {
			if s == a {
				return f, true
			}
		}
	}
	return Unknown, false
}

// FromPath guesses a format from the extension of path. It never reads the file.
func FromPath(path string) Format {
	f, _ := Parse(filepath.Ext(path))
	return f
}
