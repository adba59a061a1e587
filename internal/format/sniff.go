package format

import (
	"bytes"
	"errors"
	"fmt"
	"io"
)

// SniffLen is the number of leading bytes Sniff looks at.
const SniffLen = 512

// ErrUnrecognizedFormat is returned when no signature matches and no usable
// hint was supplied.
var ErrUnrecognizedFormat = errors.New("unrecognized image format")

var (
	pngSignature  = []byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}
	jpegSignature = []byte{0xFF, 0xD8, 0xFF}
	tiffLE        = []byte{'I', 'I', 0x2A, 0x00}
	tiffBE        = []byte{'M', 'M', 0x00, 0x2A}
	utf8BOM       = []byte{0xEF, 0xBB, 0xBF}
)

// Sniff classifies data by its magic bytes.
func Sniff(data []byte) (Format, error) {
	if len(data) > SniffLen {
		data = data[:SniffLen]
	}

	switch {
	case bytes.HasPrefix(data, pngSignature):
		return Png, nil
	case bytes.HasPrefix(data, jpegSignature):
		return Jpeg, nil
	case bytes.HasPrefix(data, []byte("GIF87a")), bytes.HasPrefix(data, []byte("GIF89a")):
		return Gif, nil
	case bytes.HasPrefix(data, tiffLE), bytes.HasPrefix(data, tiffBE):
		return Tiff, nil
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && string(data[8:12]) == "WEBP":
		return Webp, nil
	case bytes.HasPrefix(data, []byte("BM")):
		return Bmp, nil
	case isSVG(data):
		return Svg, nil
	}
	return Unknown, ErrUnrecognizedFormat
}

// SniffWithHint is Sniff with a fallback: when no signature matches, a known
// hint is returned instead of an error. A successful sniff always wins over
// the hint.
func SniffWithHint(data []byte, hint Format) (Format, error) {
	f, err := Sniff(data)
	if err == nil {
		return f, nil
	}
	if hint != Unknown && int(hint) < len(table) {
		return hint, nil
	}
	return Unknown, err
}

// SniffReader sniffs the next SniffLen bytes of r and seeks back to where r
// was positioned, whatever the outcome.
func SniffReader(r io.ReadSeeker) (f Format, err error) {
	start, err := r.Seek(0, io.SeekCurrent)
	if err != nil {
		return Unknown, fmt.Errorf("sniff: %w", err)
	}
	defer func() {
		if _, serr := r.Seek(start, io.SeekStart); serr != nil && err == nil {
			f, err = Unknown, fmt.Errorf("sniff: restore position: %w", serr)
		}
	}()

	buf := make([]byte, SniffLen)
	n, rerr := io.ReadFull(r, buf)
	if rerr != nil && rerr != io.ErrUnexpectedEOF && rerr != io.EOF {
		return Unknown, fmt.Errorf("sniff: %w", rerr)
	}
	return Sniff(buf[:n])
}

// isSVG skips a BOM, whitespace, the XML prolog, comments and DOCTYPE
// declarations, then expects the <svg root element.
func isSVG(data []byte) bool {
	b := bytes.TrimPrefix(data, utf8BOM)
	for {
		b = bytes.TrimLeft(b, " \t\r\n")
		switch {
		case bytes.HasPrefix(b, []byte("<?")):
			b = skipPast(b, "?>")
		case bytes.HasPrefix(b, []byte("<!--")):
			b = skipPast(b, "-->")
		case bytes.HasPrefix(b, []byte("<!")):
			b = skipPast(b, ">")
		default:
			return hasSVGTag(b)
		}
		if b == nil {
			return false
		}
	}
}

func hasSVGTag(b []byte) bool {
	if !bytes.HasPrefix(b, []byte("<svg")) {
		return false
	}
	if len(b) == 4 {
		// Truncated by the sniff window right after the tag name.
		return true
	}
	switch b[4] {
	case ' ', '\t', '\r', '\n', '>', '/':
		return true
	}
	return false
}

func skipPast(b []byte, marker string) []byte {
	i := bytes.Index(b, []byte(marker))
	if i < 0 {
		return nil
	}
	return b[i+len(marker):]
}
