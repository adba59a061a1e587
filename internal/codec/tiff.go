package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/klauspost/compress/zlib"
	"golang.org/x/image/tiff"

	"github.com/ironsheep/anybitmap/internal/pixel"
)

// TIFF tags and values used by the reader and writer.
const (
	tagImageWidth      = 256
	tagImageLength     = 257
	tagBitsPerSample   = 258
	tagCompression     = 259
	tagPhotometric     = 262
	tagStripOffsets    = 273
	tagSamplesPerPixel = 277
	tagRowsPerStrip    = 278
	tagStripByteCounts = 279
	tagPlanarConfig    = 284
	tagExtraSamples    = 338

	dtShort = 3
	dtLong  = 4

	compressionNone    = 1
	compressionDeflate = 8
	photometricRGB     = 2
	extraUnassocAlpha  = 2

	ifdEntryLen = 12
	maxPages    = 1 << 16
)

// tiffPage locates one IFD in a TIFF file.
type tiffPage struct {
	offset        uint32
	width, height uint32
	widthEntry    int // byte offset of the ImageWidth entry, -1 if absent
}

// tiffPages walks the IFD chain and reports every page, including degenerate
// ones. A loop or an offset outside data ends the walk with an error.
func tiffPages(data []byte) ([]tiffPage, error) {
	if len(data) < 8 {
		return nil, fmt.Errorf("%w: tiff header truncated", ErrDecodeFailure)
	}
	var order binary.ByteOrder
	switch string(data[:4]) {
	case "II*\x00":
		order = binary.LittleEndian
	case "MM\x00*":
		order = binary.BigEndian
	default:
		return nil, fmt.Errorf("%w: bad tiff header", ErrDecodeFailure)
	}

	var pages []tiffPage
	seen := make(map[uint32]bool)
	for off := order.Uint32(data[4:8]); off != 0; {
		if seen[off] || len(pages) >= maxPages {
			return nil, fmt.Errorf("%w: tiff IFD chain loops", ErrDecodeFailure)
		}
		seen[off] = true
		if int64(off)+2 > int64(len(data)) {
			return nil, fmt.Errorf("%w: tiff IFD offset %d out of range", ErrDecodeFailure, off)
		}

		n := int(order.Uint16(data[off:]))
		entries := int(off) + 2
		end := entries + n*ifdEntryLen
		if end+4 > len(data) {
			return nil, fmt.Errorf("%w: tiff IFD at %d truncated", ErrDecodeFailure, off)
		}

		p := tiffPage{offset: off, widthEntry: -1}
		for i := 0; i < n; i++ {
			e := data[entries+i*ifdEntryLen:]
			tag, typ := order.Uint16(e[0:]), order.Uint16(e[2:])
			var v uint32
			switch typ {
			case dtShort:
				v = uint32(order.Uint16(e[8:]))
			case dtLong:
				v = order.Uint32(e[8:])
			default:
				continue
			}
			switch tag {
			case tagImageWidth:
				p.width = v
				p.widthEntry = entries + i*ifdEntryLen
			case tagImageLength:
				p.height = v
			}
		}
		pages = append(pages, p)
		off = order.Uint32(data[end:])
	}
	return pages, nil
}

// decodeTIFF decodes every page with a non-zero size.
func decodeTIFF(data []byte) ([]*pixel.Frame, error) {
	pages, err := tiffPages(data)
	if err != nil {
		return nil, err
	}

	var frames []*pixel.Frame
	for i, p := range pages {
		if p.width == 0 || p.height == 0 {
			continue
		}
		img, err := tiff.Decode(newPageReader(data, p.offset))
		if err != nil {
			return nil, fmt.Errorf("%w: tiff page %d: %v", ErrDecodeFailure, i, err)
		}
		f, err := pixel.FrameFromImage(img, pixel.LayoutUnknown)
		if err != nil {
			return nil, fmt.Errorf("%w: tiff page %d: %v", ErrDecodeFailure, i, err)
		}
		frames = append(frames, f)
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: tiff has no pages with a non-zero size", ErrDecodeFailure)
	}
	return frames, nil
}

// pageReader serves data with the header's first-IFD offset replaced, so a
// single-page decoder reads the chosen page. It implements io.ReaderAt, which
// the tiff decoder uses directly without buffering a copy.
type pageReader struct {
	data []byte
	ifd  [4]byte
	pos  int64
}

func newPageReader(data []byte, offset uint32) *pageReader {
	r := &pageReader{data: data}
	if data[0] == 'I' {
		binary.LittleEndian.PutUint32(r.ifd[:], offset)
	} else {
		binary.BigEndian.PutUint32(r.ifd[:], offset)
	}
	return r
}

func (r *pageReader) ReadAt(p []byte, off int64) (int, error) {
	if off < 0 {
		return 0, errors.New("tiff: negative offset")
	}
	if off >= int64(len(r.data)) {
		return 0, io.EOF
	}
	n := copy(p, r.data[off:])
	for i := 0; i < n; i++ {
		if at := off + int64(i); at >= 4 && at < 8 {
			p[i] = r.ifd[at-4]
		}
	}
	if n < len(p) {
		return n, io.EOF
	}
	return n, nil
}

func (r *pageReader) Read(p []byte) (int, error) {
	n, err := r.ReadAt(p, r.pos)
	r.pos += int64(n)
	if err == io.EOF && n > 0 {
		err = nil
	}
	return n, err
}

// ifdEntry is one tag of an IFD being written. Values that do not fit in
// four bytes are stored after the entry table.
type ifdEntry struct {
	tag, typ uint16
	values   []uint32
}

func (e ifdEntry) size() int {
	if e.typ == dtShort {
		return 2 * len(e.values)
	}
	return 4 * len(e.values)
}

// encodeTIFF writes a little endian baseline TIFF with one strip per page:
// 8-bit RGB for opaque frames and RGB plus unassociated alpha otherwise.
func encodeTIFF(w io.Writer, frames []*pixel.Frame, compress bool) error {
	le := binary.LittleEndian
	buf := bytes.NewBuffer(make([]byte, 0, 1024))
	buf.WriteString("II*\x00")
	buf.Write([]byte{0, 0, 0, 0})
	nextLink := 4 // where to store the offset of the next IFD

	for _, f := range frames {
		samples := 3
		if !f.Opaque() {
			samples = 4
		}
		strip, err := tiffStrip(f, samples, compress)
		if err != nil {
			return err
		}

		pad(buf)
		stripOffset := uint32(buf.Len())
		buf.Write(strip)
		pad(buf)

		bits := make([]uint32, samples)
		for i := range bits {
			bits[i] = 8
		}
		comp := uint32(compressionNone)
		if compress {
			comp = compressionDeflate
		}
		entries := []ifdEntry{
			{tagImageWidth, dtLong, []uint32{uint32(f.Width)}},
			{tagImageLength, dtLong, []uint32{uint32(f.Height)}},
			{tagBitsPerSample, dtShort, bits},
			{tagCompression, dtShort, []uint32{comp}},
			{tagPhotometric, dtShort, []uint32{photometricRGB}},
			{tagStripOffsets, dtLong, []uint32{stripOffset}},
			{tagSamplesPerPixel, dtShort, []uint32{uint32(samples)}},
			{tagRowsPerStrip, dtLong, []uint32{uint32(f.Height)}},
			{tagStripByteCounts, dtLong, []uint32{uint32(len(strip))}},
			{tagPlanarConfig, dtShort, []uint32{1}},
		}
		if samples == 4 {
			entries = append(entries, ifdEntry{tagExtraSamples, dtShort, []uint32{extraUnassocAlpha}})
		}

		ifd := uint32(buf.Len())
		le.PutUint32(buf.Bytes()[nextLink:], ifd)
		nextLink = writeIFD(buf, ifd, entries)
	}

	_, err := w.Write(buf.Bytes())
	return err
}

// writeIFD appends the IFD at offset ifd (== buf.Len()) and returns the
// position of its next-IFD link, which is left zero.
func writeIFD(buf *bytes.Buffer, ifd uint32, entries []ifdEntry) int {
	le := binary.LittleEndian
	tableLen := 2 + len(entries)*ifdEntryLen + 4
	extra := ifd + uint32(tableLen)

	var overflow []byte
	var b [ifdEntryLen]byte
	binary.Write(buf, le, uint16(len(entries)))
	for _, e := range entries {
		le.PutUint16(b[0:], e.tag)
		le.PutUint16(b[2:], e.typ)
		le.PutUint32(b[4:], uint32(len(e.values)))
		clear(b[8:])

		val := b[8:12]
		if e.size() > 4 {
			le.PutUint32(val, extra+uint32(len(overflow)))
			val = make([]byte, e.size())
		}
		for i, v := range e.values {
			if e.typ == dtShort {
				le.PutUint16(val[2*i:], uint16(v))
			} else {
				le.PutUint32(val[4*i:], v)
			}
		}
		if e.size() > 4 {
			overflow = append(overflow, val...)
		}
		buf.Write(b[:])
	}
	link := buf.Len()
	buf.Write([]byte{0, 0, 0, 0})
	buf.Write(overflow)
	return link
}

func tiffStrip(f *pixel.Frame, samples int, compress bool) ([]byte, error) {
	raw := make([]byte, 0, f.Width*f.Height*samples)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			raw = append(raw, c.R, c.G, c.B)
			if samples == 4 {
				raw = append(raw, c.A)
			}
		}
	}
	if !compress {
		return raw, nil
	}

	var out bytes.Buffer
	zw := zlib.NewWriter(&out)
	if _, err := zw.Write(raw); err != nil {
		return nil, fmt.Errorf("failed to compress tiff strip: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("failed to compress tiff strip: %w", err)
	}
	return out.Bytes(), nil
}

// pad keeps TIFF offsets word aligned.
func pad(buf *bytes.Buffer) {
	if buf.Len()%2 != 0 {
		buf.WriteByte(0)
	}
}
