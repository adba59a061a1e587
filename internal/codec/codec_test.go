package codec

import (
	"bytes"
	"encoding/binary"
	"errors"
	"image"
	"image/color"
	"image/gif"
	"testing"

	"github.com/ironsheep/anybitmap/internal/format"
	"github.com/ironsheep/anybitmap/internal/pixel"
)

// patternFrame returns a frame whose pixels are derived from their position
// and the seed, so different frames never compare equal.
func patternFrame(t *testing.T, w, h int, l pixel.Layout, seed uint8) *pixel.Frame {
	t.Helper()
	f, err := pixel.NewFrame(w, h, l)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := pixel.RGB(uint8(x*16)+seed, uint8(y*16), seed*3)
			if l.HasAlpha() {
				c.A = uint8(255 - (x+y)%4*60)
			}
			f.Set(x, y, c)
		}
	}
	return f
}

func TestStd_LosslessRoundTrip(t *testing.T) {
	tests := []struct {
		name   string
		format format.Format
		layout pixel.Layout
		want   pixel.Layout
	}{
		{"png opaque", format.Png, pixel.RGB24, pixel.RGB24},
		{"png alpha", format.Png, pixel.ARGB32, pixel.RGBA32},
		{"png gray", format.Png, pixel.Gray8, pixel.Gray8},
		{"bmp opaque", format.Bmp, pixel.BGR24, pixel.RGB24},
		{"tiff opaque", format.Tiff, pixel.RGB24, pixel.RGB24},
		{"tiff alpha", format.Tiff, pixel.BGRA32, pixel.RGBA32},
	}

	s := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := patternFrame(t, 9, 5, tt.layout, 7)
			data, err := s.Encode([]*pixel.Frame{src}, tt.format, 0)
			if err != nil {
				t.Fatalf("Encode failed: %v", err)
			}
			if got, _ := format.Sniff(data); got != tt.format {
				t.Errorf("encoded data sniffs as %s", got)
			}

			frames, err := s.Decode(data, tt.format)
			if err != nil {
				t.Fatalf("Decode failed: %v", err)
			}
			if len(frames) != 1 {
				t.Fatalf("got %d frames, want 1", len(frames))
			}
			if frames[0].Layout != tt.want {
				t.Errorf("layout: got %s, want %s", frames[0].Layout, tt.want)
			}
			if !frames[0].Equal(src) {
				t.Error("decoded pixels differ from the source")
			}
		})
	}
}

func TestStd_Jpeg(t *testing.T) {
	s := New()
	src := patternFrame(t, 16, 16, pixel.RGB24, 0)
	src.Fill(pixel.RGB(200, 40, 40))

	hi, err := s.Encode([]*pixel.Frame{src}, format.Jpeg, 100)
	if err != nil {
		t.Fatal(err)
	}
	lo, err := s.Encode([]*pixel.Frame{patternFrame(t, 16, 16, pixel.RGB24, 0)}, format.Jpeg, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(lo) == 0 || len(hi) == 0 {
		t.Fatal("empty jpeg output")
	}

	frames, err := s.Decode(hi, format.Jpeg)
	if err != nil {
		t.Fatal(err)
	}
	f := frames[0]
	if f.Layout != pixel.BGR24 {
		t.Errorf("layout: got %s, want BGR24", f.Layout)
	}
	c := f.At(8, 8)
	if absDiff(c.R, 200) > 8 || absDiff(c.G, 40) > 8 || absDiff(c.B, 40) > 8 {
		t.Errorf("center pixel %v too far from #C82828", c)
	}
}

func TestStd_Webp(t *testing.T) {
	s := New()
	src := patternFrame(t, 12, 10, pixel.RGB24, 3)
	data, err := s.Encode([]*pixel.Frame{src}, format.Webp, 80)
	if err != nil {
		t.Fatal(err)
	}
	if got, _ := format.Sniff(data); got != format.Webp {
		t.Fatalf("encoded data sniffs as %s", got)
	}
	frames, err := s.Decode(data, format.Webp)
	if err != nil {
		t.Fatal(err)
	}
	if frames[0].Width != 12 || frames[0].Height != 10 {
		t.Errorf("size: got %dx%d, want 12x10", frames[0].Width, frames[0].Height)
	}
}

func absDiff(a, b uint8) uint8 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestStd_DecodeMalformed(t *testing.T) {
	s := New()
	for _, f := range []format.Format{format.Png, format.Jpeg, format.Gif, format.Bmp, format.Tiff, format.Webp, format.Svg} {
		_, err := s.Decode([]byte("definitely not an image"), f)
		if !errors.Is(err, ErrDecodeFailure) {
			t.Errorf("%s: expected ErrDecodeFailure, got %v", f, err)
		}
	}
	if _, err := s.Decode([]byte{1, 2, 3}, format.Unknown); !errors.Is(err, ErrDecodeFailure) {
		t.Errorf("unknown: expected ErrDecodeFailure, got %v", err)
	}
}

func TestStd_EncodeErrors(t *testing.T) {
	s := New()
	f := patternFrame(t, 2, 2, pixel.RGB24, 0)
	if _, err := s.Encode([]*pixel.Frame{f}, format.Svg, 0); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("svg: expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := s.Encode([]*pixel.Frame{f}, format.Unknown, 0); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("unknown: expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := s.Encode(nil, format.Png, 0); !errors.Is(err, ErrNoFrames) {
		t.Errorf("nil frames: expected ErrNoFrames, got %v", err)
	}
}

func TestQuality(t *testing.T) {
	tests := []struct{ in, want int }{
		{0, DefaultQuality},
		{-5, DefaultQuality},
		{1, 1},
		{55, 55},
		{100, 100},
		{250, 100},
	}
	for _, tt := range tests {
		if got := Quality(tt.in); got != tt.want {
			t.Errorf("Quality(%d): got %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestTIFF_MultiPage(t *testing.T) {
	for _, compress := range []bool{true, false} {
		s := &Std{TIFFCompress: compress}
		src := []*pixel.Frame{
			patternFrame(t, 8, 6, pixel.RGB24, 1),
			patternFrame(t, 3, 11, pixel.RGBA32, 2),
			patternFrame(t, 5, 5, pixel.BGR24, 3),
			patternFrame(t, 8, 6, pixel.RGB24, 4),
		}
		data, err := s.Encode(src, format.Tiff, 0)
		if err != nil {
			t.Fatal(err)
		}
		frames, err := s.Decode(data, format.Tiff)
		if err != nil {
			t.Fatalf("compress=%v: Decode failed: %v", compress, err)
		}
		if len(frames) != len(src) {
			t.Fatalf("compress=%v: got %d frames, want %d", compress, len(frames), len(src))
		}
		for i := range src {
			if !frames[i].Equal(src[i]) {
				t.Errorf("compress=%v: page %d differs", compress, i)
			}
		}
	}
}

// zeroWidth rewrites the ImageWidth of page i to 0 in a little endian TIFF.
func zeroWidth(t *testing.T, data []byte, i int) {
	t.Helper()
	pages, err := tiffPages(data)
	if err != nil {
		t.Fatal(err)
	}
	e := pages[i].widthEntry
	if e < 0 {
		t.Fatalf("page %d has no width entry", i)
	}
	binary.LittleEndian.PutUint32(data[e+8:], 0)
}

func TestTIFF_SkipsZeroSizePages(t *testing.T) {
	s := New()
	src := []*pixel.Frame{
		patternFrame(t, 4, 4, pixel.RGB24, 10),
		patternFrame(t, 4, 4, pixel.RGB24, 20),
		patternFrame(t, 4, 4, pixel.RGB24, 30),
	}
	data, err := s.Encode(src, format.Tiff, 0)
	if err != nil {
		t.Fatal(err)
	}
	zeroWidth(t, data, 1)

	frames, err := s.Decode(data, format.Tiff)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	if !frames[0].Equal(src[0]) || !frames[1].Equal(src[2]) {
		t.Error("surviving pages decoded incorrectly")
	}

	zeroWidth(t, data, 0)
	zeroWidth(t, data, 2)
	if _, err := s.Decode(data, format.Tiff); !errors.Is(err, ErrDecodeFailure) {
		t.Errorf("all pages empty: expected ErrDecodeFailure, got %v", err)
	}
}

func TestTIFF_LoopingChain(t *testing.T) {
	s := New()
	data, err := s.Encode([]*pixel.Frame{patternFrame(t, 2, 2, pixel.RGB24, 0)}, format.Tiff, 0)
	if err != nil {
		t.Fatal(err)
	}
	pages, err := tiffPages(data)
	if err != nil {
		t.Fatal(err)
	}
	// Point the only IFD's next link back at itself.
	off := pages[0].offset
	n := int(binary.LittleEndian.Uint16(data[off:]))
	binary.LittleEndian.PutUint32(data[int(off)+2+n*ifdEntryLen:], off)

	if _, err := s.Decode(data, format.Tiff); !errors.Is(err, ErrDecodeFailure) {
		t.Errorf("expected ErrDecodeFailure, got %v", err)
	}
}

func TestGIF_RoundTrip(t *testing.T) {
	s := New()
	a := patternFrame(t, 6, 4, pixel.RGB24, 1)
	b := patternFrame(t, 6, 4, pixel.RGBA32, 2)
	b.Set(0, 0, pixel.Transparent)
	for x := 1; x < b.Width; x++ {
		b.Set(x, 0, pixel.Red) // no partial alpha on the first row
	}
	for y := 1; y < b.Height; y++ {
		for x := 0; x < b.Width; x++ {
			c := b.At(x, y)
			c.A = 0xff
			b.Set(x, y, c)
		}
	}

	data, err := s.Encode([]*pixel.Frame{a, b}, format.Gif, 0)
	if err != nil {
		t.Fatal(err)
	}
	frames, err := s.Decode(data, format.Gif)
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	if !frames[0].Equal(a) {
		t.Error("frame 0 differs")
	}
	if !frames[1].Equal(b) {
		t.Error("frame 1 differs")
	}
	if frames[1].At(0, 0) != pixel.Transparent {
		t.Errorf("transparent pixel became %v", frames[1].At(0, 0))
	}
}

func TestGIF_ManyColorsDithered(t *testing.T) {
	f, _ := pixel.NewFrame(32, 32, pixel.RGB24)
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			f.Set(x, y, pixel.RGB(uint8(x*8), uint8(y*8), 128))
		}
	}
	p := paletted(f)
	if len(p.Palette) != 256 {
		t.Errorf("palette size: got %d, want 256", len(p.Palette))
	}
	if p.Bounds() != f.Bounds() {
		t.Errorf("bounds: got %v, want %v", p.Bounds(), f.Bounds())
	}
}

func TestGIF_DecodeComposites(t *testing.T) {
	pal := color.Palette{color.RGBA{}, color.RGBA{R: 255, A: 255}, color.RGBA{B: 255, A: 255}}
	full := image.NewPaletted(image.Rect(0, 0, 4, 4), pal)
	for i := range full.Pix {
		full.Pix[i] = 1
	}
	patch := image.NewPaletted(image.Rect(1, 1, 3, 3), pal)
	for i := range patch.Pix {
		patch.Pix[i] = 2
	}

	var buf bytes.Buffer
	err := gif.EncodeAll(&buf, &gif.GIF{
		Image:    []*image.Paletted{full, patch},
		Delay:    []int{0, 0},
		Disposal: []byte{gif.DisposalNone, gif.DisposalNone},
		Config:   image.Config{Width: 4, Height: 4},
	})
	if err != nil {
		t.Fatal(err)
	}

	frames, err := decodeGIF(buf.Bytes())
	if err != nil {
		t.Fatal(err)
	}
	if len(frames) != 2 {
		t.Fatalf("got %d frames, want 2", len(frames))
	}
	second := frames[1]
	if second.Width != 4 || second.Height != 4 {
		t.Fatalf("frame 1 is %dx%d, want full canvas 4x4", second.Width, second.Height)
	}
	if got := second.At(0, 0); got != pixel.Red {
		t.Errorf("(0,0): got %v, want red from frame 0", got)
	}
	if got := second.At(2, 2); got != pixel.Blue {
		t.Errorf("(2,2): got %v, want blue patch", got)
	}
}

func TestSVG_Rasterize(t *testing.T) {
	doc := []byte(`<?xml version="1.0"?>
<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 20 10" width="20" height="10">
  <rect x="0" y="0" width="10" height="10" fill="#ff0000"/>
</svg>`)
	frames, err := New().Decode(doc, format.Svg)
	if err != nil {
		t.Fatal(err)
	}
	f := frames[0]
	if f.Width != 20 || f.Height != 10 {
		t.Fatalf("size: got %dx%d, want 20x10", f.Width, f.Height)
	}
	if got := f.At(5, 5); got != pixel.Red {
		t.Errorf("inside rect: got %v, want red", got)
	}
	if got := f.At(15, 5); got.A != 0 {
		t.Errorf("outside rect: got %v, want transparent", got)
	}
}

func TestEncodable_Gray(t *testing.T) {
	f := patternFrame(t, 3, 3, pixel.Gray8, 5)
	if _, ok := encodable(f).(*image.Gray); !ok {
		t.Error("gray frame should encode as *image.Gray")
	}
	if _, ok := encodable(patternFrame(t, 3, 3, pixel.RGB24, 5)).(*image.NRGBA); !ok {
		t.Error("color frame should encode as *image.NRGBA")
	}
}

func TestStd_SingleFrameFormatsWriteFrameZero(t *testing.T) {
	s := New()
	src := []*pixel.Frame{
		patternFrame(t, 4, 3, pixel.RGB24, 1),
		patternFrame(t, 4, 3, pixel.RGB24, 2),
	}
	for _, f := range []format.Format{format.Png, format.Bmp} {
		data, err := s.Encode(src, f, 0)
		if err != nil {
			t.Fatal(err)
		}
		frames, err := s.Decode(data, f)
		if err != nil {
			t.Fatal(err)
		}
		if len(frames) != 1 || !frames[0].Equal(src[0]) {
			t.Errorf("%s: want exactly frame 0 back", f)
		}
	}
}
