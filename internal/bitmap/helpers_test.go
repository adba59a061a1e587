package bitmap

import (
	"bytes"
	"image"
	"image/color"
	"image/gif"
	"image/jpeg"
	"image/png"
	"testing"

	"github.com/chai2010/webp"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ironsheep/anybitmap/internal/format"
	"github.com/ironsheep/anybitmap/internal/pixel"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 16 8" width="16" height="8">
  <rect x="0" y="0" width="8" height="8" fill="#0000ff"/>
</svg>`

// gradient returns an opaque w x h image whose colors depend on position
// and seed.
func gradient(w, h int, seed uint8) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, color.NRGBA{R: uint8(x*20) + seed, G: uint8(y * 20), B: seed, A: 255})
		}
	}
	return img
}

// encoded returns img encoded in f with the standard or pack encoders, never
// with the codec under test.
func encoded(t *testing.T, f format.Format, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	var err error
	switch f {
	case format.Png:
		err = png.Encode(&buf, img)
	case format.Jpeg:
		err = jpeg.Encode(&buf, img, &jpeg.Options{Quality: 95})
	case format.Gif:
		err = gif.Encode(&buf, img, nil)
	case format.Bmp:
		err = bmp.Encode(&buf, img)
	case format.Tiff:
		err = tiff.Encode(&buf, img, &tiff.Options{Compression: tiff.Deflate})
	case format.Webp:
		err = webp.Encode(&buf, img, &webp.Options{Lossless: true})
	case format.Svg:
		buf.WriteString(testSVG)
	default:
		t.Fatalf("no fixture encoder for %s", f)
	}
	if err != nil {
		t.Fatalf("encode %s fixture: %v", f, err)
	}
	return buf.Bytes()
}

// mustImage fails the test on a construction error and closes the image when
// the test ends: mustImage(t)(FromBytes(data)).
func mustImage(t *testing.T) func(*Image, error) *Image {
	t.Helper()
	return func(img *Image, err error) *Image {
		t.Helper()
		if err != nil {
			t.Fatal(err)
		}
		t.Cleanup(func() { img.Close() })
		return img
	}
}

func mustPixel(t *testing.T, img *Image, x, y int) pixel.Color {
	t.Helper()
	c, err := img.GetPixel(x, y)
	if err != nil {
		t.Fatalf("GetPixel(%d,%d): %v", x, y, err)
	}
	return c
}

func framesEqual(t *testing.T, a, b *Image, ai, bi int) bool {
	t.Helper()
	fa, err := a.Frame(ai)
	if err != nil {
		t.Fatal(err)
	}
	fb, err := b.Frame(bi)
	if err != nil {
		t.Fatal(err)
	}
	return fa.Equal(fb)
}
