package pixel

import (
	"image"
	"image/color"
)

// LayoutFor picks the frame layout that preserves what the decoded image
// actually carries:
//   - *image.YCbCr, *image.CMYK (JPEG): BGR24
//   - *image.Gray, *image.Gray16: Gray8
//   - *image.NRGBA, *image.NRGBA64 (sources with an alpha channel): RGBA32
//   - anything else: RGB24 when fully opaque, RGBA32 otherwise
func LayoutFor(img image.Image) Layout {
	switch m := img.(type) {
	case *image.YCbCr, *image.CMYK:
		return BGR24
	case *image.Gray, *image.Gray16:
		return Gray8
	case *image.NRGBA, *image.NRGBA64:
		return RGBA32
	case interface{ Opaque() bool }:
		if m.Opaque() {
			return RGB24
		}
	}
	return RGBA32
}

// FrameFromImage copies img into a new frame packed in layout l. A zero l
// selects LayoutFor(img). The frame is anchored at the origin regardless of
// img.Bounds().Min.
func FrameFromImage(img image.Image, l Layout) (*Frame, error) {
	if l == LayoutUnknown {
		l = LayoutFor(img)
	}
	b := img.Bounds()
	f, err := NewFrame(b.Dx(), b.Dy(), l)
	if err != nil {
		return nil, err
	}

	if src, ok := img.(*image.NRGBA); ok {
		for y := 0; y < f.Height; y++ {
			i := src.PixOffset(b.Min.X, b.Min.Y+y)
			for x := 0; x < f.Width; x++ {
				p := src.Pix[i : i+4 : i+4]
				f.put(f.PixOffset(x, y), x, Color{A: p[3], R: p[0], G: p[1], B: p[2]})
				i += 4
			}
		}
		return f, nil
	}

	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			f.put(f.PixOffset(x, y), x, ColorFrom(img.At(b.Min.X+x, b.Min.Y+y)))
		}
	}
	return f, nil
}

// ToNRGBA copies the frame into a new non-premultiplied RGBA image.
func (f *Frame) ToNRGBA() *image.NRGBA {
	dst := image.NewNRGBA(f.Bounds())
	for y := 0; y < f.Height; y++ {
		i := dst.PixOffset(0, y)
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			dst.Pix[i+0] = c.R
			dst.Pix[i+1] = c.G
			dst.Pix[i+2] = c.B
			dst.Pix[i+3] = c.A
			i += 4
		}
	}
	return dst
}

// Image returns a read-only image.Image view of the frame.
func (f *Frame) Image() image.Image {
	return frameImage{f}
}

type frameImage struct {
	f *Frame
}

func (v frameImage) ColorModel() color.Model { return color.NRGBAModel }
func (v frameImage) Bounds() image.Rectangle { return v.f.Bounds() }
func (v frameImage) At(x, y int) color.Color { return v.f.At(x, y).NRGBA() }
func (v frameImage) Opaque() bool            { return v.f.Opaque() }
