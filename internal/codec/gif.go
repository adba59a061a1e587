package codec

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"io"

	"golang.org/x/image/draw"

	"github.com/ironsheep/anybitmap/internal/pixel"
)

// decodeGIF returns one full-canvas RGBA32 frame per GIF image, as a viewer
// would show it after drawing that image and before applying its disposal.
func decodeGIF(data []byte) ([]*pixel.Frame, error) {
	g, err := gif.DecodeAll(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	screen := image.Rect(0, 0, g.Config.Width, g.Config.Height)
	if screen.Empty() {
		screen = image.Rectangle{}
		for _, m := range g.Image {
			screen = screen.Union(m.Bounds())
		}
		screen.Min = image.Point{}
	}
	if screen.Empty() {
		return nil, fmt.Errorf("%w: gif has no visible frames", ErrDecodeFailure)
	}

	canvas := image.NewNRGBA(screen)
	frames := make([]*pixel.Frame, 0, len(g.Image))
	for i, m := range g.Image {
		b := m.Bounds().Intersect(screen)
		if b.Empty() {
			continue
		}

		var disposal byte
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		var previous *image.NRGBA
		if disposal == gif.DisposalPrevious {
			previous = cloneNRGBA(canvas)
		}

		draw.Draw(canvas, b, m, b.Min, draw.Over)
		f, err := pixel.FrameFromImage(canvas, pixel.RGBA32)
		if err != nil {
			return nil, err
		}
		frames = append(frames, f)

		switch disposal {
		case gif.DisposalBackground:
			draw.Draw(canvas, b, image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			canvas = previous
		}
	}
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: gif has no visible frames", ErrDecodeFailure)
	}
	return frames, nil
}

func cloneNRGBA(m *image.NRGBA) *image.NRGBA {
	c := image.NewNRGBA(m.Rect)
	copy(c.Pix, m.Pix)
	return c
}

// encodeGIF writes frames as an animation anchored at the origin. Each frame
// replaces the previous one entirely.
func encodeGIF(w io.Writer, frames []*pixel.Frame, delay int) error {
	out := &gif.GIF{}
	for _, f := range frames {
		out.Config.Width = max(out.Config.Width, f.Width)
		out.Config.Height = max(out.Config.Height, f.Height)
		out.Image = append(out.Image, paletted(f))
		out.Delay = append(out.Delay, delay)
		out.Disposal = append(out.Disposal, gif.DisposalBackground)
	}
	return gif.EncodeAll(w, out)
}

// paletted converts a frame to a paletted image. GIF has one fully
// transparent index and no partial alpha: alpha 0 maps to transparent and any
// other alpha is written opaque. Frames with at most 256 such colors keep
// them exactly; larger frames are dithered against the Plan9 palette.
func paletted(f *pixel.Frame) *image.Paletted {
	flatten := func(c pixel.Color) pixel.Color {
		if c.A == 0 {
			return pixel.Transparent
		}
		c.A = 0xff
		return c
	}

	index := make(map[pixel.Color]uint8)
	var pal color.Palette
	exact := true
scan:
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := flatten(f.At(x, y))
			if _, ok := index[c]; ok {
				continue
			}
			if len(pal) == 256 {
				exact = false
				break scan
			}
			index[c] = uint8(len(pal))
			pal = append(pal, c.NRGBA())
		}
	}

	if exact {
		dst := image.NewPaletted(f.Bounds(), pal)
		for y := 0; y < f.Height; y++ {
			for x := 0; x < f.Width; x++ {
				dst.Pix[dst.PixOffset(x, y)] = index[flatten(f.At(x, y))]
			}
		}
		return dst
	}

	pal = append(color.Palette{}, palette.Plan9[:255]...)
	pal = append(pal, color.NRGBA{})
	src := image.NewNRGBA(f.Bounds())
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			src.SetNRGBA(x, y, flatten(f.At(x, y)).NRGBA())
		}
	}
	dst := image.NewPaletted(f.Bounds(), pal)
	draw.FloydSteinberg.Draw(dst, dst.Bounds(), src, image.Point{})
	return dst
}
