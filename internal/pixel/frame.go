package pixel

import (
	"errors"
	"fmt"
	"image"
)

// ErrInvalidDimensions is returned when a frame would have a non-positive size.
var ErrInvalidDimensions = errors.New("pixel: invalid frame dimensions")

// Frame is one decoded page of an image.
//
// Pix holds Stride*Height bytes. Stride is at least the packed row length and
// includes any trailing padding. Pixel (x, y) starts at PixOffset(x, y).
type Frame struct {
	// Width is the frame width in pixels.
	Width int

	// Height is the frame height in pixels.
	Height int

	// Layout describes the channel order and depth of each pixel.
	Layout Layout

	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int

	// Pix are the frame pixels.
	Pix []byte
}

// NewFrame allocates a zeroed frame with 4-byte aligned rows.
func NewFrame(width, height int, l Layout) (*Frame, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if !l.Valid() {
		return nil, fmt.Errorf("pixel: unsupported layout %s", l)
	}
	stride := AlignedStride(width, l)
	return &Frame{
		Width:  width,
		Height: height,
		Layout: l,
		Stride: stride,
		Pix:    make([]byte, stride*height),
	}, nil
}

// Bounds returns the frame rectangle anchored at the origin.
func (f *Frame) Bounds() image.Rectangle {
	return image.Rect(0, 0, f.Width, f.Height)
}

// In reports whether (x, y) lies inside the frame.
func (f *Frame) In(x, y int) bool {
	return x >= 0 && y >= 0 && x < f.Width && y < f.Height
}

// BitsPerPixel returns the color depth of the frame.
func (f *Frame) BitsPerPixel() int {
	return f.Layout.BitsPerPixel()
}

// PixOffset returns the index of the first byte of pixel (x, y). For Mono1
// frames it is the byte holding the pixel's bit.
func (f *Frame) PixOffset(x, y int) int {
	if f.Layout == Mono1 {
		return y*f.Stride + x/8
	}
	return y*f.Stride + x*f.Layout.BytesPerPixel()
}

// At returns the color of pixel (x, y) in RGBA semantics. Pixels outside the
// frame are Transparent.
func (f *Frame) At(x, y int) Color {
	if !f.In(x, y) {
		return Transparent
	}

	i := f.PixOffset(x, y)
	switch f.Layout {
	case Gray8:
		v := f.Pix[i]
		return RGB(v, v, v)
	case Mono1:
		if f.Pix[i]&(0x80>>uint(x%8)) != 0 {
			return White
		}
		return Black
	}

	ch := f.Layout.channels()
	c := Color{
		A: 0xff,
		R: f.Pix[i+ch.r],
		G: f.Pix[i+ch.g],
		B: f.Pix[i+ch.b],
	}
	if ch.a >= 0 {
		c.A = f.Pix[i+ch.a]
	}
	return c
}

// Set writes pixel (x, y). Writes outside the frame are ignored. Layouts
// without alpha drop the alpha component; Gray8 and Mono1 store luma.
func (f *Frame) Set(x, y int, c Color) {
	if !f.In(x, y) {
		return
	}
	f.put(f.PixOffset(x, y), x, c)
}

func (f *Frame) put(i, x int, c Color) {
	switch f.Layout {
	case Gray8:
		f.Pix[i] = luma(c.R, c.G, c.B)
		return
	case Mono1:
		bit := byte(0x80) >> uint(x%8)
		if luma(c.R, c.G, c.B) >= 0x80 {
			f.Pix[i] |= bit
		} else {
			f.Pix[i] &^= bit
		}
		return
	}

	ch := f.Layout.channels()
	f.Pix[i+ch.r] = c.R
	f.Pix[i+ch.g] = c.G
	f.Pix[i+ch.b] = c.B
	if ch.a >= 0 {
		f.Pix[i+ch.a] = c.A
	}
}

// Fill sets every pixel of the frame to c.
func (f *Frame) Fill(c Color) {
	f.FillRect(f.Bounds(), c)
}

// FillRect sets every pixel inside r to c. The rectangle is clipped to the
// frame; pixels outside it, and row padding, are left untouched.
func (f *Frame) FillRect(r image.Rectangle, c Color) {
	r = r.Intersect(f.Bounds())
	if r.Empty() {
		return
	}

	if f.Layout == Mono1 || f.Layout == Gray8 {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			for x := r.Min.X; x < r.Max.X; x++ {
				f.put(f.PixOffset(x, y), x, c)
			}
		}
		return
	}

	// Encode one pixel, then stamp it across the first row and copy that row.
	bpp := f.Layout.BytesPerPixel()
	px := make([]byte, bpp)
	(&Frame{Width: 1, Height: 1, Layout: f.Layout, Stride: bpp, Pix: px}).put(0, 0, c)

	first := f.Pix[f.PixOffset(r.Min.X, r.Min.Y):f.PixOffset(r.Max.X-1, r.Min.Y)+bpp]
	for i := 0; i < len(first); i += bpp {
		copy(first[i:], px)
	}
	for y := r.Min.Y + 1; y < r.Max.Y; y++ {
		copy(f.Pix[f.PixOffset(r.Min.X, y):], first)
	}
}

// Clone returns a deep copy of the frame.
func (f *Frame) Clone() *Frame {
	pix := make([]byte, len(f.Pix))
	copy(pix, f.Pix)
	return &Frame{
		Width:  f.Width,
		Height: f.Height,
		Layout: f.Layout,
		Stride: f.Stride,
		Pix:    pix,
	}
}

// SubFrame returns a deep copy of the part of f inside r, in the same layout.
// The rectangle is clipped to the frame first.
func (f *Frame) SubFrame(r image.Rectangle) (*Frame, error) {
	r = r.Intersect(f.Bounds())
	if r.Empty() {
		return nil, fmt.Errorf("%w: empty sub-frame", ErrInvalidDimensions)
	}

	dst, err := NewFrame(r.Dx(), r.Dy(), f.Layout)
	if err != nil {
		return nil, err
	}

	if f.Layout == Mono1 {
		for y := 0; y < dst.Height; y++ {
			for x := 0; x < dst.Width; x++ {
				dst.Set(x, y, f.At(r.Min.X+x, r.Min.Y+y))
			}
		}
		return dst, nil
	}

	n := dst.Width * f.Layout.BytesPerPixel()
	for y := 0; y < dst.Height; y++ {
		src := f.PixOffset(r.Min.X, r.Min.Y+y)
		copy(dst.Pix[y*dst.Stride:y*dst.Stride+n], f.Pix[src:src+n])
	}
	return dst, nil
}

// Convert returns a copy of f packed in layout l.
func (f *Frame) Convert(l Layout) (*Frame, error) {
	if l == f.Layout {
		return f.Clone(), nil
	}
	dst, err := NewFrame(f.Width, f.Height, l)
	if err != nil {
		return nil, err
	}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			dst.put(dst.PixOffset(x, y), x, f.At(x, y))
		}
	}
	return dst, nil
}

// Opaque reports whether every pixel has alpha 255.
func (f *Frame) Opaque() bool {
	ch := f.Layout.channels()
	if ch.a < 0 {
		return true
	}
	bpp := f.Layout.BytesPerPixel()
	for y := 0; y < f.Height; y++ {
		row := f.Pix[y*f.Stride : y*f.Stride+f.Width*bpp]
		for i := ch.a; i < len(row); i += bpp {
			if row[i] != 0xff {
				return false
			}
		}
	}
	return true
}

// RGB returns a fresh, unpadded, row-major copy of the frame with three bytes
// per pixel in R, G, B order.
func (f *Frame) RGB() []byte {
	out := make([]byte, 0, f.Width*f.Height*3)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			c := f.At(x, y)
			out = append(out, c.R, c.G, c.B)
		}
	}
	return out
}

// Alpha returns one alpha byte per pixel, row-major. Layouts without alpha
// report 255 everywhere.
func (f *Frame) Alpha() []byte {
	out := make([]byte, 0, f.Width*f.Height)
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			out = append(out, f.At(x, y).A)
		}
	}
	return out
}

// Equal reports whether both frames have the same size and the same pixel
// colors. Layout and padding are ignored.
func (f *Frame) Equal(o *Frame) bool {
	if f.Width != o.Width || f.Height != o.Height {
		return false
	}
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			if f.At(x, y) != o.At(x, y) {
				return false
			}
		}
	}
	return true
}
