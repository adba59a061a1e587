package bitmap

import (
	"fmt"
	"image"
	"strings"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/anybitmap/internal/pixel"
)

// Rect is an axis-aligned rectangle. The origin is inclusive and the far
// edge exclusive: it covers X <= x < X+Width and Y <= y < Y+Height.
type Rect struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Rectangle converts r to an image.Rectangle. An empty r, including one with
// a negative width or height, converts to the zero rectangle.
func (r Rect) Rectangle() image.Rectangle {
	if r.Empty() {
		return image.Rectangle{}
	}
	return image.Rectangle{
		Min: image.Point{X: r.X, Y: r.Y},
		Max: image.Point{X: r.X + r.Width, Y: r.Y + r.Height},
	}
}

// RectFrom converts an image.Rectangle to a Rect.
func RectFrom(ir image.Rectangle) Rect {
	ir = ir.Canon()
	return Rect{X: ir.Min.X, Y: ir.Min.Y, Width: ir.Dx(), Height: ir.Dy()}
}

// Empty reports whether r covers no pixel.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}

// Contains reports whether (x, y) lies inside r.
func (r Rect) Contains(x, y int) bool {
	return !r.Empty() && x >= r.X && y >= r.Y && x < r.X+r.Width && y < r.Y+r.Height
}

// Intersect returns the largest rectangle inside both r and o.
func (r Rect) Intersect(o Rect) Rect {
	if r.Empty() || o.Empty() {
		return Rect{}
	}
	return RectFrom(r.Rectangle().Intersect(o.Rectangle()))
}

// Rotation is a clockwise rotation by a multiple of 90 degrees.
type Rotation int

// Rotations.
const (
	RotateNone Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

func (r Rotation) String() string {
	switch r {
	case RotateNone:
		return "none"
	case Rotate90:
		return "90"
	case Rotate180:
		return "180"
	case Rotate270:
		return "270"
	}
	return fmt.Sprintf("Rotation(%d)", int(r))
}

// ParseRotation accepts "none", "0", "90", "180" and "270".
func ParseRotation(s string) (Rotation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none", "0":
		return RotateNone, nil
	case "90":
		return Rotate90, nil
	case "180":
		return Rotate180, nil
	case "270":
		return Rotate270, nil
	}
	return RotateNone, fmt.Errorf("%w: rotation %q", ErrArgument, s)
}

// Flip mirrors an image after rotation.
type Flip int

// Flips.
const (
	FlipNone Flip = iota
	FlipHorizontal
	FlipVertical
	FlipBoth
)

func (f Flip) String() string {
	switch f {
	case FlipNone:
		return "none"
	case FlipHorizontal:
		return "horizontal"
	case FlipVertical:
		return "vertical"
	case FlipBoth:
		return "both"
	}
	return fmt.Sprintf("Flip(%d)", int(f))
}

// ParseFlip accepts "none", "horizontal" ("x"), "vertical" ("y") and "both"
// ("xy").
func ParseFlip(s string) (Flip, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "none":
		return FlipNone, nil
	case "horizontal", "x":
		return FlipHorizontal, nil
	case "vertical", "y":
		return FlipVertical, nil
	case "both", "xy":
		return FlipBoth, nil
	}
	return FlipNone, fmt.Errorf("%w: flip %q", ErrArgument, s)
}

// mapFrames applies fn to every frame of m and wraps the results in a new
// image of the same format.
func mapFrames(m *Image, fn func(*pixel.Frame) (*pixel.Frame, error)) (*Image, error) {
	if m == nil {
		return nil, fmt.Errorf("%w: nil image", ErrArgument)
	}
	if m.closed {
		return nil, ErrClosed
	}
	out := make([]*pixel.Frame, len(m.frames))
	for i, f := range m.frames {
		g, err := fn(f)
		if err != nil {
			return nil, err
		}
		out[i] = g
	}
	return m.derive(out), nil
}

// viaNRGBA runs op on the frame as an image.Image and repacks the result in
// the frame's layout.
func viaNRGBA(f *pixel.Frame, op func(image.Image) *image.NRGBA) (*pixel.Frame, error) {
	return pixel.FrameFromImage(op(f.Image()), f.Layout)
}

// RotateFlip rotates m clockwise, then flips it. Rotate90 and Rotate270 swap
// width and height.
func RotateFlip(m *Image, r Rotation, fl Flip) (*Image, error) {
	var ops []func(image.Image) *image.NRGBA

	// imaging rotates counter-clockwise.
	switch r {
	case RotateNone:
	case Rotate90:
		ops = append(ops, imaging.Rotate270)
	case Rotate180:
		ops = append(ops, imaging.Rotate180)
	case Rotate270:
		ops = append(ops, imaging.Rotate90)
	default:
		return nil, fmt.Errorf("%w: rotation %d", ErrArgument, int(r))
	}

	switch fl {
	case FlipNone:
	case FlipHorizontal:
		ops = append(ops, imaging.FlipH)
	case FlipVertical:
		ops = append(ops, imaging.FlipV)
	case FlipBoth:
		ops = append(ops, imaging.FlipH, imaging.FlipV)
	default:
		return nil, fmt.Errorf("%w: flip %d", ErrArgument, int(fl))
	}

	return mapFrames(m, func(f *pixel.Frame) (*pixel.Frame, error) {
		if len(ops) == 0 {
			return f.Clone(), nil
		}
		return viaNRGBA(f, func(img image.Image) *image.NRGBA {
			var out *image.NRGBA
			for _, op := range ops {
				out = op(img)
				img = out
			}
			return out
		})
	})
}

// Resize scales every frame to exactly width x height with a Lanczos filter,
// ignoring the aspect ratio.
func Resize(m *Image, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: resize to %dx%d", ErrArgument, width, height)
	}
	return mapFrames(m, func(f *pixel.Frame) (*pixel.Frame, error) {
		if f.Width == width && f.Height == height {
			return f.Clone(), nil
		}
		return viaNRGBA(f, func(img image.Image) *image.NRGBA {
			return imaging.Resize(img, width, height, imaging.Lanczos)
		})
	})
}

// Redact returns a copy of m with every pixel inside r set to c. Pixels
// outside r keep their exact bytes.
func Redact(m *Image, r Rect, c pixel.Color) (*Image, error) {
	return mapFrames(m, func(f *pixel.Frame) (*pixel.Frame, error) {
		g := f.Clone()
		g.FillRect(r.Rectangle(), c)
		return g, nil
	})
}

// Clone returns a deep copy of m, canonical bytes included.
func Clone(m *Image) (*Image, error) {
	out, err := mapFrames(m, func(f *pixel.Frame) (*pixel.Frame, error) {
		return f.Clone(), nil
	})
	if err != nil {
		return nil, err
	}
	m.mu.Lock()
	if m.data != nil {
		out.data = append([]byte(nil), m.data...)
	}
	m.mu.Unlock()
	return out, nil
}

// Crop returns a deep copy of the part of m inside r. r is clipped to each
// frame; a frame it does not overlap is an error.
func Crop(m *Image, r Rect) (*Image, error) {
	if r.Empty() {
		return nil, fmt.Errorf("%w: crop %+v is empty", ErrArgument, r)
	}
	return mapFrames(m, func(f *pixel.Frame) (*pixel.Frame, error) {
		g, err := f.SubFrame(r.Rectangle())
		if err != nil {
			return nil, fmt.Errorf("%w: crop %+v outside %dx%d frame", ErrArgument, r, f.Width, f.Height)
		}
		return g, nil
	})
}

// Convert repacks every frame of m into layout l.
func Convert(m *Image, l pixel.Layout) (*Image, error) {
	if !l.Valid() {
		return nil, fmt.Errorf("%w: layout %s", ErrArgument, l)
	}
	return mapFrames(m, func(f *pixel.Frame) (*pixel.Frame, error) {
		return f.Convert(l)
	})
}
