package codec

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/jpeg"
	"image/png"
	"io"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/chai2010/webp"
	"golang.org/x/image/bmp"
	xwebp "golang.org/x/image/webp"

	"github.com/ironsheep/anybitmap/internal/format"
	"github.com/ironsheep/anybitmap/internal/pixel"
)

// DefaultQuality is used for lossy encoders when no quality is given.
const DefaultQuality = 90

var (
	// ErrDecodeFailure wraps every reason encoded data could not be decoded.
	ErrDecodeFailure = errors.New("decode failure")

	// ErrUnsupportedFormat is returned when asked to encode a format the
	// backend cannot write.
	ErrUnsupportedFormat = errors.New("unsupported format")

	// ErrNoFrames is returned when Encode is given nothing to encode.
	ErrNoFrames = errors.New("no frames to encode")
)

// Backend decodes encoded bytes into frames and encodes frames into bytes.
type Backend interface {
	// Decode returns the frames of data in container order. hint names the
	// format data is known to be in.
	Decode(data []byte, hint format.Format) ([]*pixel.Frame, error)

	// Encode writes every frame for multi-frame formats and frame 0
	// otherwise. quality (1-100) only matters for lossy formats.
	Encode(frames []*pixel.Frame, f format.Format, quality int) ([]byte, error)
}

// Std is the default Backend.
type Std struct {
	// TIFFCompress enables Adobe Deflate compression for TIFF pages.
	TIFFCompress bool

	// GIFDelay is the per-frame delay, in 100ths of a second, written to
	// GIF animations.
	GIFDelay int
}

// New returns a Std backend with compression enabled.
func New() *Std {
	return &Std{TIFFCompress: true, GIFDelay: 10}
}

// Quality clamps q into 1..100, mapping values <= 0 to DefaultQuality.
func Quality(q int) int {
	switch {
	case q <= 0:
		return DefaultQuality
	case q > 100:
		return 100
	}
	return q
}

// Decode implements Backend.
func (s *Std) Decode(data []byte, hint format.Format) ([]*pixel.Frame, error) {
	var (
		frames []*pixel.Frame
		err    error
	)
	switch hint {
	case format.Gif:
		frames, err = decodeGIF(data)
	case format.Tiff:
		frames, err = decodeTIFF(data)
	case format.Svg:
		frames, err = decodeSVG(data)
	case format.Png:
		frames, err = decodeSingle(data, png.Decode)
	case format.Jpeg:
		frames, err = decodeSingle(data, jpeg.Decode)
	case format.Bmp:
		frames, err = decodeSingle(data, bmp.Decode)
	case format.Webp:
		frames, err = decodeSingle(data, xwebp.Decode)
	default:
		return nil, fmt.Errorf("%w: cannot decode %s", ErrDecodeFailure, hint)
	}
	if err != nil {
		if errors.Is(err, ErrDecodeFailure) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s: %v", ErrDecodeFailure, hint, err)
	}
	return frames, nil
}

func decodeSingle(data []byte, decode func(io.Reader) (image.Image, error)) ([]*pixel.Frame, error) {
	img, err := decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	if img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: image has no pixels", ErrDecodeFailure)
	}
	f, err := pixel.FrameFromImage(img, pixel.LayoutUnknown)
	if err != nil {
		return nil, err
	}
	return []*pixel.Frame{f}, nil
}

// Encode implements Backend.
func (s *Std) Encode(frames []*pixel.Frame, f format.Format, quality int) ([]byte, error) {
	if len(frames) == 0 {
		return nil, ErrNoFrames
	}

	if !f.MultiFrame() {
		frames = frames[:1]
	}
	if f.Lossy() {
		quality = Quality(quality)
	}

	var buf bytes.Buffer
	var err error
	switch f {
	case format.Gif:
		err = encodeGIF(&buf, frames, s.GIFDelay)
	case format.Tiff:
		err = encodeTIFF(&buf, frames, s.TIFFCompress)
	case format.Png:
		err = imgio.PNGEncoder()(&buf, encodable(frames[0]))
	case format.Jpeg:
		err = imgio.JPEGEncoder(quality)(&buf, encodable(frames[0]))
	case format.Bmp:
		err = imgio.BMPEncoder()(&buf, encodable(frames[0]))
	case format.Webp:
		err = webp.Encode(&buf, encodable(frames[0]), &webp.Options{Quality: float32(quality)})
	default:
		return nil, fmt.Errorf("%w: cannot encode %s", ErrUnsupportedFormat, f)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", f, err)
	}
	return buf.Bytes(), nil
}

// encodable picks the image.Image whose type lets encoders keep the frame's
// depth: gray frames stay gray, opaque frames are written without alpha.
func encodable(f *pixel.Frame) image.Image {
	if f.Layout == pixel.Gray8 || f.Layout == pixel.Mono1 {
		g := image.NewGray(f.Bounds())
		for y := 0; y < f.Height; y++ {
			for x := 0; x < f.Width; x++ {
				g.Pix[g.PixOffset(x, y)] = f.At(x, y).R
			}
		}
		return g
	}
	return f.ToNRGBA()
}
