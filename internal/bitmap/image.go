package bitmap

import (
	"context"
	"fmt"
	"image"
	"io"
	"os"
	"sync"
	"sync/atomic"

	"github.com/ironsheep/anybitmap/internal/codec"
	"github.com/ironsheep/anybitmap/internal/fetch"
	"github.com/ironsheep/anybitmap/internal/format"
	"github.com/ironsheep/anybitmap/internal/pixel"
)

// Image is a decoded bitmap together with its canonical encoded bytes.
//
// The zero value is not usable; build images with the From* and New*
// functions.
type Image struct {
	format  format.Format
	frames  []*pixel.Frame
	backend codec.Backend

	// mu guards data, the canonical bytes. data is nil once pixels change
	// and is regenerated, then cached, by the next export.
	mu   sync.Mutex
	data []byte

	// shared is set while frame buffers may be aliased by another Image
	// (see SplitFrames); the next mutation copies frame 0 first.
	shared atomic.Bool

	pins   []*Pinned
	closed bool
}

type options struct {
	hint    format.Format
	backend codec.Backend
}

// Option configures how an image is built.
type Option func(*options)

// WithFormatHint names the format to assume when the data carries no
// recognizable signature. A detected signature always wins.
func WithFormatHint(f format.Format) Option {
	return func(o *options) { o.hint = f }
}

// WithBackend replaces the default codec backend.
func WithBackend(b codec.Backend) Option {
	return func(o *options) {
		if b != nil {
			o.backend = b
		}
	}
}

var defaultBackend codec.Backend = codec.New()

func buildOptions(opts []Option) options {
	o := options{backend: defaultBackend}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// FromBytes sniffs and decodes data. The bytes are copied and kept as the
// canonical encoding of the image.
func FromBytes(data []byte, opts ...Option) (*Image, error) {
	o := buildOptions(opts)
	f, err := format.SniffWithHint(data, o.hint)
	if err != nil {
		return nil, err
	}

	frames, err := o.backend.Decode(data, f)
	if err != nil {
		return nil, err
	}

	return &Image{
		format:  f,
		frames:  frames,
		backend: o.backend,
		data:    append([]byte(nil), data...),
	}, nil
}

// FromReader reads r to the end and decodes it. A seekable r is sniffed
// before anything is consumed, and its position is restored when the data is
// not recognized.
func FromReader(r io.Reader, opts ...Option) (*Image, error) {
	if rs, ok := r.(io.ReadSeeker); ok {
		o := buildOptions(opts)
		if _, err := format.SniffReader(rs); err != nil && o.hint == format.Unknown {
			return nil, err
		}
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read image: %w", err)
	}
	return FromBytes(data, opts...)
}

// FromFile loads and decodes the file at path. The format comes from the
// content, not the extension.
func FromFile(path string, opts ...Option) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	img, err := FromBytes(data, opts...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

// FromURL fetches uri with f and decodes the result. A nil f uses an
// HTTPFetcher with default limits.
func FromURL(ctx context.Context, f fetch.Fetcher, uri string, opts ...Option) (*Image, error) {
	if f == nil {
		f = fetch.NewHTTPFetcher(0, 0)
	}
	data, err := f.Fetch(ctx, uri)
	if err != nil {
		return nil, err
	}
	return FromBytes(data, opts...)
}

// New returns a width x height RGB24 canvas, all black, declared as Png.
func New(width, height int) (*Image, error) {
	f, err := pixel.NewFrame(width, height, pixel.RGB24)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArgument, err)
	}
	return fromFrames(format.Png, []*pixel.Frame{f}, defaultBackend), nil
}

// NewFilled returns a width x height RGBA32 canvas filled with c, declared
// as Png.
func NewFilled(width, height int, c pixel.Color) (*Image, error) {
	f, err := pixel.NewFrame(width, height, pixel.RGBA32)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArgument, err)
	}
	f.Fill(c)
	return fromFrames(format.Png, []*pixel.Frame{f}, defaultBackend), nil
}

// FromRGBBuffer builds an RGB24 image from buf, which holds width*height
// pixels row by row, three bytes each in R, G, B order, without padding.
func FromRGBBuffer(buf []byte, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: invalid size %dx%d", ErrArgument, width, height)
	}
	if want := width * height * 3; len(buf) != want {
		return nil, fmt.Errorf("%w: buffer has %d bytes, want %d for %dx%d RGB", ErrArgument, len(buf), want, width, height)
	}

	f, err := pixel.NewFrame(width, height, pixel.RGB24)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArgument, err)
	}
	row := width * 3
	for y := 0; y < height; y++ {
		copy(f.Pix[y*f.Stride:y*f.Stride+row], buf[y*row:(y+1)*row])
	}
	return fromFrames(format.Png, []*pixel.Frame{f}, defaultBackend), nil
}

// FromImage copies any image.Image into a new Image declared as Png.
func FromImage(img image.Image) (*Image, error) {
	if img == nil || img.Bounds().Empty() {
		return nil, fmt.Errorf("%w: image has no pixels", ErrArgument)
	}
	f, err := pixel.FrameFromImage(img, pixel.LayoutUnknown)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrArgument, err)
	}
	return fromFrames(format.Png, []*pixel.Frame{f}, defaultBackend), nil
}

// FromFrames builds an image from copies of frames. An Unknown or Svg format
// is declared as Png.
func FromFrames(f format.Format, frames ...*pixel.Frame) (*Image, error) {
	if len(frames) == 0 {
		return nil, fmt.Errorf("%w: no frames", ErrEmptyInput)
	}
	own := make([]*pixel.Frame, len(frames))
	for i, fr := range frames {
		if fr == nil {
			return nil, fmt.Errorf("%w: frame %d is nil", ErrArgument, i)
		}
		own[i] = fr.Clone()
	}
	if f == format.Unknown {
		f = format.Png
	}
	return fromFrames(f, own, defaultBackend), nil
}

// fromFrames wraps frames the caller hands over; the image has no canonical
// bytes until exported.
func fromFrames(f format.Format, frames []*pixel.Frame, b codec.Backend) *Image {
	if f == format.Svg {
		f = format.Png
	}
	return &Image{format: f, frames: frames, backend: b}
}

// derive returns a new image of the same format and backend built from
// frames.
func (m *Image) derive(frames []*pixel.Frame) *Image {
	return fromFrames(m.format, frames, m.backend)
}

// Width returns the width of frame 0, or 0 after Close.
func (m *Image) Width() int {
	if m.closed {
		return 0
	}
	return m.frames[0].Width
}

// Height returns the height of frame 0, or 0 after Close.
func (m *Image) Height() int {
	if m.closed {
		return 0
	}
	return m.frames[0].Height
}

// BitsPerPixel returns the color depth of frame 0.
func (m *Image) BitsPerPixel() int {
	if m.closed {
		return 0
	}
	return m.frames[0].BitsPerPixel()
}

// Layout returns the pixel layout of frame 0.
func (m *Image) Layout() pixel.Layout {
	if m.closed {
		return pixel.LayoutUnknown
	}
	return m.frames[0].Layout
}

// Stride returns the row length of frame 0 in bytes, padding included.
func (m *Image) Stride() int {
	if m.closed {
		return 0
	}
	return m.frames[0].Stride
}

// FrameCount returns the number of decoded frames.
func (m *Image) FrameCount() int {
	return len(m.frames)
}

// Format returns the declared format.
func (m *Image) Format() format.Format {
	return m.format
}

// MimeType returns the media type of the declared format.
func (m *Image) MimeType() string {
	return m.format.MimeType()
}

// Frame returns frame i. The frame belongs to the image: read it, but change
// pixels through SetPixel so the canonical bytes stay in sync.
func (m *Image) Frame(i int) (*pixel.Frame, error) {
	if m.closed {
		return nil, ErrClosed
	}
	if i < 0 || i >= len(m.frames) {
		return nil, fmt.Errorf("%w: frame %d of %d", ErrIndex, i, len(m.frames))
	}
	return m.frames[i], nil
}

// Frames returns the frames in order. The slice is a copy; the frames are
// not.
func (m *Image) Frames() []*pixel.Frame {
	return append([]*pixel.Frame(nil), m.frames...)
}

// Close releases the pixel buffers and any outstanding pins. Every later
// call that can fail reports ErrClosed. Close is idempotent.
func (m *Image) Close() error {
	if m.closed {
		return nil
	}
	for _, p := range m.pins {
		p.unpin()
	}
	m.pins = nil
	m.closed = true
	m.frames = nil
	m.mu.Lock()
	m.data = nil
	m.mu.Unlock()
	return nil
}

// mutableFrame0 returns frame 0 ready to be written: copied first when its
// buffer may be shared, and with the canonical bytes invalidated. Svg is
// decode-only, so a modified Svg image is declared Png from here on.
func (m *Image) mutableFrame0() *pixel.Frame {
	if m.format == format.Svg {
		m.format = format.Png
	}
	if m.shared.Swap(false) {
		m.frames = append([]*pixel.Frame(nil), m.frames...)
		m.frames[0] = m.frames[0].Clone()
	}
	m.invalidate()
	return m.frames[0]
}

func (m *Image) invalidate() {
	m.mu.Lock()
	m.data = nil
	m.mu.Unlock()
}
