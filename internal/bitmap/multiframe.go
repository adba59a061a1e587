package bitmap

import (
	"fmt"
	"iter"

	"github.com/ironsheep/anybitmap/internal/format"
	"github.com/ironsheep/anybitmap/internal/pixel"
)

// CreateMultiFrameTiff concatenates the frames of images, in order, into one
// multi-page TIFF.
func CreateMultiFrameTiff(images ...*Image) (*Image, error) {
	frames, err := collectFrames(images)
	if err != nil {
		return nil, err
	}
	return assemble(images[0], format.Tiff, frames)
}

// CreateMultiFrameGif concatenates the frames of images, in order, into one
// GIF. Frames smaller than the largest width and height are centered on a
// transparent canvas of that size; nothing is stretched or cropped.
func CreateMultiFrameGif(images ...*Image) (*Image, error) {
	frames, err := collectFrames(images)
	if err != nil {
		return nil, err
	}

	var w, h int
	for _, f := range frames {
		w, h = max(w, f.Width), max(h, f.Height)
	}
	for i, f := range frames {
		if f.Width != w || f.Height != h {
			if frames[i], err = letterbox(f, w, h); err != nil {
				return nil, err
			}
		}
	}
	return assemble(images[0], format.Gif, frames)
}

// CreateMultiFrameTiffFromFiles loads every path and assembles a TIFF.
func CreateMultiFrameTiffFromFiles(paths ...string) (*Image, error) {
	return fromFiles(paths, CreateMultiFrameTiff)
}

// CreateMultiFrameGifFromFiles loads every path and assembles a GIF.
func CreateMultiFrameGifFromFiles(paths ...string) (*Image, error) {
	return fromFiles(paths, CreateMultiFrameGif)
}

func fromFiles(paths []string, create func(...*Image) (*Image, error)) (*Image, error) {
	if len(paths) == 0 {
		return nil, fmt.Errorf("%w: no images to assemble", ErrEmptyInput)
	}
	images := make([]*Image, 0, len(paths))
	defer func() {
		for _, img := range images {
			img.Close()
		}
	}()
	for _, p := range paths {
		img, err := FromFile(p)
		if err != nil {
			return nil, err
		}
		images = append(images, img)
	}
	return create(images...)
}

func collectFrames(images []*Image) ([]*pixel.Frame, error) {
	if len(images) == 0 {
		return nil, fmt.Errorf("%w: no images to assemble", ErrEmptyInput)
	}
	var frames []*pixel.Frame
	for i, img := range images {
		if img == nil {
			return nil, fmt.Errorf("%w: image %d is nil", ErrArgument, i)
		}
		if img.closed {
			return nil, fmt.Errorf("image %d: %w", i, ErrClosed)
		}
		frames = append(frames, img.frames...)
	}
	return frames, nil
}

// assemble encodes frames into a container, then decodes it back so the
// result's frames are exactly what the container holds.
func assemble(first *Image, f format.Format, frames []*pixel.Frame) (*Image, error) {
	data, err := first.backend.Encode(frames, f, 0)
	if err != nil {
		return nil, err
	}
	return FromBytes(data, WithFormatHint(f), WithBackend(first.backend))
}

// letterbox centers f on a transparent w x h RGBA32 canvas.
func letterbox(f *pixel.Frame, w, h int) (*pixel.Frame, error) {
	dst, err := pixel.NewFrame(w, h, pixel.RGBA32)
	if err != nil {
		return nil, err
	}
	ox, oy := (w-f.Width)/2, (h-f.Height)/2
	for y := 0; y < f.Height; y++ {
		for x := 0; x < f.Width; x++ {
			dst.Set(ox+x, oy+y, f.At(x, y))
		}
	}
	return dst, nil
}

// SplitFrames yields every frame of m as a single-frame image in the format
// of m. Nothing is decoded or encoded: the parts share pixel memory with m
// until one side is modified. A pinned frame 0 is copied instead, so writes
// through the pin never reach a part. The sequence can be ranged over any
// number of times.
func SplitFrames(m *Image) iter.Seq[*Image] {
	return func(yield func(*Image) bool) {
		if m == nil || m.closed {
			return
		}
		frames := m.Frames()
		if len(m.pins) > 0 {
			frames[0] = frames[0].Clone()
		} else {
			m.shared.Store(true)
		}
		for _, f := range frames {
			part := m.derive([]*pixel.Frame{f})
			part.shared.Store(true)
			if !yield(part) {
				return
			}
		}
	}
}

