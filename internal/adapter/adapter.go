package adapter

import (
	"errors"
	"fmt"
	"image"
	"image/color/palette"
	"slices"
	"sync"

	"github.com/anthonynsimon/bild/clone"
	"golang.org/x/image/draw"

	"github.com/ironsheep/anybitmap/internal/bitmap"
)

var (
	// ErrUnknownKind is returned for a kind no adapter is registered under.
	ErrUnknownKind = errors.New("adapter: unknown kind")

	// ErrWrongType is returned when FromExternal receives a value of another
	// representation.
	ErrWrongType = errors.New("adapter: wrong external type")
)

// Adapter converts between an Image and one external representation. Only
// frame 0 crosses the boundary.
type Adapter interface {
	Kind() string
	ToExternal(m *bitmap.Image) (any, error)
	FromExternal(v any) (*bitmap.Image, error)
}

// Registry maps kinds to adapters. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	adapters map[string]Adapter
}

// NewRegistry returns a registry holding the image, rgba and paletted
// adapters.
func NewRegistry() *Registry {
	r := &Registry{adapters: make(map[string]Adapter)}
	r.Register(Image{})
	r.Register(RGBA{})
	r.Register(Paletted{})
	return r
}

// Register adds a, replacing any adapter of the same kind.
func (r *Registry) Register(a Adapter) {
	r.mu.Lock()
	r.adapters[a.Kind()] = a
	r.mu.Unlock()
}

// Lookup returns the adapter registered under kind.
func (r *Registry) Lookup(kind string) (Adapter, error) {
	r.mu.RLock()
	a, ok := r.adapters[kind]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
	return a, nil
}

// Kinds returns the registered kinds in sorted order.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]string, 0, len(r.adapters))
	for k := range r.adapters {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

func frame0(m *bitmap.Image) (image.Image, error) {
	f, err := m.Frame(0)
	if err != nil {
		return nil, err
	}
	return f.Image(), nil
}

// Image exchanges image.Image values. Any image.Image is accepted; an
// *image.NRGBA is produced.
type Image struct{}

func (Image) Kind() string { return "image" }

func (Image) ToExternal(m *bitmap.Image) (any, error) {
	f, err := m.Frame(0)
	if err != nil {
		return nil, err
	}
	return f.ToNRGBA(), nil
}

func (Image) FromExternal(v any) (*bitmap.Image, error) {
	img, ok := v.(image.Image)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not an image.Image", ErrWrongType, v)
	}
	return bitmap.FromImage(img)
}

// RGBA exchanges premultiplied *image.RGBA values.
type RGBA struct{}

func (RGBA) Kind() string { return "rgba" }

func (RGBA) ToExternal(m *bitmap.Image) (any, error) {
	img, err := frame0(m)
	if err != nil {
		return nil, err
	}
	return clone.AsRGBA(img), nil
}

func (RGBA) FromExternal(v any) (*bitmap.Image, error) {
	img, ok := v.(*image.RGBA)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not *image.RGBA", ErrWrongType, v)
	}
	return bitmap.FromImage(img)
}

// Paletted exchanges *image.Paletted values. Outgoing images are mapped to
// the nearest Plan9 palette entry without dithering.
type Paletted struct{}

func (Paletted) Kind() string { return "paletted" }

func (Paletted) ToExternal(m *bitmap.Image) (any, error) {
	img, err := frame0(m)
	if err != nil {
		return nil, err
	}
	dst := image.NewPaletted(img.Bounds(), palette.Plan9)
	draw.Draw(dst, dst.Bounds(), img, image.Point{}, draw.Src)
	return dst, nil
}

func (Paletted) FromExternal(v any) (*bitmap.Image, error) {
	img, ok := v.(*image.Paletted)
	if !ok {
		return nil, fmt.Errorf("%w: %T is not *image.Paletted", ErrWrongType, v)
	}
	return bitmap.FromImage(img)
}
