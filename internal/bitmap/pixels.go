package bitmap

import (
	"fmt"
	"runtime"
	"unsafe"

	"github.com/ironsheep/anybitmap/internal/pixel"
)

func (m *Image) checkPoint(x, y int) error {
	if m.closed {
		return ErrClosed
	}
	f := m.frames[0]
	if !f.In(x, y) {
		return fmt.Errorf("%w: pixel (%d,%d) outside %dx%d", ErrIndex, x, y, f.Width, f.Height)
	}
	return nil
}

// GetPixel returns the color at (x, y) of frame 0.
func (m *Image) GetPixel(x, y int) (pixel.Color, error) {
	if err := m.checkPoint(x, y); err != nil {
		return pixel.Color{}, err
	}
	return m.frames[0].At(x, y), nil
}

// SetPixel writes c at (x, y) of frame 0. Layouts without alpha store c as
// opaque.
func (m *Image) SetPixel(x, y int, c pixel.Color) error {
	if err := m.checkPoint(x, y); err != nil {
		return err
	}
	m.mutableFrame0().Set(x, y, c)
	return nil
}

// RGBBuffer returns frame 0 as width*height*3 bytes of unpadded R, G, B
// triples, row by row.
func (m *Image) RGBBuffer() ([]byte, error) {
	if m.closed {
		return nil, ErrClosed
	}
	return m.frames[0].RGB(), nil
}

// ExtractAlphaData returns the alpha of every pixel of frame 0, row by row.
// Only 32 bpp images carry alpha.
func (m *Image) ExtractAlphaData() ([]byte, error) {
	if m.closed {
		return nil, ErrClosed
	}
	f := m.frames[0]
	if bpp := f.BitsPerPixel(); bpp != 32 {
		return nil, fmt.Errorf("%w: extracting alpha data is not supported for %d bpp images", ErrUnsupportedOperation, bpp)
	}
	return f.Alpha(), nil
}

// Pinned is frame 0's pixel buffer held at a fixed address. The pointer from
// Scan0 stays valid until Release, or until the image is closed.
type Pinned struct {
	pinner runtime.Pinner
	owner  *Image
	frame  *pixel.Frame
	active bool
}

// Pin fixes frame 0's buffer in memory for native interop. The caller may
// write through the pointer; the canonical bytes are regenerated afterwards.
func (m *Image) Pin() (*Pinned, error) {
	if m.closed {
		return nil, ErrClosed
	}
	f := m.mutableFrame0()
	p := &Pinned{owner: m, frame: f, active: true}
	p.pinner.Pin(&f.Pix[0])
	m.pins = append(m.pins, p)
	return p, nil
}

// Scan0 returns the address of the first pixel, or nil once released.
func (p *Pinned) Scan0() unsafe.Pointer {
	if !p.active {
		return nil
	}
	return unsafe.Pointer(&p.frame.Pix[0])
}

// Stride returns the row length in bytes, padding included.
func (p *Pinned) Stride() int {
	return p.frame.Stride
}

// Len returns the buffer length in bytes (Stride * Height).
func (p *Pinned) Len() int {
	return len(p.frame.Pix)
}

// Layout returns the layout of the pinned buffer.
func (p *Pinned) Layout() pixel.Layout {
	return p.frame.Layout
}

// Release unpins the buffer. Writes made through Scan0 become visible to the
// next export. Release is idempotent.
func (p *Pinned) Release() {
	if !p.active {
		return
	}
	p.unpin()
	m := p.owner
	for i, q := range m.pins {
		if q == p {
			m.pins = append(m.pins[:i], m.pins[i+1:]...)
			break
		}
	}
	if !m.closed {
		m.invalidate()
	}
}

func (p *Pinned) unpin() {
	if p.active {
		p.pinner.Unpin()
		p.active = false
	}
}
