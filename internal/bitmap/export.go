package bitmap

import (
	"bytes"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/ironsheep/anybitmap/internal/format"
)

// Export encodes the image. When the image is unmodified and f is Unknown or
// the declared format, the original bytes are returned unchanged. Otherwise
// every frame is written for Gif and Tiff, and frame 0 for the rest. A
// modified Svg image has declared format Png. quality (1-100, 0 for the default)
// only affects Jpeg and Webp.
func (m *Image) Export(f format.Format, quality int) ([]byte, error) {
	if m.closed {
		return nil, ErrClosed
	}
	if f == format.Unknown {
		f = m.format
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if f == m.format && m.data != nil {
		return append([]byte(nil), m.data...), nil
	}

	data, err := m.backend.Encode(m.frames, f, quality)
	if err != nil {
		return nil, err
	}
	if f == m.format {
		m.data = data
		return append([]byte(nil), data...), nil
	}
	return data, nil
}

// Bytes returns the canonical bytes: the original encoding, or a fresh one
// in the declared format after modification.
func (m *Image) Bytes() ([]byte, error) {
	return m.Export(format.Unknown, 0)
}

// Reader returns a new reader positioned at the start of the canonical
// bytes. Readers are independent of each other.
func (m *Image) Reader() (*bytes.Reader, error) {
	data, err := m.Bytes()
	if err != nil {
		return nil, err
	}
	return bytes.NewReader(data), nil
}

// WriteTo writes the canonical bytes to w.
func (m *Image) WriteTo(w io.Writer) (int64, error) {
	data, err := m.Bytes()
	if err != nil {
		return 0, err
	}
	n, err := w.Write(data)
	return int64(n), err
}

// SaveAs exports the image to path. An Unknown f is taken from the file
// extension, then from the declared format.
func (m *Image) SaveAs(path string, f format.Format, quality int) error {
	if f == format.Unknown {
		f = format.FromPath(path)
	}
	data, err := m.Export(f, quality)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write image: %w", err)
	}
	return nil
}

// TryExport is Export reporting success instead of an error.
func (m *Image) TryExport(f format.Format, quality int) ([]byte, bool) {
	data, err := m.Export(f, quality)
	return data, err == nil
}

// TrySaveAs is SaveAs reporting success instead of an error.
func (m *Image) TrySaveAs(path string, f format.Format, quality int) bool {
	return m.SaveAs(path, f, quality) == nil
}

// Len returns the length of the canonical bytes, or 0 if they cannot be
// produced.
func (m *Image) Len() int {
	data, err := m.Bytes()
	if err != nil {
		return 0
	}
	return len(data)
}

// Base64 returns the canonical bytes in standard base64.
func (m *Image) Base64() (string, error) {
	data, err := m.Bytes()
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(data), nil
}

// String returns Base64, or "" when the image cannot be encoded.
func (m *Image) String() string {
	s, _ := m.Base64()
	return s
}

// ID returns the hex SHA-256 of the canonical bytes. Images with equal
// content have equal IDs.
func (m *Image) ID() string {
	data, err := m.Bytes()
	if err != nil {
		return ""
	}
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Equal reports whether both images have the same canonical bytes.
func (m *Image) Equal(o *Image) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m == o {
		return true
	}
	a, err := m.Bytes()
	if err != nil {
		return false
	}
	b, err := o.Bytes()
	if err != nil {
		return false
	}
	return bytes.Equal(a, b)
}
