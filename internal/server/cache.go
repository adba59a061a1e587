package server

import (
	"context"
	"fmt"
	"net/url"
	"sync"

	"github.com/ironsheep/anybitmap/internal/bitmap"
	"github.com/ironsheep/anybitmap/internal/fetch"
)

// ImageCache provides thread-safe caching of loaded images so repeated tool
// calls on the same source skip the read and decode.
//
// Images are keyed by the exact source string: a file path or an http,
// https or file URL. Cached images are shared between calls and must not be
// modified; tools derive new images instead.
type ImageCache struct {
	mu      sync.RWMutex
	images  map[string]*bitmap.Image
	fetcher fetch.Fetcher
}

// NewImageCache returns an empty cache that fetches URLs with f.
func NewImageCache(f fetch.Fetcher) *ImageCache {
	return &ImageCache{
		images:  make(map[string]*bitmap.Image),
		fetcher: f,
	}
}

// Load returns the cached image for source, loading it first if needed.
func (c *ImageCache) Load(ctx context.Context, source string) (*bitmap.Image, error) {
	c.mu.RLock()
	if img, ok := c.images[source]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	img, err := c.read(ctx, source)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", source, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if cached, ok := c.images[source]; ok {
		img.Close()
		return cached, nil
	}
	c.images[source] = img
	return img, nil
}

func (c *ImageCache) read(ctx context.Context, source string) (*bitmap.Image, error) {
	if source == "" {
		return nil, fmt.Errorf("%w: empty source", bitmap.ErrArgument)
	}
	if isURL(source) {
		return bitmap.FromURL(ctx, c.fetcher, source)
	}
	return bitmap.FromFile(source)
}

func isURL(s string) bool {
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	switch u.Scheme {
	case "http", "https", "file":
		return true
	}
	return false
}

// Len returns the number of cached images.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// Evict removes and closes the image cached for source, if any.
func (c *ImageCache) Evict(source string) {
	c.mu.Lock()
	img, ok := c.images[source]
	delete(c.images, source)
	c.mu.Unlock()
	if ok {
		img.Close()
	}
}

// Clear removes and closes every cached image.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	old := c.images
	c.images = make(map[string]*bitmap.Image)
	c.mu.Unlock()
	for _, img := range old {
		img.Close()
	}
}
