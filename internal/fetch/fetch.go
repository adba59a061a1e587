// Package fetch retrieves encoded image bytes from a URI.
//
// It is the I/O collaborator behind bitmap.FromURL. Cancellation and timeouts
// belong to the caller's context; HTTPFetcher adds a client timeout and a size
// cap on top.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

// Defaults used by NewHTTPFetcher when given zero values.
const (
	DefaultTimeout  = 30 * time.Second
	DefaultMaxBytes = 64 << 20
)

// ErrFetch wraps every failure to retrieve bytes from a URI.
var ErrFetch = errors.New("fetch failed")

// Fetcher retrieves the bytes behind a URI.
type Fetcher interface {
	Fetch(ctx context.Context, uri string) ([]byte, error)
}

// Func adapts a function to the Fetcher interface.
type Func func(ctx context.Context, uri string) ([]byte, error)

// Fetch calls fn(ctx, uri).
func (fn Func) Fetch(ctx context.Context, uri string) ([]byte, error) {
	return fn(ctx, uri)
}

// HTTPFetcher fetches http, https and file URIs.
type HTTPFetcher struct {
	// Client performs HTTP requests. nil means http.DefaultClient.
	Client *http.Client

	// MaxBytes caps the size of a fetched body. Zero or less means no cap.
	MaxBytes int64
}

// NewHTTPFetcher returns a fetcher with its own client. Zero arguments select
// DefaultTimeout and DefaultMaxBytes.
func NewHTTPFetcher(timeout time.Duration, maxBytes int64) *HTTPFetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &HTTPFetcher{
		Client:   &http.Client{Timeout: timeout},
		MaxBytes: maxBytes,
	}
}

// Fetch implements Fetcher.
func (h *HTTPFetcher) Fetch(ctx context.Context, uri string) ([]byte, error) {
	u, err := url.Parse(uri)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}

	switch u.Scheme {
	case "http", "https":
		return h.get(ctx, u.String())
	case "file":
		if err := ctx.Err(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetch, err)
		}
		f, err := os.Open(u.Path)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrFetch, err)
		}
		defer f.Close()
		return h.readAll(f, uri)
	default:
		return nil, fmt.Errorf("%w: unsupported scheme %q", ErrFetch, u.Scheme)
	}
}

func (h *HTTPFetcher) get(ctx context.Context, uri string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	req.Header.Set("Accept", "image/*")

	client := h.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %s returned %s", ErrFetch, uri, resp.Status)
	}
	return h.readAll(resp.Body, uri)
}

func (h *HTTPFetcher) readAll(r io.Reader, uri string) ([]byte, error) {
	if h.MaxBytes > 0 {
		r = io.LimitReader(r, h.MaxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFetch, err)
	}
	if h.MaxBytes > 0 && int64(len(data)) > h.MaxBytes {
		return nil, fmt.Errorf("%w: %s is larger than %d bytes", ErrFetch, uri, h.MaxBytes)
	}
	return data, nil
}
