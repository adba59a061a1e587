// Package config reads runtime settings from the environment.
package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ironsheep/anybitmap/internal/codec"
)

// Environment variables.
const (
	EnvLogLevel      = "ANYBITMAP_LOG_LEVEL"
	EnvFetchTimeout  = "ANYBITMAP_FETCH_TIMEOUT"
	EnvMaxFetchBytes = "ANYBITMAP_MAX_FETCH_BYTES"
	EnvJPEGQuality   = "ANYBITMAP_JPEG_QUALITY"
	EnvOCRLanguage   = "ANYBITMAP_OCR_LANGUAGE"
)

// Defaults used when a variable is unset or invalid.
const (
	DefaultFetchTimeout  = 30 * time.Second
	DefaultMaxFetchBytes = 64 << 20
	DefaultOCRLanguage   = "eng"
)

// Config holds the settings shared by the server and the CLI.
type Config struct {
	LogLevel      string        // "debug" enables debug lines
	FetchTimeout  time.Duration // per remote fetch
	MaxFetchBytes int64         // largest accepted remote body
	JPEGQuality   int           // 1-100
	OCRLanguage   string        // Tesseract language code
}

// Debug reports whether debug logging is on.
func (c Config) Debug() bool {
	return c.LogLevel == "debug"
}

// Default returns the configuration with nothing set.
func Default() Config {
	return Config{
		LogLevel:      "info",
		FetchTimeout:  DefaultFetchTimeout,
		MaxFetchBytes: DefaultMaxFetchBytes,
		JPEGQuality:   codec.DefaultQuality,
		OCRLanguage:   DefaultOCRLanguage,
	}
}

// Load reads the environment. An invalid value is logged and replaced by
// its default.
func Load() Config {
	return load(os.Getenv)
}

func load(getenv func(string) string) Config {
	c := Default()

	if v := strings.ToLower(strings.TrimSpace(getenv(EnvLogLevel))); v != "" {
		c.LogLevel = v
	}

	if v := getenv(EnvFetchTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			log.Printf("Ignoring %s=%q: want a positive duration", EnvFetchTimeout, v)
		} else {
			c.FetchTimeout = d
		}
	}

	if v := getenv(EnvMaxFetchBytes); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil || n <= 0 {
			log.Printf("Ignoring %s=%q: want a positive byte count", EnvMaxFetchBytes, v)
		} else {
			c.MaxFetchBytes = n
		}
	}

	if v := getenv(EnvJPEGQuality); v != "" {
		q, err := strconv.Atoi(v)
		if err != nil || q < 1 || q > 100 {
			log.Printf("Ignoring %s=%q: want 1-100", EnvJPEGQuality, v)
		} else {
			c.JPEGQuality = q
		}
	}

	if v := strings.TrimSpace(getenv(EnvOCRLanguage)); v != "" {
		c.OCRLanguage = v
	}
	return c
}
