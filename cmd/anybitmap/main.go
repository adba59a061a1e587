package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ironsheep/anybitmap/internal/bitmap"
	"github.com/ironsheep/anybitmap/internal/config"
	"github.com/ironsheep/anybitmap/internal/fetch"
	"github.com/ironsheep/anybitmap/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

// cfg is loaded from the environment, then overridden by flags.
var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "anybitmap",
	Short: "Load, inspect and convert bitmaps in any common format",
	Long: `anybitmap decodes BMP, PNG, GIF, JPEG, TIFF, WebP and SVG into one
in-memory representation, transforms it and writes it back out.

Environment variables:
  ANYBITMAP_LOG_LEVEL=debug        Enable debug logging
  ANYBITMAP_FETCH_TIMEOUT=30s      Timeout for http and https sources
  ANYBITMAP_MAX_FETCH_BYTES=N      Largest accepted remote image
  ANYBITMAP_JPEG_QUALITY=90        Default quality for lossy output
  ANYBITMAP_OCR_LANGUAGE=eng       Default Tesseract language`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	cfg = config.Load()

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (info or debug)")
	pf.DurationVar(&cfg.FetchTimeout, "fetch-timeout", cfg.FetchTimeout, "timeout for remote sources")
	pf.Int64Var(&cfg.MaxFetchBytes, "max-fetch-bytes", cfg.MaxFetchBytes, "largest accepted remote image in bytes")
	pf.IntVarP(&cfg.JPEGQuality, "quality", "q", cfg.JPEGQuality, "quality for lossy output formats (1-100)")
}

func setup(cmd *cobra.Command, args []string) error {
	// Configure logging to stderr (stdout is for MCP protocol and command output)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if cfg.JPEGQuality < 1 || cfg.JPEGQuality > 100 {
		return fmt.Errorf("quality must be 1-100, got %d", cfg.JPEGQuality)
	}
	if cfg.Debug() {
		log.Printf("anybitmap v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
	}
	return nil
}

// load decodes a file path or an http, https or file URL.
func load(ctx context.Context, source string) (*bitmap.Image, error) {
	if strings.Contains(source, "://") {
		f := fetch.NewHTTPFetcher(cfg.FetchTimeout, cfg.MaxFetchBytes)
		return bitmap.FromURL(ctx, f, source)
	}
	return bitmap.FromFile(source)
}

func main() {
	server.Version = Version

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
