// Package server implements an MCP (Model Context Protocol) server for bitmap tools.
//
// It exposes the bitmap engine as JSON-RPC 2.0 tools so MCP clients can load,
// inspect, transform and re-encode images in any supported format.
//
// # Protocol
//
// The server communicates over stdio using JSON-RPC 2.0:
//   - Input: JSON-RPC requests on stdin (one per line)
//   - Output: JSON-RPC responses on stdout
//
// Supported MCP methods:
//   - initialize: Protocol handshake
//   - tools/list: Enumerate available tools
//   - tools/call: Execute a tool with arguments
//   - ping: Health check
//
// # Available Tools
//
// Loading and metadata:
//   - bitmap_load: Decode an image and report format, size, layout and frames
//
// Pixel access:
//   - bitmap_sample_pixel: Exact color of one pixel
//   - bitmap_extract_alpha: Alpha channel of a 32 bpp image
//
// Color analysis:
//   - bitmap_color_info: Distinct color count and most frequent colors
//   - bitmap_contains_color: Exact color membership
//
// Transforms (every frame, result written to a file or returned as base64):
//   - bitmap_rotate_flip, bitmap_resize, bitmap_redact, bitmap_crop
//   - bitmap_convert: Re-encode and re-pack pixels
//
// Multi-frame:
//   - bitmap_multiframe: Assemble a multi-page TIFF or animated GIF
//   - bitmap_split_frames: One image per frame
//
// OCR:
//   - bitmap_ocr: Tesseract text extraction with word boxes
//
// # Image Caching
//
// Sources are decoded once and cached by path or URL for the lifetime of the
// server. Cached images are never modified: transforms build new images, which
// are closed once encoded into the response.
//
// # Error Handling
//
// Tool failures are returned as JSON-RPC errors with code -32000 and the Go
// error string in data. Errors caused by bad arguments are only logged at
// debug level.
//
// # Usage
//
//	srv := server.New(config.Load())
//	if err := srv.Run(ctx); err != nil {
//	    log.Fatal(err)
//	}
package server
