package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ironsheep/anybitmap/internal/bitmap"
	"github.com/ironsheep/anybitmap/internal/format"
	"github.com/ironsheep/anybitmap/internal/ocr"
	"github.com/ironsheep/anybitmap/internal/palette"
	"github.com/ironsheep/anybitmap/internal/pixel"
)

// ToolCallParams represents the parameters for a tools/call MCP request.
type ToolCallParams struct {
	// Name is the tool to invoke (e.g., "bitmap_load", "bitmap_crop").
	Name string `json:"name"`

	// Arguments contains the tool-specific parameters as JSON.
	Arguments json.RawMessage `json:"arguments"`
}

// handleToolsCall processes a tools/call request and executes the specified tool.
//
// The response wraps the tool result in MCP's content format:
//
//	{
//	  "content": [{"type": "text", "text": "<JSON result>"}]
//	}
//
// Tool execution errors return a JSON-RPC error response with code -32000.
func (s *Server) handleToolsCall(ctx context.Context, req *MCPRequest) *MCPResponse {
	var params ToolCallParams
	if err := json.Unmarshal(req.Params, &params); err != nil {
		return s.errorResponse(req.ID, -32602, "Invalid params", err.Error())
	}
	if len(params.Arguments) == 0 {
		params.Arguments = json.RawMessage("{}")
	}

	result, err := s.executeTool(ctx, params.Name, params.Arguments)
	if err != nil {
		if !isClientError(err) || s.cfg.Debug() {
			log.Printf("Tool %s failed: %v", params.Name, err)
		}
		return s.errorResponse(req.ID, -32000, "Tool execution failed", err.Error())
	}

	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      req.ID,
		Result: map[string]interface{}{
			"content": []map[string]interface{}{
				{
					"type": "text",
					"text": mustMarshalJSON(result),
				},
			},
		},
	}
}

// executeTool dispatches tool execution to the appropriate handler function.
func (s *Server) executeTool(ctx context.Context, name string, args json.RawMessage) (interface{}, error) {
	switch name {
	// Loading and Metadata
	case "bitmap_load":
		return s.handleLoad(ctx, args)

	// Pixel Access
	case "bitmap_sample_pixel":
		return s.handleSamplePixel(ctx, args)
	case "bitmap_extract_alpha":
		return s.handleExtractAlpha(ctx, args)

	// Color Analysis
	case "bitmap_color_info":
		return s.handleColorInfo(ctx, args)
	case "bitmap_contains_color":
		return s.handleContainsColor(ctx, args)

	// Transforms
	case "bitmap_rotate_flip":
		return s.handleRotateFlip(ctx, args)
	case "bitmap_resize":
		return s.handleResize(ctx, args)
	case "bitmap_redact":
		return s.handleRedact(ctx, args)
	case "bitmap_crop":
		return s.handleCrop(ctx, args)
	case "bitmap_convert":
		return s.handleConvert(ctx, args)

	// Multi-frame
	case "bitmap_multiframe":
		return s.handleMultiFrame(ctx, args)
	case "bitmap_split_frames":
		return s.handleSplitFrames(ctx, args)

	// OCR
	case "bitmap_ocr":
		return s.handleOCR(ctx, args)

	default:
		return nil, fmt.Errorf("unknown tool: %s", name)
	}
}

// errorResponse creates a JSON-RPC error response with the given details.
func (s *Server) errorResponse(id interface{}, code int, message, data string) *MCPResponse {
	return &MCPResponse{
		JSONRPC: "2.0",
		ID:      id,
		Error: &MCPError{
			Code:    code,
			Message: message,
			Data:    data,
		},
	}
}

// mustMarshalJSON converts a value to pretty-printed JSON string.
// On marshal failure it returns an empty string.
func mustMarshalJSON(v interface{}) string {
	b, _ := json.MarshalIndent(v, "", "  ")
	return string(b)
}

// === Shared Arguments and Results ===

type sourceArgs struct {
	Source string `json:"source"`
}

type rectArgs struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

func (r rectArgs) rect() bitmap.Rect {
	return bitmap.Rect{X: r.X, Y: r.Y, Width: r.Width, Height: r.Height}
}

type outputArgs struct {
	Output  string `json:"output"`
	Format  string `json:"format"`
	Quality int    `json:"quality"`
}

// ImageResult describes an image a tool loaded or produced.
type ImageResult struct {
	ID           string `json:"id"`
	Format       string `json:"format"`
	MimeType     string `json:"mime_type"`
	Width        int    `json:"width"`
	Height       int    `json:"height"`
	Layout       string `json:"layout"`
	BitsPerPixel int    `json:"bits_per_pixel"`
	FrameCount   int    `json:"frame_count"`
	SizeBytes    int    `json:"size_bytes,omitempty"`
	Path         string `json:"path,omitempty"`
	Base64       string `json:"base64,omitempty"`
}

func describe(img *bitmap.Image) *ImageResult {
	return &ImageResult{
		ID:           img.ID(),
		Format:       img.Format().String(),
		MimeType:     img.MimeType(),
		Width:        img.Width(),
		Height:       img.Height(),
		Layout:       img.Layout().String(),
		BitsPerPixel: img.BitsPerPixel(),
		FrameCount:   img.FrameCount(),
	}
}

func parseFormat(name string) (format.Format, error) {
	if name == "" {
		return format.Unknown, nil
	}
	f, ok := format.Parse(name)
	if !ok || f == format.Svg {
		return format.Unknown, fmt.Errorf("%w: %q", bitmap.ErrUnsupportedFormat, name)
	}
	return f, nil
}

// emit writes img to o.Output, or encodes it into the result when no output
// path is given. img is closed.
func (s *Server) emit(img *bitmap.Image, o outputArgs) (*ImageResult, error) {
	defer img.Close()

	f, err := parseFormat(o.Format)
	if err != nil {
		return nil, err
	}
	if f == format.Unknown && o.Output != "" {
		f = format.FromPath(o.Output)
	}
	if f == format.Unknown {
		f = img.Format()
	}
	q := o.Quality
	if q == 0 {
		q = s.cfg.JPEGQuality
	}

	data, err := img.Export(f, q)
	if err != nil {
		return nil, err
	}
	res := describe(img)
	res.Format = f.String()
	res.MimeType = f.MimeType()
	res.SizeBytes = len(data)

	if o.Output != "" {
		if err := os.WriteFile(o.Output, data, 0o644); err != nil {
			return nil, fmt.Errorf("failed to write %s: %w", o.Output, err)
		}
		res.Path = o.Output
		return res, nil
	}
	res.Base64 = base64.StdEncoding.EncodeToString(data)
	return res, nil
}

// === Loading and Metadata Handlers ===

func (s *Server) handleLoad(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a sourceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(ctx, a.Source)
	if err != nil {
		return nil, err
	}
	res := describe(img)
	res.SizeBytes = img.Len()
	return res, nil
}

// === Pixel Access Handlers ===

type samplePixelArgs struct {
	Source string `json:"source"`
	X      int    `json:"x"`
	Y      int    `json:"y"`
	Frame  int    `json:"frame"`
}

// PixelResult is a sampled pixel.
type PixelResult struct {
	X     int                 `json:"x"`
	Y     int                 `json:"y"`
	Frame int                 `json:"frame"`
	Color palette.Description `json:"color"`
}

func (s *Server) handleSamplePixel(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a samplePixelArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(ctx, a.Source)
	if err != nil {
		return nil, err
	}
	f, err := img.Frame(a.Frame)
	if err != nil {
		return nil, err
	}
	if !f.In(a.X, a.Y) {
		return nil, fmt.Errorf("%w: (%d,%d) outside %dx%d frame", bitmap.ErrIndex, a.X, a.Y, f.Width, f.Height)
	}
	return &PixelResult{X: a.X, Y: a.Y, Frame: a.Frame, Color: palette.Describe(f.At(a.X, a.Y))}, nil
}

// AlphaResult is the alpha channel of an image.
type AlphaResult struct {
	Width  int    `json:"width"`
	Height int    `json:"height"`
	Alpha  string `json:"alpha"` // base64, one byte per pixel
}

func (s *Server) handleExtractAlpha(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a sourceArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(ctx, a.Source)
	if err != nil {
		return nil, err
	}
	alpha, err := img.ExtractAlphaData()
	if err != nil {
		return nil, err
	}
	return &AlphaResult{
		Width:  img.Width(),
		Height: img.Height(),
		Alpha:  base64.StdEncoding.EncodeToString(alpha),
	}, nil
}

// === Color Analysis Handlers ===

type colorInfoArgs struct {
	Source string `json:"source"`
	Top    *int   `json:"top"`
}

// ColorFrequency is one histogram entry.
type ColorFrequency struct {
	Hex        string  `json:"hex"`
	ARGB       string  `json:"argb"`
	Name       string  `json:"name,omitempty"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ColorInfoResult summarizes the colors of a frame.
type ColorInfoResult struct {
	TotalPixels    int              `json:"total_pixels"`
	DistinctColors int              `json:"distinct_colors"`
	Colors         []ColorFrequency `json:"colors"`
}

func (s *Server) handleColorInfo(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a colorInfoArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	top := 10
	if a.Top != nil {
		top = *a.Top
	}
	img, err := s.cache.Load(ctx, a.Source)
	if err != nil {
		return nil, err
	}

	hist, err := img.ColorInfo()
	if err != nil {
		return nil, err
	}
	counts, err := img.DominantColors(top)
	if err != nil {
		return nil, err
	}

	total := img.Width() * img.Height()
	res := &ColorInfoResult{
		TotalPixels:    total,
		DistinctColors: len(hist),
		Colors:         make([]ColorFrequency, 0, len(counts)),
	}
	for _, c := range counts {
		name, _ := palette.Name(c.Color)
		res.Colors = append(res.Colors, ColorFrequency{
			Hex:        c.Color.Hex(),
			ARGB:       c.Color.String(),
			Name:       name,
			Count:      c.Count,
			Percentage: float64(c.Count) / float64(total) * 100,
		})
	}
	return res, nil
}

type containsColorArgs struct {
	Source string `json:"source"`
	Color  string `json:"color"`
}

// ContainsColorResult answers a color membership query.
type ContainsColorResult struct {
	Color    string `json:"color"`
	Contains bool   `json:"contains"`
}

func (s *Server) handleContainsColor(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a containsColorArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c, err := palette.Parse(a.Color)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(ctx, a.Source)
	if err != nil {
		return nil, err
	}
	ok, err := img.ContainsColor(c)
	if err != nil {
		return nil, err
	}
	return &ContainsColorResult{Color: c.String(), Contains: ok}, nil
}

// === Transform Handlers ===

type rotateFlipArgs struct {
	Source   string `json:"source"`
	Rotation string `json:"rotation"`
	Flip     string `json:"flip"`
	outputArgs
}

func (s *Server) handleRotateFlip(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a rotateFlipArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	r, err := bitmap.ParseRotation(a.Rotation)
	if err != nil {
		return nil, err
	}
	fl, err := bitmap.ParseFlip(a.Flip)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(ctx, a.Source)
	if err != nil {
		return nil, err
	}
	out, err := bitmap.RotateFlip(img, r, fl)
	if err != nil {
		return nil, err
	}
	return s.emit(out, a.outputArgs)
}

type resizeArgs struct {
	Source string `json:"source"`
	Width  int    `json:"width"`
	Height int    `json:"height"`
	outputArgs
}

func (s *Server) handleResize(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a resizeArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(ctx, a.Source)
	if err != nil {
		return nil, err
	}
	out, err := bitmap.Resize(img, a.Width, a.Height)
	if err != nil {
		return nil, err
	}
	return s.emit(out, a.outputArgs)
}

type redactArgs struct {
	Source string `json:"source"`
	Color  string `json:"color"`
	rectArgs
	outputArgs
}

func (s *Server) handleRedact(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a redactArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	c := pixel.Black
	if a.Color != "" {
		var err error
		if c, err = palette.Parse(a.Color); err != nil {
			return nil, err
		}
	}
	img, err := s.cache.Load(ctx, a.Source)
	if err != nil {
		return nil, err
	}
	out, err := bitmap.Redact(img, a.rect(), c)
	if err != nil {
		return nil, err
	}
	return s.emit(out, a.outputArgs)
}

type cropArgs struct {
	Source string `json:"source"`
	rectArgs
	outputArgs
}

func (s *Server) handleCrop(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a cropArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(ctx, a.Source)
	if err != nil {
		return nil, err
	}
	out, err := bitmap.Crop(img, a.rect())
	if err != nil {
		return nil, err
	}
	return s.emit(out, a.outputArgs)
}

type convertArgs struct {
	Source string `json:"source"`
	Layout string `json:"layout"`
	outputArgs
}

func (s *Server) handleConvert(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a convertArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	img, err := s.cache.Load(ctx, a.Source)
	if err != nil {
		return nil, err
	}

	var out *bitmap.Image
	if a.Layout != "" {
		l, ok := pixel.ParseLayout(a.Layout)
		if !ok {
			return nil, fmt.Errorf("%w: layout %q", bitmap.ErrArgument, a.Layout)
		}
		out, err = bitmap.Convert(img, l)
	} else {
		out, err = bitmap.Clone(img)
	}
	if err != nil {
		return nil, err
	}
	return s.emit(out, a.outputArgs)
}

// === Multi-frame Handlers ===

type multiFrameArgs struct {
	Sources   []string `json:"sources"`
	Container string   `json:"container"`
	Output    string   `json:"output"`
}

func (s *Server) handleMultiFrame(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a multiFrameArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if len(a.Sources) == 0 {
		return nil, fmt.Errorf("%w: no sources", bitmap.ErrEmptyInput)
	}

	var create func(...*bitmap.Image) (*bitmap.Image, error)
	switch f, _ := format.Parse(a.Container); f {
	case format.Tiff:
		create = bitmap.CreateMultiFrameTiff
	case format.Gif:
		create = bitmap.CreateMultiFrameGif
	default:
		return nil, fmt.Errorf("%w: container %q is not tiff or gif", bitmap.ErrArgument, a.Container)
	}

	images := make([]*bitmap.Image, len(a.Sources))
	for i, src := range a.Sources {
		img, err := s.cache.Load(ctx, src)
		if err != nil {
			return nil, err
		}
		images[i] = img
	}
	out, err := create(images...)
	if err != nil {
		return nil, err
	}
	return s.emit(out, outputArgs{Output: a.Output})
}

type splitFramesArgs struct {
	Source    string `json:"source"`
	OutputDir string `json:"output_dir"`
	Format    string `json:"format"`
}

// SplitResult lists the frames of a split image.
type SplitResult struct {
	Frames []*ImageResult `json:"frames"`
}

func (s *Server) handleSplitFrames(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a splitFramesArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	f, err := parseFormat(a.Format)
	if err != nil {
		return nil, err
	}
	img, err := s.cache.Load(ctx, a.Source)
	if err != nil {
		return nil, err
	}
	if f == format.Unknown {
		f = img.Format()
		if f == format.Svg {
			f = format.Png
		}
	}
	if a.OutputDir != "" {
		if err := os.MkdirAll(a.OutputDir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create %s: %w", a.OutputDir, err)
		}
	}

	res := &SplitResult{}
	i := 0
	for part := range bitmap.SplitFrames(img) {
		o := outputArgs{Format: f.String()}
		if a.OutputDir != "" {
			o.Output = filepath.Join(a.OutputDir, fmt.Sprintf("frame-%03d%s", i, f.Extension()))
		}
		r, err := s.emit(part, o)
		if err != nil {
			return nil, fmt.Errorf("frame %d: %w", i, err)
		}
		res.Frames = append(res.Frames, r)
		i++
	}
	return res, nil
}

// === OCR Handlers ===

type ocrArgs struct {
	Source   string `json:"source"`
	Language string `json:"language"`
	rectArgs
}

func (s *Server) handleOCR(ctx context.Context, args json.RawMessage) (interface{}, error) {
	var a ocrArgs
	if err := json.Unmarshal(args, &a); err != nil {
		return nil, err
	}
	if a.Language == "" {
		a.Language = s.cfg.OCRLanguage
	}
	img, err := s.cache.Load(ctx, a.Source)
	if err != nil {
		return nil, err
	}
	if a.Width == 0 && a.Height == 0 {
		return ocr.ExtractText(img, a.Language)
	}
	return ocr.ExtractTextFromRegion(img, a.rect(), a.Language)
}

// isClientError reports whether err was caused by the request rather than by
// the server.
func isClientError(err error) bool {
	for _, target := range []error{
		bitmap.ErrArgument, bitmap.ErrIndex, bitmap.ErrEmptyInput,
		bitmap.ErrUnrecognizedFormat, bitmap.ErrUnsupportedFormat,
		bitmap.ErrUnsupportedOperation, pixel.ErrInvalidColor,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
