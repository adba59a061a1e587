package server

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ironsheep/anybitmap/internal/bitmap"
	"github.com/ironsheep/anybitmap/internal/config"
	"github.com/ironsheep/anybitmap/internal/fetch"
	"github.com/ironsheep/anybitmap/internal/format"
	"github.com/ironsheep/anybitmap/internal/pixel"
)

// createTestImageFile writes a width x height PNG filled with c, with a
// white pixel at the origin, and returns its path.
func createTestImageFile(t *testing.T, width, height int, c color.Color) string {
	t.Helper()

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	img.Set(0, 0, color.White)

	path := filepath.Join(t.TempDir(), "fixture.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create file: %v", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatalf("failed to encode image: %v", err)
	}
	return path
}

// callTool runs a tool through tools/call and decodes its text content into
// out. It returns the JSON-RPC error, if any.
func callTool(t *testing.T, s *Server, name string, args map[string]interface{}, out interface{}) *MCPError {
	t.Helper()
	params, _ := json.Marshal(map[string]interface{}{"name": name, "arguments": args})
	resp := s.handleRequest(context.Background(), &MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: params})
	if resp == nil {
		t.Fatal("handleRequest returned nil")
	}
	if resp.Error != nil {
		return resp.Error
	}
	content := resp.Result.(map[string]interface{})["content"].([]map[string]interface{})
	if content[0]["type"] != "text" {
		t.Fatalf("content type: got %v", content[0]["type"])
	}
	if out != nil {
		if err := json.Unmarshal([]byte(content[0]["text"].(string)), out); err != nil {
			t.Fatalf("failed to decode result: %v", err)
		}
	}
	return nil
}

func mustCall(t *testing.T, s *Server, name string, args map[string]interface{}, out interface{}) {
	t.Helper()
	if e := callTool(t, s, name, args, out); e != nil {
		t.Fatalf("%s failed: %s: %v", name, e.Message, e.Data)
	}
}

func decodeResult(t *testing.T, r *ImageResult) *bitmap.Image {
	t.Helper()
	var data []byte
	var err error
	if r.Path != "" {
		data, err = os.ReadFile(r.Path)
	} else {
		data, err = base64.StdEncoding.DecodeString(r.Base64)
	}
	if err != nil {
		t.Fatal(err)
	}
	img, err := bitmap.FromBytes(data)
	if err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() { img.Close() })
	return img
}

func TestHandleLoad(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, 100, 80, color.NRGBA{255, 0, 0, 255})

	var r ImageResult
	mustCall(t, s, "bitmap_load", map[string]interface{}{"source": path}, &r)
	if r.Width != 100 || r.Height != 80 || r.Format != "Png" || r.FrameCount != 1 {
		t.Errorf("unexpected result %+v", r)
	}
	if r.MimeType != "image/png" || r.SizeBytes == 0 || len(r.ID) != 64 {
		t.Errorf("unexpected metadata %+v", r)
	}
	if s.cache.Len() != 1 {
		t.Errorf("cache holds %d images, want 1", s.cache.Len())
	}

	mustCall(t, s, "bitmap_load", map[string]interface{}{"source": path}, &r)
	if s.cache.Len() != 1 {
		t.Error("second load should hit the cache")
	}
}

func TestHandleLoad_Errors(t *testing.T) {
	s := newTestServer(t)
	garbage := filepath.Join(t.TempDir(), "garbage.png")
	os.WriteFile(garbage, []byte("definitely not an image"), 0o644)

	for name, source := range map[string]string{
		"missing": "/nonexistent/path/image.png",
		"garbage": garbage,
		"empty":   "",
	} {
		t.Run(name, func(t *testing.T) {
			e := callTool(t, s, "bitmap_load", map[string]interface{}{"source": source}, nil)
			if e == nil || e.Code != -32000 {
				t.Errorf("expected a -32000 tool error, got %+v", e)
			}
		})
	}
}

func TestHandleLoad_URL(t *testing.T) {
	data, err := os.ReadFile(createTestImageFile(t, 4, 3, color.Black))
	if err != nil {
		t.Fatal(err)
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	defer srv.Close()

	s := NewWithFetcher(config.Default(), fetch.NewHTTPFetcher(0, 0))
	t.Cleanup(s.cache.Clear)

	var r ImageResult
	mustCall(t, s, "bitmap_load", map[string]interface{}{"source": srv.URL + "/img"}, &r)
	if r.Width != 4 || r.Height != 3 {
		t.Errorf("size: got %dx%d", r.Width, r.Height)
	}
}

func TestHandleSamplePixel(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, 10, 10, color.NRGBA{255, 165, 0, 255})

	var r PixelResult
	mustCall(t, s, "bitmap_sample_pixel", map[string]interface{}{"source": path, "x": 5, "y": 5}, &r)
	if r.Color.Hex != "#FFA500" || r.Color.Name != "Orange" {
		t.Errorf("unexpected color %+v", r.Color)
	}

	mustCall(t, s, "bitmap_sample_pixel", map[string]interface{}{"source": path, "x": 0, "y": 0}, &r)
	if r.Color.Name != "White" || r.Color.Luminance != 100 {
		t.Errorf("origin: %+v", r.Color)
	}

	if e := callTool(t, s, "bitmap_sample_pixel", map[string]interface{}{"source": path, "x": 10, "y": 0}, nil); e == nil {
		t.Error("out of bounds should fail")
	}
	if e := callTool(t, s, "bitmap_sample_pixel", map[string]interface{}{"source": path, "x": 0, "y": 0, "frame": 3}, nil); e == nil {
		t.Error("missing frame should fail")
	}
}

func TestHandleColorInfo(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, 10, 10, color.NRGBA{0, 0, 255, 255})

	var r ColorInfoResult
	mustCall(t, s, "bitmap_color_info", map[string]interface{}{"source": path}, &r)
	if r.TotalPixels != 100 || r.DistinctColors != 2 || len(r.Colors) != 2 {
		t.Fatalf("unexpected result %+v", r)
	}
	if r.Colors[0].Name != "Blue" || r.Colors[0].Count != 99 || r.Colors[0].Percentage < 98.9 {
		t.Errorf("top color: %+v", r.Colors[0])
	}

	mustCall(t, s, "bitmap_color_info", map[string]interface{}{"source": path, "top": 1}, &r)
	if len(r.Colors) != 1 {
		t.Errorf("top=1 listed %d colors", len(r.Colors))
	}
}

func TestHandleContainsColor(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, 10, 10, color.NRGBA{0, 128, 0, 255})

	tests := []struct {
		color string
		want  bool
	}{
		{"green", true},
		{"#008000", true},
		{"#FFFFFF", true},
		{"red", false},
		{"#80008000", false},
	}
	for _, tt := range tests {
		var r ContainsColorResult
		mustCall(t, s, "bitmap_contains_color", map[string]interface{}{"source": path, "color": tt.color}, &r)
		if r.Contains != tt.want {
			t.Errorf("%s: got %v, want %v", tt.color, r.Contains, tt.want)
		}
	}

	if e := callTool(t, s, "bitmap_contains_color", map[string]interface{}{"source": path, "color": "nope"}, nil); e == nil {
		t.Error("an invalid color should fail")
	}
}

func TestHandleRotateFlip(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, 6, 4, color.Black)

	var r ImageResult
	mustCall(t, s, "bitmap_rotate_flip", map[string]interface{}{"source": path, "rotation": "90"}, &r)
	if r.Width != 4 || r.Height != 6 {
		t.Errorf("size: got %dx%d, want 4x6", r.Width, r.Height)
	}
	img := decodeResult(t, &r)
	// The white origin pixel moves to the top-right corner.
	if c, _ := img.GetPixel(3, 0); c != pixel.White {
		t.Errorf("top-right: got %v", c)
	}

	if e := callTool(t, s, "bitmap_rotate_flip", map[string]interface{}{"source": path, "rotation": "45"}, nil); e == nil {
		t.Error("invalid rotation should fail")
	}
}

func TestHandleResize(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, 20, 10, color.Black)

	var r ImageResult
	mustCall(t, s, "bitmap_resize", map[string]interface{}{"source": path, "width": 7, "height": 9, "format": "bmp"}, &r)
	if r.Width != 7 || r.Height != 9 || r.Format != "Bmp" || r.MimeType != "image/bmp" {
		t.Errorf("unexpected result %+v", r)
	}
	if img := decodeResult(t, &r); img.Format() != format.Bmp {
		t.Errorf("decoded format %s", img.Format())
	}

	if e := callTool(t, s, "bitmap_resize", map[string]interface{}{"source": path, "width": 0, "height": 9}, nil); e == nil {
		t.Error("zero width should fail")
	}
}

func TestHandleRedact_Output(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, 100, 100, color.White)
	out := filepath.Join(t.TempDir(), "redacted.png")

	var r ImageResult
	mustCall(t, s, "bitmap_redact", map[string]interface{}{
		"source": path, "x": 10, "y": 10, "width": 50, "height": 50, "output": out,
	}, &r)
	if r.Path != out || r.Base64 != "" {
		t.Errorf("result should point at the file: %+v", r)
	}

	img := decodeResult(t, &r)
	if c, _ := img.GetPixel(10, 10); c != pixel.Black {
		t.Errorf("inside: got %v", c)
	}
	if c, _ := img.GetPixel(60, 60); c != pixel.White {
		t.Errorf("outside: got %v", c)
	}

	// The cached source is untouched.
	var p PixelResult
	mustCall(t, s, "bitmap_sample_pixel", map[string]interface{}{"source": path, "x": 20, "y": 20}, &p)
	if p.Color.Hex != "#FFFFFF" {
		t.Errorf("source changed: %+v", p.Color)
	}
}

func TestHandleCrop(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, 30, 20, color.Black)

	var r ImageResult
	mustCall(t, s, "bitmap_crop", map[string]interface{}{"source": path, "x": 25, "y": 15, "width": 10, "height": 10}, &r)
	if r.Width != 5 || r.Height != 5 {
		t.Errorf("clipped size: got %dx%d, want 5x5", r.Width, r.Height)
	}
	if e := callTool(t, s, "bitmap_crop", map[string]interface{}{"source": path, "x": 40, "y": 0, "width": 5, "height": 5}, nil); e == nil {
		t.Error("crop outside the image should fail")
	}
}

func TestHandleConvert(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, 8, 8, color.NRGBA{10, 20, 30, 255})
	out := filepath.Join(t.TempDir(), "converted.tif")

	var r ImageResult
	mustCall(t, s, "bitmap_convert", map[string]interface{}{"source": path, "layout": "BGRA32", "output": out}, &r)
	if r.Format != "Tiff" || r.Layout != "BGRA32" || r.BitsPerPixel != 32 {
		t.Errorf("unexpected result %+v", r)
	}
	if img := decodeResult(t, &r); img.Format() != format.Tiff {
		t.Errorf("file holds %s", img.Format())
	}

	if e := callTool(t, s, "bitmap_convert", map[string]interface{}{"source": path, "layout": "CMYK"}, nil); e == nil {
		t.Error("unknown layout should fail")
	}
	if e := callTool(t, s, "bitmap_convert", map[string]interface{}{"source": path, "format": "svg"}, nil); e == nil {
		t.Error("svg output should fail")
	}
}

func TestHandleMultiFrameAndSplit(t *testing.T) {
	s := newTestServer(t)
	a := createTestImageFile(t, 8, 6, color.Black)
	b := createTestImageFile(t, 4, 4, color.NRGBA{0, 0, 255, 255})
	dir := t.TempDir()
	out := filepath.Join(dir, "stack.tiff")

	var r ImageResult
	mustCall(t, s, "bitmap_multiframe", map[string]interface{}{"sources": []string{a, b, a}, "container": "tiff", "output": out}, &r)
	if r.FrameCount != 3 || r.Format != "Tiff" {
		t.Fatalf("unexpected result %+v", r)
	}

	var split SplitResult
	mustCall(t, s, "bitmap_split_frames", map[string]interface{}{"source": out, "output_dir": filepath.Join(dir, "frames"), "format": "png"}, &split)
	if len(split.Frames) != 3 {
		t.Fatalf("got %d frames, want 3", len(split.Frames))
	}
	for i, f := range split.Frames {
		if f.FrameCount != 1 || !strings.HasSuffix(f.Path, ".png") {
			t.Errorf("frame %d: %+v", i, f)
		}
	}
	if split.Frames[1].Width != 4 || split.Frames[1].Height != 4 {
		t.Errorf("frame 1 size: %dx%d", split.Frames[1].Width, split.Frames[1].Height)
	}

	mustCall(t, s, "bitmap_multiframe", map[string]interface{}{"sources": []string{a, b}, "container": "gif"}, &r)
	if r.FrameCount != 2 || r.Width != 8 || r.Height != 6 || r.Base64 == "" {
		t.Errorf("gif: %+v", r)
	}

	if e := callTool(t, s, "bitmap_multiframe", map[string]interface{}{"sources": []string{a}, "container": "png"}, nil); e == nil {
		t.Error("png is not a multi-frame container")
	}
	if e := callTool(t, s, "bitmap_multiframe", map[string]interface{}{"sources": []string{}, "container": "gif"}, nil); e == nil {
		t.Error("no sources should fail")
	}
}

func TestHandleExtractAlpha(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, 3, 2, color.NRGBA{1, 2, 3, 77})

	var r AlphaResult
	mustCall(t, s, "bitmap_extract_alpha", map[string]interface{}{"source": path}, &r)
	alpha, err := base64.StdEncoding.DecodeString(r.Alpha)
	if err != nil {
		t.Fatal(err)
	}
	if string(alpha) != string([]byte{255, 77, 77, 77, 77, 77}) {
		t.Errorf("alpha: got %v", alpha)
	}

	opaque := filepath.Join(t.TempDir(), "opaque.bmp")
	img, _ := bitmap.New(2, 2)
	img.SaveAs(opaque, format.Unknown, 0)
	img.Close()
	e := callTool(t, s, "bitmap_extract_alpha", map[string]interface{}{"source": opaque}, nil)
	if e == nil || !strings.Contains(e.Data.(string), "24 bpp") {
		t.Errorf("24 bpp images should be rejected, got %+v", e)
	}
}

func TestHandleOCR(t *testing.T) {
	s := newTestServer(t)
	path := createTestImageFile(t, 60, 30, color.White)

	e := callTool(t, s, "bitmap_ocr", map[string]interface{}{"source": path, "x": 100, "y": 100, "width": 5, "height": 5}, nil)
	if e == nil {
		t.Error("a region outside the image should fail")
	}

	var r map[string]interface{}
	if e := callTool(t, s, "bitmap_ocr", map[string]interface{}{"source": path}, &r); e != nil {
		t.Skipf("Tesseract not available: %v", e.Data)
	}
	if _, ok := r["full_text"]; !ok {
		t.Errorf("result missing full_text: %v", r)
	}
}

func TestHandleToolsCall_InvalidParams(t *testing.T) {
	s := newTestServer(t)
	resp := s.handleRequest(context.Background(), &MCPRequest{JSONRPC: "2.0", ID: 1, Method: "tools/call", Params: json.RawMessage(`[1,2]`)})
	if resp.Error == nil || resp.Error.Code != -32602 {
		t.Errorf("expected -32602, got %+v", resp.Error)
	}

	e := callTool(t, s, "bitmap_nope", map[string]interface{}{}, nil)
	if e == nil || e.Code != -32000 {
		t.Errorf("unknown tool: got %+v", e)
	}
}

func TestHandleSplitFrames_Svg(t *testing.T) {
	s := newTestServer(t)
	path := filepath.Join(t.TempDir(), "icon.svg")
	svg := `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 8 4" width="8" height="4"><rect width="8" height="4" fill="#00f"/></svg>`
	if err := os.WriteFile(path, []byte(svg), 0o644); err != nil {
		t.Fatal(err)
	}

	var split SplitResult
	mustCall(t, s, "bitmap_split_frames", map[string]interface{}{"source": path}, &split)
	if len(split.Frames) != 1 || split.Frames[0].Format != "Png" || split.Frames[0].Width != 8 {
		t.Errorf("unexpected frames %+v", split.Frames)
	}
}
