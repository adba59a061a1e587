package ocr

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/ironsheep/anybitmap/internal/bitmap"
	"github.com/ironsheep/anybitmap/internal/format"
)

// DefaultLanguage is used when no language is given.
const DefaultLanguage = "eng"

// Bounds represents a rectangular bounding box in pixel coordinates.
type Bounds struct {
	X1 int `json:"x1"` // Left edge
	Y1 int `json:"y1"` // Top edge
	X2 int `json:"x2"` // Right edge (exclusive)
	Y2 int `json:"y2"` // Bottom edge (exclusive)
}

// TextRegion represents a word with its location and OCR confidence.
type TextRegion struct {
	// Text is the recognized text content.
	Text string `json:"text"`

	// Confidence is the OCR confidence score (0.0 to 1.0).
	Confidence float64 `json:"confidence"`

	// Bounds is the bounding box around this text in the image.
	Bounds Bounds `json:"bounds"`
}

// Result contains the complete results of text extraction from an image.
type Result struct {
	// FullText is all recognized text with its original spacing and newlines.
	FullText string `json:"full_text"`

	// Regions contains individual words with their bounding boxes. It may be
	// empty when Tesseract cannot report boxes; FullText is still set.
	Regions []TextRegion `json:"regions"`
}

// ExtractText performs OCR on frame 0 of img.
//
// The frame is exported as PNG in memory and handed to Tesseract; no
// temporary file is written. language is a Tesseract language code such as
// "eng" or "deu", and its training data must be installed.
func ExtractText(img *bitmap.Image, language string) (*Result, error) {
	data, err := framePNG(img)
	if err != nil {
		return nil, err
	}
	return recognize(data, language, 0, 0)
}

// ExtractTextFromRegion performs OCR on the part of frame 0 inside r. r is
// clipped to the image. Returned boxes are in the coordinates of img, not of
// the region: a word found at (10, 20) in a region starting at (100, 50) is
// reported at (110, 70).
func ExtractTextFromRegion(img *bitmap.Image, r bitmap.Rect, language string) (*Result, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", bitmap.ErrArgument)
	}
	r = r.Intersect(bitmap.Rect{Width: img.Width(), Height: img.Height()})
	if r.Empty() {
		return nil, fmt.Errorf("%w: region outside %dx%d image", bitmap.ErrArgument, img.Width(), img.Height())
	}

	cropped, err := bitmap.Crop(img, r)
	if err != nil {
		return nil, fmt.Errorf("failed to crop region: %w", err)
	}
	defer cropped.Close()

	data, err := framePNG(cropped)
	if err != nil {
		return nil, err
	}
	return recognize(data, language, r.X, r.Y)
}

// DetectTextRegions returns word boxes with at least minConfidence (0.0 to
// 1.0), without their text.
func DetectTextRegions(img *bitmap.Image, minConfidence float64) ([]Bounds, error) {
	data, err := framePNG(img)
	if err != nil {
		return nil, err
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetImageFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}
	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return nil, fmt.Errorf("failed to get text regions: %w", err)
	}

	out := make([]Bounds, 0, len(boxes))
	for _, r := range toRegions(boxes, 0, 0) {
		if r.Confidence >= minConfidence {
			out = append(out, r.Bounds)
		}
	}
	return out, nil
}

// Version returns the Tesseract library version.
func Version() string {
	client := gosseract.NewClient()
	defer client.Close()
	return client.Version()
}

func recognize(data []byte, language string, dx, dy int) (*Result, error) {
	if language == "" {
		language = DefaultLanguage
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, fmt.Errorf("failed to set language: %w", err)
	}
	if err := client.SetImageFromBytes(data); err != nil {
		return nil, fmt.Errorf("failed to set image: %w", err)
	}

	text, err := client.Text()
	if err != nil {
		return nil, fmt.Errorf("OCR failed: %w", err)
	}

	boxes, err := client.GetBoundingBoxes(gosseract.RIL_WORD)
	if err != nil {
		return &Result{FullText: text, Regions: []TextRegion{}}, nil
	}
	return &Result{FullText: text, Regions: toRegions(boxes, dx, dy)}, nil
}

// toRegions drops empty words and shifts boxes by (dx, dy).
func toRegions(boxes []gosseract.BoundingBox, dx, dy int) []TextRegion {
	regions := make([]TextRegion, 0, len(boxes))
	for _, box := range boxes {
		if box.Word == "" {
			continue
		}
		regions = append(regions, TextRegion{
			Text:       box.Word,
			Confidence: float64(box.Confidence) / 100.0,
			Bounds: Bounds{
				X1: box.Box.Min.X + dx,
				Y1: box.Box.Min.Y + dy,
				X2: box.Box.Max.X + dx,
				Y2: box.Box.Max.Y + dy,
			},
		})
	}
	return regions
}

func framePNG(img *bitmap.Image) ([]byte, error) {
	if img == nil {
		return nil, fmt.Errorf("%w: nil image", bitmap.ErrArgument)
	}
	f, err := img.Frame(0)
	if err != nil {
		return nil, err
	}
	single, err := bitmap.FromFrames(format.Png, f)
	if err != nil {
		return nil, err
	}
	defer single.Close()

	data, err := single.Export(format.Png, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to encode image for OCR: %w", err)
	}
	return data, nil
}
