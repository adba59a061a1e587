// Package ocr extracts text from images with Tesseract.
//
// It wraps the Tesseract engine through gosseract/v2. Frame 0 of a
// bitmap.Image is exported as PNG in memory and passed to Tesseract, so OCR
// works on every format the engine decodes.
//
// # Prerequisites
//
// The Tesseract library and headers must be installed, together with the
// language data for each language used:
//   - Ubuntu/Debian: apt-get install libtesseract-dev tesseract-ocr-eng
//   - macOS: brew install tesseract
//
// # Functions
//
//   - ExtractText: full-image OCR with word bounding boxes
//   - ExtractTextFromRegion: OCR on a rectangle, boxes in image coordinates
//   - DetectTextRegions: word boxes only, filtered by confidence
//
// If bounding box extraction fails, ExtractText still returns the text with
// an empty Regions slice.
package ocr
