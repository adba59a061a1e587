// Package bitmap provides Image, a format-agnostic in-memory bitmap.
//
// An Image keeps the encoded bytes it was built from together with the
// decoded frames. The bytes are the source of truth until a pixel is changed:
// exporting an unmodified image in its own format returns exactly the bytes
// it was created from, while a modified image is re-encoded on demand.
//
// # Construction
//
// Images are created by decoding (FromBytes, FromReader, FromFile, FromURL),
// by synthesizing a canvas (New, NewFilled), from a raw RGB buffer
// (FromRGBBuffer), or from existing pixels (FromImage, FromFrames). Decoding
// errors are always reported; a malformed input never becomes a blank canvas.
//
// # Pixels and Colors
//
// GetPixel and SetPixel work on frame 0 and always speak RGBA, whatever the
// underlying layout. RGBBuffer and ExtractAlphaData return normalized copies.
// Pin exposes the native buffer for interop:
//
//	p, err := img.Pin()
//	if err != nil {
//	    return err
//	}
//	defer p.Release()
//	useNative(p.Scan0(), p.Stride(), p.Len())
//
// # Multi-frame Containers
//
// CreateMultiFrameTiff and CreateMultiFrameGif concatenate the frames of any
// number of images into one container. SplitFrames walks the frames of an
// image as single-frame images that share pixel memory with the source until
// either side is modified.
//
// # Transforms
//
// RotateFlip, Resize, Redact, Clone, Crop and Convert never modify their
// input; they return a new Image covering every frame.
//
// # Resources and Thread Safety
//
// Frame buffers can be large. Release them with Close as soon as an image is
// no longer needed, typically with defer. Any number of goroutines may read an
// image concurrently. SetPixel, Pin and Close are not synchronized with other
// calls on the same image; callers that mutate must serialize access.
package bitmap
