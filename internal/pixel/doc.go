// Package pixel holds the in-memory pixel representation shared by every
// other package: the ARGB Color value, the Layout tag describing how a pixel
// is packed into bytes, and Frame, one decoded page backed by a strided byte
// buffer.
//
// # Layouts
//
// Decoders produce buffers in many shapes: 24-bit BGR rows padded to four
// bytes, 32-bit pixels with alpha first or last, 8-bit gray, 1-bit
// monochrome. A Frame never assumes a channel order. Every routine that
// touches Pix dispatches on Frame.Layout and normalizes outward to RGBA
// semantics, so callers see the same Color regardless of how the page was
// stored.
//
// # Stride
//
// Rows are padded to a multiple of four bytes (see AlignedStride), matching
// the legacy device-independent bitmap layout that interop callers expect.
// Padding bytes are never read as pixels.
//
// # Thread Safety
//
// Frames are plain values. Concurrent reads are safe; writes must be
// serialized by the caller.
package pixel
