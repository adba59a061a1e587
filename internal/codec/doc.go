// Package codec converts between encoded image bytes and decoded frames.
//
// The Backend interface is the only thing the bitmap engine knows about
// compression. Std is the default implementation and covers every format in
// package format:
//
//   - Png, Jpeg: standard library decoders, bild imgio encoders
//   - Bmp: golang.org/x/image/bmp, encoded through bild imgio
//   - Gif: all frames, composited onto the logical screen while decoding;
//     exact palettes when possible, Plan9 with Floyd-Steinberg dithering
//     otherwise
//   - Tiff: every page of the IFD chain, decoded one at a time with
//     golang.org/x/image/tiff; a multi-page baseline writer with Adobe
//     Deflate compression (klauspost/compress/zlib)
//   - Webp: golang.org/x/image/webp to decode, chai2010/webp to encode
//   - Svg: rasterized at its view box size with srwiley/oksvg; decode only
//
// # Degenerate Pages
//
// A container page that declares a zero width or height is skipped, and
// decoding continues with the next page. Decode fails only when no page
// survives or a page is malformed.
//
// # Thread Safety
//
// Std holds no mutable state after construction and is safe for concurrent
// use.
package codec
