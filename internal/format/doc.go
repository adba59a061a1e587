// Package format identifies encoded image formats.
//
// Detection looks at content, never at file names: Sniff inspects the first
// SniffLen bytes of the data against the magic signature of each supported
// format. SVG has no binary signature and is recognized by its "<svg" root
// element, which may follow a byte order mark, whitespace, an XML prolog,
// comments or a DOCTYPE.
//
// # Supported Formats
//
//   - Bmp:  "BM"
//   - Png:  89 50 4E 47 0D 0A 1A 0A
//   - Gif:  "GIF87a" or "GIF89a"
//   - Jpeg: FF D8 FF
//   - Tiff: "II*\x00" (little endian) or "MM\x00*" (big endian)
//   - Webp: "RIFF" <size> "WEBP"
//   - Svg:  textual "<svg" marker
//
// File extensions are only used as hints (FromPath), for example to choose
// an export format when saving.
//
// All functions in this package are pure and safe for concurrent use.
package format
