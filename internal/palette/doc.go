// Package palette names colors.
//
// It holds the CSS/X11 named color table and answers the questions a user
// asks about a sampled pixel: what is it called, which named color is it
// closest to, and what are its hue, saturation and lightness. Perceptual
// work is delegated to go-colorful; distances are measured in CIE Lab.
//
// The engine in package bitmap never depends on this package.
package palette
