// The atlas subpackage defines bitmap fonts backed by a single texture
// atlas: each character code in the 0-255 range maps to a fixed
// rectangle of the texture and a glyph size.
//
// Fonts are usually loaded from a small YAML definition that points
// to the atlas image:
//   texture: tibia-10px-rounded.png
//   glyph-size: 16 16
//   glyph-height: 14
//   glyph-spacing: 1 1
//   top-margin: 2
//   first-glyph: 32
//   space-width: 3
//
// Glyph widths are detected automatically from the atlas alpha channel,
// and can be overridden through the glyph-widths mapping. Text handled
// by this package is made of single-byte codes (Latin-1), not UTF-8.
//
// Fonts are immutable once created and can be shared freely, even
// between goroutines.
package atlas
