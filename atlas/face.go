package atlas

import "image"

import "golang.org/x/image/font"
import "golang.org/x/image/math/fixed"

// Options for [FromFace]().
type FaceOptions struct {
	Name string
	GlyphSpacing image.Point
	TopMargin int
	Columns int // atlas columns, 16 by default
}

// Creates a font by drawing the Latin-1 repertoire (codes 32 to 255)
// of the given face into a new texture atlas. Works with any
// [font.Face], like basicfont.Face7x13 or faces created with the
// opentype package.
//
// Glyph widths are set to the rounded up advances reported by the face,
// and the glyph height to its ascent plus descent. Glyphs whose
// ink exceeds the advance are cut at the cell boundary.
func FromFace(face font.Face, opts *FaceOptions) (*Font, error) {
	if opts == nil { opts = &FaceOptions{} }
	columns := opts.Columns
	if columns <= 0 { columns = 16 }

	metrics := face.Metrics()
	ascent  := metrics.Ascent.Ceil()
	height  := ascent + metrics.Descent.Ceil()

	const firstGlyph int = ' '
	widths := make(map[int]int, NumGlyphs - firstGlyph)
	cellWidth := 1
	for code := firstGlyph; code < NumGlyphs; code++ {
		advance, found := face.GlyphAdvance(rune(code))
		if !found { continue }
		widths[code] = advance.Ceil()
		cellWidth = max(cellWidth, widths[code])
	}

	numGlyphs := NumGlyphs - firstGlyph
	rows := (numGlyphs + columns - 1)/columns
	texture := image.NewAlpha(image.Rect(0, 0, columns*cellWidth, rows*height))
	drawer := font.Drawer{ Src: image.Opaque, Face: face }
	for code := firstGlyph; code < NumGlyphs; code++ {
		if widths[code] == 0 { continue }
		index := code - firstGlyph
		x, y := (index % columns)*cellWidth, (index / columns)*height
		cell := image.Rect(x, y, x + cellWidth, y + height)
		drawer.Dst = texture.SubImage(cell).(*image.Alpha)
		drawer.Dot = fixed.P(x, y + ascent)
		drawer.DrawString(string(rune(code)))
	}

	return New(texture, Definition{
		Name: opts.Name,
		GlyphSize: Size{ cellWidth, height },
		GlyphHeight: height,
		GlyphSpacing: Size{ opts.GlyphSpacing.X, opts.GlyphSpacing.Y },
		TopMargin: opts.TopMargin,
		FirstGlyph: firstGlyph,
		GlyphWidths: widths,
	})
}
