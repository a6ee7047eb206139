package atlas

import "fmt"
import "image"
import "errors"

// Number of character codes supported by a [Font].
const NumGlyphs = 256

var ErrInvalidDefinition = errors.New("invalid font definition")
var ErrNoTexture = errors.New("font definition without texture")

// A bitmap font backed by a texture atlas. See [New]() and
// [ParseFromFS]() for the ways to create one.
type Font struct {
	name string
	texture image.Image
	textureRects [NumGlyphs]image.Rectangle
	sizes [NumGlyphs]image.Point
	glyphSpacing image.Point
	topMargin int
	glyphHeight int
	firstGlyph int
}

// The parameters required to slice an atlas texture into glyphs.
// Field tags match the keys of definition files.
type Definition struct {
	Name string `yaml:"name"`
	Texture string `yaml:"texture"` // path relative to the definition file

	// Size of each atlas cell. Glyphs are laid out left to right,
	// top to bottom, starting at FirstGlyph.
	GlyphSize Size `yaml:"glyph-size"`
	GlyphHeight int `yaml:"glyph-height"` // defaults to GlyphSize.Height
	GlyphSpacing Size `yaml:"glyph-spacing"`
	TopMargin int `yaml:"top-margin"`
	FirstGlyph int `yaml:"first-glyph"`
	SpaceWidth int `yaml:"space-width"`
	GlyphWidths map[int]int `yaml:"glyph-widths"`
}

// Creates a font by slicing the given texture as described by the
// definition. The texture must not be modified afterwards.
//
// Glyph widths are computed from the rightmost texture column with
// non-zero alpha in each cell. Definition.SpaceWidth and
// Definition.GlyphWidths override the detected values. A blank space
// glyph without an explicit width is given half the cell width.
func New(texture image.Image, def Definition) (*Font, error) {
	if texture == nil { return nil, ErrNoTexture }
	cell := image.Pt(def.GlyphSize.Width, def.GlyphSize.Height)
	if cell.X <= 0 || cell.Y <= 0 {
		return nil, fmt.Errorf("%w: glyph size %v", ErrInvalidDefinition, cell)
	}
	glyphHeight := def.GlyphHeight
	if glyphHeight == 0 { glyphHeight = cell.Y }
	if glyphHeight < 0 || glyphHeight > cell.Y {
		return nil, fmt.Errorf("%w: glyph height %d outside cell height %d", ErrInvalidDefinition, glyphHeight, cell.Y)
	}
	if def.FirstGlyph < 0 || def.FirstGlyph >= NumGlyphs {
		return nil, fmt.Errorf("%w: first glyph %d", ErrInvalidDefinition, def.FirstGlyph)
	}
	if def.TopMargin < 0 || def.GlyphSpacing.Width < 0 || def.GlyphSpacing.Height < 0 {
		return nil, fmt.Errorf("%w: negative margin or spacing", ErrInvalidDefinition)
	}

	bounds := texture.Bounds()
	columns := bounds.Dx()/cell.X
	if columns == 0 {
		return nil, fmt.Errorf("%w: texture width %d below glyph width %d", ErrInvalidDefinition, bounds.Dx(), cell.X)
	}

	font := &Font{
		name: def.Name,
		texture: texture,
		glyphSpacing: image.Pt(def.GlyphSpacing.Width, def.GlyphSpacing.Height),
		topMargin: def.TopMargin,
		glyphHeight: glyphHeight,
		firstGlyph: def.FirstGlyph,
	}

	lastGlyph := def.FirstGlyph - 1
	for code := def.FirstGlyph; code < NumGlyphs; code++ {
		index := code - def.FirstGlyph
		origin := bounds.Min.Add(image.Pt((index % columns)*cell.X, (index / columns)*cell.Y))
		if origin.Y + glyphHeight > bounds.Max.Y { break } // atlas exhausted
		width := detectGlyphWidth(texture, origin, cell.X, glyphHeight)
		font.setGlyph(code, origin, width)
		lastGlyph = code
	}

	if def.FirstGlyph <= ' ' && lastGlyph >= ' ' {
		if def.SpaceWidth > 0 {
			font.setGlyphWidth(' ', def.SpaceWidth, cell.X)
		} else if font.sizes[' '].X == 0 {
			font.setGlyphWidth(' ', cell.X/2, cell.X)
		}
	}

	for code, width := range def.GlyphWidths {
		if code < def.FirstGlyph || code > lastGlyph {
			return nil, fmt.Errorf("%w: glyph width for code %d outside atlas range", ErrInvalidDefinition, code)
		}
		if width < 0 || width > cell.X {
			return nil, fmt.Errorf("%w: glyph width %d for code %d", ErrInvalidDefinition, width, code)
		}
		font.setGlyphWidth(code, width, cell.X)
	}

	return font, nil
}

func (self *Font) setGlyph(code int, origin image.Point, width int) {
	self.textureRects[code] = image.Rectangle{ Min: origin, Max: origin.Add(image.Pt(width, self.glyphHeight)) }
	self.sizes[code] = image.Pt(width, self.glyphHeight)
}

func (self *Font) setGlyphWidth(code int, width int, cellWidth int) {
	if width > cellWidth { width = cellWidth }
	self.setGlyph(code, self.textureRects[code].Min, width)
}

// Returns the number of leading columns of the cell that
// contain at least one pixel with non-zero alpha.
func detectGlyphWidth(texture image.Image, origin image.Point, cellWidth, height int) int {
	for x := cellWidth - 1; x >= 0; x-- {
		for y := 0; y < height; y++ {
			_, _, _, a := texture.At(origin.X + x, origin.Y + y).RGBA()
			if a != 0 { return x + 1 }
		}
	}
	return 0
}

// Returns the font name given in its definition. Fonts loaded
// through a library are indexed by file name instead, which may
// differ.
func (self *Font) Name() string { return self.name }

// Returns the texture atlas of the font.
func (self *Font) Texture() image.Image { return self.texture }

// Returns the rectangle of the texture atlas occupied by the given
// glyph. Codes without a glyph return an empty rectangle.
func (self *Font) GlyphTextureRect(code byte) image.Rectangle {
	return self.textureRects[code]
}

// Returns the width and height of the given glyph.
func (self *Font) GlyphSize(code byte) image.Point {
	return self.sizes[code]
}

func (self *Font) TopMargin() int { return self.topMargin }
func (self *Font) GlyphHeight() int { return self.glyphHeight }
func (self *Font) FirstGlyph() int { return self.firstGlyph }

// Returns the horizontal spacing between consecutive glyphs
// and the vertical spacing between lines.
func (self *Font) GlyphSpacing() image.Point { return self.glyphSpacing }
