package atxt

import "image"
import "image/color"

// This file contains the TextArea type definition and all the
// getter and setter methods. Layout and cursor operations are
// split in other files.

// A TextArea lays out a single font's text inside a rectangle of
// the screen, the viewport, and draws it through a [Renderer]:
//  - Text is aligned within the viewport (see [Align]).
//  - Glyphs crossing the viewport edges are clipped at the pixel
//    level, adjusting their texture rects accordingly.
//  - An optional text cursor makes the area editable. When the
//    text doesn't fit, the area scrolls to keep the cursor visible.
//
// Any change of font, text, viewport or align recomputes the whole
// layout. When changing many properties at once, [TextArea.Reset]()
// does a single layout pass.
//
// TextAreas are not safe for concurrent use, but many of them can
// share the same [Font].
type TextArea struct {
	font *Font
	text []byte // Latin-1
	screenCoords image.Rectangle
	drawArea image.Rectangle
	align Align
	color color.Color
	clock Clock

	// parallel to text, empty rects for invisible glyphs
	glyphsCoords []image.Rectangle
	glyphsTexCoords []image.Rectangle
	positions []image.Point // reusable layout buffer

	startInternalPos image.Point // scroll offset within the laid out text
	startRenderPos int // first fully visible glyph, -1 if none
	cursorPos int // -1 if the cursor is disabled
	cursorTicks int64
	cursorVisible bool
}

// Creates a new, empty [TextArea]. The clock drives the cursor blink;
// a nil clock means [SystemClock].
//
// Setting a font and a viewport is required before the text area can
// display anything. See [TextArea.Reset]().
func NewTextArea(clock Clock) *TextArea {
	if clock == nil { clock = SystemClock{} }
	return &TextArea{
		align: TopLeft,
		color: color.White,
		clock: clock,
		cursorPos: -1,
	}
}

// Sets all the main properties of the text area at once, with a
// single layout pass. Like [TextArea.SetText](), it moves an enabled
// cursor back to the start of the text.
func (self *TextArea) Reset(font *Font, text string, screenCoords image.Rectangle, align Align, clr color.Color) {
	self.font = font
	self.text = appendLatin1(self.text[ : 0], text)
	self.screenCoords = screenCoords
	self.align = align
	self.color = clr
	self.resetCursor()
	self.recalculate()
}

// Sets the font to be used. The font must remain valid while the
// text area uses it.
func (self *TextArea) SetFont(font *Font) {
	self.font = font
	self.recalculate()
}

// Returns the current font. Nil by default.
func (self *TextArea) Font() *Font { return self.font }

// Sets the text to display. Runes without a Latin-1 representation
// are replaced by an invisible control code. If the cursor is enabled,
// it's moved to the start of the text.
func (self *TextArea) SetText(text string) {
	self.text = appendLatin1(self.text[ : 0], text)
	self.resetCursor()
	self.recalculate()
}

// Returns the current text as an UTF-8 string.
func (self *TextArea) Text() string { return decodeLatin1(self.text) }

// Returns the current text as Latin-1 codes. The returned slice
// must not be modified.
func (self *TextArea) TextBytes() []byte { return self.text }

// Returns the length of the text, which is also the number of glyphs.
func (self *TextArea) Len() int { return len(self.text) }

// Sets the viewport where the text will be displayed. Empty rects are
// accepted but ignored for layout purposes: the previous layout is
// kept until a non-empty viewport is set.
func (self *TextArea) SetScreenCoords(screenCoords image.Rectangle) {
	self.screenCoords = screenCoords
	self.recalculate()
}

// Returns the viewport.
func (self *TextArea) ScreenCoords() image.Rectangle { return self.screenCoords }

// Returns the viewport with its top pushed down by the
// font's top margin.
func (self *TextArea) DrawArea() image.Rectangle { return self.drawArea }

// Sets the text align. The default is TopLeft.
func (self *TextArea) SetAlign(align Align) {
	self.align = align
	self.recalculate()
}

// Returns the text align.
func (self *TextArea) Align() Align { return self.align }

// Sets the color used to draw the text and the cursor.
// The default is white.
func (self *TextArea) SetColor(clr color.Color) { self.color = clr }

// Returns the text color.
func (self *TextArea) Color() color.Color { return self.color }

// Returns the scroll offset applied to the text in order to
// keep the cursor visible.
func (self *TextArea) ScrollOffset() image.Point { return self.startInternalPos }

// Returns the index of the first glyph that is fully visible
// within the viewport, or -1 if none is.
func (self *TextArea) StartRenderPos() int { return self.startRenderPos }

// Returns the screen rect of the i-th glyph after clipping. Empty
// rects indicate glyphs that are not visible, including glyphs added
// while the viewport was degenerate and not laid out yet.
func (self *TextArea) GlyphRect(i int) image.Rectangle {
	if i < 0 || i >= len(self.glyphsCoords) { return image.Rectangle{} }
	return self.glyphsCoords[i]
}

// Returns the texture rect of the i-th glyph after clipping.
// See [TextArea.GlyphRect]() for the empty cases.
func (self *TextArea) GlyphTexRect(i int) image.Rectangle {
	if i < 0 || i >= len(self.glyphsTexCoords) { return image.Rectangle{} }
	return self.glyphsTexCoords[i]
}

// Calls the given function for each visible glyph, passing its index,
// its screen rect and its texture rect.
func (self *TextArea) EachGlyph(glyphFunc func(int, image.Rectangle, image.Rectangle)) {
	for i, rect := range self.glyphsCoords {
		if rect.Empty() { continue }
		glyphFunc(i, rect, self.glyphsTexCoords[i])
	}
}
