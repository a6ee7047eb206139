package atxt

import "image"
import "image/color"
import "testing"

import "github.com/tinne26/atxt/atlas"

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}

// Creates a font whose glyphs all have the same size, by slicing
// a fully opaque atlas.
func newTestFont(t *testing.T, glyphWidth, glyphHeight, topMargin int) *Font {
	t.Helper()
	texture := image.NewAlpha(image.Rect(0, 0, 16*glyphWidth, 14*glyphHeight))
	for i := range texture.Pix { texture.Pix[i] = 255 }
	font, err := atlas.New(texture, atlas.Definition{
		Name: "test",
		GlyphSize: atlas.Size{ Width: glyphWidth, Height: glyphHeight },
		TopMargin: topMargin,
		FirstGlyph: 32,
	})
	if err != nil { t.Fatalf("unexpected error: %s", err) }
	return font
}

// A clock that only moves when told to.
type testClock struct { ticks int64 }
func (self *testClock) Ticks() int64 { return self.ticks }

// A renderer that records what it's asked to draw.
type recordRenderer struct {
	glyphs []image.Rectangle
	texRects []image.Rectangle
	filled []image.Rectangle
	colors []color.Color
}

func (self *recordRenderer) DrawTexturedRect(screenRect image.Rectangle, _ image.Image, textureRect image.Rectangle, clr color.Color) {
	self.glyphs = append(self.glyphs, screenRect)
	self.texRects = append(self.texRects, textureRect)
	self.colors = append(self.colors, clr)
}

func (self *recordRenderer) DrawFilledRect(screenRect image.Rectangle, clr color.Color) {
	self.filled = append(self.filled, screenRect)
	self.colors = append(self.colors, clr)
}

func (self *recordRenderer) clear() {
	self.glyphs = self.glyphs[ : 0]
	self.texRects = self.texRects[ : 0]
	self.filled = self.filled[ : 0]
	self.colors = self.colors[ : 0]
}
