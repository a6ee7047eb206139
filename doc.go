// atxt is a package for bitmap atlas fonts and simple text areas
// designed to be used mainly with the Ebitengine game engine.
//
// Common usage depends only on a couple types. First, you load the
// fonts with a [font.Library]:
//   fontLib := font.NewLibrary()
//   _, _, err := fontLib.ParseAllFromPath("path/to/fonts")
//   if err != nil { ... }
//
// Then, you create a [TextArea] and configure it:
//   field := atxt.NewTextArea(nil)
//   field.Reset(fontLib.Default(), "Hello", image.Rect(8, 8, 120, 24), atxt.TopLeft, color.White)
//   field.EnableCursor(true)
//   field.SetCursorVisible(true)
//
// Finally, you draw it with a renderer on each frame:
//   field.Draw(atxt.NewTargetRenderer(screen))
//
// Text areas lay out single-byte (Latin-1) text with fixed size glyphs.
// There's no shaping, bidi or wrapping here; text that doesn't fit is
// clipped and scrolled to keep the cursor visible.
//
// [font.Library]: https://pkg.go.dev/github.com/tinne26/atxt/font
package atxt
