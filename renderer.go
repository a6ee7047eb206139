package atxt

import "image"
import "image/color"

// The drawing backend used by [TextArea.Draw](). The package provides
// [TargetRenderer] as the default implementation, but any graphics
// backend able to draw textured and filled rectangles can be used.
//
// Rects are given in screen coordinates. Screen and texture rects
// passed to DrawTexturedRect always have the same size.
type Renderer interface {
	DrawTexturedRect(screenRect image.Rectangle, texture image.Image, textureRect image.Rectangle, clr color.Color)
	DrawFilledRect(screenRect image.Rectangle, clr color.Color)
}
