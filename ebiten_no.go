//go:build gtxt

package atxt

import "image"
import "image/draw"
import "image/color"

type TargetImage = draw.Image

// The default [Renderer], drawing on a [TargetImage].
//
// Without Ebitengine, glyphs are drawn by using the alpha of the
// font texture as a mask over the text color.
type TargetRenderer struct {
	target TargetImage
}

// Creates a renderer drawing on the given target.
func NewTargetRenderer(target TargetImage) *TargetRenderer {
	return &TargetRenderer{ target: target }
}

// Sets the image to draw on.
func (self *TargetRenderer) SetTarget(target TargetImage) { self.target = target }

// Returns the image the renderer draws on.
func (self *TargetRenderer) Target() TargetImage { return self.target }

// Implements [Renderer].
func (self *TargetRenderer) DrawTexturedRect(screenRect image.Rectangle, texture image.Image, textureRect image.Rectangle, clr color.Color) {
	if screenRect.Empty() || texture == nil { return }
	draw.DrawMask(self.target, screenRect, image.NewUniform(clr), image.Point{}, texture, textureRect.Min, draw.Over)
}

// Implements [Renderer].
func (self *TargetRenderer) DrawFilledRect(screenRect image.Rectangle, clr color.Color) {
	if screenRect.Empty() { return }
	draw.Draw(self.target, screenRect, image.NewUniform(clr), image.Point{}, draw.Over)
}
