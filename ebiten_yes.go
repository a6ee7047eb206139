//go:build !gtxt

package atxt

import "image"
import "image/color"
import "reflect"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/ebitenutil"
import lru "github.com/hashicorp/golang-lru"

// Alias to allow compiling the package without Ebitengine (gtxt version).
//
// Without Ebitengine, TargetImage defaults to [image/draw.Image].
type TargetImage = *ebiten.Image

// Number of font textures kept converted to GPU images by default.
const DefaultTextureCacheSize = 8

// The default [Renderer], drawing on a [TargetImage].
//
// With Ebitengine, font textures that are not already *ebiten.Image
// are converted on first use and kept in a small LRU cache. Evicted
// textures are disposed. Textures are used as cache keys, so they
// should be pointer-backed images, like the ones returned by the
// image package or [image.Decode](). Other textures are converted
// again on each draw.
type TargetRenderer struct {
	target TargetImage
	textures *lru.Cache
}

// Creates a renderer drawing on the given target.
func NewTargetRenderer(target TargetImage) *TargetRenderer {
	textures, err := lru.NewWithEvict(DefaultTextureCacheSize, disposeTexture)
	if err != nil { panic(err) } // only fails with non-positive sizes
	return &TargetRenderer{ target: target, textures: textures }
}

func disposeTexture(_, value interface{}) {
	value.(*ebiten.Image).Dispose()
}

// Sets the image to draw on. Typically called on each frame with
// the screen image.
func (self *TargetRenderer) SetTarget(target TargetImage) { self.target = target }

// Returns the image the renderer draws on.
func (self *TargetRenderer) Target() TargetImage { return self.target }

// Changes the number of converted textures that can be kept at once.
// Non-positive sizes are ignored.
func (self *TargetRenderer) SetTextureCacheSize(size int) {
	if size <= 0 { return }
	self.textures.Resize(size)
}

// Implements [Renderer].
func (self *TargetRenderer) DrawTexturedRect(screenRect image.Rectangle, texture image.Image, textureRect image.Rectangle, clr color.Color) {
	if screenRect.Empty() || texture == nil { return }
	source := self.ebitenTexture(texture)
	glyph := source.SubImage(textureRect).(*ebiten.Image)

	opts := ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(screenRect.Min.X), float64(screenRect.Min.Y))
	opts.ColorM.Scale(colorToFloat64(clr))
	self.target.DrawImage(glyph, &opts)
}

// Implements [Renderer].
func (self *TargetRenderer) DrawFilledRect(screenRect image.Rectangle, clr color.Color) {
	if screenRect.Empty() { return }
	x, y := float64(screenRect.Min.X), float64(screenRect.Min.Y)
	ebitenutil.DrawRect(self.target, x, y, float64(screenRect.Dx()), float64(screenRect.Dy()), clr)
}

func (self *TargetRenderer) ebitenTexture(texture image.Image) *ebiten.Image {
	if img, isEbiten := texture.(*ebiten.Image); isEbiten { return img }
	if !isCacheableTexture(texture) {
		// converted on each draw, left to the garbage collector
		return ebiten.NewImageFromImageWithOptions(texture, &ebiten.NewImageFromImageOptions{ PreserveBounds: true })
	}
	if cached, found := self.textures.Get(texture); found {
		return cached.(*ebiten.Image)
	}
	img := ebiten.NewImageFromImageWithOptions(texture, &ebiten.NewImageFromImageOptions{ PreserveBounds: true })
	self.textures.Add(texture, img)
	return img
}

// Textures are cache keys, so only comparable dynamic types
// (typically pointers, like *image.RGBA) can be cached.
func isCacheableTexture(texture image.Image) bool {
	return reflect.TypeOf(texture).Comparable()
}

// Convert a color to its float64 [0, 1.0] components.
func colorToFloat64(subject color.Color) (float64, float64, float64, float64) {
	rgbaColor, isRGBA := subject.(color.RGBA)
	if isRGBA {
		r, g, b, a := rgbaColor.R, rgbaColor.G, rgbaColor.B, rgbaColor.A
		return float64(r)/255, float64(g)/255, float64(b)/255, float64(a)/255
	} else {
		r, g, b, a := subject.RGBA()
		return float64(r)/65535, float64(g)/65535, float64(b)/65535, float64(a)/65535
	}
}
