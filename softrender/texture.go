// Package softrender rasterizes sprite quads on the CPU into an
// image.NRGBA, with no GPU or window system involved. It exists for
// headless tools and tests: render a tree with the same traversal a game
// would use, then encode the result to PNG or WebP.
//
// Quality is deliberately simple — nearest-neighbor sampling and straight
// source-over blending — so output is deterministic across platforms.
// Render at a multiple of the final size and use Target.Downsample for
// smooth edges.
package softrender

import (
	"image"
	"image/draw"
)

// Texture wraps pixel data for CPU sampling. It satisfies the render
// Texture capability of the sprite tree.
type Texture struct {
	img *image.NRGBA
}

// NewTexture wraps img, converting to NRGBA if needed. When img is already
// an *image.NRGBA anchored at the origin it is used directly, not copied;
// the caller must not mutate it while sprites draw from it.
func NewTexture(img image.Image) *Texture {
	return &Texture{img: toNRGBA(img)}
}

// Size returns the texture's dimensions in pixels.
func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the backing NRGBA image.
func (t *Texture) Image() *image.NRGBA {
	return t.img
}

// toNRGBA converts any image to NRGBA anchored at (0, 0). The sampler
// indexes Pix with raw x/y offsets, so a sub-image's shifted bounds must
// not survive the conversion.
func toNRGBA(src image.Image) *image.NRGBA {
	if n, ok := src.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}
	b := src.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), src, b.Min, draw.Src)
	return dst
}
