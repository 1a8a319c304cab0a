// Package ebitenrender draws sprite quads onto an [ebiten.Image] through
// Ebitengine's DrawImage pipeline. It is the backend games use from their
// Draw callback: wrap the screen in a Target each frame and hand it to the
// sprite tree.
//
// Source regions become SubImages of the wrapped texture, so sprites that
// share an atlas page batch well inside Ebitengine.
package ebitenrender

import (
	"github.com/hajimehoshi/ebiten/v2"
)

// Texture wraps an [ebiten.Image] for GPU drawing. It satisfies the render
// Texture capability of the sprite tree.
type Texture struct {
	img *ebiten.Image
}

// NewTexture wraps img. The image is not copied; wrap an atlas page once
// and share the Texture across every sprite that draws from it.
func NewTexture(img *ebiten.Image) *Texture {
	return &Texture{img: img}
}

// Size returns the texture's dimensions in pixels.
func (t *Texture) Size() (int, int) {
	b := t.img.Bounds()
	return b.Dx(), b.Dy()
}

// Image returns the wrapped ebiten.Image.
func (t *Texture) Image() *ebiten.Image {
	return t.img
}
