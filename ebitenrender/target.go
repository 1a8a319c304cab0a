package ebitenrender

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/phanxgames/alder"
)

// Target draws quads onto an ebiten.Image. It implements the sprite tree's
// Renderer capability; pass it to Sprite.Draw or Sprite.DrawTinted.
//
// A Target reuses one DrawImageOptions across calls, so it must not be
// shared between goroutines. Ebitengine restricts drawing to the game loop
// anyway, which makes this a non-issue in practice.
type Target struct {
	img *ebiten.Image
	op  ebiten.DrawImageOptions
}

// NewTarget wraps dst, typically the screen passed to a game's Draw
// callback or an offscreen ebiten.NewImage.
func NewTarget(dst *ebiten.Image) *Target {
	return &Target{img: dst}
}

// Image returns the destination image.
func (t *Target) Image() *ebiten.Image {
	return t.img
}

// DrawQuad renders one quad with DrawImage. Quads whose texture did not
// come from this package, whose source or destination is empty, or whose
// alpha is zero are skipped.
func (t *Target) DrawQuad(q alder.Quad) {
	tex, ok := q.Texture.(*Texture)
	if !ok || tex == nil {
		return
	}
	if q.Src.Empty() || q.Dst.Empty() || q.Alpha <= 0 {
		return
	}

	// SubImage coordinates live in the wrapped image's own space, which
	// starts at Bounds().Min when that image is itself a sub-image.
	b := tex.img.Bounds()
	sub := tex.img.SubImage(image.Rect(
		b.Min.X+int(q.Src.X),
		b.Min.Y+int(q.Src.Y),
		b.Min.X+int(q.Src.X+q.Src.Width),
		b.Min.Y+int(q.Src.Y+q.Src.Height),
	)).(*ebiten.Image)

	op := &t.op
	op.GeoM.Reset()
	// Dst and Src share dimensions for plain sprite quads; the scale only
	// kicks in when a caller stretches a region.
	if q.Dst.Width != q.Src.Width || q.Dst.Height != q.Src.Height {
		op.GeoM.Scale(q.Dst.Width/q.Src.Width, q.Dst.Height/q.Src.Height)
	}
	op.GeoM.Translate(q.Dst.X, q.Dst.Y)
	op.GeoM.Concat(geoM(q.Transform))

	// Ebitengine's ColorScale is premultiplied.
	op.ColorScale.Reset()
	a := float32(q.Alpha)
	op.ColorScale.Scale(float32(q.Tint.R)*a, float32(q.Tint.G)*a, float32(q.Tint.B)*a, a)

	t.img.DrawImage(sub, op)
}

// geoM converts a sprite-tree affine matrix to the equivalent ebiten.GeoM.
func geoM(m alder.Matrix) ebiten.GeoM {
	var g ebiten.GeoM
	g.SetElement(0, 0, m[0])
	g.SetElement(1, 0, m[1])
	g.SetElement(0, 1, m[2])
	g.SetElement(1, 1, m[3])
	g.SetElement(0, 2, m[4])
	g.SetElement(1, 2, m[5])
	return g
}
