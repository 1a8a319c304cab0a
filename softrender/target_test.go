package softrender

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/phanxgames/alder"
)

var (
	red   = color.NRGBA{R: 255, A: 255}
	green = color.NRGBA{G: 255, A: 255}
	blue  = color.NRGBA{B: 255, A: 255}
	white = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
	clear = color.NRGBA{}
)

// tex2x2 is red/green on top, blue/white below.
func tex2x2() *Texture {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 0, green)
	img.SetNRGBA(0, 1, blue)
	img.SetNRGBA(1, 1, white)
	return NewTexture(img)
}

func whiteTex(w, h int) *Texture {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, white)
		}
	}
	return NewTexture(img)
}

func assertPixel(t *testing.T, img *image.NRGBA, x, y int, want color.NRGBA) {
	t.Helper()
	if got := img.NRGBAAt(x, y); got != want {
		t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got, want)
	}
}

func fullQuad(tex *Texture, m alder.Matrix) alder.Quad {
	w, h := tex.Size()
	return alder.Quad{
		Texture:   tex,
		Dst:       alder.Rect{Width: float64(w), Height: float64(h)},
		Src:       alder.Rect{Width: float64(w), Height: float64(h)},
		Tint:      alder.ColorWhite,
		Alpha:     1,
		Transform: m,
	}
}

// --- Target basics ---

func TestNewTargetTransparent(t *testing.T) {
	target := NewTarget(4, 4)
	assertPixel(t, target.Image(), 0, 0, clear)
	assertPixel(t, target.Image(), 3, 3, clear)
}

func TestClear(t *testing.T) {
	target := NewTarget(4, 4)
	target.Clear(red)
	assertPixel(t, target.Image(), 0, 0, red)
	assertPixel(t, target.Image(), 3, 3, red)
}

// --- DrawQuad ---

func TestDrawQuadIdentity(t *testing.T) {
	target := NewTarget(4, 4)
	target.DrawQuad(fullQuad(tex2x2(), alder.Identity()))

	img := target.Image()
	assertPixel(t, img, 0, 0, red)
	assertPixel(t, img, 1, 0, green)
	assertPixel(t, img, 0, 1, blue)
	assertPixel(t, img, 1, 1, white)
	assertPixel(t, img, 2, 0, clear)
	assertPixel(t, img, 2, 2, clear)
}

func TestDrawQuadTranslation(t *testing.T) {
	target := NewTarget(8, 8)
	target.DrawQuad(fullQuad(tex2x2(), alder.Identity().Trans(3, 2)))

	img := target.Image()
	assertPixel(t, img, 3, 2, red)
	assertPixel(t, img, 4, 3, white)
	assertPixel(t, img, 0, 0, clear)
	assertPixel(t, img, 2, 2, clear)
}

func TestDrawQuadRotation90(t *testing.T) {
	// A 2x1 strip rotated a quarter turn lands as a 1x2 column.
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, red)
	img.SetNRGBA(1, 0, green)
	tex := NewTexture(img)

	target := NewTarget(4, 4)
	target.DrawQuad(fullQuad(tex, alder.Identity().Trans(2, 0).RotDeg(90)))

	out := target.Image()
	assertPixel(t, out, 1, 0, red)
	assertPixel(t, out, 1, 1, green)
	assertPixel(t, out, 0, 0, clear)
	assertPixel(t, out, 2, 0, clear)
}

func TestDrawQuadScale(t *testing.T) {
	target := NewTarget(4, 4)
	target.DrawQuad(fullQuad(tex2x2(), alder.Identity().Scale(2, 2)))

	img := target.Image()
	// Each texel covers a 2x2 block.
	assertPixel(t, img, 0, 0, red)
	assertPixel(t, img, 1, 1, red)
	assertPixel(t, img, 2, 0, green)
	assertPixel(t, img, 3, 1, green)
	assertPixel(t, img, 0, 2, blue)
	assertPixel(t, img, 3, 3, white)
}

func TestDrawQuadSrcRect(t *testing.T) {
	target := NewTarget(2, 2)
	target.DrawQuad(alder.Quad{
		Texture:   tex2x2(),
		Dst:       alder.Rect{Width: 1, Height: 1},
		Src:       alder.Rect{X: 1, Y: 0, Width: 1, Height: 1},
		Tint:      alder.ColorWhite,
		Alpha:     1,
		Transform: alder.Identity(),
	})

	assertPixel(t, target.Image(), 0, 0, green)
	assertPixel(t, target.Image(), 1, 0, clear)
}

func TestDrawQuadTint(t *testing.T) {
	target := NewTarget(2, 2)
	q := fullQuad(whiteTex(2, 2), alder.Identity())
	q.Tint = alder.Color{R: 1, G: 0.5, B: 0}
	target.DrawQuad(q)

	assertPixel(t, target.Image(), 0, 0, color.NRGBA{R: 255, G: 128, B: 0, A: 255})
}

func TestDrawQuadAlphaBlend(t *testing.T) {
	target := NewTarget(2, 2)
	target.Clear(color.NRGBA{A: 255}) // opaque black

	q := fullQuad(whiteTex(2, 2), alder.Identity())
	q.Alpha = 0.5
	target.DrawQuad(q)

	// Straight source-over: 255*0.5 over black stays half bright.
	assertPixel(t, target.Image(), 0, 0, color.NRGBA{R: 128, G: 128, B: 128, A: 255})
}

func TestDrawQuadTransparentTexelsSkipped(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, red)
	// (1,0) stays fully transparent.
	tex := NewTexture(img)

	target := NewTarget(2, 2)
	target.Clear(blue)
	target.DrawQuad(fullQuad(tex, alder.Identity()))

	assertPixel(t, target.Image(), 0, 0, red)
	assertPixel(t, target.Image(), 1, 0, blue)
}

func TestDrawQuadDegenerateTransformSkipped(t *testing.T) {
	target := NewTarget(2, 2)
	target.DrawQuad(fullQuad(tex2x2(), alder.Identity().Scale(0, 0)))
	assertPixel(t, target.Image(), 0, 0, clear)
}

func TestDrawQuadForeignTextureSkipped(t *testing.T) {
	target := NewTarget(2, 2)
	target.DrawQuad(alder.Quad{
		Texture:   foreignTexture{},
		Dst:       alder.Rect{Width: 2, Height: 2},
		Src:       alder.Rect{Width: 2, Height: 2},
		Tint:      alder.ColorWhite,
		Alpha:     1,
		Transform: alder.Identity(),
	})
	assertPixel(t, target.Image(), 0, 0, clear)
}

type foreignTexture struct{}

func (foreignTexture) Size() (int, int) { return 2, 2 }

func TestDrawQuadOffscreenClipped(t *testing.T) {
	target := NewTarget(2, 2)
	// Mostly off the left edge; must not panic and must fill what's visible.
	target.DrawQuad(fullQuad(tex2x2(), alder.Identity().Trans(-1, 0)))

	assertPixel(t, target.Image(), 0, 0, green)
	assertPixel(t, target.Image(), 1, 0, clear)
}

// --- Sprite tree integration ---

func TestDrawSpriteTree(t *testing.T) {
	tex := tex2x2()
	parent := alder.NewSprite(tex)
	parent.Anchor = alder.Vec2{}
	parent.Position = alder.Vec2{X: 1, Y: 1}

	child := alder.NewSprite(tex)
	child.Anchor = alder.Vec2{}
	child.Position = alder.Vec2{X: 2, Y: 2}
	parent.AddChild(child)

	target := NewTarget(8, 8)
	parent.Draw(alder.Identity(), target)

	img := target.Image()
	assertPixel(t, img, 1, 1, red)   // parent top-left
	assertPixel(t, img, 3, 3, red)   // child top-left at parent-relative (2,2)
	assertPixel(t, img, 4, 4, white) // child bottom-right
	assertPixel(t, img, 0, 0, clear)
}

// --- Downsample ---

func TestDownsampleUniform(t *testing.T) {
	target := NewTarget(4, 4)
	target.Clear(red)

	out := target.Downsample(2, 2)
	if out.Bounds().Dx() != 2 || out.Bounds().Dy() != 2 {
		t.Fatalf("bounds = %v, want 2x2", out.Bounds())
	}
	assertPixel(t, out, 0, 0, red)
	assertPixel(t, out, 1, 1, red)
}

func TestDownsampleNoOpWhenSmall(t *testing.T) {
	target := NewTarget(2, 2)
	if out := target.Downsample(4, 4); out != target.Image() {
		t.Error("upscaling request should return the image unchanged")
	}
}

// --- Encoding ---

func TestEncodePNGRoundTrip(t *testing.T) {
	target := NewTarget(3, 3)
	target.Clear(green)

	var buf bytes.Buffer
	if err := target.EncodePNG(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	decoded, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if decoded.Bounds().Dx() != 3 || decoded.Bounds().Dy() != 3 {
		t.Errorf("decoded bounds = %v, want 3x3", decoded.Bounds())
	}
}

func TestEncodeWebP(t *testing.T) {
	target := NewTarget(3, 3)
	target.Clear(blue)

	var buf bytes.Buffer
	if err := target.EncodeWebP(&buf); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Error("WebP encoding should produce bytes")
	}
}

// --- Benchmarks ---

func BenchmarkDrawQuad64(b *testing.B) {
	target := NewTarget(128, 128)
	tex := whiteTex(64, 64)
	q := fullQuad(tex, alder.Identity().Trans(32, 32).RotDeg(30))
	b.ReportAllocs()
	for b.Loop() {
		target.DrawQuad(q)
	}
}
