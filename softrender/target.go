package softrender

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"
	"os"

	"github.com/HugoSmits86/nativewebp"
	xdraw "golang.org/x/image/draw"

	"github.com/phanxgames/alder"
)

// Target is a CPU render target. It implements the sprite tree's Renderer
// capability: pass it to Draw/DrawTinted and read the result with Image or
// one of the encode methods.
//
// Only textures created by this package can be sampled; quads carrying any
// other Texture implementation are skipped.
type Target struct {
	img *image.NRGBA
}

// NewTarget creates a fully transparent render target.
func NewTarget(width, height int) *Target {
	return &Target{img: image.NewNRGBA(image.Rect(0, 0, width, height))}
}

// Clear fills the whole target with c, replacing existing pixels.
func (t *Target) Clear(c color.NRGBA) {
	draw.Draw(t.img, t.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// Image returns the backing NRGBA image. The target keeps drawing into it.
func (t *Target) Image() *image.NRGBA {
	return t.img
}

// DrawQuad rasterizes one textured quad with nearest-neighbor sampling and
// straight source-over blending.
//
// This is the hot path: the per-pixel loop allocates nothing and steps the
// inverse transform incrementally across each row.
func (t *Target) DrawQuad(q alder.Quad) {
	tex, ok := q.Texture.(*Texture)
	if !ok || tex == nil {
		return
	}
	if q.Src.Empty() || q.Dst.Empty() || q.Alpha <= 0 {
		return
	}

	m := q.Transform
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return
	}
	inv := m.Invert()

	// Screen bounding box of the transformed quad corners.
	x0, y0 := m.Apply(q.Dst.X, q.Dst.Y)
	x1, y1 := m.Apply(q.Dst.X+q.Dst.Width, q.Dst.Y)
	x2, y2 := m.Apply(q.Dst.X, q.Dst.Y+q.Dst.Height)
	x3, y3 := m.Apply(q.Dst.X+q.Dst.Width, q.Dst.Y+q.Dst.Height)

	minX := int(math.Floor(min4(x0, x1, x2, x3)))
	maxX := int(math.Ceil(max4(x0, x1, x2, x3)))
	minY := int(math.Floor(min4(y0, y1, y2, y3)))
	maxY := int(math.Ceil(max4(y0, y1, y2, y3)))

	bounds := t.img.Bounds()
	if minX < bounds.Min.X {
		minX = bounds.Min.X
	}
	if maxX > bounds.Max.X {
		maxX = bounds.Max.X
	}
	if minY < bounds.Min.Y {
		minY = bounds.Min.Y
	}
	if maxY > bounds.Max.Y {
		maxY = bounds.Max.Y
	}
	if minX >= maxX || minY >= maxY {
		return
	}

	texImg := tex.img
	texW := texImg.Bounds().Dx()
	texH := texImg.Bounds().Dy()
	texPix := texImg.Pix
	texStride := texImg.Stride

	dstPix := t.img.Pix
	dstStride := t.img.Stride

	// Map a Dst-local point to texel coordinates.
	uScale := q.Src.Width / q.Dst.Width
	vScale := q.Src.Height / q.Dst.Height

	for sy := minY; sy < maxY; sy++ {
		// Sample at pixel centers; the inverse transform advances by
		// (inv[0], inv[1]) per pixel along the row.
		lx, ly := inv.Apply(float64(minX)+0.5, float64(sy)+0.5)
		rowOff := sy * dstStride
		for sx := minX; sx < maxX; sx++ {
			if lx >= q.Dst.X && lx < q.Dst.X+q.Dst.Width &&
				ly >= q.Dst.Y && ly < q.Dst.Y+q.Dst.Height {

				// Source rects outside the texture clamp to its edge.
				tx := int(q.Src.X + (lx-q.Dst.X)*uScale)
				ty := int(q.Src.Y + (ly-q.Dst.Y)*vScale)
				if tx < 0 {
					tx = 0
				} else if tx >= texW {
					tx = texW - 1
				}
				if ty < 0 {
					ty = 0
				} else if ty >= texH {
					ty = texH - 1
				}

				ti := ty*texStride + tx*4
				sa := float64(texPix[ti+3]) / 255 * q.Alpha
				if sa > 0 {
					sr := float64(texPix[ti]) * q.Tint.R
					sg := float64(texPix[ti+1]) * q.Tint.G
					sb := float64(texPix[ti+2]) * q.Tint.B

					di := rowOff + sx*4
					da := float64(dstPix[di+3]) / 255
					outA := sa + da*(1-sa)
					if outA > 0 {
						invA := 1 / outA
						dstPix[di] = clamp8((sr*sa + float64(dstPix[di])*da*(1-sa)) * invA)
						dstPix[di+1] = clamp8((sg*sa + float64(dstPix[di+1])*da*(1-sa)) * invA)
						dstPix[di+2] = clamp8((sb*sa + float64(dstPix[di+2])*da*(1-sa)) * invA)
						dstPix[di+3] = clamp8(outA * 255)
					}
				}
			}
			lx += inv[0]
			ly += inv[1]
		}
	}
}

// Downsample shrinks the rendered image to width x height with
// premultiplied-alpha-aware CatmullRom filtering. Premultiplying before the
// scale prevents dark halo artifacts at transparent edges. The target
// itself is unchanged; render supersampled, then call this for the final
// smooth image.
func (t *Target) Downsample(width, height int) *image.NRGBA {
	b := t.img.Bounds()
	if b.Dx() <= width && b.Dy() <= height {
		return t.img
	}

	premul := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			si := t.img.PixOffset(x, y)
			di := premul.PixOffset(x, y)
			a := float64(t.img.Pix[si+3]) / 255.0
			premul.Pix[di] = uint8(float64(t.img.Pix[si])*a + 0.5)
			premul.Pix[di+1] = uint8(float64(t.img.Pix[si+1])*a + 0.5)
			premul.Pix[di+2] = uint8(float64(t.img.Pix[si+2])*a + 0.5)
			premul.Pix[di+3] = t.img.Pix[si+3]
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), premul, premul.Bounds(), xdraw.Src, nil)

	result := image.NewNRGBA(dst.Bounds())
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			si := dst.PixOffset(x, y)
			di := result.PixOffset(x, y)
			a := float64(dst.Pix[si+3])
			if a > 1 {
				inv := 255.0 / a
				result.Pix[di] = clamp8(float64(dst.Pix[si]) * inv)
				result.Pix[di+1] = clamp8(float64(dst.Pix[si+1]) * inv)
				result.Pix[di+2] = clamp8(float64(dst.Pix[si+2]) * inv)
			}
			result.Pix[di+3] = dst.Pix[si+3]
		}
	}
	return result
}

// EncodePNG writes the rendered image as PNG.
func (t *Target) EncodePNG(w io.Writer) error {
	return png.Encode(w, t.img)
}

// EncodeWebP writes the rendered image as lossless WebP.
func (t *Target) EncodeWebP(w io.Writer) error {
	return nativewebp.Encode(w, t.img, nil)
}

// SavePNG writes the rendered image to a PNG file.
func (t *Target) SavePNG(path string) error {
	return t.save(path, t.EncodePNG)
}

// SaveWebP writes the rendered image to a lossless WebP file.
func (t *Target) SaveWebP(path string) error {
	return t.save(path, t.EncodeWebP)
}

func (t *Target) save(path string, encode func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("softrender: create %s: %w", path, err)
	}
	if err := encode(f); err != nil {
		f.Close()
		return fmt.Errorf("softrender: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("softrender: close %s: %w", path, err)
	}
	return nil
}

func min4(a, b, c, d float64) float64 {
	return math.Min(math.Min(a, b), math.Min(c, d))
}

func max4(a, b, c, d float64) float64 {
	return math.Max(math.Max(a, b), math.Max(c, d))
}

func clamp8(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
