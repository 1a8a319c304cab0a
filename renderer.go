package alder

// Texture is the only capability the scene graph needs from a texture
// resource: its pixel dimensions. Concrete texture types live in the
// renderer backends (see the softrender and ebitenrender packages); the
// core never inspects pixels.
type Texture interface {
	// Size returns the texture's dimensions in pixels.
	Size() (width, height int)
}

// Quad is a single textured, tinted draw submitted to a Renderer during
// traversal.
type Quad struct {
	// Texture to sample from.
	Texture Texture

	// Dst is the quad's rectangle in model space, before Transform is
	// applied. For sprite quads this is the displayed region's size,
	// offset so the anchor sits at the model-space origin.
	Dst Rect

	// Src is the texture region to sample, in texture pixel space. It is
	// always resolved by the sprite (animation frame, explicit source
	// rectangle, or full texture extent) before submission.
	Src Rect

	// Tint is the RGB color modulation and Alpha the opacity, each in
	// [0, 1].
	Tint  Color
	Alpha float64

	// Transform maps model space into the render target's space.
	Transform Matrix
}

// Renderer rasterizes quads onto some target. Backends are free to skip
// degenerate quads (empty Src or Dst). Implementations must not retain q's
// Texture beyond the call.
type Renderer interface {
	DrawQuad(q Quad)
}
