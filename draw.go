package alder

// Draw submits this sprite's quad in its own color and opacity, then draws
// all children in insertion order. t is the parent's accumulated transform;
// pass Identity() for a root sprite.
//
// An invisible sprite contributes nothing and its subtree is skipped
// entirely.
func (s *Sprite) Draw(t Matrix, r Renderer) {
	if !s.Visible {
		return
	}
	accum := s.accumTransform(t)
	s.submitQuad(accum, r, s.Color)
	for _, child := range s.children {
		child.Draw(accum, r)
	}
}

// DrawTinted is Draw with the sprite's own color replaced by tint. The same
// tint overrides every sprite in the subtree; opacities still come from each
// sprite individually.
func (s *Sprite) DrawTinted(t Matrix, r Renderer, tint Color) {
	if !s.Visible {
		return
	}
	accum := s.accumTransform(t)
	s.submitQuad(accum, r, tint)
	for _, child := range s.children {
		child.DrawTinted(accum, r, tint)
	}
}

// accumTransform extends the parent's accumulated transform with this
// sprite's position, rotation, and scale, in that order. Flips are not part
// of it: they mirror this sprite's own quad only and never reach children.
func (s *Sprite) accumTransform(parent Matrix) Matrix {
	return parent.
		Trans(s.Position.X, s.Position.Y).
		RotDeg(s.Rotation).
		Scale(s.Scale.X, s.Scale.Y)
}

// displayTransform derives the transform for this sprite's own quad from the
// accumulated transform. Each enabled flip mirrors the quad onto its own
// footprint: the region it covers stays put while the image inside reverses.
func (s *Sprite) displayTransform(accum Matrix, src Rect) Matrix {
	m := accum
	if s.FlipX {
		m = m.Trans(src.Width-2*s.Anchor.X*src.Width, 0).FlipH()
	}
	if s.FlipY {
		m = m.Trans(0, src.Height-2*s.Anchor.Y*src.Height).FlipV()
	}
	return m
}

// activeSourceRect resolves the texture region the sprite displays right
// now: the current animation frame if a frame set is playing, else the
// explicit source rectangle if one is set, else the full texture.
func (s *Sprite) activeSourceRect() Rect {
	if s.frames != nil {
		return s.frames.Frames[s.frameIdx]
	}
	if s.srcRect != nil {
		return *s.srcRect
	}
	w, h := s.texture.Size()
	return Rect{Width: float64(w), Height: float64(h)}
}

func (s *Sprite) submitQuad(accum Matrix, r Renderer, tint Color) {
	src := s.activeSourceRect()
	ax := s.Anchor.X * src.Width
	ay := s.Anchor.Y * src.Height
	r.DrawQuad(Quad{
		Texture:   s.texture,
		Dst:       Rect{X: -ax, Y: -ay, Width: src.Width, Height: src.Height},
		Src:       src,
		Tint:      tint,
		Alpha:     s.Opacity,
		Transform: s.displayTransform(accum, src),
	})
}

// BoundingBox returns the sprite's own axis-aligned bounds in its parent's
// coordinate space, from its position, anchor, scale, and displayed region.
// Rotation, flips, and children are not considered.
func (s *Sprite) BoundingBox() Rect {
	src := s.activeSourceRect()
	w := src.Width * s.Scale.X
	h := src.Height * s.Scale.Y
	return Rect{
		X:      s.Position.X - s.Anchor.X*w,
		Y:      s.Position.Y - s.Anchor.Y*h,
		Width:  w,
		Height: h,
	}
}
