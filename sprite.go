package alder

import (
	"github.com/google/uuid"
)

// Sprite is the scene graph node: a positioned, tintable, optionally animated
// textured quad that owns an ordered list of child sprites. There is no
// separate tree type — a root Sprite is the tree, and drawing or updating a
// subtree means calling the corresponding method on its root.
//
// A single flat struct is used for every node; transform and tint properties
// are exported fields, while state with invariants (identity, the children
// index, animation state) is kept behind methods.
//
// Sprites are not safe for concurrent use: all mutation and traversal of a
// tree must happen from one goroutine.
type Sprite struct {
	// Visible controls drawing. When false, Draw skips this sprite and its
	// entire subtree without submitting any quads.
	Visible bool

	// Anchor is the normalized pivot point for rotation, scale, flips, and
	// quad placement. {0, 0} is the top-left of the displayed region,
	// {1, 1} the bottom-right. Values outside [0, 1] are allowed.
	// Default is {0.5, 0.5}, the center.
	Anchor Vec2

	// Position, Rotation, and Scale form the local transform relative to
	// the parent's accumulated transform. Rotation is in degrees.
	Position Vec2
	Rotation float64
	Scale    Vec2

	// Color is the RGB tint and Opacity the alpha applied at draw time.
	// Opacity is independent of Color: a tinted draw overrides Color but
	// always keeps the sprite's own Opacity.
	Color   Color
	Opacity float64

	// FlipX and FlipY mirror only this sprite's own quad, not its
	// children, and do not alter Anchor. To flip anchor and children too,
	// negate Scale instead.
	FlipX bool
	FlipY bool

	id      uuid.UUID
	srcRect *Rect
	texture Texture

	// Animation state (see animation.go).
	frames     *FrameSet
	followup   string
	frameSets  map[string]FrameSet
	frameIdx   int
	frameDelta float64

	// Hierarchy. childIndex is always the exact inverse of children's
	// id→position relation; removal reindexes the tail to keep it so.
	children   []*Sprite
	childIndex map[uuid.UUID]int
}

// NewSprite creates a sprite displaying the full extent of tex.
// Panics if tex is nil.
func NewSprite(tex Texture) *Sprite {
	if tex == nil {
		panic("alder: sprite requires a texture")
	}
	return &Sprite{
		id:         uuid.New(),
		Visible:    true,
		Anchor:     Vec2{X: 0.5, Y: 0.5},
		Scale:      Vec2{X: 1, Y: 1},
		Color:      ColorWhite,
		Opacity:    1,
		texture:    tex,
		frameSets:  make(map[string]FrameSet),
		childIndex: make(map[uuid.UUID]int),
	}
}

// NewSpriteRect creates a sprite displaying the src sub-rectangle of tex.
// Panics if tex is nil.
func NewSpriteRect(tex Texture, src Rect) *Sprite {
	s := NewSprite(tex)
	s.srcRect = &src
	return s
}

// ID returns the sprite's id: unique across all sprites and immutable for
// the sprite's lifetime.
func (s *Sprite) ID() uuid.UUID {
	return s.id
}

// Texture returns the texture this sprite samples from.
func (s *Sprite) Texture() Texture {
	return s.texture
}

// SetTexture replaces the sprite's texture. The texture is shared, not
// owned: it may back any number of sprites and must outlive all of them.
// Panics if tex is nil.
func (s *Sprite) SetTexture(tex Texture) {
	if tex == nil {
		panic("alder: sprite requires a texture")
	}
	s.texture = tex
}

// SrcRect returns the explicit source rectangle and whether one is set.
// The explicit rectangle is only consulted while no frame set is playing.
func (s *Sprite) SrcRect() (Rect, bool) {
	if s.srcRect == nil {
		return Rect{}, false
	}
	return *s.srcRect, true
}

// SetSrcRect selects the sub-rectangle of the texture to display.
func (s *Sprite) SetSrcRect(src Rect) {
	s.srcRect = &src
}

// ClearSrcRect removes the explicit source rectangle, restoring the full
// texture extent.
func (s *Sprite) ClearSrcRect() {
	s.srcRect = nil
}

// --- Tree manipulation ---

// AddChild appends child to this sprite's children and returns the child's
// id. The parent owns its children exclusively: a sprite must belong to at
// most one parent at a time, and adding it to a second parent without
// removing it from the first corrupts both trees.
//
// Panics if child is nil, if child is this sprite or contains it (cycle),
// or if child is already a direct child of this sprite.
func (s *Sprite) AddChild(child *Sprite) uuid.UUID {
	if child == nil {
		panic("alder: cannot add nil child")
	}
	if child == s || child.Child(s.id) != nil {
		panic("alder: adding child would create a cycle")
	}
	if _, dup := s.childIndex[child.id]; dup {
		panic("alder: sprite is already a child of this sprite")
	}
	s.children = append(s.children, child)
	s.childIndex[child.id] = len(s.children) - 1
	if debugEnabled {
		debugCheckChildCount(s)
		debugCheckTreeHeight(s)
	}
	return child.id
}

// RemoveChild detaches and returns the sprite with the given id, searching
// this sprite's direct children first and then depth-first through the whole
// subtree. Returns nil if the id is nowhere in the subtree; "not found" is a
// normal outcome, not a fault.
func (s *Sprite) RemoveChild(id uuid.UUID) *Sprite {
	if idx, ok := s.childIndex[id]; ok {
		removed := s.children[idx]
		delete(s.childIndex, id)
		// Close the gap with copy+nil so the backing array doesn't retain
		// a dangling pointer, then reindex the shifted tail.
		copy(s.children[idx:], s.children[idx+1:])
		s.children[len(s.children)-1] = nil
		s.children = s.children[:len(s.children)-1]
		for i := idx; i < len(s.children); i++ {
			s.childIndex[s.children[i].id] = i
		}
		return removed
	}
	for _, child := range s.children {
		if removed := child.RemoveChild(id); removed != nil {
			return removed
		}
	}
	return nil
}

// Child returns the sprite with the given id, searching this sprite's direct
// children first (O(1) via the index) and then depth-first through the whole
// subtree. Returns nil if the id is nowhere in the subtree. The returned
// pointer is live: mutating it mutates the tree.
func (s *Sprite) Child(id uuid.UUID) *Sprite {
	if idx, ok := s.childIndex[id]; ok {
		return s.children[idx]
	}
	for _, child := range s.children {
		if found := child.Child(id); found != nil {
			return found
		}
	}
	return nil
}

// Children returns the ordered child list, which is also the draw order.
// The returned slice MUST NOT be mutated by the caller.
func (s *Sprite) Children() []*Sprite {
	return s.children
}

// NumChildren returns the number of direct children.
func (s *Sprite) NumChildren() int {
	return len(s.children)
}
