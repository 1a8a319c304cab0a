package alder

// Color is an RGB tint with components in [0, 1]. Alpha is deliberately not
// part of Color: a sprite's opacity is tracked separately so that a tint
// override (see [Sprite.DrawTinted]) never changes how transparent a sprite
// is. Components outside [0, 1] are passed to the renderer as-is.
type Color struct {
	R, G, B float64
}

// ColorWhite is the default tint (no color modification).
var ColorWhite = Color{1, 1, 1}

// Vec2 is a 2D vector used for positions, anchors, scale factors, and sizes
// throughout the API.
type Vec2 struct {
	X, Y float64
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward. Source rectangles address texture
// pixel space; bounding boxes use the owning sprite's local space.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Intersects reports whether r and other overlap.
// Adjacent rectangles (sharing only an edge) are considered intersecting.
func (r Rect) Intersects(other Rect) bool {
	return r.X <= other.X+other.Width &&
		r.X+r.Width >= other.X &&
		r.Y <= other.Y+other.Height &&
		r.Y+r.Height >= other.Y
}

// Empty reports whether the rectangle has zero or negative area. Empty source
// rectangles produce degenerate quads that renderers are free to skip.
func (r Rect) Empty() bool {
	return r.Width <= 0 || r.Height <= 0
}
