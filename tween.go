package alder

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// TweenGroup animates up to 3 float64 fields on a Sprite simultaneously.
// Create one via the convenience constructors (TweenPosition, TweenScale,
// TweenColor, TweenOpacity, TweenRotation) and call Update(dt) each frame;
// the group writes the interpolated values straight into the sprite's
// fields.
//
// There is no global animation manager — users call Update themselves.
type TweenGroup struct {
	tweens [3]*gween.Tween
	count  int
	fields [3]*float64
	Done   bool
}

// Update advances all tweens by dt seconds and writes the interpolated
// values to the target fields. Once every tween has finished, Done is set
// and further calls are no-ops.
func (g *TweenGroup) Update(dt float32) {
	if g.Done {
		return
	}

	allDone := true
	for i := 0; i < g.count; i++ {
		val, finished := g.tweens[i].Update(dt)
		*g.fields[i] = float64(val)
		if !finished {
			allDone = false
		}
	}
	g.Done = allDone
}

// TweenPosition creates a TweenGroup that animates s.Position to the given
// target coordinates over the specified duration using the easing function.
func TweenPosition(s *Sprite, toX, toY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(s.Position.X), float32(toX), duration, fn)
	g.tweens[1] = gween.New(float32(s.Position.Y), float32(toY), duration, fn)
	g.fields[0] = &s.Position.X
	g.fields[1] = &s.Position.Y
	return g
}

// TweenScale creates a TweenGroup that animates s.Scale to the given target
// factors over the specified duration using the easing function.
func TweenScale(s *Sprite, toSX, toSY float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 2}
	g.tweens[0] = gween.New(float32(s.Scale.X), float32(toSX), duration, fn)
	g.tweens[1] = gween.New(float32(s.Scale.Y), float32(toSY), duration, fn)
	g.fields[0] = &s.Scale.X
	g.fields[1] = &s.Scale.Y
	return g
}

// TweenColor creates a TweenGroup that animates all three components of
// s.Color to the target color over the specified duration. Opacity is a
// separate field; tween it with TweenOpacity.
func TweenColor(s *Sprite, to Color, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 3}
	g.tweens[0] = gween.New(float32(s.Color.R), float32(to.R), duration, fn)
	g.tweens[1] = gween.New(float32(s.Color.G), float32(to.G), duration, fn)
	g.tweens[2] = gween.New(float32(s.Color.B), float32(to.B), duration, fn)
	g.fields[0] = &s.Color.R
	g.fields[1] = &s.Color.G
	g.fields[2] = &s.Color.B
	return g
}

// TweenOpacity creates a TweenGroup that animates s.Opacity to the target
// value over the specified duration using the easing function.
func TweenOpacity(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(s.Opacity), float32(to), duration, fn)
	g.fields[0] = &s.Opacity
	return g
}

// TweenRotation creates a TweenGroup that animates s.Rotation to the target
// angle in degrees over the specified duration using the easing function.
func TweenRotation(s *Sprite, to float64, duration float32, fn ease.TweenFunc) *TweenGroup {
	g := &TweenGroup{count: 1}
	g.tweens[0] = gween.New(float32(s.Rotation), float32(to), duration, fn)
	g.fields[0] = &s.Rotation
	return g
}
