// Package alder is a hierarchical 2D sprite library with frame-set
// animation, built for [Ebitengine] but renderer-agnostic at its core.
//
// Alder provides the sprite tree, anchored transforms, flip mirroring,
// color/opacity tinting, and delta-timed flipbook animation that 2D games
// and tools need, without owning the game loop or the GPU.
//
// # Sprites
//
// Every visual element is a [Sprite] bound to a [Texture]. Sprites form a
// tree: children inherit their parent's position, rotation, and scale, and
// draw after it in insertion order.
//
//	hero := alder.NewSprite(tex)
//	hero.Position = alder.Vec2{X: 100, Y: 50}
//
//	hat := alder.NewSprite(hatTex)
//	hat.Position = alder.Vec2{Y: -12}
//	hero.AddChild(hat)
//
// Anchors are normalized: {0.5, 0.5} (the default) keeps the sprite
// centered on its position, {0, 0} hangs it from its top-left corner.
//
// # Animation
//
// Named [FrameSet] clips flip through source rectangles on the sprite's
// texture. Register clips once, then drive them with [Sprite.Play] and
// [Sprite.Update]:
//
//	hero.AddFrameSetHorizontal("run", true, 0.1, alder.Rect{Width: 32, Height: 32}, 6)
//	hero.AddFrameSetHorizontal("jump", false, 0.08, alder.Rect{Y: 32, Width: 32, Height: 32}, 4)
//
//	hero.Play("jump", "run") // jump once, then keep running
//
//	// each frame:
//	hero.Update(dt)
//	hero.Draw(alder.Identity(), target)
//
// # Rendering
//
// Drawing traverses the tree and submits [Quad] values to a [Renderer].
// The ebitenrender package rasterizes quads onto an *ebiten.Image for
// games; the softrender package rasterizes on the CPU for headless tools
// and tests. Field tweens (via [gween]) live alongside in this package,
// and the ecs module adapts sprites to [Donburi] worlds.
//
// [Ebitengine]: https://ebitengine.org
// [gween]: https://github.com/tanema/gween
// [Donburi]: https://github.com/yohamta/donburi
package alder
