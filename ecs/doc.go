// Package ecs provides ECS adapters for alder sprite trees.
//
// The primary adapter is [SpriteComponent], which stores a sprite tree on a
// [Donburi] entity. [UpdateSprites] and [DrawSprites] are ready-made
// systems: call them from your game's Update and Draw to animate and render
// every entity carrying the component.
//
// Usage:
//
//	entry := world.Entry(world.Create(ecs.SpriteComponent))
//	ecs.SpriteComponent.SetValue(entry, ecs.SpriteData{Root: hero})
//
//	// each frame
//	ecs.UpdateSprites(world, dt)
//	ecs.DrawSprites(world, alder.Identity(), target)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
