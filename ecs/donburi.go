package ecs

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"github.com/phanxgames/alder"
)

// SpriteData attaches a sprite tree to an entity. Systems address the whole
// tree through its root; a nil Root is skipped.
type SpriteData struct {
	Root *alder.Sprite
}

// SpriteComponent is the Donburi component type for SpriteData.
var SpriteComponent = donburi.NewComponentType[SpriteData]()

var spriteQuery = donburi.NewQuery(filter.Contains(SpriteComponent))

// UpdateSprites advances animation for every entity carrying a
// SpriteComponent, recursing through each tree so child animations run
// without per-child bookkeeping. dt is the frame delta in seconds.
func UpdateSprites(world donburi.World, dt float64) {
	spriteQuery.Each(world, func(entry *donburi.Entry) {
		if data := SpriteComponent.Get(entry); data.Root != nil {
			updateTree(data.Root, dt)
		}
	})
}

func updateTree(s *alder.Sprite, dt float64) {
	s.Update(dt)
	for _, child := range s.Children() {
		updateTree(child, dt)
	}
}

// DrawSprites draws every entity's sprite tree under the parent transform t,
// usually a camera or view matrix. Donburi stores entities per archetype,
// not in insertion order; when stacking between entities matters, split the
// layers into separate worlds or draw calls.
func DrawSprites(world donburi.World, t alder.Matrix, r alder.Renderer) {
	spriteQuery.Each(world, func(entry *donburi.Entry) {
		if data := SpriteComponent.Get(entry); data.Root != nil {
			data.Root.Draw(t, r)
		}
	})
}
