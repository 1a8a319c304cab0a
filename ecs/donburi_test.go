package ecs

import (
	"testing"

	"github.com/yohamta/donburi"

	"github.com/phanxgames/alder"
)

type stubTexture struct{ w, h int }

func (t stubTexture) Size() (int, int) { return t.w, t.h }

// recordRenderer collects submitted quads so tests can inspect what the
// draw systems emitted.
type recordRenderer struct {
	quads []alder.Quad
}

func (r *recordRenderer) DrawQuad(q alder.Quad) {
	r.quads = append(r.quads, q)
}

func newAnimatedSprite() *alder.Sprite {
	s := alder.NewSprite(stubTexture{w: 48, h: 16})
	s.AddFrameSetHorizontal("walk", true, 0.1, alder.Rect{Width: 16, Height: 16}, 3)
	s.Play("walk", "")
	return s
}

func TestSpriteComponentRoundTrip(t *testing.T) {
	world := donburi.NewWorld()
	root := alder.NewSprite(stubTexture{w: 8, h: 8})

	entry := world.Entry(world.Create(SpriteComponent))
	SpriteComponent.SetValue(entry, SpriteData{Root: root})

	if got := SpriteComponent.Get(entry).Root; got != root {
		t.Fatalf("Get returned %p, want %p", got, root)
	}
}

func TestUpdateSpritesAdvancesAnimation(t *testing.T) {
	world := donburi.NewWorld()
	s := newAnimatedSprite()
	entry := world.Entry(world.Create(SpriteComponent))
	SpriteComponent.SetValue(entry, SpriteData{Root: s})

	UpdateSprites(world, 0.1)

	rec := &recordRenderer{}
	s.Draw(alder.Identity(), rec)
	if len(rec.quads) != 1 {
		t.Fatalf("quads = %d, want 1", len(rec.quads))
	}
	if got := rec.quads[0].Src.X; got != 16 {
		t.Errorf("frame src X after update = %v, want 16", got)
	}
}

func TestUpdateSpritesRecursesChildren(t *testing.T) {
	world := donburi.NewWorld()
	parent := newAnimatedSprite()
	child := newAnimatedSprite()
	parent.AddChild(child)

	entry := world.Entry(world.Create(SpriteComponent))
	SpriteComponent.SetValue(entry, SpriteData{Root: parent})

	UpdateSprites(world, 0.1)

	rec := &recordRenderer{}
	parent.Draw(alder.Identity(), rec)
	if len(rec.quads) != 2 {
		t.Fatalf("quads = %d, want 2", len(rec.quads))
	}
	// Parent first, then child; both advanced one frame.
	for i, q := range rec.quads {
		if q.Src.X != 16 {
			t.Errorf("quad %d src X = %v, want 16", i, q.Src.X)
		}
	}
}

func TestDrawSpritesDrawsAllEntities(t *testing.T) {
	world := donburi.NewWorld()
	for i := 0; i < 3; i++ {
		entry := world.Entry(world.Create(SpriteComponent))
		s := alder.NewSprite(stubTexture{w: 8, h: 8})
		s.Position = alder.Vec2{X: float64(i) * 10}
		SpriteComponent.SetValue(entry, SpriteData{Root: s})
	}

	rec := &recordRenderer{}
	DrawSprites(world, alder.Identity(), rec)

	if len(rec.quads) != 3 {
		t.Fatalf("quads = %d, want 3", len(rec.quads))
	}
}

func TestDrawSpritesAppliesParentTransform(t *testing.T) {
	world := donburi.NewWorld()
	s := alder.NewSprite(stubTexture{w: 8, h: 8})
	s.Position = alder.Vec2{X: 5, Y: 7}
	entry := world.Entry(world.Create(SpriteComponent))
	SpriteComponent.SetValue(entry, SpriteData{Root: s})

	rec := &recordRenderer{}
	DrawSprites(world, alder.Identity().Trans(100, 200), rec)

	if len(rec.quads) != 1 {
		t.Fatalf("quads = %d, want 1", len(rec.quads))
	}
	m := rec.quads[0].Transform
	if m[4] != 105 || m[5] != 207 {
		t.Errorf("transform translation = (%v, %v), want (105, 207)", m[4], m[5])
	}
}

func TestSystemsSkipNilRoot(t *testing.T) {
	world := donburi.NewWorld()
	world.Create(SpriteComponent) // zero SpriteData

	UpdateSprites(world, 0.1)

	rec := &recordRenderer{}
	DrawSprites(world, alder.Identity(), rec)
	if len(rec.quads) != 0 {
		t.Errorf("quads = %d, want 0", len(rec.quads))
	}
}
