package alder

// FrameSet is an animation clip: an ordered, non-empty sequence of source
// rectangles displayed for FrameTime seconds each. Frame sets are registered
// by name on a sprite and treated as immutable from then on.
type FrameSet struct {
	// Repeat loops the clip back to frame 0 after its last frame instead
	// of freezing there. A pending followup takes precedence over Repeat.
	Repeat bool

	// FrameTime is how long each frame is displayed, in seconds.
	FrameTime float64

	// Frames holds one source rectangle per animation frame, in texture
	// pixel space.
	Frames []Rect
}

// AddFrameSet registers a named clip on this sprite. The first registration
// of a name wins; later calls with the same name are ignored. Registered
// clips are never removed. The frames slice is retained, not copied; the
// caller must not modify it afterwards.
//
// Panics if frames is empty.
func (s *Sprite) AddFrameSet(name string, repeat bool, frameTime float64, frames []Rect) {
	if len(frames) == 0 {
		panic("alder: frame set needs at least one frame")
	}
	if _, exists := s.frameSets[name]; exists {
		return
	}
	s.frameSets[name] = FrameSet{Repeat: repeat, FrameTime: frameTime, Frames: frames}
}

// AddFrameSetHorizontal registers a named clip whose frames tile rightward
// across the texture: frame i covers (i*base.Width, base.Y, base.Width,
// base.Height). The strip always starts at the left texture edge; base.X is
// not an offset. Same first-write-wins policy as AddFrameSet.
//
// Panics if count < 1.
func (s *Sprite) AddFrameSetHorizontal(name string, repeat bool, frameTime float64, base Rect, count int) {
	if count < 1 {
		panic("alder: frame set needs at least one frame")
	}
	frames := make([]Rect, 0, count)
	for i := 0; i < count; i++ {
		frames = append(frames, Rect{
			X:      float64(i) * base.Width,
			Y:      base.Y,
			Width:  base.Width,
			Height: base.Height,
		})
	}
	s.AddFrameSet(name, repeat, frameTime, frames)
}

// Play starts the named frame set and reports whether it was found. An
// unknown name leaves the active clip (and, while one is playing, the frame
// being displayed) unchanged — in debug mode a warning is also printed.
//
// Play deliberately does not reset the frame position or timer: switching
// between same-length clips keeps the current phase. If the new clip is
// shorter than the current frame index, the index is clamped to the new
// clip's last frame.
//
// followup names the clip to chain into when a non-repeating clip finishes;
// an empty followup clears any pending one. The followup field is rewritten
// even when name is unknown.
func (s *Sprite) Play(name, followup string) bool {
	fs, ok := s.frameSets[name]
	if ok {
		if s.frameIdx >= len(fs.Frames) {
			s.frameIdx = len(fs.Frames) - 1
		}
		s.frames = &fs
	} else if debugEnabled {
		debugWarnUnknownFrameSet(name)
	}
	s.followup = followup
	return ok
}

// Update advances the animation timer by dt seconds. A sprite with no active
// frame set is left unchanged. When the accumulated time reaches the active
// clip's FrameTime the timer resets and the clip advances by exactly one
// frame — never more, even if dt spans several frame times, so a dt spike
// cannot skip frames.
//
// Update is per-sprite and does not recurse into children; the owning
// application drives updates across whatever part of the tree it animates.
func (s *Sprite) Update(dt float64) {
	if s.frames == nil {
		return
	}
	s.frameDelta += dt
	if s.frameDelta < s.frames.FrameTime {
		return
	}
	s.frameDelta = 0

	if s.frameIdx < len(s.frames.Frames)-1 {
		s.frameIdx++
		return
	}

	// Last frame reached: chain, loop, or freeze. A pending followup takes
	// precedence over Repeat. Chaining restarts at frame 0 and passes no
	// further followup, so a chain is exactly one hop deep unless the
	// caller plays on from there.
	switch {
	case s.followup != "":
		next := s.followup
		s.frameIdx = 0
		s.Play(next, "")
	case s.frames.Repeat:
		s.frameIdx = 0
	}
}
