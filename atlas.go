package alder

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// Atlas maps frame names from a TexturePacker export to source rectangles
// in texture pixel space. It holds no image data: pair its rectangles with
// whatever Texture the caller loaded the page into, via SetSrcRect or
// AddFrameSet.
type Atlas struct {
	regions map[string]Rect
}

// Region returns the source rectangle for the given frame name. The second
// return is false when the name is not in the atlas.
func (a *Atlas) Region(name string) (Rect, bool) {
	r, ok := a.regions[name]
	return r, ok
}

// Frames returns the source rectangles of every frame whose name starts
// with prefix, sorted by name. TexturePacker numbers exported animation
// frames ("run/01", "run/02", ...), so the result is ready to hand to
// AddFrameSet.
func (a *Atlas) Frames(prefix string) []Rect {
	var names []string
	for name := range a.regions {
		if strings.HasPrefix(name, prefix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	frames := make([]Rect, len(names))
	for i, name := range names {
		frames[i] = a.regions[name]
	}
	return frames
}

// Len returns the number of frames in the atlas.
func (a *Atlas) Len() int {
	return len(a.regions)
}

// LoadAtlas parses TexturePacker JSON data into an Atlas. Supports both the
// hash format (single "frames" object) and the array format ("textures"
// array with per-page frame lists). Pages in the array format merge into
// one namespace; a sprite binds a single texture, so use one Atlas per
// page image.
func LoadAtlas(jsonData []byte) (*Atlas, error) {
	// Probe top-level keys to detect format.
	var probe struct {
		Frames   json.RawMessage `json:"frames"`
		Textures json.RawMessage `json:"textures"`
	}
	if err := json.Unmarshal(jsonData, &probe); err != nil {
		return nil, fmt.Errorf("alder: failed to parse atlas JSON: %w", err)
	}

	atlas := &Atlas{regions: make(map[string]Rect)}

	if probe.Textures != nil {
		// Multi-page array format
		if err := parseArrayFormat(probe.Textures, atlas); err != nil {
			return nil, err
		}
	} else if probe.Frames != nil {
		// Single-page hash format
		if err := parseHashFrames(probe.Frames, atlas); err != nil {
			return nil, err
		}
	} else {
		return nil, fmt.Errorf("alder: atlas JSON has neither \"frames\" nor \"textures\" key")
	}

	return atlas, nil
}

// --- JSON structure types ---

type jsonRect struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

type jsonFrame struct {
	Frame jsonRect `json:"frame"`
}

type jsonTexturePage struct {
	Image  string               `json:"image"`
	Frames map[string]jsonFrame `json:"frames"`
}

// parseHashFrames parses the hash format: {"name": {frame...}, ...}
func parseHashFrames(raw json.RawMessage, atlas *Atlas) error {
	var frames map[string]jsonFrame
	if err := json.Unmarshal(raw, &frames); err != nil {
		return fmt.Errorf("alder: failed to parse atlas frames: %w", err)
	}
	for name, f := range frames {
		atlas.regions[name] = frameToRect(f)
	}
	return nil
}

// parseArrayFormat parses the array format: [{"image":"...", "frames":{...}}, ...]
func parseArrayFormat(raw json.RawMessage, atlas *Atlas) error {
	var textures []jsonTexturePage
	if err := json.Unmarshal(raw, &textures); err != nil {
		return fmt.Errorf("alder: failed to parse atlas textures array: %w", err)
	}
	for _, tex := range textures {
		for name, f := range tex.Frames {
			atlas.regions[name] = frameToRect(f)
		}
	}
	return nil
}

func frameToRect(f jsonFrame) Rect {
	return Rect{
		X:      float64(f.Frame.X),
		Y:      float64(f.Frame.Y),
		Width:  float64(f.Frame.W),
		Height: float64(f.Frame.H),
	}
}
