package main

import (
	"fmt"
	"image/color"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/phanxgames/alder"
	"github.com/phanxgames/alder/softrender"
)

// SceneConfig is the root of a flipbook scene file.
type SceneConfig struct {
	Canvas   CanvasConfig    `yaml:"canvas"`
	Output   OutputConfig    `yaml:"output"`
	Textures []TextureConfig `yaml:"textures"`
	Sprites  []SpriteConfig  `yaml:"sprites"`
}

type CanvasConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`

	// Background is a #RRGGBB or #RRGGBBAA fill; empty renders on
	// transparency.
	Background string `yaml:"background"`
}

type OutputConfig struct {
	// Frames is the number of stills to render.
	Frames int `yaml:"frames"`

	// Step is the simulated time between stills, in seconds.
	Step float64 `yaml:"step"`

	// Format selects the encoder: "webp" (default) or "png".
	Format string `yaml:"format"`

	// Scale renders at Scale times the canvas size and downsamples the
	// result, smoothing rotated edges. 1 renders at native size.
	Scale int `yaml:"scale"`
}

type TextureConfig struct {
	Name string `yaml:"name"`
	Path string `yaml:"path"`

	// Atlas optionally names a TexturePacker JSON file describing regions
	// of this texture; clips may then reference regions by prefix.
	Atlas string `yaml:"atlas"`
}

// SpriteConfig describes one sprite and, recursively, its children.
type SpriteConfig struct {
	Texture  string    `yaml:"texture"`
	Src      []float64 `yaml:"src"`      // [x, y, w, h]
	Position []float64 `yaml:"position"` // [x, y]
	Anchor   []float64 `yaml:"anchor"`   // [x, y]
	Scale    []float64 `yaml:"scale"`    // [x, y]
	Rotation float64   `yaml:"rotation"` // degrees
	Opacity  *float64  `yaml:"opacity"`
	Color    string    `yaml:"color"` // #RRGGBB tint
	FlipX    bool      `yaml:"flip_x"`
	FlipY    bool      `yaml:"flip_y"`

	Clips    []ClipConfig `yaml:"clips"`
	Play     string       `yaml:"play"`
	Followup string       `yaml:"followup"`

	Children []SpriteConfig `yaml:"children"`
}

// ClipConfig describes one animation clip. Exactly one frame source must be
// set: an explicit frames list, a horizontal strip, or an atlas prefix.
type ClipConfig struct {
	Name      string  `yaml:"name"`
	Repeat    bool    `yaml:"repeat"`
	FrameTime float64 `yaml:"frame_time"`

	Frames      [][]float64  `yaml:"frames"` // each [x, y, w, h]
	Strip       *StripConfig `yaml:"strip"`
	AtlasPrefix string       `yaml:"atlas_prefix"`
}

// StripConfig describes frames tiling rightward from the left texture edge.
type StripConfig struct {
	Y      float64 `yaml:"y"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Count  int     `yaml:"count"`
}

// Flags holds command-line overrides applied on top of the scene file.
type Flags struct {
	Frames int
	Format string
}

// LoadScene reads and parses a scene file, then fills in defaults.
func LoadScene(path string) (*SceneConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	var scene SceneConfig
	if err := yaml.Unmarshal(data, &scene); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if scene.Output.Frames == 0 {
		scene.Output.Frames = 1
	}
	if scene.Output.Step == 0 {
		scene.Output.Step = 1.0 / 60
	}
	if scene.Output.Format == "" {
		scene.Output.Format = "webp"
	}
	if scene.Output.Scale == 0 {
		scene.Output.Scale = 1
	}
	return &scene, nil
}

// Resolve applies command-line overrides on top of the scene file.
func (c *SceneConfig) Resolve(f Flags) {
	if f.Frames > 0 {
		c.Output.Frames = f.Frames
	}
	if f.Format != "" {
		c.Output.Format = f.Format
	}
}

// Validate checks the resolved configuration before any rendering starts.
func (c *SceneConfig) Validate() error {
	if c.Canvas.Width < 1 || c.Canvas.Height < 1 {
		return fmt.Errorf("canvas size %dx%d: both dimensions must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Output.Frames < 1 {
		return fmt.Errorf("frames = %d: must be at least 1", c.Output.Frames)
	}
	if c.Output.Step <= 0 {
		return fmt.Errorf("step = %v: must be positive", c.Output.Step)
	}
	if c.Output.Format != "webp" && c.Output.Format != "png" {
		return fmt.Errorf("format %q: want webp or png", c.Output.Format)
	}
	if c.Output.Scale < 1 {
		return fmt.Errorf("scale = %d: must be at least 1", c.Output.Scale)
	}
	if len(c.Textures) == 0 {
		return fmt.Errorf("scene declares no textures")
	}
	if len(c.Sprites) == 0 {
		return fmt.Errorf("scene declares no sprites")
	}
	return nil
}

// parseHexColor parses #RRGGBB or #RRGGBBAA.
func parseHexColor(s string) (color.NRGBA, error) {
	hex := strings.TrimPrefix(s, "#")
	if len(hex) != 6 && len(hex) != 8 {
		return color.NRGBA{}, fmt.Errorf("color %q: want #RRGGBB or #RRGGBBAA", s)
	}
	v, err := strconv.ParseUint(hex, 16, 64)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("color %q: %w", s, err)
	}
	c := color.NRGBA{A: 0xFF}
	if len(hex) == 8 {
		c.A = uint8(v)
		v >>= 8
	}
	c.B = uint8(v)
	c.G = uint8(v >> 8)
	c.R = uint8(v >> 16)
	return c, nil
}

func vec2(v []float64, name string) (alder.Vec2, error) {
	if len(v) != 2 {
		return alder.Vec2{}, fmt.Errorf("%s: want [x, y], got %d values", name, len(v))
	}
	return alder.Vec2{X: v[0], Y: v[1]}, nil
}

// buildSprite turns one sprite config into a live sprite, recursing into
// children. The atlas may be nil when the sprite's texture declared none.
func buildSprite(cfg SpriteConfig, texs map[string]*softrender.Texture, atlases map[string]*alder.Atlas) (*alder.Sprite, error) {
	tex, ok := texs[cfg.Texture]
	if !ok {
		return nil, fmt.Errorf("sprite references unknown texture %q", cfg.Texture)
	}

	var s *alder.Sprite
	if len(cfg.Src) > 0 {
		if len(cfg.Src) != 4 {
			return nil, fmt.Errorf("src: want [x, y, w, h], got %d values", len(cfg.Src))
		}
		s = alder.NewSpriteRect(tex, alder.Rect{X: cfg.Src[0], Y: cfg.Src[1], Width: cfg.Src[2], Height: cfg.Src[3]})
	} else {
		s = alder.NewSprite(tex)
	}

	if len(cfg.Position) > 0 {
		v, err := vec2(cfg.Position, "position")
		if err != nil {
			return nil, err
		}
		s.Position = v
	}
	if len(cfg.Anchor) > 0 {
		v, err := vec2(cfg.Anchor, "anchor")
		if err != nil {
			return nil, err
		}
		s.Anchor = v
	}
	if len(cfg.Scale) > 0 {
		v, err := vec2(cfg.Scale, "scale")
		if err != nil {
			return nil, err
		}
		s.Scale = v
	}
	s.Rotation = cfg.Rotation
	if cfg.Opacity != nil {
		s.Opacity = *cfg.Opacity
	}
	if cfg.Color != "" {
		c, err := parseHexColor(cfg.Color)
		if err != nil {
			return nil, err
		}
		s.Color = alder.Color{R: float64(c.R) / 255, G: float64(c.G) / 255, B: float64(c.B) / 255}
	}
	s.FlipX = cfg.FlipX
	s.FlipY = cfg.FlipY

	if err := addClips(s, cfg.Clips, atlases[cfg.Texture]); err != nil {
		return nil, err
	}
	if cfg.Play != "" {
		if !s.Play(cfg.Play, cfg.Followup) {
			return nil, fmt.Errorf("play %q: no such clip", cfg.Play)
		}
	}

	for _, childCfg := range cfg.Children {
		child, err := buildSprite(childCfg, texs, atlases)
		if err != nil {
			return nil, err
		}
		s.AddChild(child)
	}
	return s, nil
}

func addClips(s *alder.Sprite, clips []ClipConfig, atlas *alder.Atlas) error {
	for _, c := range clips {
		if c.Name == "" {
			return fmt.Errorf("clip with no name")
		}
		if c.FrameTime <= 0 {
			return fmt.Errorf("clip %q: frame_time must be positive", c.Name)
		}
		sources := 0
		if len(c.Frames) > 0 {
			sources++
		}
		if c.Strip != nil {
			sources++
		}
		if c.AtlasPrefix != "" {
			sources++
		}
		if sources != 1 {
			return fmt.Errorf("clip %q: want exactly one of frames, strip, atlas_prefix", c.Name)
		}

		switch {
		case len(c.Frames) > 0:
			frames := make([]alder.Rect, 0, len(c.Frames))
			for i, f := range c.Frames {
				if len(f) != 4 {
					return fmt.Errorf("clip %q frame %d: want [x, y, w, h], got %d values", c.Name, i, len(f))
				}
				frames = append(frames, alder.Rect{X: f[0], Y: f[1], Width: f[2], Height: f[3]})
			}
			s.AddFrameSet(c.Name, c.Repeat, c.FrameTime, frames)

		case c.Strip != nil:
			st := c.Strip
			if st.Count < 1 {
				return fmt.Errorf("clip %q: strip count must be at least 1", c.Name)
			}
			if st.Width <= 0 || st.Height <= 0 {
				return fmt.Errorf("clip %q: strip frame size %vx%v must be positive", c.Name, st.Width, st.Height)
			}
			base := alder.Rect{Y: st.Y, Width: st.Width, Height: st.Height}
			s.AddFrameSetHorizontal(c.Name, c.Repeat, c.FrameTime, base, st.Count)

		default:
			if atlas == nil {
				return fmt.Errorf("clip %q: texture has no atlas for prefix %q", c.Name, c.AtlasPrefix)
			}
			frames := atlas.Frames(c.AtlasPrefix)
			if len(frames) == 0 {
				return fmt.Errorf("clip %q: atlas has no regions with prefix %q", c.Name, c.AtlasPrefix)
			}
			s.AddFrameSet(c.Name, c.Repeat, c.FrameTime, frames)
		}
	}
	return nil
}
