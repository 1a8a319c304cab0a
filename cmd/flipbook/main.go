// Command flipbook renders a sprite scene to numbered stills without a
// window: scene YAML in, WebP or PNG frames out. It drives the same tree
// and animation code a game would, over the CPU backend, so clip timing
// and layout can be checked frame by frame in CI or a file browser.
package main

import (
	"flag"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/HugoSmits86/nativewebp"
	_ "github.com/ftrvxmtrx/tga"

	"github.com/phanxgames/alder"
	"github.com/phanxgames/alder/softrender"
)

func main() {
	scenePath := flag.String("scene", "", "Path to scene YAML file")
	outputDir := flag.String("output", "", "Output directory (default: <scene dir>/frames)")
	frames := flag.Int("frames", 0, "Number of stills to render (overrides scene)")
	format := flag.String("format", "", "Output format: webp or png (overrides scene)")
	debug := flag.Bool("debug", false, "Enable sprite debug warnings")
	flag.Parse()

	if *scenePath == "" {
		fmt.Fprintln(os.Stderr, "Usage: flipbook -scene scene.yaml [-output dir] [-frames n] [-format webp|png]")
		os.Exit(2)
	}

	alder.SetDebug(*debug)

	scene, err := LoadScene(*scenePath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading scene: %v\n", err)
		os.Exit(1)
	}
	scene.Resolve(Flags{Frames: *frames, Format: *format})
	if err := scene.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error in scene: %v\n", err)
		os.Exit(1)
	}

	sceneDir := filepath.Dir(*scenePath)
	dir := *outputDir
	if dir == "" {
		dir = filepath.Join(sceneDir, "frames")
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output dir: %v\n", err)
		os.Exit(1)
	}

	textures, atlases, err := loadTextures(sceneDir, scene.Textures)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading textures: %v\n", err)
		os.Exit(1)
	}

	var roots []*alder.Sprite
	for i, cfg := range scene.Sprites {
		root, err := buildSprite(cfg, textures, atlases)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error in sprite %d: %v\n", i, err)
			os.Exit(1)
		}
		roots = append(roots, root)
	}

	bg := color.NRGBA{}
	if scene.Canvas.Background != "" {
		bg, err = parseHexColor(scene.Canvas.Background)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error in scene: %v\n", err)
			os.Exit(1)
		}
	}

	w, h, scale := scene.Canvas.Width, scene.Canvas.Height, scene.Output.Scale
	target := softrender.NewTarget(w*scale, h*scale)
	world := alder.Identity().Scale(float64(scale), float64(scale))

	fmt.Printf("Scene: %s\n", *scenePath)
	fmt.Printf("Canvas: %dx%d, frames: %d, step: %.4fs, format: %s\n",
		w, h, scene.Output.Frames, scene.Output.Step, scene.Output.Format)
	start := time.Now()

	for f := 0; f < scene.Output.Frames; f++ {
		target.Clear(bg)
		for _, root := range roots {
			root.Draw(world, target)
		}

		img := target.Downsample(w, h)
		name := fmt.Sprintf("frame_%04d.%s", f, scene.Output.Format)
		if err := writeImage(filepath.Join(dir, name), scene.Output.Format, img); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", name, err)
			os.Exit(1)
		}

		for _, root := range roots {
			advance(root, scene.Output.Step)
		}
	}

	fmt.Printf("Rendered %d frames to %s in %.2fs\n",
		scene.Output.Frames, dir, time.Since(start).Seconds())
}

// loadTextures decodes every declared texture (PNG and TGA are registered)
// and parses any attached atlas, keyed by texture name. Paths are resolved
// relative to the scene file.
func loadTextures(sceneDir string, cfgs []TextureConfig) (map[string]*softrender.Texture, map[string]*alder.Atlas, error) {
	textures := make(map[string]*softrender.Texture, len(cfgs))
	atlases := make(map[string]*alder.Atlas)

	for _, cfg := range cfgs {
		if cfg.Name == "" {
			return nil, nil, fmt.Errorf("texture with no name")
		}
		if _, dup := textures[cfg.Name]; dup {
			return nil, nil, fmt.Errorf("duplicate texture name %q", cfg.Name)
		}

		f, err := os.Open(resolvePath(sceneDir, cfg.Path))
		if err != nil {
			return nil, nil, fmt.Errorf("texture %q: %w", cfg.Name, err)
		}
		img, _, err := image.Decode(f)
		f.Close()
		if err != nil {
			return nil, nil, fmt.Errorf("texture %q: decode %s: %w", cfg.Name, cfg.Path, err)
		}
		textures[cfg.Name] = softrender.NewTexture(img)

		if cfg.Atlas != "" {
			data, err := os.ReadFile(resolvePath(sceneDir, cfg.Atlas))
			if err != nil {
				return nil, nil, fmt.Errorf("texture %q: %w", cfg.Name, err)
			}
			atlas, err := alder.LoadAtlas(data)
			if err != nil {
				return nil, nil, fmt.Errorf("texture %q: %w", cfg.Name, err)
			}
			atlases[cfg.Name] = atlas
		}
	}
	return textures, atlases, nil
}

func resolvePath(sceneDir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(sceneDir, path)
}

// advance steps animation across a whole tree. Update itself is per-sprite.
func advance(s *alder.Sprite, dt float64) {
	s.Update(dt)
	for _, child := range s.Children() {
		advance(child, dt)
	}
}

func writeImage(path, format string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	switch format {
	case "png":
		err = png.Encode(f, img)
	default:
		err = nativewebp.Encode(f, img, nil)
	}
	if err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
