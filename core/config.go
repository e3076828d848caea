package core

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"
)

// Config holds everything tunable without recompiling. Zero values are
// filled in from DefaultConfig, so a partial TOML file is fine.
type Config struct {
	Window WindowSection `toml:"window"`
	Shadow ShadowSection `toml:"shadow"`
	Scene  SceneSection  `toml:"scene"`
	Camera CameraSection `toml:"camera"`
}

type WindowSection struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
	MSAA   int    `toml:"msaa"`
}

type ShadowSection struct {
	// Size is the per-layer depth map resolution (square).
	Size int `toml:"size"`
}

type SceneSection struct {
	// AssetDir is the root holding models/ and textures/.
	AssetDir string `toml:"asset_dir"`
	// GlassAlpha is the uniform opacity applied to the transparent bucket.
	GlassAlpha float32 `toml:"glass_alpha"`
}

type CameraSection struct {
	MoveSpeed  float32 `toml:"move_speed"`
	MouseSpeed float32 `toml:"mouse_speed"`
}

func DefaultConfig() Config {
	return Config{
		Window: WindowSection{
			Width:  1536,
			Height: 1152,
			Title:  "Classroom Simulation",
			VSync:  true,
			MSAA:   4,
		},
		Shadow: ShadowSection{Size: 1024},
		Scene: SceneSection{
			AssetDir:   "assets",
			GlassAlpha: 0.25,
		},
		Camera: CameraSection{
			MoveSpeed:  10.0,
			MouseSpeed: 0.005,
		},
	}
}

// LoadConfig reads a TOML config file, overlaying it on the defaults.
// An empty path returns the defaults unchanged.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %q: %w", path, err)
	}

	if cfg.Window.Width <= 0 || cfg.Window.Height <= 0 {
		return cfg, fmt.Errorf("config %q: window size must be positive", path)
	}
	if cfg.Shadow.Size <= 0 {
		return cfg, fmt.Errorf("config %q: shadow size must be positive", path)
	}
	if cfg.Scene.GlassAlpha < 0 || cfg.Scene.GlassAlpha > 1 {
		return cfg, fmt.Errorf("config %q: glass_alpha must be in [0,1]", path)
	}
	return cfg, nil
}
