// Command classroom renders an interactive 3D classroom: a fixed 3x3 grid
// of ceiling lights with per-light shadow mapping, normal-mapped walls,
// blended window glass, and a free-flying camera.
//
// Controls: WASD/arrows move, mouse looks, Q/E fly, shift sprints, scroll
// zooms, G toggles Phong/Gouraud shading, Escape quits.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/core"
	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/renderer"
	"github.com/Moksham-dev/OpenGL-Classroom-Simulation/scene"
)

func main() {
	configPath := flag.String("config", "", "path to a TOML config file (optional)")
	verbose := flag.Bool("v", false, "debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(log)

	if err := run(*configPath, log); err != nil {
		log.Error("fatal", "err", err)
		os.Exit(1)
	}
}

func run(configPath string, log *slog.Logger) error {
	cfg := core.DefaultConfig()
	if configPath != "" {
		loaded, err := core.LoadConfig(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
		log.Info("config loaded", "path", configPath)
	}

	win, err := core.NewWindow(core.WindowConfig{
		Width:  cfg.Window.Width,
		Height: cfg.Window.Height,
		Title:  cfg.Window.Title,
		VSync:  cfg.Window.VSync,
		MSAA:   cfg.Window.MSAA,
	})
	if err != nil {
		return err
	}
	defer win.Destroy()

	log.Info("loading scene", "asset_dir", cfg.Scene.AssetDir)
	classroom, err := scene.Compose(scene.FileSource{Dir: cfg.Scene.AssetDir})
	if err != nil {
		return err
	}

	camera := scene.NewFlyCamera(cfg.Camera.MoveSpeed, cfg.Camera.MouseSpeed)

	engine, err := renderer.NewEngine(win, classroom, camera,
		cfg.Shadow.Size, cfg.Scene.GlassAlpha, log)
	if err != nil {
		return err
	}
	defer engine.Destroy()

	engine.Run()
	return nil
}
