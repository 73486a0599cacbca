package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/gogpu/gg"

	"camview/internal/camera"
	"camview/internal/config"
	"camview/internal/geom"
	"camview/internal/input"
	"camview/internal/render"
	"camview/internal/render/raster"
	"camview/internal/tui"
	"camview/internal/window"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

type app struct {
	cfg   config.Config
	world geom.Rect
	clip  geom.Rect
	scene geom.Scene
	keys  input.KeyMap
	log   *slog.Logger
}

func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("camview", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "TOML config file")
	mode := fs.String("mode", "tui", "front end: tui, window or snapshot")
	out := fs.String("out", "camview.png", "PNG path for snapshot mode")
	scenePath := fs.String("scene", "", "scene file (.wkt, .geojson or .kml)")
	logPath := fs.String("log", "", "write logs to this file")
	logLevel := fs.String("log-level", "info", "debug, info, warn or error")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 1
	}

	logger, closeLog, err := newLogger(*logPath, *logLevel)
	if err != nil {
		fmt.Fprintln(stderr, "camview:", err)
		return 1
	}
	defer closeLog()
	gg.SetLogger(logger)

	a, err := setup(*configPath, *scenePath, logger)
	if err != nil {
		fmt.Fprintln(stderr, "camview:", err)
		return 1
	}
	logger.Info("start", "mode", *mode, "polygons", len(a.scene), "clip", a.clip)

	switch *mode {
	case "tui":
		err = a.runTUI()
	case "window":
		err = a.runWindow()
	case "snapshot":
		err = a.snapshot(*out)
	default:
		err = fmt.Errorf("unknown mode %q", *mode)
	}
	if err != nil {
		logger.Error("exit", "err", err)
		fmt.Fprintln(stderr, "camview:", err)
		return 1
	}
	return 0
}

func newLogger(path, level string) (*slog.Logger, func(), error) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	if path == "" {
		return slog.New(slog.DiscardHandler), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("log: %w", err)
	}
	l := slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: lvl}))
	return l, func() { _ = f.Close() }, nil
}

func setup(configPath, scenePath string, log *slog.Logger) (app, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return app{}, err
	}
	keys, err := input.DefaultKeyMap().WithKeys(cfg.Keys)
	if err != nil {
		return app{}, fmt.Errorf("config: %w", err)
	}
	if scenePath == "" {
		scenePath = cfg.Scene.Path
	}
	a := app{
		cfg:   cfg,
		world: cfg.World.Rect(),
		clip:  cfg.Camera.Clip.Rect(),
		scene: geom.DefaultScene(),
		keys:  keys,
		log:   log,
	}
	if scenePath != "" {
		if a.scene, err = geom.LoadScene(scenePath); err != nil {
			return app{}, err
		}
		a.fitWorld()
	}
	return a, nil
}

// fitWorld frames a loaded scene when the config keeps the built-in world.
// A built-in clip then becomes the central half of the new world.
func (a *app) fitWorld() {
	if a.world != geom.WorldView() {
		return
	}
	aspect := float64(a.cfg.Window.Width) / 2 / float64(a.cfg.Window.Height)
	world, ok := a.scene.FitWorld(aspect)
	if !ok {
		return
	}
	a.world = world
	if a.clip == geom.DefaultClip() {
		a.clip = camera.Zoom(world, 0.5)
	}
	a.log.Info("world fitted to scene", "world", a.world, "clip", a.clip)
}

func (a app) runTUI() error {
	m := tui.New(tui.Options{
		Title:    a.cfg.Window.Title,
		Clip:     a.clip,
		World:    a.world,
		Scene:    a.scene,
		Settings: a.cfg.Settings(),
		Keys:     a.keys,
		Logger:   a.log,
	})
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}

func (a app) runWindow() error {
	g := window.NewGame(window.Options{
		Title:    a.cfg.Window.Title,
		Width:    a.cfg.Window.Width,
		Height:   a.cfg.Window.Height,
		Clip:     a.clip,
		World:    a.world,
		Scene:    a.scene,
		Settings: a.cfg.Settings(),
		Keys:     a.keys,
		Logger:   a.log,
	})
	return window.Run(g)
}

// snapshot renders the initial frame to a PNG file.
func (a app) snapshot(path string) error {
	w, h := a.cfg.Window.Width, a.cfg.Window.Height
	c := raster.New(w, h, a.log)
	defer c.Close()
	r := render.NewRenderer(render.SplitHorizontal(w, h), a.world, a.scene)
	if err := r.Draw(c, a.clip); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := c.SavePNG(path); err != nil {
		return err
	}
	a.log.Info("snapshot written", "path", path, "size", fmt.Sprintf("%dx%d", w, h))
	return nil
}
