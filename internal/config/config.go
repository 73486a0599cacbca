// Package config loads camview settings from a TOML file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/pelletier/go-toml/v2"

	"camview/internal/camera"
	"camview/internal/geom"
)

var ErrInvalid = errors.New("invalid config")

type Config struct {
	Window WindowConfig        `toml:"window"`
	Camera CameraConfig        `toml:"camera"`
	World  RectConfig          `toml:"world"`
	Scene  SceneConfig         `toml:"scene"`
	Keys   map[string][]string `toml:"keys"`
}

type WindowConfig struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
}

type CameraConfig struct {
	PanStep  float64    `toml:"pan_step"`
	ZoomIn   float64    `toml:"zoom_in"`
	ZoomOut  float64    `toml:"zoom_out"`
	MinWidth float64    `toml:"min_width"`
	MaxWidth float64    `toml:"max_width"`
	Clip     RectConfig `toml:"clip"`
}

type RectConfig struct {
	Left   float64 `toml:"left"`
	Right  float64 `toml:"right"`
	Bottom float64 `toml:"bottom"`
	Top    float64 `toml:"top"`
}

func (r RectConfig) Rect() geom.Rect { return geom.R(r.Left, r.Right, r.Bottom, r.Top) }

func rectConfig(r geom.Rect) RectConfig {
	return RectConfig{Left: r.Left, Right: r.Right, Bottom: r.Bottom, Top: r.Top}
}

type SceneConfig struct {
	// Path of a .wkt, .geojson, .json or .kml scene; empty means the built-in
	// scene.
	Path string `toml:"path"`
}

// Default mirrors the classic demo: a 1000x250 window, a 5 unit pan step and
// 0.8/1.25 zoom factors, no zoom bounds.
func Default() Config {
	s := camera.DefaultSettings()
	return Config{
		Window: WindowConfig{
			Width:  1000,
			Height: 250,
			Title:  "2D Camera Manipulating Program with 2 viewports",
		},
		Camera: CameraConfig{
			PanStep:  s.PanStep,
			ZoomIn:   s.ZoomInFactor,
			ZoomOut:  s.ZoomOutFactor,
			MinWidth: s.MinWidth,
			MaxWidth: s.MaxWidth,
			Clip:     rectConfig(geom.DefaultClip()),
		},
		World: rectConfig(geom.WorldView()),
	}
}

// Load reads path over the defaults. An empty path returns Default.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// Parse decodes TOML over the defaults and validates the result. Unknown
// keys are rejected.
func Parse(r io.Reader) (Config, error) {
	cfg := Default()
	dec := toml.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&cfg); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return Config{}, fmt.Errorf("%w: %s", ErrInvalid, strict.String())
		}
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	var errs []error
	bad := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf("%w: "+format, append([]any{ErrInvalid}, args...)...))
	}
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		bad("window size %dx%d", c.Window.Width, c.Window.Height)
	}
	cam := c.Camera
	if !(cam.PanStep > 0) || math.IsInf(cam.PanStep, 0) {
		bad("camera.pan_step %v must be > 0", cam.PanStep)
	}
	if !(cam.ZoomIn > 0 && cam.ZoomIn < 1) {
		bad("camera.zoom_in %v must be in (0,1)", cam.ZoomIn)
	}
	if !(cam.ZoomOut > 1) || math.IsInf(cam.ZoomOut, 0) {
		bad("camera.zoom_out %v must be > 1", cam.ZoomOut)
	}
	if cam.MinWidth < 0 || cam.MaxWidth < 0 {
		bad("camera width bounds must not be negative")
	}
	if cam.MaxWidth > 0 && cam.MinWidth > cam.MaxWidth {
		bad("camera.min_width %v > camera.max_width %v", cam.MinWidth, cam.MaxWidth)
	}
	if !cam.Clip.Rect().Valid() {
		bad("camera.clip %v is empty", cam.Clip.Rect())
	}
	if !c.World.Rect().Valid() {
		bad("world %v is empty", c.World.Rect())
	}
	for name, keys := range c.Keys {
		if cmd, ok := camera.ParseCommand(name); !ok || cmd == camera.CmdNone {
			bad("keys: unknown command %q", name)
		} else if len(keys) == 0 {
			bad("keys: %s has no keys", name)
		}
	}
	return errors.Join(errs...)
}

// Settings returns the camera settings described by c.
func (c Config) Settings() camera.Settings {
	return camera.Settings{
		PanStep:       c.Camera.PanStep,
		ZoomInFactor:  c.Camera.ZoomIn,
		ZoomOutFactor: c.Camera.ZoomOut,
		MinWidth:      c.Camera.MinWidth,
		MaxWidth:      c.Camera.MaxWidth,
	}
}
