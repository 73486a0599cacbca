// Package tui is the terminal front end: a bubbletea program showing the
// world and camera viewports side by side in braille.
package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"camview/internal/camera"
	"camview/internal/geom"
	"camview/internal/input"
	"camview/internal/render"
	"camview/internal/render/braille"
)

type Options struct {
	Title    string
	Clip     geom.Rect
	World    geom.Rect
	Scene    geom.Scene
	Settings camera.Settings
	Keys     input.KeyMap
	Logger   *slog.Logger
}

type Model struct {
	width  int
	height int

	title    string
	cam      *camera.ClipWindow
	start    geom.Rect
	settings camera.Settings

	keys       input.KeyMap
	helpToggle key.Binding
	dispatcher *input.Dispatcher
	help       help.Model

	renderer *render.Renderer
	canvas   *braille.Canvas

	status string
	warn   bool

	// hover state
	hovering  bool
	hoverPane string
	hoverAt   geom.Point

	log *slog.Logger
}

func New(opt Options) Model {
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	h := help.New()
	h.Styles.ShortKey = keyStyle
	h.Styles.ShortDesc = dimStyle
	h.Styles.FullKey = keyStyle
	h.Styles.FullDesc = dimStyle
	return Model{
		title:      opt.Title,
		cam:        camera.NewClipWindow(opt.Clip),
		start:      opt.Clip,
		settings:   opt.Settings,
		keys:       opt.Keys,
		helpToggle: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),
		dispatcher: input.NewDispatcher(opt.Keys),
		help:       h,
		renderer:   render.NewRenderer(render.Layout{}, opt.World, opt.Scene),
		canvas:     braille.New(0, 0),
		status:     "camview ready",
		log:        log,
	}
}

func (m Model) Init() tea.Cmd { return nil }

// Clip returns the current camera rectangle.
func (m Model) Clip() geom.Rect { return m.cam.Get() }

func (m Model) Status() string { return m.status }
