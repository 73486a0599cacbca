// Package window is the desktop front end: an ebiten game showing frames
// rasterized by the gg surface.
package window

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/hajimehoshi/ebiten/v2"

	"camview/internal/camera"
	"camview/internal/geom"
	"camview/internal/input"
	"camview/internal/render"
	"camview/internal/render/raster"
)

type Options struct {
	Title    string
	Width    int
	Height   int
	Clip     geom.Rect
	World    geom.Rect
	Scene    geom.Scene
	Settings camera.Settings
	Keys     input.KeyMap
	Logger   *slog.Logger
}

// Game implements ebiten.Game. All state is touched from the game loop only.
type Game struct {
	title string
	w, h  int

	cam        *camera.ClipWindow
	settings   camera.Settings
	dispatcher *input.Dispatcher
	renderer   *render.Renderer
	canvas     *raster.Canvas

	dirty bool
	frame *image.RGBA
	fresh bool
	img   *ebiten.Image

	// poll returns the keys pressed since the previous tick.
	poll func() []input.Name

	log *slog.Logger
}

func NewGame(opt Options) *Game {
	log := opt.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Game{
		title:      opt.Title,
		w:          opt.Width,
		h:          opt.Height,
		cam:        camera.NewClipWindow(opt.Clip),
		settings:   opt.Settings,
		dispatcher: input.NewDispatcher(opt.Keys),
		renderer:   render.NewRenderer(render.SplitHorizontal(opt.Width, opt.Height), opt.World, opt.Scene),
		canvas:     raster.New(opt.Width, opt.Height, log),
		dirty:      true,
		poll:       pressedKeys,
		log:        log,
	}
}

// Run opens the window and blocks until it is closed or a quit key is
// pressed.
func Run(g *Game) error {
	defer g.canvas.Close()
	ebiten.SetWindowTitle(g.title)
	ebiten.SetWindowSize(g.w, g.h)
	ebiten.SetTPS(60)
	if err := ebiten.RunGame(g); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}

func (g *Game) Clip() geom.Rect { return g.cam.Get() }

func (g *Game) Update() error {
	for _, k := range g.poll() {
		if g.handle(k) {
			g.log.Info("quit", "clip", g.cam.Get())
			return ebiten.Termination
		}
	}
	if g.dirty {
		return g.redraw()
	}
	return nil
}

// handle applies the command bound to k and reports whether it was quit.
func (g *Game) handle(k input.Name) bool {
	cmd := g.dispatcher.Dispatch(k)
	switch cmd {
	case camera.CmdNone:
		return false
	case camera.CmdQuit:
		return true
	}
	before := g.cam.Get()
	next := camera.Apply(before, cmd, g.settings)
	if next == before {
		g.log.Debug("command refused", "cmd", cmd, "clip", before)
		return false
	}
	g.cam.Set(next)
	g.dirty = true
	g.log.Debug("command", "cmd", cmd, "clip", next)
	return false
}

// redraw rasterizes one frame. Surface errors end the game.
func (g *Game) redraw() error {
	if err := g.renderer.Draw(g.canvas, g.cam.Get()); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	img, ok := g.canvas.Image().(*image.RGBA)
	if !ok {
		return fmt.Errorf("draw: unexpected image type %T", g.canvas.Image())
	}
	g.frame = img
	g.fresh = true
	g.dirty = false
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.frame == nil {
		return
	}
	if g.img == nil {
		g.img = ebiten.NewImage(g.w, g.h)
	}
	if g.fresh {
		g.img.WritePixels(g.frame.Pix)
		g.fresh = false
	}
	screen.DrawImage(g.img, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.w, g.h
}
