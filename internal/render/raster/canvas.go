// Package raster is a pixel Surface backed by gogpu/gg. It serves the PNG
// snapshot mode and supplies the frames shown in the desktop window.
package raster

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gg"

	"camview/internal/geom"
	"camview/internal/render"
)

// clipMargin keeps clipped polygon edges off the visible area so the
// anti-aliased border of the clip box never shows.
const clipMargin = 4

// Canvas implements render.Surface on a gg.Context.
type Canvas struct {
	dc   *gg.Context
	proj render.Projection
	cur  geom.Color

	// Background fills the canvas on Clear.
	Background geom.Color
	// LineWidth is used for line loops, in pixels.
	LineWidth float64

	log *slog.Logger
	err error
}

var _ render.Surface = (*Canvas)(nil)

func New(w, h int, log *slog.Logger) *Canvas {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Canvas{
		dc:         gg.NewContext(w, h),
		Background: geom.Black,
		LineWidth:  1,
		log:        log,
	}
}

func (c *Canvas) Size() (int, int) { return c.dc.Width(), c.dc.Height() }

func (c *Canvas) Clear() {
	c.err = nil
	c.dc.ResetClip()
	c.dc.ClearWithColor(toRGBA(c.Background))
}

// SetViewport restricts drawing to v.
func (c *Canvas) SetViewport(v render.Viewport) {
	c.proj.View = v
	c.dc.ResetClip()
	c.dc.ClipRect(float64(v.X), float64(v.Y), float64(v.W), float64(v.H))
}

func (c *Canvas) SetProjection(r geom.Rect) { c.proj.Clip = r }

func (c *Canvas) SetColor(col geom.Color) {
	c.cur = col
	c.dc.SetRGB(col.R, col.G, col.B)
}

func (c *Canvas) DrawPolygon(pts []geom.Point) {
	ring, ok := c.proj.ProjectAll(pts)
	if !ok {
		return
	}
	ring = render.ClipPolygon(ring, c.proj.View.Bounds(clipMargin))
	if len(ring) < 3 {
		return
	}
	c.path(ring)
	c.keep("fill", c.dc.Fill())
}

func (c *Canvas) DrawLineLoop(pts []geom.Point) {
	ring, ok := c.proj.ProjectAll(pts)
	if !ok || len(ring) < 2 {
		return
	}
	box := c.proj.View.Bounds(clipMargin)
	c.dc.SetLineWidth(c.LineWidth)
	for i := range ring {
		a, b, ok := render.ClipSegment(ring[i], ring[(i+1)%len(ring)], box)
		if !ok {
			continue
		}
		// Half-pixel offset puts 1px lines on pixel centers.
		c.dc.MoveTo(a[0]+0.5, a[1]+0.5)
		c.dc.LineTo(b[0]+0.5, b[1]+0.5)
		c.keep("stroke", c.dc.Stroke())
	}
}

func (c *Canvas) path(ring [][2]float64) {
	c.dc.MoveTo(ring[0][0], ring[0][1])
	for _, p := range ring[1:] {
		c.dc.LineTo(p[0], p[1])
	}
	c.dc.ClosePath()
}

func (c *Canvas) keep(op string, err error) {
	if err == nil {
		return
	}
	c.log.Warn("raster draw failed", "op", op, "err", err)
	if c.err == nil {
		c.err = fmt.Errorf("raster %s: %w", op, err)
	}
}

// Present reports the first drawing error of the frame.
func (c *Canvas) Present() error { return c.err }

func (c *Canvas) Image() image.Image { return c.dc.Image() }

func (c *Canvas) SavePNG(path string) error {
	if err := c.dc.SavePNG(path); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

func (c *Canvas) Close() error { return c.dc.Close() }

func toRGBA(col geom.Color) gg.RGBA { return gg.RGB(col.R, col.G, col.B) }
