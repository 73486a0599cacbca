// Package camera holds the clip window (the "camera") and the pure
// transforms that pan and zoom it.
package camera

import (
	"math"

	"camview/internal/geom"
)

// ClipWindow is the rectangle of world coordinates shown in the zoomed
// viewport. The zero value is not useful; use NewClipWindow.
type ClipWindow struct {
	rect geom.Rect
}

func NewClipWindow(r geom.Rect) *ClipWindow {
	return &ClipWindow{rect: r}
}

func (c *ClipWindow) Get() geom.Rect { return c.rect }

// Set replaces the clip rectangle. r must satisfy Left < Right and
// Bottom < Top; Set does not check.
func (c *ClipWindow) Set(r geom.Rect) { c.rect = r }

func PanLeft(r geom.Rect, step float64) geom.Rect {
	r.Left -= step
	r.Right -= step
	return r
}

func PanRight(r geom.Rect, step float64) geom.Rect {
	r.Left += step
	r.Right += step
	return r
}

func PanUp(r geom.Rect, step float64) geom.Rect {
	r.Bottom += step
	r.Top += step
	return r
}

func PanDown(r geom.Rect, step float64) geom.Rect {
	r.Bottom -= step
	r.Top -= step
	return r
}

// Zoom scales r by factor around its center. factor < 1 shrinks the window
// (zooms in), factor > 1 grows it.
func Zoom(r geom.Rect, factor float64) geom.Rect {
	cx, cy := r.Center()
	w := r.Width() * factor
	h := r.Height() * factor
	return geom.Rect{
		Left:   cx - w/2,
		Right:  cx + w/2,
		Bottom: cy - h/2,
		Top:    cy + h/2,
	}
}

func ZoomIn(r geom.Rect, factor float64) geom.Rect  { return Zoom(r, factor) }
func ZoomOut(r geom.Rect, factor float64) geom.Rect { return Zoom(r, factor) }

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
