package render

import (
	"fmt"

	"camview/internal/geom"
)

// Viewport is a region of the output in pixels (or cells), origin top-left.
type Viewport struct {
	X, Y int
	W, H int
}

func (v Viewport) Contains(x, y int) bool {
	return x >= v.X && x < v.X+v.W && y >= v.Y && y < v.Y+v.H
}

func (v Viewport) String() string {
	return fmt.Sprintf("%dx%d+%d+%d", v.W, v.H, v.X, v.Y)
}

// Projection is an orthographic mapping of Clip onto View. World y grows
// upward, output y grows downward.
type Projection struct {
	View Viewport
	Clip geom.Rect
}

func (p Projection) ok() bool {
	return p.Clip.Valid() && p.View.W > 0 && p.View.H > 0
}

// Project maps a world point to output coordinates. Points outside Clip map
// outside View. ok is false when the projection is degenerate.
func (p Projection) Project(pt geom.Point) (x, y float64, ok bool) {
	if !p.ok() {
		return 0, 0, false
	}
	x = float64(p.View.X) + (pt.X-p.Clip.Left)/p.Clip.Width()*float64(p.View.W)
	y = float64(p.View.Y) + (p.Clip.Top-pt.Y)/p.Clip.Height()*float64(p.View.H)
	return x, y, true
}

// ProjectAll projects every point of pts. ok is false when the projection
// is degenerate.
func (p Projection) ProjectAll(pts []geom.Point) ([][2]float64, bool) {
	if !p.ok() {
		return nil, false
	}
	out := make([][2]float64, 0, len(pts))
	for _, pt := range pts {
		x, y, _ := p.Project(pt)
		out = append(out, [2]float64{x, y})
	}
	return out, true
}

// Unproject maps output coordinates back to world coordinates.
func (p Projection) Unproject(x, y float64) (geom.Point, bool) {
	if !p.ok() {
		return geom.Point{}, false
	}
	return geom.Point{
		X: p.Clip.Left + (x-float64(p.View.X))/float64(p.View.W)*p.Clip.Width(),
		Y: p.Clip.Top - (y-float64(p.View.Y))/float64(p.View.H)*p.Clip.Height(),
	}, true
}

// Layout is the pair of output regions: whole world on the left, camera on
// the right.
type Layout struct {
	Left  Viewport
	Right Viewport
}

// SplitHorizontal divides a w x h output into two equal-width, full-height
// viewports.
func SplitHorizontal(w, h int) Layout {
	half := w / 2
	return Layout{
		Left:  Viewport{X: 0, Y: 0, W: half, H: h},
		Right: Viewport{X: half, Y: 0, W: half, H: h},
	}
}
