package render

import "camview/internal/geom"

// Renderer draws the scene twice: once projected from the fixed world view
// into Layout.Left together with the camera outline, and once projected from
// the camera into Layout.Right. It keeps no per-frame state, so Draw may be
// called any number of times.
type Renderer struct {
	Layout  Layout
	World   geom.Rect
	Scene   geom.Scene
	Outline geom.Color
}

func NewRenderer(layout Layout, world geom.Rect, scene geom.Scene) *Renderer {
	return &Renderer{
		Layout:  layout,
		World:   world,
		Scene:   scene,
		Outline: geom.White,
	}
}

// Draw renders one frame for the given clip window.
func (r *Renderer) Draw(s Surface, clip geom.Rect) error {
	s.Clear()

	s.SetViewport(r.Layout.Left)
	s.SetProjection(r.World)
	s.SetColor(r.Outline)
	s.DrawLineLoop(clip.Corners())
	r.drawScene(s)

	s.SetViewport(r.Layout.Right)
	s.SetProjection(clip)
	r.drawScene(s)

	return s.Present()
}

func (r *Renderer) drawScene(s Surface) {
	for _, p := range r.Scene {
		s.SetColor(p.Color)
		s.DrawPolygon(p.Points)
	}
}

// Pick reports which viewport contains the output position (x, y) and the
// world point under it, given the current clip window.
func (r *Renderer) Pick(x, y int, clip geom.Rect) (geom.Point, bool) {
	var p Projection
	switch {
	case r.Layout.Left.Contains(x, y):
		p = Projection{View: r.Layout.Left, Clip: r.World}
	case r.Layout.Right.Contains(x, y):
		p = Projection{View: r.Layout.Right, Clip: clip}
	default:
		return geom.Point{}, false
	}
	return p.Unproject(float64(x)+0.5, float64(y)+0.5)
}
