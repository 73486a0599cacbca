// Package render draws a scene into two side-by-side viewports through a
// small immediate-mode drawing interface.
package render

import "camview/internal/geom"

// Surface is the drawing service a backend provides. Coordinates passed to
// DrawPolygon and DrawLineLoop are world coordinates; the surface maps them
// through the current projection into the current viewport.
type Surface interface {
	Clear()
	SetViewport(v Viewport)
	SetProjection(clip geom.Rect)
	SetColor(c geom.Color)
	DrawPolygon(pts []geom.Point)
	DrawLineLoop(pts []geom.Point)
	// Present finishes the frame.
	Present() error
}
