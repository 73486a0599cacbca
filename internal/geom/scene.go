package geom

// WorldView is the fixed whole-world rectangle shown in the left viewport.
func WorldView() Rect { return R(-400, 400, -200, 200) }

// DefaultClip is the initial camera rectangle; its aspect ratio is 2.
func DefaultClip() Rect { return R(-200, 200, -100, 100) }

// DefaultScene returns the built-in polygons. Each call returns a fresh copy.
func DefaultScene() Scene {
	return Scene{
		{
			Color:  Color{1, 0, 0},
			Points: []Point{{50, 50}, {70, 50}, {70, 70}, {50, 70}},
		},
		{
			Color:  Color{0, 0.4, 0.8},
			Points: []Point{{255, -175}, {375, -150}, {375, 170}, {145, 190}},
		},
		{
			Color:  Color{1, 1, 0},
			Points: []Point{{-300, 100}, {-200, 100}, {-200, 150}, {-250, 250}, {-300, 250}},
		},
		{
			Color:  Color{0, 1, 0},
			Points: []Point{{-30, -50}, {-10, -50}, {-20, -30}},
		},
		{
			Color:  Color{0.4, 1, 1},
			Points: []Point{{-300, -150}, {-200, -150}, {-250, -100}},
		},
		{
			Color:  Color{0, 0, 1},
			Points: []Point{{-30, 150}, {-10, 150}, {-20, 200}},
		},
	}
}

// FitWorld frames s for an output of the given width/height aspect: the
// scene bounds plus a 5% margin on each side, widened or heightened around
// their center. ok is false when s has no area.
func (s Scene) FitWorld(aspect float64) (Rect, bool) {
	b, ok := s.Bounds()
	if !ok || !b.Valid() || !(aspect > 0) {
		return Rect{}, false
	}
	cx, cy := b.Center()
	w, h := b.Width()*1.1, b.Height()*1.1
	if w/h < aspect {
		w = h * aspect
	} else {
		h = w / aspect
	}
	return R(cx-w/2, cx+w/2, cy-h/2, cy+h/2), true
}
