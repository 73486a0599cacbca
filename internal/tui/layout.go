package tui

import "camview/internal/render"

const (
	headerHeight = 1
	footerHeight = 2
	// border rows plus the pane title
	paneChrome = 3
)

// paneSize is the inner size of one pane in cells.
func (m Model) paneSize() (w, h int) {
	w = max(1, m.width/2-2)
	h = max(1, m.height-headerHeight-footerHeight-paneChrome)
	return w, h
}

// resize fits the canvas and viewports to the terminal. Each pane is w x h
// cells, which is 2w x 4h micro-pixels on the braille canvas.
func (m Model) resize() {
	pw, ph := m.paneSize()
	m.canvas.Resize(2*pw, ph)
	m.renderer.Layout = render.SplitHorizontal(4*pw, 4*ph)
}

// cellToMicro converts a terminal cell to canvas micro-pixels. ok is false
// outside both panes.
func (m Model) cellToMicro(cx, cy int) (mx, my int, ok bool) {
	pw, ph := m.paneSize()
	y := cy - headerHeight - 2
	if y < 0 || y >= ph {
		return 0, 0, false
	}
	switch {
	case cx >= 1 && cx < 1+pw:
		return (cx - 1) * 2, y * 4, true
	case cx >= pw+3 && cx < 2*pw+3:
		return 2*pw + (cx-pw-3)*2, y * 4, true
	}
	return 0, 0, false
}
