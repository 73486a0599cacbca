package braille

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camview/internal/geom"
	"camview/internal/render"
)

var (
	red  = geom.Color{R: 1}
	blue = geom.Color{B: 1}
)

// newSquareCanvas returns an 8x4 cell canvas (16x16 micro-pixels) whose
// projection maps world [0,16]x[0,16] onto every micro-pixel.
func newSquareCanvas() *Canvas {
	c := New(8, 4)
	c.SetViewport(render.Viewport{W: 16, H: 16})
	c.SetProjection(geom.R(0, 16, 0, 16))
	return c
}

func square(x0, y0, x1, y1 float64) []geom.Point {
	return []geom.Point{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
}

func TestFillCoversViewport(t *testing.T) {
	c := newSquareCanvas()
	c.SetColor(red)
	c.DrawPolygon(square(0, 0, 16, 16))
	for cy := 0; cy < 4; cy++ {
		for cx := 0; cx < 8; cx++ {
			assert.Equal(t, uint8(0xFF), c.Mask(cx, cy), "cell %d,%d", cx, cy)
		}
	}
}

func TestViewportClips(t *testing.T) {
	c := New(8, 4)
	c.SetViewport(render.Viewport{W: 8, H: 16})
	c.SetProjection(geom.R(0, 16, 0, 16))
	c.SetColor(red)
	c.DrawPolygon(square(-100, -100, 100, 100))
	c.DrawLineLoop(square(-50, -50, 50, 50))

	for cy := 0; cy < 4; cy++ {
		for cx := 0; cx < 8; cx++ {
			if cx < 4 {
				assert.Equal(t, uint8(0xFF), c.Mask(cx, cy))
			} else {
				assert.Zero(t, c.Mask(cx, cy))
			}
		}
	}
}

func TestLineLoopLeavesInteriorEmpty(t *testing.T) {
	c := newSquareCanvas()
	c.SetColor(geom.White)
	c.DrawLineLoop(square(0.5, 0.5, 15.5, 15.5))

	_, ink := c.ColorAt(0, 0)
	assert.True(t, ink)
	_, ink = c.ColorAt(7, 3)
	assert.True(t, ink)
	assert.Zero(t, c.Mask(4, 2))
	assert.Zero(t, c.Mask(3, 1))
}

func TestLaterPolygonColorWins(t *testing.T) {
	c := newSquareCanvas()
	c.SetColor(red)
	c.DrawPolygon(square(0, 0, 16, 16))
	c.SetColor(blue)
	c.DrawPolygon(square(0, 12, 2, 16))

	col, ok := c.ColorAt(0, 0)
	require.True(t, ok)
	assert.Equal(t, blue, col)
	col, ok = c.ColorAt(7, 3)
	require.True(t, ok)
	assert.Equal(t, red, col)
}

func TestClearAndDegenerateProjection(t *testing.T) {
	c := newSquareCanvas()
	c.DrawPolygon(square(0, 0, 16, 16))
	c.Clear()
	assert.Zero(t, c.Mask(0, 0))

	c.SetProjection(geom.R(1, 1, 0, 16))
	c.DrawPolygon(square(0, 0, 16, 16))
	assert.Zero(t, c.Mask(0, 0))
}

func TestDeepZoomStaysBounded(t *testing.T) {
	c := newSquareCanvas()
	c.SetProjection(geom.R(-1e-9, 1e-9, -1e-9, 1e-9))
	c.DrawLineLoop(square(-400, -200, 400, 200))
	c.DrawPolygon(square(-400, -200, 400, 200))
	assert.Equal(t, uint8(0xFF), c.Mask(4, 2))
}

func TestLines(t *testing.T) {
	c := newSquareCanvas()
	c.SetColor(red)
	c.DrawPolygon(square(0, 0, 7.5, 16))

	lines := c.Lines(render.Viewport{W: 16, H: 16})
	require.Len(t, lines, 4)
	for _, l := range lines {
		assert.Equal(t, 8, lipgloss.Width(l))
		assert.Equal(t, 4, strings.Count(l, "⣿"))
	}

	right := c.Lines(render.Viewport{X: 8, W: 8, H: 16})
	require.Len(t, right, 4)
	assert.Equal(t, "    ", right[0])
}

func TestResize(t *testing.T) {
	c := New(2, 2)
	c.Resize(10, 3)
	w, h := c.Size()
	assert.Equal(t, 10, w)
	assert.Equal(t, 3, h)
	assert.Zero(t, c.Mask(9, 2))
}
