// Package braille is a terminal Surface. Every cell holds a 2x4 grid of
// micro-pixels drawn with Unicode braille patterns; the cell takes the color
// of the last primitive that touched it.
package braille

import (
	"math"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"camview/internal/geom"
	"camview/internal/render"
)

// Canvas implements render.Surface. Viewports and projections are expressed
// in micro-pixels: a canvas of w x h cells is 2w x 4h micro-pixels.
type Canvas struct {
	w, h  int
	mask  [][]uint8
	color [][]geom.Color

	proj render.Projection
	cur  geom.Color
	xs   []float64

	styles map[geom.Color]lipgloss.Style
}

var _ render.Surface = (*Canvas)(nil)

func New(w, h int) *Canvas {
	c := &Canvas{styles: make(map[geom.Color]lipgloss.Style)}
	c.Resize(w, h)
	return c
}

// Resize reallocates the canvas to w x h cells and clears it.
func (c *Canvas) Resize(w, h int) {
	c.w, c.h = max(0, w), max(0, h)
	c.mask = make([][]uint8, c.h)
	c.color = make([][]geom.Color, c.h)
	for i := range c.mask {
		c.mask[i] = make([]uint8, c.w)
		c.color[i] = make([]geom.Color, c.w)
	}
}

// Size returns the canvas size in cells.
func (c *Canvas) Size() (int, int) { return c.w, c.h }

func (c *Canvas) Clear() {
	for y := range c.mask {
		clear(c.mask[y])
		clear(c.color[y])
	}
}

func (c *Canvas) SetViewport(v render.Viewport) { c.proj.View = v }
func (c *Canvas) SetProjection(r geom.Rect)     { c.proj.Clip = r }
func (c *Canvas) SetColor(col geom.Color)       { c.cur = col }
func (c *Canvas) Present() error                { return nil }

func (c *Canvas) DrawPolygon(pts []geom.Point) {
	sp, ok := c.proj.ProjectAll(pts)
	if !ok || len(sp) < 3 {
		return
	}
	c.fill(sp)
	c.outline(sp)
}

func (c *Canvas) DrawLineLoop(pts []geom.Point) {
	sp, ok := c.proj.ProjectAll(pts)
	if !ok || len(sp) < 2 {
		return
	}
	c.outline(sp)
}

// fill rasterizes a closed ring with the even-odd rule, sampling at
// micro-pixel centers, restricted to the current viewport.
func (c *Canvas) fill(ring [][2]float64) {
	v := c.proj.View
	n := len(ring)
	for my := v.Y; my < v.Y+v.H; my++ {
		y := float64(my) + 0.5
		xs := c.xs[:0]
		for i := 0; i < n; i++ {
			a := ring[i]
			b := ring[(i+1)%n]
			if (a[1] <= y && b[1] > y) || (b[1] <= y && a[1] > y) {
				t := (y - a[1]) / (b[1] - a[1])
				xs = append(xs, a[0]+t*(b[0]-a[0]))
			}
		}
		sort.Float64s(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			x0 := math.Max(math.Ceil(xs[i]-0.5), float64(v.X))
			x1 := math.Min(math.Floor(xs[i+1]-0.5), float64(v.X+v.W-1))
			for mx := int(x0); mx <= int(x1); mx++ {
				c.setPixel(mx, my)
			}
		}
		c.xs = xs
	}
}

func (c *Canvas) outline(ring [][2]float64) {
	for i := range ring {
		a := ring[i]
		b := ring[(i+1)%len(ring)]
		c.segment(a[0], a[1], b[0], b[1])
	}
}

// segment clips a line to the current viewport and draws what remains.
func (c *Canvas) segment(x0, y0, x1, y1 float64) {
	box := c.proj.View.Bounds(0)
	box.MaxX -= 1e-6
	box.MaxY -= 1e-6
	a, b, ok := render.ClipSegment([2]float64{x0, y0}, [2]float64{x1, y1}, box)
	if !ok {
		return
	}
	c.drawLineMicro(
		int(math.Floor(a[0])), int(math.Floor(a[1])),
		int(math.Floor(b[0])), int(math.Floor(b[1])),
	)
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (c *Canvas) setPixel(mx, my int) {
	if !c.proj.View.Contains(mx, my) || mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= c.h || cx >= c.w {
		return
	}
	var bit uint8
	if rx == 0 {
		switch ry {
		case 0:
			bit = 0x01
		case 1:
			bit = 0x02
		case 2:
			bit = 0x04
		case 3:
			bit = 0x40
		}
	} else {
		switch ry {
		case 0:
			bit = 0x08
		case 1:
			bit = 0x10
		case 2:
			bit = 0x20
		case 3:
			bit = 0x80
		}
	}
	c.mask[cy][cx] |= bit
	c.color[cy][cx] = c.cur
}

// drawLineMicro draws a line on the microgrid using Bresenham
func (c *Canvas) drawLineMicro(x0, y0, x1, y1 int) {
	dx := abs(x1 - x0)
	sx := -1
	if x0 < x1 {
		sx = 1
	}
	dy := -abs(y1 - y0)
	sy := -1
	if y0 < y1 {
		sy = 1
	}
	err := dx + dy
	for {
		c.setPixel(x0, y0)
		if x0 == x1 && y0 == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x0 += sx
		}
		if e2 <= dx {
			err += dx
			y0 += sy
		}
	}
}

// Mask returns the braille dot mask of cell (cx, cy).
func (c *Canvas) Mask(cx, cy int) uint8 {
	if cy < 0 || cy >= c.h || cx < 0 || cx >= c.w {
		return 0
	}
	return c.mask[cy][cx]
}

// ColorAt returns the color of cell (cx, cy) and whether it is inked.
func (c *Canvas) ColorAt(cx, cy int) (geom.Color, bool) {
	m := c.Mask(cx, cy)
	if m == 0 {
		return geom.Color{}, false
	}
	return c.color[cy][cx], true
}

// Lines renders the cells covered by v (in micro-pixels) as styled rows.
// Runs of equally colored cells share one style.
func (c *Canvas) Lines(v render.Viewport) []string {
	x0, x1 := v.X/2, min(c.w, (v.X+v.W+1)/2)
	y0, y1 := v.Y/4, min(c.h, (v.Y+v.H+3)/4)
	out := make([]string, 0, max(0, y1-y0))
	var sb, run strings.Builder
	for y := y0; y < y1; y++ {
		sb.Reset()
		run.Reset()
		var runCol geom.Color
		runInk := false
		flush := func() {
			if run.Len() == 0 {
				return
			}
			if runInk {
				sb.WriteString(c.style(runCol).Render(run.String()))
			} else {
				sb.WriteString(run.String())
			}
			run.Reset()
		}
		for x := x0; x < x1; x++ {
			col, ink := c.ColorAt(x, y)
			if ink != runInk || (ink && col != runCol) {
				flush()
				runCol, runInk = col, ink
			}
			if ink {
				run.WriteRune(rune(0x2800 + int(c.mask[y][x])))
			} else {
				run.WriteByte(' ')
			}
		}
		flush()
		out = append(out, sb.String())
	}
	return out
}

func (c *Canvas) style(col geom.Color) lipgloss.Style {
	s, ok := c.styles[col]
	if !ok {
		s = lipgloss.NewStyle().Foreground(lipgloss.Color(col.Hex()))
		c.styles[col] = s
	}
	return s
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
