package geom

import "fmt"

// Rect is an axis-aligned rectangle in world coordinates.
// Valid rectangles have Left < Right and Bottom < Top.
type Rect struct {
	Left   float64
	Right  float64
	Bottom float64
	Top    float64
}

func R(left, right, bottom, top float64) Rect {
	return Rect{Left: left, Right: right, Bottom: bottom, Top: top}
}

func (r Rect) Width() float64  { return r.Right - r.Left }
func (r Rect) Height() float64 { return r.Top - r.Bottom }

// Center returns the midpoint of both axes.
func (r Rect) Center() (float64, float64) {
	return r.Left + r.Width()/2, r.Bottom + r.Height()/2
}

// Aspect is width over height.
func (r Rect) Aspect() float64 { return r.Width() / r.Height() }

func (r Rect) Valid() bool { return r.Left < r.Right && r.Bottom < r.Top }

// Corners returns the outline of r counter-clockwise from bottom-left.
func (r Rect) Corners() []Point {
	return []Point{
		{r.Left, r.Bottom},
		{r.Right, r.Bottom},
		{r.Right, r.Top},
		{r.Left, r.Top},
	}
}

func (r Rect) String() string {
	return fmt.Sprintf("[%.2f, %.2f] x [%.2f, %.2f]", r.Left, r.Right, r.Bottom, r.Top)
}

// Point is a 2D vertex in world coordinates.
type Point struct {
	X float64
	Y float64
}

// Color is an RGB triple with components in [0,1].
type Color struct {
	R, G, B float64
}

var (
	White = Color{1, 1, 1}
	Black = Color{0, 0, 0}
)

// Hex renders c as #rrggbb.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", to8(c.R), to8(c.G), to8(c.B))
}

func to8(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// Polygon is a filled simple polygon with a solid color.
type Polygon struct {
	Points []Point
	Color  Color
}

// Scene is drawn in order; later polygons paint over earlier ones.
type Scene []Polygon

// Bounds returns the bounding rectangle of every vertex in s.
func (s Scene) Bounds() (Rect, bool) {
	var b Rect
	n := 0
	for _, p := range s {
		for _, v := range p.Points {
			if n == 0 {
				b = Rect{Left: v.X, Right: v.X, Bottom: v.Y, Top: v.Y}
			} else {
				if v.X < b.Left {
					b.Left = v.X
				}
				if v.Y < b.Bottom {
					b.Bottom = v.Y
				}
				if v.X > b.Right {
					b.Right = v.X
				}
				if v.Y > b.Top {
					b.Top = v.Y
				}
			}
			n++
		}
	}
	return b, n > 0
}
