package render

import "math"

// Bounds is an axis-aligned box in output coordinates.
type Bounds struct {
	MinX, MinY, MaxX, MaxY float64
}

// Bounds returns v as a box, optionally grown by margin on every side.
func (v Viewport) Bounds(margin float64) Bounds {
	return Bounds{
		MinX: float64(v.X) - margin,
		MinY: float64(v.Y) - margin,
		MaxX: float64(v.X+v.W) + margin,
		MaxY: float64(v.Y+v.H) + margin,
	}
}

// ClipSegment clips the segment a-b to box using Liang-Barsky. ok is false when
// nothing of the segment is inside.
func ClipSegment(a, b [2]float64, box Bounds) (ca, cb [2]float64, ok bool) {
	t0, t1 := 0.0, 1.0
	dx, dy := b[0]-a[0], b[1]-a[1]
	for _, e := range [4][2]float64{
		{-dx, a[0] - box.MinX},
		{dx, box.MaxX - a[0]},
		{-dy, a[1] - box.MinY},
		{dy, box.MaxY - a[1]},
	} {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return ca, cb, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return ca, cb, false
			}
			t0 = math.Max(t0, r)
		} else {
			if r < t0 {
				return ca, cb, false
			}
			t1 = math.Min(t1, r)
		}
	}
	ca = [2]float64{a[0] + t0*dx, a[1] + t0*dy}
	cb = [2]float64{a[0] + t1*dx, a[1] + t1*dy}
	return ca, cb, true
}

// ClipPolygon clips a closed ring to box (Sutherland-Hodgman). The result
// fills the same area inside box as the input under the even-odd rule.
func ClipPolygon(ring [][2]float64, box Bounds) [][2]float64 {
	edges := []struct {
		inside func(p [2]float64) bool
		cross  func(a, b [2]float64) [2]float64
	}{
		{
			func(p [2]float64) bool { return p[0] >= box.MinX },
			func(a, b [2]float64) [2]float64 { return atX(a, b, box.MinX) },
		},
		{
			func(p [2]float64) bool { return p[0] <= box.MaxX },
			func(a, b [2]float64) [2]float64 { return atX(a, b, box.MaxX) },
		},
		{
			func(p [2]float64) bool { return p[1] >= box.MinY },
			func(a, b [2]float64) [2]float64 { return atY(a, b, box.MinY) },
		},
		{
			func(p [2]float64) bool { return p[1] <= box.MaxY },
			func(a, b [2]float64) [2]float64 { return atY(a, b, box.MaxY) },
		},
	}
	out := ring
	for _, e := range edges {
		if len(out) == 0 {
			return nil
		}
		in := out
		out = make([][2]float64, 0, len(in)+4)
		prev := in[len(in)-1]
		for _, cur := range in {
			switch {
			case e.inside(cur) && !e.inside(prev):
				out = append(out, e.cross(prev, cur), cur)
			case e.inside(cur):
				out = append(out, cur)
			case e.inside(prev):
				out = append(out, e.cross(prev, cur))
			}
			prev = cur
		}
	}
	return out
}

func atX(a, b [2]float64, x float64) [2]float64 {
	t := (x - a[0]) / (b[0] - a[0])
	return [2]float64{x, a[1] + t*(b[1]-a[1])}
}

func atY(a, b [2]float64, y float64) [2]float64 {
	t := (y - a[1]) / (b[1] - a[1])
	return [2]float64{a[0] + t*(b[0]-a[0]), y}
}
