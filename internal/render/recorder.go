package render

import "camview/internal/geom"

type OpKind int

const (
	OpClear OpKind = iota
	OpViewport
	OpProjection
	OpColor
	OpPolygon
	OpLineLoop
	OpPresent
)

// Op is one recorded Surface call. Only the fields relevant to Kind are set.
type Op struct {
	Kind     OpKind
	Viewport Viewport
	Clip     geom.Rect
	Color    geom.Color
	Points   []geom.Point
}

// Recorder is a Surface that records calls instead of drawing.
type Recorder struct {
	Ops []Op
	// Err is returned from Present.
	Err error
}

func (r *Recorder) Reset() { r.Ops = r.Ops[:0] }

func (r *Recorder) Clear() { r.Ops = append(r.Ops, Op{Kind: OpClear}) }

func (r *Recorder) SetViewport(v Viewport) {
	r.Ops = append(r.Ops, Op{Kind: OpViewport, Viewport: v})
}

func (r *Recorder) SetProjection(clip geom.Rect) {
	r.Ops = append(r.Ops, Op{Kind: OpProjection, Clip: clip})
}

func (r *Recorder) SetColor(c geom.Color) {
	r.Ops = append(r.Ops, Op{Kind: OpColor, Color: c})
}

func (r *Recorder) DrawPolygon(pts []geom.Point) {
	r.Ops = append(r.Ops, Op{Kind: OpPolygon, Points: append([]geom.Point(nil), pts...)})
}

func (r *Recorder) DrawLineLoop(pts []geom.Point) {
	r.Ops = append(r.Ops, Op{Kind: OpLineLoop, Points: append([]geom.Point(nil), pts...)})
}

func (r *Recorder) Present() error {
	r.Ops = append(r.Ops, Op{Kind: OpPresent})
	return r.Err
}

// Count returns how many recorded ops have the given kind.
func (r *Recorder) Count(k OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == k {
			n++
		}
	}
	return n
}
