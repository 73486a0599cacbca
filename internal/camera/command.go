package camera

import (
	"math"

	"camview/internal/geom"
)

// Command is one discrete camera action produced by the input layer.
type Command int

const (
	CmdNone Command = iota
	CmdPanLeft
	CmdPanRight
	CmdPanUp
	CmdPanDown
	CmdZoomIn
	CmdZoomOut
	CmdQuit
)

var commandNames = [...]string{
	CmdNone:     "none",
	CmdPanLeft:  "pan-left",
	CmdPanRight: "pan-right",
	CmdPanUp:    "pan-up",
	CmdPanDown:  "pan-down",
	CmdZoomIn:   "zoom-in",
	CmdZoomOut:  "zoom-out",
	CmdQuit:     "quit",
}

func (c Command) String() string {
	if c < 0 || int(c) >= len(commandNames) {
		return "unknown"
	}
	return commandNames[c]
}

// Settings parameterize Apply.
//
// MinWidth and MaxWidth bound the clip window width reachable by zooming;
// zero disables the bound.
type Settings struct {
	PanStep       float64
	ZoomInFactor  float64
	ZoomOutFactor float64
	MinWidth      float64
	MaxWidth      float64
}

func DefaultSettings() Settings {
	return Settings{
		PanStep:       5.0,
		ZoomInFactor:  0.8,
		ZoomOutFactor: 1.25,
	}
}

// minSpan is the smallest width or height a zoom-in may reach, relative to
// the magnitude of the center. Below it rounding skews the aspect ratio.
const minSpan = 1e-9

// IsZoom reports whether c scales the clip window.
func (c Command) IsZoom() bool { return c == CmdZoomIn || c == CmdZoomOut }

// Apply returns the rectangle that results from cmd. CmdNone and CmdQuit
// return r as is.
// A command that would produce an empty or non-finite rectangle is refused and
// r is returned unchanged. So is a zoom that would leave the configured width
// bounds or shrink below the precision floor.
func Apply(r geom.Rect, cmd Command, s Settings) geom.Rect {
	switch cmd {
	case CmdPanLeft:
		return usable(r, PanLeft(r, s.PanStep))
	case CmdPanRight:
		return usable(r, PanRight(r, s.PanStep))
	case CmdPanUp:
		return usable(r, PanUp(r, s.PanStep))
	case CmdPanDown:
		return usable(r, PanDown(r, s.PanStep))
	case CmdZoomIn:
		return s.bounded(r, ZoomIn(r, s.ZoomInFactor))
	case CmdZoomOut:
		return s.bounded(r, ZoomOut(r, s.ZoomOutFactor))
	}
	return r
}

// usable returns next unless it is empty or non-finite.
func usable(old, next geom.Rect) geom.Rect {
	if !finite(next.Left) || !finite(next.Right) || !finite(next.Bottom) || !finite(next.Top) {
		return old
	}
	if !finite(next.Width()) || !finite(next.Height()) || !next.Valid() {
		return old
	}
	return next
}

func (s Settings) bounded(old, next geom.Rect) geom.Rect {
	if usable(old, next) == old {
		return old
	}
	w, h := next.Width(), next.Height()
	if w < old.Width() {
		cx, cy := next.Center()
		if w < minSpan*max(1, math.Abs(cx)) || h < minSpan*max(1, math.Abs(cy)) {
			return old
		}
	}
	if s.MinWidth > 0 && w < s.MinWidth && w < old.Width() {
		return old
	}
	if s.MaxWidth > 0 && w > s.MaxWidth && w > old.Width() {
		return old
	}
	return next
}

// ParseCommand is the inverse of Command.String.
func ParseCommand(name string) (Command, bool) {
	for c, n := range commandNames {
		if n == name {
			return Command(c), true
		}
	}
	return CmdNone, false
}
