package input

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"camview/internal/camera"
)

// Name is a key name such as "left" or "f1", the same names
// tea.KeyMsg.String produces.
type Name string

func (n Name) String() string { return string(n) }

// Dispatcher is a stateless table from keys to commands.
type Dispatcher struct {
	table []entry
}

type entry struct {
	b   key.Binding
	cmd camera.Command
}

func NewDispatcher(km KeyMap) *Dispatcher {
	return &Dispatcher{table: []entry{
		{km.Quit, camera.CmdQuit},
		{km.Left, camera.CmdPanLeft},
		{km.Right, camera.CmdPanRight},
		{km.Up, camera.CmdPanUp},
		{km.Down, camera.CmdPanDown},
		{km.ZoomIn, camera.CmdZoomIn},
		{km.ZoomOut, camera.CmdZoomOut},
	}}
}

// Dispatch returns the command bound to k, or camera.CmdNone.
func (d *Dispatcher) Dispatch(k fmt.Stringer) camera.Command {
	for _, e := range d.table {
		if key.Matches(k, e.b) {
			return e.cmd
		}
	}
	return camera.CmdNone
}
