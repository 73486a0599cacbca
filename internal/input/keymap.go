// Package input maps key names to camera commands.
package input

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"

	"camview/internal/camera"
)

// KeyMap holds one binding per command. It implements help.KeyMap.
type KeyMap struct {
	Left    key.Binding
	Right   key.Binding
	Up      key.Binding
	Down    key.Binding
	ZoomIn  key.Binding
	ZoomOut key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:    key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "pan left")),
		Right:   key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "pan right")),
		Up:      key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "pan up")),
		Down:    key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "pan down")),
		ZoomIn:  key.NewBinding(key.WithKeys("f1", "+", "="), key.WithHelp("F1/+", "zoom in")),
		ZoomOut: key.NewBinding(key.WithKeys("f2", "-", "_"), key.WithHelp("F2/-", "zoom out")),
		Quit:    key.NewBinding(key.WithKeys("q", "Q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	}
}

// WithKeys returns a copy of km with the keys of the named commands replaced.
// Command names are those of camera.Command.String.
func (km KeyMap) WithKeys(keys map[string][]string) (KeyMap, error) {
	for name, ks := range keys {
		cmd, ok := camera.ParseCommand(name)
		if !ok || cmd == camera.CmdNone {
			return km, fmt.Errorf("keys: unknown command %q", name)
		}
		if len(ks) == 0 {
			return km, fmt.Errorf("keys: %s: no keys", name)
		}
		b := km.binding(cmd)
		h := b.Help()
		*b = key.NewBinding(key.WithKeys(ks...), key.WithHelp(ks[0], h.Desc))
	}
	return km, nil
}

func (km *KeyMap) binding(cmd camera.Command) *key.Binding {
	switch cmd {
	case camera.CmdPanLeft:
		return &km.Left
	case camera.CmdPanRight:
		return &km.Right
	case camera.CmdPanUp:
		return &km.Up
	case camera.CmdPanDown:
		return &km.Down
	case camera.CmdZoomIn:
		return &km.ZoomIn
	case camera.CmdZoomOut:
		return &km.ZoomOut
	case camera.CmdQuit:
		return &km.Quit
	}
	return nil
}

// Bindings lists every binding in command order.
func (km KeyMap) Bindings() []key.Binding {
	return []key.Binding{km.Left, km.Right, km.Up, km.Down, km.ZoomIn, km.ZoomOut, km.Quit}
}

func (km KeyMap) ShortHelp() []key.Binding { return km.Bindings() }

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down},
		{km.ZoomIn, km.ZoomOut},
		{km.Quit},
	}
}
