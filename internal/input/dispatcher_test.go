package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"camview/internal/camera"
)

func TestDefaultDispatch(t *testing.T) {
	d := NewDispatcher(DefaultKeyMap())
	cases := map[string]camera.Command{
		"q":      camera.CmdQuit,
		"Q":      camera.CmdQuit,
		"esc":    camera.CmdQuit,
		"ctrl+c": camera.CmdQuit,
		"left":   camera.CmdPanLeft,
		"right":  camera.CmdPanRight,
		"up":     camera.CmdPanUp,
		"down":   camera.CmdPanDown,
		"f1":     camera.CmdZoomIn,
		"+":      camera.CmdZoomIn,
		"f2":     camera.CmdZoomOut,
		"-":      camera.CmdZoomOut,
		"x":      camera.CmdNone,
		"f3":     camera.CmdNone,
		"enter":  camera.CmdNone,
	}
	for k, want := range cases {
		assert.Equal(t, want, d.Dispatch(Name(k)), k)
	}
}

func TestDispatchTeaKeys(t *testing.T) {
	d := NewDispatcher(DefaultKeyMap())
	assert.Equal(t, camera.CmdPanLeft, d.Dispatch(tea.KeyMsg{Type: tea.KeyLeft}))
	assert.Equal(t, camera.CmdZoomIn, d.Dispatch(tea.KeyMsg{Type: tea.KeyF1}))
	assert.Equal(t, camera.CmdZoomOut, d.Dispatch(tea.KeyMsg{Type: tea.KeyF2}))
	assert.Equal(t, camera.CmdQuit, d.Dispatch(tea.KeyMsg{Type: tea.KeyEsc}))
	assert.Equal(t, camera.CmdQuit, d.Dispatch(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}))
	assert.Equal(t, camera.CmdNone, d.Dispatch(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'z'}}))
}

func TestWithKeys(t *testing.T) {
	km, err := DefaultKeyMap().WithKeys(map[string][]string{
		"pan-left": {"h", "a"},
		"quit":     {"x"},
	})
	require.NoError(t, err)
	d := NewDispatcher(km)
	assert.Equal(t, camera.CmdPanLeft, d.Dispatch(Name("h")))
	assert.Equal(t, camera.CmdPanLeft, d.Dispatch(Name("a")))
	assert.Equal(t, camera.CmdNone, d.Dispatch(Name("left")))
	assert.Equal(t, camera.CmdQuit, d.Dispatch(Name("x")))
	assert.Equal(t, camera.CmdNone, d.Dispatch(Name("q")))
	assert.Equal(t, "pan left", km.Left.Help().Desc)

	_, err = DefaultKeyMap().WithKeys(map[string][]string{"jump": {"j"}})
	assert.ErrorContains(t, err, "unknown command")
	_, err = DefaultKeyMap().WithKeys(map[string][]string{"none": {"j"}})
	assert.Error(t, err)
	_, err = DefaultKeyMap().WithKeys(map[string][]string{"zoom-in": nil})
	assert.ErrorContains(t, err, "no keys")
}

func TestHelpBindings(t *testing.T) {
	km := DefaultKeyMap()
	assert.Len(t, km.ShortHelp(), 7)
	n := 0
	for _, col := range km.FullHelp() {
		n += len(col)
	}
	assert.Equal(t, 7, n)
}
