package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"camview/internal/camera"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.resize()
	case tea.KeyMsg:
		if key.Matches(msg, m.helpToggle) {
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
		return m.apply(m.dispatcher.Dispatch(msg))
	case tea.MouseMsg:
		mx, my, ok := m.cellToMicro(msg.X, msg.Y)
		if !ok {
			m.hovering = false
			break
		}
		pt, ok := m.renderer.Pick(mx, my, m.cam.Get())
		m.hovering = ok
		m.hoverAt = pt
		m.hoverPane = "world"
		if m.renderer.Layout.Right.Contains(mx, my) {
			m.hoverPane = "camera"
		}
	}
	return m, nil
}

// apply runs one camera command against the clip window.
func (m Model) apply(cmd camera.Command) (tea.Model, tea.Cmd) {
	switch cmd {
	case camera.CmdNone:
		return m, nil
	case camera.CmdQuit:
		m.log.Info("quit", "clip", m.cam.Get())
		return m, tea.Quit
	}
	before := m.cam.Get()
	next := camera.Apply(before, cmd, m.settings)
	if next == before {
		m.status = fmt.Sprintf("%s: refused", cmd)
		if cmd.IsZoom() {
			m.status = fmt.Sprintf("%s: zoom limit reached", cmd)
		}
		m.warn = true
		m.log.Debug("command refused", "cmd", cmd, "clip", before)
		return m, nil
	}
	m.cam.Set(next)
	m.status = cmd.String()
	m.warn = false
	m.log.Debug("command", "cmd", cmd, "clip", next)
	return m, nil
}
