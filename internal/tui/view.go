package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	clip := m.cam.Get()
	if err := m.renderer.Draw(m.canvas, clip); err != nil {
		m.log.Warn("draw", "err", err)
	}

	header := titleStyle.Render(" camview ─ " + m.title + " ")
	header = lipgloss.NewStyle().Width(m.width).MaxHeight(headerHeight).Render(header)

	pw, ph := m.paneSize()
	left := m.pane("world", m.canvas.Lines(m.renderer.Layout.Left), pw, ph)
	right := m.pane("camera", m.canvas.Lines(m.renderer.Layout.Right), pw, ph)
	body := lipgloss.JoinHorizontal(lipgloss.Top, left, right)

	footer := lipgloss.JoinVertical(lipgloss.Left, m.statusLine(), m.help.View(m.keys))
	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(m.width).Height(m.height).MaxHeight(m.height).Render(ui)
}

func (m Model) pane(title string, lines []string, w, h int) string {
	for len(lines) < h {
		lines = append(lines, "")
	}
	content := titleStyle.Render(title) + "\n" + strings.Join(lines[:h], "\n")
	return paneStyle.Width(w).Height(h + 1).Render(content)
}

func (m Model) statusLine() string {
	st := dimStyle
	if m.warn {
		st = warnStyle
	}
	status := st.Render(" " + m.status + " ")

	clip := m.cam.Get()
	info := fmt.Sprintf(" clip %s  zoom %.2fx ", clip, m.zoom())
	if m.hovering {
		info += fmt.Sprintf(" %s x=%.1f y=%.1f ", m.hoverPane, m.hoverAt.X, m.hoverAt.Y)
	}
	info = dimStyle.Render(info)

	spacer := max(0, m.width-lipgloss.Width(status)-lipgloss.Width(info))
	line := status + strings.Repeat(" ", spacer) + info
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}

// zoom is the magnification relative to the initial clip window.
func (m Model) zoom() float64 {
	w := m.cam.Get().Width()
	if w <= 0 {
		return 0
	}
	return m.start.Width() / w
}
