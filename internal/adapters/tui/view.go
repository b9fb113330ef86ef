package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/fswatch/internal/ui/style"
)

// View renders the UI.
func (m *Model) View() string {
	if m.ListHeight == 0 {
		return "Initializing..."
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.kindList(),
		m.eventPane(),
	)
}

func (m *Model) kindList() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("KINDS") + "\n\n")

	start := m.ListOffset
	end := min(m.ListOffset+m.ListHeight, len(m.Rows))
	start = min(start, end)

	for i := start; i < end; i++ {
		s.WriteString(m.renderRow(i, m.Rows[i]) + "\n")
	}

	return listStyle.Render(s.String())
}

func (m *Model) renderRow(index int, row *KindRow) string {
	rowStyle := idleStyle
	if row.Count > 0 {
		rowStyle = activeStyle
	}

	cursor := "  "
	if index == m.SelectedIdx {
		cursor = selectedStyle.Render("> ")
		rowStyle = selectedStyle
	}

	return cursor + rowStyle.Render(fmt.Sprintf("%s (%d)", row.Name, row.Count))
}

func (m *Model) eventPane() string {
	row := m.Selected()

	var header string
	switch {
	case m.Err != nil:
		header = failureTitleStyle.Render(style.Cross + " " + m.Err.Error())
	case m.Done:
		header = titleStyle.Render(style.Check + " EVENTS: " + row.Name + " (stopped)")
	default:
		header = titleStyle.Render("EVENTS: " + row.Name)
	}

	lines := row.Lines
	if m.PaneHeight > 0 && len(lines) > m.PaneHeight {
		lines = lines[len(lines)-m.PaneHeight:]
	}

	body := lipgloss.NewStyle().Width(max(m.PaneWidth, 0)).Render(strings.Join(lines, "\n"))
	return paneStyle.Render(lipgloss.JoinVertical(lipgloss.Left, header, body))
}
