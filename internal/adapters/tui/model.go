package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/fswatch/internal/core/domain"
)

const (
	kindListWidthRatio = 0.3
	eventPaneBorder    = 4
)

// KindRow is one entry of the kind list together with its recent events.
type KindRow struct {
	Name  string
	Code  domain.KindCode
	Count int
	Lines []string
}

func (r *KindRow) add(line string, history int) {
	r.Count++
	r.Lines = append(r.Lines, line)
	if history > 0 && len(r.Lines) > history {
		r.Lines = r.Lines[len(r.Lines)-history:]
	}
}

// Model represents the TUI state.
type Model struct {
	Rows        []*KindRow
	SelectedIdx int
	ListOffset  int
	ListHeight  int
	PaneWidth   int
	PaneHeight  int
	// FollowMode selects the row of each incoming event.
	FollowMode bool
	// History caps the events kept per row.
	History int
	Done    bool
	Err     error
}

// Init initializes the model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Selected returns the highlighted row.
func (m *Model) Selected() *KindRow {
	if m.SelectedIdx >= 0 && m.SelectedIdx < len(m.Rows) {
		return m.Rows[m.SelectedIdx]
	}
	return nil
}

func (m *Model) ensureVisible() {
	if m.ListHeight <= 0 {
		return
	}
	if m.SelectedIdx < m.ListOffset {
		m.ListOffset = m.SelectedIdx
	} else if m.SelectedIdx >= m.ListOffset+m.ListHeight {
		m.ListOffset = m.SelectedIdx - m.ListHeight + 1
	}
}

// rowFor returns the index of the row collecting kind.
func (m *Model) rowFor(kind domain.EventKind) int {
	for i, row := range m.Rows[1:] {
		if row.Code == kind.Code() {
			return i + 1
		}
	}
	return 0
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		listWidth := int(float64(msg.Width) * kindListWidthRatio)
		m.PaneWidth = msg.Width - listWidth - eventPaneBorder
		m.PaneHeight = msg.Height - lipgloss.Height(titleStyle.Render("EVENTS"))
		m.ListHeight = msg.Height - lipgloss.Height(titleStyle.Render("KINDS")+"\n\n")
		m.ensureVisible()

	case MsgEvent:
		line := fmt.Sprintf("%s %s %s", msg.Time.Format("15:04:05"), msg.Kind, msg.Path)
		idx := m.rowFor(msg.Kind)
		m.Rows[0].add(line, m.History)
		if idx > 0 {
			m.Rows[idx].add(line, m.History)
		}
		if m.FollowMode {
			m.SelectedIdx = idx
			m.ensureVisible()
		}

	case MsgSessionEnd:
		m.Done = true
		m.Err = msg.Err
	}

	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c":
		return m, tea.Quit
	case "k", "up":
		if m.SelectedIdx > 0 {
			m.SelectedIdx--
			m.FollowMode = false
			m.ensureVisible()
		}
	case "j", "down":
		if m.SelectedIdx < len(m.Rows)-1 {
			m.SelectedIdx++
			m.FollowMode = false
			m.ensureVisible()
		}
	case "esc":
		m.FollowMode = true
		m.SelectedIdx = 0
		m.ensureVisible()
	}
	return m, nil
}
