package tui_test

import (
	"errors"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fswatch/internal/adapters/tui"
	"go.trai.ch/fswatch/internal/core/domain"
)

var at = time.Date(2026, 1, 2, 15, 4, 5, 0, time.UTC)

func update(t *testing.T, m *tui.Model, msg tea.Msg) *tui.Model {
	t.Helper()
	next, _ := m.Update(msg)
	return next.(*tui.Model)
}

func TestNewModel_Rows(t *testing.T) {
	m := tui.NewModel(nil)

	names := make([]string, 0, len(m.Rows))
	for _, row := range m.Rows {
		names = append(names, row.Name)
	}
	assert.Equal(t, []string{
		tui.RowAll, "fileCreated", "fileUpdated", "fileDeleted",
		"directoryCreated", "directoryDeleted", tui.RowOther,
	}, names)
	assert.True(t, m.FollowMode)
}

func TestUpdate_EventRouting(t *testing.T) {
	m := tui.NewModel(nil)

	m = update(t, m, tui.MsgEvent{Kind: domain.FileDeleted, Path: "/srv/a", Time: at})
	m = update(t, m, tui.MsgEvent{Kind: domain.UnknownKind("symlinkCreated"), Path: "/srv/l", Time: at})

	assert.Equal(t, 2, m.Rows[0].Count)
	assert.Equal(t, 1, m.Rows[3].Count)
	assert.Equal(t, []string{"15:04:05 fileDeleted /srv/a"}, m.Rows[3].Lines)
	assert.Equal(t, []string{"15:04:05 symlinkCreated /srv/l"}, m.Rows[6].Lines)

	// Follow mode selects the row of the latest event.
	assert.Equal(t, 6, m.SelectedIdx)
}

func TestUpdate_HistoryLimit(t *testing.T) {
	m := tui.NewModel(nil)
	m.History = 2

	for _, p := range []string{"/a", "/b", "/c"} {
		m = update(t, m, tui.MsgEvent{Kind: domain.FileCreated, Path: p, Time: at})
	}

	assert.Equal(t, 3, m.Rows[1].Count)
	assert.Equal(t, []string{"15:04:05 fileCreated /b", "15:04:05 fileCreated /c"}, m.Rows[1].Lines)
}

func TestUpdate_Navigation(t *testing.T) {
	m := tui.NewModel(nil)
	m.ListHeight = 3

	for range 4 {
		m = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 4, m.SelectedIdx)
	assert.Equal(t, 2, m.ListOffset)
	assert.False(t, m.FollowMode)

	// Manual selection survives new events.
	m = update(t, m, tui.MsgEvent{Kind: domain.FileCreated, Path: "/a", Time: at})
	assert.Equal(t, 4, m.SelectedIdx)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("k")})
	assert.Equal(t, 3, m.SelectedIdx)

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.True(t, m.FollowMode)
	assert.Equal(t, 0, m.SelectedIdx)
	assert.Equal(t, 0, m.ListOffset)
}

func TestUpdate_Quit(t *testing.T) {
	m := tui.NewModel(nil)

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}

func TestUpdate_SessionEnd(t *testing.T) {
	m := tui.NewModel(nil)
	boom := errors.New("boom")

	m = update(t, m, tui.MsgSessionEnd{Err: boom})
	assert.True(t, m.Done)
	assert.Equal(t, boom, m.Err)
}

func TestUpdate_WindowSize(t *testing.T) {
	m := tui.NewModel(nil)

	m = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 20})
	assert.Equal(t, 66, m.PaneWidth)
	assert.Equal(t, 19, m.PaneHeight)
	assert.Equal(t, 17, m.ListHeight)
}
