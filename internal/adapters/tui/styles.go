package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/fswatch/internal/ui/style"
)

var (
	listStyle = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, true, false, false).
			BorderForeground(style.Slate).
			MarginRight(1).
			PaddingRight(1)

	paneStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	idleStyle = lipgloss.NewStyle().
			Foreground(style.Slate)

	activeStyle = lipgloss.NewStyle().
			Foreground(style.Green)

	selectedStyle = lipgloss.NewStyle().
			Foreground(style.Iris).
			Bold(true)

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Iris).
			Foreground(style.White)

	failureTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Padding(0, 1).
				Background(style.Red).
				Foreground(style.White)
)
