// Package tui provides a terminal user interface for watch sessions.
package tui

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/fswatch/internal/core/domain"
	"go.trai.ch/fswatch/internal/ui/output"
)

const (
	// RowAll is the label of the row collecting every event.
	RowAll = "all"
	// RowOther is the label of the row collecting unknown kinds.
	RowOther = "other"

	defaultHistory = 1000
)

// NewModel creates a model with one row per known kind, plus the all and
// other rows. Colors follow the terminal behind w.
func NewModel(w io.Writer) *Model {
	if w == nil {
		w = os.Stderr
	}
	lipgloss.SetColorProfile(output.New(w).Profile)

	rows := []*KindRow{{Name: RowAll}}
	for _, kind := range domain.KnownKinds() {
		rows = append(rows, &KindRow{Name: kind.String(), Code: kind.Code()})
	}
	rows = append(rows, &KindRow{Name: RowOther, Code: domain.KindUnknown})

	return &Model{
		Rows:       rows,
		FollowMode: true,
		History:    defaultHistory,
	}
}
