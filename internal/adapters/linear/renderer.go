// Package linear provides a synchronous line renderer for watch events.
package linear

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"go.trai.ch/fswatch/internal/core/domain"
	"go.trai.ch/fswatch/internal/core/ports"
	"go.trai.ch/fswatch/internal/ui/output"
	"go.trai.ch/fswatch/internal/ui/style"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer implements ports.Renderer by writing one line per event.
type Renderer struct {
	mu   sync.Mutex
	w    io.Writer
	out  *termenv.Output
	json bool
	err  error
}

// NewRenderer creates a Renderer writing to w (stdout when nil).
// With asJSON set each event is written as a JSON object.
func NewRenderer(w io.Writer, asJSON bool) *Renderer {
	if w == nil {
		w = os.Stdout
	}
	return &Renderer{w: w, out: output.New(w), json: asJSON}
}

type record struct {
	Kind  string `json:"kind"`
	Path  string `json:"path"`
	Known bool   `json:"known"`
}

// Print writes the event.
func (r *Renderer) Print(kind domain.EventKind, path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.json {
		return json.NewEncoder(r.w).Encode(record{Kind: kind.String(), Path: path, Known: kind.Known()})
	}

	marker, color := decorate(kind)
	line := r.out.String(marker + " " + kind.String()).Foreground(termenv.RGBColor(string(color)))
	_, err := r.out.WriteString(line.String() + " " + path + "\n")
	return err
}

// Start is a no-op.
func (r *Renderer) Start(context.Context) error { return nil }

// Stop is a no-op.
func (r *Renderer) Stop() error { return nil }

// Wait returns the first write error.
func (r *Renderer) Wait() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

// OnEvent prints the event.
func (r *Renderer) OnEvent(kind domain.EventKind, path string) {
	if err := r.Print(kind, path); err != nil {
		r.mu.Lock()
		if r.err == nil {
			r.err = err
		}
		r.mu.Unlock()
	}
}

// OnSessionEnd is a no-op; session errors are logged by the caller.
func (r *Renderer) OnSessionEnd(error) {}

func decorate(kind domain.EventKind) (string, lipgloss.Color) {
	switch kind.Code() {
	case domain.KindFileCreated, domain.KindDirectoryCreated:
		return style.Added, style.Green
	case domain.KindFileUpdated:
		return style.Changed, style.Yellow
	case domain.KindFileDeleted, domain.KindDirectoryDeleted:
		return style.Removed, style.Red
	default:
		return style.Arrow, style.Slate
	}
}
