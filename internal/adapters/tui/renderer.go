package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/fswatch/internal/core/domain"
	"go.trai.ch/fswatch/internal/core/ports"
)

var _ ports.Renderer = (*Renderer)(nil)

// Renderer wraps the Bubble Tea model as a ports.Renderer.
type Renderer struct {
	program *tea.Program
	model   *Model
	onExit  func()
	errCh   chan error
}

// NewRenderer creates a TUI renderer. onExit, when set, runs once the
// program has terminated, including when the user quits.
func NewRenderer(model *Model, onExit func(), opts ...tea.ProgramOption) *Renderer {
	return &Renderer{
		program: tea.NewProgram(model, opts...),
		model:   model,
		onExit:  onExit,
		errCh:   make(chan error, 1),
	}
}

// Start launches the TUI in a background goroutine.
func (r *Renderer) Start(_ context.Context) error {
	go func() {
		_, err := r.program.Run()
		if r.onExit != nil {
			r.onExit()
		}
		r.errCh <- err
	}()
	return nil
}

// Stop signals the TUI to quit.
func (r *Renderer) Stop() error {
	r.program.Quit()
	return nil
}

// Wait blocks until the TUI has terminated.
func (r *Renderer) Wait() error {
	return <-r.errCh
}

// OnEvent forwards an event to the TUI.
func (r *Renderer) OnEvent(kind domain.EventKind, path string) {
	r.program.Send(MsgEvent{Kind: kind, Path: path, Time: time.Now()})
}

// OnSessionEnd forwards the end of the session to the TUI.
func (r *Renderer) OnSessionEnd(err error) {
	r.program.Send(MsgSessionEnd{Err: err})
}

// Program returns the underlying tea.Program for testing.
func (r *Renderer) Program() *tea.Program {
	return r.program
}
