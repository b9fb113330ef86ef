package app

import (
	"context"
	"errors"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/fswatch/internal/adapters/linear" //nolint:depguard // Wired in app layer
	"go.trai.ch/fswatch/internal/adapters/tui"    //nolint:depguard // Wired in app layer
	"go.trai.ch/fswatch/internal/core/domain"
	"go.trai.ch/fswatch/internal/core/ports"
	"go.trai.ch/fswatch/internal/engine/dispatch"
	"go.trai.ch/zerr"
)

// DisplayMode selects how a Display renders events.
type DisplayMode uint8

const (
	// DisplayLines prints one styled line per event.
	DisplayLines DisplayMode = iota
	// DisplayJSON prints one JSON object per event.
	DisplayJSON
	// DisplayTUI shows events in an interactive terminal UI.
	DisplayTUI
)

// Display renders the events of one session.
type Display struct {
	parent   context.Context
	cancel   context.CancelFunc
	renderer ports.Renderer
}

// WithTeaOptions sets the options for the TUI program.
func (a *App) WithTeaOptions(opts ...tea.ProgramOption) *App {
	a.teaOptions = append(a.teaOptions, opts...)
	return a
}

// NewDisplay starts a renderer writing to out (stdout when nil). The returned
// context is cancelled when the user quits the TUI.
func (a *App) NewDisplay(ctx context.Context, out io.Writer, mode DisplayMode) (*Display, context.Context, error) {
	sessionCtx, cancel := context.WithCancel(ctx)

	var r ports.Renderer
	switch mode {
	case DisplayLines, DisplayJSON:
		r = linear.NewRenderer(out, mode == DisplayJSON)
	case DisplayTUI:
		opts := append([]tea.ProgramOption{tea.WithAltScreen()}, a.teaOptions...)
		if out != nil {
			opts = append(opts, tea.WithOutput(out))
		}
		r = tui.NewRenderer(tui.NewModel(out), cancel, opts...)
	default:
		cancel()
		return nil, ctx, zerr.With(zerr.New("unknown display mode"), "mode", int(mode))
	}
	return startDisplay(ctx, sessionCtx, cancel, r)
}

func startDisplay(
	parent, sessionCtx context.Context,
	cancel context.CancelFunc,
	r ports.Renderer,
) (*Display, context.Context, error) {
	if err := r.Start(sessionCtx); err != nil {
		cancel()
		return nil, parent, zerr.Wrap(err, "failed to start display")
	}
	return &Display{parent: parent, cancel: cancel, renderer: r}, sessionCtx, nil
}

// Observer returns the listener that feeds the renderer.
func (d *Display) Observer() dispatch.ChangeHandler {
	return dispatch.ChangeHandlerFunc(func(kind domain.EventKind, path string) error {
		d.renderer.OnEvent(kind, path)
		return nil
	})
}

// Finish reports the session result to the renderer and waits for it to
// shut down. A session ended by quitting the TUI counts as a normal stop.
func (d *Display) Finish(err error) error {
	defer d.cancel()

	if errors.Is(err, context.Canceled) && d.parent.Err() == nil {
		err = nil
	}
	d.renderer.OnSessionEnd(err)
	_ = d.renderer.Stop()
	return errors.Join(err, d.renderer.Wait())
}
