package ports

import (
	"context"

	"go.trai.ch/fswatch/internal/core/domain"
)

// Renderer presents the events of a watch session.
// It lets the same session drive either a TUI or plain line output.
//
//go:generate go run go.uber.org/mock/mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	// Start begins the renderer's lifecycle. Asynchronous renderers may
	// launch background goroutines.
	Start(ctx context.Context) error

	// Stop asks the renderer to shut down once it has flushed its output.
	Stop() error

	// Wait blocks until the renderer has terminated.
	Wait() error

	// OnEvent is called once per dispatched event.
	OnEvent(kind domain.EventKind, path string)

	// OnSessionEnd is called when the session stopped. err is nil on a normal stop.
	OnSessionEnd(err error)
}
