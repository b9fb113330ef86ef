// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/fswatch/internal/core/domain"
)

// WatcherProcess is a running watcher owned by exactly one watch session.
//
//go:generate go run go.uber.org/mock/mockgen -source=process.go -destination=mocks/mock_process.go -package=mocks
type WatcherProcess interface {
	// Running reports whether the process is still alive. It never blocks.
	Running() bool

	// ReadIncremental returns the output produced since the previous call.
	// It never blocks and never returns the same bytes twice.
	ReadIncremental() []byte

	// Diagnostics describes the process for error reporting.
	Diagnostics() domain.Diagnostics

	// Terminate stops the process and releases its resources.
	// It is safe to call on a process that has already exited.
	Terminate(ctx context.Context) error
}

// ProcessLauncher starts watcher processes.
type ProcessLauncher interface {
	// Launch starts a watcher for the request without waiting for it to become ready.
	Launch(ctx context.Context, req domain.WatchRequest) (WatcherProcess, error)
}
