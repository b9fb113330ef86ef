package fswatch

import (
	"go.trai.ch/fswatch/internal/app"
	"go.trai.ch/fswatch/internal/core/domain"
	"go.trai.ch/fswatch/internal/core/ports"
	"go.trai.ch/fswatch/internal/engine/loop"
)

// EventKind identifies the kind of a filesystem change.
type EventKind = domain.EventKind

// Event kinds reported by the watcher.
var (
	FileCreated      = domain.FileCreated
	FileUpdated      = domain.FileUpdated
	FileDeleted      = domain.FileDeleted
	DirectoryCreated = domain.DirectoryCreated
	DirectoryDeleted = domain.DirectoryDeleted
)

// ParseEventKind maps a wire token to its kind. Unrecognized tokens yield an
// unknown kind that keeps the token.
func ParseEventKind(token string) EventKind {
	return domain.ParseEventKind(token)
}

// State is the lifecycle stage of a watch session.
type State = loop.State

// Session states.
const (
	StateIdle     = loop.StateIdle
	StateStarting = loop.StateStarting
	StateRunning  = loop.StateRunning
	StateStopping = loop.StateStopping
	StateFailed   = loop.StateFailed
)

// Logger receives the library's log output.
type Logger = ports.Logger

// Launcher starts watcher processes. It replaces the OS process launcher in
// embeddings that produce the line protocol themselves.
type Launcher = ports.ProcessLauncher

// Process is a running watcher as seen by the poll loop.
type Process = ports.WatcherProcess

// Request is the ordered list of paths handed to a Launcher.
type Request = domain.WatchRequest

// Diagnostics describes a watcher process for error reporting.
type Diagnostics = domain.Diagnostics

// DisplayMode selects how Display renders events.
type DisplayMode = app.DisplayMode

// Display modes.
const (
	DisplayLines = app.DisplayLines
	DisplayJSON  = app.DisplayJSON
	DisplayTUI   = app.DisplayTUI
)
