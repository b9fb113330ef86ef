// Package dispatch routes parsed watcher events to registered listeners.
package dispatch

import (
	"slices"
	"sync"

	"go.trai.ch/fswatch/internal/core/domain"
)

// PathHandler receives the path of an event of the kind it was registered for.
type PathHandler interface {
	HandlePath(path string) error
}

// PathHandlerFunc adapts a function to PathHandler.
type PathHandlerFunc func(path string) error

// HandlePath calls f(path).
func (f PathHandlerFunc) HandlePath(path string) error {
	return f(path)
}

// ChangeHandler receives every event regardless of kind.
type ChangeHandler interface {
	HandleChange(kind domain.EventKind, path string) error
}

// ChangeHandlerFunc adapts a function to ChangeHandler.
type ChangeHandlerFunc func(kind domain.EventKind, path string) error

// HandleChange calls f(kind, path).
func (f ChangeHandlerFunc) HandleChange(kind domain.EventKind, path string) error {
	return f(kind, path)
}

// Registry holds ordered listener lists per recognized kind plus a catch-all list.
// Lists are append-only; duplicates are kept and invoked once per occurrence.
type Registry struct {
	mu       sync.RWMutex
	typed    map[domain.KindCode][]PathHandler
	catchAll []ChangeHandler
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		typed: make(map[domain.KindCode][]PathHandler),
	}
}

// On appends h to the list of kind. Registering for an unknown kind is a no-op
// and reports false, since typed listeners only fire for recognized kinds.
func (r *Registry) On(kind domain.EventKind, h PathHandler) bool {
	if !kind.Known() || h == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.typed[kind.Code()] = append(r.typed[kind.Code()], h)
	return true
}

// OnAny appends a catch-all handler.
func (r *Registry) OnAny(h ChangeHandler) {
	if h == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.catchAll = append(r.catchAll, h)
}

// Typed returns a snapshot of the handlers registered for kind.
func (r *Registry) Typed(kind domain.EventKind) []PathHandler {
	if !kind.Known() {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.typed[kind.Code()])
}

// CatchAll returns a snapshot of the catch-all handlers.
func (r *Registry) CatchAll() []ChangeHandler {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.catchAll)
}

// Len returns the total number of registered handlers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	n := len(r.catchAll)
	for _, hs := range r.typed {
		n += len(hs)
	}
	return n
}
