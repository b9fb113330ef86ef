package dispatch

import (
	"errors"
	"fmt"

	"go.trai.ch/fswatch/internal/core/domain"
	"go.trai.ch/fswatch/internal/core/ports"
	"go.trai.ch/zerr"
)

// Dispatcher invokes registry listeners for parsed events.
//
// By default a failing listener aborts dispatch and its error is returned
// wrapped in domain.ErrListenerFailure; panics are not recovered.
// With isolation enabled, errors and panics are logged and dispatch continues.
type Dispatcher struct {
	registry *Registry
	logger   ports.Logger
	isolate  bool
	observer ChangeHandler
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithIsolation makes the dispatcher log listener failures instead of propagating them.
func WithIsolation() Option {
	return func(d *Dispatcher) {
		d.isolate = true
	}
}

// WithObserver appends h after the catch-all listeners of every event.
// It fails like any other listener.
func WithObserver(h ChangeHandler) Option {
	return func(d *Dispatcher) {
		d.observer = h
	}
}

// NewDispatcher creates a Dispatcher over registry.
func NewDispatcher(registry *Registry, logger ports.Logger, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		registry: registry,
		logger:   logger,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Isolated reports whether listener failures are isolated.
func (d *Dispatcher) Isolated() bool {
	return d.isolate
}

// Dispatch delivers events in order. For each event the typed listeners of a
// recognized kind run first, in registration order, then every catch-all
// listener. It returns the number of listener invocations that completed.
func (d *Dispatcher) Dispatch(events []domain.Event) (int, error) {
	calls := 0
	for _, event := range events {
		for _, h := range d.registry.Typed(event.Kind) {
			if err := d.invoke(event, func() error { return h.HandlePath(event.Path) }); err != nil {
				return calls, err
			}
			calls++
		}
		for _, h := range d.registry.CatchAll() {
			if err := d.invoke(event, func() error { return h.HandleChange(event.Kind, event.Path) }); err != nil {
				return calls, err
			}
			calls++
		}
		if d.observer != nil {
			if err := d.invoke(event, func() error { return d.observer.HandleChange(event.Kind, event.Path) }); err != nil {
				return calls, err
			}
			calls++
		}
	}
	return calls, nil
}

func (d *Dispatcher) invoke(event domain.Event, call func() error) error {
	if !d.isolate {
		if err := call(); err != nil {
			return listenerError(err, event)
		}
		return nil
	}

	if err := recoverCall(call); err != nil && d.logger != nil {
		d.logger.Error(listenerError(err, event))
	}
	return nil
}

// recoverCall runs call and converts a panic into an error.
func recoverCall(call func() error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = zerr.New(fmt.Sprintf("listener panicked: %v", r))
		}
	}()
	return call()
}

func listenerError(err error, event domain.Event) error {
	detail := zerr.With(zerr.Wrap(err, "listener returned an error"), "kind", event.Kind.String())
	detail = zerr.With(detail, "path", event.Path)
	return errors.Join(domain.ErrListenerFailure, detail)
}
