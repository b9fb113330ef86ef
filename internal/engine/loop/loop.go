// Package loop implements the poll loop that supervises a watcher process
// and feeds its output through the parser to the dispatcher.
package loop

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.trai.ch/fswatch/internal/core/domain"
	"go.trai.ch/fswatch/internal/core/ports"
	"go.trai.ch/fswatch/internal/engine/dispatch"
	"go.trai.ch/fswatch/internal/engine/protocol"
	"go.trai.ch/fswatch/internal/engine/reader"
	"go.trai.ch/zerr"
)

// Config holds the explicit parameters of a watch session.
type Config struct {
	// Interval is the sleep between ticks.
	Interval time.Duration
	// Continuation is consulted once per tick; false ends the session.
	Continuation domain.Continuation
	// Policy selects how malformed records are handled.
	Policy protocol.ViolationPolicy
	// Isolate logs listener failures instead of ending the session.
	Isolate bool
	// Observer sees every event after the registered listeners.
	Observer dispatch.ChangeHandler
}

// DefaultConfig returns the configuration used when nothing is overridden.
func DefaultConfig() Config {
	return Config{
		Interval:     domain.DefaultPollInterval,
		Continuation: domain.Continuous{},
		Policy:       protocol.ReportViolations,
	}
}

// Loop runs one watch session at a time.
type Loop struct {
	launcher ports.ProcessLauncher
	registry *dispatch.Registry
	logger   ports.Logger
	tracer   ports.Tracer
	cfg      Config

	mu    sync.Mutex
	state State
}

// New creates a Loop. Zero fields of cfg fall back to DefaultConfig.
func New(
	launcher ports.ProcessLauncher,
	registry *dispatch.Registry,
	logger ports.Logger,
	tracer ports.Tracer,
	cfg Config,
) *Loop {
	def := DefaultConfig()
	if cfg.Interval <= 0 {
		cfg.Interval = def.Interval
	}
	if cfg.Continuation == nil {
		cfg.Continuation = def.Continuation
	}
	return &Loop{
		launcher: launcher,
		registry: registry,
		logger:   logger,
		tracer:   tracer,
		cfg:      cfg,
	}
}

// Logger returns the logger the loop reports to.
func (l *Loop) Logger() ports.Logger {
	return l.logger
}

// State returns the current lifecycle stage.
func (l *Loop) State() State {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// begin moves an idle or finished loop to StateStarting.
func (l *Loop) begin() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.state == StateStarting || l.state == StateRunning {
		return false
	}
	l.state = StateStarting
	return true
}

func (l *Loop) setState(s State) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = s
}

// session bundles the per-run collaborators.
type session struct {
	proc       ports.WatcherProcess
	reader     *reader.Reader
	parser     *protocol.Parser
	dispatcher *dispatch.Dispatcher
	events     int
}

// Run launches the watcher for req and ticks until the continuation returns
// false, ctx is cancelled, or a fatal error occurs.
// It returns nil on a normal stop, ctx.Err() on cancellation, and the fatal
// error otherwise. The watcher process is terminated in every case.
func (l *Loop) Run(ctx context.Context, req domain.WatchRequest) (err error) {
	if err := req.Validate(); err != nil {
		return err
	}
	if !l.begin() {
		return domain.ErrSessionActive
	}

	ctx, span := l.tracer.Start(ctx, "watch.session",
		ports.WithAttribute("session", req.Fingerprint()),
		ports.WithAttribute("paths", req.Len()),
	)
	defer span.End()

	l.logger.Info(fmt.Sprintf("starting watch session %s for %d path(s)", req.Fingerprint(), req.Len()))

	proc, err := l.launcher.Launch(ctx, req)
	if err != nil {
		l.setState(StateFailed)
		span.RecordError(err)
		return err
	}

	s := &session{
		proc:       proc,
		reader:     reader.New(proc),
		parser:     protocol.NewParser(l.cfg.Policy, l.logger),
		dispatcher: l.newDispatcher(),
	}

	defer func() {
		r := recover()
		if r != nil {
			l.setState(StateFailed)
		}
		if stopErr := l.shutdown(ctx, s); stopErr != nil {
			err = errors.Join(err, stopErr)
		}
		if err != nil && l.State() != StateStopping {
			span.RecordError(err)
		}
		span.SetAttribute("events", s.events)
		if r != nil {
			panic(r)
		}
	}()

	l.setState(StateRunning)
	for {
		if err := l.tick(ctx, s); err != nil {
			l.setState(StateFailed)
			return err
		}

		if !l.cfg.Continuation.Continue() {
			l.setState(StateStopping)
			return nil
		}

		timer := time.NewTimer(l.cfg.Interval)
		select {
		case <-ctx.Done():
			timer.Stop()
			l.setState(StateStopping)
			return ctx.Err()
		case <-timer.C:
		}
	}
}

func (l *Loop) newDispatcher() *dispatch.Dispatcher {
	var opts []dispatch.Option
	if l.cfg.Isolate {
		opts = append(opts, dispatch.WithIsolation())
	}
	if l.cfg.Observer != nil {
		opts = append(opts, dispatch.WithObserver(l.cfg.Observer))
	}
	return dispatch.NewDispatcher(l.registry, l.logger, opts...)
}

// tick performs one liveness check, drain and dispatch.
func (l *Loop) tick(ctx context.Context, s *session) error {
	if !s.proc.Running() {
		return startupFailure(s.proc.Diagnostics())
	}

	lines := s.reader.Lines()
	if len(lines) == 0 {
		return nil
	}

	events, parseErr := s.parser.Parse(lines)
	if len(events) > 0 {
		if err := l.dispatch(ctx, s, events); err != nil {
			return err
		}
	}
	return parseErr
}

func (l *Loop) dispatch(ctx context.Context, s *session, events []domain.Event) error {
	_, span := l.tracer.Start(ctx, "watch.dispatch", ports.WithAttribute("events", len(events)))
	defer span.End()

	calls, err := s.dispatcher.Dispatch(events)
	s.events += len(events)
	span.SetAttribute("listener_calls", calls)
	if err != nil {
		span.RecordError(err)
		return err
	}
	return nil
}

// shutdown terminates the watcher and reports output that was never terminated.
func (l *Loop) shutdown(ctx context.Context, s *session) error {
	if pending := s.reader.Pending(); pending != "" {
		l.logger.Warn(fmt.Sprintf("discarding unterminated watcher output %q", pending))
	}

	if err := s.proc.Terminate(context.WithoutCancel(ctx)); err != nil {
		return errors.Join(domain.ErrTerminateFailed, err)
	}

	l.logger.Info(fmt.Sprintf("watch session %s after %d event(s)", l.State(), s.events))
	return nil
}

func startupFailure(d domain.Diagnostics) error {
	var err error = zerr.Wrap(domain.ErrStartupFailure, "watcher process is not running")
	err = zerr.With(err, "exit_code", d.ExitCode)
	if d.PID != 0 {
		err = zerr.With(err, "pid", d.PID)
	}
	if d.Stderr != "" {
		err = zerr.With(err, "stderr", d.Stderr)
	}
	return err
}
