// Package app implements the application layer for fswatch.
package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/fswatch/internal/adapters/detector"
	"go.trai.ch/fswatch/internal/adapters/logger" //nolint:depguard // Wired in app layer
	"go.trai.ch/fswatch/internal/adapters/process"
	"go.trai.ch/fswatch/internal/core/domain"
	"go.trai.ch/fswatch/internal/core/ports"
	"go.trai.ch/fswatch/internal/engine/dispatch"
	"go.trai.ch/fswatch/internal/engine/loop"
	"go.trai.ch/fswatch/internal/engine/protocol"
	"go.trai.ch/zerr"
)

// App builds and runs watch sessions.
type App struct {
	logger       ports.Logger
	tracer       ports.Tracer
	configLoader ports.ConfigLoader
	processes    *process.Factory
	teaOptions   []tea.ProgramOption
}

// New creates a new App instance.
func New(log ports.Logger, tracer ports.Tracer, loader ports.ConfigLoader, processes *process.Factory) *App {
	return &App{
		logger:       log,
		tracer:       tracer,
		configLoader: loader,
		processes:    processes,
	}
}

// Session describes one watch session.
type Session struct {
	// Launcher replaces the OS process launcher when set.
	Launcher ports.ProcessLauncher
	// Logger replaces the shared logger when set.
	Logger ports.Logger
	// Tracer replaces the shared tracer when set.
	Tracer ports.Tracer
	// Process configures the OS process launcher.
	Process process.Options
	// Loop configures the poll loop.
	Loop loop.Config
}

// SessionFromConfig maps a loaded session file onto a Session.
func SessionFromConfig(cfg *ports.SessionConfig) Session {
	s := Session{
		Process: process.Options{
			Interpreter:    cfg.Interpreter,
			Script:         cfg.Script,
			UsePTY:         cfg.UsePTY,
			TerminateGrace: cfg.TerminateGrace,
		},
		Loop: loop.DefaultConfig(),
	}
	if cfg.PollInterval > 0 {
		s.Loop.Interval = cfg.PollInterval
	}
	if cfg.StrictProtocol {
		s.Loop.Policy = protocol.RejectViolations
	}
	s.Loop.Isolate = cfg.IsolateListeners
	return s
}

// Logger returns the shared logger.
func (a *App) Logger() ports.Logger {
	return a.logger
}

// LoadSession reads the session file at path.
func (a *App) LoadSession(path string) (*ports.SessionConfig, error) {
	cfg, err := a.configLoader.Load(path)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	return cfg, nil
}

// NewLogger returns a stderr logger using a log format name (auto, pretty or json).
// The shared logger is left untouched.
func (a *App) NewLogger(format string) (ports.Logger, error) {
	configured, err := detector.ParseLogFormat(format)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to configure logging"), "log_format", format)
	}

	l := logger.New()
	if switcher, ok := l.(interface{ SetJSON(bool) }); ok {
		mode := detector.ResolveFormat(detector.DetectEnvironment(), configured)
		switcher.SetJSON(mode == detector.FormatJSON)
	}
	return l, nil
}

// NewLoop assembles a poll loop for s over registry.
func (a *App) NewLoop(registry *dispatch.Registry, s Session) *loop.Loop {
	log := s.Logger
	if log == nil {
		log = a.logger
	}
	tracer := s.Tracer
	if tracer == nil {
		tracer = a.tracer
	}
	launcher := s.Launcher
	switch {
	case launcher != nil:
	case s.Logger == nil && a.processes != nil:
		launcher = a.processes.New(s.Process)
	default:
		launcher = process.NewLauncher(log, s.Process)
	}
	return loop.New(launcher, registry, log, tracer, s.Loop)
}

// Watch runs l for req until it stops. Fatal errors are logged and returned.
func (a *App) Watch(ctx context.Context, l *loop.Loop, req domain.WatchRequest) error {
	if err := l.Run(ctx, req); err != nil {
		if l.State() == loop.StateFailed {
			l.Logger().Error(err)
		}
		return err
	}
	l.Logger().Info(fmt.Sprintf("watched %d path(s)", req.Len()))
	return nil
}
