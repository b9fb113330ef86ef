package fswatch

import (
	"context"
	"io"
	"sync"

	"github.com/grindlemire/graft"
	"go.trai.ch/fswatch/internal/app"
	"go.trai.ch/fswatch/internal/core/domain"
	"go.trai.ch/fswatch/internal/engine/dispatch"
	"go.trai.ch/fswatch/internal/engine/loop"
	_ "go.trai.ch/fswatch/internal/wiring" // Register providers
)

var components = sync.OnceValues(func() (*app.Components, error) {
	c, _, err := graft.ExecuteFor[*app.Components](context.Background())
	return c, err
})

// Watch configures and runs a watch session.
// Registration methods may be called from other goroutines while a session runs.
type Watch struct {
	registry *dispatch.Registry

	mu           sync.Mutex
	paths        []string
	continuation domain.Continuation
	settings     settings
	running      bool
	last         *loop.Loop
}

// New creates a Watch without paths.
func New(opts ...Option) *Watch {
	w := &Watch{
		registry:     dispatch.NewRegistry(),
		continuation: domain.Continuous{},
	}
	for _, opt := range opts {
		opt(&w.settings)
	}
	return w
}

// Path creates a Watch for a single path.
func Path(path string) *Watch {
	return New().SetPaths(path)
}

// Paths creates a Watch for paths, in order.
func Paths(paths ...string) *Watch {
	return New().SetPaths(paths...)
}

// SetPaths replaces the watched paths. It takes effect on the next Start.
func (w *Watch) SetPaths(paths ...string) *Watch {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.paths = append([]string(nil), paths...)
	return w
}

// WatchedPaths returns a copy of the configured paths.
func (w *Watch) WatchedPaths() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string(nil), w.paths...)
}

// With applies options. They take effect on the next Start.
func (w *Watch) With(opts ...Option) *Watch {
	w.mu.Lock()
	defer w.mu.Unlock()
	for _, opt := range opts {
		opt(&w.settings)
	}
	return w
}

func (w *Watch) on(kind EventKind, fn func(path string) error) *Watch {
	if fn != nil {
		w.registry.On(kind, dispatch.PathHandlerFunc(fn))
	}
	return w
}

// OnFileCreated registers fn for created files.
func (w *Watch) OnFileCreated(fn func(path string) error) *Watch {
	return w.on(FileCreated, fn)
}

// OnFileUpdated registers fn for modified files.
func (w *Watch) OnFileUpdated(fn func(path string) error) *Watch {
	return w.on(FileUpdated, fn)
}

// OnFileDeleted registers fn for deleted files.
func (w *Watch) OnFileDeleted(fn func(path string) error) *Watch {
	return w.on(FileDeleted, fn)
}

// OnDirectoryCreated registers fn for created directories.
func (w *Watch) OnDirectoryCreated(fn func(path string) error) *Watch {
	return w.on(DirectoryCreated, fn)
}

// OnDirectoryDeleted registers fn for deleted directories.
func (w *Watch) OnDirectoryDeleted(fn func(path string) error) *Watch {
	return w.on(DirectoryDeleted, fn)
}

// OnAnyChange registers fn for every event, including unknown kinds.
// Catch-all listeners run after the typed listeners of the same event.
func (w *Watch) OnAnyChange(fn func(kind EventKind, path string) error) *Watch {
	if fn != nil {
		w.registry.OnAny(dispatch.ChangeHandlerFunc(fn))
	}
	return w
}

// ShouldContinue sets the predicate consulted once per poll. The session
// stops normally the first time it returns false. A nil fn restores the
// default of running until ctx is cancelled.
func (w *Watch) ShouldContinue(fn func() bool) *Watch {
	w.mu.Lock()
	defer w.mu.Unlock()
	if fn == nil {
		w.continuation = domain.Continuous{}
	} else {
		w.continuation = domain.Predicate(fn)
	}
	return w
}

// State returns the stage of the current or most recent session.
func (w *Watch) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.last == nil {
		return StateIdle
	}
	return w.last.State()
}

// Start spawns the watcher and dispatches its events until the
// ShouldContinue predicate returns false (nil), ctx is done (ctx.Err()) or
// the session fails. A Watch runs one session at a time; it can be started
// again after Start returns.
func (w *Watch) Start(ctx context.Context) error {
	return w.run(ctx, nil)
}

// Display runs a session like Start and also renders every event to out
// (stdout when nil) after the registered listeners saw it. With DisplayTUI,
// quitting the UI stops the session normally.
func (w *Watch) Display(ctx context.Context, out io.Writer, mode DisplayMode) error {
	return w.run(ctx, &display{out: out, mode: mode})
}

type display struct {
	out  io.Writer
	mode DisplayMode
}

func (w *Watch) run(ctx context.Context, d *display) error {
	c, err := components()
	if err != nil {
		return err
	}

	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return ErrSessionActive
	}
	req := domain.NewWatchRequest(w.paths...)
	cfg := w.settings

	if cfg.logFormat != "" {
		formatted, err := c.App.NewLogger(cfg.logFormat)
		if err != nil {
			w.mu.Unlock()
			return err
		}
		if cfg.logger == nil {
			cfg.logger = formatted
		}
	}

	loopCfg := loop.Config{
		Interval:     cfg.pollInterval,
		Continuation: w.continuation,
		Policy:       cfg.policy,
		Isolate:      cfg.isolate,
	}

	var view *app.Display
	if d != nil {
		view, ctx, err = c.App.NewDisplay(ctx, d.out, d.mode)
		if err != nil {
			w.mu.Unlock()
			return err
		}
		loopCfg.Observer = view.Observer()
	}

	l := c.App.NewLoop(w.registry, app.Session{
		Launcher: cfg.launcher,
		Logger:   cfg.logger,
		Tracer:   cfg.tracer,
		Process:  cfg.process,
		Loop:     loopCfg,
	})
	w.running = true
	w.last = l
	w.mu.Unlock()

	defer func() {
		w.mu.Lock()
		w.running = false
		w.mu.Unlock()
	}()

	err = c.App.Watch(ctx, l, req)
	if view != nil {
		err = view.Finish(err)
	}
	return err
}
