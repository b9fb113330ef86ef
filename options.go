package fswatch

import (
	"time"

	"go.opentelemetry.io/otel/trace"
	"go.trai.ch/fswatch/internal/adapters/process"
	"go.trai.ch/fswatch/internal/adapters/telemetry"
	"go.trai.ch/fswatch/internal/core/ports"
	"go.trai.ch/fswatch/internal/engine/protocol"
)

// Option configures a Watch.
type Option func(*settings)

type settings struct {
	process      process.Options
	pollInterval time.Duration
	policy       protocol.ViolationPolicy
	isolate      bool
	launcher     ports.ProcessLauncher
	logger       ports.Logger
	tracer       ports.Tracer
	logFormat    string
}

// WithInterpreter sets the program that runs the watcher script. Names
// without a path separator are looked up in PATH. The default is node.
func WithInterpreter(name string) Option {
	return func(s *settings) { s.process.Interpreter = name }
}

// WithScript sets the watcher script. The default is bin/file-watcher.js next
// to the running executable, or in $FSWATCH_BIN_DIR when set.
func WithScript(path string) Option {
	return func(s *settings) { s.process.Script = path }
}

// WithEnv adds KEY=VALUE entries to the watcher's environment.
func WithEnv(env ...string) Option {
	return func(s *settings) { s.process.Env = append(s.process.Env, env...) }
}

// WithPTY runs the watcher on a pseudo-terminal so its output is line buffered.
// Stderr shares the terminal with stdout, so startup failures carry only the
// exit code and no stderr tail.
func WithPTY(enable bool) Option {
	return func(s *settings) { s.process.UsePTY = enable }
}

// WithTerminateGrace sets how long the watcher may take to exit after an
// interrupt before it is killed.
func WithTerminateGrace(d time.Duration) Option {
	return func(s *settings) { s.process.TerminateGrace = d }
}

// WithPollInterval sets the sleep between two polls. The default is 500ms.
func WithPollInterval(d time.Duration) Option {
	return func(s *settings) { s.pollInterval = d }
}

// StrictProtocol makes a record without a kind separator end the session
// with ErrProtocolViolation instead of being reported as an unknown event.
func StrictProtocol() Option {
	return func(s *settings) { s.policy = protocol.RejectViolations }
}

// IsolateListeners logs listener errors and panics and keeps the session
// running instead of ending it with ErrListenerFailure.
func IsolateListeners() Option {
	return func(s *settings) { s.isolate = true }
}

// WithLauncher replaces the OS process launcher.
func WithLauncher(l Launcher) Option {
	return func(s *settings) { s.launcher = l }
}

// WithLogger replaces the default stderr logger.
func WithLogger(l Logger) Option {
	return func(s *settings) { s.logger = l }
}

// WithTracerProvider records session spans with tp instead of the global provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(s *settings) {
		s.tracer = telemetry.NewOTelTracerFromProvider(tp, telemetry.InstrumentationName)
	}
}

// WithLogFormat selects auto, pretty or json output. The format applies to
// this Watch's sessions only and is ignored when WithLogger is set.
func WithLogFormat(format string) Option {
	return func(s *settings) { s.logFormat = format }
}
