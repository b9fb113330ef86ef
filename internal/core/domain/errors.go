package domain

import "go.trai.ch/zerr"

var (
	// ErrStartupFailure is returned when the watcher process cannot be launched
	// or is found not running at a liveness check.
	ErrStartupFailure = zerr.New("could not start watcher")

	// ErrInterpreterNotFound is returned when the interpreter cannot be resolved from PATH.
	ErrInterpreterNotFound = zerr.New("interpreter not found")

	// ErrProtocolViolation is returned under the strict policy when a record lacks the separator.
	ErrProtocolViolation = zerr.New("malformed watcher record")

	// ErrListenerFailure is returned when a registered listener fails.
	ErrListenerFailure = zerr.New("listener failed")

	// ErrEmptyWatchRequest is returned when no paths are configured.
	ErrEmptyWatchRequest = zerr.New("no paths to watch")

	// ErrInvalidPath is returned when a configured path is unusable.
	ErrInvalidPath = zerr.New("invalid watch path")

	// ErrSessionActive is returned when a session is started while it is already running.
	ErrSessionActive = zerr.New("watch session already running")

	// ErrTerminateFailed is returned when the watcher process could not be stopped.
	ErrTerminateFailed = zerr.New("failed to terminate watcher")

	// ErrConfigNotFound is returned when no session file exists in or above a directory.
	ErrConfigNotFound = zerr.New("no fswatch.yaml found")

	// ErrConfigReadFailed is returned when the session file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the session file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrInvalidPollInterval is returned when the poll interval is not positive.
	ErrInvalidPollInterval = zerr.New("poll interval must be positive")

	// ErrInvalidTerminateGrace is returned when the terminate grace period is negative.
	ErrInvalidTerminateGrace = zerr.New("terminate grace must not be negative")

	// ErrInvalidLogFormat is returned when the log format is not auto, pretty or json.
	ErrInvalidLogFormat = zerr.New("invalid log format, expected 'auto', 'pretty' or 'json'")
)
