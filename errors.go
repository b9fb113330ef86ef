package fswatch

import "go.trai.ch/fswatch/internal/core/domain"

// Errors returned by Start and FromConfig. Match them with errors.Is.
var (
	ErrStartupFailure        = domain.ErrStartupFailure
	ErrInterpreterNotFound   = domain.ErrInterpreterNotFound
	ErrProtocolViolation     = domain.ErrProtocolViolation
	ErrListenerFailure       = domain.ErrListenerFailure
	ErrEmptyWatchRequest     = domain.ErrEmptyWatchRequest
	ErrInvalidPath           = domain.ErrInvalidPath
	ErrSessionActive         = domain.ErrSessionActive
	ErrTerminateFailed       = domain.ErrTerminateFailed
	ErrConfigNotFound        = domain.ErrConfigNotFound
	ErrConfigReadFailed      = domain.ErrConfigReadFailed
	ErrConfigParseFailed     = domain.ErrConfigParseFailed
	ErrInvalidPollInterval   = domain.ErrInvalidPollInterval
	ErrInvalidLogFormat      = domain.ErrInvalidLogFormat
	ErrInvalidTerminateGrace = domain.ErrInvalidTerminateGrace
)
