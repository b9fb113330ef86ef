package ports

import (
	"time"

	"go.trai.ch/fswatch/internal/core/domain"
)

// SessionConfig is the resolved configuration of a watch session.
// Zero values mean "use the default".
type SessionConfig struct {
	Request          domain.WatchRequest
	Interpreter      string
	Script           string
	PollInterval     time.Duration
	TerminateGrace   time.Duration
	UsePTY           bool
	StrictProtocol   bool
	IsolateListeners bool
	LogFormat        string
}

// ConfigLoader defines the interface for loading session configuration.
//
//go:generate go run go.uber.org/mock/mockgen -source=config_loader.go -destination=mocks/mock_config_loader.go -package=mocks
type ConfigLoader interface {
	// Load reads the session file at path.
	Load(path string) (*SessionConfig, error)
}
