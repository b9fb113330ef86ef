package loop

// State is the lifecycle stage of a watch session.
type State uint8

const (
	// StateIdle means the session has not been started.
	StateIdle State = iota
	// StateStarting means the watcher process is being launched.
	StateStarting
	// StateRunning means the loop is ticking.
	StateRunning
	// StateStopping means the session ended normally. Terminal.
	StateStopping
	// StateFailed means the session ended with an error. Terminal.
	StateFailed
)

// String returns the lower-case state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateStarting:
		return "starting"
	case StateRunning:
		return "running"
	case StateStopping:
		return "stopping"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transitions can happen.
func (s State) Terminal() bool {
	return s == StateStopping || s == StateFailed
}
