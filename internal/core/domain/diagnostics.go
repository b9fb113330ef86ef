package domain

// Diagnostics describes the state of a watcher process for error reporting.
type Diagnostics struct {
	// PID is the operating system process id, zero if the process never started.
	PID int
	// Exited reports whether the process has terminated.
	Exited bool
	// ExitCode is the exit status, -1 when unknown or killed by a signal.
	ExitCode int
	// Stderr is the tail of the process error stream.
	Stderr string
}
