package domain

import (
	"os"
	"path/filepath"
	"time"
)

const (
	// DefaultInterpreter is the executable that runs the bundled watcher script.
	DefaultInterpreter = "node"

	// DefaultScriptName is the name of the bundled watcher script.
	DefaultScriptName = "file-watcher.js"

	// BinDirName is the directory next to the executable holding the bundled script.
	BinDirName = "bin"

	// BinDirEnv overrides the directory holding the bundled script.
	BinDirEnv = "FSWATCH_BIN_DIR"

	// ConfigFileName is the default name of the optional session file.
	ConfigFileName = "fswatch.yaml"

	// RecordSeparator splits a record into kind and path.
	RecordSeparator = " - "

	// DefaultPollInterval is the sleep between two ticks of the poll loop.
	DefaultPollInterval = 500 * time.Millisecond

	// DefaultTerminateGrace is how long a watcher gets to exit after an interrupt.
	DefaultTerminateGrace = 2 * time.Second

	// DiagnosticTailBytes bounds the stderr kept for startup diagnostics.
	DiagnosticTailBytes = 8 << 10
)

// DefaultScriptPath returns the path of the bundled watcher script.
// BinDirEnv takes precedence over the directory next to the running executable.
func DefaultScriptPath() string {
	if dir := os.Getenv(BinDirEnv); dir != "" {
		return filepath.Join(dir, DefaultScriptName)
	}
	exe, err := os.Executable()
	if err != nil {
		return filepath.Join(BinDirName, DefaultScriptName)
	}
	return filepath.Join(filepath.Dir(exe), BinDirName, DefaultScriptName)
}
