// Package config loads watch session settings from fswatch.yaml.
package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/fswatch/internal/core/domain"
	"go.trai.ch/fswatch/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.ConfigLoader = (*Loader)(nil)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the session file at path. If path is a directory, the nearest
// fswatch.yaml in it or one of its parents is used.
// Relative watch paths and script paths are resolved against the file's directory.
func (l *Loader) Load(path string) (*ports.SessionConfig, error) {
	configPath, err := findConfiguration(path)
	if err != nil {
		return nil, err
	}

	var file Sessionfile
	if err := readAndUnmarshalYAML(configPath, &file); err != nil {
		return nil, err
	}

	cfg, err := l.resolve(filepath.Dir(configPath), &file)
	if err != nil {
		return nil, zerr.With(err, "file", configPath)
	}
	return cfg, nil
}

func findConfiguration(path string) (string, error) {
	info, err := os.Stat(path)
	if err != nil {
		return "", errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "failed to stat config path"), "path", path))
	}
	if !info.IsDir() {
		return path, nil
	}

	currentDir, err := filepath.Abs(path)
	if err != nil {
		return "", zerr.Wrap(err, "failed to resolve config directory")
	}
	for {
		candidate := filepath.Join(currentDir, domain.ConfigFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			break
		}
		currentDir = parentDir
	}

	return "", zerr.With(zerr.Wrap(domain.ErrConfigNotFound, "no session file in directory tree"), "cwd", path)
}

func readAndUnmarshalYAML(path string, out *Sessionfile) error {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by the caller
	if err != nil {
		return errors.Join(domain.ErrConfigReadFailed, zerr.With(zerr.Wrap(err, "failed to read file"), "path", path))
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(out); err != nil && !errors.Is(err, io.EOF) {
		return errors.Join(domain.ErrConfigParseFailed, zerr.With(zerr.Wrap(err, "invalid yaml"), "path", path))
	}
	return nil
}

func (l *Loader) resolve(baseDir string, file *Sessionfile) (*ports.SessionConfig, error) {
	pollInterval, err := parseDuration(file.PollInterval)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidPollInterval, err.Error()), "poll_interval", file.PollInterval)
	}
	if file.PollInterval != "" && pollInterval <= 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidPollInterval, "invalid poll interval"), "poll_interval", file.PollInterval)
	}

	grace, err := parseDuration(file.TerminateGrace)
	if err != nil || grace < 0 {
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidTerminateGrace, "invalid terminate grace"), "terminate_grace", file.TerminateGrace)
	}

	switch file.LogFormat {
	case "", "auto", "pretty", "json":
	default:
		return nil, zerr.With(zerr.Wrap(domain.ErrInvalidLogFormat, "invalid log format"), "log_format", file.LogFormat)
	}

	paths := make([]string, len(file.Paths))
	for i, p := range file.Paths {
		paths[i] = resolvePath(baseDir, p)
	}
	if len(paths) == 0 && l.Logger != nil {
		l.Logger.Warn("no paths configured in " + domain.ConfigFileName + "; add paths before starting")
	}

	script := file.Script
	if script != "" {
		script = resolvePath(baseDir, script)
	}

	return &ports.SessionConfig{
		Request:          domain.NewWatchRequest(paths...),
		Interpreter:      file.Interpreter,
		Script:           script,
		PollInterval:     pollInterval,
		TerminateGrace:   grace,
		UsePTY:           file.PTY,
		StrictProtocol:   file.StrictProtocol,
		IsolateListeners: file.IsolateListeners,
		LogFormat:        file.LogFormat,
	}, nil
}

func parseDuration(s string) (time.Duration, error) {
	if s == "" {
		return 0, nil
	}
	return time.ParseDuration(s)
}

// resolvePath anchors a relative path at baseDir. Empty paths are kept so
// request validation can report them.
func resolvePath(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}
