// Package process runs the external watcher as an operating system process.
package process

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"time"

	"github.com/creack/pty"
	"go.trai.ch/fswatch/internal/core/domain"
	"go.trai.ch/fswatch/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProcessLauncher = (*Launcher)(nil)

// Options configures how the watcher is spawned.
type Options struct {
	// Interpreter is resolved through PATH unless it is absolute.
	Interpreter string
	// Script is the watcher program handed to the interpreter.
	Script string
	// UsePTY attaches the watcher to a pseudo-terminal instead of pipes.
	// Stderr then goes to the terminal and Diagnostics.Stderr stays empty.
	UsePTY bool
	// TerminateGrace is how long Terminate waits after an interrupt before killing.
	TerminateGrace time.Duration
	// Env is appended to the inherited environment.
	Env []string
}

// DefaultOptions returns the options of a stock installation.
func DefaultOptions() Options {
	return Options{
		Interpreter:    domain.DefaultInterpreter,
		Script:         domain.DefaultScriptPath(),
		TerminateGrace: domain.DefaultTerminateGrace,
	}
}

// Launcher spawns watcher processes.
type Launcher struct {
	opts   Options
	logger ports.Logger
}

// NewLauncher creates a Launcher. Empty option fields fall back to DefaultOptions.
func NewLauncher(logger ports.Logger, opts Options) *Launcher {
	if opts.Interpreter == "" {
		opts.Interpreter = domain.DefaultInterpreter
	}
	if opts.Script == "" {
		opts.Script = domain.DefaultScriptPath()
	}
	if opts.TerminateGrace <= 0 {
		opts.TerminateGrace = domain.DefaultTerminateGrace
	}
	return &Launcher{opts: opts, logger: logger}
}

// Options returns the effective options.
func (l *Launcher) Options() Options {
	return l.opts
}

// Launch starts `<interpreter> <script> <json paths>` with the script's
// directory as working directory. The context only bounds the launch itself.
func (l *Launcher) Launch(_ context.Context, req domain.WatchRequest) (ports.WatcherProcess, error) {
	arg, err := req.Argument()
	if err != nil {
		return nil, errors.Join(domain.ErrStartupFailure, err)
	}

	env := append(os.Environ(), l.opts.Env...)

	executable, err := resolveInterpreter(l.opts.Interpreter, env)
	if err != nil {
		detail := zerr.With(zerr.Wrap(domain.ErrInterpreterNotFound, err.Error()), "interpreter", l.opts.Interpreter)
		return nil, errors.Join(domain.ErrStartupFailure, detail)
	}

	script, err := filepath.Abs(l.opts.Script)
	if err != nil {
		return nil, errors.Join(domain.ErrStartupFailure, zerr.Wrap(err, "failed to resolve watcher script"))
	}
	if _, statErr := os.Stat(script); statErr != nil {
		detail := zerr.With(zerr.Wrap(statErr, "watcher script is missing"), "script", script)
		return nil, errors.Join(domain.ErrStartupFailure, detail)
	}

	//nolint:gosec // G204: interpreter and script come from the embedding program's configuration
	cmd := exec.Command(executable, script, arg)
	cmd.Dir = filepath.Dir(script)
	cmd.Env = env
	cmd.WaitDelay = l.opts.TerminateGrace

	p := newProcess(cmd, l.opts.TerminateGrace, l.logger)
	if l.opts.UsePTY {
		err = p.startPTY()
	} else {
		err = p.startPipes()
	}
	if err != nil {
		detail := zerr.With(zerr.Wrap(err, "failed to spawn watcher"), "interpreter", executable)
		return nil, errors.Join(domain.ErrStartupFailure, detail)
	}

	if l.logger != nil {
		l.logger.Info("spawned watcher " + l.opts.Interpreter + " " + filepath.Base(script))
	}
	return p, nil
}

// resolveInterpreter returns an absolute path, since the watcher runs in the
// script's directory rather than the caller's.
func resolveInterpreter(name string, env []string) (string, error) {
	if filepath.IsAbs(name) {
		if err := findExecutable(name); err != nil {
			return "", err
		}
		return name, nil
	}
	found, err := lookPath(name, env)
	if err != nil {
		return "", err
	}
	return filepath.Abs(found)
}

// startPTY runs cmd on a pseudo-terminal; stdout and stderr share the terminal.
func (p *Process) startPTY() error {
	ptmx, err := pty.Start(p.cmd)
	if err != nil {
		return zerr.Wrap(err, "failed to start pty")
	}
	p.ptmx = ptmx
	p.group.Go(func() error { return p.pump(ptmx, p.out) })
	p.group.Go(p.wait)
	return nil
}

// startPipes runs cmd with separate stdout and stderr pipes. The copies are
// owned by exec, so the process only counts as exited once both streams are
// drained or WaitDelay expires.
func (p *Process) startPipes() error {
	p.cmd.Stdout = p.out
	p.cmd.Stderr = p.errOut
	if err := p.cmd.Start(); err != nil {
		return err
	}
	p.group.Go(p.wait)
	return nil
}
