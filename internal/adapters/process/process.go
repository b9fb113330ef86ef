package process

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"sync"
	"syscall"
	"time"

	"go.trai.ch/fswatch/internal/core/domain"
	"go.trai.ch/fswatch/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.WatcherProcess = (*Process)(nil)

// Process is a running watcher. Its output is collected in the background
// and handed out by ReadIncremental without blocking.
type Process struct {
	cmd    *exec.Cmd
	ptmx   *os.File
	grace  time.Duration
	logger ports.Logger

	out    *outputBuffer
	tail   *tailBuffer
	errOut io.Writer

	group  errgroup.Group
	exited chan struct{}

	mu       sync.Mutex
	exitCode int
}

func newProcess(cmd *exec.Cmd, grace time.Duration, logger ports.Logger) *Process {
	tail := newTailBuffer(domain.DiagnosticTailBytes)
	var errOut io.Writer = tail
	if logger != nil {
		errOut = io.MultiWriter(tail, &logWriter{logger: logger, prefix: "watcher: "})
	}
	return &Process{
		cmd:      cmd,
		grace:    grace,
		logger:   logger,
		out:      &outputBuffer{},
		tail:     tail,
		errOut:   errOut,
		exited:   make(chan struct{}),
		exitCode: -1,
	}
}

func (p *Process) pump(r io.Reader, w io.Writer) error {
	_, err := io.Copy(w, r)
	if err != nil && !isClosedStream(err) {
		return zerr.Wrap(err, "failed to read watcher output")
	}
	return nil
}

func (p *Process) wait() error {
	defer close(p.exited)
	err := p.cmd.Wait()

	p.mu.Lock()
	if p.cmd.ProcessState != nil {
		p.exitCode = p.cmd.ProcessState.ExitCode()
	}
	p.mu.Unlock()

	var exitErr *exec.ExitError
	if err != nil && !errors.As(err, &exitErr) && !errors.Is(err, exec.ErrWaitDelay) {
		return zerr.Wrap(err, "failed to wait for watcher")
	}
	return nil
}

// Running reports whether the watcher has not exited yet.
func (p *Process) Running() bool {
	select {
	case <-p.exited:
		return false
	default:
		return true
	}
}

// ReadIncremental returns the output collected since the previous call.
func (p *Process) ReadIncremental() []byte {
	return p.out.Drain()
}

// Diagnostics describes the process for error reporting.
func (p *Process) Diagnostics() domain.Diagnostics {
	d := domain.Diagnostics{
		Exited: !p.Running(),
		Stderr: p.tail.String(),
	}
	if p.cmd.Process != nil {
		d.PID = p.cmd.Process.Pid
	}
	p.mu.Lock()
	d.ExitCode = p.exitCode
	p.mu.Unlock()
	return d
}

// Terminate interrupts the watcher, kills it once the grace period or ctx
// runs out, and waits for the output collectors to finish.
// Terminating an exited process only reaps the collectors.
func (p *Process) Terminate(ctx context.Context) error {
	if p.Running() {
		if err := p.stop(ctx); err != nil {
			return err
		}
	}

	if p.ptmx != nil {
		_ = p.ptmx.Close()
	}
	if err := p.group.Wait(); err != nil {
		if p.logger != nil {
			p.logger.Warn(err.Error())
		}
	}
	return nil
}

func (p *Process) stop(ctx context.Context) error {
	if err := p.cmd.Process.Signal(os.Interrupt); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return p.kill()
	}

	timer := time.NewTimer(p.grace)
	defer timer.Stop()

	select {
	case <-p.exited:
		return nil
	case <-timer.C:
	case <-ctx.Done():
	}
	return p.kill()
}

func (p *Process) kill() error {
	if err := p.cmd.Process.Kill(); err != nil && !errors.Is(err, os.ErrProcessDone) {
		return zerr.With(zerr.Wrap(err, "failed to kill watcher"), "pid", p.cmd.Process.Pid)
	}
	<-p.exited
	return nil
}

// isClosedStream reports read errors that only mean the other side went away.
// A pty master returns EIO once the terminal has no more writers.
func isClosedStream(err error) bool {
	return errors.Is(err, os.ErrClosed) || errors.Is(err, syscall.EIO) || errors.Is(err, io.ErrClosedPipe)
}
