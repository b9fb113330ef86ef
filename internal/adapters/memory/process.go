// Package memory provides an in-memory watcher process driven by a script of
// output chunks. It stands in for the real watcher in tests and embeddings
// that produce the line protocol themselves.
package memory

import (
	"context"
	"slices"
	"sync"

	"go.trai.ch/fswatch/internal/core/domain"
	"go.trai.ch/fswatch/internal/core/ports"
)

var (
	_ ports.WatcherProcess  = (*Process)(nil)
	_ ports.ProcessLauncher = (*Launcher)(nil)
)

// Process is a scripted ports.WatcherProcess.
// Each ReadIncremental call returns the next scripted chunk; output appended
// with Write is returned by the following read.
type Process struct {
	mu         sync.Mutex
	script     [][]byte
	pending    []byte
	exited     bool
	diag       domain.Diagnostics
	reads      int
	terminated bool
}

// NewProcess creates a running process that yields chunks one read at a time.
func NewProcess(chunks ...string) *Process {
	script := make([][]byte, 0, len(chunks))
	for _, c := range chunks {
		script = append(script, []byte(c))
	}
	return &Process{script: script, diag: domain.Diagnostics{ExitCode: -1}}
}

// NewExitedProcess creates a process that is already dead, as if it crashed on startup.
func NewExitedProcess(exitCode int, stderr string) *Process {
	p := NewProcess()
	p.Exit(exitCode, stderr)
	return p
}

// Write queues output for the next read.
func (p *Process) Write(s string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.pending = append(p.pending, s...)
}

// Exit marks the process as terminated with the given status.
func (p *Process) Exit(exitCode int, stderr string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.exited = true
	p.diag.Exited = true
	p.diag.ExitCode = exitCode
	p.diag.Stderr = stderr
}

// Running reports whether the process has not exited.
func (p *Process) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return !p.exited
}

// ReadIncremental returns the next scripted chunk followed by any written output.
func (p *Process) ReadIncremental() []byte {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.reads++

	var out []byte
	if len(p.script) > 0 {
		out = p.script[0]
		p.script = p.script[1:]
	}
	if len(p.pending) > 0 {
		out = append(slices.Clone(out), p.pending...)
		p.pending = nil
	}
	return out
}

// Diagnostics returns the recorded exit status.
func (p *Process) Diagnostics() domain.Diagnostics {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.diag
}

// Terminate marks the process as stopped.
func (p *Process) Terminate(_ context.Context) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.terminated = true
	if !p.exited {
		p.exited = true
		p.diag.Exited = true
	}
	return nil
}

// Terminated reports whether Terminate was called.
func (p *Process) Terminated() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.terminated
}

// Reads returns how many times the output was read.
func (p *Process) Reads() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.reads
}

// Launcher hands out a fixed Process and records the requests it was given.
type Launcher struct {
	mu       sync.Mutex
	process  *Process
	err      error
	requests []domain.WatchRequest
}

// NewLauncher creates a launcher returning proc on every launch.
func NewLauncher(proc *Process) *Launcher {
	return &Launcher{process: proc}
}

// NewFailingLauncher creates a launcher whose launches fail with err.
func NewFailingLauncher(err error) *Launcher {
	return &Launcher{err: err}
}

// Launch records req and returns the scripted process.
func (l *Launcher) Launch(_ context.Context, req domain.WatchRequest) (ports.WatcherProcess, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.requests = append(l.requests, req)
	if l.err != nil {
		return nil, l.err
	}
	return l.process, nil
}

// Requests returns the requests seen so far.
func (l *Launcher) Requests() []domain.WatchRequest {
	l.mu.Lock()
	defer l.mu.Unlock()
	return slices.Clone(l.requests)
}
