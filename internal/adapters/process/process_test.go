package process_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fswatch/internal/adapters/process"
	"go.trai.ch/fswatch/internal/core/domain"
	"go.trai.ch/fswatch/internal/core/ports"
	"go.trai.ch/fswatch/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

const waitFor = 5 * time.Second

func writeScript(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "file-watcher.sh")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func newLauncher(t *testing.T, script string, mutate ...func(*process.Options)) *process.Launcher {
	t.Helper()
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Info(gomock.Any()).AnyTimes()
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	opts := process.Options{
		Interpreter:    "sh",
		Script:         script,
		TerminateGrace: 200 * time.Millisecond,
	}
	for _, m := range mutate {
		m(&opts)
	}
	return process.NewLauncher(logger, opts)
}

// collect reads from proc until the output contains want.
func collect(t *testing.T, proc ports.WatcherProcess, want string) string {
	t.Helper()
	var out strings.Builder
	require.Eventually(t, func() bool {
		out.Write(proc.ReadIncremental())
		return strings.Contains(out.String(), want)
	}, waitFor, 10*time.Millisecond, "output so far: %q", out.String())
	return out.String()
}

func TestLauncher_StreamsOutput(t *testing.T) {
	script := writeScript(t, `
echo "fileCreated - $(pwd -P)/a.txt"
printf 'fileUpd'
sleep 0.1
echo 'ated - /tmp/b.txt'
exec sleep 30
`)
	l := newLauncher(t, script)

	proc, err := l.Launch(t.Context(), domain.NewWatchRequest("/tmp"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = proc.Terminate(context.Background()) })

	dir, err := filepath.EvalSymlinks(filepath.Dir(script))
	require.NoError(t, err)

	out := collect(t, proc, "fileUpdated - /tmp/b.txt\n")
	assert.Contains(t, out, "fileCreated - "+dir+"/a.txt\n")
	assert.True(t, proc.Running())
	assert.Nil(t, proc.ReadIncremental())

	require.NoError(t, proc.Terminate(t.Context()))
	assert.False(t, proc.Running())
	assert.True(t, proc.Diagnostics().Exited)
}

func TestLauncher_PassesPathsAsJSON(t *testing.T) {
	script := writeScript(t, `
printf '%s\n' "$1"
exec sleep 30
`)
	l := newLauncher(t, script)

	req := domain.NewWatchRequest("/b", "/a", "/with space", `/quote"d`)
	proc, err := l.Launch(t.Context(), req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = proc.Terminate(context.Background()) })

	want, err := req.Argument()
	require.NoError(t, err)
	out := collect(t, proc, "\n")
	assert.Equal(t, want+"\n", out)
}

func TestLauncher_InterpreterNotFound(t *testing.T) {
	script := writeScript(t, "exit 0\n")
	l := newLauncher(t, script, func(o *process.Options) {
		o.Interpreter = "fswatch-no-such-interpreter"
	})

	proc, err := l.Launch(t.Context(), domain.NewWatchRequest("/tmp"))
	require.ErrorIs(t, err, domain.ErrStartupFailure)
	require.ErrorIs(t, err, domain.ErrInterpreterNotFound)
	assert.Nil(t, proc)
}

func TestLauncher_RelativeInterpreter(t *testing.T) {
	wd := t.TempDir()
	require.NoError(t, os.Mkdir(filepath.Join(wd, "tools"), 0o700))
	wrapper := filepath.Join(wd, "tools", "sh")
	//nolint:gosec // test executable
	require.NoError(t, os.WriteFile(wrapper, []byte("#!/bin/sh\nexec /bin/sh \"$@\"\n"), 0o700))
	t.Chdir(wd)

	script := writeScript(t, `
echo "fileCreated - /tmp/relative"
exec sleep 30
`)
	l := newLauncher(t, script, func(o *process.Options) { o.Interpreter = "./tools/sh" })

	proc, err := l.Launch(t.Context(), domain.NewWatchRequest("/tmp"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = proc.Terminate(context.Background()) })

	collect(t, proc, "fileCreated - /tmp/relative\n")
}

func TestLauncher_ResolvedInterpreterLeadsArgv(t *testing.T) {
	if _, err := os.Stat("/proc/self/cmdline"); err != nil {
		t.Skip("no procfs")
	}
	sh, err := exec.LookPath("sh")
	require.NoError(t, err)
	sh, err = filepath.Abs(sh)
	require.NoError(t, err)

	script := writeScript(t, `
tr '\000' '\n' < /proc/$$/cmdline | head -n 1
exec sleep 30
`)
	l := newLauncher(t, script)

	proc, err := l.Launch(t.Context(), domain.NewWatchRequest("/tmp"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = proc.Terminate(context.Background()) })

	out := collect(t, proc, "\n")
	assert.Equal(t, sh+"\n", out)
}

func TestLauncher_EnvPathOverride(t *testing.T) {
	script := writeScript(t, "exit 0\n")
	l := newLauncher(t, script, func(o *process.Options) {
		o.Env = []string{"PATH=" + t.TempDir()}
	})

	_, err := l.Launch(t.Context(), domain.NewWatchRequest("/tmp"))
	require.ErrorIs(t, err, domain.ErrInterpreterNotFound)
}

func TestLauncher_MissingScript(t *testing.T) {
	l := newLauncher(t, filepath.Join(t.TempDir(), "missing.js"))

	_, err := l.Launch(t.Context(), domain.NewWatchRequest("/tmp"))
	require.ErrorIs(t, err, domain.ErrStartupFailure)
	assert.NotErrorIs(t, err, domain.ErrInterpreterNotFound)
}

func TestLauncher_EmptyRequestArgument(t *testing.T) {
	script := writeScript(t, `printf '%s\n' "$1"; exec sleep 30`)
	l := newLauncher(t, script)

	proc, err := l.Launch(t.Context(), domain.NewWatchRequest())
	require.NoError(t, err)
	t.Cleanup(func() { _ = proc.Terminate(context.Background()) })
	assert.Equal(t, "[]\n", collect(t, proc, "\n"))
}

func TestProcess_ExitDiagnostics(t *testing.T) {
	script := writeScript(t, `
echo "Cannot find module 'chokidar'" >&2
exit 3
`)
	l := newLauncher(t, script)

	proc, err := l.Launch(t.Context(), domain.NewWatchRequest("/tmp"))
	require.NoError(t, err)

	require.Eventually(t, func() bool { return !proc.Running() }, waitFor, 10*time.Millisecond)

	d := proc.Diagnostics()
	assert.True(t, d.Exited)
	assert.Equal(t, 3, d.ExitCode)
	assert.Positive(t, d.PID)
	assert.Equal(t, "Cannot find module 'chokidar'", d.Stderr)

	require.NoError(t, proc.Terminate(t.Context()))
}

func TestProcess_TerminateKillsAfterGrace(t *testing.T) {
	script := writeScript(t, `
trap '' INT
echo ready
exec sleep 30
`)
	l := newLauncher(t, script)

	proc, err := l.Launch(t.Context(), domain.NewWatchRequest("/tmp"))
	require.NoError(t, err)
	collect(t, proc, "ready\n")

	start := time.Now()
	require.NoError(t, proc.Terminate(t.Context()))
	assert.False(t, proc.Running())
	assert.GreaterOrEqual(t, time.Since(start), 200*time.Millisecond)
	assert.Equal(t, -1, proc.Diagnostics().ExitCode)
}

func TestProcess_TerminateIsIdempotent(t *testing.T) {
	script := writeScript(t, "exec sleep 30\n")
	l := newLauncher(t, script)

	proc, err := l.Launch(t.Context(), domain.NewWatchRequest("/tmp"))
	require.NoError(t, err)

	require.NoError(t, proc.Terminate(t.Context()))
	require.NoError(t, proc.Terminate(t.Context()))
	assert.False(t, proc.Running())
}

func TestLauncher_PTY(t *testing.T) {
	if _, err := os.Stat("/dev/ptmx"); err != nil {
		t.Skip("no pseudo-terminal support")
	}
	script := writeScript(t, `
echo "directoryCreated - /tmp/new"
exec sleep 30
`)
	l := newLauncher(t, script, func(o *process.Options) { o.UsePTY = true })

	proc, err := l.Launch(t.Context(), domain.NewWatchRequest("/tmp"))
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}

	out := collect(t, proc, "directoryCreated - /tmp/new\r\n")
	assert.NotEmpty(t, out)
	require.NoError(t, proc.Terminate(t.Context()))
	assert.False(t, proc.Running())
}

func TestLauncher_PTYHasNoStderrTail(t *testing.T) {
	if _, err := os.Stat("/dev/ptmx"); err != nil {
		t.Skip("no pseudo-terminal support")
	}
	script := writeScript(t, "echo 'node: crashed' >&2\nexit 3\n")
	l := newLauncher(t, script, func(o *process.Options) { o.UsePTY = true })

	proc, err := l.Launch(t.Context(), domain.NewWatchRequest("/tmp"))
	if err != nil {
		t.Skipf("pty unavailable: %v", err)
	}
	t.Cleanup(func() { _ = proc.Terminate(context.Background()) })

	collect(t, proc, "node: crashed")
	require.Eventually(t, func() bool { return !proc.Running() }, waitFor, 10*time.Millisecond)

	diag := proc.Diagnostics()
	assert.Equal(t, 3, diag.ExitCode)
	assert.Empty(t, diag.Stderr)
}

func TestNewLauncher_Defaults(t *testing.T) {
	l := process.NewLauncher(nil, process.Options{})
	opts := l.Options()
	assert.Equal(t, domain.DefaultInterpreter, opts.Interpreter)
	assert.Equal(t, domain.DefaultScriptName, filepath.Base(opts.Script))
	assert.Equal(t, domain.DefaultTerminateGrace, opts.TerminateGrace)
	assert.Equal(t, process.DefaultOptions().Interpreter, opts.Interpreter)
}
