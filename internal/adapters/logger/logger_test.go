package logger_test

import (
	"bytes"
	"errors"
	"os"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fswatch/internal/adapters/logger"
	"go.trai.ch/fswatch/internal/core/domain"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected bytes.Buffer and NO_COLOR=1
// so the output carries no ANSI escape codes.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("starting watch session 1f2e for 2 path(s)")

	goldie.New(t).Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	tests := []struct {
		name       string
		msg        string
		goldenName string
	}{
		{
			name:       "simple warning",
			msg:        `reporting malformed watcher record "garbage"`,
			goldenName: "warn_basic",
		},
		{
			name:       "multiline warning",
			msg:        "warn1\nwarn2",
			goldenName: "warn_multiline",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Warn(tt.msg)

			goldie.New(t).Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		goldenName string
	}{
		{
			name:       "simple error",
			err:        os.ErrPermission,
			goldenName: "error_simple",
		},
		{
			name: "startup failure with metadata",
			err: zerr.With(
				zerr.With(zerr.Wrap(domain.ErrStartupFailure, "watcher process is not running"), "exit_code", 1),
				"stderr", "Cannot find module 'chokidar'",
			),
			goldenName: "error_startup",
		},
		{
			name: "joined listener failure",
			err: errors.Join(
				domain.ErrListenerFailure,
				zerr.With(zerr.Wrap(errors.New("disk full"), "listener returned an error"), "kind", "fileCreated"),
			),
			goldenName: "error_joined",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			lg, buf := newTestLogger(t)
			lg.Error(tt.err)

			goldie.New(t).Assert(t, tt.goldenName, buf.Bytes())
		})
	}
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String(), "Expected no output for nil error")
}

func TestLogger_SetJSON_WithErrorChain(t *testing.T) {
	err := zerr.With(zerr.Wrap(domain.ErrStartupFailure, "watcher process is not running"), "exit_code", 127)

	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, `"msg":"watcher process is not running"`)
	assert.Contains(t, out, `"exit_code":127`)
	assert.NotContains(t, out, "✗", "JSON format should not have pretty markers")
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Warn("pretty")
	pretty := buf.String()
	buf.Reset()

	lg.SetJSON(true)
	lg.Warn("json")
	jsonOut := buf.String()
	buf.Reset()

	lg.SetJSON(false)
	lg.Warn("pretty again")

	assert.Equal(t, "! pretty\n", pretty)
	assert.Contains(t, jsonOut, `"level":"WARN"`)
	assert.Contains(t, jsonOut, `"msg":"json"`)
	assert.Equal(t, "! pretty again\n", buf.String())
}

func TestLogger_SetOutput_Nil(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New().(*logger.Logger)
		lg.SetOutput(nil)
	})
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)

	done := make(chan struct{}, 5)
	run := func(f func()) {
		go func() {
			f()
			done <- struct{}{}
		}()
	}

	run(func() { lg.Info("concurrent info") })
	run(func() { lg.Warn("concurrent warn") })
	run(func() { lg.Error(errors.New("concurrent error")) })
	run(func() { lg.SetJSON(true) })
	run(func() { lg.SetOutput(&bytes.Buffer{}) })

	for range 5 {
		<-done
	}
}
