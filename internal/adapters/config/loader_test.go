package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fswatch/internal/adapters/config"
	"go.trai.ch/fswatch/internal/core/domain"
	"go.trai.ch/fswatch/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func newLoader(t *testing.T) (*config.Loader, *mocks.MockLogger) {
	t.Helper()
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	return config.NewLoader(log), log
}

func TestLoad_FullFile(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, `
paths:
  - src
  - /var/log
interpreter: /usr/local/bin/node
script: tools/file-watcher.js
poll_interval: 250ms
terminate_grace: 5s
pty: true
strict_protocol: true
isolate_listeners: true
log_format: json
`)
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(dir, "src"), "/var/log"}, cfg.Request.Paths())
	assert.Equal(t, "/usr/local/bin/node", cfg.Interpreter)
	assert.Equal(t, filepath.Join(dir, "tools", "file-watcher.js"), cfg.Script)
	assert.Equal(t, 250*time.Millisecond, cfg.PollInterval)
	assert.Equal(t, 5*time.Second, cfg.TerminateGrace)
	assert.True(t, cfg.UsePTY)
	assert.True(t, cfg.StrictProtocol)
	assert.True(t, cfg.IsolateListeners)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoad_DefaultsStayZero(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "paths: [/tmp]\n")
	loader, _ := newLoader(t)

	cfg, err := loader.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"/tmp"}, cfg.Request.Paths())
	assert.Empty(t, cfg.Interpreter)
	assert.Empty(t, cfg.Script)
	assert.Zero(t, cfg.PollInterval)
	assert.Zero(t, cfg.TerminateGrace)
	assert.False(t, cfg.UsePTY)
}

func TestLoad_DiscoversUpwards(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "paths: [/tmp]\n")
	nested := filepath.Join(root, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o750))

	loader, _ := newLoader(t)
	cfg, err := loader.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, []string{"/tmp"}, cfg.Request.Paths())
}

func TestLoad_NotFound(t *testing.T) {
	loader, _ := newLoader(t)

	_, err := loader.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, domain.ErrConfigReadFailed)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoad_EmptyPathsWarns(t *testing.T) {
	path := writeConfig(t, t.TempDir(), "")
	loader, log := newLoader(t)
	log.EXPECT().Warn("no paths configured in fswatch.yaml; add paths before starting")

	cfg, err := loader.Load(path)
	require.NoError(t, err)
	assert.Zero(t, cfg.Request.Len())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{"malformed yaml", "paths: [\n", domain.ErrConfigParseFailed},
		{"unknown field", "paths: [/tmp]\nwatch_hidden: true\n", domain.ErrConfigParseFailed},
		{"bad poll interval", "paths: [/tmp]\npoll_interval: soon\n", domain.ErrInvalidPollInterval},
		{"zero poll interval", "paths: [/tmp]\npoll_interval: 0s\n", domain.ErrInvalidPollInterval},
		{"negative grace", "paths: [/tmp]\nterminate_grace: -1s\n", domain.ErrInvalidTerminateGrace},
		{"bad log format", "paths: [/tmp]\nlog_format: xml\n", domain.ErrInvalidLogFormat},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, t.TempDir(), tt.content)
			loader, _ := newLoader(t)

			_, err := loader.Load(path)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
