package memory_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/fswatch/internal/adapters/memory"
	"go.trai.ch/fswatch/internal/core/domain"
)

func TestProcess_ScriptedReads(t *testing.T) {
	p := memory.NewProcess("a\n", "", "b")
	p.Write("c\n")

	assert.Equal(t, "a\nc\n", string(p.ReadIncremental()))
	assert.Empty(t, p.ReadIncremental())
	assert.Equal(t, "b", string(p.ReadIncremental()))
	assert.Nil(t, p.ReadIncremental())
	assert.Equal(t, 4, p.Reads())
}

func TestProcess_Lifecycle(t *testing.T) {
	p := memory.NewProcess()
	require.True(t, p.Running())

	require.NoError(t, p.Terminate(context.Background()))
	assert.False(t, p.Running())
	assert.True(t, p.Terminated())

	dead := memory.NewExitedProcess(3, "boom")
	assert.False(t, dead.Running())
	assert.Equal(t, domain.Diagnostics{Exited: true, ExitCode: 3, Stderr: "boom"}, dead.Diagnostics())
}

func TestLauncher(t *testing.T) {
	p := memory.NewProcess()
	l := memory.NewLauncher(p)

	got, err := l.Launch(context.Background(), domain.NewWatchRequest("/a"))
	require.NoError(t, err)
	assert.Same(t, p, got)
	require.Len(t, l.Requests(), 1)
	assert.Equal(t, []string{"/a"}, l.Requests()[0].Paths())

	boom := errors.New("boom")
	_, err = memory.NewFailingLauncher(boom).Launch(context.Background(), domain.NewWatchRequest("/a"))
	require.ErrorIs(t, err, boom)
}
