package execx

import (
	"bytes"
	"context"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunCapturesOutput(t *testing.T) {
	var out bytes.Buffer
	e := New(t.TempDir())
	e.stdout = &out
	e.commandFunc = func(string, ...string) *exec.Cmd {
		return exec.Command("sh", "-c", "echo hello")
	}

	err := e.Run(context.Background(), "ignored")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", out.String())
}

func TestRunReportsFailure(t *testing.T) {
	e := New(t.TempDir())
	e.commandFunc = func(string, ...string) *exec.Cmd {
		return exec.Command("sh", "-c", "exit 3")
	}

	err := e.Run(context.Background(), "doomed", "arg")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doomed arg")
}

func TestRunMissingBinaryIsNotFound(t *testing.T) {
	e := New(t.TempDir())
	e.commandFunc = func(string, ...string) *exec.Cmd {
		return exec.Command("bowerbird-no-such-binary")
	}

	err := e.Run(context.Background(), "git", "init")
	require.Error(t, err)
	assert.ErrorIs(t, err, exec.ErrNotFound)
	assert.Contains(t, err.Error(), "install git")
}

func TestRunHonorsCancellation(t *testing.T) {
	e := New(t.TempDir())
	e.commandFunc = func(string, ...string) *exec.Cmd {
		return exec.Command("sleep", "10")
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := e.Run(ctx, "sleep")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}
