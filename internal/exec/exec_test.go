package exec

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bogen85/xrandr-utils/internal/errors"
)

func skipOnWindows(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("tests use POSIX utilities")
	}
}

func TestCaptureOutput(t *testing.T) {
	skipOnWindows(t)

	out, err := CaptureOutput("echo", "hello")
	require.NoError(t, err)
	assert.Equal(t, "hello\n", string(out))
}

func TestCaptureOutput_NonZeroExit(t *testing.T) {
	skipOnWindows(t)

	_, err := CaptureOutput("sh", "-c", "exit 3")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrExec))
	assert.Contains(t, err.Error(), "status 3")

	code, ok := errors.GetExitCode(err)
	require.True(t, ok)
	assert.Equal(t, 3, code)
}

func TestCaptureOutput_SpawnFailure(t *testing.T) {
	_, err := CaptureOutput("definitely-not-a-real-command-xyz")
	require.Error(t, err)
	assert.True(t, errors.IsCode(err, errors.ErrExec))
	assert.Contains(t, err.Error(), "Couldn't run")

	_, ok := errors.GetExitCode(err)
	assert.False(t, ok)
}

func TestCaptureWithInput(t *testing.T) {
	skipOnWindows(t)

	out, err := CaptureWithInput("cat", []byte("piped bytes"))
	require.NoError(t, err)
	assert.Equal(t, "piped bytes", string(out))
}

func TestRunStatus(t *testing.T) {
	skipOnWindows(t)

	assert.NoError(t, RunStatus("true"))

	err := RunStatus("false")
	require.Error(t, err)
	code, ok := errors.GetExitCode(err)
	require.True(t, ok)
	assert.Equal(t, 1, code)
}
