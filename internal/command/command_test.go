package command

import (
	"context"
	"errors"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gorewood/sprout/internal/output"
)

func requireShell(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner_Success(t *testing.T) {
	requireShell(t)

	res, err := ExecRunner{}.Run(context.Background(), Cmd{
		Name: "sh",
		Args: []string{"-c", "echo '  hello  '"},
	})
	require.NoError(t, err)
	assert.Equal(t, 0, res.ExitCode)
	assert.Equal(t, "hello", res.Stdout)
}

func TestExecRunner_Dir(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()

	res, err := ExecRunner{}.Run(context.Background(), Cmd{Name: "sh", Args: []string{"-c", "pwd -P"}, Dir: dir})
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(res.Stdout, lastElem(dir)), "pwd = %q, want suffix of %q", res.Stdout, dir)
}

func TestExecRunner_Stdin(t *testing.T) {
	requireShell(t)

	res, err := ExecRunner{}.Run(context.Background(), Cmd{
		Name:  "sh",
		Args:  []string{"-c", "cat"},
		Stdin: strings.NewReader("ghp_secret\n"),
	})
	require.NoError(t, err)
	assert.Equal(t, "ghp_secret", res.Stdout)
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	requireShell(t)

	res, err := ExecRunner{}.Run(context.Background(), Cmd{
		Name: "sh",
		Args: []string{"-c", "echo nope >&2; exit 3"},
	})
	require.Error(t, err)
	assert.Equal(t, 3, res.ExitCode)
	assert.Equal(t, "nope", res.Stderr)

	var exitErr *output.ExitError
	require.True(t, errors.As(err, &exitErr))
	assert.Equal(t, output.ExitSystemError, exitErr.Code)
	assert.Contains(t, exitErr.Message, "sh failed: nope")
}

func TestExecRunner_MissingBinary(t *testing.T) {
	res, err := ExecRunner{}.Run(context.Background(), Cmd{Name: "sprout-no-such-binary"})
	require.Error(t, err)
	assert.Equal(t, -1, res.ExitCode)
	assert.Contains(t, err.Error(), "sprout-no-such-binary not found")
}

func TestCmdString(t *testing.T) {
	assert.Equal(t, "git", Cmd{Name: "git"}.String())
	assert.Equal(t, "git commit -m First Commit", Cmd{Name: "git", Args: []string{"commit", "-m", "First Commit"}}.String())
}

func TestWait(t *testing.T) {
	t.Run("zero delay returns immediately", func(t *testing.T) {
		start := time.Now()
		require.NoError(t, Wait(context.Background(), 0))
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("waits for the delay", func(t *testing.T) {
		start := time.Now()
		require.NoError(t, Wait(context.Background(), 20*time.Millisecond))
		assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	})

	t.Run("cancelled context returns early", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		start := time.Now()
		err := Wait(ctx, time.Hour)
		assert.ErrorIs(t, err, context.Canceled)
		assert.Less(t, time.Since(start), time.Second)
	})
}

func lastElem(path string) string {
	parts := strings.Split(strings.TrimRight(path, "/"), "/")
	return parts[len(parts)-1]
}
